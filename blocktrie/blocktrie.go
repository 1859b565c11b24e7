// Package blocktrie holds the frozen two-level lookup table produced by the
// encindex trie builder.
package blocktrie

// Table is a frozen two-level block-deduplicated lookup table.
//   - The code domain is split into blocks of 1<<Bits entries.
//   - Lower is a flat sequence of deduplicated blocks; identical block
//     contents are stored once. Offset 0 always holds an all-absent block.
//   - Upper maps a block index (code>>Bits) to the offset of its block in
//     Lower. Block indices beyond len(Upper) resolve to the all-absent
//     block at offset 0.
//
// Lookup is O(1) with two array reads and a couple of ops.
//
// Cells of unmapped codes hold Absent (0 for single-byte tables, whose
// mapped cells carry pointer+0x80; 0xFFFF for multi-byte tables, whose
// mapped cells carry the raw pointer).
type Table struct {
	// Bits is the block size exponent; blocks span 1<<Bits codes.
	Bits uint32

	// Lower holds the deduplicated blocks, each exactly 1<<Bits entries.
	Lower []uint16

	// Upper holds one Lower offset per block of the code domain.
	// Offsets always address a block start, so every in-block index stays
	// within Lower.
	Upper []uint16

	// Absent is the value stored in unmapped cells.
	Absent uint16
}

// Lookup returns the stored value for code, or Absent if code is unmapped.
// Codes beyond the covered domain are unmapped.
func (t *Table) Lookup(code uint32) uint16 {
	offset := uint32(0)
	if blk := code >> t.Bits; blk < uint32(len(t.Upper)) {
		offset = uint32(t.Upper[blk])
	}
	return t.Lower[offset+(code&(1<<t.Bits-1))]
}

// Size returns the entry counts of the lower and upper tables.
func (t *Table) Size() (lower, upper int) {
	return len(t.Lower), len(t.Upper)
}
