package encindex

import (
	"fmt"
	"io"
	"sort"

	"github.com/npillmayer/encindex/blocktrie"
)

// RemapRange is an inclusive pointer sub-range whose backward lookups are
// redirected to canonical pointers outside the range. JIS X 0208 carries two
// compatibility ranges of which encoders must favor different ones.
type RemapRange struct {
	Min, Max uint32
}

// MultiBytePolicy holds the encoding-specific options of a multi-byte index.
// The zero value compiles a plain index.
type MultiBytePolicy struct {
	// AliasPointers are reserved pointers mapped forward-only to the
	// placeholder scalars 0..N-1. Big5 uses them for its two-letter
	// mappings.
	AliasPointers []uint32

	// Remap requests a backward remap sub-table for the given range.
	Remap *RemapRange
}

// MultiByteTable is the compiled form of a legacy CJK double-byte index.
//
// The forward direction is a dense array over the pointer domain
// [MinKey,MaxKey) holding the low 16 bits of each scalar; indices with
// supplementary-plane scalars carry a parallel one-bit-per-pointer plane
// table. The backward direction is a block trie over the scalar domain.
type MultiByteTable struct {
	// MinKey and MaxKey bound the pointer domain [MinKey,MaxKey).
	MinKey, MaxKey uint32

	// ForwardTable holds scalar&0xFFFF per pointer, 0xFFFF if unmapped.
	ForwardTable []uint16

	// MoreBits is nil unless some scalar lies in plane 2. Bit pointer&31 of
	// entry pointer>>5 (relative to MinKey) selects the 0x20000 high part.
	MoreBits []uint32

	BackwardTable *blocktrie.Table

	// RemapTable redirects backward hits in [RemapMin,RemapMax] to their
	// canonical counterparts; nil when the policy requested none.
	RemapMin, RemapMax uint32
	RemapTable         []uint16

	// Dups lists, in ascending order, the pointers that are valid forward
	// but unreachable backward: later pointers sharing an earlier pointer's
	// scalar, and alias pointers.
	Dups []uint32
}

// CompileMultiByte builds the tables for a multi-byte index.
//
// Pointers must be unique and lie in [0,0xFFFF); scalars must lie in
// [0,0x110000) with 0xFFFF reserved as sentinel, and scalars beyond the BMP
// must lie in plane 2. The first pointer seen for a scalar is canonical;
// later ones land in Dups. Any violation aborts the build.
func CompileMultiByte(name string, r EntryReader, policy MultiBytePolicy) (*MultiByteTable, error) {
	data := make(map[uint32]uint32)
	invdata := make(map[uint32]uint32)
	var dups []uint32
	morebits := false
	maxScalar := uint32(0)
	for {
		pointer, scalar, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if pointer >= SentinelBMP || scalar >= 0x110000 || scalar == SentinelBMP {
			return nil, fmt.Errorf("%w: entry (%d,%#x) of %s", ErrOutOfDomain, pointer, scalar, name)
		}
		if scalar >= 0x10000 {
			if scalar>>16 != 2 {
				return nil, fmt.Errorf("%w: scalar %#x of %s outside plane 2", ErrOutOfDomain, scalar, name)
			}
			morebits = true
		}
		if _, ok := data[pointer]; ok {
			return nil, fmt.Errorf("%w: %d in %s", ErrDuplicatePointer, pointer, name)
		}
		data[pointer] = scalar
		if _, ok := invdata[scalar]; ok {
			dups = append(dups, pointer)
		} else {
			invdata[scalar] = pointer
			if scalar > maxScalar {
				maxScalar = scalar
			}
		}
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty index %s", ErrOutOfDomain, name)
	}

	// Alias pointers enter the forward direction only; their placeholder
	// scalars stay out of the trie so that round trips of the primary
	// mapping remain unique.
	for i, pointer := range policy.AliasPointers {
		placeholder := uint32(i)
		if _, ok := data[pointer]; ok {
			return nil, fmt.Errorf("%w: alias pointer %d of %s already assigned", ErrAliasCollision, pointer, name)
		}
		if _, ok := invdata[placeholder]; ok {
			return nil, fmt.Errorf("%w: placeholder scalar %d of %s already assigned", ErrAliasCollision, placeholder, name)
		}
		data[pointer] = placeholder
		dups = append(dups, pointer)
	}

	backward, err := buildMinimalTrie(invdata, int(maxScalar)+1, 0x10000, 0, SentinelBMP)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	pointers := make([]uint32, 0, len(data))
	for pointer := range data {
		pointers = append(pointers, pointer)
	}
	sort.Slice(pointers, func(i, j int) bool { return pointers[i] < pointers[j] })
	minKey, maxKey := pointers[0], pointers[len(pointers)-1]+1

	t := &MultiByteTable{
		MinKey:        minKey,
		MaxKey:        maxKey,
		ForwardTable:  make([]uint16, maxKey-minKey),
		BackwardTable: backward,
		Dups:          dups,
	}
	for i := range t.ForwardTable {
		t.ForwardTable[i] = SentinelBMP
	}
	for pointer, scalar := range data {
		t.ForwardTable[pointer-minKey] = uint16(scalar)
	}
	if morebits {
		t.MoreBits = make([]uint32, (maxKey-minKey+31)/32)
		for pointer, scalar := range data {
			if scalar >= 0x10000 {
				code := pointer - minKey
				t.MoreBits[code>>5] |= 1 << (code & 31)
			}
		}
	}

	if policy.Remap != nil {
		if err := t.buildRemap(name, *policy.Remap, data, pointers); err != nil {
			return nil, err
		}
	}

	sort.Slice(t.Dups, func(i, j int) bool { return t.Dups[i] < t.Dups[j] })
	lower, upper := backward.Size()
	tracer().Infof("index %s: %d entries, %d dups, trie bits=%d lower=%d upper=%d",
		name, len(data), len(t.Dups), backward.Bits, lower, upper)
	return t, nil
}

// buildRemap fills the dense remap sub-table. For every mapped pointer
// inside the range, the canonical pointer of the same scalar outside the
// range is recorded; pointers are visited in ascending order so the smallest
// counterpart wins.
func (t *MultiByteTable) buildRemap(name string, remap RemapRange, data map[uint32]uint32, pointers []uint32) error {
	canonical := make(map[uint32]uint32)
	for _, pointer := range pointers {
		if pointer >= remap.Min && pointer <= remap.Max {
			continue
		}
		scalar := data[pointer]
		if _, ok := canonical[scalar]; !ok {
			canonical[scalar] = pointer
		}
	}
	t.RemapMin, t.RemapMax = remap.Min, remap.Max
	t.RemapTable = make([]uint16, 0, remap.Max-remap.Min+1)
	for pointer := remap.Min; pointer <= remap.Max; pointer++ {
		scalar, ok := data[pointer]
		if !ok {
			t.RemapTable = append(t.RemapTable, SentinelBMP)
			continue
		}
		counterpart, ok := canonical[scalar]
		if !ok {
			return fmt.Errorf("%w: pointer %d of %s", ErrRemapUnresolved, pointer, name)
		}
		t.RemapTable = append(t.RemapTable, uint16(counterpart))
	}
	return nil
}

// Forward returns the scalar for a pointer, or 0xFFFF if unmapped.
func (t *MultiByteTable) Forward(pointer uint32) uint32 {
	code := pointer - t.MinKey // wraps below MinKey, caught by the bound check
	if code >= uint32(len(t.ForwardTable)) {
		return SentinelBMP
	}
	scalar := uint32(t.ForwardTable[code])
	if t.MoreBits != nil {
		scalar |= (t.MoreBits[code>>5] >> (code & 31) & 1) << 17
	}
	return scalar
}

// Backward returns the canonical pointer for a scalar, or 0xFFFF if the
// scalar is unmapped.
func (t *MultiByteTable) Backward(scalar uint32) uint32 {
	return uint32(t.BackwardTable.Lookup(scalar))
}

// BackwardRemapped is Backward with hits inside the remap sub-range
// redirected to their counterparts outside it.
func (t *MultiByteTable) BackwardRemapped(scalar uint32) uint32 {
	pointer := t.Backward(scalar)
	if t.RemapTable != nil && pointer >= t.RemapMin && pointer <= t.RemapMax {
		return uint32(t.RemapTable[pointer-t.RemapMin])
	}
	return pointer
}

// ByteSize returns the memory footprint of the emitted tables, two bytes per
// 16-bit entry and four per bitplane word.
func (t *MultiByteTable) ByteSize() int {
	lower, upper := t.BackwardTable.Size()
	size := 2*len(t.ForwardTable) + 2*lower + 2*upper
	size += 4 * len(t.MoreBits)
	size += 2 * len(t.RemapTable)
	return size
}
