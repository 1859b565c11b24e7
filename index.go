package encindex

import "io"

// Entry is one pointer/scalar assignment of an encoding index.
//
// Pointer is an offset derived from a position in an encoded byte stream;
// Scalar is a Unicode code point. Pointers are unique within one index,
// scalars may repeat (see MultiByteTable.Dups).
type Entry struct {
	Pointer uint32
	Scalar  uint32
}

// EntryReader yields index entries one-by-one.
// It should return io.EOF when the stream is exhausted.
//
// File format parsing is intentionally outside the base package. Use
// adapters like package whatwg to parse concrete formats and feed this API.
type EntryReader interface {
	Next() (pointer, scalar uint32, err error)
}

// Entries is a convenience EntryReader over an in-memory slice.
type Entries []Entry

// Reader returns a streaming view of the slice.
func (e Entries) Reader() EntryReader {
	return &sliceEntryReader{entries: e}
}

type sliceEntryReader struct {
	entries []Entry
	index   int
}

func (r *sliceEntryReader) Next() (uint32, uint32, error) {
	if r.index >= len(r.entries) {
		return 0, 0, io.EOF
	}
	e := r.entries[r.index]
	r.index++
	return e.Pointer, e.Scalar, nil
}

// Table is the common surface of the three compiled bundle kinds, as handed
// to an emitter. The concrete types are SingleByteTable, MultiByteTable and
// RangeTable; the set is closed.
type Table interface {
	// ByteSize reports the memory footprint of the emitted tables.
	ByteSize() int
}

// Sentinel values signaling "no mapping" for the respective field widths.
const (
	// SentinelBMP is the "unmapped" marker in 16-bit table slots.
	SentinelBMP = 0xFFFF

	// SentinelRange is the "unmapped" marker of range-table lookups.
	SentinelRange = 0xFFFFFFFF
)
