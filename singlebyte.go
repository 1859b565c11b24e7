package encindex

import (
	"fmt"
	"io"

	"github.com/npillmayer/encindex/blocktrie"
)

// Single-byte index constants.
const (
	singleBytePointers = 128  // pointer domain [0,128)
	singleByteBias     = 0x80 // pointers re-biased to their natural byte value
)

// SingleByteTable is the compiled form of an 8-bit code-page index.
//
// The forward direction is a dense 128-entry array over the pointer domain;
// the backward direction is a block trie over the BMP whose cells store
// pointer+0x80, with 0 meaning "unmapped".
type SingleByteTable struct {
	ForwardTable  [singleBytePointers]uint16
	BackwardTable *blocktrie.Table
}

// CompileSingleByte builds the tables for a single-byte index.
//
// Pointers must be unique and lie in [0,128); scalars must be unique and lie
// in [0,0xFFFF). Any violation aborts the build.
func CompileSingleByte(name string, r EntryReader) (*SingleByteTable, error) {
	t := &SingleByteTable{}
	for i := range t.ForwardTable {
		t.ForwardTable[i] = SentinelBMP
	}
	invdata := make(map[uint32]uint32)
	for {
		pointer, scalar, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if pointer >= singleBytePointers || scalar >= SentinelBMP {
			return nil, fmt.Errorf("%w: entry (%d,%#x) of %s", ErrOutOfDomain, pointer, scalar, name)
		}
		if t.ForwardTable[pointer] != SentinelBMP {
			return nil, fmt.Errorf("%w: %d in %s", ErrDuplicatePointer, pointer, name)
		}
		if _, ok := invdata[scalar]; ok {
			return nil, fmt.Errorf("%w: %#x in %s", ErrDuplicateScalar, scalar, name)
		}
		t.ForwardTable[pointer] = uint16(scalar)
		invdata[scalar] = pointer
	}
	backward, err := buildMinimalTrie(invdata, 0x10000, 0x10000, singleByteBias, 0)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	t.BackwardTable = backward
	lower, upper := backward.Size()
	tracer().Infof("index %s: %d entries, trie bits=%d lower=%d upper=%d",
		name, len(invdata), backward.Bits, lower, upper)
	return t, nil
}

// Forward returns the scalar for a pointer, or 0xFFFF if unmapped.
func (t *SingleByteTable) Forward(pointer byte) uint16 {
	if pointer >= singleBytePointers {
		return SentinelBMP
	}
	return t.ForwardTable[pointer]
}

// Backward returns the byte value pointer+0x80 for a scalar, or 0 if the
// scalar is unmapped. For every declared pointer p,
// Backward(Forward(p)) == p+0x80.
func (t *SingleByteTable) Backward(scalar uint32) byte {
	return byte(t.BackwardTable.Lookup(scalar))
}

// ByteSize returns the memory footprint of the emitted tables: the forward
// and upper tables take two bytes per entry, the lower table one.
func (t *SingleByteTable) ByteSize() int {
	lower, upper := t.BackwardTable.Size()
	return 2*len(t.ForwardTable) + lower + 2*upper
}
