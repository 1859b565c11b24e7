package encindex

import (
	"fmt"
	"io"
	"sort"
)

// CarveOut marks an invalid interior of a range index's key domain: codes
// strictly between Lo and Hi have no mapping even though breakpoints span
// them. gb18030 reserves such a gap below its supplementary-plane ranges.
type CarveOut struct {
	Lo, Hi uint32
}

// RangePolicy holds the encoding-specific options of a range index. The
// zero value compiles a plain index with bounds derived from the data.
type RangePolicy struct {
	// KeyCeil, when non-zero, invalidates forward lookups above it.
	KeyCeil uint32

	// Invalid carves an interior gap out of the forward key domain.
	Invalid *CarveOut

	// KeyUBound and ValueUBound override the declared exclusive domain
	// bounds handed to the emitter; zero derives them from the data.
	KeyUBound, ValueUBound uint32
}

// RangeTable is the compiled form of an index expressed as contiguous
// linear ranges. Keys and Values are parallel breakpoint arrays, strictly
// increasing, implicitly defining half-open ranges [Keys[i],Keys[i+1])
// mapped offset-preserving onto [Values[i],Values[i+1]).
type RangeTable struct {
	Keys, Values []uint32

	// Declared bounds of the raw data, before the synthetic (0,0)
	// breakpoint.
	MinKey, MaxKey     uint32
	MinValue, MaxValue uint32

	// Exclusive upper domain bounds, for the emitter and conformance tests.
	KeyUBound, ValueUBound uint32

	KeyCeil uint32
	Invalid *CarveOut
}

// CompileRanges builds the breakpoint tables for a range index.
//
// Breakpoints must be strictly increasing in both coordinates; a synthetic
// (0,0) breakpoint is prepended unless the data starts with one.
func CompileRanges(name string, r EntryReader, policy RangePolicy) (*RangeTable, error) {
	var keys, values []uint32
	for {
		key, value, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if n := len(keys); n > 0 && (key <= keys[n-1] || value <= values[n-1]) {
			return nil, fmt.Errorf("%w: breakpoint (%d,%d) of %s", ErrNotSorted, key, value, name)
		}
		keys = append(keys, key)
		values = append(values, value)
	}
	if len(keys) == 0 {
		return nil, fmt.Errorf("%w: empty index %s", ErrOutOfDomain, name)
	}
	t := &RangeTable{
		Keys:        keys,
		Values:      values,
		MinKey:      keys[0],
		MaxKey:      keys[len(keys)-1],
		MinValue:    values[0],
		MaxValue:    values[len(values)-1],
		KeyUBound:   policy.KeyUBound,
		ValueUBound: policy.ValueUBound,
		KeyCeil:     policy.KeyCeil,
		Invalid:     policy.Invalid,
	}
	if t.KeyUBound == 0 {
		t.KeyUBound = t.MaxKey + 1
	}
	if t.ValueUBound == 0 {
		t.ValueUBound = t.MaxValue + 1
	}
	if t.MinKey != 0 || t.MinValue != 0 {
		t.Keys = append([]uint32{0}, t.Keys...)
		t.Values = append([]uint32{0}, t.Values...)
	}
	tracer().Infof("index %s: %d breakpoints, keys [%d,%d], values [%d,%d]",
		name, len(t.Keys), t.MinKey, t.MaxKey, t.MinValue, t.MaxValue)
	return t, nil
}

// Forward returns the scalar for a pointer, or 0xFFFFFFFF if the pointer is
// below the declared minimum, inside the carve-out, or above the ceiling.
func (t *RangeTable) Forward(code uint32) uint32 {
	if code < t.MinKey {
		return SentinelRange
	}
	if t.Invalid != nil && code > t.Invalid.Lo && code < t.Invalid.Hi {
		return SentinelRange
	}
	if t.KeyCeil != 0 && code > t.KeyCeil {
		return SentinelRange
	}
	i := lastAtMost(t.Keys, code)
	return code - t.Keys[i] + t.Values[i]
}

// Backward returns the pointer for a scalar, or 0xFFFFFFFF if the scalar is
// below the declared minimum.
func (t *RangeTable) Backward(code uint32) uint32 {
	if code < t.MinValue {
		return SentinelRange
	}
	i := lastAtMost(t.Values, code)
	return code - t.Values[i] + t.Keys[i]
}

// lastAtMost returns the greatest index i with a[i] <= code. a is strictly
// increasing and starts at 0, so the index exists.
func lastAtMost(a []uint32, code uint32) int {
	return sort.Search(len(a), func(i int) bool { return a[i] > code }) - 1
}

// ByteSize returns the memory footprint of the emitted tables, four bytes
// per breakpoint coordinate.
func (t *RangeTable) ByteSize() int {
	return 4*len(t.Keys) + 4*len(t.Values)
}
