package encindex

import (
	"errors"
	"reflect"
	"testing"
)

func TestMultiByteDuplicateScalar(t *testing.T) {
	table, err := CompileMultiByte("dups", Entries{
		{Pointer: 0, Scalar: 0x41},
		{Pointer: 1, Scalar: 0x42},
		{Pointer: 2, Scalar: 0x41},
	}.Reader(), MultiBytePolicy{})
	if err != nil {
		t.Fatal(err)
	}
	for pointer, scalar := range map[uint32]uint32{0: 0x41, 1: 0x42, 2: 0x41} {
		if got := table.Forward(pointer); got != scalar {
			t.Errorf("Forward(%d) = %#x, want %#x", pointer, got, scalar)
		}
	}
	if got := table.Backward(0x41); got != 0 {
		t.Errorf("Backward(0x41) = %d, want 0 (canonical)", got)
	}
	if got := table.Backward(0x42); got != 1 {
		t.Errorf("Backward(0x42) = %d, want 1", got)
	}
	if got := table.Backward(0x99); got != SentinelBMP {
		t.Errorf("Backward(0x99) = %#x, want sentinel", got)
	}
	if !reflect.DeepEqual(table.Dups, []uint32{2}) {
		t.Errorf("Dups = %v, want [2]", table.Dups)
	}
}

func TestMultiByteDupsSortedAscending(t *testing.T) {
	table, err := CompileMultiByte("dups", Entries{
		{Pointer: 0, Scalar: 0x41},
		{Pointer: 7, Scalar: 0x41},
		{Pointer: 3, Scalar: 0x41},
	}.Reader(), MultiBytePolicy{})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(table.Dups, []uint32{3, 7}) {
		t.Errorf("Dups = %v, want [3 7]", table.Dups)
	}
}

func TestMultiByteRoundTrip(t *testing.T) {
	entries := make(Entries, 0, 64)
	for i := uint32(0); i < 64; i++ {
		entries = append(entries, Entry{Pointer: 100 + i, Scalar: 0x4E00 + 2*i})
	}
	table, err := CompileMultiByte("cjk-ish", entries.Reader(), MultiBytePolicy{})
	if err != nil {
		t.Fatal(err)
	}
	if table.MinKey != 100 || table.MaxKey != 164 {
		t.Fatalf("pointer domain [%d,%d), want [100,164)", table.MinKey, table.MaxKey)
	}
	for _, e := range entries {
		if got := table.Forward(e.Pointer); got != e.Scalar {
			t.Fatalf("Forward(%d) = %#x, want %#x", e.Pointer, got, e.Scalar)
		}
		if got := table.Backward(e.Scalar); got != e.Pointer {
			t.Fatalf("Backward(%#x) = %d, want %d", e.Scalar, got, e.Pointer)
		}
	}
	if got := table.Forward(99); got != SentinelBMP {
		t.Errorf("Forward(99) = %#x, want sentinel", got)
	}
	if got := table.Forward(164); got != SentinelBMP {
		t.Errorf("Forward(164) = %#x, want sentinel", got)
	}
	if got := table.Forward(0x4E01); got != SentinelBMP { // odd scalars unmapped
		t.Errorf("Forward(0x4E01) = %#x, want sentinel", got)
	}
}

func TestMultiByteSupplementaryPlane(t *testing.T) {
	table, err := CompileMultiByte("plane2", Entries{
		{Pointer: 5, Scalar: 0x20010},
		{Pointer: 6, Scalar: 0x4E00},
		{Pointer: 40, Scalar: 0x2A700},
	}.Reader(), MultiBytePolicy{})
	if err != nil {
		t.Fatal(err)
	}
	if table.MoreBits == nil {
		t.Fatal("expected a bitplane table")
	}
	for pointer, scalar := range map[uint32]uint32{5: 0x20010, 6: 0x4E00, 40: 0x2A700} {
		if got := table.Forward(pointer); got != scalar {
			t.Errorf("Forward(%d) = %#x, want %#x", pointer, got, scalar)
		}
		if got := table.Backward(scalar); got != pointer {
			t.Errorf("Backward(%#x) = %d, want %d", scalar, got, pointer)
		}
	}
}

func TestMultiByteRejectsNonPlane2(t *testing.T) {
	for _, scalar := range []uint32{0x10000, 0x1FFFF, 0x30000, 0x10FFFF} {
		_, err := CompileMultiByte("bad", Entries{{Pointer: 0, Scalar: scalar}}.Reader(), MultiBytePolicy{})
		if !errors.Is(err, ErrOutOfDomain) {
			t.Fatalf("scalar %#x: expected ErrOutOfDomain, got %v", scalar, err)
		}
	}
}

func TestMultiByteRejectsBadEntries(t *testing.T) {
	_, err := CompileMultiByte("bad", Entries{
		{Pointer: 1, Scalar: 0x100},
		{Pointer: 1, Scalar: 0x101},
	}.Reader(), MultiBytePolicy{})
	if !errors.Is(err, ErrDuplicatePointer) {
		t.Fatalf("expected ErrDuplicatePointer, got %v", err)
	}
	_, err = CompileMultiByte("bad", Entries{{Pointer: 0xFFFF, Scalar: 0x100}}.Reader(), MultiBytePolicy{})
	if !errors.Is(err, ErrOutOfDomain) {
		t.Fatalf("expected ErrOutOfDomain for pointer 0xFFFF, got %v", err)
	}
	_, err = CompileMultiByte("bad", Entries{{Pointer: 0, Scalar: SentinelBMP}}.Reader(), MultiBytePolicy{})
	if !errors.Is(err, ErrOutOfDomain) {
		t.Fatalf("expected ErrOutOfDomain for reserved scalar, got %v", err)
	}
}

func TestMultiByteAliasPointers(t *testing.T) {
	table, err := CompileMultiByte("aliased", Entries{
		{Pointer: 10, Scalar: 0x4E00},
		{Pointer: 11, Scalar: 0x4E01},
	}.Reader(), MultiBytePolicy{AliasPointers: []uint32{50, 60}})
	if err != nil {
		t.Fatal(err)
	}
	if got := table.Forward(50); got != 0 {
		t.Errorf("Forward(50) = %#x, want placeholder 0", got)
	}
	if got := table.Forward(60); got != 1 {
		t.Errorf("Forward(60) = %#x, want placeholder 1", got)
	}
	// Placeholders stay unreachable backward.
	if got := table.Backward(0); got != SentinelBMP {
		t.Errorf("Backward(0) = %d, want sentinel", got)
	}
	if !reflect.DeepEqual(table.Dups, []uint32{50, 60}) {
		t.Errorf("Dups = %v, want [50 60]", table.Dups)
	}
}

func TestMultiByteAliasCollisions(t *testing.T) {
	_, err := CompileMultiByte("bad", Entries{
		{Pointer: 50, Scalar: 0x4E00},
	}.Reader(), MultiBytePolicy{AliasPointers: []uint32{50}})
	if !errors.Is(err, ErrAliasCollision) {
		t.Fatalf("expected ErrAliasCollision for taken pointer, got %v", err)
	}
	_, err = CompileMultiByte("bad", Entries{
		{Pointer: 10, Scalar: 0}, // occupies placeholder scalar 0
	}.Reader(), MultiBytePolicy{AliasPointers: []uint32{50}})
	if !errors.Is(err, ErrAliasCollision) {
		t.Fatalf("expected ErrAliasCollision for taken placeholder, got %v", err)
	}
}

func TestMultiByteRemap(t *testing.T) {
	table, err := CompileMultiByte("remapped", Entries{
		{Pointer: 5, Scalar: 0x300},
		{Pointer: 10, Scalar: 0x100},
		{Pointer: 11, Scalar: 0x200},
		{Pointer: 20, Scalar: 0x100},
		{Pointer: 21, Scalar: 0x200},
	}.Reader(), MultiBytePolicy{Remap: &RemapRange{Min: 10, Max: 11}})
	if err != nil {
		t.Fatal(err)
	}
	// Backward favors the lower pointers inside the remap range...
	if got := table.Backward(0x100); got != 10 {
		t.Errorf("Backward(0x100) = %d, want 10", got)
	}
	// ...while the remapped variant redirects to the counterparts.
	if got := table.BackwardRemapped(0x100); got != 20 {
		t.Errorf("BackwardRemapped(0x100) = %d, want 20", got)
	}
	if got := table.BackwardRemapped(0x200); got != 21 {
		t.Errorf("BackwardRemapped(0x200) = %d, want 21", got)
	}
	// Pointers outside the range pass through unchanged.
	if got := table.BackwardRemapped(0x300); got != 5 {
		t.Errorf("BackwardRemapped(0x300) = %d, want 5", got)
	}
	if len(table.RemapTable) != 2 {
		t.Errorf("remap table size = %d, want 2", len(table.RemapTable))
	}
}

func TestMultiByteRemapUnresolved(t *testing.T) {
	_, err := CompileMultiByte("bad", Entries{
		{Pointer: 10, Scalar: 0x100},
	}.Reader(), MultiBytePolicy{Remap: &RemapRange{Min: 10, Max: 10}})
	if !errors.Is(err, ErrRemapUnresolved) {
		t.Fatalf("expected ErrRemapUnresolved, got %v", err)
	}
}

func TestMultiByteDeterminism(t *testing.T) {
	entries := Entries{
		{Pointer: 100, Scalar: 0x4E00},
		{Pointer: 101, Scalar: 0x20010},
		{Pointer: 150, Scalar: 0x4E00},
	}
	policy := MultiBytePolicy{AliasPointers: []uint32{90}}
	first, err := CompileMultiByte("det", entries.Reader(), policy)
	if err != nil {
		t.Fatal(err)
	}
	second, err := CompileMultiByte("det", entries.Reader(), policy)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatal("two builds over the same input differ")
	}
}
