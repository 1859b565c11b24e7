package whatwg

import (
	"fmt"
	"sort"
	"strings"

	"github.com/derekparker/trie"
	"github.com/npillmayer/encindex"
)

// Kind selects one of the three table-compilation strategies.
type Kind int

const (
	SingleByte Kind = iota // 8-bit code page, direct forward table
	MultiByte              // legacy CJK index, trie-compressed backward table
	Ranges                 // contiguous linear ranges, binary search
)

// Index describes one published encoding index: its name, the group
// (subdirectory) it is emitted into, its compilation strategy and the
// encoding-specific policy knobs.
type Index struct {
	Name            string
	Group           string
	Kind            Kind
	MultiBytePolicy encindex.MultiBytePolicy
	RangePolicy     encindex.RangePolicy
}

// Compile runs the index's compilation strategy over a stream of entries.
func (idx Index) Compile(r encindex.EntryReader) (encindex.Table, error) {
	switch idx.Kind {
	case SingleByte:
		return encindex.CompileSingleByte(idx.Name, r)
	case MultiByte:
		return encindex.CompileMultiByte(idx.Name, r, idx.MultiBytePolicy)
	case Ranges:
		return encindex.CompileRanges(idx.Name, r, idx.RangePolicy)
	}
	return nil, fmt.Errorf("whatwg: unknown index kind %d", idx.Kind)
}

func singleByte(group string, names ...string) []Index {
	indices := make([]Index, len(names))
	for i, name := range names {
		indices[i] = Index{Name: name, Group: group, Kind: SingleByte}
	}
	return indices
}

// indices lists every published index, in emission order.
var indices = append(singleByte("singlebyte",
	"ibm866",
	"iso-8859-2",
	"iso-8859-3",
	"iso-8859-4",
	"iso-8859-5",
	"iso-8859-6",
	"iso-8859-7",
	"iso-8859-8",
	"iso-8859-10",
	"iso-8859-13",
	"iso-8859-14",
	"iso-8859-15",
	"iso-8859-16",
	"koi8-r",
	"koi8-u",
	"macintosh",
	"windows-874",
	"windows-1250",
	"windows-1251",
	"windows-1252",
	"windows-1253",
	"windows-1254",
	"windows-1255",
	"windows-1256",
	"windows-1257",
	"windows-1258",
	"x-mac-cyrillic",
), []Index{
	{
		Name:  "big5",
		Group: "tradchinese",
		Kind:  MultiByte,
		// Big5 has four two-letter forward mappings; reserved pointers map
		// forward-only to placeholder scalars.
		MultiBytePolicy: encindex.MultiBytePolicy{
			AliasPointers: []uint32{1133, 1135, 1164, 1166},
		},
	},
	{
		Name:  "euc-kr",
		Group: "korean",
		Kind:  MultiByte,
	},
	{
		Name:  "gb18030",
		Group: "simpchinese",
		Kind:  MultiByte,
	},
	{
		Name:  "jis0208",
		Group: "japanese",
		Kind:  MultiByte,
		// JIS X 0208 carries the pointer ranges [8272,8836) and [8836,11280)
		// for EUC-JP and Shift_JIS respectively; backward lookup favors the
		// former, so the latter gets a remap sub-table. Every allocated code
		// in [8272,8836) has a counterpart elsewhere.
		MultiBytePolicy: encindex.MultiBytePolicy{
			Remap: &encindex.RemapRange{Min: 8272, Max: 8835},
		},
	},
	{
		Name:  "jis0212",
		Group: "japanese",
		Kind:  MultiByte,
	},
	{
		Name:  "gb18030-ranges",
		Group: "simpchinese",
		Kind:  Ranges,
		RangePolicy: encindex.RangePolicy{
			KeyCeil:     1237575,
			Invalid:     &encindex.CarveOut{Lo: 39419, Hi: 189000},
			KeyUBound:   0x110000,
			ValueUBound: 126 * 10 * 126 * 10,
		},
	},
}...)

// byName supports exact and prefix lookups over the index names.
var byName = func() *trie.Trie {
	t := trie.New()
	for _, idx := range indices {
		t.Add(idx.Name, idx)
	}
	return t
}()

// Lookup returns the index registered under name.
func Lookup(name string) (Index, bool) {
	node, ok := byName.Find(name)
	if !ok {
		return Index{}, false
	}
	return node.Meta().(Index), true
}

// WithPrefix returns the indices whose name starts with prefix, sorted by
// name.
func WithPrefix(prefix string) []Index {
	names := byName.PrefixSearch(prefix)
	sort.Strings(names)
	found := make([]Index, 0, len(names))
	for _, name := range names {
		if idx, ok := Lookup(name); ok {
			found = append(found, idx)
		}
	}
	return found
}

// Filter returns, in emission order, the indices whose name contains
// substr. The empty string matches everything.
func Filter(substr string) []Index {
	found := make([]Index, 0, len(indices))
	for _, idx := range indices {
		if strings.Contains(idx.Name, substr) {
			found = append(found, idx)
		}
	}
	return found
}

// Names returns all registered index names in emission order.
func Names() []string {
	names := make([]string, len(indices))
	for i, idx := range indices {
		names[i] = idx.Name
	}
	return names
}
