/*
Package emit serializes compiled encoding-index tables into Go source.

Each index becomes one self-contained file: the table arrays plus the
Forward/Backward accessors bound to them, in the shape documented by the
encindex compilers. Emission is deterministic; running the generator twice
over the same input yields byte-identical files.
*/
package emit

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/encindex"
)

// Index writes the Go source for one compiled index to w. The comments are
// the free-text commentary lines of the source index file.
func Index(w io.Writer, name string, comments []string, table encindex.Table) error {
	p := &printer{w: w}
	p.header(name, comments)
	switch t := table.(type) {
	case *encindex.SingleByteTable:
		p.singleByte(t)
	case *encindex.MultiByteTable:
		p.multiByte(t)
	case *encindex.RangeTable:
		p.ranges(t)
	default:
		return fmt.Errorf("emit: unknown table kind %T", table)
	}
	return p.err
}

// PackageName derives the generated package name from an index name.
func PackageName(name string) string {
	return strings.ReplaceAll(name, "-", "_")
}

// printer accumulates output with a sticky error.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) header(name string, comments []string) {
	p.printf("// AUTOGENERATED FROM index-%s.txt, ORIGINAL COMMENT FOLLOWS:\n//\n", name)
	for _, c := range comments {
		p.printf("//%s\n", c)
	}
	p.printf("\npackage %s\n", PackageName(name))
}

func (p *printer) singleByte(t *encindex.SingleByteTable) {
	p.printf("\nvar forwardTable = [...]uint16{\n")
	p.commaSeparated(u16s(t.ForwardTable[:]))
	p.printf("}\n")
	p.printf("\n// Forward returns the code point for pointer code in this index.\n")
	p.printf("func Forward(code byte) uint16 {\n")
	p.printf("\treturn forwardTable[code-0x80]\n")
	p.printf("}\n")
	p.printf("\nvar backwardTableLower = [...]uint8{\n")
	p.commaSeparated(u16s(t.BackwardTable.Lower))
	p.printf("}\n")
	p.printf("\nvar backwardTableUpper = [...]uint16{\n")
	p.commaSeparated(u16s(t.BackwardTable.Upper))
	p.printf("}\n")
	p.printf("\n// Backward returns the pointer for code point code in this index.\n")
	p.printf("func Backward(code uint32) byte {\n")
	p.printf("\toffset := uint32(0)\n")
	p.printf("\tif i := code >> %d; i < %d {\n", t.BackwardTable.Bits, len(t.BackwardTable.Upper))
	p.printf("\t\toffset = uint32(backwardTableUpper[i])\n")
	p.printf("\t}\n")
	p.printf("\treturn backwardTableLower[offset+(code&%d)]\n", 1<<t.BackwardTable.Bits-1)
	p.printf("}\n")
}

func (p *printer) multiByte(t *encindex.MultiByteTable) {
	p.printf("\nvar forwardTable = [...]uint16{\n")
	p.commaSeparated(u16s(t.ForwardTable))
	p.printf("}\n")
	if t.MoreBits != nil {
		p.printf("\nvar forwardTableMore = [...]uint32{\n")
		p.commaSeparated(u32s(t.MoreBits))
		p.printf("}\n")
	}
	p.printf("\n// Forward returns the code point for pointer code in this index.\n")
	p.printf("func Forward(code uint16) uint32 {\n")
	if t.MinKey != 0 {
		p.printf("\tc := uint32(code) - %d\n", t.MinKey)
	} else {
		p.printf("\tc := uint32(code)\n")
	}
	p.printf("\tif c >= %d {\n\t\treturn 0xffff\n\t}\n", len(t.ForwardTable))
	if t.MoreBits != nil {
		p.printf("\treturn uint32(forwardTable[c]) | (forwardTableMore[c>>5]>>(c&31)&1)<<17\n")
	} else {
		p.printf("\treturn uint32(forwardTable[c])\n")
	}
	p.printf("}\n")
	p.printf("\nvar backwardTableLower = [...]uint16{\n")
	p.commaSeparated(u16s(t.BackwardTable.Lower))
	p.printf("}\n")
	p.printf("\nvar backwardTableUpper = [...]uint16{\n")
	p.commaSeparated(u16s(t.BackwardTable.Upper))
	p.printf("}\n")
	p.printf("\n// Backward returns the pointer for code point code in this index.\n")
	p.printf("func Backward(code uint32) uint16 {\n")
	p.printf("\toffset := uint32(0)\n")
	p.printf("\tif i := code >> %d; i < %d {\n", t.BackwardTable.Bits, len(t.BackwardTable.Upper))
	p.printf("\t\toffset = uint32(backwardTableUpper[i])\n")
	p.printf("\t}\n")
	p.printf("\treturn backwardTableLower[offset+(code&%d)]\n", 1<<t.BackwardTable.Bits-1)
	p.printf("}\n")
	if t.RemapTable != nil {
		p.printf("\nvar backwardTableRemapped = [...]uint16{\n")
		p.commaSeparated(u16s(t.RemapTable))
		p.printf("}\n")
		p.printf("\n// BackwardRemapped is Backward with pointers in [%d,%d] redirected\n", t.RemapMin, t.RemapMax)
		p.printf("// to their counterparts outside that range.\n")
		p.printf("func BackwardRemapped(code uint32) uint16 {\n")
		p.printf("\tv := Backward(code)\n")
		p.printf("\tif v >= %d && v <= %d {\n", t.RemapMin, t.RemapMax)
		p.printf("\t\treturn backwardTableRemapped[v-%d]\n", t.RemapMin)
		p.printf("\t}\n")
		p.printf("\treturn v\n")
		p.printf("}\n")
	}
	p.printf("\n// Duplicates lists pointers that are valid forward but unreachable backward.\n")
	p.printf("var Duplicates = [...]uint16{\n")
	p.commaSeparated(u32s(t.Dups))
	p.printf("}\n")
}

func (p *printer) ranges(t *encindex.RangeTable) {
	p.printf("\nimport \"sort\"\n")
	p.printf("\nvar forwardTable = [...]uint32{\n")
	p.commaSeparated(u32s(t.Values))
	p.printf("}\n")
	p.printf("\nvar backwardTable = [...]uint32{\n")
	p.commaSeparated(u32s(t.Keys))
	p.printf("}\n")
	p.printf("\n// Forward returns the code point for pointer code in this index.\n")
	p.printf("func Forward(code uint32) uint32 {\n")
	if t.MinKey > 0 {
		p.printf("\tif code < %d {\n\t\treturn 0xffffffff\n\t}\n", t.MinKey)
	}
	switch {
	case t.Invalid != nil && t.KeyCeil != 0:
		p.printf("\tif (code > %d && code < %d) || code > %d {\n\t\treturn 0xffffffff\n\t}\n",
			t.Invalid.Lo, t.Invalid.Hi, t.KeyCeil)
	case t.Invalid != nil:
		p.printf("\tif code > %d && code < %d {\n\t\treturn 0xffffffff\n\t}\n", t.Invalid.Lo, t.Invalid.Hi)
	case t.KeyCeil != 0:
		p.printf("\tif code > %d {\n\t\treturn 0xffffffff\n\t}\n", t.KeyCeil)
	}
	p.printf("\ti := sort.Search(len(backwardTable), func(i int) bool { return backwardTable[i] > code }) - 1\n")
	p.printf("\treturn code - backwardTable[i] + forwardTable[i]\n")
	p.printf("}\n")
	p.printf("\n// Backward returns the pointer for code point code in this index.\n")
	p.printf("func Backward(code uint32) uint32 {\n")
	if t.MinValue > 0 {
		p.printf("\tif code < %d {\n\t\treturn 0xffffffff\n\t}\n", t.MinValue)
	}
	p.printf("\ti := sort.Search(len(forwardTable), func(i int) bool { return forwardTable[i] > code }) - 1\n")
	p.printf("\treturn code - forwardTable[i] + backwardTable[i]\n")
	p.printf("}\n")
}

// commaSeparated writes values as "v, " runs filled up to 80 columns,
// indented one tab.
func (p *printer) commaSeparated(values []string) {
	const width = 80
	buffered := ""
	for _, v := range values {
		if 1+len(buffered)+len(v) <= width {
			buffered += v
			continue
		}
		p.printf("\t%s\n", strings.TrimRight(buffered, " "))
		buffered = v
	}
	if buffered != "" {
		p.printf("\t%s\n", strings.TrimRight(buffered, " "))
	}
}

func u16s(values []uint16) []string {
	formatted := make([]string, len(values))
	for i, v := range values {
		formatted[i] = fmt.Sprintf("%d, ", v)
	}
	return formatted
}

func u32s(values []uint32) []string {
	formatted := make([]string, len(values))
	for i, v := range values {
		formatted[i] = fmt.Sprintf("%d, ", v)
	}
	return formatted
}
