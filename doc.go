/*
Package encindex compiles character-encoding index data into compact,
branch-cheap lookup tables.

An encoding index is a sparse mapping between byte-sequence "pointers" and
Unicode code points ("scalars"), as published by the WHATWG Encoding
Standard (https://encoding.spec.whatwg.org). Raw index domains reach up to
0x110000 entries, but actual assignments are sparse and repetitive, so this
package synthesizes a deduplicating two-level block trie (see package
blocktrie) for the backward (scalar to pointer) direction, and a dense array
for the forward direction. Indices that consist of a few large contiguous
linear ranges instead get sorted breakpoint tables queried by binary search.

Three compilers cover the closed set of index shapes:

  - CompileSingleByte for 8-bit code pages (128 pointers),
  - CompileMultiByte for legacy CJK double-byte indices, with optional
    supplementary-plane bitplane, duplicate handling, a remap sub-table and
    synthetic alias pointers,
  - CompileRanges for indices expressed as linear ranges.

Index data is streamed through the EntryReader interface; parsing concrete
file formats lives outside this package (see package whatwg). Serializing
the compiled tables into Go source is the job of package emit.

All compilation is deterministic and free of shared state: compiling the
same input twice yields identical tables, and encodings never affect each
other's builds.

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package encindex

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'encindex'
func tracer() tracing.Trace {
	return tracing.Select("encindex")
}
