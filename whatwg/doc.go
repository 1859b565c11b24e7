/*
Package whatwg sources encoding-index data from the WHATWG Encoding
Standard.

It knows the published index files (https://encoding.spec.whatwg.org,
index-<name>.txt), fetches them, and streams their entries through the
encindex.EntryReader interface, together with the per-encoding compilation
policies (Big5 alias pointers, JIS X 0208 remapping, gb18030 range
carve-out) that the standard's quirks require.
*/
package whatwg

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'encindex.whatwg'
func tracer() tracing.Trace {
	return tracing.Select("encindex.whatwg")
}
