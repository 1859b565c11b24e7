package encindex

import (
	"github.com/npillmayer/encindex/blocktrie"
)

// maxTrieBits bounds the block-size search; 1<<20 covers the full scalar
// domain in a single block.
const maxTrieBits = 20

// buildMinimalTrie compresses a sparse scalar->pointer mapping into a
// two-level block trie of minimal total size.
//
// For every candidate block size 1<<bits the code domain [0,domainSize) is
// partitioned into blocks; block contents are deduplicated by value, with an
// all-absent block seeded at lower offset 0. Among candidates whose lower
// table stays below lowerLimit, the one with the smallest len(lower)+
// len(upper) wins; on equal totals the larger block size wins. This exact
// tie-break is kept for reproducible output.
//
// Mapped cells store pointer+bias, unmapped cells store absent. The two must
// not overlap: callers pick bias/absent so that no biased pointer equals
// absent.
func buildMinimalTrie(invdata map[uint32]uint32, domainSize, lowerLimit int, bias, absent uint16) (*blocktrie.Table, error) {
	var best *blocktrie.Table
	bestTotal := 0
	for bits := 0; bits <= maxTrieBits; bits++ {
		trie := buildTrie(invdata, domainSize, bits, bias, absent)
		if len(trie.Lower) >= lowerLimit {
			continue
		}
		total := len(trie.Lower) + len(trie.Upper)
		if best == nil || total <= bestTotal {
			best = trie
			bestTotal = total
		}
	}
	if best == nil {
		return nil, ErrTrieTooLarge
	}
	lower, upper := best.Size()
	tracer().Debugf("minimal trie: bits=%d lower=%d upper=%d", best.Bits, lower, upper)
	return best, nil
}

// buildTrie builds the two-level table for one fixed block size.
func buildTrie(invdata map[uint32]uint32, domainSize, bits int, bias, absent uint16) *blocktrie.Table {
	blockLen := 1 << bits
	lower := make([]uint16, blockLen, 2*blockLen)
	for i := range lower {
		lower[i] = absent
	}
	offsets := map[string]int{blockKey(lower): 0}
	upper := make([]uint16, 0, (domainSize+blockLen-1)/blockLen)
	block := make([]uint16, blockLen)
	for start := 0; start < domainSize; start += blockLen {
		for j := range block {
			if pointer, ok := invdata[uint32(start+j)]; ok {
				block[j] = uint16(pointer) + bias
			} else {
				block[j] = absent
			}
		}
		key := blockKey(block)
		offset, seen := offsets[key]
		if !seen {
			offset = len(lower)
			offsets[key] = offset
			lower = append(lower, block...)
		}
		upper = append(upper, uint16(offset))
	}
	return &blocktrie.Table{
		Bits:   uint32(bits),
		Lower:  lower,
		Upper:  upper,
		Absent: absent,
	}
}

// blockKey encodes a block's content for deduplication.
func blockKey(block []uint16) string {
	b := make([]byte, 2*len(block))
	for i, v := range block {
		b[2*i] = byte(v)
		b[2*i+1] = byte(v >> 8)
	}
	return string(b)
}
