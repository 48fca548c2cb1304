package fonts

import "sync"

// coverage memoizes cmap lookups of one face.
// Every rune takes two bits (queried, present) inside 256 rune blocks
// allocated on first use.
type coverage struct {
	mu     sync.RWMutex
	blocks map[uint32]*coverageBlock
}

type coverageBlock struct {
	bits [8]uint64
}

func newCoverage() *coverage {
	return &coverage{blocks: make(map[uint32]*coverageBlock)}
}

func coverageBit(r rune) (block uint32, word uint32, shift uint32) {
	bit := (uint32(r) & 0xFF) * 2
	return uint32(r) >> 8, bit / 64, bit % 64
}

// lookup returns the memoized answer for r and whether r was queried before.
func (c *coverage) lookup(r rune) (present, queried bool) {
	blockIdx, word, shift := coverageBit(r)

	c.mu.RLock()
	defer c.mu.RUnlock()

	b, ok := c.blocks[blockIdx]
	if !ok {
		return false, false
	}
	w := b.bits[word] >> shift
	return w&2 != 0, w&1 != 0
}

func (c *coverage) store(r rune, present bool) {
	blockIdx, word, shift := coverageBit(r)

	c.mu.Lock()
	defer c.mu.Unlock()

	b, ok := c.blocks[blockIdx]
	if !ok {
		b = &coverageBlock{}
		c.blocks[blockIdx] = b
	}
	b.bits[word] |= 1 << shift
	if present {
		b.bits[word] |= 2 << shift
	} else {
		b.bits[word] &^= 2 << shift
	}
}

// has answers from the memo, asking lookupFn on the first query of r.
func (c *coverage) has(r rune, lookupFn func(rune) bool) bool {
	if present, queried := c.lookup(r); queried {
		return present
	}
	present := lookupFn(r)
	c.store(r, present)
	return present
}
