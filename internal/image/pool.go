package image

import "sync"

// Pool reuses buffers of identical dimensions and format.
//
// Thread safety: All methods are safe for concurrent use.
type Pool struct {
	mu      sync.Mutex
	buckets map[poolKey][]*Buffer
	maxSize int // max buffers per bucket
}

type poolKey struct {
	width  int
	height int
	format Format
}

// NewPool creates a pool retaining at most maxPerBucket buffers of each
// size and format. Zero means unlimited.
func NewPool(maxPerBucket int) *Pool {
	return &Pool{
		buckets: make(map[poolKey][]*Buffer),
		maxSize: maxPerBucket,
	}
}

// Get returns a transparent buffer, reusing a pooled one when possible.
func (p *Pool) Get(width, height int, format Format) (*Buffer, error) {
	key := poolKey{width: width, height: height, format: format}

	p.mu.Lock()
	bucket := p.buckets[key]
	if len(bucket) > 0 {
		buf := bucket[len(bucket)-1]
		p.buckets[key] = bucket[:len(bucket)-1]
		p.mu.Unlock()
		buf.Clear()
		return buf, nil
	}
	p.mu.Unlock()

	return NewBuffer(width, height, format)
}

// Put returns buf to the pool. A nil buf or a full bucket discards it.
func (p *Pool) Put(buf *Buffer) {
	if buf == nil {
		return
	}
	key := poolKey{width: buf.width, height: buf.height, format: buf.format}

	p.mu.Lock()
	defer p.mu.Unlock()
	bucket := p.buckets[key]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		return
	}
	p.buckets[key] = append(bucket, buf)
}

// Len returns the number of pooled buffers.
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, b := range p.buckets {
		n += len(b)
	}
	return n
}
