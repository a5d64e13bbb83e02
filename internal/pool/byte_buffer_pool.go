// Package pool provides a sync.Pool-backed byte buffer for the text
// encoder's transient output buffer, adapted from the teacher's blob
// encoding buffer pool down to the single tier the text codec needs.
package pool

import "sync"

// Buffer sizing for a single encoded ARI. Most ARIs produce well under 1KiB
// of text; EXECSET/RPTSET with several nested references run larger, so the
// pool discards anything that grew past the threshold instead of retaining
// it for reuse.
const (
	DefaultSize   = 256
	MaxThreshold  = 1024 * 32 // 32KiB
)

// ByteBuffer is a growable byte slice meant to be borrowed from a Pool for
// the lifetime of a single Encode call and returned on every exit path.
type ByteBuffer struct {
	B []byte
}

func newByteBuffer(size int) *ByteBuffer {
	return &ByteBuffer{B: make([]byte, 0, size)}
}

// Bytes returns the buffer's current contents.
func (bb *ByteBuffer) Bytes() []byte { return bb.B }

// String returns the buffer's current contents as a string copy.
func (bb *ByteBuffer) String() string { return string(bb.B) }

// Reset empties the buffer without releasing its backing array.
func (bb *ByteBuffer) Reset() { bb.B = bb.B[:0] }

// Len returns the number of bytes written so far.
func (bb *ByteBuffer) Len() int { return len(bb.B) }

// WriteByte appends a single byte, growing the buffer if necessary.
func (bb *ByteBuffer) WriteByte(c byte) error {
	bb.B = append(bb.B, c)
	return nil
}

// WriteString appends s, growing the buffer if necessary.
func (bb *ByteBuffer) WriteString(s string) (int, error) {
	bb.B = append(bb.B, s...)
	return len(s), nil
}

// Write appends data, growing the buffer if necessary.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// Pool is a sync.Pool of ByteBuffers bounded by a max retained capacity.
type Pool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewPool creates a Pool whose buffers start at defaultSize and are
// discarded, rather than recycled, once they grow past maxThreshold.
func NewPool(defaultSize, maxThreshold int) *Pool {
	p := &Pool{maxThreshold: maxThreshold}
	p.pool.New = func() any { return newByteBuffer(defaultSize) }

	return p
}

// Get borrows a ByteBuffer from the pool.
func (p *Pool) Get() *ByteBuffer {
	bb, _ := p.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns bb to the pool, discarding it instead if it grew past the
// pool's max threshold.
func (p *Pool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if p.maxThreshold > 0 && cap(bb.B) > p.maxThreshold {
		return
	}

	bb.Reset()
	p.pool.Put(bb)
}

var defaultPool = NewPool(DefaultSize, MaxThreshold)

// Get borrows a ByteBuffer from the package's default pool.
func Get() *ByteBuffer { return defaultPool.Get() }

// Put returns bb to the package's default pool.
func Put(bb *ByteBuffer) { defaultPool.Put(bb) }
