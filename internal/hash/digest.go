// Package hash wraps xxHash64 (the teacher's choice for its own
// metric-identifier hashing, internal/hash.ID) as a streaming accumulator.
// The ARI structural hash needs to fold many heterogeneous fields — bools,
// varints, float bits, nested containers — in tree order, which a
// single-shot string hash cannot do; Digest exposes the same xxhash
// algorithm through an incremental Write-style API instead.
package hash

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Digest accumulates structural hash contributions using xxHash64.
type Digest struct {
	h *xxhash.Digest
}

// New returns a ready-to-use Digest.
func New() *Digest {
	return &Digest{h: xxhash.New()}
}

// WriteByte feeds a single tag or flag byte into the digest.
func (d *Digest) WriteByte(b byte) {
	_, _ = d.h.Write([]byte{b})
}

// WriteBool feeds a boolean as a single byte.
func (d *Digest) WriteBool(b bool) {
	if b {
		d.WriteByte(1)
	} else {
		d.WriteByte(0)
	}
}

// WriteUint64 feeds v in a fixed little-endian encoding.
func (d *Digest) WriteUint64(v uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	_, _ = d.h.Write(buf[:])
}

// WriteInt64 feeds v via its bit pattern.
func (d *Digest) WriteInt64(v int64) {
	d.WriteUint64(uint64(v))
}

// WriteFloat64 feeds v via its IEEE-754 bit pattern. NaN is first
// canonicalized to a single bit pattern so that, per the module's float
// equality rule, every NaN hashes identically. Likewise -0 is fed as +0,
// since the two compare equal.
func (d *Digest) WriteFloat64(v float64) {
	if math.IsNaN(v) {
		d.WriteUint64(math.Float64bits(math.NaN()))
		return
	}
	if v == 0 {
		v = 0
	}

	d.WriteUint64(math.Float64bits(v))
}

// WriteBytes feeds raw bytes, length-prefixed so that adjacent variable
// length fields cannot be confused with one another (e.g. "ab"+"c" vs
// "a"+"bc").
func (d *Digest) WriteBytes(b []byte) {
	d.WriteUint64(uint64(len(b)))
	_, _ = d.h.Write(b)
}

// WriteString feeds s the same way as WriteBytes.
func (d *Digest) WriteString(s string) {
	d.WriteBytes([]byte(s))
}

// Sum64 returns the accumulated digest.
func (d *Digest) Sum64() uint64 {
	return d.h.Sum64()
}
