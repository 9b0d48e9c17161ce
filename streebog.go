// Package streebog implements the GOST R 34.11-2012 hash function, also
// known as Streebog, with 256-bit and 512-bit digests.
//
// Hasher follows the finish-then-read lifecycle: bytes are written, Finish
// runs the finalization once, and Result returns the digest most significant
// byte first, the way the standard prints it. Writes and Finish calls after
// the first Finish are ignored until Reset.
//
// New256 and New512 return hash.Hash values whose Sum emits the same digest
// in reverse, i.e. in the internal little-endian byte order. That is the
// order used on the wire by HMAC, KDF and PBKDF2 constructions built on
// Streebog (R 50.1.113-2016, R 50.1.111-2016) and by most other
// implementations.
package streebog

import (
	"bytes"
	"encoding/hex"
	"strconv"
)

const (
	// Size256 is the size of a Streebog-256 digest in bytes.
	Size256 = 32
	// Size512 is the size of a Streebog-512 digest in bytes.
	Size512 = 64
	// BlockSize is the size of a compressed block in bytes.
	BlockSize = 64
)

// Variant selects the digest size.
type Variant int

const (
	Streebog256 Variant = 256
	Streebog512 Variant = 512
)

// Size returns the digest size of v in bytes.
func (v Variant) Size() int {
	if v == Streebog256 {
		return Size256
	}
	return Size512
}

func (v Variant) String() string {
	switch v {
	case Streebog256:
		return "Streebog-256"
	case Streebog512:
		return "Streebog-512"
	}
	return "Streebog(invalid)"
}

func (v Variant) valid() bool {
	return v == Streebog256 || v == Streebog512
}

// iv is all zero bytes for the 512-bit digest and all 0x01 bytes for the
// 256-bit one.
func (v Variant) iv() (h block) {
	if v == Streebog256 {
		for i := range h {
			h[i] = 0x01
		}
	}
	return h
}

// extract returns the part of the final chaining value kept as the digest,
// still least significant byte first.
func (v Variant) extract(h *block) []byte {
	return h[BlockSize-v.Size():]
}

var (
	zero block
	// blockBits is 512 as a little-endian 512-bit number.
	blockBits = block{1: 0x02}
)

// state is the streaming context shared by Hasher and the hash.Hash adapters.
type state struct {
	h     block
	n     block
	sigma block
	buf   block
	nx    int
}

func (s *state) reset(v Variant) {
	*s = state{h: v.iv()}
}

// compress folds one full block into the chaining value and advances the
// bit counter and the checksum.
func (s *state) compress(m *block) {
	s.h = gN(&s.n, &s.h, m)
	s.n = add512(&s.n, &blockBits)
	s.sigma = add512(&s.sigma, m)
}

func (s *state) write(p []byte) {
	if s.nx > 0 {
		n := copy(s.buf[s.nx:], p)
		s.nx += n
		p = p[n:]
		if s.nx == BlockSize {
			s.compress(&s.buf)
			s.nx = 0
		}
	}

	for len(p) >= BlockSize {
		s.compress((*block)(p[:BlockSize]))
		p = p[BlockSize:]
	}

	if len(p) > 0 {
		s.nx = copy(s.buf[:], p)
	}
}

// pad returns the pending bytes followed by 0x01 and zeros.
func (s *state) pad() (m block) {
	copy(m[:], s.buf[:s.nx])
	m[s.nx] = 0x01
	return m
}

// finalize pads the pending bytes, folds the tail, the bit counter and the
// checksum into the chaining value and returns it. s is left finalized.
func (s *state) finalize() block {
	m := s.pad()

	// The tail is shorter than a block, so its bit length fits in 16 bits.
	var length block
	bits := s.nx * 8
	length[0] = byte(bits)
	length[1] = byte(bits >> 8)

	s.h = gN(&s.n, &s.h, &m)
	s.n = add512(&s.n, &length)
	s.sigma = add512(&s.sigma, &m)
	s.h = gN(&zero, &s.h, &s.n)
	s.h = gN(&zero, &s.h, &s.sigma)
	return s.h
}

func (s *state) equal(o *state) bool {
	return s.h == o.h && s.n == o.n && s.sigma == o.sigma &&
		bytes.Equal(s.buf[:s.nx], o.buf[:o.nx])
}

// Sum256 computes the Streebog-256 digest of data, most significant byte first.
func Sum256(data []byte) (sum [Size256]byte) {
	h := NewHasher256()
	h.Write(data)
	h.Finish()
	copy(sum[:], h.result[:Size256])
	return sum
}

// Sum512 computes the Streebog-512 digest of data, most significant byte first.
func Sum512(data []byte) (sum [Size512]byte) {
	h := NewHasher512()
	h.Write(data)
	h.Finish()
	copy(sum[:], h.result[:Size512])
	return sum
}

// Hasher is a streaming Streebog hasher. It is not safe for concurrent use.
type Hasher struct {
	st       state
	variant  Variant
	finished bool
	result   [Size512]byte
}

// NewHasher returns a fresh hasher for v. It panics if v is not
// Streebog256 or Streebog512.
func NewHasher(v Variant) *Hasher {
	if !v.valid() {
		panic("streebog: invalid variant " + strconv.Itoa(int(v)))
	}
	h := &Hasher{variant: v}
	h.Reset()
	return h
}

// NewHasher256 returns a fresh Streebog-256 hasher.
func NewHasher256() *Hasher { return NewHasher(Streebog256) }

// NewHasher512 returns a fresh Streebog-512 hasher.
func NewHasher512() *Hasher { return NewHasher(Streebog512) }

// Reset discards all input and returns the hasher to its initial state.
func (h *Hasher) Reset() {
	h.st.reset(h.variant)
	h.finished = false
	h.result = [Size512]byte{}
}

// Write adds p to the running hash. It never returns an error. Once the
// hasher is finished the data is dropped.
func (h *Hasher) Write(p []byte) (int, error) {
	if !h.finished {
		h.st.write(p)
	}
	return len(p), nil
}

// Finish completes the hash. Calls after the first are no-ops.
func (h *Hasher) Finish() {
	if h.finished {
		return
	}
	final := h.st.finalize()
	src := h.variant.extract(&final)
	for i := range src {
		h.result[i] = src[len(src)-1-i]
	}
	h.finished = true
}

// Finished reports whether Finish has been called since the last Reset.
func (h *Hasher) Finished() bool { return h.finished }

// Result returns a copy of the digest, most significant byte first. It is
// empty until Finish is called.
func (h *Hasher) Result() []byte {
	if !h.finished {
		return []byte{}
	}
	return append([]byte(nil), h.result[:h.variant.Size()]...)
}

// ResultString returns "0x" followed by the lowercase hex digest, or the
// empty string until Finish is called.
func (h *Hasher) ResultString() string {
	if !h.finished {
		return ""
	}
	return "0x" + hex.EncodeToString(h.result[:h.variant.Size()])
}

// Variant returns the digest variant of h.
func (h *Hasher) Variant() Variant { return h.variant }

// Size returns the digest size in bytes.
func (h *Hasher) Size() int { return h.variant.Size() }

// BlockSize returns the hash's underlying block size.
func (h *Hasher) BlockSize() int { return BlockSize }

// Equal reports whether h and o hold the same chaining value, bit counter,
// checksum and pending bytes.
func (h *Hasher) Equal(o *Hasher) bool {
	return h.st.equal(&o.st)
}
