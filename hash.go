package streebog

import "hash"

var _ hash.Hash = (*digest)(nil)

// digest adapts the streaming state to hash.Hash. Sum works on a copy, so
// writes may continue after it.
type digest struct {
	st      state
	variant Variant
}

// New256 returns a hash.Hash computing Streebog-256. Sum appends the digest
// least significant byte first.
func New256() hash.Hash {
	d := &digest{variant: Streebog256}
	d.Reset()
	return d
}

// New512 returns a hash.Hash computing Streebog-512. Sum appends the digest
// least significant byte first.
func New512() hash.Hash {
	d := &digest{variant: Streebog512}
	d.Reset()
	return d
}

func (d *digest) Reset() { d.st.reset(d.variant) }

func (d *digest) Size() int { return d.variant.Size() }

func (d *digest) BlockSize() int { return BlockSize }

func (d *digest) Write(p []byte) (int, error) {
	d.st.write(p)
	return len(p), nil
}

func (d *digest) Sum(b []byte) []byte {
	st := d.st
	final := st.finalize()
	return append(b, d.variant.extract(&final)...)
}
