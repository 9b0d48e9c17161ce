package streebog

// rounds is the number of rounds of the block cipher E.
const rounds = 12

// block is a 512-bit value, least significant byte first.
type block [BlockSize]byte

func xorBlock(x, y *block) (r block) {
	for i := range r {
		r[i] = x[i] ^ y[i]
	}
	return r
}

// add512 returns x + y mod 2^512. The carry out of the last byte is dropped.
func add512(x, y *block) (r block) {
	var carry uint
	for i := range r {
		carry += uint(x[i]) + uint(y[i])
		r[i] = byte(carry)
		carry >>= 8
	}
	return r
}

// substitute is the S transform.
func substitute(x *block) (r block) {
	for i := range r {
		r[i] = pi[x[i]]
	}
	return r
}

// permute is the P transform.
func permute(x *block) (r block) {
	for i := range r {
		r[i] = x[tau[i]]
	}
	return r
}

// linear is the L transform applied to each little-endian word of x.
func linear(x *block) (r block) {
	for i := 0; i < 8; i++ {
		w := le64(x[8*i:])
		var v uint64
		for j := 0; j < 8; j++ {
			v ^= lTable[j][byte(w>>(56-8*j))]
		}
		putLE64(r[8*i:], v)
	}
	return r
}

// lps computes linear(permute(substitute(x))) in one pass: the byte that P
// moves to position 8*i+7-j comes from position 8*(7-j)+i.
func lps(x *block) (r block) {
	for i := 0; i < 8; i++ {
		var v uint64
		for j := 0; j < 8; j++ {
			v ^= lTable[j][pi[x[8*(7-j)+i]]]
		}
		putLE64(r[8*i:], v)
	}
	return r
}

// keySchedule derives the round key following k. The round constant is
// combined back to front.
func keySchedule(k *block, i int) block {
	var x block
	for j := range x {
		x[j] = k[j] ^ c[i][BlockSize-1-j]
	}
	return lps(&x)
}

// encrypt is the 12-round cipher E keyed by k1.
func encrypt(k1, m *block) block {
	k := *k1
	x := xorBlock(&k, m)
	for i := 0; i < rounds; i++ {
		x = lps(&x)
		k = keySchedule(&k, i)
		x = xorBlock(&x, &k)
	}
	return x
}

// gN is the compression function: E(LPS(h ^ n), m) ^ h ^ m.
func gN(n, h, m *block) block {
	k := xorBlock(h, n)
	k = lps(&k)
	r := encrypt(&k, m)
	for i := range r {
		r[i] ^= h[i] ^ m[i]
	}
	return r
}

// le64 reads a little-endian uint64 from at least 8 bytes.
func le64(b []byte) uint64 {
	_ = b[7]
	return uint64(b[0]) | uint64(b[1])<<8 | uint64(b[2])<<16 | uint64(b[3])<<24 |
		uint64(b[4])<<32 | uint64(b[5])<<40 | uint64(b[6])<<48 | uint64(b[7])<<56
}

// putLE64 writes v into the first 8 bytes of b, least significant first.
func putLE64(b []byte, v uint64) {
	_ = b[7]
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
	b[4] = byte(v >> 32)
	b[5] = byte(v >> 40)
	b[6] = byte(v >> 48)
	b[7] = byte(v >> 56)
}
