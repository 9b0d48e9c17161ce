package streebog

// lTable[j][b] is the product of byte b, placed as the j-th most significant
// byte of a word, with the matrix a. XORing eight lookups replaces the
// 64x64 bit-matrix multiply of the linear transform.
var lTable = buildLTable()

func buildLTable() (t [8][256]uint64) {
	for j := 0; j < 8; j++ {
		for b := 0; b < 256; b++ {
			var v uint64
			for k := 0; k < 8; k++ {
				if b&(0x80>>k) != 0 {
					v ^= a[j*8+k]
				}
			}
			t[j][b] = v
		}
	}
	return t
}
