package streebog

import (
	"crypto/hmac"
	"errors"
	"fmt"
	"hash"
	"io"

	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/pbkdf2"
)

var (
	errIterations = errors.New("streebog: iteration count must be positive")
	errKeyLength  = errors.New("streebog: key length must be positive")
)

// NewHMAC256 returns HMAC_GOSTR3411_2012_256 keyed with key.
func NewHMAC256(key []byte) hash.Hash { return hmac.New(New256, key) }

// NewHMAC512 returns HMAC_GOSTR3411_2012_512 keyed with key.
func NewHMAC512(key []byte) hash.Hash { return hmac.New(New512, key) }

// KDF256 is KDF_GOSTR3411_2012_256 from R 50.1.113-2016:
// HMAC256(key, 0x01 | label | 0x00 | seed | 0x01 | 0x00).
func KDF256(key, label, seed []byte) []byte {
	m := NewHMAC256(key)
	m.Write([]byte{0x01})
	m.Write(label)
	m.Write([]byte{0x00})
	m.Write(seed)
	m.Write([]byte{0x01, 0x00})
	return m.Sum(nil)
}

// PBKDF2 derives keyLen bytes from password and salt with PBKDF2 over
// HMAC_GOSTR3411_2012_512, as profiled by R 50.1.111-2016.
func PBKDF2(password, salt []byte, iter, keyLen int) ([]byte, error) {
	if iter < 1 {
		return nil, errIterations
	}
	if keyLen < 1 {
		return nil, errKeyLength
	}
	return pbkdf2.Key(password, salt, iter, keyLen, New512), nil
}

// HKDF derives n bytes with RFC 5869 HKDF over HMAC_GOSTR3411_2012_512.
// n is limited to 255*Size512.
func HKDF(secret, salt, info []byte, n int) ([]byte, error) {
	if n < 1 {
		return nil, errKeyLength
	}
	out := make([]byte, n)
	if _, err := io.ReadFull(hkdf.New(New512, secret, salt, info), out); err != nil {
		return nil, fmt.Errorf("streebog: hkdf: %w", err)
	}
	return out, nil
}
