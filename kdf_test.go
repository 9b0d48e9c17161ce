package streebog

import (
	"bytes"
	"testing"
)

// Vectors from R 50.1.113-2016.
var (
	kdfKey = []byte{
		0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f,
		0x10, 0x11, 0x12, 0x13, 0x14, 0x15, 0x16, 0x17, 0x18, 0x19, 0x1a, 0x1b, 0x1c, 0x1d, 0x1e, 0x1f,
	}
	hmacData = []byte{0x01, 0x26, 0xbd, 0xb8, 0x78, 0x00, 0xaf, 0x21, 0x43, 0x41, 0x45, 0x65, 0x63, 0x78, 0x01, 0x00}
)

func TestHMAC256(t *testing.T) {
	m := NewHMAC256(kdfKey)
	m.Write(hmacData)
	want := decodeHex(t, "a1aa5f7de402d7b3d323f2991c8d4534013137010a83754fd0af6d7cd4922ed9")
	if got := m.Sum(nil); !bytes.Equal(got, want) {
		t.Fatalf("HMAC256 = %x, want %x", got, want)
	}
}

func TestHMAC512(t *testing.T) {
	m := NewHMAC512(kdfKey)
	m.Write(hmacData)
	want := decodeHex(t, "a59bab22ecae19c65fbde6e5f4e9f5d8549d31f037f9df9b905500e171923a77"+
		"3d5f1530f2ed7e964cb2eedc29e9ad2f3afe93b2814f79f5000ffc0366c251e6")
	if got := m.Sum(nil); !bytes.Equal(got, want) {
		t.Fatalf("HMAC512 = %x, want %x", got, want)
	}
}

func TestKDF256(t *testing.T) {
	label := []byte{0x26, 0xbd, 0xb8, 0x78}
	seed := []byte{0xaf, 0x21, 0x43, 0x41, 0x45, 0x65, 0x63, 0x78}
	want := decodeHex(t, "a1aa5f7de402d7b3d323f2991c8d4534013137010a83754fd0af6d7cd4922ed9")
	if got := KDF256(kdfKey, label, seed); !bytes.Equal(got, want) {
		t.Fatalf("KDF256 = %x, want %x", got, want)
	}
}

// Vectors from R 50.1.111-2016.
func TestPBKDF2(t *testing.T) {
	tests := []struct {
		iter int
		want string
	}{
		{1, "64770af7f748c3b1c9ac831dbcfd85c26111b30a8a657ddc3056b80ca73e040d" +
			"2854fd36811f6d825cc4ab66ec0a68a490a9e5cf5156b3a2b7eecddbf9a16b47"},
		{2, "5a585bafdfbb6e8830d6d68aa3b43ac00d2e4aebce01c9b31c2caed56f0236d4" +
			"d34b2b8fbd2c4e89d54d46f50e47d45bbac301571743119e8d3c42ba66d348de"},
		{4096, "e52deb9a2d2aaff4e2ac9d47a41f34c20376591c67807f0477e32549dc341bc7" +
			"867c09841b6d58e29d0347c996301d55df0d34e47cf68f4e3c2cdaf1d9ab86c3"},
	}
	for _, tc := range tests {
		got, err := PBKDF2([]byte("password"), []byte("salt"), tc.iter, 64)
		if err != nil {
			t.Fatal(err)
		}
		if want := decodeHex(t, tc.want); !bytes.Equal(got, want) {
			t.Fatalf("PBKDF2 c=%d = %x, want %x", tc.iter, got, want)
		}
	}
}

func TestPBKDF2Errors(t *testing.T) {
	if _, err := PBKDF2([]byte("p"), []byte("s"), 0, 32); err != errIterations {
		t.Fatalf("iter 0: %v", err)
	}
	if _, err := PBKDF2([]byte("p"), []byte("s"), 1, 0); err != errKeyLength {
		t.Fatalf("keyLen 0: %v", err)
	}
}

func TestHKDF(t *testing.T) {
	secret, salt, info := []byte("secret"), []byte("salt"), []byte("info")
	out, err := HKDF(secret, salt, info, 2*Size512)
	if err != nil {
		t.Fatal(err)
	}

	// RFC 5869: PRK = HMAC(salt, secret), T(1) = HMAC(PRK, info | 0x01),
	// T(2) = HMAC(PRK, T(1) | info | 0x02).
	m := NewHMAC512(salt)
	m.Write(secret)
	prk := m.Sum(nil)
	m = NewHMAC512(prk)
	m.Write(info)
	m.Write([]byte{0x01})
	t1 := m.Sum(nil)
	m.Reset()
	m.Write(t1)
	m.Write(info)
	m.Write([]byte{0x02})
	t2 := m.Sum(nil)
	if want := append(t1, t2...); !bytes.Equal(out, want) {
		t.Fatalf("HKDF = %x, want %x", out, want)
	}

	short, _ := HKDF(secret, salt, info, 10)
	if !bytes.Equal(short, out[:10]) {
		t.Fatalf("HKDF prefix = %x, want %x", short, out[:10])
	}
	if _, err := HKDF(secret, salt, info, 255*Size512+1); err == nil {
		t.Fatal("HKDF accepted an over-long request")
	}
	if _, err := HKDF(secret, salt, info, 0); err != errKeyLength {
		t.Fatalf("HKDF n=0: %v", err)
	}
}
