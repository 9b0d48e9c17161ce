package streebog

import (
	"bytes"
	"hash"
	"testing"
)

func TestHashInterchangeOrder(t *testing.T) {
	fox := []byte("The quick brown fox jumps over the lazy dog")
	tests := []struct {
		name string
		new  func() hash.Hash
		msg  []byte
		want string
	}{
		{"M1/512", New512, m1, "1b54d01a4af5b9d5cc3d86d68d285462b19abc2475222f35c085122be4ba1ffa" +
			"00ad30f8767b3a82384c6574f024c311e2a481332b08ef7f41797891c1646f48"},
		{"M1/256", New256, m1, "9d151eefd8590b89daa6ba6cb74af9275dd051026bb149a452fd84e5e57b5500"},
		{"M2/512", New512, m2, "1e88e62226bfca6f9994f1f2d51569e0daf8475a3b0fe61a5300eee46d961376" +
			"035fe83549ada2b8620fcd7c496ce5b33f0cb9dddc2b6460143b03dabac9fb28"},
		{"M2/256", New256, m2, "9dd2fe4e90409e5da87f53976d7405b0c0cac628fc669a741d50063c557e8f50"},
		{"empty/256", New256, nil, "3f539a213e97c802cc229d474c6aa32a825a360b2a933a949fd925208d9ce1bb"},
		{"fox/256", New256, fox, "3e7dea7f2384b6c5a3d0e24aaa29c05e89ddd762145030ec22c71a6db8b2c1f4"},
		{"fox/512", New512, fox, "d2b793a0bb6cb5904828b5b6dcfb443bb8f33efc06ad09368878ae4cdc8245b9" +
			"7e60802469bed1e7c21a64ff0b179a6a1e0bb74d92965450a0adab69162c00fe"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := tc.new()
			h.Write(tc.msg)
			want := decodeHex(t, tc.want)
			if got := h.Sum(nil); !bytes.Equal(got, want) {
				t.Fatalf("Sum = %x, want %x", got, want)
			}
		})
	}
}

func TestHashSumKeepsState(t *testing.T) {
	h := New512()
	h.Write(m2[:40])
	prefix := append([]byte("prefix"), h.Sum(nil)...)
	if !bytes.HasPrefix(prefix, []byte("prefix")) || len(prefix) != len("prefix")+Size512 {
		t.Fatalf("Sum did not append: %x", prefix)
	}
	h.Write(m2[40:])
	want := Sum512(m2)
	if got := h.Sum(nil); !bytes.Equal(reversed(got), want[:]) {
		t.Fatalf("Sum changed state: %x vs %x", reversed(got), want)
	}
	h.Reset()
	h.Write(m2)
	if got := h.Sum(nil); !bytes.Equal(reversed(got), want[:]) {
		t.Fatalf("after Reset: %x vs %x", reversed(got), want)
	}
}

func TestHashSizes(t *testing.T) {
	if New256().Size() != Size256 || New512().Size() != Size512 {
		t.Fatal("wrong Size")
	}
	if New256().BlockSize() != BlockSize || New512().BlockSize() != BlockSize {
		t.Fatal("wrong BlockSize")
	}
}
