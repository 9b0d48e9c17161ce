package streebog

import (
	"bytes"
	"encoding"
	"testing"
)

func TestMarshalResume(t *testing.T) {
	data := pattern(3*BlockSize + 21)
	for _, v := range []Variant{Streebog256, Streebog512} {
		for _, split := range []int{0, 1, 63, 64, 100, len(data)} {
			h := NewHasher(v)
			h.Write(data[:split])
			enc, err := h.MarshalBinary()
			if err != nil {
				t.Fatalf("MarshalBinary: %v", err)
			}
			if len(enc) != marshaledSize {
				t.Fatalf("state size %d, want %d", len(enc), marshaledSize)
			}

			var resumed Hasher
			if err := resumed.UnmarshalBinary(enc); err != nil {
				t.Fatalf("UnmarshalBinary: %v", err)
			}
			if resumed.Variant() != v || !resumed.Equal(h) {
				t.Fatalf("%v split %d: resumed state differs", v, split)
			}
			resumed.Write(data[split:])
			resumed.Finish()

			whole := NewHasher(v)
			whole.Write(data)
			whole.Finish()
			if !bytes.Equal(resumed.Result(), whole.Result()) {
				t.Fatalf("%v split %d: %x vs %x", v, split, resumed.Result(), whole.Result())
			}
		}
	}
}

func TestMarshalFinished(t *testing.T) {
	h := NewHasher256()
	h.Write(m1)
	h.Finish()
	enc, _ := h.MarshalBinary()
	r := NewHasher256()
	if err := r.UnmarshalBinary(enc); err != nil {
		t.Fatal(err)
	}
	if !r.Finished() || r.ResultString() != h.ResultString() {
		t.Fatalf("finished state not restored: %q", r.ResultString())
	}

	d := New256()
	if err := d.(encoding.BinaryUnmarshaler).UnmarshalBinary(enc); err != errStateDigest {
		t.Fatalf("hash.Hash accepted finished state: %v", err)
	}
}

func TestMarshalHashAdapter(t *testing.T) {
	d := New512()
	d.Write(m2[:50])
	enc, err := d.(encoding.BinaryMarshaler).MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}
	r := New512()
	if err := r.(encoding.BinaryUnmarshaler).UnmarshalBinary(enc); err != nil {
		t.Fatal(err)
	}
	r.Write(m2[50:])
	want := Sum512(m2)
	if got := r.Sum(nil); !bytes.Equal(reversed(got), want[:]) {
		t.Fatalf("resumed hash.Hash: %x vs %x", reversed(got), want)
	}

	var h Hasher
	if err := h.UnmarshalBinary(enc); err != nil {
		t.Fatal(err)
	}
	h.Write(m2[50:])
	h.Finish()
	if !bytes.Equal(h.Result(), want[:]) {
		t.Fatalf("Hasher from hash.Hash state: %x vs %x", h.Result(), want)
	}
}

func TestUnmarshalErrors(t *testing.T) {
	h512 := NewHasher512()
	good, _ := h512.MarshalBinary()

	if err := NewHasher256().UnmarshalBinary(good); err != errStateID {
		t.Fatalf("variant mismatch: %v", err)
	}
	if err := NewHasher512().UnmarshalBinary([]byte("sb")); err != errStateID {
		t.Fatalf("short magic: %v", err)
	}
	bad := append([]byte("xyz"), good[3:]...)
	if err := NewHasher512().UnmarshalBinary(bad); err != errStateID {
		t.Fatalf("bad magic: %v", err)
	}
	if err := NewHasher512().UnmarshalBinary(good[:len(good)-1]); err != errStateSize {
		t.Fatalf("short state: %v", err)
	}
	bad = append([]byte(nil), good...)
	bad[len(magicPrefix)+2+4*BlockSize] = BlockSize
	if err := NewHasher512().UnmarshalBinary(bad); err != errStatePending {
		t.Fatalf("pending overflow: %v", err)
	}
}
