package streebog

import "errors"

// Marshaled state layout:
//
//	magic (4) | finished (1) | h | N | sigma | buffer (4*64) | pending length (1) | result (64)
const (
	magicPrefix   = "sbg"
	marshaledSize = len(magicPrefix) + 1 + 1 + 4*BlockSize + 1 + Size512
)

var (
	errStateID      = errors.New("streebog: invalid hash state identifier")
	errStateSize    = errors.New("streebog: invalid hash state size")
	errStatePending = errors.New("streebog: invalid hash state pending length")
	errStateDigest  = errors.New("streebog: hash state is finished")
)

func (v Variant) magic() string {
	if v == Streebog256 {
		return magicPrefix + "\x01"
	}
	return magicPrefix + "\x02"
}

// parseMagic returns the variant named by the state identifier at the start
// of b. want, if valid, must match it.
func parseMagic(b []byte, want Variant) (Variant, error) {
	if len(b) < len(magicPrefix)+1 || string(b[:len(magicPrefix)]) != magicPrefix {
		return 0, errStateID
	}
	var v Variant
	switch b[len(magicPrefix)] {
	case 0x01:
		v = Streebog256
	case 0x02:
		v = Streebog512
	default:
		return 0, errStateID
	}
	if want.valid() && want != v {
		return 0, errStateID
	}
	return v, nil
}

func (s *state) appendBinary(b []byte) []byte {
	b = append(b, s.h[:]...)
	b = append(b, s.n[:]...)
	b = append(b, s.sigma[:]...)
	b = append(b, s.buf[:]...)
	return append(b, byte(s.nx))
}

func (s *state) consume(b []byte) ([]byte, error) {
	b = b[copy(s.h[:], b):]
	b = b[copy(s.n[:], b):]
	b = b[copy(s.sigma[:], b):]
	b = b[copy(s.buf[:], b):]
	if int(b[0]) >= BlockSize {
		return nil, errStatePending
	}
	s.nx = int(b[0])
	return b[1:], nil
}

func marshalState(v Variant, finished bool, st *state, result *[Size512]byte) []byte {
	b := make([]byte, 0, marshaledSize)
	b = append(b, v.magic()...)
	if finished {
		b = append(b, 1)
	} else {
		b = append(b, 0)
	}
	b = st.appendBinary(b)
	return append(b, result[:]...)
}

func unmarshalState(b []byte, want Variant) (v Variant, finished bool, st state, result [Size512]byte, err error) {
	if v, err = parseMagic(b, want); err != nil {
		return
	}
	if len(b) != marshaledSize {
		err = errStateSize
		return
	}
	b = b[len(magicPrefix)+1:]
	finished = b[0] != 0
	if b, err = st.consume(b[1:]); err != nil {
		return
	}
	copy(result[:], b)
	return
}

// MarshalBinary encodes the hasher state, including a finished result, so
// hashing can be resumed later with UnmarshalBinary.
func (h *Hasher) MarshalBinary() ([]byte, error) {
	return marshalState(h.variant, h.finished, &h.st, &h.result), nil
}

// UnmarshalBinary restores a state produced by MarshalBinary. A zero Hasher
// takes the variant recorded in the state.
func (h *Hasher) UnmarshalBinary(b []byte) error {
	v, finished, st, result, err := unmarshalState(b, h.variant)
	if err != nil {
		return err
	}
	h.variant, h.finished, h.st, h.result = v, finished, st, result
	return nil
}

func (d *digest) MarshalBinary() ([]byte, error) {
	var result [Size512]byte
	return marshalState(d.variant, false, &d.st, &result), nil
}

func (d *digest) UnmarshalBinary(b []byte) error {
	_, finished, st, _, err := unmarshalState(b, d.variant)
	if err != nil {
		return err
	}
	if finished {
		return errStateDigest
	}
	d.st = st
	return nil
}
