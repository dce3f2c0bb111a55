package codec

import (
	"encoding/binary"
	"fmt"
	"math/big"
)

// IntToSignedBytes returns the canonical atom encoding of n.
func IntToSignedBytes(n *big.Int) []byte {
	switch n.Sign() {
	case 0:
		return []byte{}
	case 1:
		b := n.Bytes()
		if b[0]&0x80 != 0 {
			return append([]byte{0x00}, b...)
		}
		return b
	}

	// For n < 0 the two's complement bytes are the complement of (-n - 1).
	m := new(big.Int).Neg(n)
	m.Sub(m, big.NewInt(1))
	mb := m.Bytes()
	if len(mb) == 0 {
		return []byte{0xff}
	}
	for i := range mb {
		mb[i] = ^mb[i]
	}
	if mb[0]&0x80 == 0 {
		return append([]byte{0xff}, mb...)
	}
	return mb
}

// SignedBytesToInt decodes an atom as a two's complement big endian integer.
// The empty atom is zero. Redundant sign bytes are tolerated on read.
func SignedBytesToInt(b []byte) *big.Int {
	n := new(big.Int)
	if len(b) == 0 {
		return n
	}
	n.SetBytes(b)
	if b[0]&0x80 != 0 {
		n.Sub(n, new(big.Int).Lsh(big.NewInt(1), uint(len(b))*8))
	}
	return n
}

// Int64ToSignedBytes is IntToSignedBytes for values that fit an int64.
func Int64ToSignedBytes(v int64) []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(v))
	return trimSigned(b[:])
}

// Uint64ToSignedBytes is IntToSignedBytes for values that fit a uint64. Coin
// amounts are encoded this way.
func Uint64ToSignedBytes(v uint64) []byte {
	var b [9]byte
	binary.BigEndian.PutUint64(b[1:], v)
	return trimSigned(b[:])
}

// SignedBytesToInt64 decodes b, failing with ErrIntegerOverflow if the value
// does not fit an int64.
func SignedBytesToInt64(b []byte) (int64, error) {
	n := SignedBytesToInt(b)
	if !n.IsInt64() {
		return 0, fmt.Errorf("%w: %d bytes", ErrIntegerOverflow, len(b))
	}
	return n.Int64(), nil
}

// SignedBytesToUint64 decodes b, failing with ErrIntegerOverflow for negative
// values and values wider than 64 bits.
func SignedBytesToUint64(b []byte) (uint64, error) {
	n := SignedBytesToInt(b)
	if !n.IsUint64() {
		return 0, fmt.Errorf("%w: %d bytes", ErrIntegerOverflow, len(b))
	}
	return n.Uint64(), nil
}

// IsCanonicalSignedBytes reports whether b is the minimal encoding of the
// integer it represents.
func IsCanonicalSignedBytes(b []byte) bool {
	if len(b) == 0 {
		return true
	}
	if b[0] == 0x00 {
		return len(b) > 1 && b[1]&0x80 != 0
	}
	if b[0] == 0xff && len(b) > 1 {
		return b[1]&0x80 == 0
	}
	return true
}

// trimSigned strips redundant sign bytes from a fixed width two's complement
// value and returns a copy.
func trimSigned(b []byte) []byte {
	i := 0
	for i < len(b)-1 {
		if b[i] == 0x00 && b[i+1]&0x80 == 0 {
			i++
			continue
		}
		if b[i] == 0xff && b[i+1]&0x80 != 0 {
			i++
			continue
		}
		break
	}
	if i == len(b)-1 && b[i] == 0x00 {
		return []byte{}
	}
	out := make([]byte, len(b)-i)
	copy(out, b[i:])
	return out
}
