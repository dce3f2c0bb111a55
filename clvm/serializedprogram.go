package clvm

import (
	"fmt"

	"github.com/freddiecoleman/chia-wallet-sdk/codec"
)

// SerializedProgram holds the canonical bytes of exactly one node. It is the
// form programs take inside coin spends and peer messages, where they are
// usually forwarded or hashed rather than inspected.
type SerializedProgram struct {
	raw []byte
}

// NewSerializedProgram validates b and takes a copy of it.
func NewSerializedProgram(b []byte) (SerializedProgram, error) {
	n, err := SerializedLength(b)
	if err != nil {
		return SerializedProgram{}, err
	}
	if n != len(b) {
		return SerializedProgram{}, fmt.Errorf("%w: %d of %d bytes consumed", ErrTrailingInput, n, len(b))
	}
	raw := make([]byte, len(b))
	copy(raw, b)
	return SerializedProgram{raw: raw}, nil
}

// ReadSerializedProgram takes the program at the start of b and returns it
// with the number of bytes it used.
func ReadSerializedProgram(b []byte) (SerializedProgram, int, error) {
	n, err := SerializedLength(b)
	if err != nil {
		return SerializedProgram{}, 0, err
	}
	raw := make([]byte, n)
	copy(raw, b[:n])
	return SerializedProgram{raw: raw}, n, nil
}

// SerializedProgramOf serializes p.
func SerializedProgramOf(p Program) (SerializedProgram, error) {
	raw, err := p.Serialize()
	if err != nil {
		return SerializedProgram{}, err
	}
	return SerializedProgram{raw: raw}, nil
}

func (s SerializedProgram) Bytes() []byte {
	out := make([]byte, len(s.raw))
	copy(out, s.raw)
	return out
}

func (s SerializedProgram) Len() int {
	return len(s.raw)
}

func (s SerializedProgram) IsEmpty() bool {
	return len(s.raw) == 0
}

func (s SerializedProgram) TreeHash() (codec.Hash, error) {
	return TreeHashFromBytes(s.raw)
}

// Program parses the bytes into a.
func (s SerializedProgram) Program(a *Arena) (Program, error) {
	return FromBytes(a, s.raw)
}

func (s SerializedProgram) String() string {
	return codec.ToHex(s.raw)
}

func (s SerializedProgram) MarshalText() ([]byte, error) {
	return []byte(codec.ToHex(s.raw)), nil
}

func (s *SerializedProgram) UnmarshalText(text []byte) error {
	b, err := codec.FromHex(string(text))
	if err != nil {
		return err
	}
	v, err := NewSerializedProgram(b)
	if err != nil {
		return err
	}
	*s = v
	return nil
}
