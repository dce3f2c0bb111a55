package codec

import "bytes"

// Ordering is the result of a three way comparison.
type Ordering int

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Equal:
		return "equal"
	case Greater:
		return "greater"
	default:
		return "invalid"
	}
}

// CompareBytes orders byte strings lexicographically by unsigned byte value.
// When one is a prefix of the other the shorter sorts first. The bytes are
// never interpreted as integers: [0x00 0x01] sorts before [0x01].
func CompareBytes(a, b []byte) Ordering {
	return Ordering(bytes.Compare(a, b))
}
