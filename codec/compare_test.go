package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompareBytesEdgeCases(t *testing.T) {
	tests := []struct {
		a, b []byte
		want Ordering
	}{
		{nil, nil, Equal},
		{[]byte{}, nil, Equal},
		{[]byte{}, []byte{0x00}, Less},
		{[]byte{0x01}, []byte{0x01, 0x00}, Less},
		{[]byte{0x00, 0x01}, []byte{0x01}, Less},
		{[]byte{0xff}, []byte{0x01, 0xff}, Greater},
		{[]byte{0x80}, []byte{0x7f}, Greater},
		{[]byte{0x01, 0x02}, []byte{0x01, 0x02}, Equal},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CompareBytes(tt.a, tt.b), "%x vs %x", tt.a, tt.b)
		assert.Equal(t, -tt.want, CompareBytes(tt.b, tt.a), "%x vs %x", tt.b, tt.a)
	}
}

func TestCompareBytesTotalOrder(t *testing.T) {
	corpus := [][]byte{
		{}, {0x00}, {0x00, 0x00}, {0x00, 0x01}, {0x01}, {0x01, 0x00},
		{0x7f}, {0x80}, {0x80, 0x00}, {0xfe, 0xff}, {0xff}, {0xff, 0xff},
	}
	for _, a := range corpus {
		for _, b := range corpus {
			ab := CompareBytes(a, b)
			assert.Equal(t, -ab, CompareBytes(b, a))
			for _, c := range corpus {
				if ab != Greater && CompareBytes(b, c) != Greater {
					assert.NotEqual(t, Greater, CompareBytes(a, c), "%x %x %x", a, b, c)
				}
			}
		}
	}
	// the corpus is listed in ascending order
	for i := 1; i < len(corpus); i++ {
		assert.Equal(t, Less, CompareBytes(corpus[i-1], corpus[i]))
	}
}

func TestOrderingString(t *testing.T) {
	assert.Equal(t, "less", Less.String())
	assert.Equal(t, "equal", Equal.String())
	assert.Equal(t, "greater", Greater.String())
}
