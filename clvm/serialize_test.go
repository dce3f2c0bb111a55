package clvm

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendAtomPrefixes(t *testing.T) {
	tests := []struct {
		name   string
		n      int
		prefix []byte
	}{
		{"nil", 0, []byte{0x80}},
		{"two bytes", 2, []byte{0x82}},
		{"largest one byte prefix", 0x3f, []byte{0xbf}},
		{"smallest two byte prefix", 0x40, []byte{0xc0, 0x40}},
		{"largest two byte prefix", 0x1fff, []byte{0xdf, 0xff}},
		{"smallest three byte prefix", 0x2000, []byte{0xe0, 0x20, 0x00}},
		{"smallest four byte prefix", 0x100000, []byte{0xf0, 0x10, 0x00, 0x00}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			atom := bytes.Repeat([]byte{0xaa}, tt.n)
			got, err := appendAtom(nil, atom)
			require.NoError(t, err)
			assert.Equal(t, tt.prefix, got[:len(tt.prefix)])
			assert.Equal(t, len(tt.prefix)+tt.n, len(got))

			// and the header parses back to the same length
			start, n, err := parseAtomHeader(got, 0, MaxEncodableLen)
			require.NoError(t, err)
			assert.Equal(t, len(tt.prefix), start)
			assert.Equal(t, uint64(tt.n), n)
		})
	}
}

func TestPrefixWidthCeiling(t *testing.T) {
	w, err := prefixWidth(MaxEncodableLen - 1)
	require.NoError(t, err)
	assert.Equal(t, 5, w)

	_, err = prefixWidth(MaxEncodableLen)
	require.ErrorIs(t, err, ErrResourceLimitExceeded)
}

func TestSerializeConcreteScenarios(t *testing.T) {
	a := NewArena()

	empty, _ := a.NewAtom(nil)
	five, _ := a.NewAtom([]byte{0x05})
	high, _ := a.NewAtom([]byte{0x80})
	pair, _ := a.NewPair(empty, empty)
	nested, _ := a.NewPair(five, pair)

	tests := []struct {
		ref  NodeRef
		want []byte
	}{
		{empty, []byte{0x80}},
		{five, []byte{0x05}},
		{high, []byte{0x81, 0x80}},
		{pair, []byte{0xff, 0x80, 0x80}},
		{nested, []byte{0xff, 0x05, 0xff, 0x80, 0x80}},
	}
	for _, tt := range tests {
		got, err := Serialize(a, tt.ref)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)

		var buf bytes.Buffer
		require.NoError(t, SerializeTo(&buf, a, tt.ref))
		assert.Equal(t, tt.want, buf.Bytes())
	}
}

func TestSerializeDeepTreeIsIterative(t *testing.T) {
	a := NewArena()
	leaf, _ := a.NewAtom(nil)
	ref := leaf
	const depth = 200_000
	for i := 0; i < depth; i++ {
		ref, _ = a.NewPair(ref, leaf)
	}
	b, err := Serialize(a, ref)
	require.NoError(t, err)
	require.Len(t, b, 2*depth+1)
	assert.Equal(t, bytes.Repeat([]byte{ConsBoxMarker}, depth), b[:depth])

	back, err := Deserialize(a, b)
	require.NoError(t, err)
	assert.Equal(t, TreeHash(a, ref), TreeHash(a, back))
}
