package codec

import (
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSHA256MatchesStdlib(t *testing.T) {
	for _, parts := range [][][]byte{
		{},
		{{}},
		{{0x01}},
		{{0x01}, {0x02, 0x03}},
		{make([]byte, 1000), {0xff}},
	} {
		var all []byte
		for _, p := range parts {
			all = append(all, p...)
		}
		assert.Equal(t, Hash(sha256.Sum256(all)), SHA256(parts...))
	}
}

func TestHashHexRoundTrip(t *testing.T) {
	h := SHA256([]byte{0x01})
	assert.Equal(t, "4bf5122f344554c53bde2ebb8cd2b7e3d1600ad631c385a5d7cce23c7785459a", h.String())

	back, err := HashFromHex("0x" + h.String())
	require.NoError(t, err)
	assert.Equal(t, h, back)

	text, err := h.MarshalText()
	require.NoError(t, err)
	var u Hash
	require.NoError(t, u.UnmarshalText(text))
	assert.Equal(t, h, u)

	_, err = HashFromBytes([]byte{1, 2, 3})
	require.ErrorIs(t, err, ErrBadHashSize)
	assert.True(t, Hash{}.IsZero())
}
