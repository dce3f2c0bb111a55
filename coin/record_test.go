package coin

import (
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordCodecRoundTrip(t *testing.T) {
	rc, err := NewRecordCodec()
	require.NoError(t, err)

	c := NewCoin(fill(1), fill(2), 1000000000000)
	b, err := rc.MarshalCoin(c)
	require.NoError(t, err)

	again, err := rc.MarshalCoin(c)
	require.NoError(t, err)
	assert.Equal(t, b, again)

	r, err := rc.UnmarshalRecord(b)
	require.NoError(t, err)
	assert.Equal(t, c, r.Coin())
	assert.Equal(t, c.ID(), r.CoinID)
}

func TestRecordCodecRejectsWrongID(t *testing.T) {
	rc, err := NewRecordCodec()
	require.NoError(t, err)

	r := NewRecord(NewCoin(fill(1), fill(2), 3))
	r.Amount = 4
	b, err := cbor.Marshal(r)
	require.NoError(t, err)

	_, err = rc.UnmarshalRecord(b)
	assert.ErrorIs(t, err, ErrCoinIDMismatch)
}
