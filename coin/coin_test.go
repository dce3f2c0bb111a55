package coin

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freddiecoleman/chia-wallet-sdk/clvmtesting"
	"github.com/freddiecoleman/chia-wallet-sdk/codec"
)

func fill(b byte) codec.Hash {
	var h codec.Hash
	copy(h[:], bytes.Repeat([]byte{b}, codec.HashBytes))
	return h
}

func TestToCoinID(t *testing.T) {
	parent, ph := fill(0x11), fill(0x22)
	tests := []struct {
		name   string
		amount uint64
		want   string
	}{
		{"zero amount contributes no bytes", 0, "5189c77d29fe5d546a045ec46986852785fea5c13ac7da9c115ff5fb6edf817c"},
		{"one", 1, "4a9fde315fe45879b6d5e2ab6ae6582c9909b96c1197602efc6679eb17157d99"},
		{"top bit set gains a zero byte", 0x80, "d254c74c04ffcffe39ebc936fddba7a203723dcc083ef3004fc3f70477d6a7d4"},
		{"one xch", 1000000000000, "29cfc3c36de392b3477a9bc833b2c52f049b54f328bc5db8dbea93c53e317b74"},
		{"max uint64", ^uint64(0), "3ef8011d9bbe0a3e37b7485c6e316a9cd3aac32f213beac9b766aa71b6cb6c0d"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToCoinID(parent, ph, new(big.Int).SetUint64(tt.amount))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())

			c := NewCoin(parent, ph, tt.amount)
			assert.Equal(t, got, c.ID())
		})
	}
}

func TestToCoinIDRejectsBadAmounts(t *testing.T) {
	_, err := ToCoinID(fill(1), fill(2), big.NewInt(-1))
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = ToCoinID(fill(1), fill(2), nil)
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestCoinIDsAreDistinct(t *testing.T) {
	seen := map[codec.Hash]uint64{}
	for amount := uint64(0); amount < 1024; amount++ {
		id := NewCoin(fill(0x11), fill(0x22), amount).ID()
		prev, dup := seen[id]
		require.Falsef(t, dup, "amount %d collides with %d", amount, prev)
		seen[id] = amount
	}
	// Swapping parent and puzzle hash must change the id.
	assert.NotEqual(t, NewCoin(fill(1), fill(2), 7).ID(), NewCoin(fill(2), fill(1), 7).ID())
}

func TestCoinBytes(t *testing.T) {
	c := NewCoin(fill(0xaa), fill(0xbb), 0x0102030405060708)
	b := c.Bytes()
	require.Len(t, b, CoinBytes)
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8}, b[64:])

	got, err := CoinFromBytes(b)
	require.NoError(t, err)
	assert.Equal(t, c, got)

	_, err = CoinFromBytes(b[:71])
	assert.ErrorIs(t, err, ErrBadCoinBytes)
}

func TestAnnouncementID(t *testing.T) {
	got := AnnouncementID(fill(0x11), []byte("hello"))
	assert.Equal(t, "73fdb6c1127540c15d6e04b4ff01b9728ba2b310c706aefa5d2fbc7b2b433880", got.String())
}

func TestGeneratedCoins(t *testing.T) {
	cfg := clvmtesting.TestConfig{Seed: 1698342521, TestLabelPrefix: "TestGeneratedCoins"}
	tc := clvmtesting.NewTestContext(t, cfg)
	g := tc.NewGenerator(cfg)

	rc, err := NewRecordCodec()
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		c := NewCoin(g.Hash(), g.Hash(), g.Uint64())

		id, err := ToCoinID(c.ParentCoinInfo, c.PuzzleHash, new(big.Int).SetUint64(c.Amount))
		require.NoError(t, err)
		assert.Equal(t, id, c.ID())

		back, err := CoinFromBytes(c.Bytes())
		require.NoError(t, err)
		assert.Equal(t, c, back)

		b, err := rc.MarshalCoin(c)
		require.NoError(t, err)
		r, err := rc.UnmarshalRecord(b)
		require.NoError(t, err)
		assert.Equal(t, c, r.Coin())
	}
}
