package clvm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freddiecoleman/chia-wallet-sdk/clvm"
	"github.com/freddiecoleman/chia-wallet-sdk/clvmtesting"
	"github.com/freddiecoleman/chia-wallet-sdk/codec"
)

func TestRoundTripGeneratedPrograms(t *testing.T) {
	cfg := clvmtesting.TestConfig{Seed: 1698342521, TestLabelPrefix: "TestRoundTrip"}
	tc := clvmtesting.NewTestContext(t, cfg)
	g := tc.NewGenerator(cfg)
	d := tc.Decoder()

	for i, p := range g.Programs(t, 200, 8) {
		b, err := p.Serialize()
		require.NoError(t, err)

		n, err := clvm.SerializedLength(b)
		require.NoError(t, err)
		require.Equal(t, len(b), n)

		back, err := d.Program(clvm.NewArena(), b)
		require.NoError(t, err, "program %d", i)
		clvmtesting.StructurallyEqual(t, p, back)
		assert.Equal(t, p.TreeHash(), back.TreeHash())

		again, err := back.Serialize()
		require.NoError(t, err)
		assert.Equal(t, b, again)

		h, err := clvm.TreeHashFromBytes(b)
		require.NoError(t, err)
		assert.Equal(t, p.TreeHash(), h)
	}
}

func TestCurryTreeHashGenerated(t *testing.T) {
	cfg := clvmtesting.TestConfig{Seed: 42, TestLabelPrefix: "TestCurryTreeHash"}
	tc := clvmtesting.NewTestContext(t, cfg)
	g := tc.NewGenerator(cfg)

	for n := 0; n < 8; n++ {
		mod := g.Program(t, 5)
		args := g.Programs(t, n, 4)
		hashes := make([]codec.Hash, n)
		for i, a := range args {
			hashes[i] = a.TreeHash()
		}

		curried, err := mod.Curry(args...)
		require.NoError(t, err)
		assert.Equal(t, curried.TreeHash(), clvm.CurryTreeHash(mod.TreeHash(), hashes...))

		// the shortcut must also agree with hashing the serialized form
		b, err := curried.Serialize()
		require.NoError(t, err)
		h, err := clvm.TreeHashFromBytes(b)
		require.NoError(t, err)
		assert.Equal(t, h, clvm.CurryTreeHash(mod.TreeHash(), hashes...))

		gotMod, gotArgs, ok := curried.Uncurry()
		require.True(t, ok)
		clvmtesting.StructurallyEqual(t, mod, gotMod)
		require.Len(t, gotArgs, n)
		for i := range args {
			clvmtesting.StructurallyEqual(t, args[i], gotArgs[i])
		}
	}
}

func TestTruncatedPrefixesNeverParse(t *testing.T) {
	cfg := clvmtesting.TestConfig{Seed: 7, TestLabelPrefix: "TestTruncated"}
	tc := clvmtesting.NewTestContext(t, cfg)
	g := tc.NewGenerator(cfg)

	p := g.Program(t, 6)
	b, err := p.Serialize()
	require.NoError(t, err)

	a := clvm.NewArena()
	for i := 0; i < len(b); i++ {
		_, err := tc.Decoder().Deserialize(a, b[:i])
		require.ErrorIs(t, err, clvm.ErrUnexpectedEndOfInput, "prefix %d of %d", i, len(b))
		require.Equal(t, 0, a.Len())
	}
}
