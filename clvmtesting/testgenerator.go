package clvmtesting

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/freddiecoleman/chia-wallet-sdk/clvm"
	"github.com/freddiecoleman/chia-wallet-sdk/codec"
)

// TestGenerator produces deterministic pseudo random programs.
type TestGenerator struct {
	arena *clvm.Arena
	rng   *rand.Rand

	// MaxAtomLength bounds generated atoms. Lengths are skewed short but a
	// fraction cross each length prefix threshold up to this bound.
	MaxAtomLength int
}

func NewTestGenerator(a *clvm.Arena, seed int64) *TestGenerator {
	return &TestGenerator{
		arena:         a,
		rng:           rand.New(rand.NewSource(seed)),
		MaxAtomLength: 0x2100,
	}
}

// atomLengths are chosen to sit on either side of the encoding boundaries.
var atomLengths = []int{0, 1, 1, 1, 2, 8, 32, 0x3f, 0x40, 0x41, 0x1fff, 0x2000}

// AtomBytes returns random atom content.
func (g *TestGenerator) AtomBytes() []byte {
	n := atomLengths[g.rng.Intn(len(atomLengths))]
	if n > g.MaxAtomLength {
		n = g.MaxAtomLength
	}
	b := make([]byte, n)
	_, _ = g.rng.Read(b)
	if n == 1 && g.rng.Intn(2) == 0 {
		// favour the single byte encoding half the time
		b[0] &= 0x7f
	}
	return b
}

// Program builds a random tree no deeper than depth.
func (g *TestGenerator) Program(t *testing.T, depth int) clvm.Program {
	if depth <= 0 || g.rng.Intn(3) == 0 {
		p, err := clvm.Atom(g.arena, g.AtomBytes())
		require.NoError(t, err)
		return p
	}
	left := g.Program(t, depth-1)
	right := g.Program(t, depth-1)
	p, err := clvm.Pair(left, right)
	require.NoError(t, err)
	return p
}

// Programs returns n random programs.
func (g *TestGenerator) Programs(t *testing.T, n int, depth int) []clvm.Program {
	out := make([]clvm.Program, n)
	for i := range out {
		out[i] = g.Program(t, depth)
	}
	return out
}

// Hash returns a random 32 byte value.
func (g *TestGenerator) Hash() codec.Hash {
	var h codec.Hash
	_, _ = g.rng.Read(h[:])
	return h
}

// Uint64 returns a random amount.
func (g *TestGenerator) Uint64() uint64 {
	return g.rng.Uint64()
}

// MustAtom allocates an atom or fails the test.
func MustAtom(t *testing.T, a *clvm.Arena, b []byte) clvm.Program {
	p, err := clvm.Atom(a, b)
	require.NoError(t, err)
	return p
}

// MustList allocates a list or fails the test.
func MustList(t *testing.T, a *clvm.Arena, items ...clvm.Program) clvm.Program {
	p, err := clvm.List(a, items...)
	require.NoError(t, err)
	return p
}

// StructurallyEqual walks both programs and fails the test on the first
// difference in shape or atom content.
func StructurallyEqual(t *testing.T, want, got clvm.Program) {
	type job struct{ w, g clvm.Program }
	stack := []job{{want, got}}
	for len(stack) > 0 {
		j := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		require.Equal(t, j.w.IsAtom(), j.g.IsAtom())
		if j.w.IsAtom() {
			wb, _ := j.w.AtomBytes()
			gb, _ := j.g.AtomBytes()
			require.Truef(t, bytes.Equal(wb, gb), "atom %x != %x", wb, gb)
			continue
		}
		wl, _ := j.w.First()
		wr, _ := j.w.Rest()
		gl, _ := j.g.First()
		gr, _ := j.g.Rest()
		stack = append(stack, job{wr, gr}, job{wl, gl})
	}
}
