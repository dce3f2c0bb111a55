package coin

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freddiecoleman/chia-wallet-sdk/clvm"
	"github.com/freddiecoleman/chia-wallet-sdk/clvmtesting"
)

// fakeEvaluator stands in for a puzzle runner: each spend's solution is taken
// to be the already evaluated condition list.
type fakeEvaluator struct {
	clvmtesting.CallRecorder
	fail error
}

func (e *fakeEvaluator) Run(a *clvm.Arena, spend CoinSpend) (clvm.Program, error) {
	e.Record("Run:" + spend.Coin.ID().String()[:8])
	if e.fail != nil {
		return clvm.Program{}, e.fail
	}
	return spend.Solution.Program(a)
}

func spendCreating(t *testing.T, parent Coin, children ...Coin) CoinSpend {
	t.Helper()
	a := clvm.NewArena()
	conds := make([]Condition, len(children))
	for i, c := range children {
		require.Equal(t, parent.ID(), c.ParentCoinInfo)
		conds[i] = CreateCoin{PuzzleHash: c.PuzzleHash, Amount: c.Amount}
	}
	p, err := ConditionsProgram(a, conds...)
	require.NoError(t, err)
	solution, err := clvm.SerializedProgramOf(p)
	require.NoError(t, err)
	return CoinSpend{Coin: parent, Solution: solution}
}

func TestNonEphemeralCoins(t *testing.T) {
	root := NewCoin(fill(1), fill(2), 100)
	child := NewCoin(root.ID(), fill(3), 60)
	grandchild := NewCoin(child.ID(), fill(4), 60)
	other := NewCoin(fill(5), fill(6), 1)

	spends := []CoinSpend{
		spendCreating(t, root, child, NewCoin(root.ID(), fill(7), 40)),
		spendCreating(t, child, grandchild),
		spendCreating(t, other),
	}

	ev := &fakeEvaluator{}
	got, err := NonEphemeralCoins(spends, ParsingConditionsFunc(ev.Run))
	require.NoError(t, err)
	assert.Equal(t, []Coin{root, other}, got)
	// every spend is evaluated exactly once, in bundle order
	require.Len(t, ev.Calls(), len(spends))
	for i, s := range spends {
		name := "Run:" + s.Coin.ID().String()[:8]
		assert.Equal(t, name, ev.Calls()[i])
		assert.Equal(t, 1, ev.Count(name))
	}
}

func TestNonEphemeralCoinsPropagatesEvaluatorErrors(t *testing.T) {
	boom := errors.New("boom")
	ev := &fakeEvaluator{fail: boom}
	spends := []CoinSpend{spendCreating(t, NewCoin(fill(1), fill(2), 3))}

	_, err := NonEphemeralCoins(spends, ParsingConditionsFunc(ev.Run))
	assert.ErrorIs(t, err, boom)
	assert.Len(t, ev.Calls(), 1)
}

func TestAdditions(t *testing.T) {
	parent := NewCoin(fill(1), fill(2), 10)
	conds := []Condition{
		ReserveFee{Amount: 1},
		CreateCoin{PuzzleHash: fill(3), Amount: 9},
	}
	got := Additions(CoinSpend{Coin: parent}, conds)
	assert.Equal(t, []Coin{NewCoin(parent.ID(), fill(3), 9)}, got)
}
