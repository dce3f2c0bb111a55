package coin

import (
	"fmt"

	"github.com/freddiecoleman/chia-wallet-sdk/clvm"
	"github.com/freddiecoleman/chia-wallet-sdk/codec"
)

// ConditionsFunc runs a spend's puzzle with its solution and returns the
// conditions it outputs. Evaluation lives outside this package.
type ConditionsFunc func(a *clvm.Arena, spend CoinSpend) ([]Condition, error)

// Additions returns the coins created by a spend's conditions.
func Additions(spend CoinSpend, conds []Condition) []Coin {
	parent := spend.Coin.ID()
	var out []Coin
	for _, c := range conds {
		cc, ok := c.(CreateCoin)
		if !ok {
			continue
		}
		out = append(out, NewCoin(parent, cc.PuzzleHash, cc.Amount))
	}
	return out
}

// NonEphemeralCoins returns the coins being spent that were not created
// within the same bundle. All spends are evaluated in a single arena which
// is discarded on return.
func NonEphemeralCoins(spends []CoinSpend, run ConditionsFunc) ([]Coin, error) {
	a := clvm.NewArena()
	created := make(map[codec.Hash]struct{})
	for i, s := range spends {
		conds, err := run(a, s)
		if err != nil {
			return nil, fmt.Errorf("spend %d (%s): %w", i, s.Coin.ID(), err)
		}
		for _, c := range Additions(s, conds) {
			created[c.ID()] = struct{}{}
		}
	}
	var out []Coin
	for _, s := range spends {
		if _, ok := created[s.Coin.ID()]; ok {
			continue
		}
		out = append(out, s.Coin)
	}
	return out, nil
}

// ParsingConditionsFunc adapts a puzzle runner that returns the raw output
// list into a ConditionsFunc.
func ParsingConditionsFunc(run func(a *clvm.Arena, spend CoinSpend) (clvm.Program, error)) ConditionsFunc {
	return func(a *clvm.Arena, spend CoinSpend) ([]Condition, error) {
		out, err := run(a, spend)
		if err != nil {
			return nil, err
		}
		return ParseConditions(out)
	}
}
