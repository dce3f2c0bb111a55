package coin

import (
	"sort"

	"github.com/freddiecoleman/chia-wallet-sdk/codec"
)

// SortCoins orders coins by coin id, the canonical order used when a set of
// coins has to be committed to deterministically.
func SortCoins(coins []Coin) {
	ids := make(map[Coin]codec.Hash, len(coins))
	for _, c := range coins {
		ids[c] = c.ID()
	}
	sort.SliceStable(coins, func(i, j int) bool {
		a, b := ids[coins[i]], ids[coins[j]]
		return codec.CompareBytes(a[:], b[:]) == codec.Less
	})
}

// SortCoinSpends orders spends by the id of the coin being spent.
func SortCoinSpends(spends []CoinSpend) {
	ids := make([]codec.Hash, len(spends))
	for i := range spends {
		ids[i] = spends[i].Coin.ID()
	}
	idx := make([]int, len(spends))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool {
		a, b := ids[idx[i]], ids[idx[j]]
		return codec.CompareBytes(a[:], b[:]) == codec.Less
	})
	sorted := make([]CoinSpend, len(spends))
	for i, k := range idx {
		sorted[i] = spends[k]
	}
	copy(spends, sorted)
}
