package coin

import (
	"fmt"

	"github.com/freddiecoleman/chia-wallet-sdk/clvm"
)

// CoinSpend pairs a coin with the puzzle it is locked by and the solution
// used to spend it.
type CoinSpend struct {
	Coin         Coin
	PuzzleReveal clvm.SerializedProgram
	Solution     clvm.SerializedProgram
}

func NewCoinSpend(c Coin, puzzleReveal, solution clvm.SerializedProgram) CoinSpend {
	return CoinSpend{Coin: c, PuzzleReveal: puzzleReveal, Solution: solution}
}

// Validate checks that the puzzle reveal is the puzzle the coin commits to.
func (s CoinSpend) Validate() error {
	h, err := s.PuzzleReveal.TreeHash()
	if err != nil {
		return fmt.Errorf("puzzle reveal: %w", err)
	}
	if h != s.Coin.PuzzleHash {
		return fmt.Errorf("%w: reveal %s, coin %s", ErrPuzzleHashMismatch, h, s.Coin.PuzzleHash)
	}
	if _, err := s.Solution.TreeHash(); err != nil {
		return fmt.Errorf("solution: %w", err)
	}
	return nil
}

// Bytes returns the streamable encoding: the coin followed by the two
// self delimiting serialized programs.
func (s CoinSpend) Bytes() []byte {
	out := s.Coin.Bytes()
	out = append(out, s.PuzzleReveal.Bytes()...)
	return append(out, s.Solution.Bytes()...)
}

// CoinSpendFromBytes decodes the streamable encoding. The programs are
// validated as canonical but not parsed into an arena.
func CoinSpendFromBytes(b []byte) (CoinSpend, error) {
	if len(b) < CoinBytes {
		return CoinSpend{}, fmt.Errorf("%w: got %d", ErrBadCoinBytes, len(b))
	}
	c, err := CoinFromBytes(b[:CoinBytes])
	if err != nil {
		return CoinSpend{}, err
	}
	rest := b[CoinBytes:]
	reveal, n, err := clvm.ReadSerializedProgram(rest)
	if err != nil {
		return CoinSpend{}, fmt.Errorf("puzzle reveal: %w", err)
	}
	solution, err := clvm.NewSerializedProgram(rest[n:])
	if err != nil {
		return CoinSpend{}, fmt.Errorf("solution: %w", err)
	}
	return CoinSpend{Coin: c, PuzzleReveal: reveal, Solution: solution}, nil
}
