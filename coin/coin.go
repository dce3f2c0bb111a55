package coin

import (
	"encoding/binary"
	"fmt"
	"math/big"

	"github.com/freddiecoleman/chia-wallet-sdk/codec"
)

// CoinBytes is the width of the streamable coin encoding:
// parent_coin_info[32] || puzzle_hash[32] || amount_be8.
const CoinBytes = 2*codec.HashBytes + 8

// Coin is the chain's unit of value.
type Coin struct {
	ParentCoinInfo codec.Hash
	PuzzleHash     codec.Hash
	Amount         uint64
}

func NewCoin(parentCoinInfo, puzzleHash codec.Hash, amount uint64) Coin {
	return Coin{ParentCoinInfo: parentCoinInfo, PuzzleHash: puzzleHash, Amount: amount}
}

// ToCoinID computes:
//
//	sha256( parent_coin_id[32] || puzzle_hash[32] || signed_bytes(amount) )
//
// where signed_bytes is the canonical CLVM integer encoding.
func ToCoinID(parentCoinID, puzzleHash codec.Hash, amount *big.Int) (codec.Hash, error) {
	if amount == nil || amount.Sign() < 0 {
		return codec.Hash{}, fmt.Errorf("%w: %v", ErrInvalidAmount, amount)
	}
	return codec.SHA256(parentCoinID[:], puzzleHash[:], codec.IntToSignedBytes(amount)), nil
}

// ID returns the coin id. A uint64 amount can not be negative so this never
// fails.
func (c Coin) ID() codec.Hash {
	return codec.SHA256(c.ParentCoinInfo[:], c.PuzzleHash[:], codec.Uint64ToSignedBytes(c.Amount))
}

// Bytes returns the streamable encoding.
func (c Coin) Bytes() []byte {
	b := make([]byte, CoinBytes)
	copy(b[0:32], c.ParentCoinInfo[:])
	copy(b[32:64], c.PuzzleHash[:])
	binary.BigEndian.PutUint64(b[64:72], c.Amount)
	return b
}

// CoinFromBytes decodes the streamable encoding.
func CoinFromBytes(b []byte) (Coin, error) {
	if len(b) != CoinBytes {
		return Coin{}, fmt.Errorf("%w: got %d", ErrBadCoinBytes, len(b))
	}
	var c Coin
	copy(c.ParentCoinInfo[:], b[0:32])
	copy(c.PuzzleHash[:], b[32:64])
	c.Amount = binary.BigEndian.Uint64(b[64:72])
	return c, nil
}

func (c Coin) String() string {
	return fmt.Sprintf("coin{parent=%s puzzle_hash=%s amount=%d}", c.ParentCoinInfo, c.PuzzleHash, c.Amount)
}
