package coin

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/freddiecoleman/chia-wallet-sdk/codec"
)

// Record is the CBOR export form of a coin. The id is carried so consumers
// can index without hashing, and is checked on decode.
type Record struct {
	CoinID         codec.Hash `cbor:"1,keyasint"`
	ParentCoinInfo codec.Hash `cbor:"2,keyasint"`
	PuzzleHash     codec.Hash `cbor:"3,keyasint"`
	Amount         uint64     `cbor:"4,keyasint"`
}

// RecordCodec encodes records deterministically so equal coins always
// produce equal bytes.
type RecordCodec struct {
	encMode cbor.EncMode
	decMode cbor.DecMode
}

func NewRecordCodec() (RecordCodec, error) {
	var err error
	c := RecordCodec{}
	if c.encMode, err = cbor.CoreDetEncOptions().EncMode(); err != nil {
		return RecordCodec{}, err
	}
	if c.decMode, err = (cbor.DecOptions{DupMapKey: cbor.DupMapKeyEnforcedAPF}).DecMode(); err != nil {
		return RecordCodec{}, err
	}
	return c, nil
}

func NewRecord(c Coin) Record {
	return Record{CoinID: c.ID(), ParentCoinInfo: c.ParentCoinInfo, PuzzleHash: c.PuzzleHash, Amount: c.Amount}
}

func (r Record) Coin() Coin {
	return NewCoin(r.ParentCoinInfo, r.PuzzleHash, r.Amount)
}

func (c RecordCodec) MarshalCoin(coin Coin) ([]byte, error) {
	return c.encMode.Marshal(NewRecord(coin))
}

// UnmarshalRecord decodes b and checks the carried id against the coin
// fields.
func (c RecordCodec) UnmarshalRecord(b []byte) (Record, error) {
	var r Record
	if err := c.decMode.Unmarshal(b, &r); err != nil {
		return Record{}, err
	}
	if id := r.Coin().ID(); id != r.CoinID {
		return Record{}, fmt.Errorf("%w: carried %s, computed %s", ErrCoinIDMismatch, r.CoinID, id)
	}
	return r, nil
}
