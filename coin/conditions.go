package coin

import (
	"fmt"

	"github.com/freddiecoleman/chia-wallet-sdk/clvm"
	"github.com/freddiecoleman/chia-wallet-sdk/codec"
)

// Opcode identifies a condition in the output of a puzzle.
type Opcode uint16

const (
	OpRemark                   Opcode = 1
	OpAggSigUnsafe             Opcode = 49
	OpAggSigMe                 Opcode = 50
	OpCreateCoin               Opcode = 51
	OpReserveFee               Opcode = 52
	OpCreateCoinAnnouncement   Opcode = 60
	OpAssertCoinAnnouncement   Opcode = 61
	OpCreatePuzzleAnnouncement Opcode = 62
	OpAssertPuzzleAnnouncement Opcode = 63
	OpAssertMyCoinID           Opcode = 70
)

// BLSPublicKeyBytes is the width of a compressed G1 public key.
const BLSPublicKeyBytes = 48

// Condition is one entry of the list a puzzle returns when it is run with its
// solution.
type Condition interface {
	Opcode() Opcode
	// Program allocates the condition in its list form.
	Program(a *clvm.Arena) (clvm.Program, error)
}

type CreateCoin struct {
	PuzzleHash codec.Hash
	Amount     uint64
	Memos      [][]byte
}

type ReserveFee struct {
	Amount uint64
}

type AggSigMe struct {
	PublicKey []byte
	Message   []byte
}

type AggSigUnsafe struct {
	PublicKey []byte
	Message   []byte
}

type CreateCoinAnnouncement struct {
	Message []byte
}

type AssertCoinAnnouncement struct {
	AnnouncementID codec.Hash
}

type CreatePuzzleAnnouncement struct {
	Message []byte
}

type AssertPuzzleAnnouncement struct {
	AnnouncementID codec.Hash
}

type AssertMyCoinID struct {
	CoinID codec.Hash
}

// Other carries any condition this package does not model. Raw is the whole
// condition, opcode included.
type Other struct {
	Op  Opcode
	Raw clvm.Program
}

func (CreateCoin) Opcode() Opcode               { return OpCreateCoin }
func (ReserveFee) Opcode() Opcode               { return OpReserveFee }
func (AggSigMe) Opcode() Opcode                 { return OpAggSigMe }
func (AggSigUnsafe) Opcode() Opcode             { return OpAggSigUnsafe }
func (CreateCoinAnnouncement) Opcode() Opcode   { return OpCreateCoinAnnouncement }
func (AssertCoinAnnouncement) Opcode() Opcode   { return OpAssertCoinAnnouncement }
func (CreatePuzzleAnnouncement) Opcode() Opcode { return OpCreatePuzzleAnnouncement }
func (AssertPuzzleAnnouncement) Opcode() Opcode { return OpAssertPuzzleAnnouncement }
func (AssertMyCoinID) Opcode() Opcode           { return OpAssertMyCoinID }
func (o Other) Opcode() Opcode                  { return o.Op }

func (c CreateCoin) Program(a *clvm.Arena) (clvm.Program, error) {
	items := []any{c.PuzzleHash[:], c.Amount}
	if len(c.Memos) > 0 {
		memos := make([]any, len(c.Memos))
		for i, m := range c.Memos {
			memos[i] = m
		}
		items = append(items, memos)
	}
	return conditionProgram(a, OpCreateCoin, items...)
}

func (c ReserveFee) Program(a *clvm.Arena) (clvm.Program, error) {
	return conditionProgram(a, OpReserveFee, c.Amount)
}

func (c AggSigMe) Program(a *clvm.Arena) (clvm.Program, error) {
	return conditionProgram(a, OpAggSigMe, c.PublicKey, c.Message)
}

func (c AggSigUnsafe) Program(a *clvm.Arena) (clvm.Program, error) {
	return conditionProgram(a, OpAggSigUnsafe, c.PublicKey, c.Message)
}

func (c CreateCoinAnnouncement) Program(a *clvm.Arena) (clvm.Program, error) {
	return conditionProgram(a, OpCreateCoinAnnouncement, c.Message)
}

func (c AssertCoinAnnouncement) Program(a *clvm.Arena) (clvm.Program, error) {
	return conditionProgram(a, OpAssertCoinAnnouncement, c.AnnouncementID[:])
}

func (c CreatePuzzleAnnouncement) Program(a *clvm.Arena) (clvm.Program, error) {
	return conditionProgram(a, OpCreatePuzzleAnnouncement, c.Message)
}

func (c AssertPuzzleAnnouncement) Program(a *clvm.Arena) (clvm.Program, error) {
	return conditionProgram(a, OpAssertPuzzleAnnouncement, c.AnnouncementID[:])
}

func (c AssertMyCoinID) Program(a *clvm.Arena) (clvm.Program, error) {
	return conditionProgram(a, OpAssertMyCoinID, c.CoinID[:])
}

// Program returns Raw. It fails if Raw lives in a different arena.
func (o Other) Program(a *clvm.Arena) (clvm.Program, error) {
	if o.Raw.Arena() != a {
		return clvm.Program{}, clvm.ErrArenaMismatch
	}
	return o.Raw, nil
}

// ConditionsProgram allocates the list (c1 c2 ...).
func ConditionsProgram(a *clvm.Arena, conds ...Condition) (clvm.Program, error) {
	items := make([]clvm.Program, len(conds))
	for i, c := range conds {
		p, err := c.Program(a)
		if err != nil {
			return clvm.Program{}, err
		}
		items[i] = p
	}
	return clvm.List(a, items...)
}

// conditionProgram builds (opcode args...). Each arg is a []byte atom, a
// uint64 integer atom or a nested []any list.
func conditionProgram(a *clvm.Arena, op Opcode, args ...any) (clvm.Program, error) {
	items := make([]clvm.Program, 0, len(args)+1)
	p, err := clvm.Uint64(a, uint64(op))
	if err != nil {
		return clvm.Program{}, err
	}
	items = append(items, p)
	for _, arg := range args {
		if p, err = argProgram(a, arg); err != nil {
			return clvm.Program{}, err
		}
		items = append(items, p)
	}
	return clvm.List(a, items...)
}

func argProgram(a *clvm.Arena, arg any) (clvm.Program, error) {
	switch v := arg.(type) {
	case []byte:
		return clvm.Atom(a, v)
	case uint64:
		return clvm.Uint64(a, v)
	case []any:
		items := make([]clvm.Program, len(v))
		for i := range v {
			p, err := argProgram(a, v[i])
			if err != nil {
				return clvm.Program{}, err
			}
			items[i] = p
		}
		return clvm.List(a, items...)
	default:
		panic(fmt.Sprintf("coin: unsupported condition argument %T", arg))
	}
}

// ParseConditions decodes the list returned by an already evaluated puzzle.
// Trailing arguments beyond those a condition uses are ignored, matching
// consensus. Unknown opcodes come back as Other.
func ParseConditions(list clvm.Program) ([]Condition, error) {
	items, err := list.ListItems()
	if err != nil {
		return nil, fmt.Errorf("%w: conditions: %v", ErrBadCondition, err)
	}
	conds := make([]Condition, 0, len(items))
	for i, item := range items {
		c, err := parseCondition(item)
		if err != nil {
			return nil, fmt.Errorf("condition %d: %w", i, err)
		}
		conds = append(conds, c)
	}
	return conds, nil
}

func parseCondition(item clvm.Program) (Condition, error) {
	args, err := item.ListItems()
	if err != nil || len(args) == 0 {
		return nil, fmt.Errorf("%w: not a non empty list", ErrBadCondition)
	}
	opBytes, err := args[0].AtomBytes()
	if err != nil {
		return nil, fmt.Errorf("%w: opcode is not an atom", ErrBadCondition)
	}
	op, err := codec.SignedBytesToUint64(opBytes)
	if err != nil || op > 0xffff || !codec.IsCanonicalSignedBytes(opBytes) {
		// Opcodes outside the known range are never acted on.
		return Other{Raw: item}, nil
	}
	args = args[1:]

	p := argParser{args: args, op: Opcode(op)}
	switch Opcode(op) {
	case OpCreateCoin:
		c := CreateCoin{PuzzleHash: p.hash(0), Amount: p.amount(1)}
		c.Memos = p.memos(2)
		return c, p.err
	case OpReserveFee:
		return ReserveFee{Amount: p.amount(0)}, p.err
	case OpAggSigMe:
		return AggSigMe{PublicKey: p.publicKey(0), Message: p.atom(1)}, p.err
	case OpAggSigUnsafe:
		return AggSigUnsafe{PublicKey: p.publicKey(0), Message: p.atom(1)}, p.err
	case OpCreateCoinAnnouncement:
		return CreateCoinAnnouncement{Message: p.atom(0)}, p.err
	case OpAssertCoinAnnouncement:
		return AssertCoinAnnouncement{AnnouncementID: p.hash(0)}, p.err
	case OpCreatePuzzleAnnouncement:
		return CreatePuzzleAnnouncement{Message: p.atom(0)}, p.err
	case OpAssertPuzzleAnnouncement:
		return AssertPuzzleAnnouncement{AnnouncementID: p.hash(0)}, p.err
	case OpAssertMyCoinID:
		return AssertMyCoinID{CoinID: p.hash(0)}, p.err
	default:
		return Other{Op: Opcode(op), Raw: item}, nil
	}
}

// argParser reads positional arguments, remembering the first failure so a
// condition can be decoded in one expression.
type argParser struct {
	args []clvm.Program
	op   Opcode
	err  error
}

func (p *argParser) fail(i int, format string, v ...any) {
	if p.err == nil {
		p.err = fmt.Errorf("%w: opcode %d argument %d: %s", ErrBadCondition, p.op, i, fmt.Sprintf(format, v...))
	}
}

func (p *argParser) atom(i int) []byte {
	if i >= len(p.args) {
		p.fail(i, "missing")
		return nil
	}
	b, err := p.args[i].AtomBytes()
	if err != nil {
		p.fail(i, "not an atom")
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

func (p *argParser) hash(i int) codec.Hash {
	b := p.atom(i)
	if p.err != nil {
		return codec.Hash{}
	}
	h, err := codec.HashFromBytes(b)
	if err != nil {
		p.fail(i, "%d bytes, want %d", len(b), codec.HashBytes)
	}
	return h
}

func (p *argParser) amount(i int) uint64 {
	b := p.atom(i)
	if p.err != nil {
		return 0
	}
	if !codec.IsCanonicalSignedBytes(b) {
		p.fail(i, "non canonical integer")
		return 0
	}
	v, err := codec.SignedBytesToUint64(b)
	if err != nil {
		p.fail(i, "%v", err)
	}
	return v
}

func (p *argParser) publicKey(i int) []byte {
	b := p.atom(i)
	if p.err == nil && len(b) != BLSPublicKeyBytes {
		p.fail(i, "%d bytes, want %d", len(b), BLSPublicKeyBytes)
	}
	return b
}

// memos reads the optional memo list. Anything other than a list of atoms is
// ignored, as it is on chain.
func (p *argParser) memos(i int) [][]byte {
	if p.err != nil || i >= len(p.args) || !p.args[i].IsPair() {
		return nil
	}
	items, err := p.args[i].ListItems()
	if err != nil {
		return nil
	}
	memos := make([][]byte, 0, len(items))
	for _, m := range items {
		b, err := m.AtomBytes()
		if err != nil {
			return nil
		}
		memos = append(memos, append([]byte(nil), b...))
	}
	return memos
}
