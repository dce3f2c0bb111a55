package clvm

import (
	"fmt"
	"math/big"

	"github.com/freddiecoleman/chia-wallet-sdk/codec"
)

// Program is a handle on one node of a shared Arena. It does not own the
// arena and must not be used after the arena is Reset.
//
// The zero Program refers to no node. Accessors that return an error fail
// with ErrInvalidNodeRef for it and the predicates report false. TreeHash,
// CurryTreeHash and Equal have no error path and panic.
type Program struct {
	arena *Arena
	ref   NodeRef
}

// ProgramAt wraps an existing ref.
func ProgramAt(a *Arena, ref NodeRef) (Program, error) {
	if !a.Contains(ref) {
		return Program{}, fmt.Errorf("%w: %d", ErrInvalidNodeRef, ref)
	}
	return Program{arena: a, ref: ref}, nil
}

func Atom(a *Arena, b []byte) (Program, error) {
	ref, err := a.NewAtom(b)
	if err != nil {
		return Program{}, err
	}
	return Program{arena: a, ref: ref}, nil
}

func Nil(a *Arena) (Program, error) {
	return Atom(a, nil)
}

// Int allocates the canonical atom for n.
func Int(a *Arena, n *big.Int) (Program, error) {
	return Atom(a, codec.IntToSignedBytes(n))
}

func Int64(a *Arena, n int64) (Program, error) {
	return Atom(a, codec.Int64ToSignedBytes(n))
}

func Uint64(a *Arena, n uint64) (Program, error) {
	return Atom(a, codec.Uint64ToSignedBytes(n))
}

// Pair allocates (left . right) in the arena both programs share.
func Pair(left, right Program) (Program, error) {
	if err := left.valid(); err != nil {
		return Program{}, err
	}
	if err := right.valid(); err != nil {
		return Program{}, err
	}
	if left.arena != right.arena {
		return Program{}, ErrArenaMismatch
	}
	ref, err := left.arena.NewPair(left.ref, right.ref)
	if err != nil {
		return Program{}, err
	}
	return Program{arena: left.arena, ref: ref}, nil
}

// Cons is Pair.
func Cons(first, rest Program) (Program, error) {
	return Pair(first, rest)
}

// List allocates the nil terminated list (items...).
func List(a *Arena, items ...Program) (Program, error) {
	out, err := Nil(a)
	if err != nil {
		return Program{}, err
	}
	for i := len(items) - 1; i >= 0; i-- {
		if items[i].arena != a {
			return Program{}, fmt.Errorf("%w: list item %d", ErrArenaMismatch, i)
		}
		if out, err = Pair(items[i], out); err != nil {
			return Program{}, err
		}
	}
	return out, nil
}

// FromBytes parses serialized bytes with the default decoder limits.
func FromBytes(a *Arena, b []byte) (Program, error) {
	return NewDecoder().Program(a, b)
}

// FromHex parses hex encoded serialized bytes with the default decoder
// limits.
func FromHex(a *Arena, s string) (Program, error) {
	b, err := codec.FromHex(s)
	if err != nil {
		return Program{}, err
	}
	return FromBytes(a, b)
}

// Program parses b, which must hold exactly one node, into a.
func (d *Decoder) Program(a *Arena, b []byte) (Program, error) {
	ref, err := d.Deserialize(a, b)
	if err != nil {
		return Program{}, err
	}
	return Program{arena: a, ref: ref}, nil
}

func (p Program) Arena() *Arena { return p.arena }
func (p Program) Ref() NodeRef  { return p.ref }

// valid reports whether p names a node of its arena.
func (p Program) valid() error {
	if p.arena == nil || !p.arena.Contains(p.ref) {
		return fmt.Errorf("%w: %d", ErrInvalidNodeRef, p.ref)
	}
	return nil
}

func (p Program) IsAtom() bool { return p.valid() == nil && p.arena.Kind(p.ref) == KindAtom }
func (p Program) IsPair() bool { return p.valid() == nil && p.arena.Kind(p.ref) == KindPair }

// IsNil reports whether p is the empty atom.
func (p Program) IsNil() bool {
	if p.valid() != nil {
		return false
	}
	b, ok := p.arena.Atom(p.ref)
	return ok && len(b) == 0
}

// AtomBytes returns the atom bytes, which must not be modified.
func (p Program) AtomBytes() ([]byte, error) {
	if err := p.valid(); err != nil {
		return nil, err
	}
	b, ok := p.arena.Atom(p.ref)
	if !ok {
		return nil, ErrNotAtom
	}
	return b, nil
}

// AsInt decodes the atom as a signed integer.
func (p Program) AsInt() (*big.Int, error) {
	b, err := p.AtomBytes()
	if err != nil {
		return nil, err
	}
	return codec.SignedBytesToInt(b), nil
}

func (p Program) First() (Program, error) {
	if err := p.valid(); err != nil {
		return Program{}, err
	}
	left, _, ok := p.arena.Pair(p.ref)
	if !ok {
		return Program{}, ErrNotPair
	}
	return Program{arena: p.arena, ref: left}, nil
}

func (p Program) Rest() (Program, error) {
	if err := p.valid(); err != nil {
		return Program{}, err
	}
	_, right, ok := p.arena.Pair(p.ref)
	if !ok {
		return Program{}, ErrNotPair
	}
	return Program{arena: p.arena, ref: right}, nil
}

// ListItems returns the elements of a nil terminated list.
func (p Program) ListItems() ([]Program, error) {
	if err := p.valid(); err != nil {
		return nil, err
	}
	var items []Program
	ref := p.ref
	for {
		if b, ok := p.arena.Atom(ref); ok {
			if len(b) != 0 {
				return nil, ErrNotList
			}
			return items, nil
		}
		left, right, _ := p.arena.Pair(ref)
		items = append(items, Program{arena: p.arena, ref: left})
		ref = right
	}
}

func (p Program) Serialize() ([]byte, error) {
	if err := p.valid(); err != nil {
		return nil, err
	}
	return Serialize(p.arena, p.ref)
}

// Hex returns the hex encoded serialization.
func (p Program) Hex() (string, error) {
	b, err := p.Serialize()
	if err != nil {
		return "", err
	}
	return codec.ToHex(b), nil
}

func (p Program) TreeHash() codec.Hash {
	return TreeHash(p.arena, p.ref)
}

// Equal reports structural equality, which is equality of tree hashes. The
// programs may live in different arenas.
func (p Program) Equal(other Program) bool {
	if p.arena == other.arena && p.ref == other.ref {
		return true
	}
	return p.TreeHash() == other.TreeHash()
}

// Curry builds (a (q . p) (c (q . arg1) ... 1)) in p's arena. Every argument
// must come from the same arena.
func (p Program) Curry(args ...Program) (Program, error) {
	if err := p.valid(); err != nil {
		return Program{}, err
	}
	refs := make([]NodeRef, len(args))
	for i, arg := range args {
		if arg.arena != p.arena {
			return Program{}, curryArgsError(i)
		}
		refs[i] = arg.ref
	}
	ref, err := curry(p.arena, p.ref, refs)
	if err != nil {
		return Program{}, err
	}
	return Program{arena: p.arena, ref: ref}, nil
}

// Uncurry splits a program built by Curry into its module and arguments.
// ok is false when p does not have the curry shape.
func (p Program) Uncurry() (mod Program, args []Program, ok bool) {
	if p.valid() != nil {
		return Program{}, nil, false
	}
	modRef, argRefs, ok := uncurry(p.arena, p.ref)
	if !ok {
		return Program{}, nil, false
	}
	args = make([]Program, len(argRefs))
	for i, r := range argRefs {
		args[i] = Program{arena: p.arena, ref: r}
	}
	return Program{arena: p.arena, ref: modRef}, args, true
}

// CurryTreeHash returns the hash Curry(args...).TreeHash() would produce
// without allocating the template.
func (p Program) CurryTreeHash(args ...Program) codec.Hash {
	hashes := make([]codec.Hash, len(args))
	for i, arg := range args {
		hashes[i] = arg.TreeHash()
	}
	return CurryTreeHash(p.TreeHash(), hashes...)
}

func (p Program) String() string {
	s, err := p.Hex()
	if err != nil {
		return fmt.Sprintf("<clvm: %v>", err)
	}
	return s
}
