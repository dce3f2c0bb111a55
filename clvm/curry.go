package clvm

import (
	"fmt"

	"github.com/freddiecoleman/chia-wallet-sdk/codec"
)

// Operator atoms used by the curry template.
const (
	opQuote       = 0x01
	opApply       = 0x02
	opConsKeyword = 0x04
)

// CurryTreeHash returns the tree hash of mod curried with arguments whose
// tree hashes are args, without building the curried program. The result is
// identical to TreeHash of the program Curry would build:
//
//	(a (q . mod) (c (q . arg1) (c (q . arg2) ... 1)))
func CurryTreeHash(mod codec.Hash, args ...codec.Hash) codec.Hash {
	hasher := codec.NewHasher()

	env := OneTreeHash
	for i := len(args) - 1; i >= 0; i-- {
		quoted := hashPair(hasher, QuoteTreeHash, args[i])
		env = hashPair(hasher, ConsTreeHash,
			hashPair(hasher, quoted,
				hashPair(hasher, env, NilTreeHash)))
	}
	quotedMod := hashPair(hasher, QuoteTreeHash, mod)
	return hashPair(hasher, ApplyTreeHash,
		hashPair(hasher, quotedMod,
			hashPair(hasher, env, NilTreeHash)))
}

// curry allocates the curry template around mod and args in a. On error the
// arena is restored to its state before the call.
func curry(a *Arena, mod NodeRef, args []NodeRef) (_ NodeRef, err error) {
	cp := a.Checkpoint()
	defer func() {
		if err != nil {
			a.Restore(cp)
		}
	}()

	atoms := make([]NodeRef, 4)
	for i, b := range [][]byte{{}, {opQuote}, {opApply}, {opConsKeyword}} {
		if atoms[i], err = a.NewAtom(b); err != nil {
			return NoRef, err
		}
	}
	nilRef, quote, apply, cons := atoms[0], atoms[1], atoms[2], atoms[3]

	// list builds (items...) terminated by nil
	list := func(items ...NodeRef) (NodeRef, error) {
		ref := nilRef
		for i := len(items) - 1; i >= 0; i-- {
			if ref, err = a.NewPair(items[i], ref); err != nil {
				return NoRef, err
			}
		}
		return ref, nil
	}

	// the quote atom doubles as the terminating 1 of the environment
	env := quote
	for i := len(args) - 1; i >= 0; i-- {
		quoted, err := a.NewPair(quote, args[i])
		if err != nil {
			return NoRef, err
		}
		if env, err = list(cons, quoted, env); err != nil {
			return NoRef, err
		}
	}
	quotedMod, err := a.NewPair(quote, mod)
	if err != nil {
		return NoRef, err
	}
	return list(apply, quotedMod, env)
}

// uncurry recognises the curry template at ref and returns its parts.
func uncurry(a *Arena, ref NodeRef) (mod NodeRef, args []NodeRef, ok bool) {
	items, ok := properList(a, ref, 3)
	if !ok || !isAtomByte(a, items[0], opApply) {
		return NoRef, nil, false
	}
	qLeft, qRight, ok := a.Pair(items[1])
	if !ok || !isAtomByte(a, qLeft, opQuote) {
		return NoRef, nil, false
	}
	mod = qRight

	env := items[2]
	for {
		if isAtomByte(a, env, opQuote) {
			return mod, args, true
		}
		parts, ok := properList(a, env, 3)
		if !ok || !isAtomByte(a, parts[0], opConsKeyword) {
			return NoRef, nil, false
		}
		l, r, ok := a.Pair(parts[1])
		if !ok || !isAtomByte(a, l, opQuote) {
			return NoRef, nil, false
		}
		args = append(args, r)
		env = parts[2]
	}
}

// properList returns the n items of a nil terminated list of exactly n
// elements.
func properList(a *Arena, ref NodeRef, n int) ([]NodeRef, bool) {
	items := make([]NodeRef, 0, n)
	for {
		if b, ok := a.Atom(ref); ok {
			return items, len(b) == 0 && len(items) == n
		}
		if len(items) == n {
			return nil, false
		}
		left, right, _ := a.Pair(ref)
		items = append(items, left)
		ref = right
	}
}

func isAtomByte(a *Arena, ref NodeRef, v byte) bool {
	b, ok := a.Atom(ref)
	return ok && len(b) == 1 && b[0] == v
}

func curryArgsError(i int) error {
	return fmt.Errorf("%w: curry argument %d", ErrArenaMismatch, i)
}
