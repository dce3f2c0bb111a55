package clvm

import (
	"hash"

	"github.com/freddiecoleman/chia-wallet-sdk/codec"
)

const (
	atomHashPrefix = 0x01
	pairHashPrefix = 0x02
)

// hashAtom computes:
//
//	H( 0x01 || atom )
//
// ** the hasher is reset **
func hashAtom(hasher hash.Hash, atom []byte) codec.Hash {
	hasher.Reset()
	_, _ = hasher.Write([]byte{atomHashPrefix})
	_, _ = hasher.Write(atom)
	return codec.SumHash(hasher)
}

// hashPair computes:
//
//	H( 0x02 || left[32] || right[32] )
//
// ** the hasher is reset **
func hashPair(hasher hash.Hash, left, right codec.Hash) codec.Hash {
	hasher.Reset()
	_, _ = hasher.Write([]byte{pairHashPrefix})
	_, _ = hasher.Write(left[:])
	_, _ = hasher.Write(right[:])
	return codec.SumHash(hasher)
}

// AtomTreeHash returns the tree hash of an atom holding b.
func AtomTreeHash(b []byte) codec.Hash {
	return codec.SHA256([]byte{atomHashPrefix}, b)
}

// PairTreeHash returns the tree hash of a pair whose children hash to left
// and right.
func PairTreeHash(left, right codec.Hash) codec.Hash {
	return codec.SHA256([]byte{pairHashPrefix}, left[:], right[:])
}

// Tree hashes of the atoms used by the curry template.
var (
	NilTreeHash   = AtomTreeHash(nil)
	OneTreeHash   = AtomTreeHash([]byte{0x01})
	QuoteTreeHash = OneTreeHash
	ApplyTreeHash = AtomTreeHash([]byte{opApply})
	ConsTreeHash  = AtomTreeHash([]byte{opConsKeyword})
)

// hashCache lets TreeHasher supply hashes that outlive a single walk.
type hashCache interface {
	Get(ref NodeRef) (codec.Hash, bool)
	Add(ref NodeRef, h codec.Hash) bool
}

// TreeHash returns the tree hash of the subtree at ref.
func TreeHash(a *Arena, ref NodeRef) codec.Hash {
	return treeHash(codec.NewHasher(), a, ref, nil)
}

type hashOp struct {
	combine bool
	ref     NodeRef
}

// treeHash walks the subtree postorder with an explicit stack. Pairs are
// memoized for the duration of the walk so a subtree referenced many times
// is hashed once; without that, shared structure can make the walk
// exponential in the arena size.
func treeHash(hasher hash.Hash, a *Arena, root NodeRef, cache hashCache) codec.Hash {
	memo := make(map[NodeRef]codec.Hash)
	lookup := func(ref NodeRef) (codec.Hash, bool) {
		if h, ok := memo[ref]; ok {
			return h, true
		}
		if cache != nil {
			return cache.Get(ref)
		}
		return codec.Hash{}, false
	}

	var values []codec.Hash
	stack := []hashOp{{ref: root}}
	for len(stack) > 0 {
		op := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		r := a.rec(op.ref)
		if op.combine {
			right := values[len(values)-1]
			left := values[len(values)-2]
			values = values[:len(values)-2]
			h := hashPair(hasher, left, right)
			memo[op.ref] = h
			if cache != nil {
				cache.Add(op.ref, h)
			}
			values = append(values, h)
			continue
		}
		if r.kind == KindAtom {
			values = append(values, hashAtom(hasher, a.heap[r.x:r.y]))
			continue
		}
		if h, ok := lookup(op.ref); ok {
			values = append(values, h)
			continue
		}
		stack = append(stack,
			hashOp{combine: true, ref: op.ref},
			hashOp{ref: NodeRef(r.y)},
			hashOp{ref: NodeRef(r.x)},
		)
	}
	return values[0]
}
