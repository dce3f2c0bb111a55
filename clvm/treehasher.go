package clvm

import (
	"hash"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/freddiecoleman/chia-wallet-sdk/codec"
)

const DefaultTreeHashCacheSize = 4096

// TreeHasher computes tree hashes for one arena and remembers pair hashes
// across calls. The cache is dropped whenever the arena generation changes,
// as refs may then name different nodes.
//
// A TreeHasher shares the arena's threading rules: one session at a time.
type TreeHasher struct {
	arena      *Arena
	hasher     hash.Hash
	cache      *lru.Cache[NodeRef, codec.Hash]
	generation uint64
}

// NewTreeHasher returns a hasher caching up to size pair hashes. size <= 0
// selects DefaultTreeHashCacheSize.
func NewTreeHasher(a *Arena, size int) (*TreeHasher, error) {
	if size <= 0 {
		size = DefaultTreeHashCacheSize
	}
	cache, err := lru.New[NodeRef, codec.Hash](size)
	if err != nil {
		return nil, err
	}
	return &TreeHasher{
		arena:      a,
		hasher:     codec.NewHasher(),
		cache:      cache,
		generation: a.Generation(),
	}, nil
}

func (t *TreeHasher) Arena() *Arena {
	return t.arena
}

// TreeHash returns the tree hash of ref.
func (t *TreeHasher) TreeHash(ref NodeRef) codec.Hash {
	if g := t.arena.Generation(); g != t.generation {
		t.cache.Purge()
		t.generation = g
	}
	return treeHash(t.hasher, t.arena, ref, t.cache)
}

// ProgramHash is TreeHash for a Program, which must belong to the hasher's
// arena.
func (t *TreeHasher) ProgramHash(p Program) (codec.Hash, error) {
	if p.arena != t.arena {
		return codec.Hash{}, ErrArenaMismatch
	}
	return t.TreeHash(p.ref), nil
}

// Len returns the number of cached pair hashes.
func (t *TreeHasher) Len() int {
	return t.cache.Len()
}
