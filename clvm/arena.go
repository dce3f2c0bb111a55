package clvm

import "fmt"

// nodeRecord is one arena entry. For atoms x and y delimit the bytes in the
// heap; for pairs they are the left and right refs.
type nodeRecord struct {
	kind NodeKind
	x    uint64
	y    uint64
}

// Node is the read view of an arena entry. Atom is only set for KindAtom;
// Left and Right are only meaningful for KindPair.
type Node struct {
	Kind  NodeKind
	Atom  []byte
	Left  NodeRef
	Right NodeRef
}

// Arena is an append-only store of atoms and pairs for one evaluation
// session. A pair may only reference nodes allocated before it, so every walk
// from a ref terminates and cycles can not be expressed.
//
// Atoms are kept in a single byte heap. Slices returned by Atom and Read stay
// valid until the arena is Reset or Restored past them and must not be
// modified.
//
// An Arena is not safe for concurrent mutation. Concurrent readers are fine
// provided nothing allocates meanwhile.
type Arena struct {
	nodes []nodeRecord
	heap  []byte

	maxNodes     int
	maxHeapBytes int

	generation uint64
}

type ArenaOption func(*Arena)

// WithMaxNodes bounds the number of nodes the arena will hold. Zero means
// unbounded.
func WithMaxNodes(n int) ArenaOption {
	return func(a *Arena) {
		a.maxNodes = n
	}
}

// WithMaxHeapBytes bounds the total atom bytes the arena will hold. Zero
// means unbounded.
func WithMaxHeapBytes(n int) ArenaOption {
	return func(a *Arena) {
		a.maxHeapBytes = n
	}
}

// WithCapacity preallocates room for nodes and heap bytes.
func WithCapacity(nodes int, heapBytes int) ArenaOption {
	return func(a *Arena) {
		a.nodes = make([]nodeRecord, 0, nodes)
		a.heap = make([]byte, 0, heapBytes)
	}
}

func NewArena(opts ...ArenaOption) *Arena {
	a := &Arena{}
	for _, o := range opts {
		o(a)
	}
	return a
}

// Checkpoint captures the arena size so that later allocations can be
// discarded with Restore.
type Checkpoint struct {
	nodes int
	heap  int
}

func (a *Arena) Checkpoint() Checkpoint {
	return Checkpoint{nodes: len(a.nodes), heap: len(a.heap)}
}

// Restore discards every node allocated after cp. Refs to discarded nodes
// become invalid and the arena generation advances.
func (a *Arena) Restore(cp Checkpoint) {
	if cp.nodes > len(a.nodes) || cp.heap > len(a.heap) {
		panic("clvm: checkpoint is ahead of the arena")
	}
	if cp.nodes == len(a.nodes) && cp.heap == len(a.heap) {
		return
	}
	a.nodes = a.nodes[:cp.nodes]
	a.heap = a.heap[:cp.heap]
	a.generation++
}

// Reset discards all nodes. The backing storage is retained for reuse.
func (a *Arena) Reset() {
	a.Restore(Checkpoint{})
}

// Generation changes whenever previously issued refs are invalidated.
func (a *Arena) Generation() uint64 {
	return a.generation
}

// Len returns the number of nodes allocated so far.
func (a *Arena) Len() int {
	return len(a.nodes)
}

// HeapBytes returns the total atom bytes held.
func (a *Arena) HeapBytes() int {
	return len(a.heap)
}

func (a *Arena) Contains(ref NodeRef) bool {
	return uint64(ref) < uint64(len(a.nodes))
}

// NewAtom copies b into the arena and returns its ref.
func (a *Arena) NewAtom(b []byte) (NodeRef, error) {
	if err := a.checkNodeLimit(); err != nil {
		return NoRef, err
	}
	if a.maxHeapBytes > 0 && len(a.heap)+len(b) > a.maxHeapBytes {
		return NoRef, fmt.Errorf("%w: heap limit %d bytes", ErrResourceLimitExceeded, a.maxHeapBytes)
	}
	start := len(a.heap)
	a.heap = append(a.heap, b...)
	return a.push(nodeRecord{kind: KindAtom, x: uint64(start), y: uint64(len(a.heap))}), nil
}

// NewPair returns the ref of a new pair. Both children must already be
// present.
func (a *Arena) NewPair(left, right NodeRef) (NodeRef, error) {
	if !a.Contains(left) || !a.Contains(right) {
		return NoRef, fmt.Errorf("%w: pair(%d, %d) with %d nodes", ErrInvalidNodeRef, left, right, len(a.nodes))
	}
	if err := a.checkNodeLimit(); err != nil {
		return NoRef, err
	}
	return a.push(nodeRecord{kind: KindPair, x: uint64(left), y: uint64(right)}), nil
}

func (a *Arena) checkNodeLimit() error {
	if a.maxNodes > 0 && len(a.nodes) >= a.maxNodes {
		return fmt.Errorf("%w: node limit %d", ErrResourceLimitExceeded, a.maxNodes)
	}
	if uint64(len(a.nodes)) >= uint64(NoRef) {
		return fmt.Errorf("%w: node refs exhausted", ErrResourceLimitExceeded)
	}
	return nil
}

func (a *Arena) push(rec nodeRecord) NodeRef {
	ref := NodeRef(len(a.nodes))
	a.nodes = append(a.nodes, rec)
	return ref
}

func (a *Arena) rec(ref NodeRef) nodeRecord {
	if !a.Contains(ref) {
		panic(fmt.Sprintf("clvm: node ref %d out of range (%d nodes)", ref, len(a.nodes)))
	}
	return a.nodes[ref]
}

// Kind returns the node kind for ref.
// Caller must ensure ref belongs to this arena.
func (a *Arena) Kind(ref NodeRef) NodeKind {
	return a.rec(ref).kind
}

// Atom returns the bytes of an atom and ok=false for a pair. The empty atom
// is returned as a non nil, zero length slice.
// Caller must ensure ref belongs to this arena.
func (a *Arena) Atom(ref NodeRef) (b []byte, ok bool) {
	r := a.rec(ref)
	if r.kind != KindAtom {
		return nil, false
	}
	return a.atomBytes(r), true
}

// atomBytes returns a non nil slice for every atom, including the empty one,
// whether or not the heap has grown yet.
func (a *Arena) atomBytes(r nodeRecord) []byte {
	if r.x == r.y {
		return []byte{}
	}
	return a.heap[r.x:r.y:r.y]
}

// Pair returns the children of a pair and ok=false for an atom.
// Caller must ensure ref belongs to this arena.
func (a *Arena) Pair(ref NodeRef) (left, right NodeRef, ok bool) {
	r := a.rec(ref)
	if r.kind != KindPair {
		return NoRef, NoRef, false
	}
	return NodeRef(r.x), NodeRef(r.y), true
}

// Read returns the view of ref.
// Caller must ensure ref belongs to this arena.
func (a *Arena) Read(ref NodeRef) Node {
	r := a.rec(ref)
	if r.kind == KindAtom {
		return Node{Kind: KindAtom, Atom: a.atomBytes(r), Left: NoRef, Right: NoRef}
	}
	return Node{Kind: KindPair, Left: NodeRef(r.x), Right: NodeRef(r.y)}
}
