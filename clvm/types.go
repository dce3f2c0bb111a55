package clvm

import "errors"

// NodeRef is an index into the node records of one Arena. It is only
// meaningful for the Arena that produced it.
type NodeRef uint32

const NoRef = ^NodeRef(0)

type NodeKind uint8

const (
	KindAtom NodeKind = 1
	KindPair NodeKind = 2
)

func (k NodeKind) String() string {
	switch k {
	case KindAtom:
		return "atom"
	case KindPair:
		return "pair"
	default:
		return "invalid"
	}
}

// Serialization markers and length prefix thresholds of the canonical
// encoding.
const (
	ConsBoxMarker   = 0xff
	BackrefMarker   = 0xfe
	NilMarker       = 0x80
	MaxSingleByte   = 0x7f
	MaxEncodableLen = 0x400000000 // exclusive
)

// Defaults applied by NewDecoder.
const (
	// DefaultMaxAtomLength matches the consensus allocator heap limit.
	DefaultMaxAtomLength = 0xffffffff
	// DefaultMaxNodeCount is the consensus atom limit plus its pair limit.
	DefaultMaxNodeCount = 62_500_000 + 62_500_000
)

var (
	ErrUnexpectedEndOfInput  = errors.New("clvm: unexpected end of input")
	ErrNonCanonicalEncoding  = errors.New("clvm: non canonical encoding")
	ErrResourceLimitExceeded = errors.New("clvm: resource limit exceeded")
	ErrTrailingInput         = errors.New("clvm: trailing bytes after program")
	ErrArenaMismatch         = errors.New("clvm: program belongs to a different arena")
	ErrInvalidNodeRef        = errors.New("clvm: node ref not present in arena")
	ErrNotAtom               = errors.New("clvm: node is not an atom")
	ErrNotPair               = errors.New("clvm: node is not a pair")
	ErrNotList               = errors.New("clvm: node is not a proper list")
)
