package clvm

import (
	"fmt"

	"github.com/freddiecoleman/chia-wallet-sdk/codec"
)

// SerializedLength validates the node at the start of b and returns the
// number of bytes it occupies. Nothing is allocated, which makes it suitable
// for framing programs embedded in larger untrusted messages.
func SerializedLength(b []byte) (int, error) {
	pos := 0
	pending := 1
	for pending > 0 {
		if pos >= len(b) {
			return 0, fmt.Errorf("%w: at offset %d", ErrUnexpectedEndOfInput, pos)
		}
		if b[pos] == ConsBoxMarker {
			pos++
			pending++
			continue
		}
		start, n, err := parseAtomHeader(b, pos, MaxEncodableLen)
		if err != nil {
			return 0, err
		}
		pos = start + int(n)
		pending--
	}
	return pos, nil
}

// TreeHashFromBytes returns the tree hash of the single serialized node in b
// without materializing it in an arena.
func TreeHashFromBytes(b []byte) (codec.Hash, error) {
	hasher := codec.NewHasher()

	var (
		ops    = []parseOp{opParse}
		values []codec.Hash
		pos    int
	)
	for len(ops) > 0 {
		op := ops[len(ops)-1]
		ops = ops[:len(ops)-1]

		if op == opCons {
			right := values[len(values)-1]
			left := values[len(values)-2]
			values = values[:len(values)-2]
			values = append(values, hashPair(hasher, left, right))
			continue
		}

		if pos >= len(b) {
			return codec.Hash{}, fmt.Errorf("%w: at offset %d", ErrUnexpectedEndOfInput, pos)
		}
		if b[pos] == ConsBoxMarker {
			pos++
			ops = append(ops, opCons, opParse, opParse)
			continue
		}
		start, n, err := parseAtomHeader(b, pos, MaxEncodableLen)
		if err != nil {
			return codec.Hash{}, err
		}
		end := start + int(n)
		values = append(values, hashAtom(hasher, b[start:end]))
		pos = end
	}
	if pos != len(b) {
		return codec.Hash{}, fmt.Errorf("%w: %d of %d bytes consumed", ErrTrailingInput, pos, len(b))
	}
	return values[0], nil
}
