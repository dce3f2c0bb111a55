package clvm

import "io"

// Serialize returns the canonical encoding of the subtree at ref.
func Serialize(a *Arena, ref NodeRef) ([]byte, error) {
	return AppendSerialized(nil, a, ref)
}

// SerializeTo writes the canonical encoding of the subtree at ref to w.
func SerializeTo(w io.Writer, a *Arena, ref NodeRef) error {
	b, err := Serialize(a, ref)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

// AppendSerialized appends the canonical encoding of the subtree at ref to
// dst. The walk is pre-order, left first, and uses an explicit stack so deep
// trees do not grow the goroutine stack.
func AppendSerialized(dst []byte, a *Arena, ref NodeRef) ([]byte, error) {
	var err error
	stack := []NodeRef{ref}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		r := a.rec(top)
		if r.kind == KindPair {
			dst = append(dst, ConsBoxMarker)
			stack = append(stack, NodeRef(r.y), NodeRef(r.x))
			continue
		}
		dst, err = appendAtom(dst, a.heap[r.x:r.y])
		if err != nil {
			return nil, err
		}
	}
	return dst, nil
}
