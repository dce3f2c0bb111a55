package clvm

import (
	"fmt"

	"github.com/datatrails/go-datatrails-common/logger"
)

// DecoderOptions bound the work a Decoder will do for one input.
type DecoderOptions struct {
	// MaxAtomLength is the largest atom accepted, in bytes.
	MaxAtomLength uint64
	// MaxNodeCount is the largest number of atoms and pairs one decode may
	// allocate. Zero means limited only by the arena.
	MaxNodeCount uint64
	// MaxDepth limits pair nesting. Zero means limited only by MaxNodeCount.
	MaxDepth uint64

	log logger.Logger
}

type DecoderOption func(*DecoderOptions)

func WithMaxAtomLength(n uint64) DecoderOption {
	return func(o *DecoderOptions) {
		o.MaxAtomLength = n
	}
}

func WithMaxNodeCount(n uint64) DecoderOption {
	return func(o *DecoderOptions) {
		o.MaxNodeCount = n
	}
}

func WithMaxDepth(n uint64) DecoderOption {
	return func(o *DecoderOptions) {
		o.MaxDepth = n
	}
}

// WithLogger reports rejected inputs at debug level.
func WithLogger(log logger.Logger) DecoderOption {
	return func(o *DecoderOptions) {
		o.log = log
	}
}

// Decoder parses untrusted canonical CLVM bytes into an Arena.
type Decoder struct {
	opts DecoderOptions
}

func NewDecoder(opts ...DecoderOption) *Decoder {
	d := &Decoder{
		opts: DecoderOptions{
			MaxAtomLength: DefaultMaxAtomLength,
			MaxNodeCount:  DefaultMaxNodeCount,
		},
	}
	for _, o := range opts {
		o(&d.opts)
	}
	return d
}

func (d *Decoder) Options() DecoderOptions {
	return d.opts
}

// Deserialize decodes exactly one node from b using the default limits.
func Deserialize(a *Arena, b []byte) (NodeRef, error) {
	return NewDecoder().Deserialize(a, b)
}

// Deserialize decodes exactly one node from b. Bytes left over after the
// node are an error.
func (d *Decoder) Deserialize(a *Arena, b []byte) (NodeRef, error) {
	cp := a.Checkpoint()
	ref, n, err := d.Decode(a, b)
	if err != nil {
		return NoRef, err
	}
	if n != len(b) {
		a.Restore(cp)
		err = fmt.Errorf("%w: %d of %d bytes consumed", ErrTrailingInput, n, len(b))
		d.logReject(err)
		return NoRef, err
	}
	return ref, nil
}

type parseOp uint8

const (
	opParse parseOp = iota
	opCons
)

// Decode decodes the node at the start of b and returns its ref and the
// number of bytes consumed. On error every node allocated by the call is
// discarded and the arena is as it was before the call.
func (d *Decoder) Decode(a *Arena, b []byte) (ref NodeRef, consumed int, err error) {
	cp := a.Checkpoint()
	defer func() {
		if err != nil {
			a.Restore(cp)
			d.logReject(err)
		}
	}()

	var (
		ops    = []parseOp{opParse}
		values []NodeRef
		pos    int
		nodes  uint64
		depth  uint64
	)
	for len(ops) > 0 {
		op := ops[len(ops)-1]
		ops = ops[:len(ops)-1]

		if op == opCons {
			if d.nodeLimitReached(nodes) {
				return NoRef, 0, fmt.Errorf("%w: more than %d nodes", ErrResourceLimitExceeded, d.opts.MaxNodeCount)
			}
			right := values[len(values)-1]
			left := values[len(values)-2]
			values = values[:len(values)-2]
			p, err := a.NewPair(left, right)
			if err != nil {
				return NoRef, 0, err
			}
			nodes++
			depth--
			values = append(values, p)
			continue
		}

		if pos >= len(b) {
			return NoRef, 0, fmt.Errorf("%w: at offset %d", ErrUnexpectedEndOfInput, pos)
		}
		if b[pos] == ConsBoxMarker {
			depth++
			if d.opts.MaxDepth > 0 && depth > d.opts.MaxDepth {
				return NoRef, 0, fmt.Errorf("%w: depth exceeds %d at offset %d", ErrResourceLimitExceeded, d.opts.MaxDepth, pos)
			}
			pos++
			// left is parsed first, so it is pushed last
			ops = append(ops, opCons, opParse, opParse)
			continue
		}

		start, n, err := parseAtomHeader(b, pos, d.opts.MaxAtomLength)
		if err != nil {
			return NoRef, 0, err
		}
		if d.nodeLimitReached(nodes) {
			return NoRef, 0, fmt.Errorf("%w: more than %d nodes", ErrResourceLimitExceeded, d.opts.MaxNodeCount)
		}
		end := start + int(n)
		atom, err := a.NewAtom(b[start:end])
		if err != nil {
			return NoRef, 0, err
		}
		nodes++
		values = append(values, atom)
		pos = end
	}
	return values[0], pos, nil
}

func (d *Decoder) nodeLimitReached(nodes uint64) bool {
	return d.opts.MaxNodeCount > 0 && nodes >= d.opts.MaxNodeCount
}

func (d *Decoder) logReject(err error) {
	if d.opts.log == nil {
		return
	}
	d.opts.log.Debugf("clvm decode rejected: %v", err)
}
