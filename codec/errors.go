package codec

import "errors"

var (
	ErrMalformedHex    = errors.New("codec: malformed hex")
	ErrIntegerOverflow = errors.New("codec: integer does not fit the requested width")
	ErrBadHashSize     = errors.New("codec: hash must be 32 bytes")
)
