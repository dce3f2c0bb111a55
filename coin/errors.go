package coin

import "errors"

var (
	ErrInvalidAmount      = errors.New("coin: amount must be a non negative integer")
	ErrBadCoinBytes       = errors.New("coin: coin bytes must be 72 bytes")
	ErrPuzzleHashMismatch = errors.New("coin: puzzle reveal does not hash to the coin puzzle hash")
	ErrCoinIDMismatch     = errors.New("coin: record coin id does not match its fields")
	ErrBadCondition       = errors.New("coin: malformed condition")
)
