package clvm

import "fmt"

// Length prefix layout
//
// .  width | first byte   | max atom length (exclusive)
// .  1     | 10xx xxxx    | 0x40
// .  2     | 110x xxxx    | 0x2000
// .  3     | 1110 xxxx    | 0x100000
// .  4     | 1111 0xxx    | 0x8000000
// .  5     | 1111 10xx    | 0x400000000
//
// The number of leading one bits in the first byte is the prefix width. The
// remaining bits of the first byte and the following width-1 bytes hold the
// atom length, big endian.
var prefixLimits = [...]uint64{0x40, 0x2000, 0x100000, 0x8000000, MaxEncodableLen}

// prefixWidth returns the minimal prefix width for an atom of length n.
func prefixWidth(n uint64) (int, error) {
	for i, limit := range prefixLimits {
		if n < limit {
			return i + 1, nil
		}
	}
	return 0, fmt.Errorf("%w: atom of %d bytes can not be encoded", ErrResourceLimitExceeded, n)
}

// appendAtom appends the canonical encoding of one atom to dst.
func appendAtom(dst []byte, atom []byte) ([]byte, error) {
	n := uint64(len(atom))
	if n == 0 {
		return append(dst, NilMarker), nil
	}
	if n == 1 && atom[0] <= MaxSingleByte {
		return append(dst, atom[0]), nil
	}
	width, err := prefixWidth(n)
	if err != nil {
		return dst, err
	}
	var prefix [5]byte
	for i := width - 1; i >= 0; i-- {
		prefix[i] = byte(n)
		n >>= 8
	}
	// width leading one bits followed by a zero bit
	prefix[0] |= ^byte(0xff >> width)
	dst = append(dst, prefix[:width]...)
	return append(dst, atom...), nil
}

// parseAtomHeader decodes the atom starting at buf[pos]. buf[pos] must exist
// and must not be the cons box marker.
//
// It returns the offset of the atom bytes and their length. A single byte
// atom below 0x80 has no prefix, so start == pos for that case.
func parseAtomHeader(buf []byte, pos int, maxAtomLen uint64) (start int, n uint64, err error) {
	b := buf[pos]
	if b == NilMarker {
		return pos + 1, 0, nil
	}
	if b <= MaxSingleByte {
		return pos, 1, nil
	}

	width := 0
	mask := byte(0x80)
	for b&mask != 0 {
		width++
		b &^= mask
		mask >>= 1
	}
	if width > len(prefixLimits) {
		// 0xfc-0xfe: the canonical format has no six byte prefix and no
		// back references
		return 0, 0, fmt.Errorf("%w: invalid prefix byte 0x%02x at offset %d", ErrNonCanonicalEncoding, buf[pos], pos)
	}
	if pos+width > len(buf) {
		return 0, 0, fmt.Errorf("%w: length prefix at offset %d", ErrUnexpectedEndOfInput, pos)
	}
	n = uint64(b)
	for _, c := range buf[pos+1 : pos+width] {
		n = n<<8 | uint64(c)
	}
	minWidth, err := prefixWidth(n)
	if err != nil {
		return 0, 0, err
	}
	if minWidth != width {
		return 0, 0, fmt.Errorf("%w: %d byte prefix for a %d byte atom at offset %d", ErrNonCanonicalEncoding, width, n, pos)
	}
	if n > maxAtomLen {
		return 0, 0, fmt.Errorf("%w: atom of %d bytes exceeds limit %d at offset %d", ErrResourceLimitExceeded, n, maxAtomLen, pos)
	}
	start = pos + width
	if uint64(len(buf)-start) < n {
		return 0, 0, fmt.Errorf("%w: atom of %d bytes at offset %d", ErrUnexpectedEndOfInput, n, pos)
	}
	if n == 1 && buf[start] <= MaxSingleByte {
		return 0, 0, fmt.Errorf("%w: prefixed single byte atom 0x%02x at offset %d", ErrNonCanonicalEncoding, buf[start], pos)
	}
	return start, n, nil
}
