package codec

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// ToHex returns the lower case hex encoding of b, without a prefix.
func ToHex(b []byte) string {
	return hex.EncodeToString(b)
}

// FromHex decodes s, accepting an optional 0x or 0X prefix.
func FromHex(s string) ([]byte, error) {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s = s[2:]
	}
	return FromHexRaw(s)
}

// FromHexRaw decodes s exactly as given. Upper and lower case digits are both
// accepted; a prefix is treated as malformed input.
func FromHexRaw(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedHex, err)
	}
	return b, nil
}
