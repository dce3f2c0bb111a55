package codec

import (
	"fmt"
	"hash"

	sha256 "github.com/minio/sha256-simd"
)

// HashBytes is the fixed width of tree hashes, puzzle hashes and coin ids.
const HashBytes = 32

// Hash is a 32 byte sha256 digest.
type Hash [HashBytes]byte

// NewHasher returns the sha256 implementation used for all hashing in this
// module.
func NewHasher() hash.Hash {
	return sha256.New()
}

// SHA256 returns sha256(parts[0] || parts[1] || ...).
func SHA256(parts ...[]byte) Hash {
	if len(parts) == 1 {
		return sha256.Sum256(parts[0])
	}
	hasher := sha256.New()
	for _, p := range parts {
		_, _ = hasher.Write(p)
	}
	return SumHash(hasher)
}

// SumHash appends the current digest of hasher to a Hash. The hasher is not
// reset.
func SumHash(hasher hash.Hash) Hash {
	var out Hash
	hasher.Sum(out[:0])
	return out
}

// HashFromBytes copies b into a Hash.
func HashFromBytes(b []byte) (Hash, error) {
	var h Hash
	if len(b) != HashBytes {
		return h, fmt.Errorf("%w: got %d", ErrBadHashSize, len(b))
	}
	copy(h[:], b)
	return h, nil
}

// HashFromHex decodes a 64 digit hex string, with or without a 0x prefix.
func HashFromHex(s string) (Hash, error) {
	b, err := FromHex(s)
	if err != nil {
		return Hash{}, err
	}
	return HashFromBytes(b)
}

func (h Hash) Bytes() []byte {
	b := make([]byte, HashBytes)
	copy(b, h[:])
	return b
}

func (h Hash) String() string {
	return ToHex(h[:])
}

func (h Hash) IsZero() bool {
	return h == Hash{}
}

func (h Hash) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

func (h *Hash) UnmarshalText(text []byte) error {
	v, err := HashFromHex(string(text))
	if err != nil {
		return err
	}
	*h = v
	return nil
}
