package coin

import "github.com/freddiecoleman/chia-wallet-sdk/codec"

// AnnouncementID returns sha256(origin || message). origin is the announcing
// coin id for coin announcements and its puzzle hash for puzzle
// announcements.
func AnnouncementID(origin codec.Hash, message []byte) codec.Hash {
	return codec.SHA256(origin[:], message)
}
