package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// hashKey generates a cache key by hashing the components.
// The key format is: prefix:hash(parts...)
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(hash[:]))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// ShareKeyOpts identifies one rendered share image.
type ShareKeyOpts struct {
	Name1     string `json:"name1"`
	Name2     string `json:"name2"`
	Since     string `json:"since"`
	Days      int    `json:"days"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Format    string `json:"format"`
	PhotoHash string `json:"photo,omitempty"`
}

// ShareKey returns the cache key of a share image. The day count is part
// of the key, so a card rendered yesterday is never served today.
func ShareKey(opts ShareKeyOpts) string {
	return hashKey("share", opts)
}
