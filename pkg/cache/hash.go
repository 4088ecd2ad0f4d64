package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// hashKey returns prefix:sha256(parts), with parts joined by a NUL byte so
// that ("ab","c") and ("a","bc") hash differently.
func hashKey(prefix string, parts ...string) string {
	return prefix + ":" + Hash([]byte(strings.Join(parts, "\x00")))
}

// Hash computes a SHA-256 hash of data as 64 hex characters.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
