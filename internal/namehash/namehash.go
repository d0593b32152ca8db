// Package namehash derives stable replacement names from original names.
package namehash

import (
	"crypto/sha256"
	"encoding/hex"
)

const maxLen = sha256.Size * 2

// Hash returns the lowercase hex SHA-256 digest of the UTF-8 bytes of name.
func Hash(name string) string {
	sum := sha256.Sum256([]byte(name))
	return hex.EncodeToString(sum[:])
}

// Short returns the first n characters of Hash(name), with n clamped to
// [1, 64].
func Short(name string, n int) string {
	n = max(1, min(n, maxLen))
	return Hash(name)[:n]
}
