// Package cryptox holds the password digest sent to the remote endpoint.
package cryptox

import (
	"crypto/sha256"
	"encoding/hex"
)

// DigestLength is the length of a Digest result in hex characters.
const DigestLength = sha256.Size * 2

// Digest returns the lowercase hex SHA-256 of the UTF-8 bytes of password.
//
// The remote endpoint stores and compares exactly this value, so the output
// must stay stable: no salt, no normalisation, no trimming.
//
// Example:
//
//	cryptox.Digest("Abcdefg1") // 64 hex characters, same on every platform
func Digest(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}
