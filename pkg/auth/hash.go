// Package auth implements the credential hashing, session tokens and
// per-request HMAC verification used by the API server.
package auth

import (
	"crypto/sha256"
	"encoding/hex"
)

// CalculateHash returns the hex SHA256 digest of data. Used for login
// password proofs, request HMACs and multi-result ownership proofs.
func CalculateHash(data string) string {
	sum := sha256.Sum256([]byte(data))
	return hex.EncodeToString(sum[:])
}
