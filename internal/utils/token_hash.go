package utils

import (
	"crypto/sha256"
	"encoding/base64"
)

// HashToken returns the SHA-256 digest of an opaque token value, URL-safe
// base64 encoded. Tokens are stored only in this form; lookup happens by
// recomputing the digest of the presented value.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return base64.RawURLEncoding.EncodeToString(sum[:])
}
