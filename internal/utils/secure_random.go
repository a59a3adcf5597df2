package utils

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// GenerateOpaqueToken generates a cryptographically secure random token of
// the specified byte length, URL-safe base64 encoded. lengthInBytes=32 yields
// 256 bits of entropy in a 43-character string. The value is opaque: nothing
// about its target is recoverable without a lookup.
func GenerateOpaqueToken(lengthInBytes int) (string, error) {
	if lengthInBytes <= 0 {
		return "", fmt.Errorf("lengthInBytes must be positive")
	}
	b := make([]byte, lengthInBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
