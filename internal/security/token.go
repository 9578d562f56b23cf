package security

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateToken returns an unguessable opaque token: 32 random bytes from a
// cryptographically secure source, hex encoded. Each call is independent.
func GenerateToken() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
