package security

import "github.com/matthewhartstonge/argon2"

var argon = argon2.DefaultConfig()

// HashPassword hashes a plaintext password with argon2id and returns the
// encoded form suitable for storage.
func HashPassword(password string) (string, error) {
	encoded, err := argon.HashEncoded([]byte(password))
	if err != nil {
		return "", err
	}

	return string(encoded), nil
}

// VerifyPassword reports whether the plaintext password matches the encoded
// hash. The plaintext is never recoverable from the hash.
func VerifyPassword(password, encodedHash string) (bool, error) {
	return argon2.VerifyEncoded([]byte(password), []byte(encodedHash))
}
