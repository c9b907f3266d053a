package utils

import (
	"github.com/matthewhartstonge/argon2"
)

// HashPassword encodes a kasir or admin password with argon2id defaults
// for storage in the users table.
func HashPassword(password string) (string, error) {
	argon := argon2.DefaultConfig()
	encoded, err := argon.HashEncoded([]byte(password))
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

// VerifyPassword checks a login attempt against the stored encoding. A
// mismatch is (false, nil); an error means the stored hash is unreadable.
func VerifyPassword(encodedHash, password string) (bool, error) {
	ok, err := argon2.VerifyEncoded([]byte(password), []byte(encodedHash))
	if err != nil {
		return false, err
	}
	return ok, nil
}
