package cryptox

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
)

var (
	ErrPasswordMismatch  = errors.New("password does not match")
	ErrUnknownHashFormat = errors.New("cryptox: unknown password hash format")
)

// VerifyPassword compares a plaintext password against a stored hash. New
// hashes are PHC-style Argon2id with the pepper; bcrypt hashes imported from
// the previous blog backend ($2a$, $2b$, $2y$) are verified without it.
func VerifyPassword(password, encodedHash string) error {
	switch {
	case strings.HasPrefix(encodedHash, "$argon2id$"):
		return verifyArgon2id(password, encodedHash)
	case isBcryptHash(encodedHash):
		return verifyBcrypt(password, encodedHash)
	default:
		return ErrUnknownHashFormat
	}
}

// PasswordVerifier adapts VerifyPassword to a boolean check. Malformed stored
// hashes count as a mismatch.
type PasswordVerifier struct{}

func (PasswordVerifier) Verify(password, encodedHash string) bool {
	return VerifyPassword(password, encodedHash) == nil
}

func GeneratePassword() (string, error) {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	const length = 12
	password := make([]byte, length)
	for i := range password {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", fmt.Errorf("failed to generate random password: %w", err)
		}
		password[i] = charset[n.Int64()]
	}
	return string(password), nil
}
