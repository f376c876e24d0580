package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost matches the cost factor the rest of the stack assumes; raising
// it invalidates no existing digests but slows new registrations.
const bcryptCost = 10

// HashPassword produces a salted, irreversible digest of the password.
func HashPassword(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// CheckPassword reports whether password matches the stored digest.
func CheckPassword(digest, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
