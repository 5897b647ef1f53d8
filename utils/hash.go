package utils

import "golang.org/x/crypto/bcrypt"

// bcryptCost is paid once at startup when the configured scorer password is
// hashed, so it can sit above the library default.
const bcryptCost = 14

// HashPassword hashes the scorer password for in-memory comparison.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	return string(hash), err
}

// CheckPassword reports whether the password matches the stored hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
