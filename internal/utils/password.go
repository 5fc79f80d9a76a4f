package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword derives a salted, irreversible bcrypt hash of the given
// plaintext password. cost controls the bcrypt work factor; pass 0 to use
// [bcrypt.DefaultCost].
//
// The returned string embeds the salt and cost, so it is self-contained for
// later verification with [ComparePassword].
func HashPassword(password string, cost int) (string, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hashed), nil
}

// ComparePassword reports whether the plaintext password matches the stored
// bcrypt hash. A nil return means the password is correct.
func ComparePassword(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return fmt.Errorf("error comparing password with hash: %w", err)
	}
	return nil
}
