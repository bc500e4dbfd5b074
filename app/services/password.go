package services

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost is the work factor applied to every password write.
const DefaultBcryptCost = 12

// hashPassword is the single place a plaintext password turns into a stored
// digest. Callers must never pass an already-hashed value.
func hashPassword(plaintext string, cost int) (string, error) {
	if cost <= 0 {
		cost = DefaultBcryptCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func checkPassword(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
