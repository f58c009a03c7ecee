package utils

import (
	"github.com/go-faster/errors" // Error wrapping
	"golang.org/x/crypto/bcrypt"  // Password hashing
)

// BcryptEncoder hashes passwords with bcrypt
type BcryptEncoder struct {
	cost int // bcrypt work factor
}

// NewBcryptEncoder returns an encoder using cost, falling back to bcrypt.DefaultCost when out of range
func NewBcryptEncoder(cost int) *BcryptEncoder {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost // Out of range cost would make every hash fail
	}
	return &BcryptEncoder{cost: cost}
}

// Encode hashes the plaintext password
func (e *BcryptEncoder) Encode(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), e.cost)
	if err != nil {
		return "", errors.Wrap(err, "hash password")
	}
	return string(hash), nil
}

