package service

import (
	"github.com/go-faster/errors" // Error wrapping

	"ecommerce/internal/domain" // Domain models
)

// MinPasswordLength is the shortest accepted password.
const MinPasswordLength = 7

// CreateUserRequest is the registration payload.
type CreateUserRequest struct {
	Username        string `json:"username" binding:"required"` // Username must be provided
	Password        string `json:"password"`                    // Plaintext password
	ConfirmPassword string `json:"confirmPassword"`             // Must repeat Password
}

// Validate checks the structural and business rules of a registration.
func (r CreateUserRequest) Validate() error {
	if r.Username == "" {
		return errors.Wrap(domain.ErrBadRequest, "username required")
	}
	if len(r.Password) < MinPasswordLength {
		return errors.Wrapf(domain.ErrBadRequest, "password must be at least %d characters", MinPasswordLength)
	}
	if r.Password != r.ConfirmPassword {
		return errors.Wrap(domain.ErrBadRequest, "password and confirmation differ")
	}
	return nil
}

// ModifyCartRequest asks to add or remove Quantity occurrences of an item.
// Build it with NewModifyCartRequest; the engines trust Quantity.
type ModifyCartRequest struct {
	Username string // Cart owner
	ItemID   uint   // Catalog item
	Quantity int    // Occurrences, at least one
}

// NewModifyCartRequest validates quantity and returns the request.
// No upper bound is enforced.
func NewModifyCartRequest(username string, itemID uint, quantity int) (ModifyCartRequest, error) {
	if quantity < 1 {
		return ModifyCartRequest{}, errors.Wrapf(domain.ErrBadRequest, "quantity must be positive, got %d", quantity)
	}
	return ModifyCartRequest{
		Username: username,
		ItemID:   itemID,
		Quantity: quantity,
	}, nil
}
