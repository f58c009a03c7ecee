package service

import (
	"context" // Request scoped calls

	"github.com/go-faster/errors" // Error wrapping

	"ecommerce/internal/domain" // Domain models
)

// UserService registers and looks up users.
type UserService struct {
	users   UserRepository  // User and cart persistence
	encoder PasswordEncoder // Password hashing
}

// NewUserService creates a UserService.
func NewUserService(users UserRepository, encoder PasswordEncoder) *UserService {
	return &UserService{
		users:   users,
		encoder: encoder,
	}
}

// Create validates req and stores the user with a hashed password and an
// empty cart. Either both are stored or neither is. The returned user never
// holds the plaintext password.
func (s *UserService) Create(ctx context.Context, req CreateUserRequest) (*domain.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err // Already a bad request
	}

	_, err := s.users.FindByUsername(ctx, req.Username) // Reject taken usernames early
	switch {
	case err == nil:
		return nil, errors.Wrapf(domain.ErrBadRequest, "username %q already exists", req.Username)
	case !errors.Is(err, domain.ErrNotFound):
		return nil, errors.Wrap(err, "check username")
	}

	hash, err := s.encoder.Encode(req.Password)
	if err != nil {
		return nil, errors.Wrap(err, "encode password")
	}

	user := &domain.User{
		Username: req.Username,
		Password: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "save user")
	}
	return user, nil
}

// FindByUsername returns the user or domain.ErrNotFound.
func (s *UserService) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, errors.Wrapf(err, "user %q", username)
	}
	return user, nil
}

// FindByID returns the user or domain.ErrNotFound.
func (s *UserService) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrapf(err, "user %d", id)
	}
	return user, nil
}
