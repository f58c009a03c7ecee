package service

import (
	"context" // Request scoped calls

	"ecommerce/internal/domain" // Domain models
)

// UserRepository looks up and registers users. Lookups return domain.ErrNotFound
// when no user matches; a found user carries its Cart, if one exists. Create
// stores the user and a new empty cart atomically and sets ID and Cart on user.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id uint) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
}

// ItemRepository is the read side of the catalog. FindByID returns
// domain.ErrNotFound for unknown ids; FindByName and FindAll return an empty
// slice, never an error, when nothing matches.
type ItemRepository interface {
	FindByID(ctx context.Context, id uint) (*domain.Item, error)
	FindByName(ctx context.Context, name string) ([]domain.Item, error)
	FindAll(ctx context.Context) ([]domain.Item, error)
}

// CartRepository persists a cart together with its items. Save assigns the ID
// of a new cart.
type CartRepository interface {
	Save(ctx context.Context, cart *domain.Cart) error
}

// OrderRepository persists submitted orders. FindByUser returns orders in
// insertion order.
type OrderRepository interface {
	Save(ctx context.Context, order *domain.UserOrder) error
	FindByUser(ctx context.Context, user *domain.User) ([]domain.UserOrder, error)
}

// PasswordEncoder turns a plaintext password into an opaque hash.
type PasswordEncoder interface {
	Encode(plaintext string) (string, error)
}
