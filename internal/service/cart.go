package service

import (
	"context" // Request scoped calls

	"github.com/go-faster/errors" // Error wrapping

	"ecommerce/internal/domain" // Domain models
)

// CartService mutates a user's cart.
//
// Each call reads the user and cart, changes the cart in memory and saves it.
// Nothing serializes two calls for the same cart, so concurrent modifications
// can overwrite each other.
type CartService struct {
	users UserRepository // Owner lookup
	items ItemRepository // Catalog lookup
	carts CartRepository // Cart persistence
}

// NewCartService creates a CartService.
func NewCartService(users UserRepository, items ItemRepository, carts CartRepository) *CartService {
	return &CartService{
		users: users,
		items: items,
		carts: carts,
	}
}

// GetCart returns the current cart of username.
func (s *CartService) GetCart(ctx context.Context, username string) (*domain.Cart, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, errors.Wrapf(err, "user %q", username)
	}
	return cartOf(user)
}

// AddToCart appends req.Quantity occurrences of the item to the user's cart.
func (s *CartService) AddToCart(ctx context.Context, req ModifyCartRequest) (*domain.Cart, error) {
	cart, item, err := s.resolve(ctx, req)
	if err != nil {
		return nil, err
	}

	cart.AddItem(*item, req.Quantity) // Append and recompute the total

	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, errors.Wrap(err, "save cart")
	}
	return cart, nil
}

// RemoveFromCart removes up to req.Quantity occurrences of the item. Asking to
// remove more than the cart holds empties that item without an error.
func (s *CartService) RemoveFromCart(ctx context.Context, req ModifyCartRequest) (*domain.Cart, error) {
	cart, item, err := s.resolve(ctx, req)
	if err != nil {
		return nil, err
	}

	cart.RemoveItem(item.ID, req.Quantity) // Under-removal is not an error

	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, errors.Wrap(err, "save cart")
	}
	return cart, nil
}

func (s *CartService) resolve(ctx context.Context, req ModifyCartRequest) (*domain.Cart, *domain.Item, error) {
	user, err := s.users.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "user %q", req.Username)
	}
	item, err := s.items.FindByID(ctx, req.ItemID)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "item %d", req.ItemID)
	}
	cart, err := cartOf(user)
	if err != nil {
		return nil, nil, err
	}
	return cart, item, nil
}

// cartOf returns the user's cart with its back reference set.
func cartOf(user *domain.User) (*domain.Cart, error) {
	if user.Cart == nil {
		return nil, errors.Wrapf(domain.ErrNotFound, "cart of user %q", user.Username)
	}
	user.Cart.User = user // Back reference for serialization
	return user.Cart, nil
}
