package service

import (
	"context" // Request scoped calls
	"time"    // Cache TTL

	"github.com/go-faster/errors" // Error wrapping
	"github.com/sirupsen/logrus"  // Logging library

	"ecommerce/internal/domain" // Domain models
	"ecommerce/internal/utils"  // Cache
)

// OrderService turns carts into orders and lists past orders.
type OrderService struct {
	users  UserRepository  // Owner lookup
	orders OrderRepository // Order persistence
	cache  utils.Cache     // History cache
	ttl    time.Duration   // Lifetime of cached histories
}

// NewOrderService creates an OrderService. A nil cache disables history caching.
func NewOrderService(users UserRepository, orders OrderRepository, cache utils.Cache, ttl time.Duration) *OrderService {
	if cache == nil {
		cache = utils.NopCache{}
	}
	return &OrderService{
		users:  users,
		orders: orders,
		cache:  cache,
		ttl:    ttl,
	}
}

// Submit snapshots the user's cart into a new order and persists it.
// The cart keeps its items.
func (s *OrderService) Submit(ctx context.Context, username string) (*domain.UserOrder, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, errors.Wrapf(err, "user %q", username)
	}
	cart, err := cartOf(user)
	if err != nil {
		return nil, err
	}

	order := domain.NewOrderFromCart(user, cart) // Snapshot, the cart keeps its items
	if err := s.orders.Save(ctx, order); err != nil {
		return nil, errors.Wrap(err, "save order")
	}

	key := utils.OrderHistoryKey(username)
	if err := s.cache.Delete(ctx, key); err != nil {
		logrus.WithFields(logrus.Fields{"key": key, "error": err.Error()}).Warn("Cache invalidation failed")
	}
	return order, nil
}

// History returns every order of username, oldest first.
func (s *OrderService) History(ctx context.Context, username string) ([]domain.UserOrder, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, errors.Wrapf(err, "user %q", username)
	}

	key := utils.OrderHistoryKey(username)
	var orders []domain.UserOrder
	found, err := s.cache.Get(ctx, key, &orders)
	if err != nil {
		logrus.WithFields(logrus.Fields{"key": key, "error": err.Error()}).Warn("Cache read failed")
	}
	if found && err == nil {
		return orders, nil // Cache hit
	}

	orders, err = s.orders.FindByUser(ctx, user)
	if err != nil {
		return nil, errors.Wrap(err, "find orders")
	}
	if orders == nil {
		orders = []domain.UserOrder{} // Serialized as []
	}
	if err := s.cache.Set(ctx, key, orders, s.ttl); err != nil {
		logrus.WithFields(logrus.Fields{"key": key, "error": err.Error()}).Warn("Cache write failed")
	}
	return orders, nil
}
