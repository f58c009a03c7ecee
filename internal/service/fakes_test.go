package service

import (
	"context"
	"encoding/json"
	"slices"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"ecommerce/internal/domain"
)

// --- Fake implementations ---

type fakeUserRepo struct {
	byName  map[string]*domain.User
	nextID  uint
	saveErr error
	cartErr error
	findErr error
}

func newUserRepo(users ...*domain.User) *fakeUserRepo {
	r := &fakeUserRepo{byName: map[string]*domain.User{}, nextID: 1}
	for _, u := range users {
		if u.ID == 0 {
			u.ID = r.nextID
		}
		r.nextID = max(r.nextID, u.ID+1)
		r.byName[u.Username] = u
	}
	return r
}

func (r *fakeUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	u, ok := r.byName[username]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uint) (*domain.User, error) {
	for _, u := range r.byName {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Create mimics the transactional insert: a failing cart insert leaves no user behind.
func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	if r.cartErr != nil {
		return errors.Wrap(r.cartErr, "insert cart")
	}
	user.ID = r.nextID
	r.nextID++
	user.Cart = domain.NewCart(user)
	user.Cart.ID = user.ID
	r.byName[user.Username] = user
	return nil
}

type fakeItemRepo struct {
	items []domain.Item
	err   error
	calls int
}

func (r *fakeItemRepo) FindByID(_ context.Context, id uint) (*domain.Item, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	for i := range r.items {
		if r.items[i].ID == id {
			it := r.items[i]
			return &it, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeItemRepo) FindByName(_ context.Context, name string) ([]domain.Item, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	out := []domain.Item{}
	for _, it := range r.items {
		if it.Name == name {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *fakeItemRepo) FindAll(_ context.Context) ([]domain.Item, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	return slices.Clone(r.items), nil
}

type fakeCartRepo struct {
	saved  []*domain.Cart
	nextID uint
	err    error
}

func (r *fakeCartRepo) Save(_ context.Context, cart *domain.Cart) error {
	if r.err != nil {
		return r.err
	}
	if cart.ID == 0 {
		r.nextID++
		cart.ID = r.nextID
	}
	r.saved = append(r.saved, cart)
	return nil
}

type fakeOrderRepo struct {
	orders  []domain.UserOrder
	saveErr error
	findErr error
}

func (r *fakeOrderRepo) Save(_ context.Context, order *domain.UserOrder) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	order.ID = uint(len(r.orders) + 1)
	r.orders = append(r.orders, *order)
	return nil
}

func (r *fakeOrderRepo) FindByUser(_ context.Context, user *domain.User) ([]domain.UserOrder, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	var out []domain.UserOrder
	for _, o := range r.orders {
		if o.User.ID == user.ID {
			out = append(out, o)
		}
	}
	return out, nil
}

type fakeEncoder struct {
	hash string
	err  error
}

func (e *fakeEncoder) Encode(string) (string, error) {
	return e.hash, e.err
}

// memoryCache round-trips values through JSON like the Redis cache does.
type memoryCache struct {
	data   map[string][]byte
	getErr error
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: map[string][]byte{}}
}

func (c *memoryCache) Get(_ context.Context, key string, dest any) (bool, error) {
	if c.getErr != nil {
		return false, c.getErr
	}
	b, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dest)
}

func (c *memoryCache) Set(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.data[key] = b
	return nil
}

func (c *memoryCache) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(c.data, k)
	}
	return nil
}

// --- Helpers ---

var errDB = errors.New("db down")

func newTestItem(id uint, name, price string) domain.Item {
	return domain.Item{
		ID:          id,
		Name:        name,
		Description: "A widget",
		Price:       decimal.RequireFromString(price),
	}
}

func newUserWithCart(id uint, username string) *domain.User {
	u := &domain.User{ID: id, Username: username, Password: "hashed"}
	u.Cart = domain.NewCart(u)
	u.Cart.ID = id
	return u
}
