package service

import (
	"context" // Request scoped calls
	"time"    // Cache TTL

	"github.com/go-faster/errors" // Error wrapping
	"github.com/sirupsen/logrus"  // Logging library

	"ecommerce/internal/domain" // Domain models
	"ecommerce/internal/utils"  // Cache
)

// ItemService serves catalog lookups, caching listings and name searches.
type ItemService struct {
	items ItemRepository // Catalog store
	cache utils.Cache    // Listing cache
	ttl   time.Duration  // Lifetime of cached listings
}

// NewItemService creates an ItemService. A nil cache disables caching.
func NewItemService(items ItemRepository, cache utils.Cache, ttl time.Duration) *ItemService {
	if cache == nil {
		cache = utils.NopCache{} // Caching disabled
	}
	return &ItemService{
		items: items,
		cache: cache,
		ttl:   ttl,
	}
}

// List returns the whole catalog; an empty catalog yields an empty slice.
func (s *ItemService) List(ctx context.Context) ([]domain.Item, error) {
	return s.cached(ctx, utils.ItemsAllKey, func() ([]domain.Item, error) {
		items, err := s.items.FindAll(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "list items")
		}
		return items, nil
	})
}

// FindByID returns a single item or domain.ErrNotFound.
func (s *ItemService) FindByID(ctx context.Context, id uint) (*domain.Item, error) {
	item, err := s.items.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrapf(err, "item %d", id)
	}
	return item, nil
}

// FindByName returns the items named name. No match is an empty slice, not an error.
func (s *ItemService) FindByName(ctx context.Context, name string) ([]domain.Item, error) {
	return s.cached(ctx, utils.ItemsByNameKey(name), func() ([]domain.Item, error) {
		items, err := s.items.FindByName(ctx, name)
		if err != nil {
			return nil, errors.Wrapf(err, "find items named %q", name)
		}
		return items, nil
	})
}

// cached is a read-through wrapper. Cache errors are logged and never fail the call.
func (s *ItemService) cached(ctx context.Context, key string, load func() ([]domain.Item, error)) ([]domain.Item, error) {
	var items []domain.Item
	found, err := s.cache.Get(ctx, key, &items)
	if err != nil {
		logrus.WithFields(logrus.Fields{"key": key, "error": err.Error()}).Warn("Cache read failed")
	}
	if found && err == nil {
		return nonNil(items), nil // Cache hit
	}

	items, err = load() // Cache miss, ask the store
	if err != nil {
		return nil, err
	}
	items = nonNil(items)
	// Empty results are not cached so newly seeded items show up immediately.
	if len(items) > 0 {
		if err := s.cache.Set(ctx, key, items, s.ttl); err != nil {
			logrus.WithFields(logrus.Fields{"key": key, "error": err.Error()}).Warn("Cache write failed")
		}
	}
	return items, nil
}

func nonNil(items []domain.Item) []domain.Item {
	if items == nil {
		return []domain.Item{}
	}
	return items
}
