package storage

import (
	"context" // Request scoped queries

	"github.com/go-faster/errors" // Error wrapping
	"gorm.io/gorm"                // GORM ORM library

	"ecommerce/internal/domain"  // Domain models
	"ecommerce/internal/service" // Repository contracts
)

var _ service.ItemRepository = (*ItemRepository)(nil)

// ItemRepository implements service.ItemRepository with GORM.
type ItemRepository struct {
	db *gorm.DB // Database handle
}

// NewItemRepository returns an ItemRepository using db.
func NewItemRepository(db *gorm.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

// FindByID returns a single item or domain.ErrNotFound.
func (r *ItemRepository) FindByID(ctx context.Context, id uint) (*domain.Item, error) {
	var m itemModel // Catalog row
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, notFound(err, "find item by id")
	}
	item := toItem(m)
	return &item, nil
}

// FindByName returns all items whose name equals name, ordered by ID.
func (r *ItemRepository) FindByName(ctx context.Context, name string) ([]domain.Item, error) {
	return r.find(ctx, r.db.WithContext(ctx).Where("name = ?", name))
}

// FindAll returns the whole catalog ordered by ID.
func (r *ItemRepository) FindAll(ctx context.Context) ([]domain.Item, error) {
	return r.find(ctx, r.db.WithContext(ctx))
}

func (r *ItemRepository) find(_ context.Context, q *gorm.DB) ([]domain.Item, error) {
	var ms []itemModel // Matching rows
	if err := q.Order("id ASC").Find(&ms).Error; err != nil {
		return nil, errors.Wrap(err, "find items")
	}
	items := make([]domain.Item, len(ms)) // Never nil, even without matches
	for i, m := range ms {
		items[i] = toItem(m)
	}
	return items, nil
}
