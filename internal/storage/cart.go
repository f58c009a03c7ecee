package storage

import (
	"context" // Request scoped queries

	"github.com/go-faster/errors" // Error wrapping
	"gorm.io/gorm"                // GORM ORM library
	"gorm.io/gorm/clause"         // Association control

	"ecommerce/internal/domain"  // Domain models
	"ecommerce/internal/service" // Repository contracts
)

var _ service.CartRepository = (*CartRepository)(nil)

// CartRepository implements service.CartRepository with GORM.
type CartRepository struct {
	db *gorm.DB // Database handle
}

// NewCartRepository returns a CartRepository using db.
func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{db: db}
}

// Save writes the cart total and replaces its lines in one transaction.
// There is no version check: the last writer wins.
func (r *CartRepository) Save(ctx context.Context, cart *domain.Cart) error {
	if cart.User == nil || cart.User.ID == 0 {
		return errors.New("cart has no persisted owner") // Carts are created with their user
	}

	m := cartModel{
		ID:     cart.ID,
		UserID: cart.User.ID,
		Total:  cart.Total,
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(&m).Error; err != nil {
			return errors.Wrap(err, "save cart")
		}
		if err := tx.Where("cart_id = ?", m.ID).Delete(&cartLineModel{}).Error; err != nil {
			return errors.Wrap(err, "clear cart lines")
		}
		if len(cart.Items) == 0 {
			return nil // Emptied cart, nothing to insert
		}
		lines := make([]cartLineModel, len(cart.Items))
		for i, it := range cart.Items {
			lines[i] = cartLineModel{
				CartID:   m.ID,
				ItemID:   it.ID,
				Position: i, // Keeps the multiset order
			}
		}
		if err := tx.Omit(clause.Associations).Create(&lines).Error; err != nil {
			return errors.Wrap(err, "insert cart lines")
		}
		return nil
	})
	if err != nil {
		return errors.Wrapf(err, "cart of user %d", cart.User.ID)
	}
	cart.ID = m.ID // Assigned on first save
	return nil
}
