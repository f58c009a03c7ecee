package storage

import (
	"context" // Request scoped queries

	"github.com/go-faster/errors" // Error wrapping
	"gorm.io/gorm"                // GORM ORM library
	"gorm.io/gorm/clause"         // Association control

	"ecommerce/internal/domain"  // Domain models
	"ecommerce/internal/service" // Repository contracts
)

var _ service.OrderRepository = (*OrderRepository)(nil)

// OrderRepository implements service.OrderRepository with GORM.
type OrderRepository struct {
	db *gorm.DB // Database handle
}

// NewOrderRepository returns an OrderRepository using db.
func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Save inserts the order and its lines. Orders are never updated.
func (r *OrderRepository) Save(ctx context.Context, order *domain.UserOrder) error {
	if order.User == nil || order.User.ID == 0 {
		return errors.New("order has no persisted owner")
	}
	if order.ID != 0 {
		return errors.Errorf("order %d already persisted", order.ID) // Orders are immutable
	}

	m := orderModel{
		UserID: order.User.ID,
		Total:  order.Total,
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(&m).Error; err != nil {
			return errors.Wrap(err, "insert order")
		}
		if len(order.Items) == 0 {
			return nil // Empty cart submitted
		}
		lines := make([]orderLineModel, len(order.Items))
		for i, it := range order.Items {
			lines[i] = orderLineModel{
				OrderID:  m.ID,
				ItemID:   it.ID,
				Position: i,
				Price:    it.Price, // Frozen at submission time
			}
		}
		if err := tx.Omit(clause.Associations).Create(&lines).Error; err != nil {
			return errors.Wrap(err, "insert order lines")
		}
		return nil
	})
	if err != nil {
		return errors.Wrapf(err, "order of user %d", order.User.ID)
	}
	order.ID = m.ID // Assigned by the database
	return nil
}

// FindByUser returns the user's orders in insertion order.
func (r *OrderRepository) FindByUser(ctx context.Context, user *domain.User) ([]domain.UserOrder, error) {
	var ms []orderModel // Orders with lines and items
	err := r.db.WithContext(ctx).
		Preload("Lines", orderByPosition).
		Preload("Lines.Item").
		Where("user_id = ?", user.ID).
		Order("id ASC").
		Find(&ms).Error
	if err != nil {
		return nil, errors.Wrapf(err, "find orders of user %d", user.ID)
	}

	orders := make([]domain.UserOrder, len(ms))
	for i, m := range ms {
		orders[i] = toOrder(m, user)
	}
	return orders, nil
}
