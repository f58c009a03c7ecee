package storage

import (
	"github.com/shopspring/decimal" // Exact money amounts

	"ecommerce/internal/domain"
)

// User Model
type userModel struct {
	ID       uint   `gorm:"primaryKey"`                    // Primary key
	Username string `gorm:"size:191;uniqueIndex;not null"` // Unique username
	Password string `gorm:"not null"`                      // Hashed password
}

func (userModel) TableName() string { return "users" }

// Item Model
type itemModel struct {
	ID          uint            `gorm:"primaryKey"`              // Primary key
	Name        string          `gorm:"size:191;index;not null"` // Item name, searched by exact match
	Description string          `gorm:"type:text"`               // Free text description
	Price       decimal.Decimal `gorm:"type:decimal(19,2);not null"`
}

func (itemModel) TableName() string { return "items" }

// Cart Model, one per user
type cartModel struct {
	ID     uint            `gorm:"primaryKey"`                            // Primary key
	UserID uint            `gorm:"uniqueIndex;not null"`                  // Owning user
	Total  decimal.Decimal `gorm:"type:decimal(19,2);not null;default:0"` // Sum of line prices
	Lines  []cartLineModel `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
}

func (cartModel) TableName() string { return "carts" }

// Cart line, one row per occurrence of an item in the cart
type cartLineModel struct {
	ID       uint      `gorm:"primaryKey"`     // Primary key
	CartID   uint      `gorm:"index;not null"` // Owning cart
	ItemID   uint      `gorm:"not null"`       // Catalog item
	Position int       `gorm:"not null"`       // Order of the occurrence inside the cart
	Item     itemModel `gorm:"foreignKey:ItemID"`
}

func (cartLineModel) TableName() string { return "cart_items" }

// Order Model
type orderModel struct {
	ID        uint             `gorm:"primaryKey"`                  // Primary key
	UserID    uint             `gorm:"index;not null"`              // Submitting user
	Total     decimal.Decimal  `gorm:"type:decimal(19,2);not null"` // Total at submission time
	CreatedAt int64            `gorm:"autoCreateTime:milli"`        // Timestamp of creation in milliseconds
	Lines     []orderLineModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (orderModel) TableName() string { return "user_orders" }

// Order line; Price freezes the item price at submission time
type orderLineModel struct {
	ID       uint            `gorm:"primaryKey"`                  // Primary key
	OrderID  uint            `gorm:"index;not null"`              // Owning order
	ItemID   uint            `gorm:"not null"`                    // Catalog item
	Position int             `gorm:"not null"`                    // Order of the occurrence inside the order
	Price    decimal.Decimal `gorm:"type:decimal(19,2);not null"` // Snapshot price
	Item     itemModel       `gorm:"foreignKey:ItemID"`
}

func (orderLineModel) TableName() string { return "order_items" }

// models lists every table in migration order
func models() []any {
	return []any{
		&userModel{},
		&itemModel{},
		&cartModel{},
		&cartLineModel{},
		&orderModel{},
		&orderLineModel{},
	}
}

// toItem maps a catalog row to the domain item
func toItem(m itemModel) domain.Item {
	return domain.Item{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
	}
}

// toCart rebuilds the cart from its lines. The total is recomputed from the
// current catalog prices, the stored column is only a cache of the last save.
func toCart(m cartModel, user *domain.User) *domain.Cart {
	items := make([]domain.Item, len(m.Lines))
	for i, l := range m.Lines {
		item := toItem(l.Item)
		item.ID = l.ItemID // Keep the reference even if the catalog row is gone
		items[i] = item
	}
	cart := &domain.Cart{
		ID:    m.ID,
		User:  user,
		Items: items,
	}
	cart.Recalculate() // Total follows the items as loaded
	return cart
}

// toOrder rebuilds an order with the prices frozen on its lines
func toOrder(m orderModel, user *domain.User) domain.UserOrder {
	items := make([]domain.Item, len(m.Lines))
	for i, l := range m.Lines {
		item := toItem(l.Item)
		item.ID = l.ItemID   // Keep the reference even if the catalog row is gone
		item.Price = l.Price // Price as it was when the order was placed
		items[i] = item
	}
	return domain.UserOrder{
		ID:    m.ID,
		User:  user,
		Items: items,
		Total: m.Total,
	}
}
