package domain

import "github.com/shopspring/decimal" // Exact money amounts

// UserOrder is an immutable record of a cart's contents at submission time.
type UserOrder struct {
	ID    uint            `json:"id"`    // Assigned when persisted
	User  *User           `json:"user"`  // Submitting user
	Items []Item          `json:"items"` // Copy of the cart items
	Total decimal.Decimal `json:"total"` // Sum of the copied prices
}

// NewOrderFromCart snapshots cart into a new, not yet persisted order for user.
// The cart itself is left untouched.
func NewOrderFromCart(user *User, cart *Cart) *UserOrder {
	items := cart.Snapshot() // Later cart changes must not reach the order
	return &UserOrder{
		User:  user,
		Items: items,
		Total: SumPrices(items),
	}
}
