package domain

import (
	"slices" // Snapshot copies

	"github.com/shopspring/decimal" // Exact money amounts
)

// Cart holds the items a user intends to order. Items is a multiset: an item
// appearing n times has quantity n. Total always equals SumPrices(Items) after
// AddItem, RemoveItem or Recalculate.
type Cart struct {
	ID    uint            `json:"id"`    // Assigned when persisted
	User  *User           `json:"user"`  // Owner
	Items []Item          `json:"items"` // Multiset, duplicates are quantity
	Total decimal.Decimal `json:"total"` // Sum of item prices
}

// NewCart returns an empty cart owned by user. The ID stays zero until the
// cart is persisted.
func NewCart(user *User) *Cart {
	return &Cart{
		User:  user,
		Items: []Item{},     // Serialized as [] rather than null
		Total: decimal.Zero, // Empty cart costs nothing
	}
}

// AddItem appends quantity occurrences of item and recomputes the total.
func (c *Cart) AddItem(item Item, quantity int) {
	for i := 0; i < quantity; i++ {
		c.Items = append(c.Items, item)
	}
	c.Recalculate()
}

// RemoveItem removes up to quantity occurrences of the item with the given id,
// earliest first, and recomputes the total. Removing more occurrences than the
// cart holds removes all of them. It returns the number actually removed.
func (c *Cart) RemoveItem(itemID uint, quantity int) int {
	removed := 0
	kept := make([]Item, 0, len(c.Items))
	for _, it := range c.Items {
		if it.ID == itemID && removed < quantity {
			removed++ // Drop this occurrence
			continue
		}
		kept = append(kept, it)
	}
	c.Items = kept
	c.Recalculate()
	return removed
}

// Count returns how many occurrences of the item with the given id the cart holds.
func (c *Cart) Count(itemID uint) int {
	n := 0
	for _, it := range c.Items {
		if it.ID == itemID {
			n++
		}
	}
	return n
}

// Recalculate recomputes Total over the whole multiset instead of adjusting it
// incrementally, so repeated add/remove cycles cannot drift.
func (c *Cart) Recalculate() {
	c.Total = SumPrices(c.Items)
}

// Snapshot returns a copy of the cart items that shares no backing array with the cart.
func (c *Cart) Snapshot() []Item {
	if c.Items == nil {
		return []Item{}
	}
	return slices.Clone(c.Items)
}
