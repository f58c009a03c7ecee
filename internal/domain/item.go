package domain

import "github.com/shopspring/decimal" // Exact money amounts

// Item is a priced catalog entry. Items are read-only to the cart and order logic.
type Item struct {
	ID          uint            `json:"id"`          // Catalog id
	Name        string          `json:"name"`        // Display name, searched by exact match
	Description string          `json:"description"` // Free text
	Price       decimal.Decimal `json:"price"`       // Unit price, never negative
}

// SumPrices returns the exact sum of the prices of items.
func SumPrices(items []Item) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Price)
	}
	return total
}
