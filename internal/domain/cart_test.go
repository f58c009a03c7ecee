package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestItem(id uint, name, price string) Item {
	return Item{
		ID:          id,
		Name:        name,
		Description: name + " description",
		Price:       decimal.RequireFromString(price),
	}
}

func TestCart_AddItem(t *testing.T) {
	widget := newTestItem(1, "Round Widget", "2.99")
	cart := NewCart(&User{Username: "alice"})

	for _, n := range []int{1, 3, 5} {
		prevCount := cart.Count(widget.ID)
		prevTotal := cart.Total

		cart.AddItem(widget, n)

		assert.Equal(t, prevCount+n, cart.Count(widget.ID))
		want := prevTotal.Add(widget.Price.Mul(decimal.NewFromInt(int64(n))))
		assert.True(t, want.Equal(cart.Total), "want %s, got %s", want, cart.Total)
	}
	assert.Len(t, cart.Items, 9)
}

func TestCart_RemoveItem(t *testing.T) {
	a := newTestItem(1, "A", "500")
	b := newTestItem(2, "B", "1.99")

	t.Run("removes requested quantity", func(t *testing.T) {
		cart := NewCart(nil)
		cart.AddItem(a, 2)

		removed := cart.RemoveItem(a.ID, 1)

		assert.Equal(t, 1, removed)
		assert.Equal(t, 1, cart.Count(a.ID))
		assert.True(t, decimal.RequireFromString("500").Equal(cart.Total))
	})

	t.Run("over-removal stops at zero", func(t *testing.T) {
		cart := NewCart(nil)
		cart.AddItem(a, 2)
		cart.AddItem(b, 1)

		removed := cart.RemoveItem(a.ID, 10)

		assert.Equal(t, 2, removed)
		assert.Equal(t, 0, cart.Count(a.ID))
		assert.Equal(t, 1, cart.Count(b.ID))
		assert.True(t, b.Price.Equal(cart.Total))
		assert.False(t, cart.Total.IsNegative())
	})

	t.Run("absent item is a no-op", func(t *testing.T) {
		cart := NewCart(nil)
		cart.AddItem(b, 1)

		removed := cart.RemoveItem(a.ID, 3)

		assert.Zero(t, removed)
		assert.Len(t, cart.Items, 1)
		assert.True(t, b.Price.Equal(cart.Total))
	})

	t.Run("earliest occurrences go first", func(t *testing.T) {
		cart := NewCart(nil)
		cart.AddItem(a, 1)
		cart.AddItem(b, 1)
		cart.AddItem(a, 1)

		cart.RemoveItem(a.ID, 1)

		require.Len(t, cart.Items, 2)
		assert.Equal(t, b.ID, cart.Items[0].ID)
		assert.Equal(t, a.ID, cart.Items[1].ID)
	})
}

func TestCart_RecalculateIdempotent(t *testing.T) {
	cart := NewCart(nil)
	cart.AddItem(newTestItem(1, "A", "0.10"), 3)
	cart.AddItem(newTestItem(2, "B", "0.20"), 1)

	cart.Recalculate()
	first := cart.Total
	cart.Recalculate()

	assert.True(t, first.Equal(cart.Total))
	assert.True(t, decimal.RequireFromString("0.50").Equal(cart.Total))
}

func TestCart_NoDriftAcrossCycles(t *testing.T) {
	item := newTestItem(1, "A", "0.10")
	cart := NewCart(nil)

	for i := 0; i < 1000; i++ {
		cart.AddItem(item, 3)
		cart.RemoveItem(item.ID, 2)
	}

	assert.Equal(t, 1000, cart.Count(item.ID))
	assert.True(t, decimal.RequireFromString("100").Equal(cart.Total), "got %s", cart.Total)
}

func TestNewOrderFromCart(t *testing.T) {
	a := newTestItem(1, "A", "500")
	b := newTestItem(2, "B", "1.99")
	user := &User{ID: 7, Username: "alice"}
	cart := NewCart(user)
	cart.AddItem(a, 2)
	cart.AddItem(b, 1)

	order := NewOrderFromCart(user, cart)

	require.Len(t, order.Items, 3)
	assert.Same(t, user, order.User)
	assert.True(t, decimal.RequireFromString("1001.99").Equal(order.Total))
	assert.Zero(t, order.ID)

	// The order holds its own copy of the items.
	cart.RemoveItem(a.ID, 2)
	assert.Len(t, order.Items, 3)
	assert.Equal(t, a.ID, order.Items[0].ID)
	assert.Len(t, cart.Items, 1)
}

func TestNewOrderFromCart_Empty(t *testing.T) {
	order := NewOrderFromCart(&User{}, &Cart{})

	assert.NotNil(t, order.Items)
	assert.Empty(t, order.Items)
	assert.True(t, order.Total.IsZero())
}
