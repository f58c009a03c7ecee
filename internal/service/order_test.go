package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecommerce/internal/domain"
	"ecommerce/internal/utils"
)

func TestOrderService_Submit(t *testing.T) {
	a := newTestItem(1, "A", "500")
	b := newTestItem(2, "B", "1.99")
	alice := newUserWithCart(1, "alice")
	alice.Cart.AddItem(a, 2)
	alice.Cart.AddItem(b, 1)
	orders := &fakeOrderRepo{}
	svc := NewOrderService(newUserRepo(alice), orders, nil, time.Minute)

	order, err := svc.Submit(context.Background(), "alice")

	require.NoError(t, err)
	assert.Equal(t, uint(1), order.ID)
	assert.Equal(t, "alice", order.User.Username)
	require.Len(t, order.Items, 3)
	assert.ElementsMatch(t, []uint{1, 1, 2}, []uint{order.Items[0].ID, order.Items[1].ID, order.Items[2].ID})
	want := a.Price.Mul(decimal.NewFromInt(2)).Add(b.Price)
	assert.True(t, want.Equal(order.Total), "want %s, got %s", want, order.Total)
	require.Len(t, orders.orders, 1)

	// The source cart is left as it was.
	assert.Len(t, alice.Cart.Items, 3)
	assert.Equal(t, 2, alice.Cart.Count(a.ID))
	assert.True(t, want.Equal(alice.Cart.Total))
}

func TestOrderService_Submit_EmptyCart(t *testing.T) {
	svc := NewOrderService(newUserRepo(newUserWithCart(1, "alice")), &fakeOrderRepo{}, nil, time.Minute)

	order, err := svc.Submit(context.Background(), "alice")
	require.NoError(t, err)
	assert.Empty(t, order.Items)
	assert.True(t, order.Total.IsZero())
}

func TestOrderService_Submit_Errors(t *testing.T) {
	t.Run("unknown user", func(t *testing.T) {
		orders := &fakeOrderRepo{}
		svc := NewOrderService(newUserRepo(), orders, nil, time.Minute)

		order, err := svc.Submit(context.Background(), "alice")
		require.ErrorIs(t, err, domain.ErrNotFound)
		assert.Nil(t, order)
		assert.Empty(t, orders.orders)
	})

	t.Run("save fails", func(t *testing.T) {
		svc := NewOrderService(newUserRepo(newUserWithCart(1, "alice")), &fakeOrderRepo{saveErr: errDB}, nil, time.Minute)

		_, err := svc.Submit(context.Background(), "alice")
		require.ErrorIs(t, err, errDB)
		assert.Contains(t, err.Error(), "save order")
	})
}

func TestOrderService_History(t *testing.T) {
	alice := newUserWithCart(1, "alice")
	bob := newUserWithCart(2, "bob")
	orders := &fakeOrderRepo{orders: []domain.UserOrder{
		{ID: 1, User: alice, Total: decimal.NewFromInt(500)},
		{ID: 2, User: bob, Total: decimal.NewFromInt(7)},
		{ID: 3, User: alice, Total: decimal.NewFromInt(1000)},
	}}
	svc := NewOrderService(newUserRepo(alice, bob), orders, nil, time.Minute)

	history, err := svc.History(context.Background(), "alice")

	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, uint(1), history[0].ID)
	assert.Equal(t, uint(3), history[1].ID)
	assert.True(t, decimal.NewFromInt(500).Equal(history[0].Total))
	assert.True(t, decimal.NewFromInt(1000).Equal(history[1].Total))
}

func TestOrderService_History_Empty(t *testing.T) {
	svc := NewOrderService(newUserRepo(newUserWithCart(1, "alice")), &fakeOrderRepo{}, nil, time.Minute)

	history, err := svc.History(context.Background(), "alice")
	require.NoError(t, err)
	assert.NotNil(t, history)
	assert.Empty(t, history)
}

func TestOrderService_History_Errors(t *testing.T) {
	svc := NewOrderService(newUserRepo(), &fakeOrderRepo{}, nil, time.Minute)
	_, err := svc.History(context.Background(), "alice")
	require.ErrorIs(t, err, domain.ErrNotFound)

	svc = NewOrderService(newUserRepo(newUserWithCart(1, "alice")), &fakeOrderRepo{findErr: errDB}, nil, time.Minute)
	_, err = svc.History(context.Background(), "alice")
	require.ErrorIs(t, err, errDB)
}

func TestOrderService_SubmitInvalidatesHistoryCache(t *testing.T) {
	alice := newUserWithCart(1, "alice")
	alice.Cart.AddItem(newTestItem(1, "A", "2.99"), 1)
	cache := newMemoryCache()
	svc := NewOrderService(newUserRepo(alice), &fakeOrderRepo{}, cache, time.Minute)
	ctx := context.Background()

	history, err := svc.History(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, history)
	assert.Contains(t, cache.data, utils.OrderHistoryKey("alice"))

	_, err = svc.Submit(ctx, "alice")
	require.NoError(t, err)
	assert.NotContains(t, cache.data, utils.OrderHistoryKey("alice"))

	history, err = svc.History(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.True(t, decimal.RequireFromString("2.99").Equal(history[0].Total))
}
