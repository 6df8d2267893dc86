package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartService_AddItemMergesLines(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.carts.AddItem(ctx, "s1", "bruschetta-tomato", 2, "no onions")
	require.NoError(t, err)
	cart, err := f.carts.AddItem(ctx, "s1", "bruschetta-tomato", 1, "extra basil")
	require.NoError(t, err)

	line, ok := cart.Line("bruschetta-tomato")
	require.True(t, ok)
	assert.Equal(t, 3, line.Quantity)
	assert.Equal(t, "no onions", line.SpecialInstructions)
	assert.True(t, decimal.RequireFromString("86.70").Equal(cart.TotalPrice()))

	reloaded, err := f.carts.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 3, reloaded.TotalItems())
}

func TestCartService_AddItemRejectsBadInput(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.carts.AddItem(ctx, "s1", "pizza", 1, "")
	assert.ErrorIs(t, err, ErrUnknownMenuItem)

	_, err = f.carts.AddItem(ctx, "s1", "tiramisu", 0, "")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "quantity")

	cart, err := f.carts.Get(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestCartService_UpdateRemoveClear(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.carts.AddItem(ctx, "s1", "tiramisu", 1, "")
	require.NoError(t, err)
	_, err = f.carts.AddItem(ctx, "s1", "coffee-espresso", 2, "")
	require.NoError(t, err)

	cart, err := f.carts.UpdateQuantity(ctx, "s1", "coffee-espresso", 5)
	require.NoError(t, err)
	assert.Equal(t, 6, cart.TotalItems())

	cart, err = f.carts.UpdateQuantity(ctx, "s1", "coffee-espresso", 0)
	require.NoError(t, err)
	_, ok := cart.Line("coffee-espresso")
	assert.False(t, ok)

	cart, err = f.carts.RemoveItem(ctx, "s1", "tiramisu")
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())

	_, err = f.carts.AddItem(ctx, "s1", "tiramisu", 1, "")
	require.NoError(t, err)
	require.NoError(t, f.carts.Clear(ctx, "s1"))
	cart, err = f.carts.Get(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestCartService_SessionsAreIsolated(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.carts.AddItem(ctx, "s1", "tiramisu", 1, "")
	require.NoError(t, err)

	other, err := f.carts.Get(ctx, "s2")
	require.NoError(t, err)
	assert.True(t, other.IsEmpty())
}

func TestCartService_Deduct(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	cart, err := f.carts.AddItem(ctx, "s1", "tiramisu", 2, "")
	require.NoError(t, err)
	snapshot := cart.Lines()

	_, err = f.carts.AddItem(ctx, "s1", "tiramisu", 1, "")
	require.NoError(t, err)
	_, err = f.carts.AddItem(ctx, "s1", "coffee-espresso", 2, "")
	require.NoError(t, err)

	require.NoError(t, f.carts.Deduct(ctx, "s1", snapshot))
	cart, err = f.carts.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 3, cart.TotalItems())

	require.NoError(t, f.carts.Deduct(ctx, "s1", cart.Lines()))
	cart, err = f.carts.Get(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}
