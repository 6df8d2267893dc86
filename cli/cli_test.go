package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bistro-api/config"
	"bistro-api/logger"
	"bistro-api/models"
	"bistro-api/statemachine"
)

func setupEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_PATH", filepath.Join(t.TempDir(), "bistro.db"))
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("KAFKA_BROKER", "")
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func seed(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	app, err := NewApp(ctx, config.Load(), logger.Discard())
	require.NoError(t, err)
	defer app.Close()

	order := models.Order{
		ID:        "o1",
		Customer:  models.CustomerInfo{Name: "Ana"},
		Total:     decimal.RequireFromString("24.90"),
		Status:    models.OrderPending,
		OrderType: models.OrderDineIn,
	}
	require.NoError(t, app.Orders.Place(ctx, order, statemachine.ActorCustomer, "seed"))

	res := models.Reservation{
		ID: "r1", CustomerName: "Bruno", Phone: "(11) 91234-5678",
		Date: "2025-03-10", Time: "20:00", PartySize: 3, Status: models.ReservationPending,
	}
	require.NoError(t, app.Reservations.Add(ctx, res, statemachine.ActorCustomer, "seed"))
}

func TestMenuCmd(t *testing.T) {
	out, err := run(t, "menu", "--category", "desserts")
	require.NoError(t, err)
	assert.Contains(t, out, "tiramisu")
	assert.NotContains(t, out, "beef-wellington")
}

func TestOrdersCmds(t *testing.T) {
	setupEnv(t)
	seed(t)

	out, err := run(t, "orders", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "o1")
	assert.Contains(t, out, "24.90")

	out, err = run(t, "orders", "advance", "o1", "preparing", "--note", "fired")
	require.NoError(t, err)
	assert.Contains(t, out, "Order o1: pending -> preparing")

	// the change survives into the next process
	out, err = run(t, "orders", "list", "--status", "preparing")
	require.NoError(t, err)
	assert.Contains(t, out, "o1")

	_, err = run(t, "orders", "advance", "o1", "completed")
	var terr *statemachine.TransitionError
	assert.ErrorAs(t, err, &terr)

	_, err = run(t, "orders", "list", "--status", "burnt")
	assert.ErrorIs(t, err, statemachine.ErrUnknownStatus)
}

func TestRunningServerSeesCLIAdvance(t *testing.T) {
	setupEnv(t)
	seed(t)
	ctx := context.Background()

	server, err := NewApp(ctx, config.Load(), logger.Discard())
	require.NoError(t, err)
	defer server.Close()

	_, err = run(t, "orders", "advance", "o1", "preparing")
	require.NoError(t, err)

	_, _, err = server.Orders.Transition(ctx, "o1", models.OrderCancelled, statemachine.ActorOperator, "")
	var terr *statemachine.TransitionError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, "preparing", terr.From)

	order, ok := server.Orders.Get("o1")
	require.True(t, ok)
	assert.Equal(t, models.OrderPreparing, order.Status)

	_, from, err := server.Orders.Transition(ctx, "o1", models.OrderReady, statemachine.ActorOperator, "")
	require.NoError(t, err)
	assert.Equal(t, models.OrderPreparing, from)

	history, err := server.Orders.History(ctx, "o1")
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, models.OrderPreparing, history[2].FromStatus)
}

func TestReservationsCmds(t *testing.T) {
	setupEnv(t)
	seed(t)

	out, err := run(t, "reservations", "list", "--date", "2025-03-10")
	require.NoError(t, err)
	assert.Contains(t, out, "Bruno")

	out, err = run(t, "reservations", "list", "--date", "2025-03-11")
	require.NoError(t, err)
	assert.Contains(t, out, "No reservations.")

	out, err = run(t, "reservations", "advance", "r1", "confirmed")
	require.NoError(t, err)
	assert.Contains(t, out, "Reservation r1: pending -> confirmed")
}

func TestDashboardCmd(t *testing.T) {
	setupEnv(t)
	seed(t)

	out, err := run(t, "dashboard")
	require.NoError(t, err)
	assert.Regexp(t, `Total orders\s+1`, out)
	assert.Regexp(t, `Pending reservations\s+1`, out)
	assert.Regexp(t, `Expected guests\s+3`, out)
}

func TestEmptyDatabase(t *testing.T) {
	setupEnv(t)

	out, err := run(t, "orders", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No orders.")
}
