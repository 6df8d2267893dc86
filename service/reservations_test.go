package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bistro-api/events"
	"bistro-api/logger"
	"bistro-api/models"
	"bistro-api/statemachine"
	"bistro-api/store"
)

func reservation(id, date string, status models.ReservationStatus) models.Reservation {
	return models.Reservation{
		ID:           id,
		SessionID:    "s1",
		CustomerName: "Ana",
		Email:        "ana@example.com",
		Phone:        "(11) 91234-5678",
		Date:         date,
		Time:         "19:00",
		PartySize:    2,
		Status:       status,
	}
}

func TestReservationBook_Lifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.book.Add(ctx, reservation("r1", "2025-03-10", models.ReservationPending), statemachine.ActorCustomer, ""))

	res, from, err := f.book.Transition(ctx, "r1", models.ReservationConfirmed, statemachine.ActorOperator, "table 5")
	require.NoError(t, err)
	assert.Equal(t, models.ReservationPending, from)
	assert.Equal(t, models.ReservationConfirmed, res.Status)

	_, _, err = f.book.Transition(ctx, "r1", models.ReservationPending, statemachine.ActorOperator, "")
	var terr *statemachine.TransitionError
	require.ErrorAs(t, err, &terr)

	_, err = f.book.CancelForSession(ctx, "r1", "s1")
	require.ErrorAs(t, err, &terr)

	history, err := f.book.History(ctx, "r1")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "table 5", history[1].Note)
	assert.Equal(t, 1, f.pub.published(events.ReservationStatusChanged))
}

func TestReservationBook_ByDateSkipsCancelled(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.book.Add(ctx, reservation("r1", "2025-03-10", models.ReservationPending), statemachine.ActorCustomer, ""))
	require.NoError(t, f.book.Add(ctx, reservation("r2", "2025-03-10", models.ReservationPending), statemachine.ActorCustomer, ""))
	require.NoError(t, f.book.Add(ctx, reservation("r3", "2025-03-11", models.ReservationPending), statemachine.ActorCustomer, ""))

	_, err := f.book.CancelForSession(ctx, "r1", "s1")
	require.NoError(t, err)

	day := f.book.ByDate("2025-03-10")
	require.Len(t, day, 1)
	assert.Equal(t, "r2", day[0].ID)

	assert.Len(t, f.book.List(models.ReservationCancelled, ""), 1)
	assert.Len(t, f.book.List("", "2025-03-10"), 2)
}

func TestReservationBook_ForceAndHydrate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.book.Add(ctx, reservation("r1", "2025-03-10", models.ReservationCancelled), statemachine.ActorSystem, ""))

	res, _, err := f.book.Force(ctx, "r1", models.ReservationConfirmed, "guest called back")
	require.NoError(t, err)
	assert.Equal(t, models.ReservationConfirmed, res.Status)

	fresh := NewReservationBook(store.NewReservations(), f.repoReservations, f.pub, logger.Discard())
	require.NoError(t, fresh.Hydrate(ctx))
	got, ok := fresh.Get("r1")
	require.True(t, ok)
	assert.Equal(t, models.ReservationConfirmed, got.Status)
}

func TestReservationBook_StaleCopyIsReloaded(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.book.Add(ctx, reservation("r1", "2025-03-10", models.ReservationPending), statemachine.ActorCustomer, ""))

	server := NewReservationBook(store.NewReservations(), f.repoReservations, f.pub, logger.Discard())
	require.NoError(t, server.Hydrate(ctx))

	_, _, err := f.book.Transition(ctx, "r1", models.ReservationConfirmed, statemachine.ActorOperator, "")
	require.NoError(t, err)

	_, err = server.CancelForSession(ctx, "r1", "s1")
	var terr *statemachine.TransitionError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, "confirmed", terr.From)

	res, ok := server.Get("r1")
	require.True(t, ok)
	assert.Equal(t, models.ReservationConfirmed, res.Status)

	history, err := server.History(ctx, "r1")
	require.NoError(t, err)
	assert.Len(t, history, 2)
}

func TestBuildDashboard(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	done := pendingOrder("o1", "s1")
	done.Status = models.OrderCompleted
	done.Total = decimalOf("42.50")
	require.NoError(t, f.desk.Place(ctx, done, statemachine.ActorSystem, ""))
	require.NoError(t, f.desk.Place(ctx, pendingOrder("o2", "s1"), statemachine.ActorCustomer, ""))
	require.NoError(t, f.book.Add(ctx, reservation("r1", "2025-03-10", models.ReservationPending), statemachine.ActorCustomer, ""))

	stats := BuildDashboard(f.desk.Summary(), f.book.Summary())
	assert.Equal(t, 2, stats.TotalOrders)
	assert.Equal(t, 1, stats.PendingOrders)
	assert.Equal(t, 1, stats.TotalReservations)
	assert.Equal(t, 1, stats.PendingReservations)
	assert.Equal(t, 2, stats.ExpectedGuests)
	assert.Equal(t, "42.50", stats.Revenue.StringFixed(2))
}
