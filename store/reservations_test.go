package store

import (
	"testing"

	"bistro-api/models"
	"bistro-api/statemachine"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReservation(id, date string) models.Reservation {
	return models.Reservation{
		ID:           id,
		CustomerName: "Bruno",
		Email:        "bruno@example.com",
		Phone:        "(11) 3456-7890",
		Date:         date,
		Time:         "19:30",
		PartySize:    4,
		Status:       models.ReservationPending,
	}
}

func TestReservations_ByDateSkipsCancelled(t *testing.T) {
	s := NewReservations()
	require.NoError(t, s.Add(sampleReservation("r1", "2025-03-10")))
	require.NoError(t, s.Add(sampleReservation("r2", "2025-03-10")))
	require.NoError(t, s.Add(sampleReservation("r3", "2025-03-11")))

	_, err := s.UpdateStatus("r1", models.ReservationCancelled, statemachine.ActorOperator)
	require.NoError(t, err)

	got := s.ByDate("2025-03-10")
	require.Len(t, got, 1)
	assert.Equal(t, "r2", got[0].ID)
	assert.Empty(t, s.ByDate("2025-03-12"))
}

func TestReservations_ByDateKeepsInsertionOrder(t *testing.T) {
	s := NewReservations()
	late := sampleReservation("late", "2025-03-10")
	late.Time = "21:00"
	early := sampleReservation("early", "2025-03-10")
	early.Time = "12:00"
	require.NoError(t, s.Add(late))
	require.NoError(t, s.Add(early))

	got := s.ByDate("2025-03-10")
	require.Len(t, got, 2)
	assert.Equal(t, "late", got[0].ID)
}

func TestReservations_Lifecycle(t *testing.T) {
	s := NewReservations()
	require.NoError(t, s.Add(sampleReservation("r1", "2025-03-10")))

	_, err := s.UpdateStatus("r1", models.ReservationCompleted, statemachine.ActorOperator)
	assert.Error(t, err, "must be confirmed first")

	_, err = s.UpdateStatus("r1", models.ReservationConfirmed, statemachine.ActorOperator)
	require.NoError(t, err)
	_, err = s.UpdateStatus("r1", models.ReservationCancelled, statemachine.ActorCustomer)
	assert.Error(t, err, "customers only cancel pending reservations")

	from, err := s.UpdateStatus("r1", models.ReservationCompleted, statemachine.ActorOperator)
	require.NoError(t, err)
	assert.Equal(t, models.ReservationConfirmed, from)

	_, err = s.UpdateStatus("ghost", models.ReservationConfirmed, statemachine.ActorOperator)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.Add(sampleReservation("r1", "2025-03-10")), ErrDuplicateID)
}

func TestReservations_ListAndSummary(t *testing.T) {
	s := NewReservations()
	require.NoError(t, s.Add(sampleReservation("r1", "2025-03-10")))
	require.NoError(t, s.Add(sampleReservation("r2", "2025-03-11")))
	_, err := s.ForceStatus("r2", models.ReservationCancelled)
	require.NoError(t, err)

	assert.Len(t, s.List("", ""), 2)
	assert.Len(t, s.List(models.ReservationCancelled, ""), 1)
	assert.Len(t, s.List("", "2025-03-11"), 1)
	assert.Empty(t, s.List(models.ReservationPending, "2025-03-11"))

	sum := s.Summary()
	assert.Equal(t, 2, sum.Total)
	assert.Equal(t, 1, sum.ByStatus[models.ReservationPending])
	assert.Equal(t, 4, sum.Guests)
}

func TestReservations_RevertStatusAndSync(t *testing.T) {
	s := NewReservations()
	require.NoError(t, s.Add(sampleReservation("r1", "2025-03-10")))
	_, err := s.UpdateStatus("r1", models.ReservationConfirmed, statemachine.ActorOperator)
	require.NoError(t, err)

	assert.False(t, s.RevertStatus("r1", models.ReservationCancelled, models.ReservationPending))
	assert.True(t, s.RevertStatus("r1", models.ReservationConfirmed, models.ReservationPending))
	got, _ := s.Get("r1")
	assert.Equal(t, models.ReservationPending, got.Status)

	fresh := sampleReservation("r1", "2025-03-10")
	fresh.Status = models.ReservationCompleted
	s.Sync(fresh)
	got, _ = s.Get("r1")
	assert.Equal(t, models.ReservationCompleted, got.Status)

	s.Sync(sampleReservation("r9", "2025-03-12"))
	assert.Equal(t, 2, s.Len())
}
