package statemachine

import (
	"errors"
	"testing"

	"bistro-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderTransitions(t *testing.T) {
	tests := []struct {
		name  string
		from  models.OrderStatus
		to    models.OrderStatus
		actor Actor
		ok    bool
	}{
		{"start preparing", models.OrderPending, models.OrderPreparing, ActorOperator, true},
		{"operator cancels pending", models.OrderPending, models.OrderCancelled, ActorOperator, true},
		{"customer cancels pending", models.OrderPending, models.OrderCancelled, ActorCustomer, true},
		{"mark ready", models.OrderPreparing, models.OrderReady, ActorOperator, true},
		{"complete", models.OrderReady, models.OrderCompleted, ActorOperator, true},
		{"customer cannot start kitchen", models.OrderPending, models.OrderPreparing, ActorCustomer, false},
		{"no cancel once preparing", models.OrderPreparing, models.OrderCancelled, ActorOperator, false},
		{"no backward move", models.OrderCompleted, models.OrderPreparing, ActorOperator, false},
		{"no skipping", models.OrderPending, models.OrderReady, ActorOperator, false},
		{"cancelled is terminal", models.OrderCancelled, models.OrderPending, ActorOperator, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := CanTransitionOrder(tc.from, tc.to, tc.actor)
			if tc.ok {
				assert.NoError(t, err)
				return
			}
			var terr *TransitionError
			require.ErrorAs(t, err, &terr)
			assert.Equal(t, string(tc.from), terr.From)
			assert.Equal(t, string(tc.to), terr.To)
		})
	}
}

func TestReservationTransitions(t *testing.T) {
	assert.NoError(t, CanTransitionReservation(models.ReservationPending, models.ReservationConfirmed, ActorOperator))
	assert.NoError(t, CanTransitionReservation(models.ReservationConfirmed, models.ReservationCompleted, ActorOperator))
	assert.NoError(t, CanTransitionReservation(models.ReservationPending, models.ReservationCancelled, ActorCustomer))
	assert.Error(t, CanTransitionReservation(models.ReservationConfirmed, models.ReservationCancelled, ActorCustomer))
	assert.Error(t, CanTransitionReservation(models.ReservationCompleted, models.ReservationConfirmed, ActorOperator))
}

func TestUnknownStatus(t *testing.T) {
	err := CanTransitionOrder(models.OrderPending, models.OrderStatus("burnt"), ActorOperator)
	assert.True(t, errors.Is(err, ErrUnknownStatus))
	assert.False(t, Orders.IsValid("burnt"))
	assert.True(t, Reservations.IsValid(models.ReservationConfirmed))
}

func TestValidTransitionsFromAndTerminals(t *testing.T) {
	assert.Equal(t,
		[]models.OrderStatus{models.OrderPreparing, models.OrderCancelled},
		Orders.ValidTransitionsFrom(models.OrderPending))
	assert.Empty(t, Orders.ValidTransitionsFrom(models.OrderCompleted))
	assert.ElementsMatch(t,
		[]models.OrderStatus{models.OrderCompleted, models.OrderCancelled},
		Orders.TerminalStates())
	assert.ElementsMatch(t,
		[]models.ReservationStatus{models.ReservationCompleted, models.ReservationCancelled},
		Reservations.TerminalStates())
}

func TestTransitionErrorMessage(t *testing.T) {
	err := CanTransitionOrder(models.OrderCompleted, models.OrderPreparing, ActorOperator)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "none (terminal state)")

	err = CanTransitionOrder(models.OrderPending, models.OrderCompleted, ActorOperator)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "preparing, cancelled")
}
