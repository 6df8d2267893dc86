package statemachine

import "bistro-api/models"

// Reservations: pending -> confirmed -> completed, with pending -> cancelled.
var Reservations = newMachine("reservation", models.ReservationStatuses, []Transition[models.ReservationStatus]{
	{From: models.ReservationPending, To: models.ReservationConfirmed, Actor: ActorOperator},
	{From: models.ReservationPending, To: models.ReservationCancelled, Actor: ActorOperator},
	{From: models.ReservationPending, To: models.ReservationCancelled, Actor: ActorCustomer},
	{From: models.ReservationConfirmed, To: models.ReservationCompleted, Actor: ActorOperator},
})

func CanTransitionReservation(from, to models.ReservationStatus, actor Actor) error {
	return Reservations.CanTransition(from, to, actor)
}
