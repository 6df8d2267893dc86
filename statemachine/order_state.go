package statemachine

import "bistro-api/models"

// Orders is the authoritative order lifecycle:
// pending -> preparing -> ready -> completed, with pending -> cancelled.
var Orders = newMachine("order", models.OrderStatuses, []Transition[models.OrderStatus]{
	// Kitchen starts or rejects a new order
	{From: models.OrderPending, To: models.OrderPreparing, Actor: ActorOperator},
	{From: models.OrderPending, To: models.OrderCancelled, Actor: ActorOperator},
	// Customer may withdraw an order nobody started yet
	{From: models.OrderPending, To: models.OrderCancelled, Actor: ActorCustomer},
	{From: models.OrderPreparing, To: models.OrderReady, Actor: ActorOperator},
	{From: models.OrderReady, To: models.OrderCompleted, Actor: ActorOperator},
})

// CanTransitionOrder checks an order status change for actor.
func CanTransitionOrder(from, to models.OrderStatus, actor Actor) error {
	return Orders.CanTransition(from, to, actor)
}
