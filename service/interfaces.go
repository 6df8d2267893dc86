package service

import (
	"context"

	"bistro-api/events"
	"bistro-api/models"
)

type CartStore interface {
	Load(ctx context.Context, sessionID string) ([]models.CartLine, error)
	Save(ctx context.Context, sessionID string, lines []models.CartLine) error
	Delete(ctx context.Context, sessionID string) error
}

type MenuCatalog interface {
	Item(id string) (models.MenuItem, bool)
}

// OrderRepository persists orders. RecordOrderStatus only applies when the
// stored status still equals from, and reports store.ErrStatusConflict
// otherwise.
type OrderRepository interface {
	SaveOrder(ctx context.Context, order *models.Order, actor, note string) error
	RecordOrderStatus(ctx context.Context, id string, from, to models.OrderStatus, actor, note string) error
	GetOrder(ctx context.Context, id string) (models.Order, error)
	ListOrders(ctx context.Context) ([]models.Order, error)
	OrderHistory(ctx context.Context, id string) ([]models.OrderStatusHistory, error)
}

type ReservationRepository interface {
	SaveReservation(ctx context.Context, res *models.Reservation, actor, note string) error
	RecordReservationStatus(ctx context.Context, id string, from, to models.ReservationStatus, actor, note string) error
	GetReservation(ctx context.Context, id string) (models.Reservation, error)
	ListReservations(ctx context.Context) ([]models.Reservation, error)
	ReservationHistory(ctx context.Context, id string) ([]models.ReservationStatusHistory, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, e events.Event) error
}

// PaymentProcessor charges the customer for a checkout. A declined payment is
// a result, not an error; errors mean the processor could not be reached.
type PaymentProcessor interface {
	Charge(ctx context.Context, req PaymentRequest) (PaymentResult, error)
}

// ReservationBackend forwards an accepted reservation request to whatever
// books tables. A non-nil error rejects the request.
type ReservationBackend interface {
	Submit(ctx context.Context, res models.Reservation) error
}
