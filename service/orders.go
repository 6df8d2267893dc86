package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"bistro-api/events"
	"bistro-api/metrics"
	"bistro-api/models"
	"bistro-api/statemachine"
	"bistro-api/store"
)

// OrderDesk owns the order container and keeps the database and the event
// stream in step with it.
type OrderDesk struct {
	orders *store.Orders
	repo   OrderRepository
	events EventPublisher
	log    *slog.Logger
	now    func() time.Time
}

func NewOrderDesk(orders *store.Orders, repo OrderRepository, pub EventPublisher, log *slog.Logger) *OrderDesk {
	return &OrderDesk{orders: orders, repo: repo, events: pub, log: log, now: time.Now}
}

// Hydrate loads persisted orders into the container, oldest first.
func (d *OrderDesk) Hydrate(ctx context.Context) error {
	orders, err := d.repo.ListOrders(ctx)
	if err != nil {
		return err
	}
	for _, o := range orders {
		if err := d.orders.Add(o); err != nil {
			return fmt.Errorf("hydrate orders: %w", err)
		}
	}
	d.log.InfoContext(ctx, "orders loaded", "count", len(orders))
	return nil
}

// Place persists a new order and appends it to the container.
func (d *OrderDesk) Place(ctx context.Context, order models.Order, actor statemachine.Actor, note string) error {
	if err := d.repo.SaveOrder(ctx, &order, string(actor), note); err != nil {
		return err
	}
	if err := d.orders.Add(order); err != nil {
		return err
	}
	metrics.OrdersPlaced.WithLabelValues(string(order.OrderType)).Inc()
	d.publish(ctx, events.Event{
		Type:       events.OrderPlaced,
		Key:        order.ID,
		Status:     string(order.Status),
		Actor:      string(actor),
		OccurredAt: d.now(),
		Payload:    order,
	})
	d.log.InfoContext(ctx, "order placed", "order_id", order.ID, "total", order.Total.StringFixed(2), "items", len(order.Items))
	return nil
}

// Transition moves an order along its lifecycle. Illegal moves return a
// *statemachine.TransitionError and change nothing. When another process
// changed the order first, the stored row is reloaded and the move checked
// again against it.
func (d *OrderDesk) Transition(ctx context.Context, id string, to models.OrderStatus, actor statemachine.Actor, note string) (models.Order, models.OrderStatus, error) {
	order, from, err := d.retry(ctx, id, func() (models.Order, models.OrderStatus, error) {
		from, err := d.orders.UpdateStatus(id, to, actor)
		if err != nil {
			return models.Order{}, from, err
		}
		order, err := d.commit(ctx, id, from, to, actor, note)
		return order, from, err
	})
	metrics.OrderTransitions.WithLabelValues(string(to), metrics.Result(err)).Inc()
	return order, from, err
}

// Force writes any valid status regardless of the current one. Reserved for
// operators fixing mistakes; the audit trail marks it as an override.
func (d *OrderDesk) Force(ctx context.Context, id string, to models.OrderStatus, reason string) (models.Order, models.OrderStatus, error) {
	return d.retry(ctx, id, func() (models.Order, models.OrderStatus, error) {
		from, err := d.orders.ForceStatus(id, to)
		if err != nil {
			return models.Order{}, from, err
		}
		order, err := d.commit(ctx, id, from, to, statemachine.ActorOperator, "[ADMIN OVERRIDE] "+reason)
		return order, from, err
	})
}

// CancelForSession lets a visitor cancel an order placed from the same session.
func (d *OrderDesk) CancelForSession(ctx context.Context, id, sessionID string) (models.Order, error) {
	order, ok := d.orders.Get(id)
	if !ok {
		return models.Order{}, fmt.Errorf("order %s: %w", id, store.ErrNotFound)
	}
	if order.SessionID == "" || order.SessionID != sessionID {
		return models.Order{}, fmt.Errorf("order %s: %w", id, ErrNotOwner)
	}
	order, _, err := d.Transition(ctx, id, models.OrderCancelled, statemachine.ActorCustomer, "Order cancelled by customer")
	return order, err
}

// retry runs op once more after reloading the order when the container was
// stale: either the database rejected the status write or the order was
// created elsewhere.
func (d *OrderDesk) retry(ctx context.Context, id string, op func() (models.Order, models.OrderStatus, error)) (models.Order, models.OrderStatus, error) {
	order, from, err := op()
	if !errors.Is(err, store.ErrStatusConflict) && !errors.Is(err, store.ErrNotFound) {
		return order, from, err
	}
	if rerr := d.resync(ctx, id); rerr != nil {
		if errors.Is(rerr, store.ErrNotFound) {
			return models.Order{}, from, err
		}
		return models.Order{}, from, rerr
	}
	return op()
}

func (d *OrderDesk) resync(ctx context.Context, id string) error {
	fresh, err := d.repo.GetOrder(ctx, id)
	if err != nil {
		return err
	}
	d.orders.Sync(fresh)
	d.log.InfoContext(ctx, "order reloaded", "order_id", id, "status", fresh.Status)
	return nil
}

func (d *OrderDesk) commit(ctx context.Context, id string, from, to models.OrderStatus, actor statemachine.Actor, note string) (models.Order, error) {
	if err := d.repo.RecordOrderStatus(ctx, id, from, to, string(actor), note); err != nil {
		// undo only our own write; a newer status stays
		if !d.orders.RevertStatus(id, to, from) {
			d.log.WarnContext(ctx, "order status moved before rollback", "order_id", id, "from", from, "to", to)
		}
		return models.Order{}, err
	}
	order, _ := d.orders.Get(id)
	d.publish(ctx, events.Event{
		Type:       events.OrderStatusChanged,
		Key:        id,
		FromStatus: string(from),
		Status:     string(to),
		Actor:      string(actor),
		OccurredAt: d.now(),
	})
	d.log.InfoContext(ctx, "order status changed", "order_id", id, "from", from, "to", to, "actor", actor)
	return order, nil
}

func (d *OrderDesk) publish(ctx context.Context, e events.Event) {
	if err := d.events.Publish(ctx, e); err != nil {
		d.log.WarnContext(ctx, "publish event", "type", e.Type, "key", e.Key, "error", err)
	}
}

func (d *OrderDesk) Get(id string) (models.Order, bool) { return d.orders.Get(id) }

func (d *OrderDesk) List(status models.OrderStatus) []models.Order { return d.orders.List(status) }

func (d *OrderDesk) Summary() store.OrderSummary { return d.orders.Summary() }

func (d *OrderDesk) History(ctx context.Context, id string) ([]models.OrderStatusHistory, error) {
	return d.repo.OrderHistory(ctx, id)
}
