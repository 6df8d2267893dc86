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

// ReservationBook is the reservation counterpart of OrderDesk.
type ReservationBook struct {
	reservations *store.Reservations
	repo         ReservationRepository
	events       EventPublisher
	log          *slog.Logger
	now          func() time.Time
}

func NewReservationBook(reservations *store.Reservations, repo ReservationRepository, pub EventPublisher, log *slog.Logger) *ReservationBook {
	return &ReservationBook{reservations: reservations, repo: repo, events: pub, log: log, now: time.Now}
}

func (b *ReservationBook) Hydrate(ctx context.Context) error {
	list, err := b.repo.ListReservations(ctx)
	if err != nil {
		return err
	}
	for _, r := range list {
		if err := b.reservations.Add(r); err != nil {
			return fmt.Errorf("hydrate reservations: %w", err)
		}
	}
	b.log.InfoContext(ctx, "reservations loaded", "count", len(list))
	return nil
}

func (b *ReservationBook) Add(ctx context.Context, res models.Reservation, actor statemachine.Actor, note string) error {
	if err := b.repo.SaveReservation(ctx, &res, string(actor), note); err != nil {
		return err
	}
	if err := b.reservations.Add(res); err != nil {
		return err
	}
	metrics.ReservationsRequested.Inc()
	b.publish(ctx, events.Event{
		Type:       events.ReservationRequested,
		Key:        res.ID,
		Status:     string(res.Status),
		Actor:      string(actor),
		OccurredAt: b.now(),
		Payload:    res,
	})
	b.log.InfoContext(ctx, "reservation requested", "reservation_id", res.ID, "date", res.Date, "time", res.Time, "party_size", res.PartySize)
	return nil
}

func (b *ReservationBook) Transition(ctx context.Context, id string, to models.ReservationStatus, actor statemachine.Actor, note string) (models.Reservation, models.ReservationStatus, error) {
	res, from, err := b.retry(ctx, id, func() (models.Reservation, models.ReservationStatus, error) {
		from, err := b.reservations.UpdateStatus(id, to, actor)
		if err != nil {
			return models.Reservation{}, from, err
		}
		res, err := b.commit(ctx, id, from, to, actor, note)
		return res, from, err
	})
	metrics.ReservationTransitions.WithLabelValues(string(to), metrics.Result(err)).Inc()
	return res, from, err
}

func (b *ReservationBook) Force(ctx context.Context, id string, to models.ReservationStatus, reason string) (models.Reservation, models.ReservationStatus, error) {
	return b.retry(ctx, id, func() (models.Reservation, models.ReservationStatus, error) {
		from, err := b.reservations.ForceStatus(id, to)
		if err != nil {
			return models.Reservation{}, from, err
		}
		res, err := b.commit(ctx, id, from, to, statemachine.ActorOperator, "[ADMIN OVERRIDE] "+reason)
		return res, from, err
	})
}

func (b *ReservationBook) CancelForSession(ctx context.Context, id, sessionID string) (models.Reservation, error) {
	res, ok := b.reservations.Get(id)
	if !ok {
		return models.Reservation{}, fmt.Errorf("reservation %s: %w", id, store.ErrNotFound)
	}
	if res.SessionID == "" || res.SessionID != sessionID {
		return models.Reservation{}, fmt.Errorf("reservation %s: %w", id, ErrNotOwner)
	}
	res, _, err := b.Transition(ctx, id, models.ReservationCancelled, statemachine.ActorCustomer, "Reservation cancelled by customer")
	return res, err
}

func (b *ReservationBook) retry(ctx context.Context, id string, op func() (models.Reservation, models.ReservationStatus, error)) (models.Reservation, models.ReservationStatus, error) {
	res, from, err := op()
	if !errors.Is(err, store.ErrStatusConflict) && !errors.Is(err, store.ErrNotFound) {
		return res, from, err
	}
	fresh, rerr := b.repo.GetReservation(ctx, id)
	if rerr != nil {
		if errors.Is(rerr, store.ErrNotFound) {
			return models.Reservation{}, from, err
		}
		return models.Reservation{}, from, rerr
	}
	b.reservations.Sync(fresh)
	b.log.InfoContext(ctx, "reservation reloaded", "reservation_id", id, "status", fresh.Status)
	return op()
}

func (b *ReservationBook) commit(ctx context.Context, id string, from, to models.ReservationStatus, actor statemachine.Actor, note string) (models.Reservation, error) {
	if err := b.repo.RecordReservationStatus(ctx, id, from, to, string(actor), note); err != nil {
		if !b.reservations.RevertStatus(id, to, from) {
			b.log.WarnContext(ctx, "reservation status moved before rollback", "reservation_id", id, "from", from, "to", to)
		}
		return models.Reservation{}, err
	}
	res, _ := b.reservations.Get(id)
	b.publish(ctx, events.Event{
		Type:       events.ReservationStatusChanged,
		Key:        id,
		FromStatus: string(from),
		Status:     string(to),
		Actor:      string(actor),
		OccurredAt: b.now(),
	})
	b.log.InfoContext(ctx, "reservation status changed", "reservation_id", id, "from", from, "to", to, "actor", actor)
	return res, nil
}

func (b *ReservationBook) publish(ctx context.Context, e events.Event) {
	if err := b.events.Publish(ctx, e); err != nil {
		b.log.WarnContext(ctx, "publish event", "type", e.Type, "key", e.Key, "error", err)
	}
}

func (b *ReservationBook) Get(id string) (models.Reservation, bool) { return b.reservations.Get(id) }

// ByDate lists the non-cancelled reservations on date in booking order.
func (b *ReservationBook) ByDate(date string) []models.Reservation { return b.reservations.ByDate(date) }

func (b *ReservationBook) List(status models.ReservationStatus, date string) []models.Reservation {
	return b.reservations.List(status, date)
}

func (b *ReservationBook) Len() int { return b.reservations.Len() }

func (b *ReservationBook) Summary() store.ReservationSummary { return b.reservations.Summary() }

func (b *ReservationBook) History(ctx context.Context, id string) ([]models.ReservationStatusHistory, error) {
	return b.repo.ReservationHistory(ctx, id)
}
