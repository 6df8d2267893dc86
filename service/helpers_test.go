package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bistro-api/catalog"
	"bistro-api/config"
	"bistro-api/events"
	"bistro-api/logger"
	"bistro-api/models"
	"bistro-api/repository"
	"bistro-api/session"
	"bistro-api/store"
)

type mockPublisher struct{ mock.Mock }

func (m *mockPublisher) Publish(ctx context.Context, e events.Event) error {
	return m.Called(ctx, e).Error(0)
}

func (m *mockPublisher) published(eventType string) int {
	n := 0
	for _, call := range m.Calls {
		if call.Method == "Publish" && call.Arguments.Get(1).(events.Event).Type == eventType {
			n++
		}
	}
	return n
}

type mockPayments struct{ mock.Mock }

func (m *mockPayments) Charge(ctx context.Context, req PaymentRequest) (PaymentResult, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(PaymentResult), args.Error(1)
}

type mockBackend struct{ mock.Mock }

func (m *mockBackend) Submit(ctx context.Context, res models.Reservation) error {
	return m.Called(ctx, res).Error(0)
}

var errDiskFull = errors.New("disk full")

// brokenOrderRepo saves orders but cannot record status changes. during runs
// before the write fails.
type brokenOrderRepo struct {
	*repository.OrderRepository
	during func()
}

func (r brokenOrderRepo) RecordOrderStatus(context.Context, string, models.OrderStatus, models.OrderStatus, string, string) error {
	if r.during != nil {
		r.during()
	}
	return errDiskFull
}

type fixture struct {
	repoOrders       *repository.OrderRepository
	repoReservations *repository.ReservationRepository
	pub              *mockPublisher
	carts            *CartService
	desk             *OrderDesk
	book             *ReservationBook
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := config.InitDB(":memory:")
	require.NoError(t, err)
	cat, err := catalog.Load()
	require.NoError(t, err)

	pub := new(mockPublisher)
	pub.On("Publish", mock.Anything, mock.Anything).Return(nil).Maybe()

	log := logger.Discard()
	f := &fixture{
		repoOrders:       repository.NewOrderRepository(db),
		repoReservations: repository.NewReservationRepository(db),
		pub:              pub,
		carts:            NewCartService(session.NewMemoryStore(), cat, log),
	}
	f.desk = NewOrderDesk(store.NewOrders(), f.repoOrders, pub, log)
	f.book = NewReservationBook(store.NewReservations(), f.repoReservations, pub, log)
	return f
}

func pendingOrder(id, sessionID string) models.Order {
	return models.Order{
		ID:        id,
		SessionID: sessionID,
		Items: []models.CartLine{{
			ID:       "tiramisu",
			MenuItem: models.MenuItem{ID: "tiramisu", Name: "Tiramisu", PreparationTime: 5},
			Quantity: 1,
		}},
		Customer:  models.CustomerInfo{Name: "Ana", Email: "ana@example.com", Phone: "(11) 91234-5678"},
		Status:    models.OrderPending,
		OrderType: models.OrderDineIn,
	}
}
