package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"bistro-api/catalog"
	"bistro-api/config"
	"bistro-api/events"
	"bistro-api/handlers"
	"bistro-api/repository"
	"bistro-api/service"
	"bistro-api/session"
	"bistro-api/store"
)

// App owns the three containers and everything wired around them. Each
// process builds exactly one.
type App struct {
	Config       config.Config
	Log          *slog.Logger
	DB           *gorm.DB
	Catalog      *catalog.Catalog
	Carts        *service.CartService
	Orders       *service.OrderDesk
	Reservations *service.ReservationBook
	Checkout     *service.Checkout
	Booking      *service.Booking

	closers []func() error
}

// NewApp connects storage and the event stream, then loads persisted orders
// and reservations into their containers.
func NewApp(ctx context.Context, cfg config.Config, log *slog.Logger) (*App, error) {
	a := &App{Config: cfg, Log: log}

	cat, err := catalog.Load()
	if err != nil {
		return nil, err
	}
	a.Catalog = cat

	db, err := config.InitDB(cfg.DBPath)
	if err != nil {
		return nil, err
	}
	a.DB = db
	if sqlDB, err := db.DB(); err == nil {
		a.closers = append(a.closers, sqlDB.Close)
	}

	carts, err := a.cartStore(ctx)
	if err != nil {
		a.Close()
		return nil, err
	}

	var pub service.EventPublisher = events.LogPublisher{Log: log}
	if cfg.KafkaBroker != "" {
		kp := events.NewKafkaPublisher(events.NewKafkaWriter(cfg.KafkaBroker, cfg.KafkaTopic))
		a.closers = append(a.closers, kp.Close)
		pub = kp
		log.Info("publishing events to kafka", "broker", cfg.KafkaBroker, "topic", cfg.KafkaTopic)
	}

	a.Carts = service.NewCartService(carts, cat, log)
	a.Orders = service.NewOrderDesk(store.NewOrders(), repository.NewOrderRepository(db), pub, log)
	a.Reservations = service.NewReservationBook(store.NewReservations(), repository.NewReservationRepository(db), pub, log)
	a.Checkout = service.NewCheckout(a.Carts, a.Orders, service.SimulatedPayments{Delay: cfg.CheckoutDelay}, log)
	a.Booking = service.NewBooking(a.Reservations, service.SimulatedBackend{Delay: cfg.ReservationDelay}, service.DefaultCalendar(), log)
	a.Booking.EnforceCalendar = cfg.EnforceCalendar

	if err := a.Orders.Hydrate(ctx); err != nil {
		a.Close()
		return nil, err
	}
	if err := a.Reservations.Hydrate(ctx); err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}

func (a *App) cartStore(ctx context.Context) (service.CartStore, error) {
	if a.Config.RedisAddr == "" {
		a.Log.Info("carts kept in memory", "reason", "REDIS_ADDR not set")
		return session.NewMemoryStore(), nil
	}
	client := redis.NewClient(&redis.Options{Addr: a.Config.RedisAddr})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis at %s: %w", a.Config.RedisAddr, err)
	}
	a.closers = append(a.closers, client.Close)
	a.Log.Info("carts stored in redis", "addr", a.Config.RedisAddr, "ttl", a.Config.CartTTL)
	return session.NewRedisStore(client, a.Config.CartTTL), nil
}

func (a *App) Handler() *handlers.Handler {
	return &handlers.Handler{
		Catalog:      a.Catalog,
		Carts:        a.Carts,
		Checkout:     a.Checkout,
		Orders:       a.Orders,
		Reservations: a.Reservations,
		Booking:      a.Booking,
		PublicURL:    a.Config.PublicURL,
		Log:          a.Log,
	}
}

// Close releases connections in reverse order of opening.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i]())
	}
	a.closers = nil
	return errors.Join(errs...)
}
