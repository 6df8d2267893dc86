package handlers

import (
	"log/slog"

	"bistro-api/catalog"
	"bistro-api/service"
)

// Handler holds everything the HTTP layer needs. The containers live inside
// the services; handlers never touch storage directly.
type Handler struct {
	Catalog      *catalog.Catalog
	Carts        *service.CartService
	Checkout     *service.Checkout
	Orders       *service.OrderDesk
	Reservations *service.ReservationBook
	Booking      *service.Booking
	PublicURL    string
	Log          *slog.Logger
}
