package service

import (
	"github.com/shopspring/decimal"

	"bistro-api/models"
	"bistro-api/store"
)

// DashboardStats is the operator overview.
type DashboardStats struct {
	TotalOrders         int                      `json:"total_orders"`
	PendingOrders       int                      `json:"pending_orders"`
	TotalReservations   int                      `json:"total_reservations"`
	PendingReservations int                      `json:"pending_reservations"`
	ExpectedGuests      int                      `json:"expected_guests"`
	Revenue             decimal.Decimal          `json:"revenue"`
	Orders              store.OrderSummary       `json:"orders"`
	Reservations        store.ReservationSummary `json:"reservations"`
}

func BuildDashboard(orders store.OrderSummary, reservations store.ReservationSummary) DashboardStats {
	return DashboardStats{
		TotalOrders:         orders.Total,
		PendingOrders:       orders.ByStatus[models.OrderPending],
		TotalReservations:   reservations.Total,
		PendingReservations: reservations.ByStatus[models.ReservationPending],
		ExpectedGuests:      reservations.Guests,
		Revenue:             orders.Revenue,
		Orders:              orders,
		Reservations:        reservations,
	}
}
