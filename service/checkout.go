package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"bistro-api/metrics"
	"bistro-api/models"
	"bistro-api/statemachine"
)

// CheckoutRequest is the customer part of an order submission.
type CheckoutRequest struct {
	Name        string           `json:"name" validate:"required,max=100"`
	Email       string           `json:"email" validate:"required,mail"`
	Phone       string           `json:"phone" validate:"required"`
	OrderType   models.OrderType `json:"order_type" validate:"omitempty,oneof=dine-in takeaway"`
	TableNumber *int             `json:"table_number" validate:"omitempty,min=1"`
}

type PaymentRequest struct {
	Reference string
	Amount    decimal.Decimal
	Customer  models.CustomerInfo
}

type PaymentResult struct {
	Approved      bool
	TransactionID string
	Reason        string
}

// Checkout turns a session's cart into a pending order.
type Checkout struct {
	carts    *CartService
	orders   *OrderDesk
	payments PaymentProcessor
	log      *slog.Logger

	newID func() string
	now   func() time.Time
}

func NewCheckout(carts *CartService, orders *OrderDesk, payments PaymentProcessor, log *slog.Logger) *Checkout {
	return &Checkout{
		carts:    carts,
		orders:   orders,
		payments: payments,
		log:      log,
		newID:    uuid.NewString,
		now:      time.Now,
	}
}

// Submit charges the cart total, records the order and clears the cart.
// Nothing is recorded when validation, the charge or persistence fails.
func (c *Checkout) Submit(ctx context.Context, sessionID string, req CheckoutRequest) (models.Order, error) {
	start := time.Now()
	order, err := c.submit(ctx, sessionID, req)
	metrics.CheckoutDuration.WithLabelValues(metrics.Result(err)).Observe(time.Since(start).Seconds())
	return order, err
}

func (c *Checkout) submit(ctx context.Context, sessionID string, req CheckoutRequest) (models.Order, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)
	if err := validateStruct(req); err != nil {
		return models.Order{}, err
	}
	if req.OrderType == "" {
		req.OrderType = models.OrderDineIn
	}
	if req.OrderType != models.OrderDineIn {
		req.TableNumber = nil
	}

	cart, err := c.carts.Get(ctx, sessionID)
	if err != nil {
		return models.Order{}, fmt.Errorf("load cart: %w", err)
	}
	if cart.IsEmpty() {
		return models.Order{}, ErrEmptyCart
	}

	customer := models.CustomerInfo{Name: req.Name, Email: req.Email, Phone: req.Phone}
	id := c.newID()
	result, err := c.payments.Charge(ctx, PaymentRequest{Reference: id, Amount: cart.TotalPrice(), Customer: customer})
	if err != nil {
		return models.Order{}, fmt.Errorf("charge: %w", err)
	}
	if !result.Approved {
		c.log.WarnContext(ctx, "payment declined", "session_id", sessionID, "reason", result.Reason)
		if result.Reason != "" {
			return models.Order{}, fmt.Errorf("%w: %s", ErrPaymentDeclined, result.Reason)
		}
		return models.Order{}, ErrPaymentDeclined
	}

	lines := cart.Lines()
	now := c.now()
	order := models.Order{
		ID:            id,
		SessionID:     sessionID,
		Items:         lines,
		Customer:      customer,
		Total:         cart.TotalPrice(),
		Status:        models.OrderPending,
		OrderType:     req.OrderType,
		TableNumber:   req.TableNumber,
		EstimatedTime: estimatedMinutes(lines),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	note := "Order placed"
	if result.TransactionID != "" {
		note += " (payment " + result.TransactionID + ")"
	}
	// the order exists because the payment cleared, not because of a status move
	if err := c.orders.Place(ctx, order, statemachine.ActorSystem, note); err != nil {
		return models.Order{}, fmt.Errorf("place order: %w", err)
	}

	if err := c.carts.Deduct(ctx, sessionID, lines); err != nil {
		c.log.ErrorContext(ctx, "empty cart after checkout", "session_id", sessionID, "order_id", id, "error", err)
	}
	return order.Clone(), nil
}

// estimatedMinutes is the slowest dish plus five minutes for every other
// distinct line in the order.
func estimatedMinutes(lines []models.CartLine) int {
	if len(lines) == 0 {
		return 0
	}
	longest := 0
	for _, l := range lines {
		longest = max(longest, l.MenuItem.PreparationTime)
	}
	return longest + 5*(len(lines)-1)
}
