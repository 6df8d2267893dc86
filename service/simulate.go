package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"bistro-api/models"
)

// SimulatedPayments approves every charge after Delay.
type SimulatedPayments struct {
	Delay time.Duration
}

func (p SimulatedPayments) Charge(ctx context.Context, req PaymentRequest) (PaymentResult, error) {
	if err := wait(ctx, p.Delay); err != nil {
		return PaymentResult{}, err
	}
	return PaymentResult{Approved: true, TransactionID: "sim-" + uuid.NewString()[:8]}, nil
}

// SimulatedBackend accepts every reservation after Delay.
type SimulatedBackend struct {
	Delay time.Duration
}

func (b SimulatedBackend) Submit(ctx context.Context, _ models.Reservation) error {
	return wait(ctx, b.Delay)
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
