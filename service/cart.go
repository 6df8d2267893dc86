package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"bistro-api/metrics"
	"bistro-api/models"
	"bistro-api/store"
)

// CartService loads a session's cart, applies one operation and saves it
// back. Operations on carts are serialised so two requests from the same
// visitor cannot interleave their load and save.
type CartService struct {
	carts   CartStore
	catalog MenuCatalog
	log     *slog.Logger
	mu      sync.Mutex
}

func NewCartService(carts CartStore, catalog MenuCatalog, log *slog.Logger) *CartService {
	return &CartService{carts: carts, catalog: catalog, log: log}
}

func (s *CartService) Get(ctx context.Context, sessionID string) (*store.Cart, error) {
	lines, err := s.carts.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return store.NewCart(lines...), nil
}

// AddItem resolves itemID against the catalog and merges it into the cart.
func (s *CartService) AddItem(ctx context.Context, sessionID, itemID string, quantity int, instructions string) (*store.Cart, error) {
	if quantity <= 0 {
		return nil, fieldError("quantity", "must be at least 1")
	}
	item, ok := s.catalog.Item(itemID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMenuItem, itemID)
	}
	return s.mutate(ctx, sessionID, "add", func(c *store.Cart) {
		c.AddItem(item, quantity, instructions)
	})
}

func (s *CartService) RemoveItem(ctx context.Context, sessionID, itemID string) (*store.Cart, error) {
	return s.mutate(ctx, sessionID, "remove", func(c *store.Cart) {
		c.RemoveItem(itemID)
	})
}

// UpdateQuantity sets an absolute quantity; zero or less removes the line.
func (s *CartService) UpdateQuantity(ctx context.Context, sessionID, itemID string, quantity int) (*store.Cart, error) {
	return s.mutate(ctx, sessionID, "update", func(c *store.Cart) {
		c.UpdateQuantity(itemID, quantity)
	})
}

func (s *CartService) Clear(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	metrics.CartOperations.WithLabelValues("clear").Inc()
	if err := s.carts.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}

// Deduct takes the quantities in lines out of the cart, keeping whatever was
// added after they were read.
func (s *CartService) Deduct(ctx context.Context, sessionID string, lines []models.CartLine) error {
	_, err := s.mutate(ctx, sessionID, "checkout", func(c *store.Cart) {
		for _, l := range lines {
			if cur, ok := c.Line(l.ID); ok {
				c.UpdateQuantity(l.ID, cur.Quantity-l.Quantity)
			}
		}
	})
	return err
}

func (s *CartService) mutate(ctx context.Context, sessionID, op string, fn func(*store.Cart)) (*store.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	fn(cart)
	if err := s.carts.Save(ctx, sessionID, cart.Lines()); err != nil {
		return nil, err
	}
	metrics.CartOperations.WithLabelValues(op).Inc()
	s.log.DebugContext(ctx, "cart updated", "session_id", sessionID, "op", op, "items", cart.TotalItems())
	return cart, nil
}
