package store

import (
	"fmt"
	"sync"

	"bistro-api/models"
	"bistro-api/statemachine"

	"github.com/shopspring/decimal"
)

// Orders holds submitted orders in submission order. Orders are never
// removed; only their status changes.
type Orders struct {
	mu    sync.RWMutex
	items []models.Order
	index map[string]int
}

func NewOrders() *Orders {
	return &Orders{index: make(map[string]int)}
}

// Add appends an order. Ids must be unique for the lifetime of the container.
func (s *Orders) Add(o models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.index[o.ID]; ok {
		return fmt.Errorf("order %s: %w", o.ID, ErrDuplicateID)
	}
	s.index[o.ID] = len(s.items)
	s.items = append(s.items, o.Clone())
	return nil
}

// Get returns the order with id and whether it exists.
func (s *Orders) Get(id string) (models.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.index[id]
	if !ok {
		return models.Order{}, false
	}
	return s.items[i].Clone(), true
}

// UpdateStatus moves an order along the lifecycle on behalf of actor and
// returns the status it left.
func (s *Orders) UpdateStatus(id string, to models.OrderStatus, actor statemachine.Actor) (models.OrderStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.index[id]
	if !ok {
		return "", fmt.Errorf("order %s: %w", id, ErrNotFound)
	}
	from := s.items[i].Status
	if err := statemachine.CanTransitionOrder(from, to, actor); err != nil {
		return from, err
	}
	s.items[i].Status = to
	return from, nil
}

// ForceStatus writes any known status regardless of the current one.
func (s *Orders) ForceStatus(id string, to models.OrderStatus) (models.OrderStatus, error) {
	if !statemachine.Orders.IsValid(to) {
		return "", fmt.Errorf("order status %q: %w", to, statemachine.ErrUnknownStatus)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.index[id]
	if !ok {
		return "", fmt.Errorf("order %s: %w", id, ErrNotFound)
	}
	from := s.items[i].Status
	s.items[i].Status = to
	return from, nil
}

// RevertStatus puts from back if the order still has status to. It reports
// whether the order changed.
func (s *Orders) RevertStatus(id string, to, from models.OrderStatus) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.index[id]
	if !ok || s.items[i].Status != to {
		return false
	}
	s.items[i].Status = from
	return true
}

// Sync replaces the copy of o held in memory, adding it when unknown.
func (s *Orders) Sync(o models.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i, ok := s.index[o.ID]; ok {
		s.items[i] = o.Clone()
		return
	}
	s.index[o.ID] = len(s.items)
	s.items = append(s.items, o.Clone())
}

// List returns orders in submission order, optionally restricted to status.
func (s *Orders) List(status models.OrderStatus) []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Order, 0, len(s.items))
	for _, o := range s.items {
		if status == "" || o.Status == status {
			out = append(out, o.Clone())
		}
	}
	return out
}

func (s *Orders) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

type OrderSummary struct {
	Total    int                        `json:"total"`
	ByStatus map[models.OrderStatus]int `json:"by_status"`
	Revenue  decimal.Decimal            `json:"revenue"`
}

// Summary counts orders per status; revenue only includes completed orders.
func (s *Orders) Summary() OrderSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sum := OrderSummary{ByStatus: map[models.OrderStatus]int{}, Revenue: decimal.Zero}
	for _, o := range s.items {
		sum.Total++
		sum.ByStatus[o.Status]++
		if o.Status == models.OrderCompleted {
			sum.Revenue = sum.Revenue.Add(o.Total)
		}
	}
	return sum
}
