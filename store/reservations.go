package store

import (
	"fmt"
	"sync"

	"bistro-api/models"
	"bistro-api/statemachine"
)

type Reservations struct {
	mu    sync.RWMutex
	items []models.Reservation
	index map[string]int
}

func NewReservations() *Reservations {
	return &Reservations{index: make(map[string]int)}
}

func (s *Reservations) Add(r models.Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.index[r.ID]; ok {
		return fmt.Errorf("reservation %s: %w", r.ID, ErrDuplicateID)
	}
	s.index[r.ID] = len(s.items)
	s.items = append(s.items, r)
	return nil
}

func (s *Reservations) Get(id string) (models.Reservation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.index[id]
	if !ok {
		return models.Reservation{}, false
	}
	return s.items[i], true
}

func (s *Reservations) UpdateStatus(id string, to models.ReservationStatus, actor statemachine.Actor) (models.ReservationStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.index[id]
	if !ok {
		return "", fmt.Errorf("reservation %s: %w", id, ErrNotFound)
	}
	from := s.items[i].Status
	if err := statemachine.CanTransitionReservation(from, to, actor); err != nil {
		return from, err
	}
	s.items[i].Status = to
	return from, nil
}

func (s *Reservations) ForceStatus(id string, to models.ReservationStatus) (models.ReservationStatus, error) {
	if !statemachine.Reservations.IsValid(to) {
		return "", fmt.Errorf("reservation status %q: %w", to, statemachine.ErrUnknownStatus)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.index[id]
	if !ok {
		return "", fmt.Errorf("reservation %s: %w", id, ErrNotFound)
	}
	from := s.items[i].Status
	s.items[i].Status = to
	return from, nil
}

// RevertStatus puts from back if the reservation still has status to.
func (s *Reservations) RevertStatus(id string, to, from models.ReservationStatus) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.index[id]
	if !ok || s.items[i].Status != to {
		return false
	}
	s.items[i].Status = from
	return true
}

// Sync replaces the copy of r held in memory, adding it when unknown.
func (s *Reservations) Sync(r models.Reservation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i, ok := s.index[r.ID]; ok {
		s.items[i] = r
		return
	}
	s.index[r.ID] = len(s.items)
	s.items = append(s.items, r)
}

// ByDate returns the reservations on date that are not cancelled, in
// insertion order.
func (s *Reservations) ByDate(date string) []models.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Reservation, 0)
	for _, r := range s.items {
		if r.Date == date && r.Status != models.ReservationCancelled {
			out = append(out, r)
		}
	}
	return out
}

// List filters by status and date; empty values match everything. Unlike
// ByDate it keeps cancelled reservations unless status excludes them.
func (s *Reservations) List(status models.ReservationStatus, date string) []models.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Reservation, 0, len(s.items))
	for _, r := range s.items {
		if status != "" && r.Status != status {
			continue
		}
		if date != "" && r.Date != date {
			continue
		}
		out = append(out, r)
	}
	return out
}

func (s *Reservations) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

type ReservationSummary struct {
	Total    int                              `json:"total"`
	ByStatus map[models.ReservationStatus]int `json:"by_status"`
	Guests   int                              `json:"guests"`
}

// Summary counts reservations per status. Guests sums party sizes of
// reservations that are still expected (pending or confirmed).
func (s *Reservations) Summary() ReservationSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sum := ReservationSummary{ByStatus: map[models.ReservationStatus]int{}}
	for _, r := range s.items {
		sum.Total++
		sum.ByStatus[r.Status]++
		if r.Status == models.ReservationPending || r.Status == models.ReservationConfirmed {
			sum.Guests += r.PartySize
		}
	}
	return sum
}
