package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"bistro-api/metrics"
	"bistro-api/models"
	"bistro-api/statemachine"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// ReservationForm is what a guest fills in to request a table.
type ReservationForm struct {
	CustomerName    string `json:"customer_name" validate:"required,max=100"`
	Email           string `json:"email" validate:"required,mail"`
	Phone           string `json:"phone" validate:"required,phone"`
	Date            string `json:"date" validate:"required,datetime=2006-01-02"`
	Time            string `json:"time" validate:"required,hhmm"`
	PartySize       int    `json:"party_size" validate:"required,min=1,max=12"`
	SpecialRequests string `json:"special_requests" validate:"max=500"`
}

// Calendar produces the dates and times the booking form offers.
type Calendar struct {
	Days      int
	FirstSlot string
	LastSlot  string
	Interval  time.Duration
	Now       func() time.Time
}

// DefaultCalendar offers the next 30 days, Sundays excluded, with a table
// every half hour between 11:00 and 22:30.
func DefaultCalendar() Calendar {
	return Calendar{
		Days:      30,
		FirstSlot: "11:00",
		LastSlot:  "22:30",
		Interval:  30 * time.Minute,
		Now:       time.Now,
	}
}

// BookableDates returns YYYY-MM-DD strings starting today.
func (c Calendar) BookableDates() []string {
	now := c.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	out := make([]string, 0, c.Days)
	for i := range c.Days {
		d := today.AddDate(0, 0, i)
		if d.Weekday() == time.Sunday {
			continue
		}
		out = append(out, d.Format(dateLayout))
	}
	return out
}

func (c Calendar) TimeSlots() []string {
	first, err := time.Parse(timeLayout, c.FirstSlot)
	if err != nil {
		return nil
	}
	last, err := time.Parse(timeLayout, c.LastSlot)
	if err != nil || c.Interval <= 0 {
		return nil
	}
	var out []string
	for t := first; !t.After(last); t = t.Add(c.Interval) {
		out = append(out, t.Format(timeLayout))
	}
	return out
}

// Booking validates reservation requests, hands them to the backend and
// records the accepted ones.
type Booking struct {
	book     *ReservationBook
	backend  ReservationBackend
	calendar Calendar
	log      *slog.Logger

	// EnforceCalendar restricts dates and times to what the form offers.
	EnforceCalendar bool

	newID func() string
	now   func() time.Time
}

func NewBooking(book *ReservationBook, backend ReservationBackend, calendar Calendar, log *slog.Logger) *Booking {
	return &Booking{
		book:            book,
		backend:         backend,
		calendar:        calendar,
		log:             log,
		EnforceCalendar: true,
		newID:           uuid.NewString,
		now:             time.Now,
	}
}

func (b *Booking) Calendar() Calendar { return b.calendar }

// Submit returns a *ValidationError for bad input, ErrReservationRejected
// when the backend refuses the request, and the recorded reservation
// otherwise. Double bookings are not detected.
func (b *Booking) Submit(ctx context.Context, sessionID string, form ReservationForm) (models.Reservation, error) {
	form.CustomerName = strings.TrimSpace(form.CustomerName)
	form.Email = strings.TrimSpace(form.Email)
	form.Phone = strings.TrimSpace(form.Phone)

	if err := validateStruct(form); err != nil {
		metrics.ReservationsRejected.WithLabelValues("validation").Inc()
		return models.Reservation{}, err
	}
	if b.EnforceCalendar {
		if err := b.checkCalendar(form); err != nil {
			metrics.ReservationsRejected.WithLabelValues("calendar").Inc()
			return models.Reservation{}, err
		}
	}

	now := b.now()
	res := models.Reservation{
		ID:              b.newID(),
		SessionID:       sessionID,
		CustomerName:    form.CustomerName,
		Email:           form.Email,
		Phone:           form.Phone,
		Date:            form.Date,
		Time:            form.Time,
		PartySize:       form.PartySize,
		SpecialRequests: form.SpecialRequests,
		Status:          models.ReservationPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := b.backend.Submit(ctx, res); err != nil {
		metrics.ReservationsRejected.WithLabelValues("backend").Inc()
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return models.Reservation{}, err
		}
		return models.Reservation{}, fmt.Errorf("%w: %v", ErrReservationRejected, err)
	}
	if err := b.book.Add(ctx, res, statemachine.ActorCustomer, "Reservation requested"); err != nil {
		return models.Reservation{}, fmt.Errorf("record reservation: %w", err)
	}
	return res, nil
}

func (b *Booking) checkCalendar(form ReservationForm) error {
	fields := map[string]string{}
	if !slices.Contains(b.calendar.BookableDates(), form.Date) {
		fields["date"] = "is not an available date"
	}
	if !slices.Contains(b.calendar.TimeSlots(), form.Time) {
		fields["time"] = "is not an available time slot"
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
