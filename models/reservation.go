package models

import "time"

type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationCompleted ReservationStatus = "completed"
	ReservationCancelled ReservationStatus = "cancelled"
)

var ReservationStatuses = []ReservationStatus{
	ReservationPending, ReservationConfirmed, ReservationCompleted, ReservationCancelled,
}

// Reservation is a table booking request. Date is "YYYY-MM-DD" and Time is a
// local "HH:MM"; both stay strings so lookups by date are plain equality.
type Reservation struct {
	ID              string            `json:"id" gorm:"primaryKey"`
	SessionID       string            `json:"-" gorm:"index"`
	CustomerName    string            `json:"customer_name" gorm:"not null"`
	Email           string            `json:"email" gorm:"not null"`
	Phone           string            `json:"phone" gorm:"not null"`
	Date            string            `json:"date" gorm:"not null;index"`
	Time            string            `json:"time" gorm:"not null"`
	PartySize       int               `json:"party_size" gorm:"not null"`
	SpecialRequests string            `json:"special_requests,omitempty"`
	Status          ReservationStatus `json:"status" gorm:"not null;default:'pending';index"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

type ReservationStatusHistory struct {
	ID            uint              `json:"id" gorm:"primaryKey"`
	ReservationID string            `json:"reservation_id" gorm:"not null;index"`
	FromStatus    ReservationStatus `json:"from_status"`
	ToStatus      ReservationStatus `json:"to_status" gorm:"not null"`
	Actor         string            `json:"actor"`
	Note          string            `json:"note"`
	CreatedAt     time.Time         `json:"created_at"`
}
