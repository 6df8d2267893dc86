package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus represents all possible states of a kitchen order
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderPreparing OrderStatus = "preparing"
	OrderReady     OrderStatus = "ready"
	OrderCompleted OrderStatus = "completed"
	OrderCancelled OrderStatus = "cancelled"
)

// OrderStatuses lists every order status in lifecycle order.
var OrderStatuses = []OrderStatus{OrderPending, OrderPreparing, OrderReady, OrderCompleted, OrderCancelled}

type OrderType string

const (
	OrderDineIn   OrderType = "dine-in"
	OrderTakeaway OrderType = "takeaway"
)

type CustomerInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type Order struct {
	ID            string          `json:"id" gorm:"primaryKey"`
	SessionID     string          `json:"-" gorm:"index"`
	Items         []CartLine      `json:"items" gorm:"serializer:json"`
	Customer      CustomerInfo    `json:"customer_info" gorm:"embedded;embeddedPrefix:customer_"`
	Total         decimal.Decimal `json:"total" gorm:"type:text;not null"`
	Status        OrderStatus     `json:"status" gorm:"not null;default:'pending';index"`
	OrderType     OrderType       `json:"order_type" gorm:"not null"`
	TableNumber   *int            `json:"table_number,omitempty"`
	EstimatedTime int             `json:"estimated_time_minutes"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// Clone returns a copy that shares no slices or pointers with o.
func (o Order) Clone() Order {
	c := o
	c.Items = append([]CartLine(nil), o.Items...)
	for i := range c.Items {
		c.Items[i].MenuItem.Ingredients = append([]string(nil), o.Items[i].MenuItem.Ingredients...)
	}
	if o.TableNumber != nil {
		n := *o.TableNumber
		c.TableNumber = &n
	}
	return c
}

// OrderStatusHistory tracks every status change of an order
type OrderStatusHistory struct {
	ID         uint        `json:"id" gorm:"primaryKey"`
	OrderID    string      `json:"order_id" gorm:"not null;index"`
	FromStatus OrderStatus `json:"from_status"`
	ToStatus   OrderStatus `json:"to_status" gorm:"not null"`
	Actor      string      `json:"actor"`
	Note       string      `json:"note"`
	CreatedAt  time.Time   `json:"created_at"`
}
