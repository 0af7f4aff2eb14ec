package domain

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusRejected  OrderStatus = "rejected"
)

// Terminal reports whether no further status transition is allowed.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusConfirmed || s == OrderStatusRejected
}

type Order struct {
	ID            string
	Name          string
	Email         string
	Address       string
	ContactNumber string
	Pin           string
	ProductName   string
	Quantity      int
	TotalPrice    float64
	Status        OrderStatus
	Exported      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
