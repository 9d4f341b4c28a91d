package domain

import "time"

// OrderStatus enumerates lifecycle states for orders.
type OrderStatus string

const (
	OrderStatusPlaced OrderStatus = "PLACED"
)

// OrderItem is a single line item inside an order.
type OrderItem struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Qty   int     `json:"qty"`
}

// Order is the aggregate for placed checkouts. Orders are immutable once
// created and owned by exactly one user.
type Order struct {
	ID        string      `json:"id"`
	UserID    string      `json:"user_id"`
	Items     []OrderItem `json:"items"`
	Total     float64     `json:"total"`
	Status    OrderStatus `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}
