package order

import "time"

// Order is immutable once placed: the item sequence, total and timestamp
// are frozen at creation. Items carries one menu item id per requested
// unit, so duplicates are meaningful.
type Order struct {
	ID           int64   `json:"id"`
	CustomerName string  `json:"customer_name"`
	Items        []int64 `json:"items"`
	// Total as a string to avoid rounding errors (NUMERIC in Postgres)
	Total     string    `json:"total"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateOrderRequest payload of order placement.
// swagger:model CreateOrderRequest
type CreateOrderRequest struct {
	CustomerName string  `json:"customer_name" example:"Alice"`
	Items        []int64 `json:"items"`
}
