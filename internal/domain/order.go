package domain

import "time"

// Order records a checkout event. Immutable once created; the timestamp is
// server-assigned.
type Order struct {
	ID         int64       `json:"orderId"`
	CustomerID int64       `json:"customerId"`
	CreatedAt  time.Time   `json:"dateTime"`
	Lines      []OrderLine `json:"orderedProducts,omitempty"`
}

// OrderLine snapshots a cart line's product details at checkout time, so
// later catalog changes never rewrite history.
type OrderLine struct {
	ID          int64  `json:"orderedProductId"`
	OrderID     int64  `json:"orderId"`
	ProductID   int64  `json:"productId"`
	ProductName string `json:"productName"`
	PriceCents  int64  `json:"priceCents"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Quantity    int    `json:"quantity"`
}
