package domain

import "time"

// MaxLineQuantity is the per-product ceiling for a single cart line.
const MaxLineQuantity = 5

type Cart struct {
	ID         int64     `json:"cartId"`
	CustomerID int64     `json:"customerId"`
	CreatedAt  time.Time `json:"createdAt"`
}

// CartLine is one product's quantity within one cart. Line ids are serial, so
// ascending id order is insertion order.
type CartLine struct {
	ID        int64 `json:"cartedProductId"`
	CartID    int64 `json:"cartId"`
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// CartItem is a cart line joined with live product details, the shape cart
// reads return so clients can render without a second round trip.
type CartItem struct {
	CartLine
	ProductName string `json:"productName"`
	PriceCents  int64  `json:"priceCents"`
	Description string `json:"description"`
	Image       string `json:"image"`
}
