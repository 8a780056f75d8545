package domain

import "time"

type Product struct {
	ID          int64     `json:"productId"`
	Name        string    `json:"productName"`
	PriceCents  int64     `json:"priceCents"`
	Description string    `json:"description,omitempty"`
	Image       string    `json:"image,omitempty"`
	Category    string    `json:"category,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
