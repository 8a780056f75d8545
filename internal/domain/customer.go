package domain

import "time"

// Customer represents a registered shopper. The password hash is opaque and
// never serialized.
type Customer struct {
	ID           int64     `json:"customerId"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
