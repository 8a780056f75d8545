package order

import (
	"context"

	"storefront/internal/domain"
)

// Repository creates immutable order records and reads order history.
type Repository interface {
	// Checkout converts the cart's current lines into an order and empties
	// the cart as one transaction. An empty cart fails with
	// domain.ErrEmptyCart and no effects are visible.
	Checkout(ctx context.Context, cartID int64) (*domain.Order, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]domain.Order, error)
}
