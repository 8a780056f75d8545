package customer

import (
	"context"

	"storefront/internal/domain"
)

// Repository persists and fetches customers. Create also creates the
// customer's cart in the same unit of work; a customer without a cart is
// never observable.
type Repository interface {
	Create(ctx context.Context, c domain.Customer) (*domain.Customer, *domain.Cart, error)
	GetByUsername(ctx context.Context, username string) (*domain.Customer, *domain.Cart, error)
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
}
