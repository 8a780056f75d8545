package product

import (
	"context"

	"storefront/internal/domain"
)

// Repository reads the product catalog. The catalog is read-only within the
// storefront; writes happen through seeding.
type Repository interface {
	List(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	// ListRelated returns products sharing a category, excluding the
	// product itself.
	ListRelated(ctx context.Context, category string, excludeID int64) ([]domain.Product, error)
}
