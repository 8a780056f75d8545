package cart

import (
	"context"

	"storefront/internal/domain"
)

// Repository is the mutable mapping from (cart, product) to a bounded
// quantity.
type Repository interface {
	GetByID(ctx context.Context, cartID int64) (*domain.Cart, error)
	// AddItem inserts a line or merges into an existing one as a single
	// atomic statement. Exceeding the quantity ceiling fails with
	// domain.ErrQuantityLimit and leaves the line untouched.
	AddItem(ctx context.Context, cartID, productID int64, quantity int) (*domain.CartLine, error)
	SetItemQuantity(ctx context.Context, cartID, productID int64, quantity int) error
	RemoveItem(ctx context.Context, cartID, productID int64) error
	ListByCustomer(ctx context.Context, customerID int64) ([]domain.CartItem, error)
	Clear(ctx context.Context, cartID int64) error
}
