package cart

import (
	"context"
	"fmt"

	"storefront/internal/domain"
	cartrepo "storefront/internal/repository/cart"
)

type cartRepo interface {
	AddItem(ctx context.Context, cartID, productID int64, quantity int) (*domain.CartLine, error)
	SetItemQuantity(ctx context.Context, cartID, productID int64, quantity int) error
	RemoveItem(ctx context.Context, cartID, productID int64) error
	ListByCustomer(ctx context.Context, customerID int64) ([]domain.CartItem, error)
	Clear(ctx context.Context, cartID int64) error
}

// Service enforces the cart ledger's input rules; the atomic quantity
// ceiling lives in the repository statement.
type Service struct {
	repo cartRepo
}

func New(repo cartrepo.Repository) *Service {
	return &Service{repo: repo}
}

// AddItem merges quantity into the (cart, product) line, creating it when
// absent. Quantities pushing the line past the ceiling fail with
// domain.ErrQuantityLimit and leave the line unchanged.
func (s *Service) AddItem(ctx context.Context, cartID, productID int64, quantity int) (*domain.CartLine, error) {
	if cartID <= 0 || productID <= 0 {
		return nil, fmt.Errorf("%w: cartId and productId must be positive", domain.ErrValidation)
	}
	if quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be positive", domain.ErrValidation)
	}
	if quantity > domain.MaxLineQuantity {
		return nil, domain.ErrQuantityLimit
	}
	return s.repo.AddItem(ctx, cartID, productID, quantity)
}

// SetItem overwrites the line's quantity. Out-of-range values are a
// validation error, never clamped; this applies the same bound the add path
// enforces.
func (s *Service) SetItem(ctx context.Context, cartID, productID int64, quantity int) error {
	if cartID <= 0 || productID <= 0 {
		return fmt.Errorf("%w: cartId and productId must be positive", domain.ErrValidation)
	}
	if quantity < 1 || quantity > domain.MaxLineQuantity {
		return fmt.Errorf("%w: quantity must be between 1 and %d", domain.ErrValidation, domain.MaxLineQuantity)
	}
	return s.repo.SetItemQuantity(ctx, cartID, productID, quantity)
}

// RemoveItem deletes the line and returns the customer's remaining cart
// contents in insertion order, so callers can re-render without a second
// round trip.
func (s *Service) RemoveItem(ctx context.Context, cartID, productID, customerID int64) ([]domain.CartItem, error) {
	if cartID <= 0 || productID <= 0 {
		return nil, fmt.Errorf("%w: cartId and productId must be positive", domain.ErrValidation)
	}
	if err := s.repo.RemoveItem(ctx, cartID, productID); err != nil {
		return nil, err
	}
	return s.repo.ListByCustomer(ctx, customerID)
}

// List returns the customer's cart contents joined with product details, in
// insertion order.
func (s *Service) List(ctx context.Context, customerID int64) ([]domain.CartItem, error) {
	if customerID <= 0 {
		return nil, fmt.Errorf("%w: customerId must be positive", domain.ErrValidation)
	}
	return s.repo.ListByCustomer(ctx, customerID)
}

// Clear empties the cart. Clearing an empty cart is not an error.
func (s *Service) Clear(ctx context.Context, cartID int64) error {
	if cartID <= 0 {
		return fmt.Errorf("%w: cartId must be positive", domain.ErrValidation)
	}
	return s.repo.Clear(ctx, cartID)
}
