package order

import (
	"context"
	"fmt"

	"storefront/internal/domain"
	orderrepo "storefront/internal/repository/order"
)

type orderRepo interface {
	Checkout(ctx context.Context, cartID int64) (*domain.Order, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]domain.Order, error)
}

// Service converts carts into immutable orders and reads order history.
type Service struct {
	repo orderRepo
}

func New(repo orderrepo.Repository) *Service {
	return &Service{repo: repo}
}

// Checkout promotes the cart's lines into an order and empties the cart as
// one all-or-nothing unit. An empty cart fails with domain.ErrEmptyCart.
func (s *Service) Checkout(ctx context.Context, cartID int64) (*domain.Order, error) {
	if cartID <= 0 {
		return nil, fmt.Errorf("%w: cartId must be positive", domain.ErrValidation)
	}
	return s.repo.Checkout(ctx, cartID)
}

// History returns the customer's orders, newest first, with their snapshot
// lines.
func (s *Service) History(ctx context.Context, customerID int64) ([]domain.Order, error) {
	if customerID <= 0 {
		return nil, fmt.Errorf("%w: customerId must be positive", domain.ErrValidation)
	}
	return s.repo.ListByCustomer(ctx, customerID)
}
