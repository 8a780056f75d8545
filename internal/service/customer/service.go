package customer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"storefront/internal/domain"
	custrepo "storefront/internal/repository/customer"
	"storefront/internal/service/token"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials is returned when username/password do not match.
	// Unknown usernames and wrong passwords are deliberately
	// indistinguishable so account existence never leaks.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrDuplicateUsername is returned when the username is taken.
	ErrDuplicateUsername = errors.New("username already exists")
)

type tokenIssuer interface {
	Issue(id token.Identity) (string, error)
}

// Service handles sign-up and sign-in flows.
type Service struct {
	repo   custrepo.Repository
	tokens tokenIssuer
}

func New(repo custrepo.Repository, tokens tokenIssuer) *Service {
	return &Service{repo: repo, tokens: tokens}
}

// RegisterResult is a fresh customer and the cart created alongside it.
type RegisterResult struct {
	Customer domain.Customer `json:"user"`
	Cart     domain.Cart     `json:"cart"`
}

// Register creates a customer and their cart in one unit of work.
func (s *Service) Register(ctx context.Context, username, password, email string) (*RegisterResult, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || password == "" || email == "" {
		return nil, fmt.Errorf("%w: username, password, and email are required fields", domain.ErrValidation)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	created, cart, err := s.repo.Create(ctx, domain.Customer{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashed),
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, ErrDuplicateUsername
		}
		return nil, err
	}
	return &RegisterResult{Customer: *created, Cart: *cart}, nil
}

// Verify checks credentials and returns the matching customer and cart.
func (s *Service) Verify(ctx context.Context, username, password string) (*domain.Customer, *domain.Cart, error) {
	if username == "" || password == "" {
		return nil, nil, ErrInvalidCredentials
	}
	c, cart, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}
	return c, cart, nil
}

// SignInResult carries the issued session token and the identity it proves.
type SignInResult struct {
	Token string         `json:"token"`
	User  token.Identity `json:"user"`
}

// SignIn verifies credentials and issues a session token binding the
// customer to their cart.
func (s *Service) SignIn(ctx context.Context, username, password string) (*SignInResult, error) {
	c, cart, err := s.Verify(ctx, username, password)
	if err != nil {
		return nil, err
	}
	identity := token.Identity{
		CustomerID: c.ID,
		Username:   c.Username,
		CartID:     cart.ID,
	}
	signed, err := s.tokens.Issue(identity)
	if err != nil {
		return nil, err
	}
	return &SignInResult{Token: signed, User: identity}, nil
}
