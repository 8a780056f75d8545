package customer

import (
	"context"
	"errors"
	"testing"

	"storefront/internal/domain"
	"storefront/internal/service/token"
)

// memoryRepo is a lightweight in-memory customer repository for tests.
type memoryRepo struct {
	byUsername map[string]*memoryEntry
	nextID     int64
}

type memoryEntry struct {
	customer domain.Customer
	cart     domain.Cart
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{byUsername: make(map[string]*memoryEntry), nextID: 1}
}

func (r *memoryRepo) Create(_ context.Context, c domain.Customer) (*domain.Customer, *domain.Cart, error) {
	if _, exists := r.byUsername[c.Username]; exists {
		return nil, nil, domain.ErrAlreadyExists
	}
	c.ID = r.nextID
	cart := domain.Cart{ID: r.nextID, CustomerID: c.ID}
	r.nextID++
	r.byUsername[c.Username] = &memoryEntry{customer: c, cart: cart}
	customer := c
	cartCopy := cart
	return &customer, &cartCopy, nil
}

func (r *memoryRepo) GetByUsername(_ context.Context, username string) (*domain.Customer, *domain.Cart, error) {
	entry, ok := r.byUsername[username]
	if !ok {
		return nil, nil, domain.ErrNotFound
	}
	customer := entry.customer
	cart := entry.cart
	return &customer, &cart, nil
}

func (r *memoryRepo) GetByID(_ context.Context, id int64) (*domain.Customer, error) {
	for _, entry := range r.byUsername {
		if entry.customer.ID == id {
			customer := entry.customer
			return &customer, nil
		}
	}
	return nil, domain.ErrNotFound
}

type stubIssuer struct {
	last token.Identity
	err  error
}

func (s *stubIssuer) Issue(id token.Identity) (string, error) {
	s.last = id
	return "signed-token", s.err
}

func TestRegisterAndVerifyRoundTrip(t *testing.T) {
	svc := New(newMemoryRepo(), &stubIssuer{})
	ctx := context.Background()

	result, err := svc.Register(ctx, "alice", "pw1", "a@x.com")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if result.Customer.Username != "alice" || result.Customer.PasswordHash == "pw1" {
		t.Fatalf("unexpected customer %+v", result.Customer)
	}
	if result.Cart.CustomerID != result.Customer.ID {
		t.Fatalf("cart not bound to customer: %+v", result.Cart)
	}

	c, cart, err := svc.Verify(ctx, "alice", "pw1")
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if c.ID != result.Customer.ID || cart.ID != result.Cart.ID {
		t.Fatalf("verify returned different identity: %+v %+v", c, cart)
	}

	if _, _, err := svc.Verify(ctx, "alice", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	svc := New(newMemoryRepo(), &stubIssuer{})
	cases := []struct {
		name                      string
		username, password, email string
	}{
		{"no username", "", "pw", "a@x.com"},
		{"no password", "alice", "", "a@x.com"},
		{"no email", "alice", "pw", ""},
	}
	for _, tc := range cases {
		if _, err := svc.Register(context.Background(), tc.username, tc.password, tc.email); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("%s: expected validation error, got %v", tc.name, err)
		}
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc := New(newMemoryRepo(), &stubIssuer{})
	ctx := context.Background()

	if _, err := svc.Register(ctx, "alice", "pw1", "a@x.com"); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := svc.Register(ctx, "alice", "pw2", "b@x.com"); !errors.Is(err, ErrDuplicateUsername) {
		t.Fatalf("expected ErrDuplicateUsername, got %v", err)
	}
}

func TestVerifyDoesNotLeakAccountExistence(t *testing.T) {
	svc := New(newMemoryRepo(), &stubIssuer{})
	ctx := context.Background()

	if _, err := svc.Register(ctx, "alice", "pw1", "a@x.com"); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, _, unknownErr := svc.Verify(ctx, "nobody", "pw1")
	_, _, wrongErr := svc.Verify(ctx, "alice", "bad")
	if !errors.Is(unknownErr, ErrInvalidCredentials) || !errors.Is(wrongErr, ErrInvalidCredentials) {
		t.Fatalf("expected identical ErrInvalidCredentials, got %v and %v", unknownErr, wrongErr)
	}
}

func TestSignInIssuesTokenBoundToCart(t *testing.T) {
	issuer := &stubIssuer{}
	svc := New(newMemoryRepo(), issuer)
	ctx := context.Background()

	reg, err := svc.Register(ctx, "alice", "pw1", "a@x.com")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	result, err := svc.SignIn(ctx, "alice", "pw1")
	if err != nil {
		t.Fatalf("sign in: %v", err)
	}
	if result.Token != "signed-token" {
		t.Fatalf("unexpected token %q", result.Token)
	}
	want := token.Identity{CustomerID: reg.Customer.ID, Username: "alice", CartID: reg.Cart.ID}
	if issuer.last != want || result.User != want {
		t.Fatalf("identity mismatch: issued %+v returned %+v want %+v", issuer.last, result.User, want)
	}
}

func TestSignInInvalidCredentials(t *testing.T) {
	svc := New(newMemoryRepo(), &stubIssuer{})
	if _, err := svc.SignIn(context.Background(), "nobody", "pw"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
