package httpserver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/internal/domain"
	"storefront/internal/service/token"
)

type stubCartSvc struct {
	line       *domain.CartLine
	addErr     error
	setErr     error
	items      []domain.CartItem
	removeErr  error
	listErr    error
	clearErr   error
	clearCalls int
}

func (s *stubCartSvc) AddItem(_ context.Context, _, _ int64, _ int) (*domain.CartLine, error) {
	return s.line, s.addErr
}

func (s *stubCartSvc) SetItem(_ context.Context, _, _ int64, _ int) error {
	return s.setErr
}

func (s *stubCartSvc) RemoveItem(_ context.Context, _, _, _ int64) ([]domain.CartItem, error) {
	return s.items, s.removeErr
}

func (s *stubCartSvc) List(_ context.Context, _ int64) ([]domain.CartItem, error) {
	return s.items, s.listErr
}

func (s *stubCartSvc) Clear(_ context.Context, _ int64) error {
	s.clearCalls++
	return s.clearErr
}

func authedJSON(t *testing.T, method, target, body string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearerFor(t, token.Identity{CustomerID: 1, Username: "alice", CartID: 1}))
	return req
}

func TestAddToCartHandler_Created(t *testing.T) {
	router := testRouter(Deps{CartSvc: &stubCartSvc{
		line: &domain.CartLine{ID: 10, CartID: 1, ProductID: 5, Quantity: 3},
	}})

	req := authedJSON(t, http.MethodPost, "/api/mycart/addtocart", `{"cartId":1,"productId":5,"quantity":3}`)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"quantity":3`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestAddToCartHandler_QuantityLimit(t *testing.T) {
	router := testRouter(Deps{CartSvc: &stubCartSvc{addErr: domain.ErrQuantityLimit}})

	req := authedJSON(t, http.MethodPost, "/api/mycart/addtocart", `{"cartId":1,"productId":5,"quantity":4}`)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestAddToCartHandler_MalformedBody(t *testing.T) {
	router := testRouter(Deps{})

	req := authedJSON(t, http.MethodPost, "/api/mycart/addtocart", `{"cartId":`)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed body, got %d", rec.Code)
	}
}

func TestUpdateCartHandler_NoContent(t *testing.T) {
	router := testRouter(Deps{CartSvc: &stubCartSvc{}})

	req := authedJSON(t, http.MethodPost, "/api/mycart/update", `{"cartId":1,"productId":5,"quantity":2}`)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestUpdateCartHandler_MissingLine(t *testing.T) {
	router := testRouter(Deps{CartSvc: &stubCartSvc{setErr: domain.ErrNotFound}})

	req := authedJSON(t, http.MethodPost, "/api/mycart/update", `{"cartId":1,"productId":5,"quantity":2}`)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestRemoveCartItemHandler_ReturnsRemaining(t *testing.T) {
	router := testRouter(Deps{CartSvc: &stubCartSvc{
		items: []domain.CartItem{
			{CartLine: domain.CartLine{ID: 2, CartID: 1, ProductID: 9, Quantity: 1}, ProductName: "Lamp"},
		},
	}})

	req := authedJSON(t, http.MethodPost, "/api/remove", `{"cartId":1,"productId":5,"customerId":1}`)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"productName":"Lamp"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestRemoveCartItemHandler_MismatchedCustomer(t *testing.T) {
	router := testRouter(Deps{})

	req := authedJSON(t, http.MethodPost, "/api/remove", `{"cartId":1,"productId":5,"customerId":2}`)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestClearCartHandler_NoContent(t *testing.T) {
	svc := &stubCartSvc{}
	router := testRouter(Deps{CartSvc: svc})

	req := authedJSON(t, http.MethodPost, "/api/checkout/clearcart", `{"cartId":1}`)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d body=%s", rec.Code, rec.Body.String())
	}
	if svc.clearCalls != 1 {
		t.Fatalf("expected one clear call, got %d", svc.clearCalls)
	}
}
