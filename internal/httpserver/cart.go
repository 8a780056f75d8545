package httpserver

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"storefront/internal/domain"
	"github.com/gin-gonic/gin"
)

// CartService covers the cart ledger operations handlers need.
type CartService interface {
	AddItem(ctx context.Context, cartID, productID int64, quantity int) (*domain.CartLine, error)
	SetItem(ctx context.Context, cartID, productID int64, quantity int) error
	RemoveItem(ctx context.Context, cartID, productID, customerID int64) ([]domain.CartItem, error)
	List(ctx context.Context, customerID int64) ([]domain.CartItem, error)
	Clear(ctx context.Context, cartID int64) error
}

type cartLineRequest struct {
	CartID    int64 `json:"cartId"`
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

type removeItemRequest struct {
	CartID     int64 `json:"cartId"`
	ProductID  int64 `json:"productId"`
	CustomerID int64 `json:"customerId"`
}

type cartOnlyRequest struct {
	CartID int64 `json:"cartId"`
}

func getCartHandler(svc CartService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		customerID, ok := parseID(c.Param("customerId"))
		if !ok {
			respondError(c, logger, fmt.Errorf("%w: customerId must be a positive integer", domain.ErrValidation))
			return
		}
		if identityFrom(c).CustomerID != customerID {
			forbidden(c)
			return
		}
		items, err := svc.List(c.Request.Context(), customerID)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

func addToCartHandler(svc CartService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req cartLineRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, logger, fmt.Errorf("%w: malformed body", domain.ErrValidation))
			return
		}
		if identityFrom(c).CartID != req.CartID {
			forbidden(c)
			return
		}
		line, err := svc.AddItem(c.Request.Context(), req.CartID, req.ProductID, req.Quantity)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusCreated, line)
	}
}

func updateCartHandler(svc CartService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req cartLineRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, logger, fmt.Errorf("%w: malformed body", domain.ErrValidation))
			return
		}
		if identityFrom(c).CartID != req.CartID {
			forbidden(c)
			return
		}
		if err := svc.SetItem(c.Request.Context(), req.CartID, req.ProductID, req.Quantity); err != nil {
			respondError(c, logger, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func removeCartItemHandler(svc CartService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req removeItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, logger, fmt.Errorf("%w: malformed body", domain.ErrValidation))
			return
		}
		id := identityFrom(c)
		if id.CartID != req.CartID || id.CustomerID != req.CustomerID {
			forbidden(c)
			return
		}
		items, err := svc.RemoveItem(c.Request.Context(), req.CartID, req.ProductID, req.CustomerID)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

func clearCartHandler(svc CartService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req cartOnlyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, logger, fmt.Errorf("%w: malformed body", domain.ErrValidation))
			return
		}
		if identityFrom(c).CartID != req.CartID {
			forbidden(c)
			return
		}
		if err := svc.Clear(c.Request.Context(), req.CartID); err != nil {
			respondError(c, logger, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
