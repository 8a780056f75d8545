package httpserver

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"storefront/internal/domain"
	"github.com/gin-gonic/gin"
)

// OrderService covers checkout and order history.
type OrderService interface {
	Checkout(ctx context.Context, cartID int64) (*domain.Order, error)
	History(ctx context.Context, customerID int64) ([]domain.Order, error)
}

func checkoutHandler(svc OrderService, logger *log.Logger) gin.HandlerFunc {
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
		ord, err := svc.Checkout(c.Request.Context(), req.CartID)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusCreated, ord)
	}
}

func orderHistoryHandler(svc OrderService, logger *log.Logger) gin.HandlerFunc {
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
		orders, err := svc.History(c.Request.Context(), customerID)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}
