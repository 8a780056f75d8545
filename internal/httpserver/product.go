package httpserver

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"storefront/internal/domain"
	"github.com/gin-gonic/gin"
)

// ProductCatalog is the read-only catalog the storefront browses.
type ProductCatalog interface {
	List(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	ListRelated(ctx context.Context, category string, excludeID int64) ([]domain.Product, error)
}

func listProductsHandler(catalog ProductCatalog, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := catalog.List(c.Request.Context())
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

func getProductHandler(catalog ProductCatalog, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c.Param("productId"))
		if !ok {
			respondError(c, logger, fmt.Errorf("%w: productId must be a positive integer", domain.ErrValidation))
			return
		}
		p, err := catalog.GetByID(c.Request.Context(), id)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

func relatedProductsHandler(catalog ProductCatalog, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c.Param("productId"))
		if !ok {
			respondError(c, logger, fmt.Errorf("%w: productId must be a positive integer", domain.ErrValidation))
			return
		}
		products, err := catalog.ListRelated(c.Request.Context(), c.Param("category"), id)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, products)
	}
}
