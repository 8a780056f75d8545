package httpserver

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"storefront/internal/domain"
	customersvc "storefront/internal/service/customer"
	"github.com/gin-gonic/gin"
)

// CustomerService covers the sign-up/sign-in flows handlers need.
type CustomerService interface {
	Register(ctx context.Context, username, password, email string) (*customersvc.RegisterResult, error)
	SignIn(ctx context.Context, username, password string) (*customersvc.SignInResult, error)
}

type signUpRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

type signInRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func signUpHandler(svc CustomerService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req signUpRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, logger, fmt.Errorf("%w: malformed body", domain.ErrValidation))
			return
		}
		result, err := svc.Register(c.Request.Context(), req.Username, req.Password, req.Email)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusCreated, result)
	}
}

func signInHandler(svc CustomerService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req signInRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, logger, customersvc.ErrInvalidCredentials)
			return
		}
		result, err := svc.SignIn(c.Request.Context(), req.Username, req.Password)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}
