package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken indicates the provided token could not be validated.
var ErrInvalidToken = errors.New("invalid token")

// Identity is the authenticated caller a verified token proves: who they are
// and which cart they own.
type Identity struct {
	CustomerID int64  `json:"customerId"`
	Username   string `json:"username"`
	CartID     int64  `json:"cartId"`
}

type sessionClaims struct {
	CustomerID int64  `json:"customerId"`
	Username   string `json:"username"`
	CartID     int64  `json:"cartId"`
	jwt.RegisteredClaims
}

// Manager issues and verifies signed session tokens. Verification is
// stateless; there is no server-side session table.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl}
}

// Issue signs the identity with the process-wide secret and the configured
// expiry.
func (m *Manager) Issue(id Identity) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		CustomerID: id.CustomerID,
		Username:   id.Username,
		CartID:     id.CartID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Verify returns the identity embedded in a valid token. Bad signatures,
// malformed payloads, wrong signing methods, and expired tokens all fail
// with ErrInvalidToken.
func (m *Manager) Verify(raw string) (Identity, error) {
	var claims sessionClaims
	tok, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !tok.Valid {
		return Identity{}, ErrInvalidToken
	}
	if claims.CustomerID <= 0 || claims.CartID <= 0 || claims.Username == "" {
		return Identity{}, ErrInvalidToken
	}
	return Identity{
		CustomerID: claims.CustomerID,
		Username:   claims.Username,
		CartID:     claims.CartID,
	}, nil
}
