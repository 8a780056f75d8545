package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists indicates a uniqueness constraint was violated.
	ErrAlreadyExists = errors.New("already exists")
	// ErrQuantityLimit indicates an add would push a cart line past
	// MaxLineQuantity. The line is left unchanged.
	ErrQuantityLimit = errors.New("quantity limit exceeded")
	// ErrEmptyCart rejects checking out a cart with no lines.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrValidation marks malformed or missing input; wrap it with a
	// message describing the offending field.
	ErrValidation = errors.New("invalid input")
)
