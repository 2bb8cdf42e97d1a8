package errors

import (
	"errors"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrProductExists   = errors.New("product already exists")
	ErrInvalidProduct  = errors.New("invalid product data")

	ErrSizeRequired  = errors.New("size selection is required for this product")
	ErrColorRequired = errors.New("color selection is required for this product")

	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrLineNotFound    = errors.New("product is not in the cart")

	ErrCartEmpty = errors.New("cart is empty")
)
