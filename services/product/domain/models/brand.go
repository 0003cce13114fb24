package models

import (
	"fmt"

	"github.com/ghuser/pantry/services/product/domain"
)

// ProductID is a value object identifying a product across the whole system.
// Any non-empty string is accepted (barcodes, SKUs, slugs).
type ProductID string

// NewProductID constructs a valid ProductID or returns ErrInvalidProductID.
func NewProductID(s string) (ProductID, error) {
	if s == "" {
		return "", fmt.Errorf("%w: must not be empty", domain.ErrInvalidProductID)
	}
	return ProductID(s), nil
}

// String returns the underlying string value.
func (id ProductID) String() string {
	return string(id)
}

// Brand is a value object representing the manufacturer of a product.
type Brand string

// NewBrand constructs a valid Brand or returns ErrInvalidBrand.
func NewBrand(s string) (Brand, error) {
	if s == "" {
		return "", fmt.Errorf("%w: must not be empty", domain.ErrInvalidBrand)
	}
	return Brand(s), nil
}

// String returns the underlying string value.
func (b Brand) String() string {
	return string(b)
}
