package models

import (
	"fmt"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"

	"github.com/ghuser/pantry/services/product/domain"
)

// Quantity is a strictly positive count of units in a stash item.
// A stash item with nothing left is removed rather than zeroed.
type Quantity uint32

// NewQuantity constructs a valid Quantity or returns ErrInvalidQuantity.
func NewQuantity(n uint32) (Quantity, error) {
	if n == 0 {
		return 0, fmt.Errorf("%w: must be greater than zero", domain.ErrInvalidQuantity)
	}
	return Quantity(n), nil
}

// Uint32 returns the underlying value.
func (q Quantity) Uint32() uint32 {
	return uint32(q)
}

// ParseExpiryDate parses an ISO 8601 calendar date (YYYY-MM-DD).
func ParseExpiryDate(s string) (civil.Date, error) {
	d, err := civil.ParseDate(strings.TrimSpace(s))
	if err != nil {
		return civil.Date{}, fmt.Errorf("%w: %w", domain.ErrInvalidExpiryDate, err)
	}
	return d, nil
}

// ParseStashItemID parses the textual form of a stash item UUID.
func ParseStashItemID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %w", domain.ErrInvalidStashItemID, err)
	}
	return id, nil
}

// StashItem is one batch of a product: how many units there are and when
// they expire. It is owned by exactly one Product and has no lifecycle of
// its own; changes are made by replacing it through the owning Product.
type StashItem struct {
	ID         uuid.UUID
	Quantity   Quantity
	ExpiryDate civil.Date
}

// NewStashItem builds a StashItem from already validated parts. The ID is
// supplied by the caller.
func NewStashItem(id uuid.UUID, quantity Quantity, expiryDate civil.Date) StashItem {
	return StashItem{ID: id, Quantity: quantity, ExpiryDate: expiryDate}
}
