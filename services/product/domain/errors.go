package domain

import "errors"

// Sentinel errors for the product domain. Use errors.Is() to check these.
var (
	// ErrInvalidProductID indicates an empty product identifier.
	ErrInvalidProductID = errors.New("invalid product id")

	// ErrInvalidBrand indicates an empty brand.
	ErrInvalidBrand = errors.New("invalid brand")

	// ErrInvalidQuantity indicates a zero quantity.
	ErrInvalidQuantity = errors.New("invalid quantity")

	// ErrInvalidExpiryDate indicates an expiry date that could not be parsed.
	ErrInvalidExpiryDate = errors.New("invalid expiry date")

	// ErrInvalidStashItemID indicates a stash item identifier that is not a UUID.
	ErrInvalidStashItemID = errors.New("invalid stash item id")
)

// Aggregate invariant violations raised by models.Product.
var (
	// ErrStashItemExists indicates a stash item with the same ID is already attached.
	ErrStashItemExists = errors.New("stash item already exists")

	// ErrStashItemDoesntExist is returned when removing an ID the product does not hold.
	ErrStashItemDoesntExist = errors.New("stash item doesn't exist")

	// ErrStashItemNotFound is returned when updating an ID the product does not hold.
	ErrStashItemNotFound = errors.New("stash item not found")

	// ErrDuplicateExpiryDate indicates another stash item already has the same expiry date.
	ErrDuplicateExpiryDate = errors.New("duplicate expiry date")
)

var (
	// ErrProductNotFound indicates the requested product does not exist.
	ErrProductNotFound = errors.New("product not found")

	// ErrProductAlreadyExists indicates a product with the same ID already exists.
	ErrProductAlreadyExists = errors.New("product already exists")

	// ErrProductIDMismatch indicates the path ID and the body ID disagree.
	ErrProductIDMismatch = errors.New("product id mismatch")

	// ErrInvalidDateInterval indicates an expiry query with neither bound set.
	ErrInvalidDateInterval = errors.New("invalid date interval: at least one bound is required")
)

var (
	// ErrPersistence wraps any failure of the underlying storage engine.
	ErrPersistence = errors.New("persistence error")

	// ErrCorruptData indicates stored rows that violate the aggregate's invariants.
	ErrCorruptData = errors.New("corrupt data")
)
