package db

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Product is a row of the products table.
type Product struct {
	ID        string
	Brand     string
	Name      string
	CreatedAt time.Time
	UpdatedAt sql.NullTime
}

// StashItem is a row of the stash_items table.
type StashItem struct {
	ID         uuid.UUID
	ProductID  string
	Quantity   int64
	ExpiryDate time.Time
	CreatedAt  time.Time
	UpdatedAt  sql.NullTime
}
