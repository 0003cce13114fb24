package db

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

const listStashItemsByProductIDs = `
SELECT id, product_id, quantity, expiry_date, created_at, updated_at
FROM stash_items
WHERE product_id = ANY($1::text[])
ORDER BY product_id, expiry_date
`

func (q *Queries) ListStashItemsByProductIDs(ctx context.Context, productIDs []string) ([]StashItem, error) {
	rows, err := q.db.QueryContext(ctx, listStashItemsByProductIDs, productIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []StashItem
	for rows.Next() {
		var i StashItem
		if err := rows.Scan(&i.ID, &i.ProductID, &i.Quantity, &i.ExpiryDate, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getProductIDByStashItemID = `
SELECT product_id
FROM stash_items
WHERE id = $1
`

// GetProductIDByStashItemID returns sql.ErrNoRows when the stash item does not exist.
func (q *Queries) GetProductIDByStashItemID(ctx context.Context, id uuid.UUID) (string, error) {
	row := q.db.QueryRowContext(ctx, getProductIDByStashItemID, id)
	var productID string
	err := row.Scan(&productID)
	return productID, err
}

const listProductIDsExpiringBetween = `
SELECT DISTINCT product_id
FROM stash_items
WHERE ($1::date IS NULL OR expiry_date >= $1::date)
  AND ($2::date IS NULL OR expiry_date < $2::date)
ORDER BY product_id
`

// ListProductIDsExpiringBetweenParams bounds the expiry date to [After, Before).
// An invalid (null) bound is unbounded on that side.
type ListProductIDsExpiringBetweenParams struct {
	After  sql.NullTime
	Before sql.NullTime
}

func (q *Queries) ListProductIDsExpiringBetween(ctx context.Context, arg ListProductIDsExpiringBetweenParams) ([]string, error) {
	rows, err := q.db.QueryContext(ctx, listProductIDsExpiringBetween, arg.After, arg.Before)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}

const deleteStashItemsNotIn = `
DELETE FROM stash_items
WHERE product_id = $1
  AND NOT (id::text = ANY($2::text[]))
`

// DeleteStashItemsNotIn removes every stash item of the product whose ID is
// not listed in keep. An empty keep removes all of them. Returns the number
// of deleted rows.
func (q *Queries) DeleteStashItemsNotIn(ctx context.Context, productID string, keep []string) (int64, error) {
	if keep == nil {
		keep = []string{}
	}
	res, err := q.db.ExecContext(ctx, deleteStashItemsNotIn, productID, keep)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const upsertStashItem = `
INSERT INTO stash_items (id, product_id, quantity, expiry_date, created_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (id) DO UPDATE
SET quantity = EXCLUDED.quantity, expiry_date = EXCLUDED.expiry_date, updated_at = EXCLUDED.created_at
WHERE stash_items.product_id = EXCLUDED.product_id
`

// UpsertStashItemParams holds the arguments of UpsertStashItem.
type UpsertStashItemParams struct {
	ID         uuid.UUID
	ProductID  string
	Quantity   int64
	ExpiryDate time.Time
	Now        time.Time
}

// UpsertStashItem inserts a stash item row or updates quantity, expiry_date
// and updated_at. A row owned by a different product is left untouched and
// reported as zero affected rows.
func (q *Queries) UpsertStashItem(ctx context.Context, arg UpsertStashItemParams) (int64, error) {
	res, err := q.db.ExecContext(ctx, upsertStashItem, arg.ID, arg.ProductID, arg.Quantity, arg.ExpiryDate, arg.Now)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const deleteStashItemsByProductID = `
DELETE FROM stash_items
WHERE product_id = $1
`

func (q *Queries) DeleteStashItemsByProductID(ctx context.Context, productID string) error {
	_, err := q.db.ExecContext(ctx, deleteStashItemsByProductID, productID)
	return err
}
