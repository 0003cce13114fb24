package db

import (
	"context"
	"time"
)

const upsertProduct = `
INSERT INTO products (id, brand, name, created_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (id) DO UPDATE
SET brand = EXCLUDED.brand, name = EXCLUDED.name, updated_at = EXCLUDED.created_at
`

// UpsertProductParams holds the arguments of UpsertProduct.
type UpsertProductParams struct {
	ID    string
	Brand string
	Name  string
	Now   time.Time
}

// UpsertProduct inserts a product row or updates brand, name and updated_at.
func (q *Queries) UpsertProduct(ctx context.Context, arg UpsertProductParams) error {
	_, err := q.db.ExecContext(ctx, upsertProduct, arg.ID, arg.Brand, arg.Name, arg.Now)
	return err
}

const getProductByID = `
SELECT id, brand, name, created_at, updated_at
FROM products
WHERE id = $1
`

// GetProductByID returns sql.ErrNoRows when the product does not exist.
func (q *Queries) GetProductByID(ctx context.Context, id string) (Product, error) {
	row := q.db.QueryRowContext(ctx, getProductByID, id)
	var p Product
	err := row.Scan(&p.ID, &p.Brand, &p.Name, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

const listProducts = `
SELECT id, brand, name, created_at, updated_at
FROM products
ORDER BY id
`

func (q *Queries) ListProducts(ctx context.Context) ([]Product, error) {
	return q.queryProducts(ctx, listProducts)
}

const listProductsByIDs = `
SELECT id, brand, name, created_at, updated_at
FROM products
WHERE id = ANY($1::text[])
ORDER BY id
`

func (q *Queries) ListProductsByIDs(ctx context.Context, ids []string) ([]Product, error) {
	return q.queryProducts(ctx, listProductsByIDs, ids)
}

func (q *Queries) queryProducts(ctx context.Context, query string, args ...interface{}) ([]Product, error) {
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Brand, &p.Name, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const productExists = `
SELECT EXISTS (SELECT 1 FROM products WHERE id = $1)
`

func (q *Queries) ProductExists(ctx context.Context, id string) (bool, error) {
	row := q.db.QueryRowContext(ctx, productExists, id)
	var exists bool
	err := row.Scan(&exists)
	return exists, err
}

const deleteProduct = `
DELETE FROM products
WHERE id = $1
`

func (q *Queries) DeleteProduct(ctx context.Context, id string) error {
	_, err := q.db.ExecContext(ctx, deleteProduct, id)
	return err
}
