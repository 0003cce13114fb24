package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ghuser/pantry/pkg/database"
	productdomain "github.com/ghuser/pantry/services/product/domain"
	"github.com/ghuser/pantry/services/product/domain/models"
	"github.com/ghuser/pantry/services/product/domain/repositories"
	"github.com/ghuser/pantry/services/product/infrastructure/persistence/postgres/db"
)

const (
	pgUniqueViolation = "23505"

	expiryDateConstraint = "stash_items_product_id_expiry_date_key"
)

var _ repositories.ProductRepository = (*ProductRepository)(nil)

// ProductRepository implements repositories.ProductRepository against PostgreSQL.
// Every method runs in its own transaction on the shared connection.
type ProductRepository struct {
	db  *database.Database
	now func() time.Time
}

// NewProductRepository returns a ProductRepository backed by the given database.
func NewProductRepository(database *database.Database) *ProductRepository {
	return &ProductRepository{db: database, now: time.Now}
}

// FindAll returns every product with its stash items, ordered by ID.
func (r *ProductRepository) FindAll(ctx context.Context) ([]*models.Product, error) {
	var products []*models.Product
	err := r.db.WithReadTx(ctx, func(tx *sql.Tx) error {
		q := db.New(tx)
		rows, err := q.ListProducts(ctx)
		if err != nil {
			return fmt.Errorf("query products: %w", err)
		}
		products, err = attachStashItems(ctx, q, rows)
		return err
	})
	if err != nil {
		return nil, storeError(err)
	}
	return products, nil
}

// FindByID returns the product with the given ID, or nil if there is none.
func (r *ProductRepository) FindByID(ctx context.Context, id models.ProductID) (*models.Product, error) {
	var product *models.Product
	err := r.db.WithReadTx(ctx, func(tx *sql.Tx) error {
		var err error
		product, err = findByID(ctx, db.New(tx), id.String())
		return err
	})
	if err != nil {
		return nil, storeError(err)
	}
	return product, nil
}

// FindByIDs returns the products among ids that exist, ordered by ID.
func (r *ProductRepository) FindByIDs(ctx context.Context, ids []models.ProductID) ([]*models.Product, error) {
	if len(ids) == 0 {
		return []*models.Product{}, nil
	}
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = id.String()
	}

	var products []*models.Product
	err := r.db.WithReadTx(ctx, func(tx *sql.Tx) error {
		var err error
		products, err = findByIDs(ctx, db.New(tx), keys)
		return err
	})
	if err != nil {
		return nil, storeError(err)
	}
	return products, nil
}

// FindByStashItemID returns the product that owns the stash item, or nil.
func (r *ProductRepository) FindByStashItemID(ctx context.Context, stashItemID uuid.UUID) (*models.Product, error) {
	var product *models.Product
	err := r.db.WithReadTx(ctx, func(tx *sql.Tx) error {
		q := db.New(tx)
		productID, err := q.GetProductIDByStashItemID(ctx, stashItemID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil
			}
			return fmt.Errorf("query stash item owner: %w", err)
		}
		product, err = findByID(ctx, q, productID)
		return err
	})
	if err != nil {
		return nil, storeError(err)
	}
	return product, nil
}

// FindExpiringInInterval returns the products having at least one stash item
// with after <= expiry_date < before. A nil bound is open on that side; both
// nil is ErrInvalidDateInterval.
func (r *ProductRepository) FindExpiringInInterval(ctx context.Context, after, before *civil.Date) ([]*models.Product, error) {
	if after == nil && before == nil {
		return nil, productdomain.ErrInvalidDateInterval
	}
	params := db.ListProductIDsExpiringBetweenParams{
		After:  nullDate(after),
		Before: nullDate(before),
	}

	var products []*models.Product
	err := r.db.WithReadTx(ctx, func(tx *sql.Tx) error {
		q := db.New(tx)
		ids, err := q.ListProductIDsExpiringBetween(ctx, params)
		if err != nil {
			return fmt.Errorf("query expiring products: %w", err)
		}
		if len(ids) == 0 {
			products = []*models.Product{}
			return nil
		}
		products, err = findByIDs(ctx, q, ids)
		return err
	})
	if err != nil {
		return nil, storeError(err)
	}
	return products, nil
}

// ExistsByID reports whether a product row exists without loading its stash items.
func (r *ProductRepository) ExistsByID(ctx context.Context, id models.ProductID) (bool, error) {
	var exists bool
	err := r.db.WithReadTx(ctx, func(tx *sql.Tx) error {
		var err error
		exists, err = db.New(tx).ProductExists(ctx, id.String())
		if err != nil {
			return fmt.Errorf("check product exists: %w", err)
		}
		return nil
	})
	if err != nil {
		return false, storeError(err)
	}
	return exists, nil
}

// Save makes storage match product in one transaction:
//  1. upsert the product row;
//  2. delete stash item rows whose ID the product no longer holds;
//  3. upsert every stash item the product holds.
//
// Nothing is remembered between calls, so a single Save after any number of
// in-memory changes leaves storage correct. Any failure rolls back all of it.
func (r *ProductRepository) Save(ctx context.Context, product *models.Product) error {
	now := r.now().UTC()
	items := product.StashItems()
	ids := product.StashItemIDs()
	keep := make([]string, len(ids))
	for i, id := range ids {
		keep[i] = id.String()
	}

	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		q := db.New(tx)
		if err := q.UpsertProduct(ctx, db.UpsertProductParams{
			ID:    product.ID().String(),
			Brand: product.Brand().String(),
			Name:  product.Name(),
			Now:   now,
		}); err != nil {
			return fmt.Errorf("upsert product: %w", err)
		}

		if _, err := q.DeleteStashItemsNotIn(ctx, product.ID().String(), keep); err != nil {
			return fmt.Errorf("delete removed stash items: %w", err)
		}

		for _, item := range items {
			n, err := q.UpsertStashItem(ctx, db.UpsertStashItemParams{
				ID:         item.ID,
				ProductID:  product.ID().String(),
				Quantity:   int64(item.Quantity.Uint32()),
				ExpiryDate: item.ExpiryDate.In(time.UTC),
				Now:        now,
			})
			if err != nil {
				return fmt.Errorf("upsert stash item %s: %w", item.ID, err)
			}
			if n == 0 {
				return fmt.Errorf("%w: %s belongs to another product", productdomain.ErrStashItemExists, item.ID)
			}
		}
		return nil
	})
	return storeError(err)
}

// DeleteByID removes the product and all of its stash items. Deleting a
// product that does not exist succeeds.
func (r *ProductRepository) DeleteByID(ctx context.Context, id models.ProductID) error {
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		q := db.New(tx)
		if err := q.DeleteStashItemsByProductID(ctx, id.String()); err != nil {
			return fmt.Errorf("delete stash items: %w", err)
		}
		if err := q.DeleteProduct(ctx, id.String()); err != nil {
			return fmt.Errorf("delete product: %w", err)
		}
		return nil
	})
	return storeError(err)
}

func findByID(ctx context.Context, q *db.Queries, id string) (*models.Product, error) {
	row, err := q.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("query product: %w", err)
	}
	products, err := attachStashItems(ctx, q, []db.Product{row})
	if err != nil {
		return nil, err
	}
	return products[0], nil
}

func findByIDs(ctx context.Context, q *db.Queries, ids []string) ([]*models.Product, error) {
	rows, err := q.ListProductsByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	return attachStashItems(ctx, q, rows)
}

// attachStashItems loads the stash items of all rows in one query and
// rebuilds each aggregate through models.NewProduct.
func attachStashItems(ctx context.Context, q *db.Queries, rows []db.Product) ([]*models.Product, error) {
	products := make([]*models.Product, 0, len(rows))
	if len(rows) == 0 {
		return products, nil
	}

	ids := make([]string, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
	}
	itemRows, err := q.ListStashItemsByProductIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("query stash items: %w", err)
	}

	byProduct := make(map[string][]models.StashItem, len(rows))
	for _, itemRow := range itemRows {
		item, err := rowToStashItem(itemRow)
		if err != nil {
			return nil, err
		}
		byProduct[itemRow.ProductID] = append(byProduct[itemRow.ProductID], item)
	}

	for _, row := range rows {
		p, err := rowToProduct(row, byProduct[row.ID])
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}

// rowToProduct maps a db.Product and its stash items to a domain models.Product.
func rowToProduct(row db.Product, items []models.StashItem) (*models.Product, error) {
	id, err := models.NewProductID(row.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: product row: %w", productdomain.ErrCorruptData, err)
	}
	brand, err := models.NewBrand(row.Brand)
	if err != nil {
		return nil, fmt.Errorf("%w: product %s: %w", productdomain.ErrCorruptData, row.ID, err)
	}
	p, err := models.NewProduct(id, brand, row.Name, items)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", productdomain.ErrCorruptData, err)
	}
	return p, nil
}

// rowToStashItem maps a db.StashItem to a domain models.StashItem.
func rowToStashItem(row db.StashItem) (models.StashItem, error) {
	if row.Quantity < 0 || row.Quantity > math.MaxUint32 {
		return models.StashItem{}, fmt.Errorf("%w: stash item %s: quantity %d out of range", productdomain.ErrCorruptData, row.ID, row.Quantity)
	}
	quantity, err := models.NewQuantity(uint32(row.Quantity))
	if err != nil {
		return models.StashItem{}, fmt.Errorf("%w: stash item %s: %w", productdomain.ErrCorruptData, row.ID, err)
	}
	return models.NewStashItem(row.ID, quantity, civil.DateOf(row.ExpiryDate)), nil
}

func nullDate(d *civil.Date) sql.NullTime {
	if d == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: d.In(time.UTC), Valid: true}
}

// storeError classifies a failure of a store operation. Domain errors raised
// inside the transaction pass through; a unique violation on the expiry date
// constraint becomes ErrDuplicateExpiryDate; anything else is ErrPersistence.
func storeError(err error) error {
	if err == nil {
		return nil
	}
	for _, known := range []error{
		productdomain.ErrCorruptData,
		productdomain.ErrStashItemExists,
		productdomain.ErrInvalidDateInterval,
	} {
		if errors.Is(err, known) {
			return err
		}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation && pgErr.ConstraintName == expiryDateConstraint {
		return fmt.Errorf("%w: %w", productdomain.ErrDuplicateExpiryDate, err)
	}
	return fmt.Errorf("%w: %w", productdomain.ErrPersistence, err)
}
