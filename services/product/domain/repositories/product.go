package repositories

import (
	"context"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"

	"github.com/ghuser/pantry/services/product/domain/models"
)

// ProductRepository is the persistence interface for the Product aggregate.
// The domain layer owns this interface; infrastructure implements it.
//
// Read methods return a nil product (not an error) when nothing matches.
type ProductRepository interface {
	// FindAll returns every product with its stash items.
	FindAll(ctx context.Context) ([]*models.Product, error)

	FindByID(ctx context.Context, id models.ProductID) (*models.Product, error)

	// FindByIDs returns the subset of the given products that exist.
	FindByIDs(ctx context.Context, ids []models.ProductID) ([]*models.Product, error)

	// FindByStashItemID returns the product owning the given stash item.
	FindByStashItemID(ctx context.Context, stashItemID uuid.UUID) (*models.Product, error)

	// FindExpiringInInterval returns products with at least one stash item
	// expiring in [after, before). At least one bound must be non-nil.
	FindExpiringInInterval(ctx context.Context, after, before *civil.Date) ([]*models.Product, error)

	ExistsByID(ctx context.Context, id models.ProductID) (bool, error)

	// Save makes storage match the product and all of its stash items in one
	// transaction, inserting, updating and deleting stash item rows as needed.
	Save(ctx context.Context, product *models.Product) error

	// DeleteByID removes a product and its stash items. Deleting a missing
	// product is not an error.
	DeleteByID(ctx context.Context, id models.ProductID) error
}
