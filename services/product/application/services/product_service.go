package services

import (
	"context"
	"fmt"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"

	"github.com/ghuser/pantry/pkg/logger"
	productdomain "github.com/ghuser/pantry/services/product/domain"
	"github.com/ghuser/pantry/services/product/domain/models"
	"github.com/ghuser/pantry/services/product/domain/repositories"
	domainsvcs "github.com/ghuser/pantry/services/product/domain/services"
)

// ProductService runs the product use cases. Every mutation loads the
// aggregate, changes it in memory and hands the whole product back to the
// repository, which reconciles storage in one transaction.
type ProductService struct {
	repo repositories.ProductRepository
	log  logger.Logger
}

// NewProductService returns a ProductService wired with the given repository.
func NewProductService(repo repositories.ProductRepository, log logger.Logger) *ProductService {
	return &ProductService{repo: repo, log: log}
}

// Get returns the product with the given ID or ErrProductNotFound.
func (s *ProductService) Get(ctx context.Context, id models.ProductID) (*models.Product, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	if p == nil {
		return nil, fmt.Errorf("%w: %s", productdomain.ErrProductNotFound, id)
	}
	return p, nil
}

// List returns every product.
func (s *ProductService) List(ctx context.Context) ([]*models.Product, error) {
	products, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// Create stores a new product together with its initial stash items.
func (s *ProductService) Create(ctx context.Context, p *models.Product) error {
	if err := domainsvcs.ValidateProductForSave(p); err != nil {
		return fmt.Errorf("create product: %w", err)
	}

	exists, err := s.repo.ExistsByID(ctx, p.ID())
	if err != nil {
		return fmt.Errorf("check product: %w", err)
	}
	if exists {
		return fmt.Errorf("%w: %s", productdomain.ErrProductAlreadyExists, p.ID())
	}

	if err := s.repo.Save(ctx, p); err != nil {
		return fmt.Errorf("save product: %w", err)
	}
	s.log.InfoContext(ctx, "product created", "product_id", p.ID(), "stash_items", len(p.StashItems()))
	return nil
}

// Update replaces the brand and name of an existing product. Its stash items
// are left untouched.
func (s *ProductService) Update(ctx context.Context, id models.ProductID, brand models.Brand, name string) (*models.Product, error) {
	if err := domainsvcs.ValidateBrand(brand); err != nil {
		return nil, fmt.Errorf("%w: %w", productdomain.ErrInvalidBrand, err)
	}

	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	p.SetBrand(brand)
	p.SetName(name)

	if err := s.repo.Save(ctx, p); err != nil {
		return nil, fmt.Errorf("save product: %w", err)
	}
	s.log.InfoContext(ctx, "product updated", "product_id", id)
	return p, nil
}

// Delete removes a product and its stash items. Deleting a missing product
// succeeds.
func (s *ProductService) Delete(ctx context.Context, id models.ProductID) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	s.log.InfoContext(ctx, "product deleted", "product_id", id)
	return nil
}

// StashItems returns the stash items of a product.
func (s *ProductService) StashItems(ctx context.Context, productID models.ProductID) ([]models.StashItem, error) {
	p, err := s.Get(ctx, productID)
	if err != nil {
		return nil, err
	}
	return p.StashItems(), nil
}

// AddStashItem attaches a new stash item to a product.
func (s *ProductService) AddStashItem(ctx context.Context, productID models.ProductID, item models.StashItem) (*models.Product, error) {
	return s.mutate(ctx, productID, "stash item added", item.ID, func(p *models.Product) error {
		if err := domainsvcs.ValidateStashItem(item); err != nil {
			return err
		}
		return p.AddStashItem(item)
	})
}

// UpdateStashItem replaces the quantity and expiry date of a stash item.
func (s *ProductService) UpdateStashItem(ctx context.Context, productID models.ProductID, item models.StashItem) (*models.Product, error) {
	return s.mutate(ctx, productID, "stash item updated", item.ID, func(p *models.Product) error {
		if err := domainsvcs.ValidateStashItem(item); err != nil {
			return err
		}
		return p.UpdateStashItem(item)
	})
}

// RemoveStashItem detaches a stash item from a product.
func (s *ProductService) RemoveStashItem(ctx context.Context, productID models.ProductID, stashItemID uuid.UUID) (*models.Product, error) {
	return s.mutate(ctx, productID, "stash item removed", stashItemID, func(p *models.Product) error {
		_, err := p.RemoveStashItem(stashItemID)
		return err
	})
}

// GetByStashItemID returns the product owning the stash item or ErrProductNotFound.
func (s *ProductService) GetByStashItemID(ctx context.Context, stashItemID uuid.UUID) (*models.Product, error) {
	p, err := s.repo.FindByStashItemID(ctx, stashItemID)
	if err != nil {
		return nil, fmt.Errorf("find product by stash item: %w", err)
	}
	if p == nil {
		return nil, fmt.Errorf("%w: no product holds stash item %s", productdomain.ErrProductNotFound, stashItemID)
	}
	return p, nil
}

// ExpiringInInterval returns the products with a stash item expiring in
// [after, before). At least one bound is required.
func (s *ProductService) ExpiringInInterval(ctx context.Context, after, before *civil.Date) ([]*models.Product, error) {
	if after == nil && before == nil {
		return nil, productdomain.ErrInvalidDateInterval
	}
	products, err := s.repo.FindExpiringInInterval(ctx, after, before)
	if err != nil {
		return nil, fmt.Errorf("find expiring products: %w", err)
	}
	return products, nil
}

func (s *ProductService) mutate(ctx context.Context, productID models.ProductID, msg string, stashItemID uuid.UUID, fn func(*models.Product) error) (*models.Product, error) {
	p, err := s.Get(ctx, productID)
	if err != nil {
		return nil, err
	}
	if err := fn(p); err != nil {
		return nil, fmt.Errorf("product %s: %w", productID, err)
	}
	if err := s.repo.Save(ctx, p); err != nil {
		return nil, fmt.Errorf("save product: %w", err)
	}
	s.log.InfoContext(ctx, msg, "product_id", productID, "stash_item_id", stashItemID)
	return p, nil
}
