// Package services contains stateless domain services for the product bounded context.
// Domain services enforce business rules that operate purely on domain types
// and have zero external dependencies beyond stdlib and the domain layer.
package services

import (
	"fmt"
	"strings"
	"unicode"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"

	"github.com/ghuser/pantry/services/product/domain"
	"github.com/ghuser/pantry/services/product/domain/models"
)

// ValidateBrand enforces business rules for Brand beyond the non-empty check
// done by the Brand constructor.
//
// Business rules:
//   - Must not be only whitespace characters
//   - No control characters (Unicode category Cc)
func ValidateBrand(brand models.Brand) error {
	s := brand.String()

	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("brand must not be only whitespace")
	}

	for _, r := range s {
		if unicode.IsControl(r) {
			return fmt.Errorf("brand must not contain control characters")
		}
	}

	return nil
}

// ValidateStashItem checks a stash item built outside the aggregate before
// it is attached to a product.
func ValidateStashItem(item models.StashItem) error {
	if item.ID == uuid.Nil {
		return fmt.Errorf("%w: id must be set", domain.ErrInvalidStashItemID)
	}
	if item.Quantity == 0 {
		return fmt.Errorf("%w: must be greater than zero", domain.ErrInvalidQuantity)
	}
	if !item.ExpiryDate.IsValid() {
		return fmt.Errorf("%w: %s", domain.ErrInvalidExpiryDate, item.ExpiryDate)
	}
	return nil
}

// ValidateProductForSave performs cross-field validation on a fully-constructed
// Product aggregate before it is handed to the repository. It assumes the
// Product was built via models.NewProduct, so stash item uniqueness already
// holds, and adds the checks that span the value objects.
func ValidateProductForSave(p *models.Product) error {
	if p == nil {
		return fmt.Errorf("product cannot be nil")
	}

	if p.ID() == "" {
		return fmt.Errorf("%w: id must be set", domain.ErrInvalidProductID)
	}

	if p.Brand() == "" {
		return fmt.Errorf("%w: must be set", domain.ErrInvalidBrand)
	}
	if err := ValidateBrand(p.Brand()); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidBrand, err)
	}

	seen := make(map[civil.Date]uuid.UUID)
	for _, item := range p.StashItems() {
		if err := ValidateStashItem(item); err != nil {
			return fmt.Errorf("stash item %s: %w", item.ID, err)
		}
		if other, ok := seen[item.ExpiryDate]; ok {
			return fmt.Errorf("%w: %s and %s", domain.ErrDuplicateExpiryDate, other, item.ID)
		}
		seen[item.ExpiryDate] = item.ID
	}

	return nil
}
