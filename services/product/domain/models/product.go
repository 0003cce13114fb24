package models

import (
	"fmt"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"

	"github.com/ghuser/pantry/services/product/domain"
)

// Product is the core aggregate for this bounded context. It owns its stash
// items and guarantees that no two of them share an ID or an expiry date.
// All changes to the item collection go through its methods.
type Product struct {
	id         ProductID
	brand      Brand
	name       string
	stashItems map[uuid.UUID]StashItem
}

// NewProduct constructs a Product and attaches items one by one through
// AddStashItem. Construction fails if the initial items collide.
func NewProduct(id ProductID, brand Brand, name string, items []StashItem) (*Product, error) {
	p := &Product{
		id:         id,
		brand:      brand,
		name:       name,
		stashItems: make(map[uuid.UUID]StashItem, len(items)),
	}
	for _, item := range items {
		if err := p.AddStashItem(item); err != nil {
			return nil, fmt.Errorf("new product %s: %w", id, err)
		}
	}
	return p, nil
}

// ID returns the product identifier.
func (p *Product) ID() ProductID { return p.id }

// Brand returns the product brand.
func (p *Product) Brand() Brand { return p.brand }

// Name returns the display name.
func (p *Product) Name() string { return p.name }

// SetBrand replaces the brand.
func (p *Product) SetBrand(b Brand) { p.brand = b }

// SetName replaces the display name.
func (p *Product) SetName(name string) { p.name = name }

// StashItems returns a snapshot of the product's stash items. Order is not
// defined; callers must not depend on it.
func (p *Product) StashItems() []StashItem {
	items := make([]StashItem, 0, len(p.stashItems))
	for _, item := range p.stashItems {
		items = append(items, item)
	}
	return items
}

// StashItemIDs returns the identities of all stash items, in no particular order.
func (p *Product) StashItemIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(p.stashItems))
	for id := range p.stashItems {
		ids = append(ids, id)
	}
	return ids
}

// StashItem looks up a stash item by ID.
func (p *Product) StashItem(id uuid.UUID) (StashItem, bool) {
	item, ok := p.stashItems[id]
	return item, ok
}

// HasStashItem reports whether a stash item with the given ID is attached.
func (p *Product) HasStashItem(id uuid.UUID) bool {
	_, ok := p.stashItems[id]
	return ok
}

// StashItemByExpiryDate returns the stash item expiring on d, if any.
func (p *Product) StashItemByExpiryDate(d civil.Date) (StashItem, bool) {
	for _, item := range p.stashItems {
		if item.ExpiryDate == d {
			return item, true
		}
	}
	return StashItem{}, false
}

// AddStashItem attaches a new stash item.
// Returns ErrStashItemExists if the ID is taken and ErrDuplicateExpiryDate if
// any other item already expires on the same date.
func (p *Product) AddStashItem(item StashItem) error {
	if p.HasStashItem(item.ID) {
		return fmt.Errorf("%w: %s", domain.ErrStashItemExists, item.ID)
	}
	if _, taken := p.StashItemByExpiryDate(item.ExpiryDate); taken {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateExpiryDate, item.ExpiryDate)
	}
	p.stashItems[item.ID] = item
	return nil
}

// RemoveStashItem detaches and returns the stash item with the given ID.
// Returns ErrStashItemDoesntExist if there is none.
func (p *Product) RemoveStashItem(id uuid.UUID) (StashItem, error) {
	item, ok := p.stashItems[id]
	if !ok {
		return StashItem{}, fmt.Errorf("%w: %s", domain.ErrStashItemDoesntExist, id)
	}
	delete(p.stashItems, id)
	return item, nil
}

// UpdateStashItem replaces the stash item that has item.ID.
// Returns ErrStashItemNotFound if there is none, and ErrDuplicateExpiryDate if
// another item already expires on item.ExpiryDate. On failure the product is
// left exactly as it was.
func (p *Product) UpdateStashItem(item StashItem) error {
	previous, err := p.RemoveStashItem(item.ID)
	if err != nil {
		return fmt.Errorf("%w: %s", domain.ErrStashItemNotFound, item.ID)
	}
	if err := p.AddStashItem(item); err != nil {
		p.stashItems[previous.ID] = previous
		return err
	}
	return nil
}

// Equal reports whether two products have the same id, brand, name and
// exactly the same set of stash items.
func (p *Product) Equal(other *Product) bool {
	if p == nil || other == nil {
		return p == other
	}
	if p.id != other.id || p.brand != other.brand || p.name != other.name {
		return false
	}
	if len(p.stashItems) != len(other.stashItems) {
		return false
	}
	for id, item := range p.stashItems {
		if o, ok := other.stashItems[id]; !ok || o != item {
			return false
		}
	}
	return true
}
