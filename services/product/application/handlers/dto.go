package handlers

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/ghuser/pantry/services/product/domain/models"
)

// StashItemRequest describes a stash item in a create or add request.
// ID is optional; a new UUID is assigned when it is empty.
type StashItemRequest struct {
	ID         string `json:"id,omitempty" validate:"omitempty,uuid"                 example:"123e4567-e89b-12d3-a456-426614174000"`
	Quantity   uint32 `json:"quantity"     validate:"required,gte=1"                 example:"2"`
	ExpiryDate string `json:"expiry_date"  validate:"required,datetime=2006-01-02"   example:"2024-01-01"`
} // @name StashItemRequest

// UpdateStashItemRequest is the request body for PUT /products/{productID}/stash_items/{stashItemID}.
type UpdateStashItemRequest struct {
	Quantity   uint32 `json:"quantity"    validate:"required,gte=1"               example:"3"`
	ExpiryDate string `json:"expiry_date" validate:"required,datetime=2006-01-02" example:"2024-02-01"`
} // @name UpdateStashItemRequest

// CreateProductRequest is the request body for POST /products.
type CreateProductRequest struct {
	ID         string             `json:"id"          validate:"required,max=255" example:"4006381333931"`
	Brand      string             `json:"brand"       validate:"required,max=255" example:"Acme"`
	Name       string             `json:"name"        validate:"max=255"          example:"Peanut butter"`
	StashItems []StashItemRequest `json:"stash_items" validate:"dive"`
} // @name CreateProductRequest

// UpdateProductRequest is the request body for PUT /products/{productID}.
// ID may be omitted; when present it must match the path.
type UpdateProductRequest struct {
	ID    string `json:"id,omitempty" validate:"max=255"          example:"4006381333931"`
	Brand string `json:"brand"        validate:"required,max=255" example:"Acme"`
	Name  string `json:"name"         validate:"max=255"          example:"Peanut butter"`
} // @name UpdateProductRequest

// StashItemResponse is the JSON form of a stash item.
type StashItemResponse struct {
	ID         uuid.UUID `json:"id"          example:"123e4567-e89b-12d3-a456-426614174000"`
	Quantity   uint32    `json:"quantity"    example:"2"`
	ExpiryDate string    `json:"expiry_date" example:"2024-01-01"`
} // @name StashItemResponse

// ProductResponse is the JSON form of a product and its stash items.
type ProductResponse struct {
	ID         string              `json:"id"          example:"4006381333931"`
	Brand      string              `json:"brand"       example:"Acme"`
	Name       string              `json:"name"        example:"Peanut butter"`
	StashItems []StashItemResponse `json:"stash_items"`
} // @name ProductResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"product not found"`
} // @name ErrorResponse

func (req StashItemRequest) toModel() (models.StashItem, error) {
	id := uuid.New()
	if req.ID != "" {
		var err error
		if id, err = models.ParseStashItemID(req.ID); err != nil {
			return models.StashItem{}, err
		}
	}
	return stashItem(id, req.Quantity, req.ExpiryDate)
}

func (req CreateProductRequest) toModel() (*models.Product, error) {
	id, err := models.NewProductID(req.ID)
	if err != nil {
		return nil, err
	}
	brand, err := models.NewBrand(req.Brand)
	if err != nil {
		return nil, err
	}
	items := make([]models.StashItem, 0, len(req.StashItems))
	for i, itemReq := range req.StashItems {
		item, err := itemReq.toModel()
		if err != nil {
			return nil, fmt.Errorf("stash_items[%d]: %w", i, err)
		}
		items = append(items, item)
	}
	return models.NewProduct(id, brand, req.Name, items)
}

func stashItem(id uuid.UUID, quantity uint32, expiryDate string) (models.StashItem, error) {
	q, err := models.NewQuantity(quantity)
	if err != nil {
		return models.StashItem{}, err
	}
	d, err := models.ParseExpiryDate(expiryDate)
	if err != nil {
		return models.StashItem{}, err
	}
	return models.NewStashItem(id, q, d), nil
}

func toStashItemResponses(items []models.StashItem) []StashItemResponse {
	sort.Slice(items, func(i, j int) bool { return items[i].ExpiryDate.Before(items[j].ExpiryDate) })
	out := make([]StashItemResponse, len(items))
	for i, item := range items {
		out[i] = StashItemResponse{
			ID:         item.ID,
			Quantity:   item.Quantity.Uint32(),
			ExpiryDate: item.ExpiryDate.String(),
		}
	}
	return out
}

func toProductResponse(p *models.Product) ProductResponse {
	return ProductResponse{
		ID:         p.ID().String(),
		Brand:      p.Brand().String(),
		Name:       p.Name(),
		StashItems: toStashItemResponses(p.StashItems()),
	}
}

func toProductResponses(products []*models.Product) []ProductResponse {
	out := make([]ProductResponse, len(products))
	for i, p := range products {
		out[i] = toProductResponse(p)
	}
	return out
}
