package handlers

import (
	"net/http"

	"cloud.google.com/go/civil"
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/pantry/pkg/errhttp"
	"github.com/ghuser/pantry/pkg/httpx"
	pkgvalidator "github.com/ghuser/pantry/pkg/validator"
	appsvcs "github.com/ghuser/pantry/services/product/application/services"
	productdomain "github.com/ghuser/pantry/services/product/domain"
	"github.com/ghuser/pantry/services/product/domain/models"
)

// ProductHandler serves the /products endpoints.
type ProductHandler struct {
	svc *appsvcs.Services
}

// NewProductHandler returns a ProductHandler backed by the given services.
func NewProductHandler(svc *appsvcs.Services) *ProductHandler {
	return &ProductHandler{svc: svc}
}

// Create creates a product with its initial stash items.
//
//	@Summary		Create product
//	@Description	Creates a product, optionally with stash items
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateProductRequest	true	"Product creation request"
//	@Success		201		{object}	ProductResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/products [post]
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateProductRequest](w, r)
	if !ok {
		return
	}

	p, err := req.toModel()
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	if err := h.svc.Product.Create(r.Context(), p); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toProductResponse(p))
}

// List returns every product.
//
//	@Summary	List products
//	@Tags		products
//	@Produce	json
//	@Success	200	{array}		ProductResponse
//	@Failure	500	{object}	ErrorResponse
//	@Router		/products [get]
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.svc.Product.List(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toProductResponses(products))
}

// Get returns a single product.
//
//	@Summary	Get product
//	@Tags		products
//	@Produce	json
//	@Param		productID	path		string	true	"Product ID"
//	@Success	200			{object}	ProductResponse
//	@Failure	404			{object}	ErrorResponse
//	@Router		/products/{productID} [get]
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := productIDParam(r)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	p, err := h.svc.Product.Get(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toProductResponse(p))
}

// Update replaces the brand and name of a product.
//
//	@Summary	Update product
//	@Tags		products
//	@Accept		json
//	@Produce	json
//	@Param		productID	path		string					true	"Product ID"
//	@Param		request		body		UpdateProductRequest	true	"Product update request"
//	@Success	200			{object}	ProductResponse
//	@Failure	400			{object}	ErrorResponse
//	@Failure	404			{object}	ErrorResponse
//	@Failure	422			{object}	ErrorResponse
//	@Router		/products/{productID} [put]
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := productIDParam(r)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	req, ok := pkgvalidator.ValidateRequest[UpdateProductRequest](w, r)
	if !ok {
		return
	}
	if req.ID != "" && req.ID != id.String() {
		errhttp.WriteError(w, productdomain.ErrProductIDMismatch)
		return
	}
	brand, err := models.NewBrand(req.Brand)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	p, err := h.svc.Product.Update(r.Context(), id, brand, req.Name)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toProductResponse(p))
}

// Delete removes a product and its stash items.
//
//	@Summary	Delete product
//	@Tags		products
//	@Param		productID	path	string	true	"Product ID"
//	@Success	204
//	@Failure	500	{object}	ErrorResponse
//	@Router		/products/{productID} [delete]
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := productIDParam(r)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	if err := h.svc.Product.Delete(r.Context(), id); err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.NoContent(w)
}

// Expiring returns the products with a stash item expiring in [after, before).
//
//	@Summary		List expiring products
//	@Description	At least one of after and before is required. after is inclusive, before is exclusive.
//	@Tags			products
//	@Produce		json
//	@Param			after	query		string	false	"Inclusive lower bound (YYYY-MM-DD)"
//	@Param			before	query		string	false	"Exclusive upper bound (YYYY-MM-DD)"
//	@Success		200		{array}		ProductResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/products/expiring [get]
func (h *ProductHandler) Expiring(w http.ResponseWriter, r *http.Request) {
	after, err := dateQuery(r, "after")
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	before, err := dateQuery(r, "before")
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	products, err := h.svc.Product.ExpiringInInterval(r.Context(), after, before)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toProductResponses(products))
}

// ByStashItemID returns the product that owns a stash item.
//
//	@Summary	Get product by stash item
//	@Tags		products
//	@Produce	json
//	@Param		stashItemID	path		string	true	"Stash item ID (UUID)"
//	@Success	200			{object}	ProductResponse
//	@Failure	404			{object}	ErrorResponse
//	@Failure	422			{object}	ErrorResponse
//	@Router		/products/by_stash_item_id/{stashItemID} [get]
func (h *ProductHandler) ByStashItemID(w http.ResponseWriter, r *http.Request) {
	stashItemID, err := models.ParseStashItemID(chi.URLParam(r, "stashItemID"))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	p, err := h.svc.Product.GetByStashItemID(r.Context(), stashItemID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toProductResponse(p))
}

func productIDParam(r *http.Request) (models.ProductID, error) {
	return models.NewProductID(chi.URLParam(r, "productID"))
}

// dateQuery parses an optional YYYY-MM-DD query parameter.
func dateQuery(r *http.Request, key string) (*civil.Date, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil, nil
	}
	d, err := models.ParseExpiryDate(raw)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
