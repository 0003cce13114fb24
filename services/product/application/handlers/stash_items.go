package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/pantry/pkg/errhttp"
	"github.com/ghuser/pantry/pkg/httpx"
	pkgvalidator "github.com/ghuser/pantry/pkg/validator"
	appsvcs "github.com/ghuser/pantry/services/product/application/services"
	"github.com/ghuser/pantry/services/product/domain/models"
)

// StashItemHandler serves the /products/{productID}/stash_items endpoints.
type StashItemHandler struct {
	svc *appsvcs.Services
}

// NewStashItemHandler returns a StashItemHandler backed by the given services.
func NewStashItemHandler(svc *appsvcs.Services) *StashItemHandler {
	return &StashItemHandler{svc: svc}
}

// List returns the stash items of a product, ordered by expiry date.
//
//	@Summary	List stash items
//	@Tags		stash_items
//	@Produce	json
//	@Param		productID	path		string	true	"Product ID"
//	@Success	200			{array}		StashItemResponse
//	@Failure	404			{object}	ErrorResponse
//	@Router		/products/{productID}/stash_items [get]
func (h *StashItemHandler) List(w http.ResponseWriter, r *http.Request) {
	productID, err := productIDParam(r)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	items, err := h.svc.Product.StashItems(r.Context(), productID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toStashItemResponses(items))
}

// Add attaches a stash item to a product.
//
//	@Summary	Add stash item
//	@Tags		stash_items
//	@Accept		json
//	@Produce	json
//	@Param		productID	path		string				true	"Product ID"
//	@Param		request		body		StashItemRequest	true	"Stash item"
//	@Success	201			{object}	StashItemResponse
//	@Failure	404			{object}	ErrorResponse
//	@Failure	409			{object}	ErrorResponse
//	@Failure	422			{object}	ErrorResponse
//	@Router		/products/{productID}/stash_items [post]
func (h *StashItemHandler) Add(w http.ResponseWriter, r *http.Request) {
	productID, err := productIDParam(r)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	req, ok := pkgvalidator.ValidateRequest[StashItemRequest](w, r)
	if !ok {
		return
	}
	item, err := req.toModel()
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	if _, err := h.svc.Product.AddStashItem(r.Context(), productID, item); err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, toStashItemResponses([]models.StashItem{item})[0])
}

// Update replaces the quantity and expiry date of a stash item.
//
//	@Summary	Update stash item
//	@Tags		stash_items
//	@Accept		json
//	@Produce	json
//	@Param		productID	path		string					true	"Product ID"
//	@Param		stashItemID	path		string					true	"Stash item ID (UUID)"
//	@Param		request		body		UpdateStashItemRequest	true	"Stash item update"
//	@Success	200			{object}	StashItemResponse
//	@Failure	404			{object}	ErrorResponse
//	@Failure	409			{object}	ErrorResponse
//	@Failure	422			{object}	ErrorResponse
//	@Router		/products/{productID}/stash_items/{stashItemID} [put]
func (h *StashItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	productID, err := productIDParam(r)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	stashItemID, err := models.ParseStashItemID(chi.URLParam(r, "stashItemID"))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	req, ok := pkgvalidator.ValidateRequest[UpdateStashItemRequest](w, r)
	if !ok {
		return
	}
	item, err := stashItem(stashItemID, req.Quantity, req.ExpiryDate)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	if _, err := h.svc.Product.UpdateStashItem(r.Context(), productID, item); err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toStashItemResponses([]models.StashItem{item})[0])
}

// Remove detaches a stash item from a product.
//
//	@Summary	Remove stash item
//	@Tags		stash_items
//	@Param		productID	path	string	true	"Product ID"
//	@Param		stashItemID	path	string	true	"Stash item ID (UUID)"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Failure	422	{object}	ErrorResponse
//	@Router		/products/{productID}/stash_items/{stashItemID} [delete]
func (h *StashItemHandler) Remove(w http.ResponseWriter, r *http.Request) {
	productID, err := productIDParam(r)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	stashItemID, err := models.ParseStashItemID(chi.URLParam(r, "stashItemID"))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	if _, err := h.svc.Product.RemoveStashItem(r.Context(), productID, stashItemID); err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.NoContent(w)
}
