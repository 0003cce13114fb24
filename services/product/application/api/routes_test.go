package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"

	"cloud.google.com/go/civil"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/pantry/pkg/logger"
	"github.com/ghuser/pantry/services/product/application/handlers"
	appsvcs "github.com/ghuser/pantry/services/product/application/services"
	productdomain "github.com/ghuser/pantry/services/product/domain"
	"github.com/ghuser/pantry/services/product/domain/models"
)

// memoryRepository keeps products in memory, copying on every read and write.
type memoryRepository struct {
	mu       sync.Mutex
	products map[models.ProductID]*models.Product
}

func copyProduct(p *models.Product) *models.Product {
	c, err := models.NewProduct(p.ID(), p.Brand(), p.Name(), p.StashItems())
	if err != nil {
		panic(err)
	}
	return c
}

func (m *memoryRepository) all() []*models.Product {
	out := make([]*models.Product, 0, len(m.products))
	for _, p := range m.products {
		out = append(out, copyProduct(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}

func (m *memoryRepository) FindAll(context.Context) ([]*models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.all(), nil
}

func (m *memoryRepository) FindByID(_ context.Context, id models.ProductID) (*models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.products[id]; ok {
		return copyProduct(p), nil
	}
	return nil, nil
}

func (m *memoryRepository) FindByIDs(ctx context.Context, ids []models.ProductID) ([]*models.Product, error) {
	var out []*models.Product
	for _, id := range ids {
		if p, _ := m.FindByID(ctx, id); p != nil {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memoryRepository) FindByStashItemID(_ context.Context, id uuid.UUID) (*models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.products {
		if p.HasStashItem(id) {
			return copyProduct(p), nil
		}
	}
	return nil, nil
}

func (m *memoryRepository) FindExpiringInInterval(_ context.Context, after, before *civil.Date) ([]*models.Product, error) {
	if after == nil && before == nil {
		return nil, productdomain.ErrInvalidDateInterval
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*models.Product
	for _, p := range m.all() {
		for _, item := range p.StashItems() {
			if (after == nil || !item.ExpiryDate.Before(*after)) && (before == nil || item.ExpiryDate.Before(*before)) {
				out = append(out, p)
				break
			}
		}
	}
	return out, nil
}

func (m *memoryRepository) ExistsByID(_ context.Context, id models.ProductID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.products[id]
	return ok, nil
}

func (m *memoryRepository) Save(_ context.Context, p *models.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.products[p.ID()] = copyProduct(p)
	return nil
}

func (m *memoryRepository) DeleteByID(_ context.Context, id models.ProductID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.products, id)
	return nil
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	repo := &memoryRepository{products: make(map[models.ProductID]*models.Product)}
	svcs := &appsvcs.Services{Product: appsvcs.NewProductService(repo, logger.NewNop())}
	r := chi.NewRouter()
	Routes(r, svcs)
	return r
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, http.NoBody)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rr.Body).Decode(&v); err != nil {
		t.Fatalf("decode %q: %v", rr.Body.String(), err)
	}
	return v
}

const (
	itemA = "11111111-1111-1111-1111-111111111111"
	itemB = "22222222-2222-2222-2222-222222222222"
)

func createP1(t *testing.T, h http.Handler) {
	t.Helper()
	body := `{"id":"P1","brand":"Acme","name":"Widget","stash_items":[
		{"id":"` + itemA + `","quantity":2,"expiry_date":"2024-01-01"},
		{"id":"` + itemB + `","quantity":1,"expiry_date":"2024-03-01"}]}`
	if rr := do(t, h, http.MethodPost, "/products", body); rr.Code != http.StatusCreated {
		t.Fatalf("create P1: %d %s", rr.Code, rr.Body.String())
	}
}

func TestProductRoutes_CreateAndGet(t *testing.T) {
	h := newTestRouter(t)
	createP1(t, h)

	rr := do(t, h, http.MethodGet, "/products/P1", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	p := decode[handlers.ProductResponse](t, rr)
	if p.ID != "P1" || p.Brand != "Acme" || p.Name != "Widget" {
		t.Fatalf("unexpected product: %+v", p)
	}
	if len(p.StashItems) != 2 || p.StashItems[0].ExpiryDate != "2024-01-01" || p.StashItems[0].Quantity != 2 {
		t.Fatalf("unexpected stash items: %+v", p.StashItems)
	}
}

func TestProductRoutes_CreateErrors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{"malformed json", `{"id":`, http.StatusBadRequest},
		{"missing brand", `{"id":"P2"}`, http.StatusUnprocessableEntity},
		{"bad expiry date", `{"id":"P2","brand":"Acme","stash_items":[{"quantity":1,"expiry_date":"2024-13-01"}]}`, http.StatusUnprocessableEntity},
		{"zero quantity", `{"id":"P2","brand":"Acme","stash_items":[{"quantity":0,"expiry_date":"2024-01-01"}]}`, http.StatusUnprocessableEntity},
		{"duplicate expiry dates", `{"id":"P2","brand":"Acme","stash_items":[{"quantity":1,"expiry_date":"2024-01-01"},{"quantity":2,"expiry_date":"2024-01-01"}]}`, http.StatusConflict},
		{"already exists", `{"id":"P1","brand":"Acme"}`, http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestRouter(t)
			createP1(t, h)
			rr := do(t, h, http.MethodPost, "/products", tt.body)
			if rr.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d: %s", tt.wantStatus, rr.Code, rr.Body.String())
			}
		})
	}
}

func TestProductRoutes_List(t *testing.T) {
	h := newTestRouter(t)
	createP1(t, h)

	rr := do(t, h, http.MethodGet, "/products", "")
	products := decode[[]handlers.ProductResponse](t, rr)
	if rr.Code != http.StatusOK || len(products) != 1 {
		t.Fatalf("unexpected response: %d %+v", rr.Code, products)
	}
}

func TestProductRoutes_Update(t *testing.T) {
	h := newTestRouter(t)
	createP1(t, h)

	rr := do(t, h, http.MethodPut, "/products/P1", `{"brand":"Globex","name":"Gadget"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	p := decode[handlers.ProductResponse](t, rr)
	if p.Brand != "Globex" || len(p.StashItems) != 2 {
		t.Fatalf("unexpected product: %+v", p)
	}

	if rr := do(t, h, http.MethodPut, "/products/P1", `{"id":"P9","brand":"Globex"}`); rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 on id mismatch, got %d", rr.Code)
	}
	if rr := do(t, h, http.MethodPut, "/products/P9", `{"brand":"Globex"}`); rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}

func TestProductRoutes_Delete(t *testing.T) {
	h := newTestRouter(t)
	createP1(t, h)

	if rr := do(t, h, http.MethodDelete, "/products/P1", ""); rr.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rr.Code)
	}
	if rr := do(t, h, http.MethodGet, "/products/P1", ""); rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", rr.Code)
	}
	if rr := do(t, h, http.MethodDelete, "/products/P1", ""); rr.Code != http.StatusNoContent {
		t.Fatalf("expected 204 deleting again, got %d", rr.Code)
	}
}

func TestProductRoutes_Expiring(t *testing.T) {
	h := newTestRouter(t)
	createP1(t, h)

	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantCount  int
	}{
		{"after only", "?after=2024-03-01", http.StatusOK, 1},
		{"before is exclusive", "?before=2024-01-01", http.StatusOK, 0},
		{"both bounds", "?after=2024-01-02&before=2024-02-01", http.StatusOK, 0},
		{"no bounds", "", http.StatusBadRequest, 0},
		{"bad date", "?after=yesterday", http.StatusUnprocessableEntity, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := do(t, h, http.MethodGet, "/products/expiring"+tt.query, "")
			if rr.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d: %s", tt.wantStatus, rr.Code, rr.Body.String())
			}
			if rr.Code == http.StatusOK {
				if got := decode[[]handlers.ProductResponse](t, rr); len(got) != tt.wantCount {
					t.Fatalf("expected %d products, got %d", tt.wantCount, len(got))
				}
			}
		})
	}
}

func TestProductRoutes_ByStashItemID(t *testing.T) {
	h := newTestRouter(t)
	createP1(t, h)

	rr := do(t, h, http.MethodGet, "/products/by_stash_item_id/"+itemB, "")
	if rr.Code != http.StatusOK || decode[handlers.ProductResponse](t, rr).ID != "P1" {
		t.Fatalf("expected P1, got %d", rr.Code)
	}
	if rr := do(t, h, http.MethodGet, "/products/by_stash_item_id/"+uuid.NewString(), ""); rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
	if rr := do(t, h, http.MethodGet, "/products/by_stash_item_id/not-a-uuid", ""); rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rr.Code)
	}
}

func TestStashItemRoutes(t *testing.T) {
	h := newTestRouter(t)
	createP1(t, h)

	t.Run("list", func(t *testing.T) {
		rr := do(t, h, http.MethodGet, "/products/P1/stash_items", "")
		items := decode[[]handlers.StashItemResponse](t, rr)
		if len(items) != 2 || items[0].ID.String() != itemA {
			t.Fatalf("unexpected items: %+v", items)
		}
	})

	t.Run("add", func(t *testing.T) {
		rr := do(t, h, http.MethodPost, "/products/P1/stash_items", `{"quantity":4,"expiry_date":"2024-05-01"}`)
		if rr.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
		}
		if item := decode[handlers.StashItemResponse](t, rr); item.ID == uuid.Nil || item.Quantity != 4 {
			t.Fatalf("unexpected item: %+v", item)
		}
	})

	t.Run("add duplicate expiry date", func(t *testing.T) {
		rr := do(t, h, http.MethodPost, "/products/P1/stash_items", `{"quantity":1,"expiry_date":"2024-01-01"}`)
		if rr.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rr.Code)
		}
	})

	t.Run("add to missing product", func(t *testing.T) {
		rr := do(t, h, http.MethodPost, "/products/P9/stash_items", `{"quantity":1,"expiry_date":"2024-01-01"}`)
		if rr.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rr.Code)
		}
	})

	t.Run("update", func(t *testing.T) {
		rr := do(t, h, http.MethodPut, "/products/P1/stash_items/"+itemA, `{"quantity":9,"expiry_date":"2024-02-01"}`)
		if rr.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
		}
		if item := decode[handlers.StashItemResponse](t, rr); item.Quantity != 9 || item.ExpiryDate != "2024-02-01" {
			t.Fatalf("unexpected item: %+v", item)
		}
	})

	t.Run("update onto a taken date", func(t *testing.T) {
		rr := do(t, h, http.MethodPut, "/products/P1/stash_items/"+itemA, `{"quantity":9,"expiry_date":"2024-03-01"}`)
		if rr.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rr.Code)
		}
	})

	t.Run("update unknown item", func(t *testing.T) {
		rr := do(t, h, http.MethodPut, "/products/P1/stash_items/"+uuid.NewString(), `{"quantity":1,"expiry_date":"2025-01-01"}`)
		if rr.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rr.Code)
		}
	})

	t.Run("remove", func(t *testing.T) {
		if rr := do(t, h, http.MethodDelete, "/products/P1/stash_items/"+itemB, ""); rr.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", rr.Code)
		}
		if rr := do(t, h, http.MethodDelete, "/products/P1/stash_items/"+itemB, ""); rr.Code != http.StatusNotFound {
			t.Fatalf("expected 404 removing twice, got %d", rr.Code)
		}
	})
}
