package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gerai/storefront-service/internal/domain/catalog"
	"github.com/gerai/storefront-service/internal/pkg/logger"
)

func newTestAdminHandler(products ...*catalog.Product) (*AdminHandler, *fakeCatalog) {
	repo := &fakeCatalog{products: make(map[string]*catalog.Product)}
	for _, p := range products {
		repo.products[p.ID] = p
	}
	return NewAdminHandler(repo, logger.NewNopLogger()), repo
}

func TestHandleCreateProduct(t *testing.T) {
	h, repo := newTestAdminHandler()

	body := `{"name": "Kemeja Batik", "price": 39999, "sizes": ["S", "M"]}`
	req := httptest.NewRequest(http.MethodPost, "/admin/products", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.HandleCreateProduct(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, repo.products, 1)

	for _, p := range repo.products {
		assert.Equal(t, "kemeja-batik", p.Slug, "slug is derived from the name when omitted")
		assert.Equal(t, int64(39999), p.Price)
		assert.Equal(t, []string{"S", "M"}, p.Sizes)
		assert.False(t, p.CreatedAt.IsZero())
	}
}

func TestHandleCreateProductRejectsInvalidData(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing name", `{"price": 39999}`},
		{"negative price", `{"name": "Kemeja", "price": -1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, repo := newTestAdminHandler()

			req := httptest.NewRequest(http.MethodPost, "/admin/products", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			h.HandleCreateProduct(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Empty(t, repo.products)
		})
	}
}

func TestHandleUpdateProductPreservesIdentityFields(t *testing.T) {
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	h, repo := newTestAdminHandler(&catalog.Product{
		ID: "p1", Slug: "kemeja-lama", Name: "Kemeja Lama", Price: 1000, CreatedAt: created,
	})

	body := `{"name": "Kemeja Baru", "price": 2000}`
	req := httptest.NewRequest(http.MethodPut, "/admin/products/p1", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.HandleProduct(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	p := repo.products["p1"]
	require.NotNil(t, p)
	assert.Equal(t, "Kemeja Baru", p.Name)
	assert.Equal(t, int64(2000), p.Price)
	assert.Equal(t, "kemeja-lama", p.Slug, "slug is preserved when omitted")
	assert.Equal(t, created, p.CreatedAt)
}

func TestHandleUpdateProductUnknownID(t *testing.T) {
	h, _ := newTestAdminHandler()

	body := `{"name": "Kemeja", "price": 2000}`
	req := httptest.NewRequest(http.MethodPut, "/admin/products/missing", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.HandleProduct(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleDeleteProduct(t *testing.T) {
	h, repo := newTestAdminHandler(&catalog.Product{ID: "p1", Name: "Kemeja", Price: 1000})

	req := httptest.NewRequest(http.MethodDelete, "/admin/products/p1", nil)
	rec := httptest.NewRecorder()

	h.HandleProduct(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, repo.products)
}
