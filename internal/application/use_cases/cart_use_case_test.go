package use_cases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gerai/storefront-service/internal/application/ports"
	"github.com/gerai/storefront-service/internal/domain/cart"
	"github.com/gerai/storefront-service/internal/domain/catalog"
	"github.com/gerai/storefront-service/internal/domain/checkout"
	domainErrors "github.com/gerai/storefront-service/internal/domain/errors"
	"github.com/gerai/storefront-service/internal/pkg/logger"
)

type memCartStorage struct {
	slots map[string][]byte
}

func newMemCartStorage() *memCartStorage {
	return &memCartStorage{slots: make(map[string][]byte)}
}

func (m *memCartStorage) ForCart(cartID string) cart.Storage {
	return &memSlot{storage: m, key: cartID}
}

type memSlot struct {
	storage *memCartStorage
	key     string
}

func (s *memSlot) Load(ctx context.Context) ([]byte, error) {
	return s.storage.slots[s.key], nil
}

func (s *memSlot) Save(ctx context.Context, data []byte) error {
	s.storage.slots[s.key] = append([]byte(nil), data...)
	return nil
}

func (s *memSlot) Clear(ctx context.Context) error {
	delete(s.storage.slots, s.key)
	return nil
}

type fakeCatalogRepo struct {
	products map[string]*catalog.Product
}

func newFakeCatalogRepo(products ...*catalog.Product) *fakeCatalogRepo {
	repo := &fakeCatalogRepo{products: make(map[string]*catalog.Product)}
	for _, p := range products {
		repo.products[p.ID] = p
	}
	return repo
}

func (r *fakeCatalogRepo) ListProducts(ctx context.Context, filter ports.ProductFilter) ([]*catalog.Product, error) {
	var out []*catalog.Product
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeCatalogRepo) GetProductByID(ctx context.Context, id string) (*catalog.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, domainErrors.ErrProductNotFound
	}
	return p, nil
}

func (r *fakeCatalogRepo) GetProductBySlug(ctx context.Context, slug string) (*catalog.Product, error) {
	for _, p := range r.products {
		if p.Slug == slug {
			return p, nil
		}
	}
	return nil, domainErrors.ErrProductNotFound
}

func (r *fakeCatalogRepo) CreateProduct(ctx context.Context, p *catalog.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeCatalogRepo) UpdateProduct(ctx context.Context, p *catalog.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeCatalogRepo) DeleteProduct(ctx context.Context, id string) error {
	delete(r.products, id)
	return nil
}

func (r *fakeCatalogRepo) ListCategories(ctx context.Context) ([]string, error) {
	return nil, nil
}

var testShipping = checkout.ShippingPolicy{FreeThreshold: 200000, FlatFee: 20000}

func newTestCartUseCase(products ...*catalog.Product) (*CartUseCase, *memCartStorage) {
	storage := newMemCartStorage()
	uc := NewCartUseCase(newFakeCatalogRepo(products...), storage, testShipping, logger.NewNopLogger())
	return uc, storage
}

func TestAddToCartSnapshotsProduct(t *testing.T) {
	ctx := context.Background()
	uc, _ := newTestCartUseCase(&catalog.Product{
		ID: "p1", Name: "Kemeja Batik", Price: 39999, Category: "kemeja", IsNew: true,
	})

	view, err := uc.AddToCart(ctx, "cart-1", "p1", "", "", 1)
	require.NoError(t, err)

	require.Len(t, view.Lines, 1)
	assert.Equal(t, "Kemeja Batik", view.Lines[0].Name)
	assert.Equal(t, "kemeja", view.Lines[0].Category)
	assert.True(t, view.Lines[0].IsNew)
	assert.Equal(t, int64(39999), view.Subtotal)
	assert.Equal(t, int64(20000), view.ShippingCost)
	assert.Equal(t, int64(59999), view.Total)
}

func TestAddToCartUnknownProduct(t *testing.T) {
	uc, _ := newTestCartUseCase()

	_, err := uc.AddToCart(context.Background(), "cart-1", "missing", "", "", 1)
	assert.ErrorIs(t, err, domainErrors.ErrProductNotFound)
}

func TestAddToCartSignalsMissingSize(t *testing.T) {
	uc, storage := newTestCartUseCase(&catalog.Product{
		ID: "p1", Name: "Kaos", Price: 19999, Sizes: []string{"S", "M", "L"},
	})

	_, err := uc.AddToCart(context.Background(), "cart-1", "p1", "", "", 1)
	assert.ErrorIs(t, err, domainErrors.ErrSizeRequired)
	assert.Empty(t, storage.slots, "rejected add must not persist anything")
}

func TestAddToCartSignalsMissingColor(t *testing.T) {
	uc, _ := newTestCartUseCase(&catalog.Product{
		ID: "p1", Name: "Hijab", Price: 45000, Colors: []string{"Hitam", "Mocca"},
	})

	_, err := uc.AddToCart(context.Background(), "cart-1", "p1", "", "", 1)
	assert.ErrorIs(t, err, domainErrors.ErrColorRequired)
}

func TestCartSurvivesReload(t *testing.T) {
	ctx := context.Background()
	uc, _ := newTestCartUseCase(&catalog.Product{ID: "p1", Name: "A", Price: 10000})

	_, err := uc.AddToCart(ctx, "cart-1", "p1", "", "", 2)
	require.NoError(t, err)

	// A fresh view rehydrates from storage, as a page reload would.
	view, err := uc.GetCart(ctx, "cart-1")
	require.NoError(t, err)
	assert.Equal(t, 2, view.TotalItemCount)
	assert.Equal(t, int64(20000), view.Subtotal)
}

func TestCartsAreIsolatedByID(t *testing.T) {
	ctx := context.Background()
	uc, _ := newTestCartUseCase(&catalog.Product{ID: "p1", Name: "A", Price: 10000})

	_, err := uc.AddToCart(ctx, "cart-1", "p1", "", "", 1)
	require.NoError(t, err)

	view, err := uc.GetCart(ctx, "cart-2")
	require.NoError(t, err)
	assert.Empty(t, view.Lines)
}

func TestUpdateQuantityValidation(t *testing.T) {
	ctx := context.Background()
	uc, _ := newTestCartUseCase(&catalog.Product{ID: "p1", Name: "A", Price: 10000})

	_, err := uc.AddToCart(ctx, "cart-1", "p1", "", "", 3)
	require.NoError(t, err)

	_, err = uc.UpdateQuantity(ctx, "cart-1", "p1", 0)
	assert.ErrorIs(t, err, domainErrors.ErrInvalidQuantity)

	_, err = uc.UpdateQuantity(ctx, "cart-1", "missing", 2)
	assert.ErrorIs(t, err, domainErrors.ErrLineNotFound)

	view, err := uc.UpdateQuantity(ctx, "cart-1", "p1", 5)
	require.NoError(t, err)
	assert.Equal(t, 5, view.TotalItemCount)
}

func TestRemoveFromCartIsIdempotent(t *testing.T) {
	ctx := context.Background()
	uc, _ := newTestCartUseCase(&catalog.Product{ID: "p1", Name: "A", Price: 10000})

	_, err := uc.AddToCart(ctx, "cart-1", "p1", "", "", 1)
	require.NoError(t, err)

	view, err := uc.RemoveFromCart(ctx, "cart-1", "p1")
	require.NoError(t, err)
	assert.Empty(t, view.Lines)

	view, err = uc.RemoveFromCart(ctx, "cart-1", "p1")
	require.NoError(t, err)
	assert.Empty(t, view.Lines)
}

func TestClearCartRemovesSlot(t *testing.T) {
	ctx := context.Background()
	uc, storage := newTestCartUseCase(&catalog.Product{ID: "p1", Name: "A", Price: 10000})

	_, err := uc.AddToCart(ctx, "cart-1", "p1", "", "", 1)
	require.NoError(t, err)
	require.Contains(t, storage.slots, "cart-1")

	view, err := uc.ClearCart(ctx, "cart-1")
	require.NoError(t, err)
	assert.Empty(t, view.Lines)
	assert.NotContains(t, storage.slots, "cart-1")
}

func TestViewShippingBecomesFreeAtThreshold(t *testing.T) {
	ctx := context.Background()
	uc, _ := newTestCartUseCase(&catalog.Product{ID: "p1", Name: "A", Price: 100000})

	_, err := uc.AddToCart(ctx, "cart-1", "p1", "", "", 2)
	require.NoError(t, err)

	view, err := uc.GetCart(ctx, "cart-1")
	require.NoError(t, err)
	assert.Equal(t, int64(200000), view.Subtotal)
	assert.Zero(t, view.ShippingCost)
	assert.Equal(t, int64(200000), view.Total)
}
