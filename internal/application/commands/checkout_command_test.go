package commands

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gerai/storefront-service/internal/domain/cart"
	"github.com/gerai/storefront-service/internal/domain/checkout"
	domainErrors "github.com/gerai/storefront-service/internal/domain/errors"
	"github.com/gerai/storefront-service/internal/pkg/currency"
	"github.com/gerai/storefront-service/internal/pkg/logger"
)

type stubCartStorage struct {
	slots map[string][]byte
}

func (s *stubCartStorage) ForCart(cartID string) cart.Storage {
	return &stubSlot{storage: s, key: cartID}
}

type stubSlot struct {
	storage *stubCartStorage
	key     string
}

func (s *stubSlot) Load(ctx context.Context) ([]byte, error) {
	return s.storage.slots[s.key], nil
}

func (s *stubSlot) Save(ctx context.Context, data []byte) error {
	s.storage.slots[s.key] = data
	return nil
}

func (s *stubSlot) Clear(ctx context.Context) error {
	delete(s.storage.slots, s.key)
	return nil
}

func seededStorage(t *testing.T, cartID string, lines []cart.Line) *stubCartStorage {
	t.Helper()
	data, err := json.Marshal(lines)
	require.NoError(t, err)
	return &stubCartStorage{slots: map[string][]byte{cartID: data}}
}

func newTestHandler(storage *stubCartStorage) *CheckoutHandler {
	return NewCheckoutHandler(
		storage,
		checkout.ShippingPolicy{FreeThreshold: 200000, FlatFee: 20000},
		currency.NewFormatter("id", "Rp"),
		checkout.DefaultDeepLinkBaseURL,
		"6281234567890",
		logger.NewNopLogger(),
	)
}

func TestCheckoutEmptyCart(t *testing.T) {
	h := newTestHandler(&stubCartStorage{slots: map[string][]byte{}})

	_, err := h.Handle(context.Background(), CheckoutCommand{CartID: "cart-1"})
	assert.ErrorIs(t, err, domainErrors.ErrCartEmpty)
}

func TestCheckoutBuildsMessageAndLink(t *testing.T) {
	lines := []cart.Line{
		{ProductID: "a", Name: "Produk A", Price: 39999, Quantity: 1},
		{ProductID: "b", Name: "Produk B", Price: 19999, SelectedSize: "M", Quantity: 2},
	}
	h := newTestHandler(seededStorage(t, "cart-1", lines))

	resp, err := h.Handle(context.Background(), CheckoutCommand{CartID: "cart-1"})
	require.NoError(t, err)

	assert.Equal(t, 3, resp.ItemCount)
	assert.Equal(t, int64(79997), resp.Subtotal)
	assert.Equal(t, int64(20000), resp.ShippingCost)
	assert.Equal(t, int64(99997), resp.Total)

	assert.Contains(t, resp.Message, "*Produk A*")
	assert.Contains(t, resp.Message, "Ukuran: M")
	assert.Contains(t, resp.Message, "Total: Rp 99.997")

	assert.True(t, strings.HasPrefix(resp.WhatsAppURL, "https://wa.me/6281234567890?text="))
}

func TestCheckoutFreeShippingAboveThreshold(t *testing.T) {
	lines := []cart.Line{
		{ProductID: "a", Name: "Gamis Premium", Price: 250000, Quantity: 1},
	}
	h := newTestHandler(seededStorage(t, "cart-1", lines))

	resp, err := h.Handle(context.Background(), CheckoutCommand{CartID: "cart-1"})
	require.NoError(t, err)

	assert.Zero(t, resp.ShippingCost)
	assert.Equal(t, int64(250000), resp.Total)
	assert.Contains(t, resp.Message, "Ongkir: GRATIS")
}

func TestCheckoutDoesNotMutateCart(t *testing.T) {
	lines := []cart.Line{
		{ProductID: "a", Name: "Produk A", Price: 10000, Quantity: 1},
	}
	storage := seededStorage(t, "cart-1", lines)
	h := newTestHandler(storage)

	_, err := h.Handle(context.Background(), CheckoutCommand{CartID: "cart-1"})
	require.NoError(t, err)

	assert.Contains(t, storage.slots, "cart-1", "checkout leaves the cart in place")
}
