package cart

import (
	"context"
	"encoding/json"

	"github.com/gerai/storefront-service/internal/domain/catalog"
	"github.com/gerai/storefront-service/internal/pkg/logger"
)

// Store is the authoritative in-memory cart for one session, backed by a
// Storage slot. Every mutation re-serializes the full line collection; when
// the cart empties the slot is removed entirely rather than left as an empty
// array. Persistence failures are logged and absorbed: the in-memory state
// stays the source of truth for the live session.
type Store struct {
	cart    *Cart
	storage Storage
	log     *logger.Logger
}

// NewStore rehydrates the cart from the storage slot. A missing, empty or
// unparsable payload starts an empty cart; a corrupt slot must never take the
// application down.
func NewStore(ctx context.Context, storage Storage, log *logger.Logger) *Store {
	s := &Store{
		cart:    New(),
		storage: storage,
		log:     log,
	}

	data, err := storage.Load(ctx)
	if err != nil {
		log.Warn("Failed to load persisted cart, starting empty", "error", err)
		return s
	}

	if len(data) == 0 {
		return s
	}

	var lines []Line
	if err := json.Unmarshal(data, &lines); err != nil {
		log.Warn("Discarding corrupt persisted cart", "error", err)
		return s
	}

	s.cart = FromLines(lines)
	return s
}

// Add delegates to Cart.Add and persists on success. A rejected add leaves
// both memory and storage untouched.
func (s *Store) Add(ctx context.Context, p *catalog.Product, selectedSize, selectedColor string, quantity int) bool {
	if !s.cart.Add(p, selectedSize, selectedColor, quantity) {
		return false
	}

	s.persist(ctx)
	return true
}

func (s *Store) RemoveProduct(ctx context.Context, productID string) bool {
	if !s.cart.RemoveProduct(productID) {
		return false
	}

	s.persist(ctx)
	return true
}

func (s *Store) SetQuantity(ctx context.Context, productID string, quantity int) bool {
	if !s.cart.SetQuantity(productID, quantity) {
		return false
	}

	s.persist(ctx)
	return true
}

func (s *Store) persist(ctx context.Context) {
	if s.cart.IsEmpty() {
		if err := s.storage.Clear(ctx); err != nil {
			s.log.Error("Failed to clear persisted cart", "error", err)
		}
		return
	}

	data, err := json.Marshal(s.cart.Lines())
	if err != nil {
		s.log.Error("Failed to serialize cart", "error", err)
		return
	}

	if err := s.storage.Save(ctx, data); err != nil {
		s.log.Error("Failed to persist cart", "error", err)
	}
}

func (s *Store) Lines() []Line {
	return s.cart.Lines()
}

func (s *Store) IsEmpty() bool {
	return s.cart.IsEmpty()
}

func (s *Store) TotalItemCount() int {
	return s.cart.TotalItemCount()
}

func (s *Store) Subtotal() int64 {
	return s.cart.Subtotal()
}

func (s *Store) Clear(ctx context.Context) {
	s.cart.Clear()
	s.persist(ctx)
}
