package use_cases

import (
	"context"

	"github.com/gerai/storefront-service/internal/application/ports"
	"github.com/gerai/storefront-service/internal/domain/cart"
	"github.com/gerai/storefront-service/internal/domain/checkout"
	"github.com/gerai/storefront-service/internal/domain/errors"
	"github.com/gerai/storefront-service/internal/pkg/logger"
)

type CartView struct {
	Lines          []cart.Line `json:"lines"`
	TotalItemCount int         `json:"total_item_count"`
	Subtotal       int64       `json:"subtotal"`
	ShippingCost   int64       `json:"shipping_cost"`
	Total          int64       `json:"total"`
}

type CartUseCase struct {
	catalogRepo ports.CatalogRepository
	cartStorage ports.CartStorage
	shipping    checkout.ShippingPolicy
	log         *logger.Logger
}

func NewCartUseCase(
	catalogRepo ports.CatalogRepository,
	cartStorage ports.CartStorage,
	shipping checkout.ShippingPolicy,
	log *logger.Logger,
) *CartUseCase {
	return &CartUseCase{
		catalogRepo: catalogRepo,
		cartStorage: cartStorage,
		shipping:    shipping,
		log:         log,
	}
}

func (uc *CartUseCase) store(ctx context.Context, cartID string) *cart.Store {
	return cart.NewStore(ctx, uc.cartStorage.ForCart(cartID), uc.log)
}

func (uc *CartUseCase) view(s *cart.Store) *CartView {
	subtotal := s.Subtotal()
	shippingCost := uc.shipping.Cost(subtotal)

	return &CartView{
		Lines:          s.Lines(),
		TotalItemCount: s.TotalItemCount(),
		Subtotal:       subtotal,
		ShippingCost:   shippingCost,
		Total:          subtotal + shippingCost,
	}
}

func (uc *CartUseCase) GetCart(ctx context.Context, cartID string) (*CartView, error) {
	return uc.view(uc.store(ctx, cartID)), nil
}

// AddToCart snapshots the catalog product into the cart. A rejected add is an
// expected user-input condition, reported as a sentinel so the transport layer
// can tell the user which option is missing.
func (uc *CartUseCase) AddToCart(ctx context.Context, cartID, productID, selectedSize, selectedColor string, quantity int) (*CartView, error) {
	product, err := uc.catalogRepo.GetProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	s := uc.store(ctx, cartID)
	if !s.Add(ctx, product, selectedSize, selectedColor, quantity) {
		if product.HasSizes() && !product.OffersSize(selectedSize) {
			return nil, errors.ErrSizeRequired
		}
		return nil, errors.ErrColorRequired
	}

	return uc.view(s), nil
}

func (uc *CartUseCase) UpdateQuantity(ctx context.Context, cartID, productID string, quantity int) (*CartView, error) {
	if quantity < 1 {
		return nil, errors.ErrInvalidQuantity
	}

	s := uc.store(ctx, cartID)
	if !s.SetQuantity(ctx, productID, quantity) {
		return nil, errors.ErrLineNotFound
	}

	return uc.view(s), nil
}

// RemoveFromCart drops every line for the product, any variant. Removing an
// absent product is a no-op, not an error.
func (uc *CartUseCase) RemoveFromCart(ctx context.Context, cartID, productID string) (*CartView, error) {
	s := uc.store(ctx, cartID)
	s.RemoveProduct(ctx, productID)
	return uc.view(s), nil
}

func (uc *CartUseCase) ClearCart(ctx context.Context, cartID string) (*CartView, error) {
	s := uc.store(ctx, cartID)
	s.Clear(ctx)
	return uc.view(s), nil
}
