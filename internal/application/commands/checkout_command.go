package commands

import (
	"context"

	"github.com/gerai/storefront-service/internal/application/ports"
	"github.com/gerai/storefront-service/internal/domain/cart"
	"github.com/gerai/storefront-service/internal/domain/checkout"
	"github.com/gerai/storefront-service/internal/domain/errors"
	"github.com/gerai/storefront-service/internal/pkg/currency"
	"github.com/gerai/storefront-service/internal/pkg/logger"
)

type CheckoutCommand struct {
	CartID string
}

type CheckoutResponse struct {
	Message      string `json:"message"`
	WhatsAppURL  string `json:"whatsapp_url"`
	ItemCount    int    `json:"item_count"`
	Subtotal     int64  `json:"subtotal"`
	ShippingCost int64  `json:"shipping_cost"`
	Total        int64  `json:"total"`
}

type CheckoutHandler struct {
	cartStorage ports.CartStorage
	shipping    checkout.ShippingPolicy
	formatter   *currency.Formatter
	baseURL     string
	phoneNumber string
	log         *logger.Logger
}

func NewCheckoutHandler(
	cartStorage ports.CartStorage,
	shipping checkout.ShippingPolicy,
	formatter *currency.Formatter,
	baseURL string,
	phoneNumber string,
	log *logger.Logger,
) *CheckoutHandler {
	return &CheckoutHandler{
		cartStorage: cartStorage,
		shipping:    shipping,
		formatter:   formatter,
		baseURL:     baseURL,
		phoneNumber: phoneNumber,
		log:         log,
	}
}

// Handle snapshots the cart, prices shipping once, and derives the order
// message plus the deep link. Checkout never mutates the cart; the customer
// finishes the order in the chat conversation.
func (h *CheckoutHandler) Handle(ctx context.Context, cmd CheckoutCommand) (*CheckoutResponse, error) {
	s := cart.NewStore(ctx, h.cartStorage.ForCart(cmd.CartID), h.log)
	if s.IsEmpty() {
		return nil, errors.ErrCartEmpty
	}

	subtotal := s.Subtotal()
	shippingCost := h.shipping.Cost(subtotal)

	message := checkout.BuildOrderMessage(s.Lines(), subtotal, shippingCost, h.formatter.Format)

	return &CheckoutResponse{
		Message:      message,
		WhatsAppURL:  checkout.BuildDeepLink(h.baseURL, h.phoneNumber, message),
		ItemCount:    s.TotalItemCount(),
		Subtotal:     subtotal,
		ShippingCost: shippingCost,
		Total:        subtotal + shippingCost,
	}, nil
}
