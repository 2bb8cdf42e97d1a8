package handlers

import (
	"net/http"

	"github.com/gerai/storefront-service/internal/application/commands"
	domainErrors "github.com/gerai/storefront-service/internal/domain/errors"
	"github.com/gerai/storefront-service/internal/infrastructure/http/response"
	"github.com/gerai/storefront-service/internal/infrastructure/monitoring"
	"github.com/gerai/storefront-service/internal/pkg/logger"
)

type CheckoutHandler struct {
	checkout *commands.CheckoutHandler
	log      *logger.Logger
}

func NewCheckoutHandler(checkout *commands.CheckoutHandler, log *logger.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		checkout: checkout,
		log:      log,
	}
}

func (h *CheckoutHandler) HandleCheckout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		cookie, err := r.Cookie(cartCookieName)
		if err != nil || cookie.Value == "" {
			response.WriteDomainError(w, domainErrors.ErrCartEmpty)
			return
		}
		cartID := cookie.Value

		monitoring.RecordCheckoutAttempt()

		resp, err := h.checkout.Handle(r.Context(), commands.CheckoutCommand{CartID: cartID})
		if err != nil {
			if err != domainErrors.ErrCartEmpty {
				h.log.Error("Checkout failed", "error", err, "cart_id", cartID)
			}
			monitoring.RecordCheckoutFailure(err.Error())
			response.WriteDomainError(w, err)
			return
		}

		h.log.Info("Checkout completed",
			"cart_id", cartID,
			"item_count", resp.ItemCount,
			"total", resp.Total,
		)
		monitoring.RecordCheckoutSuccess(resp.ItemCount, resp.Total)
		response.WriteSuccess(w, resp, "Checkout message ready")
	}
}
