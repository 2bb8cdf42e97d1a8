package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/gerai/storefront-service/internal/application/use_cases"
	domainErrors "github.com/gerai/storefront-service/internal/domain/errors"
	"github.com/gerai/storefront-service/internal/infrastructure/http/response"
	"github.com/gerai/storefront-service/internal/infrastructure/monitoring"
	"github.com/gerai/storefront-service/internal/pkg/logger"
)

const cartCookieName = "cart_id"

type CartHandler struct {
	cartUseCase *use_cases.CartUseCase
	log         *logger.Logger
}

func NewCartHandler(cartUseCase *use_cases.CartUseCase, log *logger.Logger) *CartHandler {
	return &CartHandler{
		cartUseCase: cartUseCase,
		log:         log,
	}
}

// cartID reads the cart cookie, minting a fresh id and setting the cookie
// when the browser has none yet. The cookie is the only cart identity; there
// is no server-side session.
func (h *CartHandler) cartID(w http.ResponseWriter, r *http.Request) string {
	if cookie, err := r.Cookie(cartCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     cartCookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   int((30 * 24 * 3600)),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

type addItemRequest struct {
	ProductID     string `json:"product_id"`
	Quantity      int    `json:"quantity"`
	SelectedSize  string `json:"selected_size"`
	SelectedColor string `json:"selected_color"`
}

type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

func (h *CartHandler) HandleCart(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.handleGetCart(w, r)
	case http.MethodDelete:
		h.handleClearCart(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (h *CartHandler) handleGetCart(w http.ResponseWriter, r *http.Request) {
	cartID := h.cartID(w, r)

	view, err := h.cartUseCase.GetCart(r.Context(), cartID)
	if err != nil {
		h.log.Error("Failed to load cart", "error", err, "cart_id", cartID)
		response.WriteDomainError(w, err)
		return
	}

	response.WriteSuccess(w, view)
}

func (h *CartHandler) handleClearCart(w http.ResponseWriter, r *http.Request) {
	cartID := h.cartID(w, r)

	view, err := h.cartUseCase.ClearCart(r.Context(), cartID)
	if err != nil {
		h.log.Error("Failed to clear cart", "error", err, "cart_id", cartID)
		response.WriteDomainError(w, err)
		return
	}

	monitoring.RecordCartClear()
	response.WriteSuccess(w, view, "Cart cleared")
}

func (h *CartHandler) HandleAddItem(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WriteValidationError(w, "Invalid request body", map[string]string{
			"body": "request body must be valid JSON",
		})
		return
	}

	if req.ProductID == "" {
		response.WriteValidationError(w, "Validation failed", map[string]string{
			"product_id": "product_id is required",
		})
		return
	}

	cartID := h.cartID(w, r)

	view, err := h.cartUseCase.AddToCart(r.Context(), cartID, req.ProductID, req.SelectedSize, req.SelectedColor, req.Quantity)
	if err != nil {
		switch err {
		case domainErrors.ErrSizeRequired:
			monitoring.RecordCartAddRejected("size_required")
		case domainErrors.ErrColorRequired:
			monitoring.RecordCartAddRejected("color_required")
		case domainErrors.ErrProductNotFound:
			monitoring.RecordCartAddRejected("product_not_found")
		default:
			h.log.Error("Failed to add to cart", "error", err, "cart_id", cartID, "product_id", req.ProductID)
		}
		response.WriteDomainError(w, err)
		return
	}

	monitoring.RecordCartAdd()
	response.WriteSuccess(w, view, "Item added to cart")
}

func (h *CartHandler) HandleCartItem(w http.ResponseWriter, r *http.Request) {
	productID := strings.TrimPrefix(r.URL.Path, "/cart/items/")
	if productID == "" || strings.Contains(productID, "/") {
		http.NotFound(w, r)
		return
	}

	switch r.Method {
	case http.MethodPut:
		h.handleUpdateItem(w, r, productID)
	case http.MethodDelete:
		h.handleRemoveItem(w, r, productID)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (h *CartHandler) handleUpdateItem(w http.ResponseWriter, r *http.Request, productID string) {
	var req updateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WriteValidationError(w, "Invalid request body", map[string]string{
			"body": "request body must be valid JSON",
		})
		return
	}

	cartID := h.cartID(w, r)

	view, err := h.cartUseCase.UpdateQuantity(r.Context(), cartID, productID, req.Quantity)
	if err != nil {
		if err != domainErrors.ErrInvalidQuantity && err != domainErrors.ErrLineNotFound {
			h.log.Error("Failed to update quantity", "error", err, "cart_id", cartID, "product_id", productID)
		}
		response.WriteDomainError(w, err)
		return
	}

	response.WriteSuccess(w, view, "Quantity updated")
}

func (h *CartHandler) handleRemoveItem(w http.ResponseWriter, r *http.Request, productID string) {
	cartID := h.cartID(w, r)

	view, err := h.cartUseCase.RemoveFromCart(r.Context(), cartID, productID)
	if err != nil {
		h.log.Error("Failed to remove from cart", "error", err, "cart_id", cartID, "product_id", productID)
		response.WriteDomainError(w, err)
		return
	}

	response.WriteSuccess(w, view, "Item removed")
}
