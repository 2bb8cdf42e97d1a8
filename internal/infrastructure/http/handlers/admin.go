package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/gerai/storefront-service/internal/application/ports"
	"github.com/gerai/storefront-service/internal/domain/catalog"
	"github.com/gerai/storefront-service/internal/infrastructure/http/response"
	"github.com/gerai/storefront-service/internal/pkg/logger"
)

type AdminHandler struct {
	catalogRepo ports.CatalogRepository
	log         *logger.Logger
}

func NewAdminHandler(catalogRepo ports.CatalogRepository, log *logger.Logger) *AdminHandler {
	return &AdminHandler{
		catalogRepo: catalogRepo,
		log:         log,
	}
}

type productRequest struct {
	Slug     string   `json:"slug"`
	Name     string   `json:"name"`
	Price    int64    `json:"price"`
	Image    string   `json:"image"`
	Category string   `json:"category"`
	Sizes    []string `json:"sizes"`
	Colors   []string `json:"colors"`
	IsNew    bool     `json:"isNew"`
}

// toProduct builds the domain entity through its validating constructor and
// then applies the optional fields the constructor does not take.
func (req *productRequest) toProduct(id, slug string) (*catalog.Product, error) {
	product, err := catalog.NewProduct(id, slug, req.Name, req.Price)
	if err != nil {
		return nil, err
	}

	product.ImageURL = req.Image
	product.Category = req.Category
	product.Sizes = req.Sizes
	product.Colors = req.Colors
	product.IsNew = req.IsNew

	return product, nil
}

func slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.Join(strings.Fields(slug), "-")
	return slug
}

func (h *AdminHandler) HandleCreateProduct(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WriteValidationError(w, "Invalid request body", map[string]string{
			"body": "request body must be valid JSON",
		})
		return
	}

	slug := req.Slug
	if slug == "" {
		slug = slugify(req.Name)
	}

	product, err := req.toProduct(uuid.NewString(), slug)
	if err != nil {
		response.WriteValidationError(w, "Validation failed", map[string]string{
			"product": err.Error(),
		})
		return
	}

	if err := h.catalogRepo.CreateProduct(r.Context(), product); err != nil {
		h.log.Error("Failed to create product", "error", err, "name", req.Name)
		response.WriteDomainError(w, err)
		return
	}

	h.log.Info("Product created", "product_id", product.ID, "name", product.Name)
	response.WriteCreated(w, toProductDTO(product), "Product created")
}

func (h *AdminHandler) HandleProduct(w http.ResponseWriter, r *http.Request) {
	productID := strings.TrimPrefix(r.URL.Path, "/admin/products/")
	if productID == "" || strings.Contains(productID, "/") {
		http.NotFound(w, r)
		return
	}

	switch r.Method {
	case http.MethodPut:
		h.handleUpdateProduct(w, r, productID)
	case http.MethodDelete:
		h.handleDeleteProduct(w, r, productID)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (h *AdminHandler) handleUpdateProduct(w http.ResponseWriter, r *http.Request, productID string) {
	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WriteValidationError(w, "Invalid request body", map[string]string{
			"body": "request body must be valid JSON",
		})
		return
	}

	existing, err := h.catalogRepo.GetProductByID(r.Context(), productID)
	if err != nil {
		response.WriteDomainError(w, err)
		return
	}

	slug := req.Slug
	if slug == "" {
		slug = existing.Slug
	}

	product, err := req.toProduct(productID, slug)
	if err != nil {
		response.WriteValidationError(w, "Validation failed", map[string]string{
			"product": err.Error(),
		})
		return
	}
	product.CreatedAt = existing.CreatedAt

	if err := h.catalogRepo.UpdateProduct(r.Context(), product); err != nil {
		h.log.Error("Failed to update product", "error", err, "product_id", productID)
		response.WriteDomainError(w, err)
		return
	}

	h.log.Info("Product updated", "product_id", productID)
	response.WriteSuccess(w, toProductDTO(product), "Product updated")
}

func (h *AdminHandler) handleDeleteProduct(w http.ResponseWriter, r *http.Request, productID string) {
	if err := h.catalogRepo.DeleteProduct(r.Context(), productID); err != nil {
		h.log.Error("Failed to delete product", "error", err, "product_id", productID)
		response.WriteDomainError(w, err)
		return
	}

	h.log.Info("Product deleted", "product_id", productID)
	response.WriteSuccess(w, struct{}{}, "Product deleted")
}
