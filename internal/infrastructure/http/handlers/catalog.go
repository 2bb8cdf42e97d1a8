package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gerai/storefront-service/internal/application/ports"
	"github.com/gerai/storefront-service/internal/domain/catalog"
	domainErrors "github.com/gerai/storefront-service/internal/domain/errors"
	"github.com/gerai/storefront-service/internal/infrastructure/http/response"
	"github.com/gerai/storefront-service/internal/pkg/logger"
)

type ProductDTO struct {
	ID       string   `json:"id"`
	Slug     string   `json:"slug,omitempty"`
	Name     string   `json:"name"`
	Price    int64    `json:"price"`
	Image    string   `json:"image,omitempty"`
	Category string   `json:"category,omitempty"`
	Sizes    []string `json:"sizes"`
	Colors   []string `json:"colors"`
	IsNew    bool     `json:"isNew"`
}

func toProductDTO(p *catalog.Product) ProductDTO {
	return ProductDTO{
		ID:       p.ID,
		Slug:     p.Slug,
		Name:     p.Name,
		Price:    p.Price,
		Image:    p.ImageURL,
		Category: p.Category,
		Sizes:    p.Sizes,
		Colors:   p.Colors,
		IsNew:    p.IsNew,
	}
}

type CatalogHandler struct {
	catalogRepo ports.CatalogRepository
	log         *logger.Logger
}

func NewCatalogHandler(catalogRepo ports.CatalogRepository, log *logger.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalogRepo: catalogRepo,
		log:         log,
	}
}

func (h *CatalogHandler) HandleListProducts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	query := r.URL.Query()
	limit, _ := strconv.Atoi(query.Get("limit"))
	offset, _ := strconv.Atoi(query.Get("offset"))

	filter := ports.ProductFilter{
		Category: query.Get("category"),
		Search:   query.Get("search"),
		Limit:    limit,
		Offset:   offset,
	}

	products, err := h.catalogRepo.ListProducts(r.Context(), filter)
	if err != nil {
		h.log.Error("Failed to list products", "error", err)
		response.WriteDomainError(w, err)
		return
	}

	dtos := make([]ProductDTO, 0, len(products))
	for _, p := range products {
		dtos = append(dtos, toProductDTO(p))
	}

	response.WriteSuccess(w, dtos)
}

// HandleGetProduct resolves /products/{idOrSlug}: id lookup first, slug as a
// fallback so storefront URLs stay pretty.
func (h *CatalogHandler) HandleGetProduct(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	idOrSlug := strings.TrimPrefix(r.URL.Path, "/products/")
	if idOrSlug == "" || strings.Contains(idOrSlug, "/") {
		http.NotFound(w, r)
		return
	}

	product, err := h.catalogRepo.GetProductByID(r.Context(), idOrSlug)
	if err == domainErrors.ErrProductNotFound {
		product, err = h.catalogRepo.GetProductBySlug(r.Context(), idOrSlug)
	}
	if err != nil {
		if err != domainErrors.ErrProductNotFound {
			h.log.Error("Failed to get product", "error", err, "id_or_slug", idOrSlug)
		}
		response.WriteDomainError(w, err)
		return
	}

	response.WriteSuccess(w, toProductDTO(product))
}

func (h *CatalogHandler) HandleListCategories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	categories, err := h.catalogRepo.ListCategories(r.Context())
	if err != nil {
		h.log.Error("Failed to list categories", "error", err)
		response.WriteDomainError(w, err)
		return
	}

	if categories == nil {
		categories = []string{}
	}

	response.WriteSuccess(w, categories)
}
