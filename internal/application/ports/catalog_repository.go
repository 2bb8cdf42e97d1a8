package ports

import (
	"context"

	"github.com/gerai/storefront-service/internal/domain/catalog"
)

type ProductFilter struct {
	Category string
	Search   string
	Limit    int
	Offset   int
}

type CatalogRepository interface {
	ListProducts(ctx context.Context, filter ProductFilter) ([]*catalog.Product, error)
	GetProductByID(ctx context.Context, id string) (*catalog.Product, error)
	GetProductBySlug(ctx context.Context, slug string) (*catalog.Product, error)
	CreateProduct(ctx context.Context, p *catalog.Product) error
	UpdateProduct(ctx context.Context, p *catalog.Product) error
	DeleteProduct(ctx context.Context, id string) error
	ListCategories(ctx context.Context) ([]string, error)
}
