package postgres

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/lib/pq"

	"github.com/gerai/storefront-service/internal/application/ports"
	"github.com/gerai/storefront-service/internal/domain/catalog"
	domainErrors "github.com/gerai/storefront-service/internal/domain/errors"
	"github.com/gerai/storefront-service/internal/infrastructure/monitoring"
)

const productColumns = "id, slug, name, price, image_url, category, sizes, colors, is_new, created_at"

type ProductRepository struct {
	db *sql.DB
}

func NewProductRepository(conn *Connection) *ProductRepository {
	return &ProductRepository{
		db: conn.GetDB(),
	}
}

func scanProduct(scan func(dest ...interface{}) error) (*catalog.Product, error) {
	var p catalog.Product
	var imageURL, category sql.NullString
	var sizes, colors []byte

	err := scan(
		&p.ID, &p.Slug, &p.Name, &p.Price, &imageURL, &category,
		&sizes, &colors, &p.IsNew, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.ImageURL = imageURL.String
	p.Category = category.String

	if len(sizes) > 0 {
		if err := json.Unmarshal(sizes, &p.Sizes); err != nil {
			return nil, err
		}
	}
	if len(colors) > 0 {
		if err := json.Unmarshal(colors, &p.Colors); err != nil {
			return nil, err
		}
	}

	return &p, nil
}

func (r *ProductRepository) ListProducts(ctx context.Context, filter ports.ProductFilter) ([]*catalog.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE ($1 = '' OR category = $1)
		  AND ($2 = '' OR name ILIKE '%' || $2 || '%')
		ORDER BY created_at DESC, id
		LIMIT $3 OFFSET $4
	`

	limit := filter.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	rows, err := monitoring.InstrumentQuery(ctx, r.db, "SELECT", "products", query,
		filter.Category, filter.Search, limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*catalog.Product
	for rows.Next() {
		p, err := scanProduct(rows.Scan)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, rows.Err()
}

func (r *ProductRepository) GetProductByID(ctx context.Context, id string) (*catalog.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	row := monitoring.InstrumentQueryRow(ctx, r.db, "SELECT", "products", query, id)
	p, err := scanProduct(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domainErrors.ErrProductNotFound
		}
		return nil, err
	}

	return p, nil
}

func (r *ProductRepository) GetProductBySlug(ctx context.Context, slug string) (*catalog.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE slug = $1`

	row := monitoring.InstrumentQueryRow(ctx, r.db, "SELECT", "products", query, slug)
	p, err := scanProduct(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domainErrors.ErrProductNotFound
		}
		return nil, err
	}

	return p, nil
}

func (r *ProductRepository) CreateProduct(ctx context.Context, p *catalog.Product) error {
	query := `
		INSERT INTO products (id, slug, name, price, image_url, category, sizes, colors, is_new, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	sizes, err := json.Marshal(p.Sizes)
	if err != nil {
		return err
	}
	colors, err := json.Marshal(p.Colors)
	if err != nil {
		return err
	}

	_, err = monitoring.InstrumentExec(ctx, r.db, "INSERT", "products", query,
		p.ID, p.Slug, p.Name, p.Price, p.ImageURL, p.Category, sizes, colors, p.IsNew, p.CreatedAt,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code.Name() == "unique_violation" {
			return domainErrors.ErrProductExists
		}
		return err
	}

	return nil
}

func (r *ProductRepository) UpdateProduct(ctx context.Context, p *catalog.Product) error {
	query := `
		UPDATE products
		SET slug = $2, name = $3, price = $4, image_url = $5, category = $6,
		    sizes = $7, colors = $8, is_new = $9
		WHERE id = $1
	`

	sizes, err := json.Marshal(p.Sizes)
	if err != nil {
		return err
	}
	colors, err := json.Marshal(p.Colors)
	if err != nil {
		return err
	}

	result, err := monitoring.InstrumentExec(ctx, r.db, "UPDATE", "products", query,
		p.ID, p.Slug, p.Name, p.Price, p.ImageURL, p.Category, sizes, colors, p.IsNew,
	)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domainErrors.ErrProductNotFound
	}

	return nil
}

func (r *ProductRepository) DeleteProduct(ctx context.Context, id string) error {
	query := `DELETE FROM products WHERE id = $1`

	result, err := monitoring.InstrumentExec(ctx, r.db, "DELETE", "products", query, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domainErrors.ErrProductNotFound
	}

	return nil
}

func (r *ProductRepository) ListCategories(ctx context.Context) ([]string, error) {
	query := `
		SELECT DISTINCT category
		FROM products
		WHERE category <> ''
		ORDER BY category
	`

	rows, err := monitoring.InstrumentQuery(ctx, r.db, "SELECT", "products", query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var category string
		if err := rows.Scan(&category); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}

	return categories, rows.Err()
}
