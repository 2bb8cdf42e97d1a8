package catalog

import (
	"errors"
	"time"
)

type Product struct {
	ID        string
	Slug      string
	Name      string
	Price     int64 // minor currency units, no fractional subunits
	ImageURL  string
	Category  string
	Sizes     []string
	Colors    []string
	IsNew     bool
	CreatedAt time.Time
}

func NewProduct(id, slug, name string, price int64) (*Product, error) {
	if id == "" {
		return nil, errors.New("product id cannot be empty")
	}

	if name == "" {
		return nil, errors.New("product name cannot be empty")
	}

	if price < 0 {
		return nil, errors.New("price cannot be negative")
	}

	return &Product{
		ID:        id,
		Slug:      slug,
		Name:      name,
		Price:     price,
		CreatedAt: time.Now().UTC(),
	}, nil
}

func (p *Product) HasSizes() bool {
	return len(p.Sizes) > 0
}

func (p *Product) HasColors() bool {
	return len(p.Colors) > 0
}

func (p *Product) OffersSize(size string) bool {
	for _, s := range p.Sizes {
		if s == size {
			return true
		}
	}
	return false
}

func (p *Product) OffersColor(color string) bool {
	for _, c := range p.Colors {
		if c == color {
			return true
		}
	}
	return false
}
