package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	p, err := NewProduct("p1", "kemeja-batik", "Kemeja Batik", 39999)
	require.NoError(t, err)

	assert.Equal(t, "p1", p.ID)
	assert.Equal(t, "kemeja-batik", p.Slug)
	assert.Equal(t, int64(39999), p.Price)
	assert.False(t, p.CreatedAt.IsZero())
}

func TestNewProductValidation(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		prodName string
		price    int64
	}{
		{"empty id", "", "Kemeja", 1000},
		{"empty name", "p1", "", 1000},
		{"negative price", "p1", "Kemeja", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewProduct(tt.id, "slug", tt.prodName, tt.price)
			assert.Error(t, err)
		})
	}
}

func TestProductVariantHelpers(t *testing.T) {
	p := &Product{ID: "p1", Name: "Kaos", Sizes: []string{"S", "M"}}

	assert.True(t, p.HasSizes())
	assert.False(t, p.HasColors())
	assert.True(t, p.OffersSize("M"))
	assert.False(t, p.OffersSize("XL"))
	assert.False(t, p.OffersColor("Hitam"))
}
