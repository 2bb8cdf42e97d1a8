package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gerai/storefront-service/internal/domain/catalog"
)

func plainProduct(id string, price int64) *catalog.Product {
	return &catalog.Product{
		ID:    id,
		Name:  "Product " + id,
		Price: price,
	}
}

func sizedProduct(id string, price int64, sizes ...string) *catalog.Product {
	p := plainProduct(id, price)
	p.Sizes = sizes
	return p
}

func TestAddMergesSameConfiguration(t *testing.T) {
	c := New()
	p := sizedProduct("p1", 10000, "S", "M", "L")

	require.True(t, c.Add(p, "M", "", 2))
	require.True(t, c.Add(p, "M", "", 3))

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 5, lines[0].Quantity)
	assert.Equal(t, "M", lines[0].SelectedSize)
}

func TestAddKeepsDistinctVariantsSeparate(t *testing.T) {
	c := New()
	p := sizedProduct("p1", 10000, "S", "M", "L")

	require.True(t, c.Add(p, "M", "", 1))
	require.True(t, c.Add(p, "L", "", 1))

	require.Len(t, c.Lines(), 2)

	require.True(t, c.SetQuantity("p1", 4))
	for _, l := range c.Lines() {
		assert.Equal(t, 4, l.Quantity)
	}
}

func TestAddRejectsMissingSize(t *testing.T) {
	c := New()
	p := sizedProduct("p1", 10000, "S", "M", "L")

	assert.False(t, c.Add(p, "", "", 1))
	assert.True(t, c.IsEmpty())
}

func TestAddRejectsSizeNotOffered(t *testing.T) {
	c := New()
	p := sizedProduct("p1", 10000, "S", "M", "L")

	assert.False(t, c.Add(p, "XL", "", 1))
	assert.True(t, c.IsEmpty())
}

func TestAddRejectsMissingColor(t *testing.T) {
	c := New()
	p := plainProduct("p1", 10000)
	p.Colors = []string{"Hitam", "Putih"}

	assert.False(t, c.Add(p, "", "", 1))
	require.True(t, c.Add(p, "", "Hitam", 1))
	assert.Equal(t, "Hitam", c.Lines()[0].SelectedColor)
}

func TestAddIgnoresVariantsProductDoesNotDeclare(t *testing.T) {
	c := New()
	p := plainProduct("p1", 10000)

	require.True(t, c.Add(p, "M", "Hitam", 1))

	line := c.Lines()[0]
	assert.Empty(t, line.SelectedSize)
	assert.Empty(t, line.SelectedColor)
}

func TestAddDefaultsQuantityToOne(t *testing.T) {
	c := New()

	require.True(t, c.Add(plainProduct("p1", 10000), "", "", 0))
	assert.Equal(t, 1, c.Lines()[0].Quantity)
}

func TestSetQuantityRejectsBelowOne(t *testing.T) {
	c := New()
	require.True(t, c.Add(plainProduct("p1", 10000), "", "", 3))

	assert.False(t, c.SetQuantity("p1", 0))
	assert.False(t, c.SetQuantity("p1", -1))
	assert.Equal(t, 3, c.Lines()[0].Quantity)
}

func TestSetQuantityIsAbsolute(t *testing.T) {
	c := New()
	require.True(t, c.Add(plainProduct("p1", 10000), "", "", 3))

	require.True(t, c.SetQuantity("p1", 7))
	assert.Equal(t, 7, c.Lines()[0].Quantity)
}

func TestSetQuantityUnknownProduct(t *testing.T) {
	c := New()
	assert.False(t, c.SetQuantity("missing", 2))
}

func TestRemoveProductDropsAllVariants(t *testing.T) {
	c := New()
	p := sizedProduct("p1", 10000, "S", "M")
	require.True(t, c.Add(p, "S", "", 1))
	require.True(t, c.Add(p, "M", "", 1))
	require.True(t, c.Add(plainProduct("p2", 5000), "", "", 1))

	assert.True(t, c.RemoveProduct("p1"))

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "p2", lines[0].ProductID)
}

func TestRemoveProductMissingIsNoOp(t *testing.T) {
	c := New()
	require.True(t, c.Add(plainProduct("p1", 10000), "", "", 1))

	assert.False(t, c.RemoveProduct("missing"))
	assert.Len(t, c.Lines(), 1)
}

func TestDerivedTotals(t *testing.T) {
	c := New()
	require.True(t, c.Add(plainProduct("p1", 10000), "", "", 2))
	require.True(t, c.Add(plainProduct("p2", 5000), "", "", 3))

	assert.Equal(t, 5, c.TotalItemCount())
	assert.Equal(t, int64(35000), c.Subtotal())
}

func TestFromLinesDropsInvalidEntries(t *testing.T) {
	c := FromLines([]Line{
		{ProductID: "p1", Name: "A", Price: 1000, Quantity: 2},
		{ProductID: "", Name: "broken", Price: 1000, Quantity: 1},
		{ProductID: "p2", Name: "B", Price: 500, Quantity: 0},
	})

	require.Len(t, c.Lines(), 1)
	assert.Equal(t, "p1", c.Lines()[0].ProductID)
}
