package cart

import (
	"github.com/gerai/storefront-service/internal/domain/catalog"
)

type Cart struct {
	lines []Line
}

func New() *Cart {
	return &Cart{}
}

func FromLines(lines []Line) *Cart {
	c := &Cart{lines: make([]Line, 0, len(lines))}
	for _, l := range lines {
		if l.ProductID == "" || l.Quantity < 1 {
			continue
		}
		c.lines = append(c.lines, l)
	}
	return c
}

// Add puts a product snapshot into the cart. A product that declares sizes or
// colors cannot be added without a selection drawn from its declared options;
// such adds are rejected as a no-op and reported via the return value so the
// caller can prompt for the missing choice. Adds of an already-present
// configuration accumulate quantity instead of appending a duplicate line.
func (c *Cart) Add(p *catalog.Product, selectedSize, selectedColor string, quantity int) bool {
	if p == nil || p.ID == "" {
		return false
	}

	if p.HasSizes() && !p.OffersSize(selectedSize) {
		return false
	}

	if p.HasColors() && !p.OffersColor(selectedColor) {
		return false
	}

	if !p.HasSizes() {
		selectedSize = ""
	}
	if !p.HasColors() {
		selectedColor = ""
	}

	if quantity < 1 {
		quantity = 1
	}

	candidate := Line{
		ProductID:     p.ID,
		Name:          p.Name,
		Price:         p.Price,
		ImageURL:      p.ImageURL,
		Category:      p.Category,
		IsNew:         p.IsNew,
		SelectedSize:  selectedSize,
		SelectedColor: selectedColor,
		Quantity:      quantity,
	}

	for i := range c.lines {
		if c.lines[i].sameConfiguration(candidate) {
			c.lines[i].Quantity += quantity
			return true
		}
	}

	c.lines = append(c.lines, candidate)
	return true
}

// RemoveProduct removes every line for the product regardless of variant.
// Removal is deliberately coarser than the merge key.
func (c *Cart) RemoveProduct(productID string) bool {
	kept := c.lines[:0]
	removed := false
	for _, l := range c.lines {
		if l.ProductID == productID {
			removed = true
			continue
		}
		kept = append(kept, l)
	}
	c.lines = kept
	return removed
}

// SetQuantity sets the quantity of every line for the product to exactly the
// given value. Values below 1 are rejected; driving a line to zero is removal,
// which is a separate explicit action.
func (c *Cart) SetQuantity(productID string, quantity int) bool {
	if quantity < 1 {
		return false
	}

	changed := false
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines[i].Quantity = quantity
			changed = true
		}
	}
	return changed
}

func (c *Cart) Clear() {
	c.lines = nil
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) TotalItemCount() int {
	count := 0
	for _, l := range c.lines {
		count += l.Quantity
	}
	return count
}

func (c *Cart) Subtotal() int64 {
	var subtotal int64
	for _, l := range c.lines {
		subtotal += l.Total()
	}
	return subtotal
}
