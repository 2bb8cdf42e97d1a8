package cart

// Line is one purchasable configuration of a product. Name and price are
// snapshots taken at add-time; the cart does not track catalog price drift.
// JSON field names match the persisted payload layout and must stay stable.
type Line struct {
	ProductID     string `json:"id"`
	Name          string `json:"name"`
	Price         int64  `json:"price"`
	ImageURL      string `json:"image,omitempty"`
	Category      string `json:"category,omitempty"`
	IsNew         bool   `json:"isNew,omitempty"`
	SelectedSize  string `json:"selectedSize,omitempty"`
	SelectedColor string `json:"selectedColor,omitempty"`
	Quantity      int    `json:"quantity"`
}

// sameConfiguration is the merge key: product plus both variant discriminators,
// with unset treated as its own value.
func (l Line) sameConfiguration(other Line) bool {
	return l.ProductID == other.ProductID &&
		l.SelectedSize == other.SelectedSize &&
		l.SelectedColor == other.SelectedColor
}

func (l Line) Total() int64 {
	return l.Price * int64(l.Quantity)
}
