package checkout

import (
	"strconv"
	"strings"

	"github.com/gerai/storefront-service/internal/domain/cart"
)

const (
	freeShippingLabel = "GRATIS"
	messageGreeting   = "Halo, saya ingin memesan:"
)

// FormatFunc renders a raw amount in minor currency units for display.
// Formatting is applied to raw numeric values only, so it is applied exactly
// once to every price in a message.
type FormatFunc func(int64) string

// BuildOrderMessage renders the cart into the WhatsApp order text: one block
// per line (name, unit price, size and color only when present, quantity),
// blocks separated by a blank line, then a summary block with subtotal,
// shipping and total. An empty cart yields an empty string; no message is
// meaningful for zero lines.
func BuildOrderMessage(lines []cart.Line, subtotal, shippingCost int64, format FormatFunc) string {
	if len(lines) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(messageGreeting)
	b.WriteString("\n\n")

	for _, l := range lines {
		b.WriteString("*" + l.Name + "*\n")
		b.WriteString("Harga: " + format(l.Price) + "\n")
		if l.SelectedSize != "" {
			b.WriteString("Ukuran: " + l.SelectedSize + "\n")
		}
		if l.SelectedColor != "" {
			b.WriteString("Warna: " + l.SelectedColor + "\n")
		}
		b.WriteString("Jumlah: " + strconv.Itoa(l.Quantity) + "\n\n")
	}

	b.WriteString("Subtotal: " + format(subtotal) + "\n")
	if shippingCost == 0 {
		b.WriteString("Ongkir: " + freeShippingLabel + "\n")
	} else {
		b.WriteString("Ongkir: " + format(shippingCost) + "\n")
	}
	b.WriteString("Total: " + format(subtotal+shippingCost))

	return b.String()
}
