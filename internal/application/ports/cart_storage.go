package ports

import (
	"github.com/gerai/storefront-service/internal/domain/cart"
)

// CartStorage hands out the durable key-value slot for one cart id. Each slot
// has exactly one logical writer within the application.
type CartStorage interface {
	ForCart(cartID string) cart.Storage
}
