package cart

import (
	"context"
)

// Storage is a single durable key-value slot holding the serialized cart.
// Load returns nil with no error when the slot is absent; an absent slot and
// an empty cart are the same state. Concurrent writers to the same slot are
// last-writer-wins; the store assumes one logical writer per cart.
type Storage interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
	Clear(ctx context.Context) error
}
