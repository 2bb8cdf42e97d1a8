package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gerai/storefront-service/internal/domain/cart"
	"github.com/gerai/storefront-service/internal/infrastructure/monitoring"
)

// CartStorage keeps one key per cart (cart:<id>) holding the JSON line array.
// The TTL is refreshed on every save so active carts outlive idle ones.
type CartStorage struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCartStorage(conn *Connection, ttl time.Duration) *CartStorage {
	return &CartStorage{
		client: monitoring.InstrumentRedisClient(conn.GetClient()),
		ttl:    ttl,
	}
}

func (s *CartStorage) ForCart(cartID string) cart.Storage {
	return &cartSlot{
		client: s.client,
		key:    "cart:" + cartID,
		ttl:    s.ttl,
	}
}

type cartSlot struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

// Load returns nil for an absent key; absence and an empty cart are the same
// state by contract.
func (s *cartSlot) Load(ctx context.Context) ([]byte, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	return data, nil
}

func (s *cartSlot) Save(ctx context.Context, data []byte) error {
	return s.client.Set(ctx, s.key, data, s.ttl).Err()
}

func (s *cartSlot) Clear(ctx context.Context) error {
	return s.client.Del(ctx, s.key).Err()
}
