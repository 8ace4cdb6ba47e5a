package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/aoideee/toolrenter/internal/rental"
)

const keyPrefix = "toolrenter:receipt:"

// Redis is a ReceiptCache shared between API instances.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis connects to the Redis server at addr. Entries expire after ttl;
// a zero ttl keeps them until evicted.
func NewRedis(addr string, ttl time.Duration) *Redis {
	return &Redis{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		ttl:    ttl,
	}
}

// Ping checks that the server is reachable.
func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close releases the client's connections.
func (r *Redis) Close() error {
	return r.client.Close()
}

func (r *Redis) Get(ctx context.Context, key string) (rental.Receipt, bool, error) {
	raw, err := r.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return rental.Receipt{}, false, nil
	}
	if err != nil {
		return rental.Receipt{}, false, err
	}

	var receipt rental.Receipt
	if err := json.Unmarshal(raw, &receipt); err != nil {
		return rental.Receipt{}, false, err
	}
	return receipt, true, nil
}

func (r *Redis) Set(ctx context.Context, key string, receipt rental.Receipt) error {
	raw, err := json.Marshal(receipt)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, keyPrefix+key, raw, r.ttl).Err()
}

var _ ReceiptCache = (*Redis)(nil)
