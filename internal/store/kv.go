package store

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrKVNotFound is returned by KV.Get when the key has never been set.
var ErrKVNotFound = errors.New("kv: key not found")

// KV is the durable external key-value store behind the layered document
// store. It holds the mirrored document so the site survives restarts on
// hosts with ephemeral local disk.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// RedisKV implements KV over a Redis connection.
type RedisKV struct {
	client *redis.Client
	prefix string
}

// NewRedisKV connects to Redis and verifies the connection with a ping.
func NewRedisKV(addr, password string) (*RedisKV, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisKV{client: client, prefix: "portfolio:"}, nil
}

func (r *RedisKV) key(k string) string {
	return r.prefix + k
}

func (r *RedisKV) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, r.key(key)).Bytes()
	if err == redis.Nil {
		return nil, ErrKVNotFound
	}
	if err != nil {
		return nil, err
	}
	return val, nil
}

func (r *RedisKV) Set(ctx context.Context, key string, value []byte) error {
	// Mirrored content has no expiry; it is the durable copy.
	return r.client.Set(ctx, r.key(key), value, 0).Err()
}
