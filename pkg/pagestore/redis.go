package pagestore

import (
	"context"
	"encoding/json"
	"errors"
	"net"

	"github.com/redis/go-redis/v9"

	"github.com/matzehuels/wikiextract/pkg/cache"
)

// RedisStore keeps pages as JSON values under prefix+title.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore connects to addr and checks the connection.
func NewRedisStore(ctx context.Context, addr, prefix string) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}
	return &RedisStore{client: client, prefix: prefix}, nil
}

// NewRedisStoreFromClient wraps an existing client. Close closes it.
func NewRedisStoreFromClient(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

// Get reads a page by title.
func (s *RedisStore) Get(ctx context.Context, title string) (Page, bool, error) {
	var data []byte
	err := cache.RetryWithBackoff(ctx, func() error {
		v, err := s.client.Get(ctx, s.prefix+title).Bytes()
		if err != nil {
			return retryable(err)
		}
		data = v
		return nil
	})
	if errors.Is(err, redis.Nil) {
		return Page{}, false, nil
	}
	if err != nil {
		return Page{}, false, err
	}
	var p Page
	if err := json.Unmarshal(data, &p); err != nil {
		return Page{}, false, err
	}
	return p, true, nil
}

// Put writes a page without expiry.
func (s *RedisStore) Put(ctx context.Context, p Page) error {
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return cache.RetryWithBackoff(ctx, func() error {
		return retryable(s.client.Set(ctx, s.prefix+p.Title, data, 0).Err())
	})
}

// Close closes the client.
func (s *RedisStore) Close() error { return s.client.Close() }

func retryable(err error) error {
	var netErr net.Error
	if errors.As(err, &netErr) {
		return cache.Retryable(err)
	}
	return err
}

var _ Store = (*RedisStore)(nil)
