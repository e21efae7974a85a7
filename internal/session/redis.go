package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/alkime/postgen/internal/content"
	goredis "github.com/redis/go-redis/v9"
)

const (
	redisKeyPrefix     = "postgen:session:"
	defaultDialTimeout = 5 * time.Second
)

// Redis keeps each batch as a JSON string with the session TTL as key expiry.
type Redis struct {
	client goredis.UniversalClient
	ttl    time.Duration
}

// NewRedis wraps an existing client.
func NewRedis(client goredis.UniversalClient, ttl time.Duration) *Redis {
	return &Redis{client: client, ttl: ttl}
}

// NewRedisClient connects to a single Redis node described by redisURL and
// pings it once.
func NewRedisClient(ctx context.Context, redisURL string) (*goredis.Client, error) {
	if redisURL == "" {
		return nil, errors.New("redis url is required")
	}

	opts, err := goredis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	if opts.DialTimeout == 0 {
		opts.DialTimeout = defaultDialTimeout
	}
	if opts.ReadTimeout == 0 {
		opts.ReadTimeout = defaultDialTimeout
	}
	if opts.WriteTimeout == 0 {
		opts.WriteTimeout = defaultDialTimeout
	}

	client := goredis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()

		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return client, nil
}

func (r *Redis) key(id string) string {
	return redisKeyPrefix + id
}

// Load fetches and decodes the batch for id.
func (r *Redis) Load(ctx context.Context, id string) ([]content.Post, error) {
	raw, err := r.client.Get(ctx, r.key(id)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get session: %w", err)
	}

	var posts []content.Post
	if err := json.Unmarshal(raw, &posts); err != nil {
		return nil, fmt.Errorf("decode session batch: %w", err)
	}

	return posts, nil
}

// Save stores the batch for id and resets its expiry.
func (r *Redis) Save(ctx context.Context, id string, posts []content.Post) error {
	if posts == nil {
		posts = []content.Post{}
	}

	raw, err := json.Marshal(posts)
	if err != nil {
		return fmt.Errorf("encode session batch: %w", err)
	}

	if err := r.client.Set(ctx, r.key(id), raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set session: %w", err)
	}

	return nil
}

// Close closes the underlying client.
func (r *Redis) Close() error {
	return r.client.Close()
}
