// Package session keeps the last generated batch of posts for each browser
// session. Every backend expires a batch once its TTL has passed.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/alkime/postgen/internal/config"
	"github.com/alkime/postgen/internal/content"
	"github.com/alkime/postgen/internal/workdir"
)

// ErrNotFound is returned by Load when the session has no live batch.
var ErrNotFound = errors.New("session batch not found")

// Store maps a session identifier to its batch of posts. Save replaces the
// whole batch.
type Store interface {
	Load(ctx context.Context, id string) ([]content.Post, error)
	Save(ctx context.Context, id string, posts []content.Post) error
	Close() error
}

// DefaultSQLiteFile is the database file name used when no path is configured.
const DefaultSQLiteFile = "sessions.db"

// Open builds the backend selected by cfg.Store.
func Open(ctx context.Context, cfg config.Session, logger *slog.Logger) (Store, error) {
	switch cfg.Store {
	case config.StoreMemory:
		logger.Debug("Using in-memory session store", "ttl", cfg.TTL)

		return NewMemory(cfg.TTL), nil
	case config.StoreRedis:
		client, err := NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		logger.Debug("Using redis session store", "ttl", cfg.TTL)

		return NewRedis(client, cfg.TTL), nil
	case config.StoreSQLite:
		path := cfg.SQLitePath
		if path == "" {
			if err := workdir.Prep(); err != nil {
				return nil, err
			}

			var err error
			if path, err = workdir.FilePath(DefaultSQLiteFile); err != nil {
				return nil, err
			}
		}
		logger.Debug("Using sqlite session store", "path", path, "ttl", cfg.TTL)

		return NewSQLite(ctx, path, cfg.TTL)
	default:
		return nil, fmt.Errorf("unknown session store %q", cfg.Store)
	}
}

func clone(posts []content.Post) []content.Post {
	out := make([]content.Post, len(posts))
	copy(out, posts)

	return out
}
