package session

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/alkime/postgen/internal/config"
	"github.com/alkime/postgen/internal/content"
	"github.com/alkime/postgen/internal/logger"
	"github.com/alkime/postgen/internal/workdir"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var batch = []content.Post{
	{Date: "2024-01-01", Time: "09:00", Content: "Hello @world", Hashtags: "#a #b"},
	{Date: "2024-01-02", Time: "09:00"},
}

func newRedisStore(t *testing.T, ttl time.Duration) (*Redis, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	store := NewRedis(client, ttl)
	t.Cleanup(func() { _ = store.Close() })

	return store, mr
}

func newSQLiteStore(t *testing.T, ttl time.Duration) *SQLite {
	t.Helper()
	store, err := NewSQLite(context.Background(), filepath.Join(t.TempDir(), "nested", "sessions.db"), ttl)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return store
}

func TestStores_Contract(t *testing.T) {
	stores := map[string]func(t *testing.T) Store{
		"memory": func(*testing.T) Store { return NewMemory(time.Hour) },
		"redis": func(t *testing.T) Store {
			s, _ := newRedisStore(t, time.Hour)

			return s
		},
		"sqlite": func(t *testing.T) Store { return newSQLiteStore(t, time.Hour) },
	}

	for name, newStore := range stores {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			store := newStore(t)

			_, err := store.Load(ctx, "missing")
			require.ErrorIs(t, err, ErrNotFound)

			require.NoError(t, store.Save(ctx, "s1", batch))
			got, err := store.Load(ctx, "s1")
			require.NoError(t, err)
			assert.Equal(t, batch, got)

			replacement := []content.Post{{Date: "2025-05-05", Time: "10:30", Content: "new"}}
			require.NoError(t, store.Save(ctx, "s1", replacement))
			got, err = store.Load(ctx, "s1")
			require.NoError(t, err)
			assert.Equal(t, replacement, got)

			_, err = store.Load(ctx, "s2")
			require.ErrorIs(t, err, ErrNotFound, "sessions are isolated")

			require.NoError(t, store.Save(ctx, "empty", nil))
			got, err = store.Load(ctx, "empty")
			require.NoError(t, err)
			assert.Empty(t, got)
		})
	}
}

func TestMemory_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := NewMemory(time.Hour)

	posts := clone(batch)
	require.NoError(t, store.Save(ctx, "s1", posts))
	posts[0].Content = "mutated by caller"

	got, err := store.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "Hello @world", got[0].Content)

	got[0].Content = "mutated after load"
	again, err := store.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "Hello @world", again[0].Content)
}

func TestMemory_Expiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, time.January, 1, 12, 0, 0, 0, time.UTC)
	store := NewMemory(time.Hour)
	store.now = func() time.Time { return now }

	require.NoError(t, store.Save(ctx, "old", batch))

	now = now.Add(59 * time.Minute)
	_, err := store.Load(ctx, "old")
	require.NoError(t, err)

	now = now.Add(time.Minute)
	_, err = store.Load(ctx, "old")
	require.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 0, store.Len())
}

func TestMemory_SavePurgesExpired(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, time.January, 1, 12, 0, 0, 0, time.UTC)
	store := NewMemory(time.Hour)
	store.now = func() time.Time { return now }

	require.NoError(t, store.Save(ctx, "a", batch))
	require.NoError(t, store.Save(ctx, "b", batch))

	now = now.Add(2 * time.Hour)
	require.NoError(t, store.Save(ctx, "c", batch))
	assert.Equal(t, 1, store.Len())
}

func TestRedis_Expiry(t *testing.T) {
	ctx := context.Background()
	store, mr := newRedisStore(t, 10*time.Minute)

	require.NoError(t, store.Save(ctx, "s1", batch))
	assert.True(t, mr.Exists("postgen:session:s1"))
	assert.Equal(t, 10*time.Minute, mr.TTL("postgen:session:s1"))

	mr.FastForward(11 * time.Minute)
	_, err := store.Load(ctx, "s1")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestRedis_CorruptPayload(t *testing.T) {
	store, mr := newRedisStore(t, time.Minute)
	require.NoError(t, mr.Set("postgen:session:bad", "not json"))

	_, err := store.Load(context.Background(), "bad")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestNewRedisClient(t *testing.T) {
	ctx := context.Background()

	_, err := NewRedisClient(ctx, "")
	require.Error(t, err)

	_, err = NewRedisClient(ctx, "://bad")
	require.Error(t, err)

	mr := miniredis.RunT(t)
	client, err := NewRedisClient(ctx, "redis://"+mr.Addr()+"/0")
	require.NoError(t, err)
	require.NoError(t, client.Close())
}

func TestSQLite_Expiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, time.January, 1, 12, 0, 0, 0, time.UTC)
	store := newSQLiteStore(t, time.Hour)
	store.now = func() time.Time { return now }

	require.NoError(t, store.Save(ctx, "s1", batch))

	now = now.Add(30 * time.Minute)
	_, err := store.Load(ctx, "s1")
	require.NoError(t, err)

	now = now.Add(31 * time.Minute)
	_, err = store.Load(ctx, "s1")
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Save(ctx, "s2", batch))
	var rows int
	require.NoError(t, store.db.QueryRow(`SELECT COUNT(*) FROM sessions`).Scan(&rows))
	assert.Equal(t, 1, rows, "expired rows are purged on save")
}

func TestSQLite_ReopenKeepsBatches(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "sessions.db")

	first, err := NewSQLite(ctx, path, time.Hour)
	require.NoError(t, err)
	require.NoError(t, first.Save(ctx, "s1", batch))
	require.NoError(t, first.Close())

	second, err := NewSQLite(ctx, path, time.Hour)
	require.NoError(t, err)
	t.Cleanup(func() { _ = second.Close() })

	got, err := second.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, batch, got)
}

func TestOpen(t *testing.T) {
	ctx := context.Background()
	log := logger.Discard()

	t.Run("memory", func(t *testing.T) {
		store, err := Open(ctx, config.Session{Store: config.StoreMemory, TTL: time.Hour}, log)
		require.NoError(t, err)
		assert.IsType(t, &Memory{}, store)
	})

	t.Run("redis", func(t *testing.T) {
		mr := miniredis.RunT(t)
		store, err := Open(ctx, config.Session{Store: config.StoreRedis, TTL: time.Hour, RedisURL: "redis://" + mr.Addr()}, log)
		require.NoError(t, err)
		t.Cleanup(func() { _ = store.Close() })
		assert.IsType(t, &Redis{}, store)
	})

	t.Run("sqlite", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "s.db")
		store, err := Open(ctx, config.Session{Store: config.StoreSQLite, TTL: time.Hour, SQLitePath: path}, log)
		require.NoError(t, err)
		t.Cleanup(func() { _ = store.Close() })
		assert.IsType(t, &SQLite{}, store)
		assert.FileExists(t, path)
	})

	t.Run("sqlite default path", func(t *testing.T) {
		t.Setenv("HOME", t.TempDir())
		store, err := Open(ctx, config.Session{Store: config.StoreSQLite, TTL: time.Hour}, log)
		require.NoError(t, err)
		t.Cleanup(func() { _ = store.Close() })

		root, err := workdir.Root()
		require.NoError(t, err)
		info, err := os.Stat(root)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o700), info.Mode().Perm())

		want, err := workdir.FilePath(DefaultSQLiteFile)
		require.NoError(t, err)
		assert.FileExists(t, want)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := Open(ctx, config.Session{Store: "etcd", TTL: time.Hour}, log)
		require.Error(t, err)
	})
}
