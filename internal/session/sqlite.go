package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/alkime/postgen/internal/content"

	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS sessions (
	id TEXT PRIMARY KEY,
	posts TEXT NOT NULL,
	expires_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_sessions_expires_at ON sessions(expires_at);
`

// SQLite keeps batches in a single-file database.
type SQLite struct {
	db  *sql.DB
	ttl time.Duration
	now func() time.Time
}

// NewSQLite opens (creating if needed) the database at path.
func NewSQLite(ctx context.Context, path string, ttl time.Duration) (*SQLite, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("failed to create session directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open session database: %w", err)
	}
	// SQLite allows a single writer.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		_ = db.Close()

		return nil, fmt.Errorf("migrate session database: %w", err)
	}

	return &SQLite{db: db, ttl: ttl, now: time.Now}, nil
}

// Load returns the batch for id if it has not expired.
func (s *SQLite) Load(ctx context.Context, id string) ([]content.Post, error) {
	var raw string
	err := s.db.QueryRowContext(ctx,
		`SELECT posts FROM sessions WHERE id = ? AND expires_at > ?`,
		id, s.now().Unix(),
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query session: %w", err)
	}

	var posts []content.Post
	if err := json.Unmarshal([]byte(raw), &posts); err != nil {
		return nil, fmt.Errorf("decode session batch: %w", err)
	}

	return posts, nil
}

// Save upserts the batch for id and deletes expired rows.
func (s *SQLite) Save(ctx context.Context, id string, posts []content.Post) error {
	if posts == nil {
		posts = []content.Post{}
	}

	raw, err := json.Marshal(posts)
	if err != nil {
		return fmt.Errorf("encode session batch: %w", err)
	}

	now := s.now()
	if _, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE expires_at <= ?`, now.Unix()); err != nil {
		return fmt.Errorf("purge expired sessions: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO sessions (id, posts, expires_at) VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET posts = excluded.posts, expires_at = excluded.expires_at`,
		id, string(raw), now.Add(s.ttl).Unix(),
	)
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	return nil
}

// Close closes the database.
func (s *SQLite) Close() error {
	return s.db.Close()
}
