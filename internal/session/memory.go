package session

import (
	"context"
	"sync"
	"time"

	"github.com/alkime/postgen/internal/content"
)

type memoryEntry struct {
	posts     []content.Post
	expiresAt time.Time
}

// Memory is a process-local Store. It is safe for concurrent use.
type Memory struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]memoryEntry
}

// NewMemory creates an empty in-memory store.
func NewMemory(ttl time.Duration) *Memory {
	return &Memory{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]memoryEntry),
	}
}

// Load returns a copy of the batch saved for id.
func (m *Memory) Load(_ context.Context, id string) ([]content.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.entries[id]
	if !ok {
		return nil, ErrNotFound
	}

	if !m.now().Before(entry.expiresAt) {
		delete(m.entries, id)

		return nil, ErrNotFound
	}

	return clone(entry.posts), nil
}

// Save replaces the batch for id and drops every expired session.
func (m *Memory) Save(_ context.Context, id string, posts []content.Post) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	for key, entry := range m.entries {
		if !now.Before(entry.expiresAt) {
			delete(m.entries, key)
		}
	}

	m.entries[id] = memoryEntry{
		posts:     clone(posts),
		expiresAt: now.Add(m.ttl),
	}

	return nil
}

// Len reports how many sessions are held, expired ones included.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.entries)
}

// Close is a no-op.
func (m *Memory) Close() error { return nil }
