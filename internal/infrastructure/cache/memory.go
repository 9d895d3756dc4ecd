package cache

import (
	"context"
	"sync"
	"time"
)

// Entry is the last generated analysis and when it was produced
type Entry struct {
	Text        string
	GeneratedAt time.Time
	// Generation is bumped by every Reset
	Generation uint64
}

// Store holds a single analysis entry. Every method must be atomic with
// respect to the others so readers never see a torn entry.
type Store interface {
	Load(ctx context.Context) (Entry, error)
	// Reset replaces the entry with text and a zero time and bumps the
	// generation, returning the new value
	Reset(ctx context.Context, text string) (uint64, error)
	// SaveIfCurrent stores entry.Text and entry.GeneratedAt only while the
	// stored generation still equals entry.Generation
	SaveIfCurrent(ctx context.Context, entry Entry) (bool, error)
}

// MemoryStore keeps the entry in process memory
type MemoryStore struct {
	mu    sync.RWMutex
	entry Entry
}

// NewMemoryStore creates a new in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

var _ Store = (*MemoryStore)(nil)

// Load returns a copy of the current entry
func (ms *MemoryStore) Load(_ context.Context) (Entry, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	return ms.entry, nil
}

// Reset replaces the entry and bumps the generation
func (ms *MemoryStore) Reset(_ context.Context, text string) (uint64, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	ms.entry = Entry{Text: text, Generation: ms.entry.Generation + 1}
	return ms.entry.Generation, nil
}

// SaveIfCurrent replaces the entry unless a Reset happened since entry.Generation was read
func (ms *MemoryStore) SaveIfCurrent(_ context.Context, entry Entry) (bool, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	if ms.entry.Generation != entry.Generation {
		return false, nil
	}
	ms.entry = entry
	return true, nil
}
