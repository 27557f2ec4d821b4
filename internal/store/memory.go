package store

import (
	"sync"

	"NovaQuant/internal/model"
)

// MemoryStore keeps the trading document in memory. Used by tests and
// ephemeral runs where nothing should touch disk.
type MemoryStore struct {
	mu  sync.Mutex
	doc model.PaperTradingStore
}

// NewMemoryStore creates an in-memory store seeded with the given cash.
func NewMemoryStore(startingCashCents int64) *MemoryStore {
	return &MemoryStore{doc: Seed(startingCashCents)}
}

func (m *MemoryStore) Load() (model.PaperTradingStore, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.doc.Clone(), nil
}

func (m *MemoryStore) Save(s model.PaperTradingStore) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.doc = Normalize(s)
	return nil
}
