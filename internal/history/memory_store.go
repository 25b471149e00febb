package history

import (
	"fmt"

	"luzialabs/luzia/internal/models"
)

// MemoryStore keeps the history in memory. It backs dry runs and tests.
type MemoryStore struct {
	entries []models.ConsumptionEntry

	// AppendError and LoadError, when set, are returned instead of doing the
	// operation.
	AppendError error
	LoadError   error
}

// NewMemoryStore returns a store pre-filled with entries.
func NewMemoryStore(entries ...models.ConsumptionEntry) *MemoryStore {
	return &MemoryStore{entries: append([]models.ConsumptionEntry(nil), entries...)}
}

func (m *MemoryStore) Append(entry models.ConsumptionEntry) error {
	if m.AppendError != nil {
		return m.AppendError
	}
	if err := entry.Validate(); err != nil {
		return fmt.Errorf("refusing to append invalid entry: %w", err)
	}
	m.entries = append(m.entries, entry)
	return nil
}

func (m *MemoryStore) Load() (*models.History, error) {
	if m.LoadError != nil {
		return nil, m.LoadError
	}
	return &models.History{Entries: append([]models.ConsumptionEntry(nil), m.entries...)}, nil
}
