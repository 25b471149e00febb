// Package history persists ConsumptionEntries in an append-only log and reads
// them back, tolerating rows it cannot understand.
package history

import (
	"luzialabs/luzia/internal/models"
)

// Store is the append-only history of consumption entries.
type Store interface {
	// Append adds entry after every existing entry. It never rewrites or
	// reorders what is already stored.
	Append(entry models.ConsumptionEntry) error

	// Load returns every usable entry in append order. Rows that cannot be
	// decoded are skipped and counted in History.Skipped. A store with no
	// data yet yields an empty History and no error.
	Load() (*models.History, error)
}
