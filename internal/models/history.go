package models

import "github.com/shopspring/decimal"

// History is the ordered content of the history log. Entries are in append
// order, which need not match Date or Month order.
type History struct {
	Entries []ConsumptionEntry
	// Skipped counts malformed rows that were discarded while loading.
	Skipped int
}

// Len returns the number of usable entries.
func (h *History) Len() int {
	if h == nil {
		return 0
	}
	return len(h.Entries)
}

// Last returns the most recently appended entry.
func (h *History) Last() (ConsumptionEntry, bool) {
	if h.Len() == 0 {
		return ConsumptionEntry{}, false
	}
	return h.Entries[len(h.Entries)-1], true
}

// Totals returns the total kWh of every entry in log order.
func (h *History) Totals() []decimal.Decimal {
	if h.Len() == 0 {
		return nil
	}
	totals := make([]decimal.Decimal, len(h.Entries))
	for i, e := range h.Entries {
		totals[i] = e.TotalKWh()
	}
	return totals
}
