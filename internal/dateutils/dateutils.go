// Package dateutils provides the month labels and date helpers used by the
// tracker.
package dateutils

import (
	"fmt"
	"strings"
	"time"
)

// DateLayoutISO is the layout of entry dates in the history log.
const DateLayoutISO = "2006-01-02"

// MonthLabels is the fixed set of month names an entry can describe.
var MonthLabels = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// NormalizeMonth returns the canonical label for s. It accepts any case, the
// three-letter abbreviation or the month number (1-12).
func NormalizeMonth(s string) (string, error) {
	cleaned := strings.TrimSpace(s)
	if cleaned == "" {
		return "", fmt.Errorf("month is required")
	}

	var n int
	if _, err := fmt.Sscanf(cleaned, "%d", &n); err == nil && fmt.Sprint(n) == cleaned {
		if n < 1 || n > 12 {
			return "", fmt.Errorf("month number must be between 1 and 12, got %d", n)
		}
		return MonthLabels[n-1], nil
	}

	lower := strings.ToLower(cleaned)
	for _, label := range MonthLabels {
		l := strings.ToLower(label)
		if lower == l || (len(lower) == 3 && strings.HasPrefix(l, lower)) {
			return label, nil
		}
	}
	return "", fmt.Errorf("unknown month %q", s)
}

// CurrentMonth returns the label of the month containing t.
func CurrentMonth(t time.Time) string {
	return MonthLabels[t.Month()-1]
}

// FormatDate formats t with layout, defaulting to DateLayoutISO.
func FormatDate(t time.Time, layout string) string {
	if layout == "" {
		layout = DateLayoutISO
	}
	return t.Format(layout)
}
