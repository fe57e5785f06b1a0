package utils

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// NormalizeDate canonicalizes a client-supplied date to a YYYY-MM-DD string.
// Accepts bare dates and RFC3339 timestamps; the time component is dropped
// so equality is calendar-day equality.
func NormalizeDate(raw string) (string, error) {
	if raw == "" {
		return "", fmt.Errorf("date is required")
	}
	if t, err := time.Parse(DateLayout, raw); err == nil {
		return t.Format(DateLayout), nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC().Format(DateLayout), nil
	}
	return "", fmt.Errorf("invalid date %q, want YYYY-MM-DD", raw)
}
