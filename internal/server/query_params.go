package server

import (
	"strings"
	"time"
)

const dateOnlyLayout = "2006-01-02"

func parseOptionalDate(value string) (*time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil, nil
	}
	parsed, err := time.Parse(dateOnlyLayout, trimmed)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

// parseMonth accepts any date within the wanted month and defaults to the
// current month when empty. Normalization to the month key happens in the
// billing service.
func parseMonth(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Now().UTC(), nil
	}
	return time.Parse(dateOnlyLayout, trimmed)
}
