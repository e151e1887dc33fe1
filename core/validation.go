package core

import (
	"fmt"
	"strings"
)

// sentinel cell values that tabular exporters leave behind for missing data
var absentValues = map[string]bool{
	"nan":  true,
	"none": true,
	"null": true,
	"n/a":  true,
}

// NormalizeCell canonicalizes a raw tabular cell value. Whitespace is trimmed
// and the usual missing-data sentinels ("nan", "none", "null", "n/a") collapse
// to the empty string, so callers never see a sentinel masquerading as data.
func NormalizeCell(value string) string {
	value = strings.TrimSpace(value)
	if absentValues[strings.ToLower(value)] {
		return ""
	}
	return value
}

// SplitCommaList splits a comma-separated cell into trimmed, non-empty parts.
func SplitCommaList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ValidateRecord validates a Record according to domain rules.
//
// Validation rules:
//   - ID must not be empty (the loader fills in a content hash when the
//     dataset omits one)
//   - Name must not be empty
//
// All other fields are optional free text and may legitimately be empty.
func ValidateRecord(record *Record) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidRecord)
	}

	if record.ID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidRecord, ErrEmptyID)
	}

	if record.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidRecord, ErrEmptyName)
	}

	return nil
}
