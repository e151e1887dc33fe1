package explain

import (
	"fmt"
	"strings"

	"github.com/scoutbase/founderrag/core"
)

const maxFallbackClauses = 2

// Fallback builds a deterministic explanation with no external calls.
// Clauses are produced in a fixed priority order (keywords, role, location,
// stage), capped at two, joined with " and ", prefixed with "Matched on " and
// suffixed with the row index. The output is stable for identical input,
// which keeps offline operation and tests reproducible.
func Fallback(query string, record *core.Record, rowIndex int) string {
	queryLower := strings.ToLower(query)
	keywords := record.KeywordList()

	var clauses []string

	var overlapping []string
	for _, kw := range keywords {
		if strings.Contains(queryLower, strings.ToLower(kw)) {
			overlapping = append(overlapping, kw)
		}
	}
	if len(overlapping) > 0 {
		if len(overlapping) > 2 {
			overlapping = overlapping[:2]
		}
		clauses = append(clauses, "keywords: "+strings.Join(overlapping, ", "))
	}

	if record.Role != "" && strings.Contains(queryLower, strings.ToLower(record.Role)) {
		clauses = append(clauses, "role: "+record.Role)
	}

	if record.Location != "" && locationInQuery(queryLower, record.Location) {
		clauses = append(clauses, "location: "+record.Location)
	}

	if record.Stage != "" && strings.Contains(queryLower, strings.ToLower(record.Stage)) {
		clauses = append(clauses, "stage: "+record.Stage)
	}

	// Guaranteed non-empty: cite the primary keyword and role.
	if len(clauses) == 0 {
		primary := "technology"
		if len(keywords) > 0 {
			primary = keywords[0]
		}
		clauses = append(clauses, fmt.Sprintf("expertise in %s, role: %s", primary, record.Role))
	}

	if len(clauses) > maxFallbackClauses {
		clauses = clauses[:maxFallbackClauses]
	}

	return fmt.Sprintf("Matched on %s (row id: %d)", strings.Join(clauses, " and "), rowIndex)
}

func locationInQuery(queryLower, location string) bool {
	if strings.Contains(queryLower, strings.ToLower(location)) {
		return true
	}
	for _, part := range strings.Split(location, ", ") {
		if part != "" && strings.Contains(queryLower, strings.ToLower(part)) {
			return true
		}
	}
	return false
}
