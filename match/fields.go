// Package match identifies which record fields plausibly explain why a
// founder profile matched a query. The heuristics are case-insensitive
// substring and word-overlap checks; they attribute matches, they do not
// rank them.
package match

import (
	"strings"

	"github.com/scoutbase/founderrag/core"
)

// Field names reported by Fields.
const (
	FieldKeywords = "keywords"
	FieldRole     = "role"
	FieldCompany  = "company"
	FieldLocation = "location"
	FieldStage    = "stage"
	FieldAbout    = "about"
	FieldIdea     = "idea"
)

// Fields returns the names of the record fields that plausibly contributed to
// a match for the query. It is deterministic and side-effect-free.
//
// When no field matches it returns {keywords, about} so downstream explanation
// logic always has at least one field to cite.
func Fields(query string, record *core.Record) []string {
	queryLower := strings.ToLower(query)

	var matched []string

	for _, kw := range record.KeywordList() {
		if strings.Contains(queryLower, strings.ToLower(kw)) {
			matched = append(matched, FieldKeywords)
			break
		}
	}

	if record.Role != "" && strings.Contains(queryLower, strings.ToLower(record.Role)) {
		matched = append(matched, FieldRole)
	}

	if record.Company != "" && strings.Contains(queryLower, strings.ToLower(record.Company)) {
		matched = append(matched, FieldCompany)
	}

	if locationMatches(queryLower, record.Location) {
		matched = append(matched, FieldLocation)
	}

	if record.Stage != "" && strings.Contains(queryLower, strings.ToLower(record.Stage)) {
		matched = append(matched, FieldStage)
	}

	queryWords := wordSet(queryLower)
	if intersects(wordSet(strings.ToLower(record.About)), queryWords) {
		matched = append(matched, FieldAbout)
	}
	if intersects(wordSet(strings.ToLower(record.Idea)), queryWords) {
		matched = append(matched, FieldIdea)
	}

	if len(matched) == 0 {
		return []string{FieldKeywords, FieldAbout}
	}
	return matched
}

// locationMatches checks the whole location string and each ", "-separated
// part (typically city and country) against the query.
func locationMatches(queryLower, location string) bool {
	if location == "" {
		return false
	}
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

func wordSet(text string) map[string]bool {
	words := strings.Fields(text)
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}

func intersects(a, b map[string]bool) bool {
	for w := range a {
		if b[w] {
			return true
		}
	}
	return false
}
