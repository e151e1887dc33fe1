package explain

import (
	"fmt"
	"strings"
	"testing"

	"github.com/scoutbase/founderrag/core"
	"github.com/stretchr/testify/assert"
)

func founderRecord() *core.Record {
	return &core.Record{
		ID:       "f001",
		Name:     "Ava Chen",
		Role:     "Founder",
		Company:  "Nimbus Health",
		Location: "San Francisco, USA",
		Stage:    "seed",
		Keywords: "healthtech, AI, analytics",
		About:    "Former Google engineer with expertise in machine learning.",
	}
}

func TestFallback(t *testing.T) {
	t.Run("keyword clause cites overlapping keywords", func(t *testing.T) {
		text := Fallback("healthtech diagnostics", founderRecord(), 4)
		assert.Equal(t, "Matched on keywords: healthtech (row id: 4)", text)
	})

	t.Run("keyword clause caps at two keywords", func(t *testing.T) {
		text := Fallback("healthtech ai analytics platform", founderRecord(), 0)
		assert.Contains(t, text, "keywords: healthtech, AI")
		assert.NotContains(t, text, "analytics")
	})

	t.Run("clause order is keywords then role", func(t *testing.T) {
		text := Fallback("healthtech founder", founderRecord(), 2)
		assert.Equal(t, "Matched on keywords: healthtech and role: Founder (row id: 2)", text)
	})

	t.Run("at most two clauses", func(t *testing.T) {
		// keywords, role, and location all match; location must be dropped.
		text := Fallback("healthtech founder in san francisco", founderRecord(), 7)
		assert.Contains(t, text, "keywords: healthtech")
		assert.Contains(t, text, "role: Founder")
		assert.NotContains(t, text, "location")
	})

	t.Run("location clause cites full literal value", func(t *testing.T) {
		text := Fallback("anyone in san francisco", founderRecord(), 3)
		assert.Equal(t, "Matched on location: San Francisco, USA (row id: 3)", text)
	})

	t.Run("stage clause", func(t *testing.T) {
		text := Fallback("seed startups", founderRecord(), 9)
		assert.Contains(t, text, "stage: seed")
	})

	t.Run("default clause from primary keyword and role", func(t *testing.T) {
		text := Fallback("nothing in common", founderRecord(), 5)
		assert.Equal(t, "Matched on expertise in healthtech, role: Founder (row id: 5)", text)
	})

	t.Run("default clause without keywords uses technology", func(t *testing.T) {
		rec := &core.Record{ID: "f002", Name: "Ben Ortiz", Role: "Engineer"}
		text := Fallback("nothing in common", rec, 8)
		assert.Equal(t, "Matched on expertise in technology, role: Engineer (row id: 8)", text)
	})

	t.Run("deterministic", func(t *testing.T) {
		a := Fallback("healthtech founder", founderRecord(), 1)
		b := Fallback("healthtech founder", founderRecord(), 1)
		assert.Equal(t, a, b)
	})
}

func TestFallbackFormat(t *testing.T) {
	queries := []string{"healthtech", "founder in san francisco", "completely unrelated", ""}
	for i, q := range queries {
		t.Run(fmt.Sprintf("query %d", i), func(t *testing.T) {
			text := Fallback(q, founderRecord(), i)
			assert.True(t, strings.HasPrefix(text, "Matched on "), "prefix missing: %q", text)
			assert.True(t, strings.HasSuffix(text, fmt.Sprintf("(row id: %d)", i)), "suffix missing: %q", text)
		})
	}
}

func TestFallbackScenarioFintech(t *testing.T) {
	rec := &core.Record{
		ID:       "fA",
		Name:     "Ben Ortiz",
		Role:     "Founder",
		Keywords: "fintech, SaaS",
	}
	text := Fallback("fintech lending app", rec, 0)
	assert.Contains(t, text, "keywords: fintech")
}
