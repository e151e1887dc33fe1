package match

import (
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
		Keywords: "healthtech, AI",
		Idea:     "Telemedicine app connecting rural patients with specialists",
		About:    "Former Google engineer with expertise in machine learning.",
	}
}

func TestFields(t *testing.T) {
	t.Run("keyword substring match", func(t *testing.T) {
		fields := Fields("looking for healthtech startups", founderRecord())
		assert.Contains(t, fields, FieldKeywords)
	})

	t.Run("keyword match is case-insensitive", func(t *testing.T) {
		fields := Fields("any ai founders around?", founderRecord())
		assert.Contains(t, fields, FieldKeywords)
	})

	t.Run("role match", func(t *testing.T) {
		fields := Fields("a founder in europe", founderRecord())
		assert.Contains(t, fields, FieldRole)
	})

	t.Run("company match", func(t *testing.T) {
		fields := Fields("tell me about nimbus health", founderRecord())
		assert.Contains(t, fields, FieldCompany)
	})

	t.Run("location matches whole string", func(t *testing.T) {
		fields := Fields("anyone in san francisco, usa", founderRecord())
		assert.Contains(t, fields, FieldLocation)
	})

	t.Run("location matches city part alone", func(t *testing.T) {
		fields := Fields("founders around san francisco", founderRecord())
		assert.Contains(t, fields, FieldLocation)
	})

	t.Run("location matches country part alone", func(t *testing.T) {
		fields := Fields("startups in the usa", founderRecord())
		assert.Contains(t, fields, FieldLocation)
	})

	t.Run("stage match", func(t *testing.T) {
		fields := Fields("seed stage companies", founderRecord())
		assert.Contains(t, fields, FieldStage)
	})

	t.Run("empty stage never matches", func(t *testing.T) {
		rec := founderRecord()
		rec.Stage = ""
		fields := Fields("seed stage companies", rec)
		assert.NotContains(t, fields, FieldStage)
	})

	t.Run("about word overlap", func(t *testing.T) {
		fields := Fields("machine learning experts", founderRecord())
		assert.Contains(t, fields, FieldAbout)
	})

	t.Run("idea word overlap", func(t *testing.T) {
		fields := Fields("telemedicine for rural areas", founderRecord())
		assert.Contains(t, fields, FieldIdea)
	})

	t.Run("multiple fields accumulate", func(t *testing.T) {
		fields := Fields("healthtech founder in san francisco", founderRecord())
		assert.Contains(t, fields, FieldKeywords)
		assert.Contains(t, fields, FieldRole)
		assert.Contains(t, fields, FieldLocation)
	})

	t.Run("default when nothing matches", func(t *testing.T) {
		fields := Fields("xyzzy", founderRecord())
		assert.Equal(t, []string{FieldKeywords, FieldAbout}, fields)
	})

	t.Run("never empty for any pair", func(t *testing.T) {
		queries := []string{"", "   ", "unrelated gibberish", "fintech lending app"}
		records := []*core.Record{founderRecord(), {}, {Keywords: ","}}
		for _, q := range queries {
			for _, rec := range records {
				assert.NotEmpty(t, Fields(q, rec))
			}
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		a := Fields("healthtech founder in san francisco", founderRecord())
		b := Fields("healthtech founder in san francisco", founderRecord())
		assert.Equal(t, a, b)
	})
}

func TestFieldsScenarioFintech(t *testing.T) {
	// Record whose keywords contain "fintech", query "fintech lending app".
	rec := &core.Record{
		ID:       "fA",
		Name:     "Ben Ortiz",
		Role:     "Founder",
		Keywords: "fintech, SaaS",
		About:    "Ex-Stripe engineer.",
	}
	fields := Fields("fintech lending app", rec)
	assert.Contains(t, fields, FieldKeywords)
}
