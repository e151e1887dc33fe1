package openai

import (
	"fmt"

	"github.com/scoutbase/founderrag/core"
)

const explanationPromptTemplate = `Query: %q

Founder Profile:
- Name: %s
- Role: %s
- Company: %s
- Location: %s
- Keywords: %s
- About: %s
- Idea: %s
- Stage: %s

Generate a concise 1-2 sentence explanation of why this founder matches the query.
Focus on the most relevant matching aspects. Start with "Matched on" and cite specific fields.

Example: "Matched on keywords: healthtech, AI and role: Founder with experience in building diagnostic platforms for early disease detection."`

// buildExplanationPrompt composes the generation prompt embedding the query
// and the record's labeled fields. The field labels and "Matched on" lead-in
// are part of the contract with downstream consumers.
func buildExplanationPrompt(query string, record *core.Record) string {
	return fmt.Sprintf(explanationPromptTemplate,
		query,
		record.Name,
		record.Role,
		record.Company,
		record.Location,
		record.Keywords,
		record.About,
		record.Idea,
		record.Stage,
	)
}
