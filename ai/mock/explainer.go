package mock

import (
	"context"
	"fmt"

	"github.com/scoutbase/founderrag/core"
)

// MockExplainer is a test double for ai.Explainer.
// It allows custom behavior injection via function fields.
type MockExplainer struct {
	// ExplainMatchFunc is called by ExplainMatch if set.
	// If nil, uses default deterministic behavior.
	ExplainMatchFunc func(ctx context.Context, query string, record *core.Record) (string, error)

	callCount int
}

// NewMockExplainer creates a mock explainer with default deterministic behavior.
// Note: Returns concrete type to allow test assertions via GetMockExplainer().
func NewMockExplainer() *MockExplainer {
	return &MockExplainer{}
}

// ExplainMatch returns a deterministic explanation citing the record's name.
func (m *MockExplainer) ExplainMatch(ctx context.Context, query string, record *core.Record) (string, error) {
	m.callCount++

	if m.ExplainMatchFunc != nil {
		return m.ExplainMatchFunc(ctx, query, record)
	}

	return fmt.Sprintf("Matched on profile of %s for query %q.", record.Name, query), nil
}

// CallCount returns the number of times ExplainMatch was called.
func (m *MockExplainer) CallCount() int {
	return m.callCount
}

// Reset clears the call count and any injected behavior.
func (m *MockExplainer) Reset() {
	m.callCount = 0
	m.ExplainMatchFunc = nil
}
