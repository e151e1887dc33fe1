// Package mock provides test double implementations of AI service interfaces.
//
// This package contains mock implementations of ai.Embedder, ai.Explainer,
// and ai.Provider for use in unit tests. The mocks allow tests to run without
// external AI service dependencies and enable controlled, deterministic behavior.
//
// # Usage in Tests
//
//	// Basic usage with default behavior
//	mockProvider := mock.NewMockProvider()
//	vector, err := mockProvider.Embedder().EmbedText(ctx, "test")
//
//	// Custom behavior injection
//	mockExplainer := mock.NewMockExplainer()
//	mockExplainer.ExplainMatchFunc = func(ctx context.Context, query string, record *core.Record) (string, error) {
//	    return "", errors.New("service down")
//	}
//
//	// Check call counts
//	count := mockExplainer.CallCount()
//
// # Default Behavior
//
//   - MockEmbedder: Returns deterministic unit vectors based on text hash
//   - MockExplainer: Returns a deterministic explanation citing the record
//   - MockProvider: Aggregates mock embedder and explainer
package mock
