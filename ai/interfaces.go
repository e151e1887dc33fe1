package ai

import (
	"context"

	"github.com/scoutbase/founderrag/core"
)

// Embedder generates vector embeddings from text for semantic similarity search.
// Implementations must be thread-safe for concurrent use.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	// The returned vector represents the semantic meaning of the text.
	// Returns an error if the embedding generation fails.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings in a batch.
	// Batch processing is more efficient than calling EmbedText multiple times.
	// The returned slice contains embeddings in the same order as the input texts.
	// Returns an error if any embedding generation fails.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// Explainer produces a short natural-language justification for why a founder
// record matches a query. Implementations must be thread-safe for concurrent use.
type Explainer interface {
	// ExplainMatch generates a 1-2 sentence explanation beginning with
	// "Matched on" that cites the record fields most relevant to the query.
	// Returns an error if generation fails; callers are expected to fall back
	// to a deterministic explanation rather than surface the error.
	ExplainMatch(ctx context.Context, query string, record *core.Record) (string, error)
}

// Provider aggregates AI services for convenient initialization and lifecycle management.
// A provider creates and manages Embedder and Explainer instances,
// ensuring they share configuration and resources appropriately.
type Provider interface {
	// Embedder returns the text embedding service.
	// The returned Embedder is safe for concurrent use.
	Embedder() Embedder

	// Explainer returns the match explanation service.
	// The returned Explainer is safe for concurrent use.
	Explainer() Explainer

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
