package index

import "errors"

var (
	// ErrEmbedderRequired is returned when an embedder is not provided.
	ErrEmbedderRequired = errors.New("embedder required")

	// ErrEmptyCorpus is returned when Build is called with no records.
	ErrEmptyCorpus = errors.New("cannot build index over empty corpus")

	// ErrDimensionMismatch is returned when the embedding service returns
	// vectors of inconsistent dimensionality.
	ErrDimensionMismatch = errors.New("embedding dimension mismatch")
)
