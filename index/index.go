// Copyright 2025 Scoutbase Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package index

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"slices"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/scoutbase/founderrag/ai"
	"github.com/scoutbase/founderrag/core"
	"github.com/scoutbase/founderrag/corpus"
)

const defaultBatchSize = 32

// Index holds one unit-length embedding vector per corpus record, in row
// order, and answers exact top-K nearest-neighbor queries by inner product.
// After a successful Build the index is read-only and safe for concurrent
// searches without locking.
type Index struct {
	embedder  ai.Embedder
	vectors   [][]float32 // row index -> unit vector; nil until built
	dim       int
	built     bool
	poolSize  int
	batchSize int
	logger    *slog.Logger
}

// Option configures an Index.
type Option func(*Index) error

// WithPoolSize sets the worker pool size used while embedding the corpus.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(idx *Index) error {
		if size < 1 {
			size = 1
		}
		idx.poolSize = size
		return nil
	}
}

// WithBatchSize sets how many record texts are embedded per batch call.
func WithBatchSize(size int) Option {
	return func(idx *Index) error {
		if size < 1 {
			size = 1
		}
		idx.batchSize = size
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(idx *Index) error {
		if logger == nil {
			logger = slog.Default()
		}
		idx.logger = logger
		return nil
	}
}

// New creates a new, unbuilt embedding index.
func New(embedder ai.Embedder, opts ...Option) (*Index, error) {
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	idx := &Index{
		embedder:  embedder,
		poolSize:  poolSize,
		batchSize: defaultBatchSize,
		logger:    slog.Default().With("component", "index"),
	}

	for _, opt := range opts {
		if err := opt(idx); err != nil {
			return nil, err
		}
	}

	return idx, nil
}

// Built reports whether the index holds a searchable vector space.
func (idx *Index) Built() bool {
	return idx.built
}

// Size returns the number of indexed vectors.
func (idx *Index) Size() int {
	return len(idx.vectors)
}

// Dimension returns the embedding dimensionality, or 0 before Build.
func (idx *Index) Dimension() int {
	return idx.dim
}

// Build embeds every corpus record and constructs the searchable vector
// space. Record texts are embedded in batches on a worker pool, then
// L2-normalized in place so inner product equals cosine similarity.
//
// Build is all-or-nothing: any embedding failure leaves the index unbuilt.
func (idx *Index) Build(ctx context.Context, store *corpus.Store) error {
	if store == nil || store.Size() == 0 {
		return ErrEmptyCorpus
	}

	texts := make([]string, store.Size())
	for row, rec := range store.All() {
		texts[row] = CanonicalText(rec)
	}

	vectors := make([][]float32, len(texts))

	pool, err := ants.NewPool(idx.poolSize)
	if err != nil {
		return err
	}
	defer pool.Release()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)

	setErr := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
		}
		mu.Unlock()
	}

	for start := 0; start < len(texts); start += idx.batchSize {
		end := min(start+idx.batchSize, len(texts))

		wg.Add(1)
		batchStart, batch := start, texts[start:end]
		submitErr := pool.Submit(func() {
			defer wg.Done()

			embedded, err := idx.embedder.EmbedTexts(ctx, batch)
			if err != nil {
				setErr(err)
				return
			}
			if len(embedded) != len(batch) {
				setErr(fmt.Errorf("embedder returned %d vectors for %d texts", len(embedded), len(batch)))
				return
			}
			copy(vectors[batchStart:], embedded)
		})
		if submitErr != nil {
			wg.Done()
			setErr(submitErr)
			break
		}
	}

	wg.Wait()

	if firstErr != nil {
		idx.logger.Error("error embedding corpus", "err", firstErr)
		return firstErr
	}

	dim := len(vectors[0])
	for row, vec := range vectors {
		if len(vec) != dim {
			return fmt.Errorf("%w: row %d has %d dims, expected %d", ErrDimensionMismatch, row, len(vec), dim)
		}
		normalizeL2(vec)
	}

	idx.vectors = vectors
	idx.dim = dim
	idx.built = true
	idx.logger.Info("embedding index built", "records", len(vectors), "dimension", dim)
	return nil
}

// Search embeds the query with the same model, normalizes it, and performs an
// exact nearest-neighbor scan over every indexed vector. Results are strictly
// descending by score; exact ties break by ascending row index.
//
// An unbuilt index yields an empty result rather than an error; callers that
// care about the distinction should check Built separately.
func (idx *Index) Search(ctx context.Context, query string, k int) ([]core.Candidate, error) {
	if !idx.built {
		return nil, nil
	}
	if k < 1 {
		k = 1
	}

	queryVec, err := idx.embedder.EmbedText(ctx, query)
	if err != nil {
		idx.logger.Error("error embedding query", "err", err)
		return nil, err
	}
	normalizeL2(queryVec)

	candidates := make([]core.Candidate, len(idx.vectors))
	for row, vec := range idx.vectors {
		candidates[row] = core.Candidate{Row: row, Score: dotProduct(queryVec, vec)}
	}

	// Stable sort over row order keeps ties in ascending row index.
	slices.SortStableFunc(candidates, func(a, b core.Candidate) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		default:
			return 0
		}
	})

	if k > len(candidates) {
		k = len(candidates)
	}
	return candidates[:k], nil
}
