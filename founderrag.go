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


package founderrag

import (
	"context"
	"log/slog"

	"github.com/scoutbase/founderrag/ai"
	"github.com/scoutbase/founderrag/ai/openai"
	"github.com/scoutbase/founderrag/corpus"
	"github.com/scoutbase/founderrag/explain"
	"github.com/scoutbase/founderrag/index"
	"github.com/scoutbase/founderrag/service"
)

// Engine owns the full retrieval pipeline: the founder corpus, the
// embedding index over it, the AI provider one and the search service. It
// is assembled once at startup; a degraded engine (missing dataset,
// unreachable embedding service) still constructs and reports itself as
// not ready.
type Engine struct {
	store    *corpus.Store
	index    *index.Index
	provider ai.Provider
	service  *service.Service
	logger   *slog.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*engineOptions)

type engineOptions struct {
	aiConfig     *ai.Config
	provider     ai.Provider
	datasetPaths []string
	indexOpts    []index.Option
	explainOpts  []explain.Option
	generative   bool
	logger       *slog.Logger
}

// WithAIConfig sets the AI service configuration used to build the
// OpenAI-compatible provider.
func WithAIConfig(config *ai.Config) EngineOption {
	return func(o *engineOptions) {
		o.aiConfig = config
	}
}

// WithProvider injects a pre-built AI provider, bypassing the
// OpenAI-compatible default. Used by tests and embedded deployments.
func WithProvider(provider ai.Provider) EngineOption {
	return func(o *engineOptions) {
		o.provider = provider
	}
}

// WithDatasetPaths overrides the candidate dataset file paths.
func WithDatasetPaths(paths ...string) EngineOption {
	return func(o *engineOptions) {
		o.datasetPaths = paths
	}
}

// WithIndexOptions forwards options to the embedding index.
func WithIndexOptions(opts ...index.Option) EngineOption {
	return func(o *engineOptions) {
		o.indexOpts = opts
	}
}

// WithExplainOptions forwards options to the explanation generator.
func WithExplainOptions(opts ...explain.Option) EngineOption {
	return func(o *engineOptions) {
		o.explainOpts = opts
	}
}

// WithoutGenerativeExplanations disables the generative explanation path;
// every explanation comes from the deterministic fallback.
func WithoutGenerativeExplanations() EngineOption {
	return func(o *engineOptions) {
		o.generative = false
	}
}

// WithLogger sets the logger shared by engine components.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(o *engineOptions) {
		o.logger = logger
	}
}

// NewEngine loads the corpus, builds the embedding index and wires the
// search service. Corpus or index failures leave the engine constructed
// but not ready; only wiring errors (bad AI config, nil dependencies) are
// returned.
func NewEngine(ctx context.Context, opts ...EngineOption) (*Engine, error) {
	options := &engineOptions{
		aiConfig:   ai.DefaultConfig(),
		generative: true,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}

	provider := options.provider
	if provider == nil {
		var err error
		provider, err = openai.NewProvider(options.aiConfig)
		if err != nil {
			return nil, err
		}
	}

	storeOpts := []corpus.Option{corpus.WithLogger(options.logger.With("component", "corpus"))}
	if len(options.datasetPaths) > 0 {
		storeOpts = append(storeOpts, corpus.WithPaths(options.datasetPaths...))
	}
	store := corpus.NewStore(storeOpts...)

	indexOpts := append(
		[]index.Option{index.WithLogger(options.logger.With("component", "index"))},
		options.indexOpts...,
	)
	idx, err := index.New(provider.Embedder(), indexOpts...)
	if err != nil {
		provider.Close()
		return nil, err
	}

	if store.Load() {
		if err := idx.Build(ctx, store); err != nil {
			options.logger.Error("index build failed, serving degraded", "err", err)
		}
	}

	var explainer ai.Explainer
	if options.generative {
		explainer = provider.Explainer()
	}
	explainOpts := append(
		[]explain.Option{explain.WithLogger(options.logger.With("component", "explain"))},
		options.explainOpts...,
	)
	generator := explain.NewGenerator(explainer, explainOpts...)

	svc, err := service.New(store, idx, generator,
		service.WithLogger(options.logger.With("component", "service")))
	if err != nil {
		provider.Close()
		return nil, err
	}

	return &Engine{
		store:    store,
		index:    idx,
		provider: provider,
		service:  svc,
		logger:   options.logger,
	}, nil
}

// Service returns the retrieval service.
func (e *Engine) Service() *service.Service {
	return e.service
}

// Store returns the founder corpus.
func (e *Engine) Store() *corpus.Store {
	return e.store
}

// Index returns the embedding index.
func (e *Engine) Index() *index.Index {
	return e.index
}

func (e *Engine) Close() error {
	if err := e.provider.Close(); err != nil {
		e.logger.Error("error closing AI provider", "err", err)
		return err
	}
	return nil
}
