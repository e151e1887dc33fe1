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


package explain

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/scoutbase/founderrag/ai"
	"github.com/scoutbase/founderrag/core"
)

// DefaultTimeout bounds a single generative explanation call.
const DefaultTimeout = 10 * time.Second

// Generator produces match explanations, preferring the generative service
// and degrading to the deterministic fallback on any error or timeout.
// Explain never fails to the caller.
type Generator struct {
	explainer ai.Explainer // nil means fallback-only operation
	timeout   time.Duration
	logger    *slog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithTimeout bounds each generative call. A slow explanation service must
// not stall concurrent queries; past the deadline the fallback answers.
func WithTimeout(timeout time.Duration) Option {
	return func(g *Generator) {
		if timeout > 0 {
			g.timeout = timeout
		}
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		if logger == nil {
			logger = slog.Default()
		}
		g.logger = logger
	}
}

// NewGenerator creates an explanation generator. A nil explainer is valid and
// puts the generator in fallback-only mode (offline operation).
func NewGenerator(explainer ai.Explainer, opts ...Option) *Generator {
	g := &Generator{
		explainer: explainer,
		timeout:   DefaultTimeout,
		logger:    slog.Default().With("component", "explain"),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generative reports whether the generative path is configured.
func (g *Generator) Generative() bool {
	return g.explainer != nil
}

// Explain returns a 1-2 sentence justification for why the record matches the
// query. Errors from the generative service are swallowed into the fallback;
// the caller always receives usable text.
func (g *Generator) Explain(ctx context.Context, query string, record *core.Record, rowIndex int) string {
	if g.explainer == nil {
		return Fallback(query, record, rowIndex)
	}

	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	text, err := g.explainer.ExplainMatch(callCtx, query, record)
	if err != nil {
		g.logger.Warn("generative explanation failed, using fallback", "recordID", record.ID, "err", err)
		return Fallback(query, record, rowIndex)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return Fallback(query, record, rowIndex)
	}
	return text
}
