package explain

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/scoutbase/founderrag/ai/mock"
	"github.com/scoutbase/founderrag/core"
	"github.com/stretchr/testify/assert"
)

func TestExplain(t *testing.T) {
	ctx := context.Background()

	t.Run("prefers generative text verbatim trimmed", func(t *testing.T) {
		explainer := mock.NewMockExplainer()
		explainer.ExplainMatchFunc = func(ctx context.Context, query string, record *core.Record) (string, error) {
			return "  Matched on keywords: healthtech, AI and role: Founder.  ", nil
		}

		gen := NewGenerator(explainer)
		text := gen.Explain(ctx, "healthtech founders", founderRecord(), 0)
		assert.Equal(t, "Matched on keywords: healthtech, AI and role: Founder.", text)
	})

	t.Run("error routes to fallback", func(t *testing.T) {
		explainer := mock.NewMockExplainer()
		explainer.ExplainMatchFunc = func(ctx context.Context, query string, record *core.Record) (string, error) {
			return "", errors.New("service down")
		}

		gen := NewGenerator(explainer)
		text := gen.Explain(ctx, "healthtech founders", founderRecord(), 3)
		assert.Equal(t, Fallback("healthtech founders", founderRecord(), 3), text)
	})

	t.Run("empty completion routes to fallback", func(t *testing.T) {
		explainer := mock.NewMockExplainer()
		explainer.ExplainMatchFunc = func(ctx context.Context, query string, record *core.Record) (string, error) {
			return "   ", nil
		}

		gen := NewGenerator(explainer)
		text := gen.Explain(ctx, "healthtech founders", founderRecord(), 3)
		assert.Equal(t, Fallback("healthtech founders", founderRecord(), 3), text)
	})

	t.Run("nil explainer means fallback-only", func(t *testing.T) {
		gen := NewGenerator(nil)
		assert.False(t, gen.Generative())

		text := gen.Explain(ctx, "healthtech founders", founderRecord(), 1)
		assert.Equal(t, Fallback("healthtech founders", founderRecord(), 1), text)
	})

	t.Run("slow call is bounded by timeout", func(t *testing.T) {
		explainer := mock.NewMockExplainer()
		explainer.ExplainMatchFunc = func(ctx context.Context, query string, record *core.Record) (string, error) {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(5 * time.Second):
				return "too late", nil
			}
		}

		gen := NewGenerator(explainer, WithTimeout(20*time.Millisecond))

		start := time.Now()
		text := gen.Explain(ctx, "healthtech founders", founderRecord(), 2)
		assert.Less(t, time.Since(start), time.Second)
		assert.Equal(t, Fallback("healthtech founders", founderRecord(), 2), text)
	})

	t.Run("generative flag", func(t *testing.T) {
		assert.True(t, NewGenerator(mock.NewMockExplainer()).Generative())
	})
}
