package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/scoutbase/founderrag/ai/mock"
	"github.com/scoutbase/founderrag/core"
	"github.com/scoutbase/founderrag/corpus"
	"github.com/scoutbase/founderrag/explain"
	"github.com/scoutbase/founderrag/index"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore() *corpus.Store {
	return corpus.NewStaticStore(
		&core.Record{
			ID: "fA", Name: "Ava Chen", Role: "Founder", Company: "Nimbus Health",
			Location: "San Francisco, USA", Stage: "seed", Keywords: "fintech, AI",
			About: "Ex-Stripe engineer with expertise in financial modeling.",
		},
		&core.Record{
			ID: "fB", Name: "Ben Ortiz", Role: "Engineer", Company: "Ledgerly",
			Location: "Berlin, Germany", Keywords: "healthtech",
			About: "Former Google engineer.",
		},
		&core.Record{
			ID: "fC", Name: "Cara Lim", Role: "PM", Company: "Wavely",
			Location: "Singapore", Keywords: "edtech",
			About: "Former Amazon manager.",
		},
	)
}

func newReadyService(t *testing.T, explainer *mock.MockExplainer) *Service {
	t.Helper()

	store := testStore()
	idx, err := index.New(mock.NewMockEmbedder())
	require.NoError(t, err)
	require.NoError(t, idx.Build(context.Background(), store))

	var gen *explain.Generator
	if explainer != nil {
		gen = explain.NewGenerator(explainer)
	} else {
		gen = explain.NewGenerator(nil)
	}

	svc, err := New(store, idx, gen)
	require.NoError(t, err)
	return svc
}

func TestNew(t *testing.T) {
	store := testStore()
	idx, err := index.New(mock.NewMockEmbedder())
	require.NoError(t, err)
	gen := explain.NewGenerator(nil)

	t.Run("valid", func(t *testing.T) {
		svc, err := New(store, idx, gen)
		require.NoError(t, err)
		assert.NotNil(t, svc)
	})

	t.Run("nil store", func(t *testing.T) {
		_, err := New(nil, idx, gen)
		assert.Equal(t, ErrCorpusRequired, err)
	})

	t.Run("nil index", func(t *testing.T) {
		_, err := New(store, nil, gen)
		assert.Equal(t, ErrIndexRequired, err)
	})

	t.Run("nil generator", func(t *testing.T) {
		_, err := New(store, idx, nil)
		assert.Equal(t, ErrGeneratorRequired, err)
	})
}

func TestIsReady(t *testing.T) {
	t.Run("ready after load and build", func(t *testing.T) {
		svc := newReadyService(t, nil)
		assert.True(t, svc.IsReady())

		ready := svc.Ready()
		assert.True(t, ready.DatasetLoaded)
		assert.True(t, ready.IndexBuilt)
		assert.False(t, ready.Generative)
		assert.Equal(t, 3, ready.TotalFounders)
	})

	t.Run("empty corpus is never ready", func(t *testing.T) {
		store := corpus.NewStaticStore()
		idx, err := index.New(mock.NewMockEmbedder())
		require.NoError(t, err)
		assert.Error(t, idx.Build(context.Background(), store))

		svc, err := New(store, idx, explain.NewGenerator(nil))
		require.NoError(t, err)
		assert.False(t, svc.IsReady())

		results, err := svc.Search(context.Background(), "anything", 5)
		require.NoError(t, err)
		assert.Empty(t, results)

		_, err = svc.Stats()
		assert.ErrorIs(t, err, ErrDatasetNotLoaded)
	})
}

func TestSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("assembles explained results in index order", func(t *testing.T) {
		svc := newReadyService(t, nil)

		results, err := svc.Search(ctx, "fintech lending app", 3)
		require.NoError(t, err)
		require.Len(t, results, 3)

		for i, res := range results {
			assert.NotEmpty(t, res.ID)
			assert.NotEmpty(t, res.MatchedFields)
			assert.True(t, strings.HasPrefix(res.Explanation, "Matched on "))
			if i > 0 {
				assert.LessOrEqual(t, res.Score, results[i-1].Score)
			}
		}
	})

	t.Run("record with matching keyword cites it", func(t *testing.T) {
		svc := newReadyService(t, nil)

		results, err := svc.Search(ctx, "fintech lending app", 3)
		require.NoError(t, err)

		var hitA *core.SearchResult
		for _, res := range results {
			if res.ID == "fA" {
				hitA = res
			}
		}
		require.NotNil(t, hitA)
		assert.Contains(t, hitA.MatchedFields, "keywords")
		assert.Contains(t, hitA.Explanation, "keywords: fintech")
	})

	t.Run("limit caps results", func(t *testing.T) {
		svc := newReadyService(t, nil)

		results, err := svc.Search(ctx, "founders", 2)
		require.NoError(t, err)
		assert.Len(t, results, 2)
	})

	t.Run("zero and negative limits clamp to one", func(t *testing.T) {
		svc := newReadyService(t, nil)

		for _, limit := range []int{0, -5} {
			results, err := svc.Search(ctx, "founders", limit)
			require.NoError(t, err)
			assert.Len(t, results, 1)
		}
	})

	t.Run("oversized limit clamps to max", func(t *testing.T) {
		svc := newReadyService(t, nil)

		results, err := svc.Search(ctx, "founders", 500)
		require.NoError(t, err)
		assert.Len(t, results, 3) // corpus smaller than MaxLimit
	})

	t.Run("empty query rejected", func(t *testing.T) {
		svc := newReadyService(t, nil)

		_, err := svc.Search(ctx, "", 5)
		assert.ErrorIs(t, err, ErrEmptyQuery)

		_, err = svc.Search(ctx, "   ", 5)
		assert.ErrorIs(t, err, ErrEmptyQuery)
	})

	t.Run("identical queries yield identical output", func(t *testing.T) {
		svc := newReadyService(t, nil)

		first, err := svc.Search(ctx, "healthtech founders in berlin", 3)
		require.NoError(t, err)
		second, err := svc.Search(ctx, "healthtech founders in berlin", 3)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("failing explainer falls back deterministically", func(t *testing.T) {
		explainer := mock.NewMockExplainer()
		explainer.ExplainMatchFunc = func(ctx context.Context, query string, record *core.Record) (string, error) {
			return "", errors.New("generation unavailable")
		}
		svc := newReadyService(t, explainer)

		results, err := svc.Search(ctx, "fintech lending app", 3)
		require.NoError(t, err)
		require.NotEmpty(t, results)

		for _, res := range results {
			rec, getErr := svc.GetFounder(res.ID)
			require.NoError(t, getErr)
			assert.Equal(t, explain.Fallback("fintech lending app", rec, res.RowIndex), res.Explanation)
		}
	})

	t.Run("monitor observes pipeline stages", func(t *testing.T) {
		svc := newReadyService(t, nil)

		mon := &recordingMonitor{}
		results, err := svc.SearchWithMonitor(ctx, "founders", 2, mon)
		require.NoError(t, err)

		assert.Equal(t, "founders", mon.query)
		assert.Equal(t, 2, mon.limit)
		assert.Len(t, mon.candidates, 2)
		assert.Equal(t, len(results), mon.assembled)
		assert.Equal(t, results, mon.finished)
	})
}

type recordingMonitor struct {
	query      string
	limit      int
	candidates []core.Candidate
	assembled  int
	finished   []*core.SearchResult
}

func (m *recordingMonitor) Start(query string, limit int)              { m.query = query; m.limit = limit }
func (m *recordingMonitor) AfterVectorSearch(c []core.Candidate)       { m.candidates = c }
func (m *recordingMonitor) ResultAssembled(_ *core.SearchResult)       { m.assembled++ }
func (m *recordingMonitor) Finish(results []*core.SearchResult)        { m.finished = results }

func TestGetFounder(t *testing.T) {
	svc := newReadyService(t, nil)

	t.Run("round-trip every id", func(t *testing.T) {
		for _, id := range []string{"fA", "fB", "fC"} {
			rec, err := svc.GetFounder(id)
			require.NoError(t, err)
			assert.Equal(t, id, rec.ID)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.GetFounder("f999")
		assert.ErrorIs(t, err, core.ErrNotFound)
	})
}

func TestStats(t *testing.T) {
	svc := newReadyService(t, nil)

	snap, err := svc.Stats()
	require.NoError(t, err)
	assert.Equal(t, 3, snap.TotalFounders)
	assert.Equal(t, 3, snap.Companies)
	assert.NotEmpty(t, snap.TopKeywords)
}
