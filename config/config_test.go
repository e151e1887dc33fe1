package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.NoError(t, err)

		assert.Equal(t, "http://localhost:11434/v1", cfg.AI.EmbeddingHost)
		assert.Equal(t, "all-minilm", cfg.AI.EmbeddingModel)
		assert.Equal(t, "qwen2.5:3b", cfg.AI.GeneratorModel)
		assert.Equal(t, 32, cfg.Index.BatchSize)
		assert.Equal(t, 10, cfg.Explain.TimeoutSecs)
		assert.True(t, cfg.Explain.Generative)
		assert.Empty(t, cfg.Dataset.Paths)
	})

	t.Run("file values override defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		raw := `
dataset:
  paths:
    - /srv/founders.csv
ai:
  embedding_host: http://embed.internal:8080
  embedding_model: nomic-embed-text
explain:
  timeout_secs: 3
  generative: false
`
		require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, []string{"/srv/founders.csv"}, cfg.Dataset.Paths)
		assert.Equal(t, "http://embed.internal:8080", cfg.AI.EmbeddingHost)
		assert.Equal(t, "nomic-embed-text", cfg.AI.EmbeddingModel)
		assert.Equal(t, 3, cfg.Explain.TimeoutSecs)
		assert.False(t, cfg.Explain.Generative)
		// generator host inherits the embedding host when unset
		assert.Equal(t, "http://embed.internal:8080", cfg.AI.GeneratorHost)
		// untouched sections keep their defaults
		assert.Equal(t, "qwen2.5:3b", cfg.AI.GeneratorModel)
	})

	t.Run("malformed yaml is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("dataset: [unclosed"), 0o644))

		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("environment overrides file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		raw := "ai:\n  embedding_model: from-file\n"
		require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

		t.Setenv("FOUNDERRAG_EMBEDDING_MODEL", "from-env")
		t.Setenv("FOUNDERRAG_DATASET_PATH", "/tmp/override.csv")

		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, "from-env", cfg.AI.EmbeddingModel)
		assert.Equal(t, []string{"/tmp/override.csv"}, cfg.Dataset.Paths)
	})
}

func TestToken(t *testing.T) {
	t.Run("resolves configured env var", func(t *testing.T) {
		t.Setenv("FOUNDERRAG_API_TOKEN", "secret")

		cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.NoError(t, err)
		assert.Equal(t, "secret", cfg.Token())
	})

	t.Run("empty when unset", func(t *testing.T) {
		t.Setenv("FOUNDERRAG_API_TOKEN", "")

		cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.NoError(t, err)
		assert.Empty(t, cfg.Token())
	})
}
