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


// Package config loads the founderrag application configuration from a
// YAML file with environment-variable overrides. Component packages stay
// configured through functional options; this package only feeds the CLI
// layer.
package config

import (
	"errors"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// AIConfig holds connection details for the OpenAI-compatible embedding
// and generation services.
type AIConfig struct {
	EmbeddingHost  string `yaml:"embedding_host"`
	EmbeddingModel string `yaml:"embedding_model"`
	GeneratorHost  string `yaml:"generator_host"`
	GeneratorModel string `yaml:"generator_model"`
	TokenEnv       string `yaml:"token_env"`
}

// DatasetConfig configures corpus loading.
type DatasetConfig struct {
	// Paths are tried in order; the first readable file wins. Empty means
	// the built-in candidate paths.
	Paths []string `yaml:"paths"`
}

// IndexConfig configures the embedding index build.
type IndexConfig struct {
	PoolSize  int `yaml:"pool_size"`
	BatchSize int `yaml:"batch_size"`
}

// ExplainConfig configures explanation generation.
type ExplainConfig struct {
	TimeoutSecs int  `yaml:"timeout_secs"`
	Generative  bool `yaml:"generative"`
}

// AppConfig is the root application configuration.
type AppConfig struct {
	Dataset DatasetConfig `yaml:"dataset"`
	AI      AIConfig      `yaml:"ai"`
	Index   IndexConfig   `yaml:"index"`
	Explain ExplainConfig `yaml:"explain"`
}

// Load reads the config from path. A missing file yields the defaults.
// Environment overrides are applied after parsing.
func Load(path string) (*AppConfig, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	applyDefaults(cfg)
	applyEnvOverrides(cfg)
	return cfg, nil
}

// Token resolves the API token from the configured environment variable.
// OpenAI-compatible local services accept any non-empty value.
func (c *AppConfig) Token() string {
	if c.AI.TokenEnv == "" {
		return ""
	}
	return os.Getenv(c.AI.TokenEnv)
}

func defaultConfig() *AppConfig {
	return &AppConfig{
		AI: AIConfig{
			EmbeddingHost:  "http://localhost:11434/v1",
			EmbeddingModel: "all-minilm",
			GeneratorModel: "qwen2.5:3b",
			TokenEnv:       "FOUNDERRAG_API_TOKEN",
		},
		Index: IndexConfig{
			BatchSize: 32,
		},
		Explain: ExplainConfig{
			TimeoutSecs: 10,
			Generative:  true,
		},
	}
}

func applyDefaults(cfg *AppConfig) {
	def := defaultConfig()
	if cfg.AI.EmbeddingHost == "" {
		cfg.AI.EmbeddingHost = def.AI.EmbeddingHost
	}
	if cfg.AI.EmbeddingModel == "" {
		cfg.AI.EmbeddingModel = def.AI.EmbeddingModel
	}
	if cfg.AI.GeneratorHost == "" {
		cfg.AI.GeneratorHost = cfg.AI.EmbeddingHost
	}
	if cfg.AI.GeneratorModel == "" {
		cfg.AI.GeneratorModel = def.AI.GeneratorModel
	}
	if cfg.AI.TokenEnv == "" {
		cfg.AI.TokenEnv = def.AI.TokenEnv
	}
	if cfg.Index.BatchSize == 0 {
		cfg.Index.BatchSize = def.Index.BatchSize
	}
	if cfg.Explain.TimeoutSecs == 0 {
		cfg.Explain.TimeoutSecs = def.Explain.TimeoutSecs
	}
}

func applyEnvOverrides(cfg *AppConfig) {
	if v := os.Getenv("FOUNDERRAG_EMBEDDING_HOST"); v != "" {
		cfg.AI.EmbeddingHost = v
	}
	if v := os.Getenv("FOUNDERRAG_EMBEDDING_MODEL"); v != "" {
		cfg.AI.EmbeddingModel = v
	}
	if v := os.Getenv("FOUNDERRAG_GENERATOR_HOST"); v != "" {
		cfg.AI.GeneratorHost = v
	}
	if v := os.Getenv("FOUNDERRAG_GENERATOR_MODEL"); v != "" {
		cfg.AI.GeneratorModel = v
	}
	if v := os.Getenv("FOUNDERRAG_DATASET_PATH"); v != "" {
		cfg.Dataset.Paths = []string{v}
	}
	if v := os.Getenv("FOUNDERRAG_GENERATIVE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Explain.Generative = b
		}
	}
}
