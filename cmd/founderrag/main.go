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


package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/scoutbase/founderrag"
	"github.com/scoutbase/founderrag/ai"
	"github.com/scoutbase/founderrag/config"
	"github.com/scoutbase/founderrag/explain"
	"github.com/scoutbase/founderrag/index"
)

func main() {
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "founderrag",
		Usage: "Semantic search over a founder profile corpus",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to YAML config file",
				Value:   "config.yaml",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "search",
				Usage:     "Find founders matching a natural-language query",
				ArgsUsage: "<query>",
				Action:    searchCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "limit",
						Aliases: []string{"n"},
						Usage:   "Maximum number of results",
						Value:   5,
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Emit results as JSON",
					},
				},
			},
			{
				Name:      "founder",
				Usage:     "Show the full profile for a founder id",
				ArgsUsage: "<id>",
				Action:    founderCommand,
			},
			{
				Name:   "stats",
				Usage:  "Print corpus statistics",
				Action: statsCommand,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func buildEngine(c *cli.Context) (*founderrag.Engine, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	aiConfig := ai.NewConfig(
		ai.WithEmbeddingHost(cfg.AI.EmbeddingHost),
		ai.WithEmbeddingModel(cfg.AI.EmbeddingModel),
		ai.WithGeneratorHost(cfg.AI.GeneratorHost),
		ai.WithGeneratorModel(cfg.AI.GeneratorModel),
		ai.WithToken(cfg.Token()),
	)
	if err := aiConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid AI configuration: %w", err)
	}

	opts := []founderrag.EngineOption{
		founderrag.WithAIConfig(aiConfig),
	}
	if len(cfg.Dataset.Paths) > 0 {
		opts = append(opts, founderrag.WithDatasetPaths(cfg.Dataset.Paths...))
	}
	var indexOpts []index.Option
	if cfg.Index.PoolSize > 0 {
		indexOpts = append(indexOpts, index.WithPoolSize(cfg.Index.PoolSize))
	}
	if cfg.Index.BatchSize > 0 {
		indexOpts = append(indexOpts, index.WithBatchSize(cfg.Index.BatchSize))
	}
	if len(indexOpts) > 0 {
		opts = append(opts, founderrag.WithIndexOptions(indexOpts...))
	}
	if cfg.Explain.TimeoutSecs > 0 {
		opts = append(opts, founderrag.WithExplainOptions(
			explain.WithTimeout(time.Duration(cfg.Explain.TimeoutSecs)*time.Second)))
	}
	if !cfg.Explain.Generative {
		opts = append(opts, founderrag.WithoutGenerativeExplanations())
	}

	return founderrag.NewEngine(c.Context, opts...)
}

func searchCommand(c *cli.Context) error {
	query := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if query == "" {
		return fmt.Errorf("query is required")
	}

	engine, err := buildEngine(c)
	if err != nil {
		return err
	}
	defer engine.Close()

	if !engine.Service().IsReady() {
		return fmt.Errorf("dataset not loaded or index not built; check the dataset path")
	}

	results, err := engine.Service().Search(context.Background(), query, c.Int("limit"))
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if c.Bool("json") {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Println("No matching founders.")
		return nil
	}
	for i, res := range results {
		fmt.Printf("%d. %s, %s at %s (%s)  [score %.4f]\n",
			i+1, res.Name, res.Role, res.Company, res.Location, res.Score)
		fmt.Printf("   %s\n", res.Explanation)
		fmt.Printf("   matched: %s\n\n", strings.Join(res.MatchedFields, ", "))
	}
	return nil
}

func founderCommand(c *cli.Context) error {
	id := c.Args().First()
	if id == "" {
		return fmt.Errorf("founder id is required")
	}

	engine, err := buildEngine(c)
	if err != nil {
		return err
	}
	defer engine.Close()

	rec, err := engine.Service().GetFounder(id)
	if err != nil {
		return fmt.Errorf("founder %q: %w", id, err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(rec)
}

func statsCommand(c *cli.Context) error {
	engine, err := buildEngine(c)
	if err != nil {
		return err
	}
	defer engine.Close()

	snap, err := engine.Service().Stats()
	if err != nil {
		return fmt.Errorf("stats unavailable: %w", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(snap)
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
