// Copyright 2025 Poiesic Systems
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

	"github.com/urfave/cli/v2"

	"github.com/poiesic/resolvit/ai"
	"github.com/poiesic/resolvit/ai/openai"
	"github.com/poiesic/resolvit/aliasfile"
	"github.com/poiesic/resolvit/search"
	"github.com/poiesic/resolvit/textnorm"
	"github.com/poiesic/resolvit/textnorm/opencc"
)

func main() {
	app := &cli.App{
		Name:  "resolvit",
		Usage: "Resolve noisy free-text queries to catalog entities",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "search",
				Usage:     "Build an index from an alias document and resolve queries against it",
				Action:    searchCommand,
				ArgsUsage: "QUERY...",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "aliases",
						Aliases:  []string{"a"},
						Usage:    "Path to the alias JSON document",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "embedding-host",
						Usage: "Embedding service host URL",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:     "embedding-model",
						Usage:    "Embedding model name",
						Required: true,
					},
					&cli.IntFlag{
						Name:    "top-k",
						Aliases: []string{"k"},
						Usage:   "Maximum number of entities to return",
						Value:   5,
					},
					&cli.BoolFlag{
						Name:  "no-script-folding",
						Usage: "Disable traditional-to-simplified script folding",
					},
				},
			},
			{
				Name:   "merge",
				Usage:  "Apply add/remove overlay patches to an alias document",
				Action: mergeCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "aliases",
						Aliases:  []string{"a"},
						Usage:    "Path to the base alias JSON document",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "add",
						Usage: "Path to the overlay document with aliases to add",
					},
					&cli.StringFlag{
						Name:  "remove",
						Usage: "Path to the overlay document with aliases to remove",
					},
					&cli.StringFlag{
						Name:    "out",
						Aliases: []string{"o"},
						Usage:   "Output path for the merged corpus (defaults to stdout)",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func searchCommand(c *cli.Context) error {
	ctx := context.Background()

	if c.NArg() == 0 {
		return fmt.Errorf("at least one query argument is required")
	}

	corpus, err := aliasfile.Load(c.String("aliases"))
	if err != nil {
		return err
	}

	aiConfig := ai.NewConfig(
		ai.WithEmbeddingHost(c.String("embedding-host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
	)
	if err := aiConfig.Validate(); err != nil {
		return fmt.Errorf("invalid AI configuration: %w", err)
	}

	embedder, err := openai.NewEmbedder(aiConfig)
	if err != nil {
		return fmt.Errorf("failed to create embedder: %w", err)
	}

	normalizer, err := buildNormalizer(c.Bool("no-script-folding"))
	if err != nil {
		return err
	}

	engine, err := search.NewEngine(embedder, search.WithNormalizer(normalizer))
	if err != nil {
		return err
	}

	if err := engine.Rebuild(ctx, corpus); err != nil {
		return fmt.Errorf("failed to build index: %w", err)
	}

	topK := c.Int("top-k")
	for _, query := range c.Args().Slice() {
		results, err := engine.Search(ctx, query, topK)
		if err != nil {
			return err
		}

		fmt.Printf("%q: %d hits\n", query, len(results))
		for i, hit := range results {
			fmt.Printf("  %d: %s '%s' [%0.3f]\n", i+1, hit.EntityID, hit.Alias, hit.Score)
		}
	}

	return nil
}

func mergeCommand(c *cli.Context) error {
	merged, err := aliasfile.LoadMerged(c.String("aliases"), c.String("add"), c.String("remove"))
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(merged, "", "  ")
	if err != nil {
		return err
	}

	outPath := c.String("out")
	if outPath == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write merged corpus: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Merged corpus with %d entities written to %s\n", len(merged), outPath)
	return nil
}

func buildNormalizer(noScriptFolding bool) (*textnorm.Normalizer, error) {
	if noScriptFolding {
		return textnorm.New(nil), nil
	}

	converter, err := opencc.NewT2S()
	if err != nil {
		return nil, fmt.Errorf("failed to load script conversion tables: %w", err)
	}
	return textnorm.New(converter), nil
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
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

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
