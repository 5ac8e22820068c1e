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
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/poiesic/leadrank"
	"github.com/poiesic/leadrank/ai"
	"github.com/poiesic/leadrank/core"
	"github.com/poiesic/leadrank/pipeline"
	"github.com/poiesic/leadrank/source"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "leadrank",
		Usage: "Rank social posts against an interest profile",
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
				Name:   "rank",
				Usage:  "Rank a JSON dump of posts against a keyword profile",
				Action: rankCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "posts",
						Aliases:  []string{"p"},
						Usage:    "Path to a JSON file of candidate posts",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "primary",
						Usage:    "Comma-separated primary keywords",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "secondary",
						Usage: "Comma-separated secondary keywords",
					},
					&cli.StringFlag{
						Name:    "db",
						Aliases: []string{"d"},
						Usage:   "Path to BadgerDB directory for delivery history (in-memory if omitted)",
					},
					&cli.Float64Flag{
						Name:  "min-similarity",
						Usage: "Minimum fused score for a post to be returned",
						Value: 0.2,
					},
					&cli.IntFlag{
						Name:  "max-results",
						Usage: "Result cap (0 means unlimited)",
						Value: 10,
					},
					&cli.StringFlag{
						Name:  "window",
						Usage: "Recency window (all, day, week, month)",
						Value: "all",
					},
					&cli.StringFlag{
						Name:  "exclude",
						Usage: "Comma-separated source groups to exclude",
					},
					&cli.StringFlag{
						Name:  "description",
						Usage: "Product description; enables the engagement re-scoring stage",
					},
					&cli.StringFlag{
						Name:  "embedding-host",
						Usage: "Embedding service host URL",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:  "embedding-model",
						Usage: "Embedding model name",
						Value: "embeddinggemma",
					},
					&cli.StringFlag{
						Name:  "classifier-host",
						Usage: "Classifier service host URL (defaults to embedding-host)",
					},
					&cli.StringFlag{
						Name:  "classifier-model",
						Usage: "Classifier model name",
						Value: "qwen2.5:3b",
					},
					&cli.IntFlag{
						Name:  "shard-limit",
						Usage: "Maximum items fetched per shard",
						Value: 100,
					},
					&cli.DurationFlag{
						Name:  "shard-timeout",
						Usage: "Per-shard fetch timeout",
						Value: 15 * time.Second,
					},
					&cli.IntFlag{
						Name:  "pool-size",
						Usage: "Worker pool size for shard fetches (0 uses the default)",
					},
				},
			},
			{
				Name:   "purge-seen",
				Usage:  "Remove persisted delivery history for a profile",
				Action: purgeSeenCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "primary",
						Usage:    "Comma-separated primary keywords identifying the profile",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "secondary",
						Usage: "Comma-separated secondary keywords identifying the profile",
					},
					&cli.DurationFlag{
						Name:  "older-than",
						Usage: "Only purge entries delivered longer ago than this (0 purges everything)",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func rankCommand(c *cli.Context) error {
	ctx := context.Background()

	posts, err := loadPosts(c.String("posts"))
	if err != nil {
		return fmt.Errorf("failed to load posts: %w", err)
	}

	profile, err := buildProfile(c)
	if err != nil {
		return fmt.Errorf("invalid profile: %w", err)
	}

	engineOpts := []leadrank.EngineOption{}
	dbPath := c.String("db")
	if dbPath == "" {
		engineOpts = append(engineOpts, leadrank.WithInMemoryStorage())
	}
	if profile.Description == "" {
		engineOpts = append(engineOpts, leadrank.WithoutAI())
	} else {
		classifierHost := c.String("classifier-host")
		if classifierHost == "" {
			classifierHost = c.String("embedding-host")
		}
		aiConfig := ai.NewConfig(
			ai.WithEmbeddingHost(c.String("embedding-host")),
			ai.WithEmbeddingModel(c.String("embedding-model")),
			ai.WithClassifierHost(classifierHost),
			ai.WithClassifierModel(c.String("classifier-model")),
		)
		if err := aiConfig.Validate(); err != nil {
			return fmt.Errorf("invalid AI configuration: %w", err)
		}
		engineOpts = append(engineOpts, leadrank.WithAIConfig(aiConfig))
	}

	engine, err := leadrank.NewEngine(dbPath, engineOpts...)
	if err != nil {
		return fmt.Errorf("failed to open engine: %w", err)
	}
	defer engine.Close()

	pipelineOpts := []pipeline.Option{
		pipeline.WithShardLimit(c.Int("shard-limit")),
		pipeline.WithShardTimeout(c.Duration("shard-timeout")),
	}
	if size := c.Int("pool-size"); size > 0 {
		pipelineOpts = append(pipelineOpts, pipeline.WithPoolSize(size))
	}

	p, err := engine.NewPipeline(source.FromPosts(posts), pipelineOpts...)
	if err != nil {
		return fmt.Errorf("failed to create pipeline: %w", err)
	}
	defer p.Release()

	result, err := p.Run(ctx, profile)
	if err != nil {
		return fmt.Errorf("ranking failed: %w", err)
	}

	slog.Info("ranking complete",
		"fetched", result.Fetched,
		"filtered", result.Filtered,
		"duplicates", result.Duplicates,
		"shards_failed", result.ShardsFailed,
		"returned", len(result.Posts))

	return writeResults(os.Stdout, result.Posts)
}

func purgeSeenCommand(c *cli.Context) error {
	ctx := context.Background()

	profile, err := core.NewProfile(
		splitList(c.String("primary")),
		splitList(c.String("secondary")),
	)
	if err != nil {
		return fmt.Errorf("invalid profile: %w", err)
	}

	engine, err := leadrank.NewEngine(c.String("db"), leadrank.WithoutAI())
	if err != nil {
		return fmt.Errorf("failed to open engine: %w", err)
	}
	defer engine.Close()

	var before time.Time
	if olderThan := c.Duration("older-than"); olderThan > 0 {
		before = time.Now().UTC().Add(-olderThan)
	}

	removed, err := engine.SeenRepository().PurgeSeen(ctx, profile.Key(), before)
	if err != nil {
		return fmt.Errorf("purge failed: %w", err)
	}

	fmt.Printf("Purged %d entries\n", removed)
	return nil
}

func buildProfile(c *cli.Context) (*core.Profile, error) {
	profile, err := core.NewProfile(
		splitList(c.String("primary")),
		splitList(c.String("secondary")),
	)
	if err != nil {
		return nil, err
	}

	profile.MinSimilarity = c.Float64("min-similarity")
	profile.MaxResults = c.Int("max-results")
	profile.Description = c.String("description")

	window, err := core.ParseRecencyWindow(c.String("window"))
	if err != nil {
		return nil, err
	}
	profile.Window = window

	if excluded := splitList(c.String("exclude")); len(excluded) > 0 {
		profile.ExcludedGroups = make(map[string]struct{}, len(excluded))
		for _, group := range excluded {
			profile.ExcludedGroups[strings.ToLower(group)] = struct{}{}
		}
	}

	return profile, core.ValidateProfile(profile)
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
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
