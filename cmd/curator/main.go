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

	curator "github.com/poiesic/curator"
	"github.com/poiesic/curator/ai"
	"github.com/poiesic/curator/core"
	"github.com/poiesic/curator/extract"
	"github.com/poiesic/curator/ingestion"
	"github.com/poiesic/curator/reembed"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "curator",
		Usage: "Content ingestion and transformation for research collections",
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
				Name:   "add",
				Usage:  "Ingest content into a collection",
				Action: addCommand,
				Flags: append(databaseFlags(),
					&cli.Uint64Flag{
						Name:     "collection",
						Aliases:  []string{"c"},
						Usage:    "Collection ID to link ingested sources to",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "url",
						Usage: "Web page, PDF, or YouTube URL to ingest",
					},
					&cli.StringFlag{
						Name:  "file",
						Usage: "Local file path to ingest",
					},
					&cli.StringFlag{
						Name:  "text",
						Usage: "Raw text to ingest",
					},
					&cli.StringFlag{
						Name:  "site",
						Usage: "Site root URL to crawl and ingest",
					},
					&cli.IntFlag{
						Name:  "max-pages",
						Usage: "Maximum pages to ingest when crawling a site (0 means no cap)",
					},
					&cli.StringFlag{
						Name:  "title",
						Usage: "Override the extracted title",
					},
					&cli.StringFlag{
						Name:    "transformations",
						Aliases: []string{"t"},
						Usage:   "Path to a YAML transformation spec file",
					},
					&cli.StringSliceFlag{
						Name:  "apply",
						Usage: "Transformation names to apply (default: specs flagged apply_default)",
					},
					&cli.BoolFlag{
						Name:  "embed",
						Usage: "Embed saved sources for semantic search",
					},
					&cli.BoolFlag{
						Name:  "filter",
						Usage: "Run the language-model content filter on web pages",
					},
				),
			},
			{
				Name:  "collection",
				Usage: "Manage collections",
				Subcommands: []*cli.Command{
					{
						Name:   "create",
						Usage:  "Create a new collection",
						Action: collectionCreateCommand,
						Flags: append(databaseFlags(),
							&cli.StringFlag{
								Name:     "name",
								Aliases:  []string{"n"},
								Usage:    "Collection name",
								Required: true,
							},
						),
					},
					{
						Name:   "list",
						Usage:  "List all collections",
						Action: collectionListCommand,
						Flags:  databaseFlags(),
					},
				},
			},
			{
				Name:   "search",
				Usage:  "Search saved sources semantically",
				Action: searchCommand,
				Flags: append(databaseFlags(),
					&cli.StringFlag{
						Name:     "query",
						Aliases:  []string{"q"},
						Usage:    "Search query",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "max-hits",
						Usage: "Maximum number of results",
						Value: 10,
					},
				),
			},
			{
				Name:   "reembed",
				Usage:  "Reembed all sources with new embeddings",
				Action: reembedCommand,
				Flags: append(databaseFlags(),
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of sources to process in each batch",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "report-interval",
						Usage: "Report progress every N sources",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "max-retries",
						Usage: "Maximum retry attempts for failed operations",
						Value: 3,
					},
					&cli.DurationFlag{
						Name:  "retry-delay",
						Usage: "Base delay for exponential backoff",
						Value: 1 * time.Second,
					},
				),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// databaseFlags are the flags shared by every command that opens a database.
func databaseFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "db",
			Aliases:  []string{"d"},
			Usage:    "Path to BadgerDB database directory",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "host",
			Usage: "OpenAI-compatible service host URL for chat and embeddings",
			Value: "http://localhost:11434/v1",
		},
		&cli.StringFlag{
			Name:  "chat-model",
			Usage: "Chat model for transformations, captioning, and filtering",
			Value: "qwen2.5:3b",
		},
		&cli.StringFlag{
			Name:  "embedding-model",
			Usage: "Embedding model name",
			Value: "embeddinggemma",
		},
	}
}

func openDatabase(c *cli.Context) (*curator.Database, error) {
	aiConfig := ai.NewConfig(
		ai.WithHost(c.String("host")),
		ai.WithChatModel(c.String("chat-model")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
	)

	if err := aiConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid AI configuration: %w", err)
	}

	db, err := curator.NewDatabase(c.String("db"), curator.WithAIConfig(aiConfig))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

func addCommand(c *cli.Context) error {
	ctx := context.Background()

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	req := ingestion.Request{
		CollectionID: core.ID(c.Uint64("collection")),
		MaxPages:     c.Int("max-pages"),
		Embed:        c.Bool("embed"),
	}

	switch {
	case c.String("site") != "":
		req.CrawlRoot = c.String("site")
	case c.String("url") != "" || c.String("file") != "" || c.String("text") != "":
		req.Descriptor = &extract.ContentDescriptor{
			URL:                c.String("url"),
			FilePath:           c.String("file"),
			Text:               c.String("text"),
			Title:              c.String("title"),
			ApplyContentFilter: c.Bool("filter"),
		}
	default:
		return fmt.Errorf("one of --url, --file, --text, or --site is required")
	}

	var pipelineOpts []ingestion.Option

	if path := c.String("transformations"); path != "" {
		set, err := core.LoadTransformationSet(path)
		if err != nil {
			return fmt.Errorf("failed to load transformations: %w", err)
		}

		if names := c.StringSlice("apply"); len(names) > 0 {
			for _, name := range names {
				spec, ok := set.ByName(name)
				if !ok {
					return fmt.Errorf("unknown transformation %q", name)
				}
				req.Transformations = append(req.Transformations, spec)
			}
		} else {
			req.Transformations = set.Defaults()
		}

		if set.DefaultInstructions != "" {
			pipelineOpts = append(pipelineOpts, ingestion.WithDefaultInstructions(set.DefaultInstructions))
		}
	}

	pipeline, err := db.NewIngestionPipeline(pipelineOpts...)
	if err != nil {
		return fmt.Errorf("failed to build pipeline: %w", err)
	}
	defer pipeline.Release()

	result, err := pipeline.Run(ctx, req)
	if err != nil {
		return fmt.Errorf("ingestion failed: %w", err)
	}

	fmt.Printf("Saved %d source(s)\n", len(result.SavedSourceIDs))
	for _, id := range result.SavedSourceIDs {
		insights := result.InsightCounts[id]
		fmt.Printf("  %d (%d insight(s))\n", id, insights)
	}
	for _, itemErr := range result.ItemErrors {
		fmt.Fprintf(os.Stderr, "warning: %s\n", itemErr.Error())
	}

	return nil
}

func collectionCreateCommand(c *cli.Context) error {
	ctx := context.Background()

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	collection, err := db.CollectionRepository().AddCollection(ctx, &core.Collection{
		Name: c.String("name"),
	})
	if err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}

	fmt.Printf("Created collection %d (%s)\n", collection.Id, collection.Name)
	return nil
}

func collectionListCommand(c *cli.Context) error {
	ctx := context.Background()

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	collections, err := db.CollectionRepository().ListCollections(ctx)
	if err != nil {
		return fmt.Errorf("failed to list collections: %w", err)
	}

	for _, collection := range collections {
		sources, err := db.CollectionRepository().GetCollectionSources(ctx, collection.Id)
		if err != nil {
			return fmt.Errorf("failed to list collection sources: %w", err)
		}
		fmt.Printf("%d\t%s\t%d source(s)\n", collection.Id, collection.Name, len(sources))
	}

	return nil
}

func searchCommand(c *cli.Context) error {
	ctx := context.Background()

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	searcher, err := db.NewSearcher()
	if err != nil {
		return fmt.Errorf("failed to build searcher: %w", err)
	}

	results, err := searcher.FindSimilar(ctx, c.String("query"), c.Int("max-hits"))
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if len(results) == 0 {
		fmt.Println("No results")
		return nil
	}

	for _, result := range results {
		fmt.Printf("%.3f\t%d\t%s\n", result.Score, result.Source.Id, result.Source.Title)
	}

	return nil
}

func reembedCommand(c *cli.Context) error {
	ctx := context.Background()

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	reembedConfig := &reembed.Config{
		BatchSize:      c.Int("batch-size"),
		ReportInterval: c.Int("report-interval"),
		MaxRetries:     c.Int("max-retries"),
		RetryDelay:     c.Duration("retry-delay"),
	}

	// Validate config
	if reembedConfig.BatchSize <= 0 {
		return fmt.Errorf("batch-size must be greater than 0")
	}
	if reembedConfig.ReportInterval <= 0 {
		return fmt.Errorf("report-interval must be greater than 0")
	}
	if reembedConfig.MaxRetries <= 0 {
		return fmt.Errorf("max-retries must be greater than 0")
	}

	reembedder := db.NewReembedder(reembedConfig, os.Stderr)

	fmt.Fprintf(os.Stderr, "Database: %s\n", c.String("db"))
	fmt.Fprintf(os.Stderr, "Embedding host: %s\n", c.String("host"))
	fmt.Fprintf(os.Stderr, "Embedding model: %s\n", c.String("embedding-model"))
	fmt.Fprintln(os.Stderr)

	if err := reembedder.Run(ctx); err != nil {
		return fmt.Errorf("reembedding failed: %w", err)
	}

	return nil
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
