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
	"bufio"
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/poiesic/ontomatch"
	"github.com/poiesic/ontomatch/ingestion"
	"github.com/poiesic/ontomatch/match"
	"github.com/poiesic/ontomatch/report"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:      "ontomatch",
		Usage:     "Match query phrases against ontology terms",
		ArgsUsage: "<vocab-file> <query-file>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "warn",
			},
			&cli.StringFlag{
				Name:    "condition",
				Aliases: []string{"c"},
				Usage:   "Additional search condition (e.g., hasDbXref:NCBI_TaxID:9606)",
			},
			&cli.StringFlag{
				Name:    "db",
				Aliases: []string{"d"},
				Usage:   "Persist the term store at this directory instead of in memory",
			},
			&cli.IntFlag{
				Name:  "pool-size",
				Usage: "Number of loading workers (0 means half the CPUs)",
			},
			&cli.IntFlag{
				Name:  "batch-size",
				Usage: "Number of terms to store in each batch",
				Value: 100,
			},
			&cli.BoolFlag{
				Name:  "progress",
				Usage: "Report loading progress on stderr",
			},
			&cli.IntFlag{
				Name:  "report-interval",
				Usage: "Report progress every N terms",
				Value: 1000,
			},
		},
		Before: setupLogger,
		Action: searchCommand,
	}
}

func searchCommand(c *cli.Context) error {
	if c.NArg() != 2 {
		return fmt.Errorf("expected <vocab-file> and <query-file> arguments, got %d", c.NArg())
	}
	vocabPath := c.Args().Get(0)
	queryPath := c.Args().Get(1)
	ctx := context.Background()

	var matchOpts []match.Option
	if cond := c.String("condition"); cond != "" {
		parsed, err := match.ParseCondition(cond)
		if err != nil {
			return err
		}
		matchOpts = append(matchOpts, match.WithCondition(parsed))
	}

	var ingestOpts []ingestion.Option
	if n := c.Int("pool-size"); n > 0 {
		ingestOpts = append(ingestOpts, ingestion.WithPoolSize(n))
	}
	if n := c.Int("batch-size"); n > 0 {
		ingestOpts = append(ingestOpts, ingestion.WithBatchSize(n))
	}
	if c.Bool("progress") {
		ingestOpts = append(ingestOpts, ingestion.WithProgress(os.Stderr, c.Int("report-interval")))
	}

	vocabOpts := []ontomatch.VocabularyOption{
		ontomatch.WithIngestionOptions(ingestOpts...),
	}
	if dbPath := c.String("db"); dbPath != "" {
		vocabOpts = append(vocabOpts, ontomatch.WithStorePath(dbPath))
	}

	fmt.Fprintln(os.Stderr, "Loading vocabulary...")
	start := time.Now()
	vocab, err := ontomatch.LoadVocabulary(ctx, vocabPath, vocabOpts...)
	if err != nil {
		return fmt.Errorf("failed to load vocabulary: %w", err)
	}
	defer vocab.Close()
	fmt.Fprintf(os.Stderr, "Vocabulary loaded in %.2f seconds\n", time.Since(start).Seconds())

	matcher, err := vocab.NewMatcher(matchOpts...)
	if err != nil {
		return err
	}

	queries, err := os.Open(queryPath)
	if err != nil {
		return fmt.Errorf("failed to open query file: %w", err)
	}
	defer queries.Close()

	w := report.NewWriter(os.Stdout)
	if err := w.WriteHeader(); err != nil {
		return err
	}

	fmt.Fprintln(os.Stderr, "Starting term search...")
	searchStart := time.Now()

	scanner := bufio.NewScanner(queries)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		query := strings.TrimSpace(scanner.Text())
		if query == "" {
			continue
		}
		hits, err := matcher.Match(ctx, query)
		if err != nil {
			return fmt.Errorf("search failed for %q: %w", query, err)
		}
		if err := w.WriteResult(query, hits); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading query file: %w", err)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Search completed in %.2f seconds\n", time.Since(searchStart).Seconds())
	return nil
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
