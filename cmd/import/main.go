// Command import bulk-loads a CSV word list into a user's dictionary,
// creating the user and the dictionary when missing. The whole file is
// imported in one transaction and resets the dictionary's rating once.
//
// Flags:
//
//	--user        chat user ID (required)
//	--dictionary  dictionary name (required)
//	--file        CSV word list: term,translations (required)
//	--dry-run     validate the file without writing
//
// Exit codes: 0 = success, 1 = error, 2 = usage.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/wordtrainer/internal/app"
	"github.com/heartmarshall/wordtrainer/internal/app/importer"
	"github.com/heartmarshall/wordtrainer/internal/config"
	"github.com/heartmarshall/wordtrainer/internal/domain"
	"github.com/heartmarshall/wordtrainer/internal/service/dictionary"
)

func main() {
	userFlag := flag.Int64("user", 0, "chat user ID")
	dictFlag := flag.String("dictionary", "", "dictionary name")
	fileFlag := flag.String("file", "", "path to CSV word list")
	dryRunFlag := flag.Bool("dry-run", false, "validate without writing to the database")
	flag.Parse()

	if *userFlag <= 0 || *dictFlag == "" || *fileFlag == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	f, err := os.Open(*fileFlag)
	if err != nil {
		logger.Error("open word list", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer f.Close()

	lines, invalid, err := importer.Parse(f)
	if err != nil {
		logger.Error("parse word list", slog.String("error", err.Error()))
		os.Exit(1)
	}
	for _, e := range invalid {
		logger.Warn("row skipped", slog.Int("line", e.Line), slog.String("reason", e.Reason))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	opts := importer.Options{
		UserID:     domain.UserID(*userFlag),
		Dictionary: *dictFlag,
		DryRun:     *dryRunFlag,
	}

	var dict *dictionary.Service
	if !opts.DryRun {
		store, err := app.OpenStore(ctx, cfg.Database, logger)
		if err != nil {
			logger.Error("open store", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer store.Close()
		dict = app.NewServices(cfg, logger, store, app.NewTranslator(cfg.Translate, logger)).Dictionary
	}

	result, err := importer.Run(ctx, dict, opts, lines, logger)
	if err != nil {
		logger.Error("import failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	for _, e := range result.Errors {
		logger.Warn("row skipped", slog.Int("line", e.Line), slog.String("reason", e.Reason))
	}

	fmt.Printf("rows=%d created=%d merged=%d skipped=%d malformed=%d dry_run=%t\n",
		result.Rows, result.Created, result.Merged, result.Skipped, len(invalid), opts.DryRun)
}
