package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-extractor/internal/config"
	"github.com/jonathan/resume-extractor/internal/ingestion"
	"github.com/jonathan/resume-extractor/internal/observability"
	"github.com/jonathan/resume-extractor/internal/pipeline"
	"github.com/jonathan/resume-extractor/internal/types"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Parse every supported resume document in a directory",
	Long:  "Parse all supported resume documents in a directory in parallel and write one JSON record per document. A document that fails to parse is reported and skipped; it never aborts the run.",
	RunE:  runBatch,
}

var (
	batchDir         string
	batchOut         string
	batchConfigPath  string
	batchConcurrency int
	batchPretty      bool
	batchSummary     bool
)

func init() {
	batchCmd.Flags().StringVarP(&batchDir, "dir", "d", "", "Directory containing resume documents (required)")
	batchCmd.Flags().StringVarP(&batchOut, "out", "o", "", "Output directory for record JSON files (required)")
	batchCmd.Flags().StringVar(&batchConfigPath, "config", "", "Path to JSON config file")
	batchCmd.Flags().IntVarP(&batchConcurrency, "concurrency", "c", 0, "Number of documents to parse in parallel")
	batchCmd.Flags().BoolVar(&batchPretty, "pretty", false, "Indent the emitted JSON")
	batchCmd.Flags().BoolVar(&batchSummary, "summary", false, "Print a per-document summary to stderr")

	batchCmd.MarkFlagRequired("dir")

	rootCmd.AddCommand(batchCmd)
}

// collectDocuments lists the supported documents in dir in lexical order.
func collectDocuments(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	supported := make(map[string]bool)
	for _, ext := range ingestion.SupportedExtensions() {
		supported[ext] = true
	}

	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if supported[ext] {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(paths)

	return paths, nil
}

func runBatch(_ *cobra.Command, _ []string) error {
	cfg, err := loadCommandConfig(batchConfigPath)
	if err != nil {
		return err
	}

	outDir := batchOut
	if outDir == "" {
		outDir = cfg.OutDir
	}
	if outDir == "" {
		return fmt.Errorf("--out is required (or set out_dir in the config file)")
	}

	concurrency := batchConcurrency
	if concurrency == 0 {
		merged := cfg.MergeWithDefaults(config.Config{})
		concurrency = merged.Concurrency
	}

	req := types.BatchRequest{
		Dir:         batchDir,
		OutDir:      outDir,
		Concurrency: concurrency,
	}
	if err := req.Validate(); err != nil {
		return err
	}

	paths, err := collectDocuments(req.Dir)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no supported documents found in %s", req.Dir)
	}

	run, err := pipeline.ParseAll(context.Background(), paths, req.Concurrency)
	if err != nil {
		return fmt.Errorf("batch run failed: %w", err)
	}

	if err := os.MkdirAll(req.OutDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	pretty := batchPretty || cfg.Pretty
	written := 0
	for _, result := range run.Results {
		if result.Err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: failed to parse %s: %v\n", result.Path, result.Err)
			continue
		}

		var jsonBytes []byte
		if pretty {
			jsonBytes, err = json.MarshalIndent(result.Record, "", "  ")
		} else {
			jsonBytes, err = json.Marshal(result.Record)
		}
		if err != nil {
			return fmt.Errorf("failed to marshal record for %s: %w", result.Path, err)
		}

		base := strings.TrimSuffix(filepath.Base(result.Path), filepath.Ext(result.Path))
		outPath := filepath.Join(req.OutDir, base+".json")
		if err := os.WriteFile(outPath, jsonBytes, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", outPath, err)
		}
		written++
	}

	_, _ = fmt.Fprintf(os.Stdout, "Batch run %s complete\n", run.RunID)
	_, _ = fmt.Fprintf(os.Stdout, "Parsed %d of %d documents, output: %s\n", written, len(paths), req.OutDir)

	if batchSummary || cfg.Summary {
		observability.NewPrinter(os.Stderr).PrintBatchRun(run)
	}

	if written == 0 {
		return fmt.Errorf("all %d documents failed to parse", len(paths))
	}

	return nil
}
