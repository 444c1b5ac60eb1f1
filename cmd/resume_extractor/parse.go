package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-extractor/internal/config"
	"github.com/jonathan/resume-extractor/internal/observability"
	"github.com/jonathan/resume-extractor/internal/pipeline"
	"github.com/jonathan/resume-extractor/internal/schemas"
	"github.com/jonathan/resume-extractor/internal/types"
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse a single resume document into a structured JSON record",
	Long:  "Parse a resume document into a JSON record that validates against the resume_record schema. The format is chosen by file extension; unsupported extensions fail before any file content is read.",
	RunE:  runParse,
}

var (
	parseFile       string
	parseOut        string
	parseConfigPath string
	parsePretty     bool
	parseSummary    bool
	parseNoValidate bool
)

func init() {
	parseCmd.Flags().StringVarP(&parseFile, "file", "f", "", "Path to resume document (required)")
	parseCmd.Flags().StringVarP(&parseOut, "out", "o", "", "Path to output JSON file (default: stdout)")
	parseCmd.Flags().StringVar(&parseConfigPath, "config", "", "Path to JSON config file")
	parseCmd.Flags().BoolVar(&parsePretty, "pretty", false, "Indent the emitted JSON")
	parseCmd.Flags().BoolVar(&parseSummary, "summary", false, "Print a human-readable summary to stderr")
	parseCmd.Flags().BoolVar(&parseNoValidate, "no-validate", false, "Skip schema validation of the emitted record")

	parseCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(parseCmd)
}

// loadCommandConfig loads and validates the optional config file.
func loadCommandConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Config{}, nil
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	return *cfg, nil
}

// validateRecordAgainstSchema validates the record and follows the usual
// policy: a real validation failure is an error, a schema loading problem
// only warns so the CLI stays usable outside the repo checkout.
func validateRecordAgainstSchema(record *types.ResumeRecord, schemaPath string) error {
	if schemaPath == "" {
		schemaPath = schemas.ResolveSchemaPath(schemas.RecordSchemaPath)
		if schemaPath == "" {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: record schema not found, skipping validation\n")
			return nil
		}
	}

	if err := schemas.ValidateRecord(record, schemaPath); err != nil {
		var validationErr *schemas.ValidationError
		var schemaLoadErr *schemas.SchemaLoadError
		if errors.As(err, &validationErr) {
			return fmt.Errorf("record does not validate against schema: %w", err)
		} else if errors.As(err, &schemaLoadErr) {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: could not validate record (schema loading failed): %v\n", err)
		} else {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: could not validate record: %v\n", err)
		}
	}

	return nil
}

func runParse(_ *cobra.Command, _ []string) error {
	cfg, err := loadCommandConfig(parseConfigPath)
	if err != nil {
		return err
	}

	outPath := parseOut
	if outPath == "" && cfg.OutDir != "" {
		base := strings.TrimSuffix(filepath.Base(parseFile), filepath.Ext(parseFile))
		outPath = filepath.Join(cfg.OutDir, base+".json")
	}

	req := types.ParseRequest{
		Path:    parseFile,
		OutPath: outPath,
		Pretty:  parsePretty || cfg.Pretty,
		Summary: parseSummary || cfg.Summary,
	}
	if err := req.Validate(); err != nil {
		return err
	}

	record, err := pipeline.ParseFile(req.Path)
	if err != nil {
		return fmt.Errorf("failed to parse resume: %w", err)
	}

	if !parseNoValidate {
		if err := validateRecordAgainstSchema(record, cfg.SchemaPath); err != nil {
			return err
		}
	}

	var jsonBytes []byte
	if req.Pretty {
		jsonBytes, err = json.MarshalIndent(record, "", "  ")
	} else {
		jsonBytes, err = json.Marshal(record)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	if req.OutPath != "" {
		if err := os.MkdirAll(filepath.Dir(req.OutPath), 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		if err := os.WriteFile(req.OutPath, jsonBytes, 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		_, _ = fmt.Fprintf(os.Stdout, "Successfully parsed resume\n")
		_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", req.OutPath)
	} else {
		_, _ = fmt.Fprintf(os.Stdout, "%s\n", jsonBytes)
	}

	if req.Summary {
		observability.NewPrinter(os.Stderr).PrintResumeRecord(record)
	}

	return nil
}
