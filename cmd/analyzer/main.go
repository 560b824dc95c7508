// Command analyzer is a one-shot batch job: it reads a consumer-complaint
// export, runs the cleaning and emotion-feature pipeline, and writes the
// aggregate tables consumed by the reporting collaborator.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"complaintcli/internal/config"
	"complaintcli/internal/dataprocessing"
	"complaintcli/internal/exporter"
	"complaintcli/internal/files"
	"complaintcli/internal/infrastructure"
	"complaintcli/internal/lexicon"
	"complaintcli/internal/validation"
	"complaintcli/pkg/contracts"
)

func main() {
	inFile := flag.String("in", "", "input complaint export (.csv or .xlsx)")
	outDir := flag.String("out", "", "output directory for report files (defaults to data/reports relative to executable)")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(contracts.GetVersionString())
		return
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("Failed to load config, using defaults", "error", err)
		cfg = config.Default()
	}

	paths, err := config.GetPaths()
	if err != nil {
		slog.Error("Failed to resolve application paths", "error", err)
		fmt.Fprintf(os.Stderr, "cannot resolve application paths: %v\n", err)
		os.Exit(1)
	}
	paths = paths.WithConfig(cfg.Paths)
	if *outDir != "" {
		// -out names the reports directory itself, not a base directory
		paths = paths.WithReportsDir(*outDir)
	}

	// Anchor a relative log file in the logs directory so it lands next to
	// the other paths instead of wherever the process was started
	if !filepath.IsAbs(cfg.Logging.FilePath) {
		cfg.Logging.FilePath = paths.GetLogPath(filepath.Base(cfg.Logging.FilePath))
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	// Tag every log line of this run with a run ID
	ctx := infrastructure.WithRunID(context.Background(), uuid.NewString())

	if *inFile == "" {
		// No explicit input: pick the newest export in the data directory
		latest, err := files.NewDiscovery(paths.DataDir).LatestExport()
		if err != nil {
			logger.ErrorContext(ctx, "No complaint export found",
				slog.String("data_dir", paths.DataDir),
				slog.String("error", err.Error()))
			fmt.Fprintln(os.Stderr, "usage: analyzer -in <complaints.csv|complaints.xlsx> [-out <dir>]")
			os.Exit(2)
		}
		*inFile = latest.Path
		logger.InfoContext(ctx, "Discovered complaint export",
			slog.String("input", latest.Path),
			slog.Int64("size", latest.Size))
	}

	logger.InfoContext(ctx, "Starting complaint emotion analysis",
		slog.String("version", contracts.Version),
		slog.String("input", *inFile),
		slog.String("reports_dir", paths.ReportsDir))

	validator := validation.NewFileValidator(logger)
	if err := validator.ValidateInputFile(*inFile); err != nil {
		logger.ErrorContext(ctx, "Input source is unreadable",
			slog.String("input", *inFile),
			slog.String("error", err.Error()))
		fmt.Fprintf(os.Stderr, "cannot read input %s: %v\n", *inFile, err)
		os.Exit(1)
	}
	if err := validator.ValidateOutputDirectory(paths.ReportsDir); err != nil {
		logger.ErrorContext(ctx, "Output directory unusable",
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	tables, err := lexicon.Load(logger)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to load lexicon tables",
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	reader := dataprocessing.NewReader(logger)
	raw, err := reader.ReadFile(*inFile)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to read input source",
			slog.String("input", *inFile),
			slog.String("error", err.Error()))
		fmt.Fprintf(os.Stderr, "cannot read input %s: %v\n", *inFile, err)
		os.Exit(1)
	}

	pipeline := dataprocessing.NewPipeline(logger, cfg.Pipeline, tables)
	result := pipeline.Run(ctx, raw)

	reporter := exporter.NewReportExporter(logger, paths)
	if err := reporter.ExportAll(ctx, result); err != nil {
		logger.ErrorContext(ctx, "Failed to write report files",
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.InfoContext(ctx, "Analysis complete",
		slog.Int("complaints", result.Summary.UniqueComplaints),
		slog.Int("with_emotion_matches", result.Summary.WithEmotionMatches),
		slog.Int("aggregate_rows", len(result.GroupAggregates)))

	fmt.Printf("Processed %d complaints (%d rows), wrote reports to %s\n",
		result.Summary.UniqueComplaints, result.Summary.NormalizedRows, paths.ReportsDir)
}
