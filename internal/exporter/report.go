package exporter

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"complaintcli/internal/config"
	"complaintcli/internal/dataprocessing"
	"complaintcli/internal/errors"
	"complaintcli/pkg/contracts"
	"complaintcli/pkg/contracts/domain"
)

// ReportExporter writes every artifact of one pipeline run into the reports
// directory. This is the hand-off boundary to the reporting collaborator;
// the pipeline's contract ends at these tables.
type ReportExporter struct {
	logger *slog.Logger
	paths  *config.Paths
	csv    *CSVWriter
}

// NewReportExporter creates a report exporter rooted at the given paths.
func NewReportExporter(logger *slog.Logger, paths *config.Paths) *ReportExporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReportExporter{
		logger: logger,
		paths:  paths,
		csv:    NewCSVWriter(logger),
	}
}

// ExportAll writes all report files for one pipeline result.
func (e *ReportExporter) ExportAll(ctx context.Context, result *dataprocessing.Result) error {
	if err := e.ExportGroupAggregates(ctx, result.GroupAggregates); err != nil {
		return err
	}
	if err := e.ExportEmotionScores(ctx, result.Scores); err != nil {
		return err
	}
	if err := e.ExportWordFrequencies(ctx, result.WordFrequencies); err != nil {
		return err
	}
	if err := e.ExportMonthlyVolumes(ctx, result.MonthlyVolumes); err != nil {
		return err
	}
	return e.ExportRunSummary(ctx, result.Summary)
}

// ExportGroupAggregates writes the terminal (dispute status, category) table.
func (e *ReportExporter) ExportGroupAggregates(ctx context.Context, aggregates []domain.GroupAggregate) error {
	headers := []string{"Disputed", "DisputedLabel", "Category", "Complaints", "MeanCount", "MeanProportion"}

	records := make([][]string, 0, len(aggregates))
	for _, agg := range aggregates {
		records = append(records, []string{
			string(agg.Disputed),
			agg.Disputed.Label(),
			string(agg.Category),
			formatInt(agg.Complaints),
			formatMean(agg.MeanCount),
			formatProportion(agg.MeanProportion),
		})
	}

	if err := e.csv.WriteSimpleCSV(e.paths.GroupAggregatesCSV, headers, records); err != nil {
		return errors.NewStorageError("failed to write group aggregates CSV", err)
	}

	e.logger.InfoContext(ctx, "Exported group aggregates",
		slog.String("path", e.paths.GroupAggregatesCSV),
		slog.Int("rows", len(records)))
	return nil
}

// ExportEmotionScores writes the per-complaint emotion feature table.
func (e *ReportExporter) ExportEmotionScores(ctx context.Context, scores []domain.EmotionScore) error {
	headers := []string{"ComplaintID", "Disputed", "Category", "Count", "Proportion"}

	records := make([][]string, 0, len(scores))
	for _, s := range scores {
		records = append(records, []string{
			s.ComplaintID,
			string(s.Disputed),
			string(s.Category),
			formatInt(s.Count),
			formatProportion(s.Proportion),
		})
	}

	if err := e.csv.WriteSimpleCSV(e.paths.EmotionScoresCSV, headers, records); err != nil {
		return errors.NewStorageError("failed to write emotion scores CSV", err)
	}

	e.logger.InfoContext(ctx, "Exported emotion scores",
		slog.String("path", e.paths.EmotionScoresCSV),
		slog.Int("rows", len(records)))
	return nil
}

// ExportWordFrequencies writes the word-cloud input table.
func (e *ReportExporter) ExportWordFrequencies(ctx context.Context, freqs []domain.WordFrequency) error {
	headers := []string{"Token", "Count"}

	records := make([][]string, 0, len(freqs))
	for _, f := range freqs {
		records = append(records, []string{f.Token, formatInt(f.Count)})
	}

	if err := e.csv.WriteSimpleCSV(e.paths.WordFrequencyCSV, headers, records); err != nil {
		return errors.NewStorageError("failed to write word frequency CSV", err)
	}

	e.logger.InfoContext(ctx, "Exported negative word frequencies",
		slog.String("path", e.paths.WordFrequencyCSV),
		slog.Int("rows", len(records)))
	return nil
}

// ExportMonthlyVolumes writes the complaint time-series table.
func (e *ReportExporter) ExportMonthlyVolumes(ctx context.Context, volumes []domain.MonthlyVolume) error {
	headers := []string{"Month", "Complaints"}

	records := make([][]string, 0, len(volumes))
	for _, v := range volumes {
		records = append(records, []string{v.Month, formatInt(v.Complaints)})
	}

	if err := e.csv.WriteSimpleCSV(e.paths.MonthlyVolumeCSV, headers, records); err != nil {
		return errors.NewStorageError("failed to write monthly volume CSV", err)
	}

	e.logger.InfoContext(ctx, "Exported monthly complaint volumes",
		slog.String("path", e.paths.MonthlyVolumeCSV),
		slog.Int("rows", len(records)))
	return nil
}

// ExportRunSummary writes the run tally with generation metadata.
func (e *ReportExporter) ExportRunSummary(ctx context.Context, summary domain.RunSummary) error {
	if err := os.MkdirAll(filepath.Dir(e.paths.RunSummaryJSON), 0755); err != nil {
		return errors.NewStorageError("failed to create directory for run summary", err)
	}

	jsonData := map[string]interface{}{
		"summary":      summary,
		"generated_at": time.Now().Format(time.RFC3339),
		"format":       "run_summary_v1",
		"generator":    contracts.GetVersionInfo(),
	}

	file, err := os.Create(e.paths.RunSummaryJSON)
	if err != nil {
		return errors.NewStorageError("failed to create run summary file", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(jsonData); err != nil {
		return errors.NewStorageError("failed to encode run summary", err)
	}

	e.logger.InfoContext(ctx, "Exported run summary",
		slog.String("path", e.paths.RunSummaryJSON))
	return nil
}
