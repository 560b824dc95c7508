package exporter

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"complaintcli/internal/config"
	"complaintcli/internal/dataprocessing"
	"complaintcli/pkg/contracts"
	"complaintcli/pkg/contracts/domain"
)

func testExporter(t *testing.T) (*ReportExporter, *config.Paths) {
	t.Helper()
	paths := config.PathsIn(t.TempDir())
	require.NoError(t, paths.EnsureDirectories())
	return NewReportExporter(slog.Default(), paths), paths
}

func readCSVFile(t *testing.T, path string) [][]string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	// Strip the UTF-8 BOM written for Excel compatibility
	content := strings.TrimPrefix(string(data), "\xef\xbb\xbf")
	rows, err := csv.NewReader(strings.NewReader(content)).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestReportExporter_ExportGroupAggregates(t *testing.T) {
	e, paths := testExporter(t)

	aggregates := []domain.GroupAggregate{
		{Disputed: domain.DisputeYes, Category: domain.EmotionAnger, Complaints: 2, MeanCount: 2.0, MeanProportion: 0.625},
		{Disputed: domain.DisputeNo, Category: domain.EmotionTrust, Complaints: 1, MeanCount: 1.0, MeanProportion: 1.0},
	}

	require.NoError(t, e.ExportGroupAggregates(context.Background(), aggregates))

	rows := readCSVFile(t, paths.GroupAggregatesCSV)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Disputed", "DisputedLabel", "Category", "Complaints", "MeanCount", "MeanProportion"}, rows[0])
	assert.Equal(t, []string{"Yes", "Disputed", "anger", "2", "2.000", "0.6250"}, rows[1])
	assert.Equal(t, []string{"No", "Not Disputed", "trust", "1", "1.000", "1.0000"}, rows[2])
}

func TestReportExporter_ExportEmotionScores(t *testing.T) {
	e, paths := testExporter(t)

	scores := []domain.EmotionScore{
		{ComplaintID: "1", Disputed: domain.DisputeYes, Category: domain.EmotionAnger, Count: 1, Proportion: 0.5},
	}

	require.NoError(t, e.ExportEmotionScores(context.Background(), scores))

	rows := readCSVFile(t, paths.EmotionScoresCSV)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"1", "Yes", "anger", "1", "0.5000"}, rows[1])
}

func TestReportExporter_ExportWordFrequencies(t *testing.T) {
	e, paths := testExporter(t)

	freqs := []domain.WordFrequency{
		{Token: "fraud", Count: 3},
		{Token: "angry", Count: 1},
	}

	require.NoError(t, e.ExportWordFrequencies(context.Background(), freqs))

	rows := readCSVFile(t, paths.WordFrequencyCSV)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"fraud", "3"}, rows[1])
	assert.Equal(t, []string{"angry", "1"}, rows[2])
}

func TestReportExporter_ExportRunSummary(t *testing.T) {
	e, paths := testExporter(t)

	summary := domain.RunSummary{
		SourceRows:       10,
		NormalizedRows:   12,
		UniqueComplaints: 10,
		WithNarrative:    7,
	}

	require.NoError(t, e.ExportRunSummary(context.Background(), summary))

	data, err := os.ReadFile(paths.RunSummaryJSON)
	require.NoError(t, err)

	var decoded struct {
		Summary     domain.RunSummary     `json:"summary"`
		GeneratedAt string                `json:"generated_at"`
		Format      string                `json:"format"`
		Generator   contracts.VersionInfo `json:"generator"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, summary, decoded.Summary)
	assert.Equal(t, "run_summary_v1", decoded.Format)
	assert.NotEmpty(t, decoded.GeneratedAt)
	assert.Equal(t, contracts.Version, decoded.Generator.Version)
	assert.NotEmpty(t, decoded.Generator.GoVersion)
}

func TestReportExporter_ExportAll(t *testing.T) {
	e, paths := testExporter(t)

	result := &dataprocessing.Result{
		Scores: []domain.EmotionScore{
			{ComplaintID: "1", Disputed: domain.DisputeYes, Category: domain.EmotionAnger, Count: 2, Proportion: 1.0},
		},
		GroupAggregates: []domain.GroupAggregate{
			{Disputed: domain.DisputeYes, Category: domain.EmotionAnger, Complaints: 1, MeanCount: 2.0, MeanProportion: 1.0},
		},
		WordFrequencies: []domain.WordFrequency{{Token: "angry", Count: 2}},
		MonthlyVolumes:  []domain.MonthlyVolume{{Month: "2015-03", Complaints: 1}},
		Summary:         domain.RunSummary{SourceRows: 1, NormalizedRows: 1, UniqueComplaints: 1},
	}

	require.NoError(t, e.ExportAll(context.Background(), result))

	for _, path := range []string{
		paths.GroupAggregatesCSV,
		paths.EmotionScoresCSV,
		paths.WordFrequencyCSV,
		paths.MonthlyVolumeCSV,
		paths.RunSummaryJSON,
	} {
		_, err := os.Stat(path)
		assert.NoError(t, err, path)
	}
}
