package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains all the application paths.
// This is the single source of truth for ALL file paths in the application.
type Paths struct {
	ExecutableDir string
	DataDir       string
	ReportsDir    string
	LogsDir       string

	// Well-known report files
	GroupAggregatesCSV string
	EmotionScoresCSV   string
	WordFrequencyCSV   string
	MonthlyVolumeCSV   string
	RunSummaryJSON     string
}

// GetPaths returns the application paths relative to the executable location.
// All paths are relative to the executable directory, never the current
// working directory, so the binary behaves the same wherever it is invoked.
func GetPaths() (*Paths, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("failed to get executable path: %v", err)
	}

	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve executable symlinks: %v", err)
	}

	exeDir := filepath.Dir(exe)
	return PathsIn(exeDir), nil
}

// PathsIn builds the path set rooted at the given base directory.
// Directory structure:
//
//	base/
//	  ├── data/
//	  │   └── reports/   (generated aggregate tables)
//	  └── logs/          (application logs)
func PathsIn(baseDir string) *Paths {
	dataDir := filepath.Join(baseDir, "data")
	reportsDir := filepath.Join(dataDir, "reports")

	return &Paths{
		ExecutableDir: baseDir,
		DataDir:       dataDir,
		ReportsDir:    reportsDir,
		LogsDir:       filepath.Join(baseDir, "logs"),

		GroupAggregatesCSV: filepath.Join(reportsDir, "emotion_group_aggregates.csv"),
		EmotionScoresCSV:   filepath.Join(reportsDir, "emotion_scores.csv"),
		WordFrequencyCSV:   filepath.Join(reportsDir, "negative_word_frequencies.csv"),
		MonthlyVolumeCSV:   filepath.Join(reportsDir, "monthly_complaint_volume.csv"),
		RunSummaryJSON:     filepath.Join(reportsDir, "run_summary.json"),
	}
}

// WithConfig returns a copy of the path set with the configured directories
// applied. Relative values resolve against the executable directory, so the
// defaults land exactly where PathsIn puts them; absolute values are taken
// as-is. Empty values keep the existing directory.
func (p *Paths) WithConfig(cfg PathsConfig) *Paths {
	out := *p
	if cfg.DataDir != "" {
		out.DataDir = p.resolveDir(cfg.DataDir)
	}
	if cfg.LogsDir != "" {
		out.LogsDir = p.resolveDir(cfg.LogsDir)
	}
	if cfg.ReportsDir != "" {
		return out.WithReportsDir(p.resolveDir(cfg.ReportsDir))
	}
	return &out
}

// resolveDir anchors a relative directory at the executable directory.
func (p *Paths) resolveDir(dir string) string {
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(p.ExecutableDir, dir)
}

// WithReportsDir returns a copy of the path set with every report file
// re-rooted into the given directory.
func (p *Paths) WithReportsDir(dir string) *Paths {
	out := *p
	out.ReportsDir = dir
	out.GroupAggregatesCSV = filepath.Join(dir, "emotion_group_aggregates.csv")
	out.EmotionScoresCSV = filepath.Join(dir, "emotion_scores.csv")
	out.WordFrequencyCSV = filepath.Join(dir, "negative_word_frequencies.csv")
	out.MonthlyVolumeCSV = filepath.Join(dir, "monthly_complaint_volume.csv")
	out.RunSummaryJSON = filepath.Join(dir, "run_summary.json")
	return &out
}

// EnsureDirectories creates all required directories if they don't exist
func (p *Paths) EnsureDirectories() error {
	dirs := []string{
		p.DataDir,
		p.ReportsDir,
		p.LogsDir,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}

// GetReportPath returns a path inside the reports directory
func (p *Paths) GetReportPath(filename string) string {
	return filepath.Join(p.ReportsDir, filename)
}

// GetLogPath returns a path inside the logs directory
func (p *Paths) GetLogPath(filename string) string {
	return filepath.Join(p.LogsDir, filename)
}
