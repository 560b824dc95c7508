package files

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"complaintcli/internal/errors"
)

// ExportInfo describes one candidate complaint export found on disk.
type ExportInfo struct {
	Path    string
	Name    string
	Size    int64
	ModTime time.Time
}

// Discovery finds complaint exports under a base directory.
type Discovery struct {
	baseDir string
}

// NewDiscovery creates a discovery instance rooted at baseDir.
func NewDiscovery(baseDir string) *Discovery {
	return &Discovery{baseDir: baseDir}
}

// FindExports lists complaint exports (.csv and .xlsx) in the base
// directory, newest first.
func (d *Discovery) FindExports() ([]ExportInfo, error) {
	entries, err := os.ReadDir(d.baseDir)
	if err != nil {
		return nil, errors.NewStorageError("failed to read data directory", err).
			WithContext("dir", d.baseDir)
	}

	var exports []ExportInfo
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if ext != ".csv" && ext != ".xlsx" {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		exports = append(exports, ExportInfo{
			Path:    filepath.Join(d.baseDir, name),
			Name:    name,
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	sort.Slice(exports, func(i, j int) bool {
		if !exports[i].ModTime.Equal(exports[j].ModTime) {
			return exports[i].ModTime.After(exports[j].ModTime)
		}
		return exports[i].Name < exports[j].Name
	})

	return exports, nil
}

// LatestExport returns the most recently modified export, or a not-found
// error when the directory holds none.
func (d *Discovery) LatestExport() (ExportInfo, error) {
	exports, err := d.FindExports()
	if err != nil {
		return ExportInfo{}, err
	}
	if len(exports) == 0 {
		return ExportInfo{}, errors.NewNotFoundError("complaint export").
			WithContext("dir", d.baseDir)
	}
	return exports[0], nil
}
