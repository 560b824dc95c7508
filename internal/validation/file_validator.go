package validation

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	apperrors "complaintcli/internal/errors"
)

// SupportedExtensions lists the input formats the reader understands.
var SupportedExtensions = []string{".csv", ".xlsx"}

// FileValidator provides input and output file validation for the analyzer
type FileValidator struct {
	logger *slog.Logger
}

// NewFileValidator creates a new file validator
func NewFileValidator(logger *slog.Logger) *FileValidator {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileValidator{
		logger: logger,
	}
}

// ValidateInputFile checks that the complaint export exists, is a regular
// file, has a supported extension, and is not empty. An unreadable source is
// the only fatal condition of the pipeline, so failures here abort the run.
func (v *FileValidator) ValidateInputFile(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		v.logger.Error("Input file does not exist",
			slog.String("path", path))
		return apperrors.NewNotFoundError(fmt.Sprintf("input file %s", path))
	}
	if err != nil {
		v.logger.Error("Failed to stat input file",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return apperrors.NewStorageError(fmt.Sprintf("failed to stat input file %s", path), err)
	}
	if info.IsDir() {
		v.logger.Error("Input path is a directory",
			slog.String("path", path))
		return apperrors.NewValidationError(fmt.Sprintf("%s is a directory, expected a file", path))
	}
	if info.Size() == 0 {
		v.logger.Error("Input file is empty",
			slog.String("path", path))
		return apperrors.NewValidationError(fmt.Sprintf("input file %s is empty", path))
	}

	ext := strings.ToLower(filepath.Ext(path))
	supported := false
	for _, e := range SupportedExtensions {
		if ext == e {
			supported = true
			break
		}
	}
	if !supported {
		v.logger.Error("Unsupported input file extension",
			slog.String("path", path),
			slog.String("extension", ext))
		return apperrors.NewValidationError(
			fmt.Sprintf("unsupported input format %s, expected one of %s", ext, strings.Join(SupportedExtensions, ", ")))
	}

	// Confirm the file can actually be opened for reading
	f, err := os.Open(path)
	if err != nil {
		v.logger.Error("Input file is not readable",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return apperrors.NewStorageError(fmt.Sprintf("input file %s is not readable", path), err)
	}
	f.Close()

	v.logger.Info("Input file validated",
		slog.String("path", path),
		slog.Int64("size_bytes", info.Size()))

	return nil
}

// ValidateOutputDirectory ensures output directory exists or can be created
func (v *FileValidator) ValidateOutputDirectory(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		v.logger.Error("Failed to create output directory",
			slog.String("directory", dir),
			slog.String("error", err.Error()))
		return apperrors.NewStorageError(fmt.Sprintf("failed to create output directory %s", dir), err)
	}

	// Check write permission by creating a temp file
	testFile := filepath.Join(dir, ".write_test")
	f, err := os.Create(testFile)
	if err != nil {
		v.logger.Error("Output directory is not writable",
			slog.String("directory", dir),
			slog.String("error", err.Error()))
		return apperrors.NewStorageError(fmt.Sprintf("output directory %s is not writable", dir), err)
	}
	f.Close()
	os.Remove(testFile)

	return nil
}
