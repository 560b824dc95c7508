package validation

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "complaintcli/internal/errors"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestFileValidator_ValidateInputFile(t *testing.T) {
	v := NewFileValidator(nil)

	tests := []struct {
		name     string
		path     func(t *testing.T) string
		wantErr  bool
		wantType apperrors.ErrorType
	}{
		{
			name: "valid csv",
			path: func(t *testing.T) string {
				return writeTempFile(t, "complaints.csv", "Complaint ID\n1\n")
			},
		},
		{
			name: "valid xlsx extension",
			path: func(t *testing.T) string {
				return writeTempFile(t, "complaints.xlsx", "stub")
			},
		},
		{
			name: "missing file",
			path: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "absent.csv")
			},
			wantErr:  true,
			wantType: apperrors.ErrTypeNotFound,
		},
		{
			name: "directory instead of file",
			path: func(t *testing.T) string {
				return t.TempDir()
			},
			wantErr:  true,
			wantType: apperrors.ErrTypeValidation,
		},
		{
			name: "empty file",
			path: func(t *testing.T) string {
				return writeTempFile(t, "empty.csv", "")
			},
			wantErr:  true,
			wantType: apperrors.ErrTypeValidation,
		},
		{
			name: "unsupported extension",
			path: func(t *testing.T) string {
				return writeTempFile(t, "complaints.parquet", "data")
			},
			wantErr:  true,
			wantType: apperrors.ErrTypeValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateInputFile(tt.path(t))
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)

			var appErr *apperrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, tt.wantType, appErr.Type)
		})
	}
}

func TestFileValidator_ValidateOutputDirectory(t *testing.T) {
	v := NewFileValidator(nil)

	dir := filepath.Join(t.TempDir(), "reports", "nested")
	require.NoError(t, v.ValidateOutputDirectory(dir))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
