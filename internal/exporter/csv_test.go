package exporter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVWriter_WriteCSV(t *testing.T) {
	w := NewCSVWriter(nil)
	path := filepath.Join(t.TempDir(), "out.csv")

	err := w.WriteCSV(path, WriteOptions{
		Headers: []string{"Token", "Count"},
		Records: [][]string{{"angry", "3"}, {"fraud", "1"}},
	})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Token,Count\nangry,3\nfraud,1\n", string(data))
}

func TestCSVWriter_BOMPrefix(t *testing.T) {
	w := NewCSVWriter(nil)
	path := filepath.Join(t.TempDir(), "out.csv")

	err := w.WriteCSV(path, WriteOptions{
		Headers:   []string{"Month"},
		Records:   [][]string{{"2015-03"}},
		BOMPrefix: true,
	})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xEF, 0xBB, 0xBF}, data[:3])
}

func TestCSVWriter_QuotesEmbeddedCommas(t *testing.T) {
	w := NewCSVWriter(nil)
	path := filepath.Join(t.TempDir(), "out.csv")

	err := w.WriteCSV(path, WriteOptions{
		Headers: []string{"Tag"},
		Records: [][]string{{"Older American, Servicemember"}},
	})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"Older American, Servicemember"`)
}

func TestCSVWriter_CreatesNestedDirectories(t *testing.T) {
	w := NewCSVWriter(nil)
	path := filepath.Join(t.TempDir(), "reports", "nested", "out.csv")

	err := w.WriteCSV(path, WriteOptions{Headers: []string{"A"}})
	require.NoError(t, err)

	_, err = os.Stat(path)
	assert.NoError(t, err)
}
