package dataprocessing

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	apperrors "complaintcli/internal/errors"
)

// Reader ingests one complaint export file into RawRecords. Both CSV and
// XLSX exports circulate; the format is picked by extension.
type Reader struct {
	logger *slog.Logger
}

// NewReader creates a new export reader
func NewReader(logger *slog.Logger) *Reader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reader{logger: logger}
}

// ReadFile reads the full export once. An unreadable source is fatal; a row
// with too few cells is skipped, not an error.
func (r *Reader) ReadFile(path string) ([]RawRecord, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return r.readCSV(path)
	case ".xlsx":
		return r.readXLSX(path)
	default:
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("unsupported input format for %s", path))
	}
}

// readCSV reads a CSV export with a header row.
func (r *Reader) readCSV(path string) ([]RawRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, apperrors.NewStorageError(
			fmt.Sprintf("failed to open input file %s", path), err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // ragged rows are tolerated, cells default empty

	header, err := reader.Read()
	if err != nil {
		return nil, apperrors.NewParsingError(
			fmt.Sprintf("failed to read header row of %s", path), err)
	}

	columns, missing := matchHeaders(header)
	if len(missing) > 0 {
		return nil, apperrors.NewParsingError(
			fmt.Sprintf("input file %s is missing required columns: %s",
				path, strings.Join(missing, ", ")), nil)
	}

	var records []RawRecord
	rowNo := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// A single unparseable line is a data-quality outcome, not a
			// fatal condition.
			r.logger.Warn("Skipping unparseable CSV row",
				slog.Int("row", rowNo+1),
				slog.String("error", err.Error()))
			rowNo++
			continue
		}
		rowNo++
		records = append(records, rowToRecord(row, columns, rowNo))
	}

	r.logger.Info("Read complaint export",
		slog.String("path", path),
		slog.String("format", "csv"),
		slog.Int("rows", len(records)))

	return records, nil
}

// readXLSX reads the first populated sheet of an XLSX export.
func (r *Reader) readXLSX(path string) ([]RawRecord, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, apperrors.NewStorageError(
			fmt.Sprintf("failed to open input file %s", path), err)
	}
	defer f.Close()

	var rows [][]string
	var sheetName string
	for _, name := range f.GetSheetList() {
		sheetRows, err := f.GetRows(name)
		if err != nil || len(sheetRows) == 0 {
			continue
		}
		rows = sheetRows
		sheetName = name
		break
	}
	if rows == nil {
		return nil, apperrors.NewParsingError(
			fmt.Sprintf("no populated sheet found in %s", path), nil)
	}

	columns, missing := matchHeaders(rows[0])
	if len(missing) > 0 {
		return nil, apperrors.NewParsingError(
			fmt.Sprintf("input file %s is missing required columns: %s",
				path, strings.Join(missing, ", ")), nil)
	}

	records := make([]RawRecord, 0, len(rows)-1)
	for i, row := range rows[1:] {
		records = append(records, rowToRecord(row, columns, i+2))
	}

	r.logger.Info("Read complaint export",
		slog.String("path", path),
		slog.String("format", "xlsx"),
		slog.String("sheet", sheetName),
		slog.Int("rows", len(records)))

	return records, nil
}

// rowToRecord maps one source row onto internal field names. Cells beyond
// the row's length default to empty strings.
func rowToRecord(row []string, columns map[string]int, rowNo int) RawRecord {
	fields := make(map[string]string, len(columns))
	for name, idx := range columns {
		if idx < len(row) {
			fields[name] = row[idx]
		} else {
			fields[name] = ""
		}
	}
	return RawRecord{Row: rowNo, Fields: fields}
}
