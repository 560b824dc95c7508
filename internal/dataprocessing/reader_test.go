package dataprocessing

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"complaintcli/internal/shared/testutil"
)

var fixtureHeader = []string{
	"Date received", "Product", "Sub-product", "Issue", "Sub-issue",
	"Consumer complaint narrative", "Company", "State", "Submitted via",
	"Tags", "Company response to consumer", "Consumer disputed?", "Complaint ID",
}

var fixtureRows = [][]string{
	{"3/12/2015", "Mortgage", "Conventional fixed mortgage", "Loan servicing", "",
		"They lost my payment and charged a late fee", "Big Bank", "CA", "Web",
		"Older American, Servicemember", "Closed with explanation", "Yes", "1001"},
	{"4/1/2015", "Credit card", "", "Billing disputes", "N/A",
		"", "Card Co", "TX", "Referral",
		"", "Closed", "No", "1002"},
}

func writeCSVFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "complaints.csv")

	content := ""
	writeRow := func(row []string) {
		for i, cell := range row {
			if i > 0 {
				content += ","
			}
			// Quote every cell so commas inside tags survive
			content += `"` + cell + `"`
		}
		content += "\n"
	}
	writeRow(fixtureHeader)
	for _, row := range fixtureRows {
		writeRow(row)
	}

	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func writeXLSXFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "complaints.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &fixtureHeader))
	for i, row := range fixtureRows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestReader_ReadFile_CSV(t *testing.T) {
	reader := NewReader(slog.Default())

	records, err := reader.ReadFile(writeCSVFixture(t))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "1001", records[0].Get(FieldComplaintID))
	assert.Equal(t, "Older American, Servicemember", records[0].Get(FieldTags))
	assert.Equal(t, "Yes", records[0].Get(FieldDisputed))
	assert.Equal(t, "N/A", records[1].Get(FieldSubIssue))
	assert.Equal(t, "", records[1].Get(FieldNarrative))
}

func TestReader_ReadFile_XLSX(t *testing.T) {
	reader := NewReader(slog.Default())

	records, err := reader.ReadFile(writeXLSXFixture(t))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "1001", records[0].Get(FieldComplaintID))
	assert.Equal(t, "They lost my payment and charged a late fee", records[0].Get(FieldNarrative))
}

func TestReader_CSVAndXLSXAgree(t *testing.T) {
	reader := NewReader(slog.Default())

	fromCSV, err := reader.ReadFile(writeCSVFixture(t))
	require.NoError(t, err)
	fromXLSX, err := reader.ReadFile(writeXLSXFixture(t))
	require.NoError(t, err)

	require.Len(t, fromXLSX, len(fromCSV))
	for i := range fromCSV {
		assert.Equal(t, fromCSV[i].Fields, fromXLSX[i].Fields, "row %d", i)
	}
}

func TestReader_ReadFile_MissingRequiredColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.csv")
	require.NoError(t, os.WriteFile(path,
		[]byte("Product,Tags\nMortgage,Servicemember\n"), 0644))

	reader := NewReader(slog.Default())
	_, err := reader.ReadFile(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Complaint ID")
}

func TestReader_ReadFile_UnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "complaints.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0644))

	reader := NewReader(slog.Default())
	_, err := reader.ReadFile(path)
	assert.Error(t, err)
}

func TestReader_ReadFile_AbsentFile(t *testing.T) {
	reader := NewReader(slog.Default())

	_, err := reader.ReadFile(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestReader_ReadFile_RaggedRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ragged.csv")
	content := "Complaint ID,Consumer disputed?,Consumer complaint narrative\n" +
		"1,Yes,short row follows\n" +
		"2,No\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	reader := NewReader(slog.Default())
	records, err := reader.ReadFile(path)
	require.NoError(t, err)
	require.Len(t, records, 2)

	// Cells beyond a short row's length default to empty
	assert.Equal(t, "", records[1].Get(FieldNarrative))
}

func TestReader_ReadFile_SkipsUnparseableRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "badquote.csv")
	content := "Complaint ID,Consumer disputed?\n" +
		"1,Yes\n" +
		"\"2,No\n" + // unterminated quote, unparseable
		"3,No\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	logger, captured := testutil.NewTestLogger(t)
	reader := NewReader(logger)

	records, err := reader.ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, records, 1)
	assert.True(t, captured.ContainsMessage("Skipping unparseable CSV row"))
}
