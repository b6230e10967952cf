package importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const sampleCSV = `Full Name,E-mail,Date,Duration,Course,CPR
Jane Doe,jane@example.com,2025-01-01,24,CPR Level C,C
John Roe,john@example.com,01/15/2025,16,First Aid Basic,A
`

func TestParseCSV(t *testing.T) {
	rows, err := ParseCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Jane Doe", rows[0].Get(ColStudentName))
	assert.Equal(t, "jane@example.com", rows[0].Get(ColEmail))
	assert.Equal(t, "2025-01-01", rows[0].Get(ColIssueDate))
	assert.Equal(t, "24", rows[0].Get(ColLength))
	assert.Equal(t, "CPR Level C", rows[0].Get(ColCourse))
	assert.Equal(t, "C", rows[0].Get(ColCPRLevel))

	// US-style date reformatted to ISO
	assert.Equal(t, "2025-01-15", rows[1].Get(ColIssueDate))
	assert.Empty(t, rows[1].Warnings)
}

func TestParseCSVMissingRequiredColumns(t *testing.T) {
	_, err := ParseCSV(strings.NewReader("Full Name,Course\nJane Doe,CPR Level C\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), ColEmail)
	assert.Contains(t, err.Error(), ColIssueDate)
	assert.Contains(t, err.Error(), ColLength)
	assert.NotContains(t, err.Error(), ColStudentName)
}

func TestParseCSVUnparseableDateWarns(t *testing.T) {
	csv := "Student Name,Email,Issue Date,Length\nJane Doe,jane@example.com,someday soon,24\n"
	rows, err := ParseCSV(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, rows, 1)

	// bad date is dropped to empty, but the row says so
	assert.Equal(t, "", rows[0].Get(ColIssueDate))
	require.Len(t, rows[0].Warnings, 1)
	assert.Contains(t, rows[0].Warnings[0], "someday soon")
}

func TestParseCSVEmptyFile(t *testing.T) {
	_, err := ParseCSV(strings.NewReader("Student Name,Email,Issue Date,Length\n"))
	assert.Error(t, err)
}

// buildXLSX writes the given grid into an in-memory workbook
func buildXLSX(t *testing.T, grid [][]string) []byte {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, row := range grid {
		for j, val := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, val))
		}
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestParseXLSXMatchesCSVNormalization(t *testing.T) {
	data := buildXLSX(t, [][]string{
		{"Full Name", "E-mail", "Date", "Duration", "Course", "First Aid"},
		{"Jane Doe", "jane@example.com", "2025-01-01", "24", "CPR Level C", "Standard"},
	})

	xlsxRows, err := ParseXLSX(data)
	require.NoError(t, err)

	csvRows, err := ParseCSV(strings.NewReader(
		"Full Name,E-mail,Date,Duration,Course,First Aid\nJane Doe,jane@example.com,2025-01-01,24,CPR Level C,Standard\n"))
	require.NoError(t, err)

	// same aliases resolve to the same canonical keys in both formats
	require.Len(t, xlsxRows, 1)
	require.Len(t, csvRows, 1)
	assert.Equal(t, csvRows[0].Fields, xlsxRows[0].Fields)
	assert.Equal(t, "Standard", xlsxRows[0].Get(ColFirstAidLevel))
}

func TestParseXLSXMissingRequiredColumns(t *testing.T) {
	data := buildXLSX(t, [][]string{
		{"Full Name", "Course"},
		{"Jane Doe", "CPR Level C"},
	})

	// the spreadsheet path enforces the same required set as CSV
	_, err := ParseXLSX(data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ColEmail)
}

func TestParseFileDispatch(t *testing.T) {
	_, err := ParseFile("roster.pdf", []byte("%PDF"))
	assert.Error(t, err)

	rows, err := ParseFile("roster.csv", []byte(sampleCSV))
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}
