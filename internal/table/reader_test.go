package table

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadFile_CSV(t *testing.T) {
	path := writeTempCSV(t, "Fund Name,P1,P2,P3\nM1,0.84,0.71,6.7\nM2,0.91,0.83,7.0\n")

	tbl, err := ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, path, tbl.Path)
	assert.Equal(t, []string{"Fund Name", "P1", "P2", "P3"}, tbl.Header)
	assert.Equal(t, []string{"M1", "M2"}, tbl.Labels)
	assert.Equal(t, [][]string{{"0.84", "0.71", "6.7"}, {"0.91", "0.83", "7.0"}}, tbl.Raw)

	rows, cols := tbl.Values.Dims()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 3, cols)
	assert.InDelta(t, 0.84, tbl.Values.At(0, 0), 1e-12)
	assert.InDelta(t, 7.0, tbl.Values.At(1, 2), 1e-12)
}

func TestReadFile_UnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("a,b,c\n"), 0644))

	tbl, err := ReadFile(path)
	assert.Nil(t, tbl)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestReadFile_MissingFile(t *testing.T) {
	tbl, err := ReadFile(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Nil(t, tbl)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "open input file")
}

func TestReadFile_CSVShapeErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{"two columns only", "Name,P1\nM1,0.84\n", ErrTooFewColumns},
		{"header only", "Fund Name,P1,P2\n", ErrNoRows},
		{"empty file", "", ErrNoRows},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl, err := ReadFile(writeTempCSV(t, tt.content))
			assert.Nil(t, tbl)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestReadFile_CSVRaggedRow(t *testing.T) {
	tbl, err := ReadFile(writeTempCSV(t, "Name,P1,P2\nM1,1,2\nM2,1,2,3\n"))
	assert.Nil(t, tbl)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "read row")
}

func TestReadFile_NonNumericCells(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"text cell", "Name,P1,P2\nM1,0.84,high\n"},
		{"empty cell", "Name,P1,P2\nM1,,0.71\n"},
		{"nan cell", "Name,P1,P2\nM1,NaN,0.71\n"},
		{"inf cell", "Name,P1,P2\nM1,0.84,+Inf\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl, err := ReadFile(writeTempCSV(t, tt.content))
			assert.Nil(t, tbl)
			assert.ErrorIs(t, err, ErrNonNumericCell)
			assert.Contains(t, err.Error(), `row "M1"`)
		})
	}
}

func TestReadFile_NonNumericCellNamesColumn(t *testing.T) {
	tbl, err := ReadFile(writeTempCSV(t, "Name,P1,P2\nM1,0.84,0.71\nM2,0.91,oops\n"))
	assert.Nil(t, tbl)
	require.ErrorIs(t, err, ErrNonNumericCell)
	assert.Contains(t, err.Error(), `row "M2"`)
	assert.Contains(t, err.Error(), `column "P2"`)
}

func TestReadFile_XLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"Fund Name", "P1", "P2", "P3"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{"M1", 0.84, 0.71, 6.7}))
	require.NoError(t, f.SetSheetRow(sheet, "A3", &[]any{"M2", 0.91, 0.83, 7.0}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	tbl, err := ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Fund Name", "P1", "P2", "P3"}, tbl.Header)
	assert.Equal(t, []string{"M1", "M2"}, tbl.Labels)
	assert.InDelta(t, 0.84, tbl.Values.At(0, 0), 1e-12)
	assert.InDelta(t, 7.0, tbl.Values.At(1, 2), 1e-12)
}

func TestReadFile_XLSXMissingTrailingCell(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"Fund Name", "P1", "P2", "P3"}))
	// Last criterion cell left unset: the row comes back short and the
	// padded empty cell must be rejected as non-numeric.
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{"M1", 0.84, 0.71}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	tbl, err := ReadFile(path)
	assert.Nil(t, tbl)
	assert.ErrorIs(t, err, ErrNonNumericCell)
}
