package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"gonum.org/v1/gonum/mat"
)

// ReadFile reads a decision table from a .csv or .xlsx file. The first row
// is the header, the first column the alternative label; every other cell
// must parse as a finite number.
func ReadFile(path string) (*Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return readCSV(path)
	case ".xlsx":
		return readXLSX(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Base(path))
	}
}

func readCSV(path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: %s", ErrNoRows, filepath.Base(path))
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	var records [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// csv.Reader reports ragged rows here, so shape violations
			// surface with their line number.
			return nil, fmt.Errorf("read row: %w", err)
		}
		records = append(records, record)
	}

	return build(path, header, records)
}

func readXLSX(path string) (*Table, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open input file: %w", err)
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", ErrNoRows)
	}

	rows, err := file.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoRows, filepath.Base(path))
	}

	header := rows[0]
	records := make([][]string, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if len(row) > len(header) {
			return nil, fmt.Errorf("table: row %d has %d cells, header has %d", i+2, len(row), len(header))
		}
		// excelize trims trailing empty cells per row; pad back to the
		// header width so missing values fail as non-numeric cells.
		for len(row) < len(header) {
			row = append(row, "")
		}
		records = append(records, row)
	}

	return build(path, header, records)
}

// build validates shape and parses all criterion cells.
func build(path string, header []string, records [][]string) (*Table, error) {
	if len(header) < 3 {
		return nil, fmt.Errorf("%w: found %d", ErrTooFewColumns, len(header))
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoRows, filepath.Base(path))
	}

	rows := len(records)
	criteria := len(header) - 1

	t := &Table{
		Path:   path,
		Header: header,
		Labels: make([]string, rows),
		Raw:    make([][]string, rows),
		Values: mat.NewDense(rows, criteria, nil),
	}

	for i, record := range records {
		t.Labels[i] = record[0]
		t.Raw[i] = record[1:]
		for j, cell := range record[1:] {
			v, err := parseCell(cell)
			if err != nil {
				return nil, fmt.Errorf("%w: row %q column %q is %q",
					ErrNonNumericCell, record[0], header[j+1], cell)
			}
			t.Values.Set(i, j, v)
		}
	}

	return t, nil
}

// parseCell parses one criterion cell. NaN and infinities are rejected even
// though strconv accepts them; the scorer requires finite input.
func parseCell(cell string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("not finite: %v", v)
	}
	return v, nil
}
