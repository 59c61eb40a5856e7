package table

import (
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	atomicio "github.com/rankrun/rankrun/internal/io"
	"github.com/rankrun/rankrun/internal/topsis"
)

// Column headers appended to scored output.
const (
	ScoreHeader = "Topsis Score"
	RankHeader  = "Rank"
)

// WriteScored writes the table to path as CSV with Topsis Score and Rank
// columns appended to every row. Label and criterion cells pass through with
// their original text. The write is atomic: on any failure the destination
// file is not created or replaced.
func WriteScored(path string, t *Table, results []topsis.Result, decimals int) error {
	if len(results) != t.Rows() {
		return fmt.Errorf("table: %d results for %d rows", len(results), t.Rows())
	}

	return atomicio.WriteCSVAtomic(path, func(w *csv.Writer) error {
		header := make([]string, 0, len(t.Header)+2)
		header = append(header, t.Header...)
		header = append(header, ScoreHeader, RankHeader)
		if err := w.Write(header); err != nil {
			return err
		}

		for i, label := range t.Labels {
			row := make([]string, 0, len(header))
			row = append(row, label)
			row = append(row, t.Raw[i]...)
			row = append(row, FormatScore(results[i].Score, decimals), strconv.Itoa(results[i].Rank))
			if err := w.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}

// FormatScore renders a score rounded to the given number of decimal places
// with trailing zeros trimmed, so 0.9580 prints as 0.958.
func FormatScore(score float64, decimals int) string {
	return decimal.NewFromFloat(score).Round(int32(decimals)).String()
}
