// Package ui renders ranked results for the terminal.
package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/rankrun/rankrun/internal/table"
	"github.com/rankrun/rankrun/internal/topsis"
)

var (
	headerColor = color.New(color.Bold)
	bestColor   = color.New(color.FgGreen)
	flagColor   = color.New(color.FgYellow)
)

// RenderRanked prints up to limit rows of the scored table to w, best rank
// first. A limit of 0 or less prints every row. Degenerate rows carry a
// DEGENERATE marker so their zero scores are not mistaken for real ones.
func RenderRanked(w io.Writer, t *table.Table, results []topsis.Result, limit, decimals int) error {
	if len(results) != t.Rows() {
		return fmt.Errorf("ui: %d results for %d rows", len(results), t.Rows())
	}

	shown := t.Rows()
	if limit > 0 && limit < shown {
		shown = limit
	}

	labelWidth := len(t.Header[0])
	for _, label := range t.Labels {
		if len(label) > labelWidth {
			labelWidth = len(label)
		}
	}

	fmt.Fprintln(w, headerColor.Sprintf("%-4s %-*s %10s", "RANK", labelWidth, t.Header[0], "SCORE"))

	// Ranks are a permutation of 1..n, so indexing by rank orders the rows.
	byRank := make([]int, len(results))
	for i, r := range results {
		byRank[r.Rank-1] = i
	}

	for pos := 0; pos < shown; pos++ {
		i := byRank[pos]
		line := fmt.Sprintf("%-4d %-*s %10s", results[i].Rank, labelWidth, t.Labels[i], table.FormatScore(results[i].Score, decimals))
		switch {
		case results[i].Degenerate:
			line += " " + flagColor.Sprint("DEGENERATE")
		case results[i].Rank == 1:
			line = bestColor.Sprint(line)
		}
		fmt.Fprintln(w, line)
	}

	if shown < t.Rows() {
		fmt.Fprintf(w, "... %d more rows in the output file\n", t.Rows()-shown)
	}

	return nil
}
