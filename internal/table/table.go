// Package table reads and writes delimited decision tables. A table holds
// one alternative per row: a label in the first column and numeric criterion
// values in the rest. The loader validates shape and cell contents so the
// scoring core only ever sees clean numeric input.
package table

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/rankrun/rankrun/internal/topsis"
)

var (
	// ErrUnsupportedFormat indicates an input file that is neither .csv nor .xlsx.
	ErrUnsupportedFormat = errors.New("table: input must be a .csv or .xlsx file")

	// ErrTooFewColumns indicates fewer than three columns (label + two criteria).
	ErrTooFewColumns = errors.New("table: input must contain three or more columns")

	// ErrNoRows indicates a table without data rows.
	ErrNoRows = errors.New("table: input has no data rows")

	// ErrNonNumericCell indicates a criterion cell that does not parse as a
	// finite number.
	ErrNonNumericCell = errors.New("table: non-numeric cell")

	// ErrBadWeight indicates a weight entry that is not a positive finite number.
	ErrBadWeight = errors.New("table: weights must be positive numbers")

	// ErrBadImpact indicates an impact symbol other than + or -.
	ErrBadImpact = errors.New("table: impacts must be + or -")

	// ErrCountMismatch indicates weight or impact counts that disagree with
	// the table's criteria columns.
	ErrCountMismatch = errors.New("table: count does not match criteria columns")
)

// Table is a decision table read from disk. Values holds the parsed floats;
// Raw keeps the original cell text so output rows pass through unchanged.
type Table struct {
	Path   string
	Header []string   // full header row, label column first
	Labels []string   // first-column cell of each data row
	Raw    [][]string // original criterion cell text per data row
	Values *mat.Dense // parsed criterion values, Rows×Criteria
}

// Rows returns the number of alternatives.
func (t *Table) Rows() int {
	return len(t.Labels)
}

// Criteria returns the number of criterion columns.
func (t *Table) Criteria() int {
	return len(t.Header) - 1
}

// CriteriaNames returns the header names of the criterion columns.
func (t *Table) CriteriaNames() []string {
	return t.Header[1:]
}

// Validate checks that weights and directions agree with the criteria count.
// The same violation is caught again by the core; checking here lets the
// caller fail before any scoring work with the column names at hand.
func (t *Table) Validate(weights []float64, directions []topsis.Direction) error {
	if len(weights) != t.Criteria() {
		return fmt.Errorf("%w: %d weights for %d criteria", ErrCountMismatch, len(weights), t.Criteria())
	}
	if len(directions) != t.Criteria() {
		return fmt.Errorf("%w: %d impacts for %d criteria", ErrCountMismatch, len(directions), t.Criteria())
	}
	return nil
}

// ParseWeights parses a comma-separated weight string such as "1,1,2,1,1".
// Every entry must be a positive finite number.
func ParseWeights(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	weights := make([]float64, 0, len(parts))
	for i, part := range parts {
		part = strings.TrimSpace(part)
		f, err := strconv.ParseFloat(part, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, fmt.Errorf("%w: entry %d is %q", ErrBadWeight, i+1, part)
		}
		if f <= 0 {
			return nil, fmt.Errorf("%w: entry %d is %v", ErrBadWeight, i+1, f)
		}
		weights = append(weights, f)
	}
	return weights, nil
}

// ParseImpacts parses a comma-separated impact string such as "+,+,-,+,+".
// A + maps to Maximize, a - to Minimize.
func ParseImpacts(s string) ([]topsis.Direction, error) {
	parts := strings.Split(s, ",")
	directions := make([]topsis.Direction, 0, len(parts))
	for i, part := range parts {
		switch strings.TrimSpace(part) {
		case "+":
			directions = append(directions, topsis.Maximize)
		case "-":
			directions = append(directions, topsis.Minimize)
		default:
			return nil, fmt.Errorf("%w: entry %d is %q", ErrBadImpact, i+1, strings.TrimSpace(part))
		}
	}
	return directions, nil
}
