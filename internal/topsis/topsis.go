// Package topsis implements TOPSIS (Technique for Order Preference by
// Similarity to Ideal Solution) ranking over a decision matrix.
//
// Each row is an alternative, each column a criterion. Columns are scaled
// to unit Euclidean norm, weighted, and compared against the per-column
// ideal and anti-ideal values. A row's score is its relative closeness to
// the ideal, in [0,1], higher is better. The transform is a single
// closed-form pass with no retained state.
package topsis

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Direction states whether higher or lower raw values are preferable for a
// criterion column.
type Direction int

const (
	// Maximize marks a benefit criterion: higher raw values rank better.
	Maximize Direction = iota
	// Minimize marks a cost criterion: lower raw values rank better.
	Minimize
)

// String returns the lowercase name of the direction.
func (d Direction) String() string {
	switch d {
	case Maximize:
		return "maximize"
	case Minimize:
		return "minimize"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

var (
	// ErrEmptyMatrix indicates a matrix with no rows or no columns.
	ErrEmptyMatrix = errors.New("topsis: matrix must have at least one row and one column")

	// ErrDimensionMismatch indicates weights or directions whose length
	// disagrees with the matrix column count.
	ErrDimensionMismatch = errors.New("topsis: vector length does not match column count")

	// ErrDegenerateColumn indicates an all-zero column, for which the unit
	// normalization is undefined.
	ErrDegenerateColumn = errors.New("topsis: column has zero norm")

	// ErrInvalidDirection indicates a direction value outside
	// {Maximize, Minimize}.
	ErrInvalidDirection = errors.New("topsis: direction must be Maximize or Minimize")
)

// Result is the scored outcome for one input row. Results are returned in
// input row order; Rank reflects the descending-score ordering, 1 is best.
type Result struct {
	Score float64 `json:"score"`
	Rank  int     `json:"rank"`

	// Degenerate marks a row whose distances to both the ideal and the
	// anti-ideal were zero. Such rows score 0 instead of failing the run.
	Degenerate bool `json:"degenerate,omitempty"`
}

// Scorer computes TOPSIS rankings. It is stateless and safe for reuse;
// every call is independent and deterministic.
type Scorer struct{}

// NewScorer creates a new TOPSIS scorer.
func NewScorer() *Scorer {
	return &Scorer{}
}

// Rank scores every row of m against the given per-column weights and
// directions and returns one Result per row, in input order.
//
// m must be R×C with R≥1, C≥1 and only finite entries; weights must hold C
// positive values and directions C valid symbols. Inputs are read-only:
// Rank never mutates m, weights, or directions.
//
// Errors: ErrEmptyMatrix, ErrDimensionMismatch, ErrInvalidDirection, and
// ErrDegenerateColumn (wrapped with the offending column index). All of
// them abort the call before any scoring happens.
func (s *Scorer) Rank(m mat.Matrix, weights []float64, directions []Direction) ([]Result, error) {
	rows, cols := m.Dims()
	if rows == 0 || cols == 0 {
		return nil, ErrEmptyMatrix
	}
	if len(weights) != cols {
		return nil, fmt.Errorf("%w: %d weights for %d columns", ErrDimensionMismatch, len(weights), cols)
	}
	if len(directions) != cols {
		return nil, fmt.Errorf("%w: %d directions for %d columns", ErrDimensionMismatch, len(directions), cols)
	}
	for j, d := range directions {
		if d != Maximize && d != Minimize {
			return nil, fmt.Errorf("%w: column %d has %s", ErrInvalidDirection, j, d)
		}
	}

	// Step 1+2: unit-normalize each column, then apply its weight.
	weighted, err := weightedNormalize(m, weights)
	if err != nil {
		return nil, err
	}

	// Step 3: per-column ideal and anti-ideal values by direction.
	ideal, anti := referenceVectors(weighted, directions)

	// Step 4+5: Euclidean separation from both references, then the
	// relative closeness score.
	results := make([]Result, rows)
	for i := 0; i < rows; i++ {
		row := weighted.RawRowView(i)
		dIdeal := floats.Distance(row, ideal, 2)
		dAnti := floats.Distance(row, anti, 2)
		if dIdeal+dAnti == 0 {
			// Row coincides with both references. Score 0 by policy,
			// flagged so callers can surface a warning.
			results[i].Degenerate = true
			continue
		}
		results[i].Score = dAnti / (dIdeal + dAnti)
	}

	// Step 6: ranks from descending score order.
	assignRanks(results)
	return results, nil
}

// Rank scores m with a default Scorer. See Scorer.Rank.
func Rank(m mat.Matrix, weights []float64, directions []Direction) ([]Result, error) {
	return NewScorer().Rank(m, weights, directions)
}

// weightedNormalize scales each column of m to unit Euclidean norm and
// multiplies it by the column weight. m is not modified.
func weightedNormalize(m mat.Matrix, weights []float64) (*mat.Dense, error) {
	rows, cols := m.Dims()
	out := mat.NewDense(rows, cols, nil)
	for j := 0; j < cols; j++ {
		col := mat.Col(nil, j, m)
		norm := floats.Norm(col, 2)
		if norm == 0 {
			return nil, fmt.Errorf("%w: column %d", ErrDegenerateColumn, j)
		}
		floats.Scale(weights[j]/norm, col)
		out.SetCol(j, col)
	}
	return out, nil
}

// referenceVectors extracts the per-column ideal and anti-ideal values from
// the weighted matrix. For Maximize columns the ideal is the column maximum;
// for Minimize columns the roles swap.
func referenceVectors(weighted *mat.Dense, directions []Direction) (ideal, anti []float64) {
	_, cols := weighted.Dims()
	ideal = make([]float64, cols)
	anti = make([]float64, cols)
	for j := 0; j < cols; j++ {
		col := mat.Col(nil, j, weighted)
		hi, lo := floats.Max(col), floats.Min(col)
		if directions[j] == Minimize {
			hi, lo = lo, hi
		}
		ideal[j], anti[j] = hi, lo
	}
	return ideal, anti
}

// assignRanks writes 1-based ranks in descending score order. The sort is
// stable, so tied scores keep their input order and receive consecutive
// ranks.
func assignRanks(results []Result) {
	order := make([]int, len(results))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return results[order[a]].Score > results[order[b]].Score
	})
	for pos, idx := range order {
		results[idx].Rank = pos + 1
	}
}
