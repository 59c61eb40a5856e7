// Package artifacts records machine-readable run reports next to the
// scored output so ranking runs can be audited after the fact.
package artifacts

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	atomicio "github.com/rankrun/rankrun/internal/io"
)

// Best identifies the top-ranked alternative of a run.
type Best struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
	Rank  int     `json:"rank"`
}

// Report captures one ranking run end to end.
type Report struct {
	RunID          uuid.UUID `json:"run_id"`
	StartedAt      time.Time `json:"started_at"`
	FinishedAt     time.Time `json:"finished_at"`
	Input          string    `json:"input"`
	Output         string    `json:"output"`
	Rows           int       `json:"rows"`
	Criteria       int       `json:"criteria"`
	Weights        []float64 `json:"weights"`
	Impacts        []string  `json:"impacts"`
	Best           Best      `json:"best"`
	DegenerateRows []string  `json:"degenerate_rows,omitempty"`
	ElapsedMS      int64     `json:"elapsed_ms"`
}

// New seeds a report with a fresh run ID and UTC start time.
func New(input string) *Report {
	return &Report{
		RunID:     uuid.New(),
		StartedAt: time.Now().UTC(),
		Input:     input,
	}
}

// Finish stamps the end time and elapsed duration.
func (r *Report) Finish() {
	r.FinishedAt = time.Now().UTC()
	r.ElapsedMS = r.FinishedAt.Sub(r.StartedAt).Milliseconds()
}

// Write stores the report under dir as <timestamp>-rank.json and returns
// the written path. The timestamp comes from the run's start time so the
// filename is stable for a given run.
func Write(dir string, r *Report) (string, error) {
	timestamp := r.StartedAt.Format("20060102-150405")
	path := filepath.Join(dir, fmt.Sprintf("%s-rank.json", timestamp))

	if err := atomicio.WriteJSONAtomic(path, r); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}

	return path, nil
}
