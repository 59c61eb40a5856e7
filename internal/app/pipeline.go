// Package app wires one ranking run end to end: load a decision table,
// score it, write the scored copy and optionally record a run report.
package app

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/rankrun/rankrun/internal/artifacts"
	logstage "github.com/rankrun/rankrun/internal/log"
	"github.com/rankrun/rankrun/internal/table"
	"github.com/rankrun/rankrun/internal/topsis"
)

// Options selects the inputs and outputs of a run.
type Options struct {
	InputPath  string
	Weights    string // comma-separated positive numbers, one per criterion
	Impacts    string // comma-separated + and - symbols, one per criterion
	OutputPath string
	Decimals   int    // decimal places for Topsis Score cells
	ReportDir  string // empty disables the run report
	ReportKeep int    // newest reports retained after the run, 0 keeps all
}

// Summary describes a completed run.
type Summary struct {
	Table      *table.Table
	Results    []topsis.Result
	Best       artifacts.Best
	Degenerate []string // labels of rows that scored 0 by convention
	ReportPath string
	Elapsed    time.Duration
}

// Run executes one ranking run. The scored table is written only after
// every input check and the scoring itself have succeeded.
func Run(opts Options) (*Summary, error) {
	report := artifacts.New(opts.InputPath)
	timer := logstage.NewStageTimer("rank")

	timer.Stage("load")
	tbl, err := table.ReadFile(opts.InputPath)
	if err != nil {
		return nil, err
	}
	log.Debug().
		Str("input", opts.InputPath).
		Int("rows", tbl.Rows()).
		Int("criteria", tbl.Criteria()).
		Msg("Decision table loaded")

	timer.Stage("validate")
	weights, err := table.ParseWeights(opts.Weights)
	if err != nil {
		return nil, err
	}
	directions, err := table.ParseImpacts(opts.Impacts)
	if err != nil {
		return nil, err
	}
	if err := tbl.Validate(weights, directions); err != nil {
		return nil, err
	}

	timer.Stage("score")
	results, err := topsis.Rank(tbl.Values, weights, directions)
	if err != nil {
		return nil, err
	}

	summary := &Summary{Table: tbl, Results: results}
	for i, r := range results {
		if r.Degenerate {
			summary.Degenerate = append(summary.Degenerate, tbl.Labels[i])
		}
		if r.Rank == 1 {
			summary.Best = artifacts.Best{Label: tbl.Labels[i], Score: r.Score, Rank: 1}
		}
	}
	if len(summary.Degenerate) > 0 {
		log.Warn().
			Strs("rows", summary.Degenerate).
			Msg("Degenerate rows are equidistant from both reference points and score 0")
	}

	timer.Stage("write")
	if err := table.WriteScored(opts.OutputPath, tbl, results, opts.Decimals); err != nil {
		return nil, err
	}
	log.Info().
		Str("output", opts.OutputPath).
		Int("rows", tbl.Rows()).
		Str("best", summary.Best.Label).
		Msg("Scored table written")

	if opts.ReportDir != "" {
		timer.Stage("report")
		report.Output = opts.OutputPath
		report.Rows = tbl.Rows()
		report.Criteria = tbl.Criteria()
		report.Weights = weights
		report.Impacts = impactSymbols(directions)
		report.Best = summary.Best
		report.DegenerateRows = summary.Degenerate
		report.Finish()

		path, err := artifacts.Write(opts.ReportDir, report)
		if err != nil {
			return nil, err
		}
		summary.ReportPath = path
		log.Info().Str("report", path).Msg("Run report written")

		pruned, err := artifacts.Prune(opts.ReportDir, opts.ReportKeep)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to prune old run reports")
		} else if len(pruned) > 0 {
			log.Debug().Int("pruned", len(pruned)).Msg("Old run reports pruned")
		}
	}

	summary.Elapsed = timer.Finish()
	return summary, nil
}

func impactSymbols(directions []topsis.Direction) []string {
	symbols := make([]string, len(directions))
	for i, d := range directions {
		if d == topsis.Minimize {
			symbols[i] = "-"
		} else {
			symbols[i] = "+"
		}
	}
	return symbols
}
