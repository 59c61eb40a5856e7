package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/rankrun/rankrun/internal/app"
	"github.com/rankrun/rankrun/internal/config"
	"github.com/rankrun/rankrun/internal/table"
	"github.com/rankrun/rankrun/internal/ui"
)

// runRank executes one ranking run from positional args. Explicit flags win
// over the config file, the config file wins over built-in defaults.
func runRank(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	decimals := cfg.Output.Decimals
	if cmd.Flags().Changed("decimals") {
		decimals, _ = cmd.Flags().GetInt("decimals")
	}
	top := cfg.Preview.Rows
	if cmd.Flags().Changed("top") {
		top, _ = cmd.Flags().GetInt("top")
	}
	reportDir := cfg.Report.Dir
	if cmd.Flags().Changed("report-dir") {
		reportDir, _ = cmd.Flags().GetString("report-dir")
	}
	reportKeep := cfg.Report.Keep
	if cmd.Flags().Changed("report-keep") {
		reportKeep, _ = cmd.Flags().GetInt("report-keep")
	}
	quiet, _ := cmd.Flags().GetBool("quiet")

	if decimals < 0 || decimals > 10 {
		return fmt.Errorf("decimals must be between 0 and 10, got %d", decimals)
	}

	opts := app.Options{
		InputPath:  args[0],
		Weights:    args[1],
		Impacts:    args[2],
		OutputPath: args[3],
		Decimals:   decimals,
		ReportDir:  reportDir,
		ReportKeep: reportKeep,
	}

	log.Info().
		Str("input", opts.InputPath).
		Str("output", opts.OutputPath).
		Int("decimals", decimals).
		Msg("Starting ranking run")

	summary, err := app.Run(opts)
	if err != nil {
		return err
	}

	if quiet {
		return nil
	}

	if top > 0 {
		if err := ui.RenderRanked(os.Stdout, summary.Table, summary.Results, top, decimals); err != nil {
			return err
		}
		fmt.Println()
	}

	fmt.Printf("✅ Ranked %d rows in %s\n", summary.Table.Rows(), summary.Elapsed.Round(time.Millisecond))
	fmt.Printf("Best: %s (score %s)\n", summary.Best.Label, table.FormatScore(summary.Best.Score, decimals))
	fmt.Printf("Wrote %s\n", opts.OutputPath)
	if summary.ReportPath != "" {
		fmt.Printf("Report: %s\n", summary.ReportPath)
	}
	if len(summary.Degenerate) > 0 {
		fmt.Printf("⚠️  %d rows scored 0 as degenerate: %s\n", len(summary.Degenerate), strings.Join(summary.Degenerate, ", "))
	}

	return nil
}
