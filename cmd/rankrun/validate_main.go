package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rankrun/rankrun/internal/table"
)

// runValidate checks a table and its weights and impacts without writing
// anything, so automation can gate on the exit code.
func runValidate(cmd *cobra.Command, args []string) error {
	tbl, err := table.ReadFile(args[0])
	if err != nil {
		return err
	}

	weights, err := table.ParseWeights(args[1])
	if err != nil {
		return err
	}
	directions, err := table.ParseImpacts(args[2])
	if err != nil {
		return err
	}
	if err := tbl.Validate(weights, directions); err != nil {
		return err
	}

	fmt.Printf("✅ %s is rankable\n", args[0])
	fmt.Printf("Rows: %d\n", tbl.Rows())
	fmt.Printf("Criteria: %d (%s)\n", tbl.Criteria(), strings.Join(tbl.CriteriaNames(), ", "))
	for i, name := range tbl.CriteriaNames() {
		fmt.Printf("  %-16s weight %-8g %s\n", name, weights[i], directions[i])
	}

	return nil
}
