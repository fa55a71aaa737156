// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SamJ33/Research-on-ASD/internal/card"
	"github.com/SamJ33/Research-on-ASD/internal/catalog"
	"github.com/SamJ33/Research-on-ASD/pkg/types"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the studies matching the category, title, and year filters",
	Long: `List applies the --category, --title, and --year filters to the catalog
and prints the number of matching studies followed by a table of them in
dataset order. Each filter defaults to All.`,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	criteria := criteriaFromFlags(cmd)
	results := portal.ApplyFilters(criteria)
	logger.Debug("Filters applied", zap.Stringer("criteria", criteria), zap.Int("results", len(results)))

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatListOutput(cmd.OutOrStdout(), results, jsonOutput)
}

func formatListOutput(w io.Writer, results []types.Record, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	fmt.Fprintf(w, "🔍 %s\n", catalog.Count(len(results)))
	if len(results) == 0 {
		fmt.Fprintln(w, card.NoMatches)
		return nil
	}

	fmt.Fprintln(w, renderStudyTable(results))
	return nil
}

// --- shared helpers ---

// addFilterFlags registers the category, title, and year filters on cmd.
func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().String("category", types.All, "filter by category (All for any)")
	cmd.Flags().String("title", types.All, "filter by exact title (All for any)")
	cmd.Flags().String("year", types.All, "filter by publication year (All for any)")
}

// criteriaFromFlags reads the filter flags. Each defaults to All; an empty
// value selects the records whose field is empty.
func criteriaFromFlags(cmd *cobra.Command) types.FilterCriteria {
	criteria := types.AllCriteria()
	for _, f := range types.Fields {
		v, _ := cmd.Flags().GetString(string(f))
		criteria = criteria.With(f, v)
	}
	return criteria
}

func init() {
	addFilterFlags(listCmd)
	listCmd.Flags().Bool("json", false, "output matching records as JSON")

	rootCmd.AddCommand(listCmd)
}
