// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SamJ33/Research-on-ASD/pkg/types"
)

var optionsCmd = &cobra.Command{
	Use:       "options <category|title|year>",
	Short:     "Print the selectable values of a filter",
	Long:      `Options prints All followed by the sorted distinct values of a field, the choices accepted by the --category, --title, and --year filters. An empty value is printed as "" and selected with e.g. --year "".`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{string(types.FieldCategory), string(types.FieldTitle), string(types.FieldYear)},
	RunE:      runOptions,
}

func runOptions(cmd *cobra.Command, args []string) error {
	field, err := types.ParseField(args[0])
	if err != nil {
		return err
	}

	opts, err := portal.Options(field)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(opts)
	}
	for _, o := range opts {
		if o == "" {
			o = `""`
		}
		fmt.Fprintln(w, o)
	}
	return nil
}

func init() {
	optionsCmd.Flags().Bool("json", false, "output options as a JSON array")

	rootCmd.AddCommand(optionsCmd)
}
