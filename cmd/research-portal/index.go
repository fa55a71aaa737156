// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SamJ33/Research-on-ASD/internal/catalog"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Write the catalog to a SQLite index",
	Long: `Index stores every study of the loaded catalog in a SQLite database, in
dataset order, with indexes on category and year. Re-running replaces the
stored studies. The index can be used as the dataset with --data.`,
	RunE: runIndex,
}

func runIndex(cmd *cobra.Command, args []string) error {
	out, _ := cmd.Flags().GetString("out")

	records := portal.Records()
	if err := catalog.WriteIndex(cmd.Context(), out, records); err != nil {
		logger.Error("Index write failed", zap.String("out", out), zap.Error(err))
		return err
	}

	logger.Info("Index written", zap.String("out", out), zap.Int("records", len(records)))
	fmt.Fprintf(cmd.OutOrStdout(), "Indexed %d studies into %s\n", len(records), out)
	return nil
}

func init() {
	indexCmd.Flags().String("out", "catalog.db", "SQLite database to write")

	rootCmd.AddCommand(indexCmd)
}
