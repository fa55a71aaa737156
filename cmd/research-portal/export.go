// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SamJ33/Research-on-ASD/internal/catalog"
	"github.com/SamJ33/Research-on-ASD/pkg/types"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the filtered studies to YAML, JSON, or CSV",
	Long: `Export writes the studies matching the --category, --title, and --year
filters to stdout or to --out. Exports use the dataset column names and can be
loaded back with --data.

Without --format the format follows the --out extension, defaulting to YAML.`,
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	out, _ := cmd.Flags().GetString("out")

	formatName, _ := cmd.Flags().GetString("format")
	if !cmd.Flags().Changed("format") && out != "" {
		formatName = strings.TrimPrefix(strings.ToLower(filepath.Ext(out)), ".")
		if formatName == "yml" {
			formatName = string(catalog.FormatYAML)
		}
	}
	format, err := catalog.ParseFormat(formatName)
	if err != nil {
		return err
	}

	results := portal.ApplyFilters(criteriaFromFlags(cmd))

	if out == "" {
		err = catalog.Export(cmd.OutOrStdout(), format, results)
	} else {
		err = exportFile(out, format, results)
	}
	if err != nil {
		logger.Error("Export failed", zap.String("out", out), zap.Error(err))
		return err
	}

	logger.Info("Exported studies",
		zap.String("format", string(format)),
		zap.String("out", out),
		zap.Int("records", len(results)))
	if out != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d studies to %s\n", len(results), out)
	}
	return nil
}

// exportFile writes records to path. The file is closed before returning so
// that a failed final write is reported.
func exportFile(path string, format catalog.Format, records []types.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := catalog.Export(f, format, records); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}

func init() {
	addFilterFlags(exportCmd)
	exportCmd.Flags().String("format", "yaml", "export format: yaml, json, or csv")
	exportCmd.Flags().String("out", "", "output file (default: stdout)")

	rootCmd.AddCommand(exportCmd)
}
