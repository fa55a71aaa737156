// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/SamJ33/Research-on-ASD/internal/browse"
	"github.com/SamJ33/Research-on-ASD/internal/card"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Explore the catalog interactively",
	Long: `Browse opens a full-screen explorer: the studies matching the filters on
the left, the card of the selected study on the right.

Keys: c/C cycle the category filter, y/Y cycle the year filter, r resets the
filters, tab moves focus to the card for scrolling, / searches titles and
keywords, q quits. The --category, --title, and --year flags set the initial
filters.`,
	RunE: runBrowse,
}

func runBrowse(cmd *cobra.Command, args []string) error {
	renderer, err := card.New(cfg.Style, cfg.WordWrap)
	if err != nil {
		return err
	}

	m, err := browse.New(portal, renderer, criteriaFromFlags(cmd))
	if err != nil {
		return err
	}
	return browse.Run(m)
}

func init() {
	addFilterFlags(browseCmd)

	rootCmd.AddCommand(browseCmd)
}
