// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SamJ33/Research-on-ASD/internal/card"
	"github.com/SamJ33/Research-on-ASD/internal/catalog"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the research card of one study",
	Long: `Show applies the --category, --title, and --year filters, selects a study
from the matching set, and prints its card: year and category badges,
authors, keywords, a summary of the abstract, the full abstract, and
external links.

--study names the study to show; without it the first matching study is
shown. --plain prints the card as Markdown.`,
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	results := portal.ApplyFilters(criteriaFromFlags(cmd))

	w := cmd.OutOrStdout()
	if len(results) == 0 {
		fmt.Fprintln(w, card.NoMatches)
		return nil
	}

	title, _ := cmd.Flags().GetString("study")
	if title == "" {
		title = results[0].Title
	}
	record, err := catalog.FindByTitle(results, title)
	if err != nil {
		return fmt.Errorf("selecting study: %w", err)
	}

	if plain, _ := cmd.Flags().GetBool("plain"); plain {
		fmt.Fprint(w, card.Markdown(record))
		return nil
	}

	renderer, err := card.New(cfg.Style, cfg.WordWrap)
	if err != nil {
		return err
	}
	out, err := renderer.Render(record)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "🔍 %s\n", catalog.Count(len(results)))
	fmt.Fprint(w, out)
	return nil
}

func init() {
	addFilterFlags(showCmd)
	showCmd.Flags().String("study", "", "title of the study to show (default: first match)")
	showCmd.Flags().Bool("plain", false, "print the card as Markdown")

	rootCmd.AddCommand(showCmd)
}
