// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/litfinder/internal/links"
	"github.com/pdiddy/litfinder/internal/search"
	"github.com/pdiddy/litfinder/pkg/types"
)

var linksCmd = &cobra.Command{
	Use:   "links <doi|query...>",
	Short: "Print alternate access links for a work",
	Long: `Links looks up the work (the first result for a free-text query, searched
as --mode selects) and prints its DOI resolver URL, the configured DOI
mirrors, title searches on the configured catalogs, the open-access API URL,
and a short DOI citation.

With --try-all only the mirror URLs are printed, one per line, for opening
in sequence.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLinks,
}

func init() {
	linksCmd.Flags().String("mode", string(types.ModeAuto), "search mode: auto, doi, title, author")
	linksCmd.Flags().Bool("try-all", false, "print only the DOI mirror URLs")
	linksCmd.Flags().Int("result", 1, "which search result to use (1-based)")

	rootCmd.AddCommand(linksCmd)
}

func runLinks(cmd *cobra.Command, args []string) error {
	tryAll, _ := cmd.Flags().GetBool("try-all")
	pick, _ := cmd.Flags().GetInt("result")
	modeFlag, _ := cmd.Flags().GetString("mode")
	mode, err := types.ParseSearchMode(modeFlag)
	if err != nil {
		return err
	}

	rec, err := pickRecord(cmd.Context(), newEngine(), types.SearchInput{Query: strings.Join(args, " "), Mode: mode}, pick)
	if err != nil {
		return err
	}

	gen := links.NewGenerator(cfg.Links, cfg.OpenAccess)
	w := cmd.OutOrStdout()
	if tryAll {
		if rec.DOI == "" {
			return errors.New("no DOI available for this work")
		}
		for _, u := range gen.TryAll(rec.DOI) {
			fmt.Fprintln(w, u)
		}
		return nil
	}

	fmt.Fprintf(w, "%s\n\n", rec.Title)
	printLinkSet(w, gen.Generate(rec))
	return nil
}

// pickRecord runs in and returns its pick-th result (1-based).
func pickRecord(ctx context.Context, engine *search.Engine, in types.SearchInput, pick int) (types.Record, error) {
	out, err := engine.Search(ctx, in)
	if err != nil {
		return types.Record{}, errors.New(search.UserMessage(err))
	}
	if pick < 1 || pick > len(out.Records) {
		return types.Record{}, fmt.Errorf("--result %d out of range (1-%d)", pick, len(out.Records))
	}
	return out.Records[pick-1], nil
}

func printLinkSet(w io.Writer, set types.LinkSet) {
	if set.Resolver != "" {
		fmt.Fprintf(w, "DOI:      %s\n", set.Resolver)
	}
	if set.Primary != "" {
		fmt.Fprintf(w, "Primary:  %s\n", set.Primary)
	}
	if set.OpenAccessAPI != "" {
		fmt.Fprintf(w, "OA check: %s\n", set.OpenAccessAPI)
	}
	printLinks(w, "Mirrors", set.Mirrors)
	printLinks(w, "Catalogs", set.Catalogs)
	if set.Citation != "" {
		fmt.Fprintf(w, "\nCitation:\n%s\n", set.Citation)
	}
}

func printLinks(w io.Writer, heading string, ls []types.Link) {
	if len(ls) == 0 {
		return
	}
	fmt.Fprintf(w, "\n%s:\n", heading)
	for _, l := range ls {
		fmt.Fprintf(w, "  %-32s %s\n", l.Label, l.URL)
	}
}
