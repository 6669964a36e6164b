// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/litfinder/internal/crossref"
	"github.com/pdiddy/litfinder/internal/search"
	"github.com/pdiddy/litfinder/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search [query...]",
	Short: "Look up works by DOI, title, author, or keywords",
	Long: `Search looks up scholarly works in Crossref. A query that is a DOI is
fetched directly; anything else is a bibliographic search returning up to
crossref.rows results. --mode forces the interpretation: doi extracts the
first DOI found in the query, title and author restrict the search field.`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().String("mode", string(types.ModeAuto), "search mode: auto, doi, title, author")
	searchCmd.Flags().String("format", "table", "output format: table, list, json, csl")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	modeFlag, _ := cmd.Flags().GetString("mode")
	mode, err := types.ParseSearchMode(modeFlag)
	if err != nil {
		return err
	}
	format, _ := cmd.Flags().GetString("format")

	engine := newEngine()
	in := types.SearchInput{Query: strings.Join(args, " "), Mode: mode}

	out, err := engine.Search(cmd.Context(), in)
	if errors.Is(err, types.ErrNoResults) {
		fmt.Fprintln(cmd.OutOrStdout(), search.UserMessage(err))
		return nil
	}
	if err != nil {
		logger.Debug().Err(err).Msg("search failed")
		return errors.New(search.UserMessage(err))
	}

	return render(cmd.OutOrStdout(), out, format)
}

// newEngine wires the Crossref client into a search engine using the loaded
// configuration.
func newEngine() *search.Engine {
	client := crossref.New(cfg.Metadata, newHTTPClient(), logger)
	return search.NewEngine(client, logger)
}

// render writes out in the named format.
func render(w io.Writer, out search.Output, format string) error {
	switch format {
	case "table":
		search.FormatTable(out, w)
		return nil
	case "list":
		search.FormatList(out, w)
		return nil
	case "json":
		return search.FormatJSON(out, w)
	case "csl":
		return search.FormatCSL(out, w)
	default:
		return fmt.Errorf("unknown format %q (want table, list, json, or csl)", format)
	}
}
