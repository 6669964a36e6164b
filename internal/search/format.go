// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/pdiddy/litfinder/pkg/types"
)

// State is the mutually exclusive display state of a search.
type State int

const (
	StateLoading State = iota
	StateResults
	StateEmpty
	StateError
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateResults:
		return "results"
	case StateEmpty:
		return "empty"
	default:
		return "error"
	}
}

// StateOf returns the display state for a finished search.
func StateOf(out Output, err error) State {
	switch {
	case err == nil && len(out.Records) > 0:
		return StateResults
	case err == nil, errors.Is(err, types.ErrNoResults):
		return StateEmpty
	default:
		return StateError
	}
}

// UserMessage turns a search error into the single line shown to the user.
func UserMessage(err error) string {
	var (
		vErr       *types.ValidationError
		timeoutErr *types.TimeoutError
		httpErr    *types.HTTPError
		parseErr   *types.ParseError
		netErr     *types.NetworkError
	)
	switch {
	case err == nil:
		return ""
	case errors.As(err, &vErr):
		if vErr.Field == "query" {
			return "Please enter a DOI, title, author, or keywords."
		}
		return vErr.Error()
	case errors.Is(err, types.ErrNoResults):
		return "No matching works found. Try different keywords."
	case errors.Is(err, types.ErrSuperseded):
		return "Search replaced by a newer search."
	case errors.As(err, &timeoutErr):
		return fmt.Sprintf("Search failed: no response within %v.", timeoutErr.Timeout)
	case errors.As(err, &httpErr):
		return fmt.Sprintf("Search failed: HTTP error %d.", httpErr.StatusCode)
	case errors.As(err, &parseErr):
		return "Search failed: unexpected response from the metadata service."
	case errors.As(err, &netErr):
		return "Search failed: network error, please try again later."
	default:
		return "Search failed: " + err.Error()
	}
}

// FormatTable writes records as a human-readable table to w.
func FormatTable(out Output, w io.Writer) {
	if len(out.Records) == 0 {
		fmt.Fprintln(w, "No results found.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-56s  %-28s  %-4s  %-9s  %s\n",
		"#", "Title", "Authors", "Year", "Citations", "DOI")
	fmt.Fprintln(w, strings.Repeat("-", 130))

	for i, r := range out.Records {
		year := ""
		if r.Year > 0 {
			year = fmt.Sprintf("%d", r.Year)
		}
		fmt.Fprintf(w, "%-4d  %-56s  %-28s  %-4s  %-9d  %s\n",
			i+1, truncate(r.Title, 56), truncate(r.AuthorLine(), 28), year, r.CitationCount, r.DOI)
	}

	fmt.Fprintf(w, "\n%d results\n", len(out.Records))
}

// FormatList writes one block per record: title, authors, a details line,
// the abstract, and the record's DOI and URL.
func FormatList(out Output, w io.Writer) {
	if len(out.Records) == 0 {
		fmt.Fprintln(w, "No results found.")
		return
	}

	for i, r := range out.Records {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "[%d] %s\n", i+1, r.Title)
		fmt.Fprintf(w, "    %s\n", r.AuthorLine())
		if d := details(r); d != "" {
			fmt.Fprintf(w, "    %s\n", d)
		}
		if r.Abstract != "" {
			fmt.Fprintf(w, "    %s\n", truncate(r.Abstract, 300))
		}
		if r.DOI != "" {
			fmt.Fprintf(w, "    DOI: %s\n", r.DOI)
		}
		if r.URL != "" {
			fmt.Fprintf(w, "    URL: %s\n", r.URL)
		}
	}
}

// FormatJSON writes records as indented JSON to w.
func FormatJSON(out Output, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out.Records)
}

// details joins year, journal, publisher, and citation count, skipping
// whichever are absent.
func details(r types.Record) string {
	var parts []string
	if r.Year > 0 {
		parts = append(parts, fmt.Sprintf("%d", r.Year))
	}
	if r.Journal != "" {
		parts = append(parts, truncate(r.Journal, 50))
	}
	if r.Publisher != "" {
		parts = append(parts, r.Publisher)
	}
	if r.CitationCount > 0 {
		parts = append(parts, fmt.Sprintf("%d citations", r.CitationCount))
	}
	return strings.Join(parts, " · ")
}

// truncate shortens s to at most max runes, marking the cut with "...".
func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	r := []rune(s)
	return string(r[:max-3]) + "..."
}
