// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the data structures shared by the litfinder packages:
// search input, normalized records, open-access outcomes, outbound links,
// configuration, and the error taxonomy.
package types

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// SearchMode is the mode the user selected for a search.
type SearchMode string

const (
	ModeAuto   SearchMode = "auto"
	ModeDOI    SearchMode = "doi"
	ModeTitle  SearchMode = "title"
	ModeAuthor SearchMode = "author"
)

// ParseSearchMode converts a flag or config value into a SearchMode. An empty
// string selects ModeAuto.
func ParseSearchMode(s string) (SearchMode, error) {
	switch m := SearchMode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return ModeAuto, nil
	case ModeAuto, ModeDOI, ModeTitle, ModeAuthor:
		return m, nil
	default:
		return "", &ValidationError{Field: "mode", Message: "must be one of auto, doi, title, author"}
	}
}

// QueryField selects which metadata API query parameter a free-text search uses.
type QueryField string

const (
	FieldGeneral QueryField = "general"
	FieldTitle   QueryField = "title"
	FieldAuthor  QueryField = "author"
)

// SearchInput is one search invocation: the raw user string and the selected
// mode. It is created per search and discarded after dispatch.
type SearchInput struct {
	Query string     `validate:"required"`
	Mode  SearchMode `validate:"omitempty,oneof=auto doi title author"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate rejects empty or whitespace-only queries and unknown modes. It
// reports a ValidationError so callers can show it inline without issuing a
// request.
func (in SearchInput) Validate() error {
	trimmed := SearchInput{Query: strings.TrimSpace(in.Query), Mode: in.Mode}
	if err := validate.Struct(trimmed); err != nil {
		return validationError(err)
	}
	return nil
}

// Record is a normalized literature entry built from one metadata API item.
// Zero values mean "absent" for the optional fields: Year 0, empty strings.
type Record struct {
	// Title is never empty; a placeholder stands in when the API has none.
	Title string `json:"title" yaml:"title"`

	// Authors holds at most five formatted names plus an "et al." marker,
	// or the single "Unknown authors" placeholder.
	Authors []string `json:"authors" yaml:"authors"`

	// Year is the publication year, 0 when unknown.
	Year int `json:"year,omitempty" yaml:"year,omitempty"`

	Journal string `json:"journal,omitempty" yaml:"journal,omitempty"`

	// DOI is the identifier as returned by the API (10.NNNN/suffix).
	DOI string `json:"doi,omitempty" yaml:"doi,omitempty"`

	// URL is the API-supplied link, or the doi.org resolver URL when the API
	// gave none and a DOI exists.
	URL string `json:"url,omitempty" yaml:"url,omitempty"`

	// Abstract is plain text with markup stripped.
	Abstract string `json:"abstract,omitempty" yaml:"abstract,omitempty"`

	// RecordType is the API's work type, "article" by default.
	RecordType string `json:"type" yaml:"type"`

	CitationCount int `json:"citation_count" yaml:"citation_count"`

	Publisher string `json:"publisher,omitempty" yaml:"publisher,omitempty"`
}

// AuthorLine joins the formatted authors for display.
func (r Record) AuthorLine() string {
	return strings.Join(r.Authors, "; ")
}
