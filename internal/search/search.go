// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search dispatches a search string to the metadata API as a DOI
// lookup or a free-text query, normalizes the response, and renders results.
package search

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pdiddy/litfinder/internal/doi"
	"github.com/pdiddy/litfinder/internal/normalize"
	"github.com/pdiddy/litfinder/pkg/types"
)

// Fetcher retrieves raw metadata API responses. *crossref.Client implements it.
type Fetcher interface {
	FetchByDOI(ctx context.Context, doi string) ([]byte, error)
	FetchByQuery(ctx context.Context, query string, field types.QueryField) ([]byte, error)
}

// Output is the result of one search.
type Output struct {
	// Query is the trimmed user input.
	Query string `json:"query"`

	Mode types.SearchMode `json:"mode"`

	// Kind records how the query was dispatched.
	Kind doi.Kind `json:"-"`

	// DOI is the identifier looked up when Kind is doi.DOI.
	DOI string `json:"doi,omitempty"`

	// Field is the query parameter used when Kind is doi.FreeText.
	Field types.QueryField `json:"field,omitempty"`

	Records []types.Record `json:"records"`
}

// Engine runs searches against one Fetcher.
type Engine struct {
	fetcher Fetcher
	logger  zerolog.Logger
}

// NewEngine returns an Engine using f.
func NewEngine(f Fetcher, logger zerolog.Logger) *Engine {
	return &Engine{fetcher: f, logger: logger}
}

// Search validates in, classifies it, issues exactly one request, and
// normalizes the response. Invalid input returns a *types.ValidationError
// before any request; an empty result set returns types.ErrNoResults.
func (e *Engine) Search(ctx context.Context, in types.SearchInput) (Output, error) {
	if err := in.Validate(); err != nil {
		return Output{}, err
	}

	mode := in.Mode
	if mode == "" {
		mode = types.ModeAuto
	}
	query := strings.TrimSpace(in.Query)
	c := doi.Classify(query, mode)
	out := Output{Query: query, Mode: mode, Kind: c.Kind}

	logger := e.logger.With().Str("mode", string(mode)).Str("kind", c.Kind.String()).Logger()

	var raw []byte
	var err error
	switch c.Kind {
	case doi.DOI:
		out.DOI = c.DOI
		logger.Debug().Str("doi", c.DOI).Msg("looking up DOI")
		raw, err = e.fetcher.FetchByDOI(ctx, c.DOI)
	default:
		out.Field = c.Field
		logger.Debug().Str("query", query).Str("field", string(c.Field)).Msg("searching")
		raw, err = e.fetcher.FetchByQuery(ctx, query, c.Field)
	}
	if err != nil {
		return out, err
	}

	var records []types.Record
	if c.Kind == doi.DOI {
		records, err = normalize.ParseWorks(raw)
	} else {
		records, err = normalize.ParseWorkList(raw)
	}
	if err != nil {
		return out, err
	}
	if len(records) == 0 {
		return out, types.ErrNoResults
	}
	out.Records = records
	logger.Debug().Int("records", len(records)).Msg("search complete")
	return out, nil
}
