// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package crossref fetches raw work metadata from the Crossref REST API,
// either by DOI or by a keyword, title, or author query.
package crossref

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pdiddy/litfinder/internal/httputil"
	"github.com/pdiddy/litfinder/pkg/types"
)

// queryParams maps a query field to the Crossref parameter that searches it.
var queryParams = map[types.QueryField]string{
	types.FieldGeneral: "query",
	types.FieldTitle:   "query.title",
	types.FieldAuthor:  "query.author",
}

// Client issues single, time-bounded requests to the Crossref works endpoint.
// It returns the response body untouched; see package normalize for mapping.
type Client struct {
	http   *http.Client
	cfg    types.MetadataConfig
	logger zerolog.Logger
}

// New returns a Client. Empty BaseURL and zero Rows fall back to the defaults
// in package types.
func New(cfg types.MetadataConfig, client *http.Client, logger zerolog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = types.DefaultCrossrefBase
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.Rows <= 0 {
		cfg.Rows = types.DefaultRows
	}
	if client == nil {
		client = &http.Client{}
	}
	return &Client{
		http:   client,
		cfg:    cfg,
		logger: logger.With().Str("api", "crossref").Logger(),
	}
}

// FetchByDOI looks up a single work. The DOI is percent-encoded as one path
// segment, slash included.
func (c *Client) FetchByDOI(ctx context.Context, doi string) ([]byte, error) {
	u := c.cfg.BaseURL + "/" + url.PathEscape(doi)
	if c.cfg.Mailto != "" {
		u += "?" + url.Values{"mailto": {c.cfg.Mailto}}.Encode()
	}
	body, err := httputil.Fetch(ctx, c.http, u, c.cfg.HTTPConfig, c.logger)
	if err != nil {
		return nil, fmt.Errorf("crossref lookup %s: %w", doi, err)
	}
	return body, nil
}

// FetchByQuery runs a one-page search, capped at the configured row count,
// with query placed in the parameter selected by field.
func (c *Client) FetchByQuery(ctx context.Context, query string, field types.QueryField) ([]byte, error) {
	param, ok := queryParams[field]
	if !ok {
		param = queryParams[types.FieldGeneral]
	}

	params := url.Values{
		"rows": {strconv.Itoa(c.cfg.Rows)},
		param:  {query},
	}
	if c.cfg.Mailto != "" {
		params.Set("mailto", c.cfg.Mailto)
	}

	body, err := httputil.Fetch(ctx, c.http, c.cfg.BaseURL+"?"+params.Encode(), c.cfg.HTTPConfig, c.logger)
	if err != nil {
		return nil, fmt.Errorf("crossref search: %w", err)
	}
	return body, nil
}
