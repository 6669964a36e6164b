// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package openaccess asks the Unpaywall API whether a DOI has a free
// full-text copy and reports the best available URL.
package openaccess

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pdiddy/litfinder/internal/httputil"
	"github.com/pdiddy/litfinder/pkg/types"
)

// unpaywallResponse captures the fields we need from an Unpaywall DOI object.
type unpaywallResponse struct {
	IsOA           bool               `json:"is_oa"`
	BestOALocation *unpaywallLocation `json:"best_oa_location"`
}

// unpaywallLocation is one open-access copy of a work.
type unpaywallLocation struct {
	URLForPDF string `json:"url_for_pdf"`
	URL       string `json:"url"`
}

// Resolver queries the open-access availability API.
type Resolver struct {
	http   *http.Client
	cfg    types.OpenAccessConfig
	logger zerolog.Logger
}

// New returns a Resolver. An empty BaseURL or Email falls back to the
// defaults in package types.
func New(cfg types.OpenAccessConfig, client *http.Client, logger zerolog.Logger) *Resolver {
	if cfg.BaseURL == "" {
		cfg.BaseURL = types.DefaultUnpaywallBase
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.Email == "" {
		cfg.Email = types.DefaultContactEmail
	}
	if client == nil {
		client = &http.Client{}
	}
	return &Resolver{
		http:   client,
		cfg:    cfg,
		logger: logger.With().Str("api", "unpaywall").Logger(),
	}
}

// APIURL returns the availability API URL for doi.
func (r *Resolver) APIURL(doi string) string {
	return APIURL(r.cfg.BaseURL, doi, r.cfg.Email)
}

// APIURL builds {base}/{doi}?email={contact}. Each DOI path segment is
// escaped; the slashes between them are kept.
func APIURL(base, doi, email string) string {
	segments := strings.Split(doi, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.TrimRight(base, "/") + "/" + strings.Join(segments, "/") +
		"?" + url.Values{"email": {email}}.Encode()
}

// Resolve reports the best open-access copy of doi. A PDF link wins over a
// landing page; a work that is not open access, or has neither link, is
// OANotFound. Transport, status, and decoding failures are returned as
// errors and never as OANotFound.
func (r *Resolver) Resolve(ctx context.Context, doi string) (types.OpenAccessResult, error) {
	doi = strings.TrimSpace(doi)
	if doi == "" {
		return types.OpenAccessResult{}, &types.ValidationError{Field: "doi", Message: "must not be empty"}
	}

	body, err := httputil.Fetch(ctx, r.http, r.APIURL(doi), r.cfg.HTTPConfig, r.logger)
	if err != nil {
		return types.OpenAccessResult{}, fmt.Errorf("open-access lookup %s: %w", doi, err)
	}

	var resp unpaywallResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return types.OpenAccessResult{}, &types.ParseError{Source: "unpaywall", Err: err}
	}

	result := decide(doi, resp)
	r.logger.Debug().Str("doi", doi).Str("status", string(result.Status)).Msg("open-access resolved")
	return result, nil
}

func decide(doi string, resp unpaywallResponse) types.OpenAccessResult {
	result := types.OpenAccessResult{DOI: doi, Status: types.OANotFound}
	if !resp.IsOA || resp.BestOALocation == nil {
		return result
	}
	switch loc := resp.BestOALocation; {
	case loc.URLForPDF != "":
		result.Status, result.URL = types.OAPDF, loc.URLForPDF
	case loc.URL != "":
		result.Status, result.URL = types.OALanding, loc.URL
	}
	return result
}
