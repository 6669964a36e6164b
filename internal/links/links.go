// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package links builds the outbound URLs offered for a record: the DOI
// resolver, DOI-keyed mirrors, title searches on scholarly catalogs, the
// open-access API, and a copyable citation. It performs no I/O.
package links

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/pdiddy/litfinder/internal/doi"
	"github.com/pdiddy/litfinder/internal/normalize"
	"github.com/pdiddy/litfinder/internal/openaccess"
	"github.com/pdiddy/litfinder/pkg/types"
)

// StaggerInterval is the pause a UI should leave between opening successive
// mirror URLs from TryAll so popup blockers let them through.
const StaggerInterval = 500 * time.Millisecond

// Generator holds the configured mirror and catalog lists.
type Generator struct {
	cfg     types.LinksConfig
	oaBase  string
	oaEmail string
}

// NewGenerator returns a Generator. The open-access settings are only used to
// build the LinkSet.OpenAccessAPI URL.
func NewGenerator(cfg types.LinksConfig, oa types.OpenAccessConfig) *Generator {
	base := oa.BaseURL
	if base == "" {
		base = types.DefaultUnpaywallBase
	}
	email := oa.Email
	if email == "" {
		email = types.DefaultContactEmail
	}
	return &Generator{cfg: cfg, oaBase: base, oaEmail: email}
}

// Generate builds the LinkSet for rec. DOI-keyed links are omitted when rec
// has no DOI and catalog searches are omitted when it has no real title.
func (g *Generator) Generate(rec types.Record) types.LinkSet {
	set := types.LinkSet{Primary: rec.URL}

	if rec.DOI != "" {
		set.Resolver = doi.ResolverURL(rec.DOI)
		set.Mirrors = mirrorLinks(rec.DOI, g.cfg.Mirrors)
		set.OpenAccessAPI = openaccess.APIURL(g.oaBase, rec.DOI, g.oaEmail)
		set.Citation = Citation(rec.DOI)
	}
	if set.Primary == "" {
		set.Primary = set.Resolver
	}

	if title := strings.TrimSpace(rec.Title); title != "" && title != normalize.UntitledPlaceholder {
		set.Catalogs = catalogLinks(title, g.cfg.Catalogs)
	}
	return set
}

// TryAll returns the mirror URL for d on every configured mirror, in order.
// Opening them, and pacing that with StaggerInterval, is left to the caller.
func (g *Generator) TryAll(d string) []string {
	if d == "" {
		return nil
	}
	urls := make([]string, 0, len(g.cfg.Mirrors))
	for _, m := range mirrorLinks(d, g.cfg.Mirrors) {
		urls = append(urls, m.URL)
	}
	return urls
}

// Citation is the short text copied for a DOI.
func Citation(d string) string {
	return fmt.Sprintf("DOI: %s\nURL: %s", d, doi.ResolverURL(d))
}

func mirrorLinks(d string, mirrors []string) []types.Link {
	out := make([]types.Link, 0, len(mirrors))
	for i, base := range mirrors {
		out = append(out, types.Link{
			Label: fmt.Sprintf("Mirror %d (%s)", i+1, hostOf(base)),
			URL:   strings.TrimRight(base, "/") + "/" + d,
		})
	}
	return out
}

func catalogLinks(title string, catalogs []string) []types.Link {
	q := url.QueryEscape(title)
	out := make([]types.Link, 0, len(catalogs))
	for _, prefix := range catalogs {
		out = append(out, types.Link{Label: hostOf(prefix), URL: prefix + q})
	}
	return out
}

// hostOf labels a link by its host, falling back to the raw string.
func hostOf(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return raw
	}
	return strings.TrimPrefix(u.Host, "www.")
}
