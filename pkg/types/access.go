// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// OAStatus is the outcome of an open-access availability check.
type OAStatus string

const (
	// OAPDF means a direct full-text PDF link was found.
	OAPDF OAStatus = "pdf"
	// OALanding means the work is open access but only a landing page is known.
	OALanding OAStatus = "landing"
	// OANotFound means no open-access copy is known.
	OANotFound OAStatus = "not_found"
)

// OpenAccessResult is the answer to one open-access query. A failed query is
// reported as an error instead of a result.
type OpenAccessResult struct {
	DOI    string   `json:"doi" yaml:"doi"`
	Status OAStatus `json:"status" yaml:"status"`
	URL    string   `json:"url,omitempty" yaml:"url,omitempty"`
}

// Found reports whether a PDF or landing-page URL is available.
func (r OpenAccessResult) Found() bool {
	return r.Status == OAPDF || r.Status == OALanding
}

// Link is a labeled outbound URL.
type Link struct {
	Label string `json:"label" yaml:"label"`
	URL   string `json:"url" yaml:"url"`
}

// LinkSet holds every outbound URL generated for one record. Empty fields and
// nil slices mean the record lacked the DOI or title the link needs.
type LinkSet struct {
	// Resolver is the doi.org URL for the record's DOI.
	Resolver string `json:"resolver,omitempty" yaml:"resolver,omitempty"`

	// Primary is the record's own URL.
	Primary string `json:"primary,omitempty" yaml:"primary,omitempty"`

	// Mirrors are DOI-keyed alternate hosts.
	Mirrors []Link `json:"mirrors,omitempty" yaml:"mirrors,omitempty"`

	// Catalogs are title searches on scholarly catalogs and search engines.
	Catalogs []Link `json:"catalogs,omitempty" yaml:"catalogs,omitempty"`

	// OpenAccessAPI is the raw availability API URL for the DOI.
	OpenAccessAPI string `json:"open_access_api,omitempty" yaml:"open_access_api,omitempty"`

	// Citation is a short copyable DOI citation.
	Citation string `json:"citation,omitempty" yaml:"citation,omitempty"`
}
