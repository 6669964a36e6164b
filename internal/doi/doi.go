// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package doi recognizes and extracts Digital Object Identifiers and decides
// whether a search string is a DOI lookup or a free-text query.
package doi

import (
	"regexp"
	"strings"

	"github.com/pdiddy/litfinder/pkg/types"
)

// resolverBase is the doi.org resolver prefix.
const resolverBase = "https://doi.org/"

// anchoredPattern matches a whole string that is a DOI: "10.1038/nature12373".
var anchoredPattern = regexp.MustCompile(`(?i)^10\.\d{4,}/\S+$`)

// embeddedPattern finds a DOI inside longer text such as a pasted citation.
var embeddedPattern = regexp.MustCompile(`(?i)10\.\d{4,}/\S+`)

// Kind says how a search string is dispatched.
type Kind int

const (
	FreeText Kind = iota
	DOI
)

func (k Kind) String() string {
	if k == DOI {
		return "doi"
	}
	return "free_text"
}

// Classification is the dispatch decision for one search string.
type Classification struct {
	Kind Kind

	// DOI is set when Kind is DOI.
	DOI string

	// Field is the query parameter to use when Kind is FreeText.
	Field types.QueryField
}

// IsDOI reports whether s, after trimming, is exactly a DOI.
func IsDOI(s string) bool {
	return anchoredPattern.MatchString(strings.TrimSpace(s))
}

// Extract returns the first DOI found in s, or s unchanged when there is none.
func Extract(s string) string {
	if m := embeddedPattern.FindString(s); m != "" {
		return m
	}
	return s
}

// Classify decides how raw is searched. An explicit DOI mode always extracts
// a DOI from raw, even when raw is not a bare DOI. The caller rejects empty
// input before calling Classify.
func Classify(raw string, mode types.SearchMode) Classification {
	raw = strings.TrimSpace(raw)
	if mode == types.ModeDOI || IsDOI(raw) {
		return Classification{Kind: DOI, DOI: Extract(raw)}
	}

	field := types.FieldGeneral
	switch mode {
	case types.ModeTitle:
		field = types.FieldTitle
	case types.ModeAuthor:
		field = types.FieldAuthor
	}
	return Classification{Kind: FreeText, Field: field}
}

// ResolverURL returns the doi.org URL for d.
func ResolverURL(d string) string {
	return resolverBase + d
}
