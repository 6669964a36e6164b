// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/litfinder/internal/links"
	"github.com/pdiddy/litfinder/internal/search"
	"github.com/pdiddy/litfinder/pkg/types"
)

func TestRender_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := render(&buf, search.Output{}, "bibtex")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestRender_Formats(t *testing.T) {
	out := search.Output{Records: []types.Record{{Title: "A Work", Authors: []string{"Doe, J."}, DOI: "10.1000/xyz"}}}
	for _, f := range []string{"table", "list", "json", "csl"} {
		var buf bytes.Buffer
		require.NoError(t, render(&buf, out, f), f)
		assert.Contains(t, buf.String(), "10.1000/xyz", f)
	}
}

func TestPrintOpenAccess(t *testing.T) {
	tests := []struct {
		res  types.OpenAccessResult
		want string
	}{
		{types.OpenAccessResult{DOI: "10.1/x", Status: types.OAPDF, URL: "https://x/p.pdf"}, "Open-access PDF: https://x/p.pdf\n"},
		{types.OpenAccessResult{DOI: "10.1/x", Status: types.OALanding, URL: "https://x/page"}, "Open-access page: https://x/page\n"},
		{types.OpenAccessResult{DOI: "10.1/x", Status: types.OANotFound}, "No open-access version found for 10.1/x.\n"},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		printOpenAccess(&buf, tt.res)
		assert.Equal(t, tt.want, buf.String())
	}
}

func TestPrintLinkSet(t *testing.T) {
	gen := links.NewGenerator(types.DefaultConfig().Links, types.DefaultConfig().OpenAccess)
	set := gen.Generate(types.Record{Title: "A Work", DOI: "10.1000/xyz"})

	var buf bytes.Buffer
	printLinkSet(&buf, set)
	got := buf.String()

	assert.Contains(t, got, "DOI:      https://doi.org/10.1000/xyz\n")
	assert.Contains(t, got, "\nMirrors:\n")
	assert.Contains(t, got, "https://oadoi.org/10.1000/xyz")
	assert.Contains(t, got, "\nCatalogs:\n")
	assert.Contains(t, got, "https://scholar.google.com/scholar?q=A+Work")
	assert.Contains(t, got, "Citation:\nDOI: 10.1000/xyz\nURL: https://doi.org/10.1000/xyz\n")
}

func TestPrintLinkSet_NoDOI(t *testing.T) {
	gen := links.NewGenerator(types.DefaultConfig().Links, types.DefaultConfig().OpenAccess)

	var buf bytes.Buffer
	printLinkSet(&buf, gen.Generate(types.Record{Title: "A Work", URL: "https://example.org/w"}))
	got := buf.String()

	assert.Contains(t, got, "Primary:  https://example.org/w\n")
	assert.NotContains(t, got, "Mirrors")
	assert.NotContains(t, got, "Citation")
}
