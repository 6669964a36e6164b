// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSearchMode(t *testing.T) {
	tests := []struct {
		in      string
		want    SearchMode
		wantErr bool
	}{
		{"", ModeAuto, false},
		{"auto", ModeAuto, false},
		{" DOI ", ModeDOI, false},
		{"title", ModeTitle, false},
		{"Author", ModeAuthor, false},
		{"journal", "", true},
	}
	for _, tt := range tests {
		got, err := ParseSearchMode(tt.in)
		if tt.wantErr {
			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr), "input %q", tt.in)
			assert.Equal(t, "mode", vErr.Field)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestSearchInputValidate(t *testing.T) {
	assert.NoError(t, SearchInput{Query: "thermometry"}.Validate())
	assert.NoError(t, SearchInput{Query: "x", Mode: ModeTitle}.Validate())

	err := SearchInput{Query: "  \t"}.Validate()
	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, &ValidationError{Field: "query", Message: "must not be empty"}, vErr)

	err = SearchInput{Query: "x", Mode: "journal"}.Validate()
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "mode", vErr.Field)
	assert.Equal(t, "must be one of auto doi title author", vErr.Message)
}

func TestConfigValidate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	c := DefaultConfig()
	c.OpenAccess.Email = "nope"
	err := c.Validate()
	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "openaccess.email", vErr.Field)
	assert.Equal(t, "must be an email address", vErr.Message)

	c = DefaultConfig()
	c.Metadata.Timeout = 0
	require.True(t, errors.As(c.Validate(), &vErr))
	assert.Equal(t, "must be greater than 0", vErr.Message)

	c = DefaultConfig()
	c.Metadata.Mailto = ""
	assert.NoError(t, c.Validate(), "mailto is optional")
}

func TestDefaultConfigCopiesLists(t *testing.T) {
	c := DefaultConfig()
	c.Links.Mirrors[0] = "https://changed.example"
	assert.Equal(t, "https://doi.org", DefaultMirrors[0])
}

func TestRecordAuthorLine(t *testing.T) {
	r := Record{Authors: []string{"Kucsko, G.", "Maurer, P.", "et al."}}
	assert.Equal(t, "Kucsko, G.; Maurer, P.; et al.", r.AuthorLine())
	assert.Equal(t, "", Record{}.AuthorLine())
}

func TestOpenAccessResultFound(t *testing.T) {
	assert.True(t, OpenAccessResult{Status: OAPDF}.Found())
	assert.True(t, OpenAccessResult{Status: OALanding}.Found())
	assert.False(t, OpenAccessResult{Status: OANotFound}.Found())
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "HTTP 404 from https://x", (&HTTPError{URL: "https://x", StatusCode: 404}).Error())
	inner := errors.New("boom")
	assert.ErrorIs(t, &NetworkError{URL: "u", Err: inner}, inner)
	assert.ErrorIs(t, &ParseError{Source: "crossref", Err: inner}, inner)
}
