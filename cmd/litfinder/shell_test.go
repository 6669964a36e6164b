// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/litfinder/internal/crossref"
	"github.com/pdiddy/litfinder/internal/search"
	"github.com/pdiddy/litfinder/pkg/types"
)

// crossrefStub serves one work for every request and records the query
// strings it saw.
type crossrefStub struct {
	mu      sync.Mutex
	queries []string
}

func (s *crossrefStub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.queries = append(s.queries, r.URL.RawQuery)
	s.mu.Unlock()
	fmt.Fprint(w, `{"message":{"items":[{"title":["Nanometre-scale thermometry in a living cell"],"DOI":"10.1038/nature12373"}]}}`)
}

// slowStub echoes each query back as a work title. Queries listed in slow
// answer only after delay, unless the request is cancelled first.
type slowStub struct {
	slow  map[string]bool
	delay time.Duration
}

func (s slowStub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("query")
	if s.slow[q] {
		select {
		case <-time.After(s.delay):
		case <-r.Context().Done():
			return
		}
	}
	fmt.Fprintf(w, `{"message":{"items":[{"title":[%q]}]}}`, q)
}

func newTestShell(t *testing.T, stub http.Handler) (*shell, *bytes.Buffer) {
	t.Helper()
	ts := httptest.NewServer(stub)
	t.Cleanup(ts.Close)

	client := crossref.New(types.MetadataConfig{
		HTTPConfig: types.HTTPConfig{Timeout: time.Second, UserAgent: "test"},
		BaseURL:    ts.URL + "/works",
	}, ts.Client(), zerolog.Nop())

	var out bytes.Buffer
	session := search.NewSession(search.NewEngine(client, zerolog.Nop()), zerolog.Nop())
	return newShell(session, &out, zerolog.Nop()), &out
}

func TestShell_SearchesEachLine(t *testing.T) {
	stub := &crossrefStub{}
	sh, out := newTestShell(t, stub)

	require.NoError(t, sh.Run(context.Background(), strings.NewReader("thermometry\n")))

	assert.Contains(t, out.String(), "[1] Nanometre-scale thermometry in a living cell")
	require.Len(t, stub.queries, 1)
	assert.Contains(t, stub.queries[0], "query=thermometry")
}

func TestShell_ModeSwitchAppliesToLaterQueries(t *testing.T) {
	stub := &crossrefStub{}
	sh, out := newTestShell(t, stub)

	require.NoError(t, sh.Run(context.Background(), strings.NewReader(":mode title\nthermometry\n")))

	assert.Contains(t, out.String(), "mode: title\n")
	require.Len(t, stub.queries, 1)
	assert.Contains(t, stub.queries[0], "query.title=thermometry")
	assert.Equal(t, types.ModeTitle, sh.mode)
}

func TestShell_UnknownModeKeepsCurrent(t *testing.T) {
	sh, out := newTestShell(t, &crossrefStub{})

	require.NoError(t, sh.Run(context.Background(), strings.NewReader(":mode journal\n")))

	assert.Contains(t, out.String(), "invalid mode")
	assert.Equal(t, types.ModeAuto, sh.mode)
}

func TestShell_EmptyLineShowsPrompt(t *testing.T) {
	stub := &crossrefStub{}
	sh, out := newTestShell(t, stub)

	require.NoError(t, sh.Run(context.Background(), strings.NewReader("   \n")))

	assert.Equal(t, "Please enter a DOI, title, author, or keywords.\n", out.String())
	assert.Empty(t, stub.queries, "no request for an empty query")
}

func TestShell_QuitStopsReading(t *testing.T) {
	stub := &crossrefStub{}
	sh, _ := newTestShell(t, stub)

	require.NoError(t, sh.Run(context.Background(), strings.NewReader(":quit\nthermometry\n")))
	assert.Empty(t, stub.queries)
}

func TestShell_HTTPErrorMessage(t *testing.T) {
	sh, out := newTestShell(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))

	require.NoError(t, sh.Run(context.Background(), strings.NewReader("thermometry\n")))
	assert.Equal(t, "Search failed: HTTP error 503.\n", out.String())
}

func TestShell_OverlappingQueries(t *testing.T) {
	const prompt = "Please enter a DOI, title, author, or keywords.\n"
	tests := []struct {
		name  string
		input string
		slow  []string
		want  string
	}{
		{
			name:  "later query replaces slower earlier one",
			input: "first\nsecond\n",
			slow:  []string{"first"},
			want:  "[1] second\n    Unknown authors\n",
		},
		{
			name:  "blank line does not cancel search in flight",
			input: "thermometry\n   \n",
			slow:  []string{"thermometry"},
			want:  prompt + "[1] thermometry\n    Unknown authors\n",
		},
		{
			name:  "later query wins when both are slow",
			input: "first\nsecond\n",
			slow:  []string{"first", "second"},
			want:  "[1] second\n    Unknown authors\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := slowStub{slow: map[string]bool{}, delay: 100 * time.Millisecond}
			for _, q := range tt.slow {
				stub.slow[q] = true
			}
			sh, out := newTestShell(t, stub)

			require.NoError(t, sh.Run(context.Background(), strings.NewReader(tt.input)))
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestPickRecord_UsesMode(t *testing.T) {
	stub := &crossrefStub{}
	ts := httptest.NewServer(stub)
	defer ts.Close()

	client := crossref.New(types.MetadataConfig{
		HTTPConfig: types.HTTPConfig{Timeout: time.Second, UserAgent: "test"},
		BaseURL:    ts.URL + "/works",
	}, ts.Client(), zerolog.Nop())
	engine := search.NewEngine(client, zerolog.Nop())

	rec, err := pickRecord(context.Background(), engine, types.SearchInput{Query: "thermometry", Mode: types.ModeTitle}, 1)
	require.NoError(t, err)
	assert.Equal(t, "10.1038/nature12373", rec.DOI)
	require.Len(t, stub.queries, 1)
	assert.Contains(t, stub.queries[0], "query.title=thermometry")

	_, err = pickRecord(context.Background(), engine, types.SearchInput{Query: "thermometry", Mode: types.ModeAuthor}, 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
	assert.Contains(t, stub.queries[1], "query.author=thermometry")
}
