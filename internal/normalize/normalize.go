// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package normalize maps raw Crossref work JSON onto types.Record.
//
// Normalization is total: any JSON value yields a Record, with missing or
// mistyped fields degrading to the documented defaults. Only the response
// envelope can fail to parse.
package normalize

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/tidwall/gjson"

	"github.com/pdiddy/litfinder/internal/doi"
	"github.com/pdiddy/litfinder/pkg/types"
)

const (
	// maxAuthors is how many authors are formatted before "et al.".
	maxAuthors = 5

	UntitledPlaceholder  = "Untitled"
	NoAuthorsPlaceholder = "Unknown authors"
	UnknownAuthor        = "Unknown"
	EtAl                 = "et al."
	DefaultRecordType    = "article"
)

// tagPattern matches any markup tag, e.g. JATS "<jats:p>".
var tagPattern = regexp.MustCompile(`<[^>]*>`)

// entityReplacements decodes the three entities Crossref abstracts use. The order
// matters: "&amp;lt;" must come out as "&lt;", not "<".
var entityReplacements = [][2]string{
	{"&lt;", "<"},
	{"&gt;", ">"},
	{"&amp;", "&"},
}

// ParseWorks unwraps the Crossref message envelope of a DOI lookup. A
// work-list message yields one record per item; a single work message yields
// one record.
func ParseWorks(raw []byte) ([]types.Record, error) {
	msg, err := message(raw)
	if err != nil {
		return nil, err
	}
	if !msg.Get("items").Exists() {
		return []types.Record{Normalize(msg)}, nil
	}
	return itemRecords(msg)
}

// ParseWorkList unwraps the envelope of a query search. A message without
// items holds no works and yields no records.
func ParseWorkList(raw []byte) ([]types.Record, error) {
	msg, err := message(raw)
	if err != nil {
		return nil, err
	}
	return itemRecords(msg)
}

func message(raw []byte) (gjson.Result, error) {
	if !gjson.ValidBytes(raw) {
		return gjson.Result{}, &types.ParseError{Source: "crossref", Err: errors.New("invalid JSON")}
	}
	msg := gjson.GetBytes(raw, "message")
	if !msg.IsObject() {
		return gjson.Result{}, &types.ParseError{Source: "crossref", Err: errors.New("missing message object")}
	}
	return msg, nil
}

// itemRecords normalizes message.items, skipping entries that are not objects.
func itemRecords(msg gjson.Result) ([]types.Record, error) {
	items := msg.Get("items")
	if !items.Exists() {
		return nil, nil
	}
	if !items.IsArray() {
		return nil, &types.ParseError{Source: "crossref", Err: errors.New("message.items is not an array")}
	}

	var records []types.Record
	for _, item := range items.Array() {
		if !item.IsObject() {
			continue
		}
		records = append(records, Normalize(item))
	}
	return records, nil
}

// Normalize builds a Record from one Crossref work object.
func Normalize(item gjson.Result) types.Record {
	r := types.Record{
		Title:         firstString(item.Get("title")),
		Authors:       FormatAuthors(arrayOf(item.Get("author"))),
		Year:          resolveYear(item),
		Journal:       firstString(item.Get("container-title")),
		DOI:           strings.TrimSpace(item.Get("DOI").String()),
		URL:           strings.TrimSpace(item.Get("URL").String()),
		RecordType:    item.Get("type").String(),
		CitationCount: int(item.Get("is-referenced-by-count").Int()),
		Publisher:     item.Get("publisher").String(),
	}

	if r.Title == "" {
		r.Title = UntitledPlaceholder
	}
	if r.URL == "" && r.DOI != "" {
		r.URL = doi.ResolverURL(r.DOI)
	}
	if a := item.Get("abstract"); a.Type == gjson.String {
		r.Abstract = CleanAbstract(a.Str)
	}
	if r.RecordType == "" {
		r.RecordType = DefaultRecordType
	}
	if r.CitationCount < 0 {
		r.CitationCount = 0
	}
	return r
}

// FormatAuthors formats up to five authors as "Family, G." and appends
// "et al." when more exist. No authors yields the single "Unknown authors"
// entry.
func FormatAuthors(authors []gjson.Result) []string {
	if len(authors) == 0 {
		return []string{NoAuthorsPlaceholder}
	}

	n := min(len(authors), maxAuthors)
	out := make([]string, 0, n+1)
	for _, a := range authors[:n] {
		out = append(out, formatAuthor(a))
	}
	if len(authors) > maxAuthors {
		out = append(out, EtAl)
	}
	return out
}

func formatAuthor(a gjson.Result) string {
	family := a.Get("family").String()
	given := a.Get("given").String()
	if family != "" && given != "" {
		initial, _ := utf8.DecodeRuneInString(given)
		return family + ", " + string(initial) + "."
	}
	if name := a.Get("name").String(); name != "" {
		return name
	}
	if family != "" {
		return family
	}
	return UnknownAuthor
}

// CleanAbstract strips markup tags, decodes &lt; &gt; and &amp; (and no other
// entities), then trims surrounding whitespace.
func CleanAbstract(s string) string {
	s = tagPattern.ReplaceAllString(s, "")
	for _, e := range entityReplacements {
		s = strings.ReplaceAll(s, e[0], e[1])
	}
	return strings.TrimSpace(s)
}

// resolveYear prefers the published date and falls back to the record
// creation date. It returns 0 when neither carries a year.
func resolveYear(item gjson.Result) int {
	for _, path := range []string{"published.date-parts.0.0", "created.date-parts.0.0"} {
		if y := item.Get(path); y.Type == gjson.Number && y.Int() > 0 {
			return int(y.Int())
		}
	}
	return 0
}

// arrayOf returns the elements of v, or nil when v is not an array.
func arrayOf(v gjson.Result) []gjson.Result {
	if !v.IsArray() {
		return nil
	}
	return v.Array()
}

// firstString returns the first element of a string array, or the value
// itself when the API sent a bare string.
func firstString(v gjson.Result) string {
	if v.IsArray() {
		v = v.Get("0")
	}
	if v.Type != gjson.String {
		return ""
	}
	return strings.TrimSpace(v.Str)
}
