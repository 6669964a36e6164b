// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"io"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/litfinder/internal/normalize"
	"github.com/pdiddy/litfinder/pkg/types"
)

// CSLItem represents a bibliographic entry in CSL (Citation Style Language)
// format. The field names and structure follow the CSL-JSON/CSL-YAML schema
// so that output is consumable by Pandoc and reference managers.
type CSLItem struct {
	ID             string    `yaml:"id"`
	Type           string    `yaml:"type"`
	Title          string    `yaml:"title"`
	Author         []CSLName `yaml:"author,omitempty"`
	ContainerTitle string    `yaml:"container-title,omitempty"`
	Publisher      string    `yaml:"publisher,omitempty"`
	Abstract       string    `yaml:"abstract,omitempty"`
	Issued         *CSLDate  `yaml:"issued,omitempty"`
	DOI            string    `yaml:"DOI,omitempty"`
	URL            string    `yaml:"URL,omitempty"`
}

// CSLName represents a person's name in CSL format.
type CSLName struct {
	Family  string `yaml:"family,omitempty"`
	Given   string `yaml:"given,omitempty"`
	Literal string `yaml:"literal,omitempty"`
}

// CSLDate represents a date in CSL format using date-parts.
type CSLDate struct {
	DateParts [][]int `yaml:"date-parts"`
}

// cslTypes maps Crossref work types onto CSL item types.
var cslTypes = map[string]string{
	"journal-article":     "article-journal",
	"proceedings-article": "paper-conference",
	"book-chapter":        "chapter",
	"book":                "book",
	"monograph":           "book",
	"edited-book":         "book",
	"dataset":             "dataset",
	"dissertation":        "thesis",
	"report":              "report",
	"posted-content":      "article",
	"reference-entry":     "entry",
}

// FormatCSL writes search results as a CSL-YAML list to w.
func FormatCSL(out Output, w io.Writer) error {
	items := make([]CSLItem, len(out.Records))
	for i, r := range out.Records {
		items[i] = toCSLItem(r, i)
	}
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(items)
}

// toCSLItem converts a Record to a CSLItem. Records without a DOI get a
// positional id.
func toCSLItem(r types.Record, index int) CSLItem {
	item := CSLItem{
		ID:             r.DOI,
		Type:           "article",
		Title:          r.Title,
		ContainerTitle: r.Journal,
		Publisher:      r.Publisher,
		Abstract:       r.Abstract,
		DOI:            r.DOI,
		URL:            r.URL,
	}
	if item.ID == "" {
		item.ID = "item-" + strconv.Itoa(index+1)
	}
	if t, ok := cslTypes[r.RecordType]; ok {
		item.Type = t
	}

	for _, a := range r.Authors {
		if a == normalize.EtAl || a == normalize.NoAuthorsPlaceholder {
			continue
		}
		item.Author = append(item.Author, parseAuthorName(a))
	}

	if r.Year > 0 {
		item.Issued = &CSLDate{DateParts: [][]int{{r.Year}}}
	}
	return item
}

// parseAuthorName splits a formatted "Family, G." author into CSL parts.
// Anything without a comma, such as an organization, uses the literal field.
func parseAuthorName(name string) CSLName {
	name = strings.TrimSpace(name)
	family, given, ok := strings.Cut(name, ", ")
	if !ok || family == "" {
		return CSLName{Literal: name}
	}
	return CSLName{Family: family, Given: given}
}
