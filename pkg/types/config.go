// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by every outbound request.
type HTTPConfig struct {
	// Timeout bounds each request from send to last body byte (default 15s).
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout" validate:"gt=0"`

	// UserAgent is the User-Agent header sent with requests
	// (e.g. "litfinder/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent" validate:"required"`
}

// MetadataConfig holds settings for the bibliographic metadata API (Crossref).
type MetadataConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// BaseURL is the works endpoint, e.g. "https://api.crossref.org/works".
	BaseURL string `json:"base_url" yaml:"base_url" mapstructure:"base_url" validate:"required,url"`

	// Rows caps the number of results of a query search (default 10).
	Rows int `json:"rows" yaml:"rows" mapstructure:"rows" validate:"gt=0"`

	// Mailto is sent as the mailto parameter for Crossref's polite pool.
	Mailto string `json:"mailto,omitempty" yaml:"mailto,omitempty" mapstructure:"mailto" validate:"omitempty,email"`
}

// OpenAccessConfig holds settings for the open-access availability API (Unpaywall).
type OpenAccessConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// BaseURL is the API root, e.g. "https://api.unpaywall.org/v2".
	BaseURL string `json:"base_url" yaml:"base_url" mapstructure:"base_url" validate:"required,url"`

	// Email is the contact address the API requires on every request.
	Email string `json:"email" yaml:"email" mapstructure:"email" validate:"required,email"`
}

// LinksConfig lists the alternate sources offered for each record.
type LinksConfig struct {
	// Mirrors are base URLs that serve a work at {base}/{doi}.
	Mirrors []string `json:"mirrors" yaml:"mirrors" mapstructure:"mirrors" validate:"dive,url"`

	// Catalogs are search URL prefixes; the escaped title is appended.
	Catalogs []string `json:"catalogs" yaml:"catalogs" mapstructure:"catalogs" validate:"dive,url"`
}

// LoggingConfig selects the diagnostic log level and encoding.
type LoggingConfig struct {
	// Level is one of trace, debug, info, warn, error.
	Level string `json:"level" yaml:"level" mapstructure:"level" validate:"omitempty,oneof=trace debug info warn error"`

	// Format is json or console.
	Format string `json:"format" yaml:"format" mapstructure:"format" validate:"omitempty,oneof=json console"`
}

// Config groups all settings of the tool.
type Config struct {
	Metadata   MetadataConfig   `json:"crossref" yaml:"crossref" mapstructure:"crossref"`
	OpenAccess OpenAccessConfig `json:"unpaywall" yaml:"unpaywall" mapstructure:"unpaywall"`
	Links      LinksConfig      `json:"links" yaml:"links" mapstructure:"links"`
	Log        LoggingConfig    `json:"log" yaml:"log" mapstructure:"log"`
}

// Validate checks the configuration and returns a ValidationError naming the
// first invalid field.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return validationError(err)
	}
	return nil
}

// Default values used when no config file or environment overrides them.
const (
	DefaultTimeout       = 15 * time.Second
	DefaultUserAgent     = "litfinder/0.1"
	DefaultCrossrefBase  = "https://api.crossref.org/works"
	DefaultRows          = 10
	DefaultUnpaywallBase = "https://api.unpaywall.org/v2"
	DefaultContactEmail  = "user@example.com"
)

// DefaultMirrors are DOI-keyed resolvers that accept {base}/{doi}.
var DefaultMirrors = []string{
	"https://doi.org",
	"https://oadoi.org",
}

// DefaultCatalogs are title search prefixes for scholarly search engines.
var DefaultCatalogs = []string{
	"https://scholar.google.com/scholar?q=",
	"https://www.semanticscholar.org/search?q=",
	"https://pubmed.ncbi.nlm.nih.gov/?term=",
	"https://arxiv.org/search/?searchtype=all&query=",
}

// DefaultConfig returns a Config populated with the defaults above.
func DefaultConfig() Config {
	httpCfg := HTTPConfig{Timeout: DefaultTimeout, UserAgent: DefaultUserAgent}
	return Config{
		Metadata: MetadataConfig{
			HTTPConfig: httpCfg,
			BaseURL:    DefaultCrossrefBase,
			Rows:       DefaultRows,
		},
		OpenAccess: OpenAccessConfig{
			HTTPConfig: httpCfg,
			BaseURL:    DefaultUnpaywallBase,
			Email:      DefaultContactEmail,
		},
		Links: LinksConfig{
			Mirrors:  append([]string(nil), DefaultMirrors...),
			Catalogs: append([]string(nil), DefaultCatalogs...),
		},
		Log: LoggingConfig{Level: "warn", Format: "console"},
	}
}
