// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"net/http"

	"github.com/spf13/viper"

	"github.com/pdiddy/litfinder/pkg/types"
)

// setDefaults registers every configuration key with its default so that
// environment variables are picked up for keys absent from the config file.
func setDefaults(d types.Config) {
	viper.SetDefault("http.timeout", d.Metadata.Timeout)
	viper.SetDefault("http.user_agent", d.Metadata.UserAgent)
	viper.SetDefault("crossref.base_url", d.Metadata.BaseURL)
	viper.SetDefault("crossref.rows", d.Metadata.Rows)
	viper.SetDefault("crossref.mailto", d.Metadata.Mailto)
	viper.SetDefault("unpaywall.base_url", d.OpenAccess.BaseURL)
	viper.SetDefault("unpaywall.email", d.OpenAccess.Email)
	viper.SetDefault("links.mirrors", d.Links.Mirrors)
	viper.SetDefault("links.catalogs", d.Links.Catalogs)
	viper.SetDefault("log.level", d.Log.Level)
	viper.SetDefault("log.format", d.Log.Format)
}

// loadConfig assembles a validated Config from viper. The http.* settings
// apply to both APIs.
func loadConfig() (types.Config, error) {
	httpCfg := types.HTTPConfig{
		Timeout:   viper.GetDuration("http.timeout"),
		UserAgent: viper.GetString("http.user_agent"),
	}
	if httpCfg.Timeout == 0 {
		httpCfg.Timeout = types.DefaultTimeout
	}

	c := types.Config{
		Metadata: types.MetadataConfig{
			HTTPConfig: httpCfg,
			BaseURL:    viper.GetString("crossref.base_url"),
			Rows:       viper.GetInt("crossref.rows"),
			Mailto:     viper.GetString("crossref.mailto"),
		},
		OpenAccess: types.OpenAccessConfig{
			HTTPConfig: httpCfg,
			BaseURL:    viper.GetString("unpaywall.base_url"),
			Email:      viper.GetString("unpaywall.email"),
		},
		Links: types.LinksConfig{
			Mirrors:  viper.GetStringSlice("links.mirrors"),
			Catalogs: viper.GetStringSlice("links.catalogs"),
		},
		Log: types.LoggingConfig{
			Level:  viper.GetString("log.level"),
			Format: viper.GetString("log.format"),
		},
	}

	if err := c.Validate(); err != nil {
		return types.Config{}, fmt.Errorf("configuration: %w", err)
	}
	return c, nil
}

// newHTTPClient returns the client shared by the API adapters. Deadlines are
// applied per request by httputil.Fetch.
func newHTTPClient() *http.Client {
	return &http.Client{}
}
