// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads contact addresses and credentials from a directory of
// plain-text files. Each file in the directory represents one secret: the
// filename is the key name and the file contents (trimmed) are the value.
//
// Supported key files: unpaywall-email, crossref-mailto.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// Known secret files.
const (
	KeyUnpaywallEmail = "unpaywall-email"
	KeyCrossrefMailto = "crossref-mailto"
)

// configKeys maps each known secret onto the configuration key it fills.
var configKeys = map[string]string{
	KeyUnpaywallEmail: "unpaywall.email",
	KeyCrossrefMailto: "crossref.mailto",
}

// Load reads all files in dir and returns a map of filename to trimmed contents.
// A missing directory or missing files are not errors; Load returns an empty map.
// Unreadable files are logged as warnings but do not abort.
func Load(dir string, logger zerolog.Logger) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	secrets := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			logger.Warn().Err(err).Str("secret", name).Msg("could not read secret")
			continue
		}

		value := strings.TrimSpace(string(data))
		if value != "" {
			secrets[name] = value
		}
	}

	return secrets, nil
}

// ConfigDefaults returns the configuration values supplied by known secrets,
// keyed by configuration key. Unknown secret files are ignored.
func ConfigDefaults(s map[string]string) map[string]string {
	out := make(map[string]string)
	for name, key := range configKeys {
		if v, ok := s[name]; ok {
			out[key] = v
		}
	}
	return out
}
