// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides the deadline-bounded GET used by every API client.
package httputil

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/pdiddy/litfinder/pkg/types"
)

// maxErrorBody bounds how much of a failed response is drained before closing.
const maxErrorBody = 4096

// Fetch issues a GET for rawURL and returns the response body. The request is
// aborted once cfg.Timeout elapses (types.DefaultTimeout when unset) and the
// abort is reported as *types.TimeoutError. Other transport failures are
// *types.NetworkError and non-2xx statuses are *types.HTTPError. Fetch never
// retries.
//
// Cancellation of ctx by the caller is returned as a NetworkError wrapping
// context.Canceled so callers can tell it apart with errors.Is.
func Fetch(ctx context.Context, client *http.Client, rawURL string, cfg types.HTTPConfig, logger zerolog.Logger) ([]byte, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = types.DefaultTimeout
	}
	if client == nil {
		client = http.DefaultClient
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if cfg.UserAgent != "" {
		req.Header.Set("User-Agent", cfg.UserAgent)
	}

	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		logger.Debug().Str("url", rawURL).Err(err).Dur("elapsed", time.Since(start)).Msg("request failed")
		return nil, transportError(ctx, rawURL, timeout, err)
	}
	defer resp.Body.Close()

	logger.Debug().
		Str("url", rawURL).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("response")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))
		return nil, &types.HTTPError{URL: rawURL, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, transportError(ctx, rawURL, timeout, err)
	}
	return body, nil
}

// transportError tells a deadline abort apart from other transport failures.
func transportError(ctx context.Context, rawURL string, timeout time.Duration, err error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return &types.TimeoutError{URL: rawURL, Timeout: timeout}
	}
	return &types.NetworkError{URL: rawURL, Err: err}
}
