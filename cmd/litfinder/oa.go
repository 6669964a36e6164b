// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/litfinder/internal/doi"
	"github.com/pdiddy/litfinder/internal/openaccess"
	"github.com/pdiddy/litfinder/pkg/types"
)

var oaCmd = &cobra.Command{
	Use:   "oa <doi>",
	Short: "Check Unpaywall for an open-access copy of a DOI",
	Long: `OA asks Unpaywall whether a legal open-access copy of the work exists.
A direct PDF link is preferred over a landing page. The contact email sent
with each request comes from unpaywall.email or .secrets/unpaywall-email.`,
	Args: cobra.ExactArgs(1),
	RunE: runOA,
}

func init() {
	rootCmd.AddCommand(oaCmd)
}

func runOA(cmd *cobra.Command, args []string) error {
	d := doi.Extract(strings.TrimSpace(args[0]))
	if !doi.IsDOI(d) {
		return &types.ValidationError{Field: "doi", Message: fmt.Sprintf("%q does not contain a DOI", args[0])}
	}

	resolver := openaccess.New(cfg.OpenAccess, newHTTPClient(), logger)
	res, err := resolver.Resolve(cmd.Context(), d)
	if err != nil {
		var httpErr *types.HTTPError
		if errors.As(err, &httpErr) {
			return fmt.Errorf("open-access check failed: HTTP error %d", httpErr.StatusCode)
		}
		return fmt.Errorf("open-access check failed: %w", err)
	}

	printOpenAccess(cmd.OutOrStdout(), res)
	return nil
}

func printOpenAccess(w io.Writer, res types.OpenAccessResult) {
	switch res.Status {
	case types.OAPDF:
		fmt.Fprintf(w, "Open-access PDF: %s\n", res.URL)
	case types.OALanding:
		fmt.Fprintf(w, "Open-access page: %s\n", res.URL)
	default:
		fmt.Fprintf(w, "No open-access version found for %s.\n", res.DOI)
	}
}
