// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/pdiddy/litfinder/internal/search"
	"github.com/pdiddy/litfinder/pkg/types"
)

const shellHelp = `Type a DOI, title, author, or keywords to search.
  :mode auto|doi|title|author   switch search mode
  :help                         show this help
  :quit                         exit`

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Search interactively, one query per line",
	Long: `Shell reads queries from standard input, one per line, and prints the
results as they arrive. A new query replaces any search still in flight, so
only the latest query's results are shown.

` + shellHelp,
	RunE: func(cmd *cobra.Command, args []string) error {
		sh := newShell(search.NewSession(newEngine(), logger), cmd.OutOrStdout(), logger)
		return sh.Run(cmd.Context(), cmd.InOrStdin())
	},
}

func init() {
	rootCmd.AddCommand(shellCmd)
}

// shell is the interactive loop. The mode is read when a query is submitted
// and travels with that query.
type shell struct {
	session *search.Session
	logger  zerolog.Logger
	mode    types.SearchMode

	mu  sync.Mutex
	out io.Writer
	wg  sync.WaitGroup
}

func newShell(s *search.Session, out io.Writer, logger zerolog.Logger) *shell {
	return &shell{session: s, out: out, logger: logger, mode: types.ModeAuto}
}

// Run processes lines from r until EOF or :quit, then waits for the last
// search to finish.
func (sh *shell) Run(ctx context.Context, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !sh.handle(ctx, line) {
			break
		}
	}
	sh.wg.Wait()
	return scanner.Err()
}

// handle processes one input line. It reports false when the shell should exit.
func (sh *shell) handle(ctx context.Context, line string) bool {
	switch {
	case line == ":quit" || line == ":q":
		return false
	case line == ":help":
		sh.println(shellHelp)
	case line == ":mode" || strings.HasPrefix(line, ":mode "):
		m, err := types.ParseSearchMode(strings.TrimPrefix(line, ":mode"))
		if err != nil {
			sh.println(err.Error())
			break
		}
		sh.mode = m
		sh.println("mode: " + string(m))
	default:
		in := types.SearchInput{Query: line, Mode: sh.mode}
		if err := in.Validate(); err != nil {
			sh.println(search.UserMessage(err))
			break
		}
		t := sh.session.Begin(ctx)
		sh.wg.Add(1)
		go func() {
			defer sh.wg.Done()
			sh.search(t, in)
		}()
	}
	return true
}

func (sh *shell) search(t *search.Ticket, in types.SearchInput) {
	out, err := sh.session.Run(t, in)
	if errors.Is(err, types.ErrSuperseded) {
		return
	}

	sh.mu.Lock()
	defer sh.mu.Unlock()
	if err != nil {
		sh.logger.Debug().Err(err).Str("query", in.Query).Msg("search failed")
		fmt.Fprintln(sh.out, search.UserMessage(err))
		return
	}
	search.FormatList(out, sh.out)
}

func (sh *shell) println(s string) {
	sh.mu.Lock()
	defer sh.mu.Unlock()
	fmt.Fprintln(sh.out, s)
}
