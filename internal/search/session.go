// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pdiddy/litfinder/pkg/types"
)

// Session runs searches where a newer search supersedes an older one. Each
// Begin takes a new generation and cancels the request of the previous
// generation. A search that finishes after being superseded returns
// types.ErrSuperseded instead of its result.
//
// Session is safe for concurrent use.
type Session struct {
	engine *Engine
	logger zerolog.Logger

	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc
}

// NewSession returns a Session running searches on e.
func NewSession(e *Engine, logger zerolog.Logger) *Session {
	return &Session{engine: e, logger: logger}
}

// Ticket is a search that has taken its generation but not yet run. Taking a
// ticket cancels the request of every older generation.
type Ticket struct {
	gen    uint64
	ctx    context.Context
	cancel context.CancelFunc
	logger zerolog.Logger
}

// Begin reserves the next generation and cancels the in-flight search. Call
// it in submission order; the returned ticket is run with Run.
func (s *Session) Begin(ctx context.Context) *Ticket {
	ctx, cancel := context.WithCancel(ctx)

	s.mu.Lock()
	s.gen++
	gen := s.gen
	if s.cancel != nil {
		s.cancel()
	}
	s.cancel = cancel
	s.mu.Unlock()

	return &Ticket{
		gen:    gen,
		ctx:    ctx,
		cancel: cancel,
		logger: s.logger.With().Str("search_id", uuid.NewString()).Uint64("generation", gen).Logger(),
	}
}

// Run executes in under t. It returns types.ErrSuperseded when a newer ticket
// was taken before the search finished.
func (s *Session) Run(t *Ticket, in types.SearchInput) (Output, error) {
	defer t.cancel()
	t.logger.Debug().Str("query", in.Query).Str("mode", string(in.Mode)).Msg("search started")

	out, err := s.engine.Search(t.ctx, in)

	s.mu.Lock()
	current := s.gen == t.gen
	if current {
		s.cancel = nil
	}
	s.mu.Unlock()

	if !current {
		t.logger.Debug().Msg("discarding superseded search")
		return Output{}, types.ErrSuperseded
	}
	return out, err
}

// Search validates in and runs it as the newest search of the session.
// Invalid input is rejected without touching the search in flight.
func (s *Session) Search(ctx context.Context, in types.SearchInput) (Output, error) {
	if err := in.Validate(); err != nil {
		return Output{}, err
	}
	return s.Run(s.Begin(ctx), in)
}

// Generation returns the number of searches started so far.
func (s *Session) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen
}
