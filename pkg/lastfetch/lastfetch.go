// Package lastfetch implements "last initiated wins" for concurrent fetches.
//
// Every call on a channel cancels the previous in-flight call on the same
// channel. A superseded call always returns ErrStaleFetchDiscarded, even if
// its fetch completed, so only the most recently initiated result is applied.
package lastfetch

import (
	"context"
	"errors"
	"sync"
)

// ErrStaleFetchDiscarded signals that a newer call replaced this one.
// It is an internal signal, not a user-facing failure.
var ErrStaleFetchDiscarded = errors.New("lastfetch: stale fetch discarded")

type call struct {
	id     uint64
	cancel context.CancelFunc
}

// Scheduler tracks the latest call per channel. The zero value is not usable;
// use New.
type Scheduler struct {
	mu        sync.Mutex
	seq       uint64
	inflight  map[string]call
	onDiscard func(channel string)
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithDiscardHook registers a callback invoked whenever a result is discarded.
func WithDiscardHook(fn func(channel string)) Option {
	return func(s *Scheduler) {
		s.onDiscard = fn
	}
}

func New(opts ...Option) *Scheduler {
	s := &Scheduler{inflight: make(map[string]call)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Do runs fn on channel, superseding any earlier call on it. An empty
// channel opts out of supersession and just runs fn.
func Do[T any](s *Scheduler, ctx context.Context, channel string, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	if channel == "" {
		return fn(ctx)
	}

	ctx, cancel := context.WithCancel(ctx)
	id := s.begin(channel, cancel)
	defer s.finish(channel, id, cancel)

	result, err := fn(ctx)

	if !s.isCurrent(channel, id) {
		if s.onDiscard != nil {
			s.onDiscard(channel)
		}
		return zero, ErrStaleFetchDiscarded
	}
	if err != nil {
		return zero, err
	}
	return result, nil
}

func (s *Scheduler) begin(channel string, cancel context.CancelFunc) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if prev, ok := s.inflight[channel]; ok {
		prev.cancel()
	}
	s.seq++
	s.inflight[channel] = call{id: s.seq, cancel: cancel}
	return s.seq
}

func (s *Scheduler) isCurrent(channel string, id uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.inflight[channel]
	return ok && c.id == id
}

func (s *Scheduler) finish(channel string, id uint64, cancel context.CancelFunc) {
	cancel()

	s.mu.Lock()
	defer s.mu.Unlock()

	if c, ok := s.inflight[channel]; ok && c.id == id {
		delete(s.inflight, channel)
	}
}

// InFlight returns how many channels have a call running.
func (s *Scheduler) InFlight() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.inflight)
}
