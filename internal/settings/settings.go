// Package settings holds live-adjustable viewer settings shared between the
// UI and the flush engine.
package settings

import "sync/atomic"

// DefaultLogLimit bounds the visible log set when no limit is configured.
const DefaultLogLimit = 1000

// Store holds the effective log limit. The flush engine reads it fresh on
// every flush, so operator changes apply at the next tick without restart.
type Store struct {
	limit atomic.Int64
}

// NewStore seeds the store with the given limit, falling back to
// DefaultLogLimit when the value is unset.
func NewStore(limit int) *Store {
	s := &Store{}
	if limit < 1 {
		limit = DefaultLogLimit
	}
	s.limit.Store(int64(limit))
	return s
}

// LogLimit returns the current limit.
func (s *Store) LogLimit() int {
	return int(s.limit.Load())
}

// SetLogLimit replaces the limit, clamping values below 1.
func (s *Store) SetLogLimit(n int) {
	if n < 1 {
		n = 1
	}
	s.limit.Store(int64(n))
}

// Adjust shifts the limit by delta and returns the new value.
func (s *Store) Adjust(delta int) int {
	n := s.LogLimit() + delta
	s.SetLogLimit(n)
	return s.LogLimit()
}
