package logview

import (
	"sync"

	"github.com/kettle31/spyglass/internal/record"
)

// Stats tracks ingestion counters for the status bar.
type Stats struct {
	Received  uint64 // well-formed records staged into the intake buffer
	Malformed uint64 // payloads dropped because they did not decode
	Evicted   uint64 // records discarded to hold the capacity bound
}

// Buffer holds the intake buffer and the bounded visible set. The stream
// goroutine appends while the UI tick flushes, so both sides go through the
// mutex. Renders never see the intake side; arrivals cost no render work
// until the next flush.
type Buffer struct {
	mu      sync.Mutex
	intake  []record.Record
	visible []record.Record
	stats   Stats
}

// Append stages a record without touching the visible set.
func (b *Buffer) Append(r record.Record) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.intake = append(b.intake, r)
	b.stats.Received++
}

// NoteMalformed counts a payload that was dropped before decoding succeeded.
func (b *Buffer) NoteMalformed() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.stats.Malformed++
}

// Flush merges the intake buffer into the visible set, holding
// len(visible) <= limit afterwards. Eviction is always oldest-first and
// relative order is preserved. An empty intake is a strict no-op. Returns
// whether the visible set changed.
func (b *Buffer) Flush(limit int) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.intake) == 0 {
		return false
	}
	if limit < 1 {
		limit = 1
	}

	switch {
	case len(b.intake) >= limit:
		// A single flush interval outran the cap: everything previously
		// visible is stale and fully superseded.
		b.stats.Evicted += uint64(len(b.visible) + len(b.intake) - limit)
		next := make([]record.Record, limit)
		copy(next, b.intake[len(b.intake)-limit:])
		b.visible = next

	case len(b.visible)+len(b.intake) <= limit:
		b.visible = append(b.visible, b.intake...)

	default:
		merged := make([]record.Record, 0, len(b.visible)+len(b.intake))
		merged = append(merged, b.visible...)
		merged = append(merged, b.intake...)
		b.stats.Evicted += uint64(len(merged) - limit)
		b.visible = merged[len(merged)-limit:]
	}

	b.intake = b.intake[:0]
	return true
}

// Visible returns a copy of the current visible set.
func (b *Buffer) Visible() []record.Record {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.visible) == 0 {
		return nil
	}
	dup := make([]record.Record, len(b.visible))
	copy(dup, b.visible)
	return dup
}

// Len returns the size of the visible set.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.visible)
}

// Pending returns the number of staged records awaiting the next flush.
func (b *Buffer) Pending() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.intake)
}

// Clear empties both the intake buffer and the visible set immediately,
// independent of the flush cadence. Counters are kept.
func (b *Buffer) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.intake = nil
	b.visible = nil
}

// Stats returns a copy of the ingestion counters.
func (b *Buffer) Stats() Stats {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.stats
}
