// Package logview implements the bounded live log pipeline: an intake buffer
// that absorbs stream arrivals, a capacity-bounded merge on a fixed cadence,
// and the filter/search evaluation applied to the visible set.
//
// # Architecture
//
// The package follows a producer-consumer pattern around Buffer:
//
//	Producer (stream client):       Consumer (UI tick):
//	┌──────────────────┐           ┌──────────────────────┐
//	│ decode payload   │           │ Flush(limit)         │
//	│      ↓           │           │      ↓               │
//	│ buffer.Append()  │──────────→│ Visible() → Filtered │
//	│  repeat...       │  (mutex)  │      ↓               │
//	└──────────────────┘           │ render viewport      │
//	                               └──────────────────────┘
//
// Arrivals never touch the visible set directly: they stage into the intake
// buffer, and only the 100 ms flush tick pays the merge and render cost. That
// isolation is what keeps a high-frequency stream from forcing a render pass
// per record.
//
// # Capacity Bound
//
// Flush enforces len(visible) <= limit after every merge with a three-way
// branch:
//
//  1. The intake alone reaches the limit: the visible set becomes the last
//     limit records of the intake. Everything previously visible is stale
//     and discarded.
//  2. Old plus new still fits: plain concatenation, no eviction.
//  3. Otherwise: concatenate and keep the newest limit records.
//
// Eviction always removes from the oldest end and never reorders. The limit
// is supplied fresh on every call so a live settings change takes effect at
// the next flush.
//
// # Filtering
//
// Filters and Matcher are evaluated on demand over a snapshot of the visible
// set. Nothing is cached across mutations: the caller re-derives after any
// flush that reported a change, any filter toggle, and any query change. An
// invalid search pattern never surfaces as an error; it downgrades to a
// case-insensitive substring match.
package logview
