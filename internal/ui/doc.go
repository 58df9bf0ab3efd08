// Package ui provides the Bubble Tea terminal UI for spyglass.
//
// # Overview
//
// The UI is a single full-screen view: a header with the connection state, a
// viewport holding the filtered log records, and a status bar. The Bubble
// Tea update loop is the only place view state mutates, which is what makes
// the pipeline safe without locking beyond the shared buffer: stream
// arrivals stage records off-loop, and the 100 ms flush tick is the sole
// consumer.
//
// # Update Cycle
//
//	stream goroutine ──append──→ logview.Buffer
//	                                  │
//	flushTickMsg (100 ms) ──Flush(limit)──→ visible set
//	                                  │
//	             Filtered(visible, filters, matcher)
//	                                  │
//	                viewport.SetContent + GotoBottom (follow)
//
// Filter toggles, search changes, and clear re-derive the filtered view
// immediately; the tick only re-derives when a flush actually changed the
// visible set.
//
// # Operator Surface
//
// Follow mode keeps the viewport pinned to the newest record; any manual
// scroll releases it and G re-engages it. Search input is a textinput
// overlay on the status bar; an applied query compiles case-insensitively
// and silently downgrades to substring matching when invalid. The 1-5 keys
// toggle the five known severities, S exports the filtered view, and +/-
// resize the log limit live (persisted to prefs along with the theme).
package ui
