package logview

import "github.com/kettle31/spyglass/internal/record"

// Filters maps a canonical severity level to its visibility. Only the five
// known levels appear as keys; levels a newer server introduces are absent
// and always render (fail open, so new severities are never silently hidden).
type Filters map[string]bool

// DefaultFilters shows every known level except DEBUG.
func DefaultFilters() Filters {
	return Filters{
		record.LevelInfo:    true,
		record.LevelWarn:    true,
		record.LevelError:   true,
		record.LevelSuccess: true,
		record.LevelDebug:   false,
	}
}

// Visible reports whether records at the given level should render.
func (f Filters) Visible(level string) bool {
	if on, ok := f[level]; ok {
		return on
	}
	return true
}

// Toggle flips visibility for a known level; unknown levels are not
// toggleable and the call is a no-op for them.
func (f Filters) Toggle(level string) {
	if !record.Known(level) {
		return
	}
	f[level] = !f[level]
}

// Filtered returns the ordered subsequence of records that pass the filters
// and match the query. Purely derived; callers re-invoke after any mutation
// to the filters, the matcher, or the visible set.
func Filtered(records []record.Record, f Filters, m Matcher) []record.Record {
	out := make([]record.Record, 0, len(records))
	for _, r := range records {
		if !f.Visible(r.Level) {
			continue
		}
		if !m.Match(r.Message) {
			continue
		}
		out = append(out, r)
	}
	return out
}
