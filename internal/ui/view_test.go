package ui

import (
	"testing"

	"github.com/kettle31/spyglass/internal/logview"
	"github.com/kettle31/spyglass/internal/record"
)

func TestFilterSummary(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(logview.Filters)
		want   string
	}{
		{"defaults hide debug", func(logview.Filters) {}, "hiding DEBUG"},
		{
			"all visible",
			func(f logview.Filters) { f.Toggle(record.LevelDebug) },
			"",
		},
		{
			"two hidden in display order",
			func(f logview.Filters) { f.Toggle(record.LevelWarn) },
			"hiding WARN,DEBUG",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := logview.DefaultFilters()
			tc.mutate(f)
			if got := filterSummary(f); got != tc.want {
				t.Fatalf("filterSummary = %q, want %q", got, tc.want)
			}
		})
	}
}
