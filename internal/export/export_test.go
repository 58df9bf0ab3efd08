package export

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/klauspost/compress/zstd"

	"github.com/kettle31/spyglass/internal/record"
)

func TestSnapshot_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	records := []record.Record{
		{Time: "2026-08-28T10:00:00Z", Level: "INFO", Message: "started"},
		{Level: "ERROR", Message: "no timestamp"},
		{Message: "bare message"},
	}

	path, err := Snapshot(dir, records)
	if err != nil {
		t.Fatalf("Snapshot returned error: %v", err)
	}
	if !strings.HasPrefix(path, dir) || !strings.HasSuffix(path, ".log.zst") {
		t.Fatalf("path = %q, want spyglass-*.log.zst under %q", path, dir)
	}

	compressed, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read snapshot: %v", err)
	}
	dec, err := zstd.NewReader(bytes.NewReader(compressed))
	if err != nil {
		t.Fatalf("init zstd reader: %v", err)
	}
	defer dec.Close()
	plain, err := io.ReadAll(dec)
	if err != nil {
		t.Fatalf("decompress snapshot: %v", err)
	}

	want := "2026-08-28T10:00:00Z INFO started\nERROR no timestamp\nbare message\n"
	if string(plain) != want {
		t.Fatalf("snapshot content = %q, want %q", plain, want)
	}
}

func TestFormatLine(t *testing.T) {
	cases := []struct {
		name string
		rec  record.Record
		want string
	}{
		{"all fields", record.Record{Time: "t1", Level: "WARN", Message: "m"}, "t1 WARN m"},
		{"no time", record.Record{Level: "INFO", Message: "m"}, "INFO m"},
		{"message only", record.Record{Message: "m"}, "m"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatLine(tc.rec); got != tc.want {
				t.Fatalf("FormatLine = %q, want %q", got, tc.want)
			}
		})
	}
}
