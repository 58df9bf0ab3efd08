package record

import (
	"strings"
	"testing"
)

func TestDecode(t *testing.T) {
	cases := []struct {
		name      string
		payload   string
		wantErr   bool
		wantLevel string
		wantMsg   string
		wantTime  string
	}{
		{
			name:      "full record",
			payload:   `{"level":"info","message":"hello","timestamp":"2026-08-28T10:00:00Z"}`,
			wantLevel: "INFO",
			wantMsg:   "hello",
			wantTime:  "2026-08-28T10:00:00Z",
		},
		{
			name:      "msg and time aliases",
			payload:   `{"level":"ERROR","msg":"boom","time":"t1"}`,
			wantLevel: "ERROR",
			wantMsg:   "boom",
			wantTime:  "t1",
		},
		{
			name:      "unknown level passes through",
			payload:   `{"level":"trace","message":"deep"}`,
			wantLevel: "TRACE",
			wantMsg:   "deep",
		},
		{
			name:      "missing fields tolerated",
			payload:   `{"extra":42}`,
			wantLevel: "",
			wantMsg:   "",
		},
		{name: "not json", payload: `{"level":`, wantErr: true},
		{name: "json array", payload: `[{"level":"info"}]`, wantErr: true},
		{name: "json scalar", payload: `"just a string"`, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := Decode([]byte(tc.payload))
			if tc.wantErr {
				if err == nil {
					t.Fatalf("Decode(%q) succeeded, want error", tc.payload)
				}
				return
			}
			if err != nil {
				t.Fatalf("Decode(%q) returned error: %v", tc.payload, err)
			}
			if r.Level != tc.wantLevel {
				t.Fatalf("Level = %q, want %q", r.Level, tc.wantLevel)
			}
			if r.Message != tc.wantMsg {
				t.Fatalf("Message = %q, want %q", r.Message, tc.wantMsg)
			}
			if r.Time != tc.wantTime {
				t.Fatalf("Time = %q, want %q", r.Time, tc.wantTime)
			}
			if string(r.Raw) != tc.payload {
				t.Fatalf("Raw = %q, want original payload preserved", r.Raw)
			}
		})
	}
}

func TestDecode_RawIsACopy(t *testing.T) {
	payload := []byte(`{"level":"info","message":"hello"}`)
	r, err := Decode(payload)
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	payload[0] = 'X'
	if strings.HasPrefix(string(r.Raw), "X") {
		t.Fatalf("Raw aliases the caller's payload buffer")
	}
}

func TestCanonicalLevel(t *testing.T) {
	if got := CanonicalLevel("  warn "); got != "WARN" {
		t.Fatalf("CanonicalLevel = %q, want WARN", got)
	}
}

func TestKnown(t *testing.T) {
	for _, level := range KnownLevels {
		if !Known(level) {
			t.Fatalf("Known(%s) = false, want true", level)
		}
	}
	if Known("TRACE") {
		t.Fatalf("Known(TRACE) = true, want false")
	}
}
