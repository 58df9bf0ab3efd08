// Package record defines the log record model and decodes inbound stream payloads.
package record

import (
	"fmt"
	"strings"

	"github.com/valyala/fastjson"
)

// Canonical severity levels. Servers may emit levels outside this set; those
// records are kept and rendered, but only the known levels are filterable.
const (
	LevelInfo    = "INFO"
	LevelWarn    = "WARN"
	LevelError   = "ERROR"
	LevelSuccess = "SUCCESS"
	LevelDebug   = "DEBUG"
)

// KnownLevels lists the canonical levels in display order.
var KnownLevels = []string{LevelInfo, LevelWarn, LevelError, LevelSuccess, LevelDebug}

// Record is one decoded log record. Immutable once constructed; fields beyond
// level and message are preserved verbatim in Raw and never interpreted.
type Record struct {
	Level   string
	Message string
	Time    string
	Raw     []byte
}

var parsers fastjson.ParserPool

// Decode parses one inbound stream payload into a Record. The payload must be
// a JSON object; anything else is a decode failure and the caller drops it.
func Decode(payload []byte) (Record, error) {
	p := parsers.Get()
	defer parsers.Put(p)

	v, err := p.ParseBytes(payload)
	if err != nil {
		return Record{}, err
	}
	if v.Type() != fastjson.TypeObject {
		return Record{}, fmt.Errorf("payload is %s, want object", v.Type())
	}

	msg := string(v.GetStringBytes("message"))
	if msg == "" {
		msg = string(v.GetStringBytes("msg"))
	}
	ts := string(v.GetStringBytes("timestamp"))
	if ts == "" {
		ts = string(v.GetStringBytes("time"))
	}

	raw := make([]byte, len(payload))
	copy(raw, payload)

	return Record{
		Level:   CanonicalLevel(string(v.GetStringBytes("level"))),
		Message: msg,
		Time:    ts,
		Raw:     raw,
	}, nil
}

// CanonicalLevel normalizes a level string for filter lookups. Unknown levels
// pass through upper-cased so they stay distinguishable in the UI.
func CanonicalLevel(level string) string {
	return strings.ToUpper(strings.TrimSpace(level))
}

// Known reports whether level is one of the five canonical severities.
func Known(level string) bool {
	switch level {
	case LevelInfo, LevelWarn, LevelError, LevelSuccess, LevelDebug:
		return true
	}
	return false
}
