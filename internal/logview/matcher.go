package logview

import (
	"regexp"
	"strings"
)

// Matcher evaluates a search query against record messages. The query is
// compiled once per value; an invalid pattern downgrades to case-insensitive
// literal substring matching instead of surfacing an error.
type Matcher struct {
	query   string
	re      *regexp.Regexp
	literal string
}

// NewMatcher builds a matcher for the given query. An empty query matches
// every message.
func NewMatcher(query string) Matcher {
	m := Matcher{query: query}
	if query == "" {
		return m
	}
	re, err := regexp.Compile("(?i)" + query)
	if err != nil {
		m.literal = strings.ToLower(query)
		return m
	}
	m.re = re
	return m
}

// Match reports whether the message satisfies the query.
func (m Matcher) Match(message string) bool {
	switch {
	case m.query == "":
		return true
	case m.re != nil:
		return m.re.MatchString(message)
	default:
		return strings.Contains(strings.ToLower(message), m.literal)
	}
}

// Query returns the query string this matcher was built from.
func (m Matcher) Query() string {
	return m.query
}

// Literal reports whether the matcher fell back to substring matching.
func (m Matcher) Literal() bool {
	return m.query != "" && m.re == nil
}
