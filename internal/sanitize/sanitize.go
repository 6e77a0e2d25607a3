// Package sanitize normalizes user-supplied text before it is persisted or
// used inside a substring query.
package sanitize

import (
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Field length caps. Oversized input is truncated, not rejected.
const (
	MaxDescription = 2000
	MaxType        = 40
	MaxLocation    = 60
	MaxName        = 100
	MaxEmail       = 100
)

var (
	policy = bluemonday.StrictPolicy()
	wsRe   = regexp.MustCompile(`\s+`)
)

// Text strips all markup, collapses whitespace runs to single spaces, trims,
// and caps the result at maxLen runes (0 means no cap).
func Text(in string, maxLen int) string {
	cleaned := html.UnescapeString(policy.Sanitize(in))
	cleaned = strings.TrimSpace(wsRe.ReplaceAllString(cleaned, " "))
	if maxLen > 0 {
		if r := []rune(cleaned); len(r) > maxLen {
			cleaned = string(r[:maxLen])
		}
	}
	return cleaned
}

// Location sanitizes a location value. Comma-separated elements are capped
// individually so one long element cannot crowd out the rest.
func Location(in string) string {
	parts := strings.Split(in, ",")
	for i, p := range parts {
		parts[i] = Text(p, MaxLocation)
	}
	return strings.Join(parts, ",")
}

// Locations sanitizes a list of candidate location names, dropping entries
// that sanitize to nothing.
func Locations(in []string) []string {
	out := make([]string, 0, len(in))
	for _, loc := range in {
		if s := Text(loc, MaxLocation); s != "" {
			out = append(out, s)
		}
	}
	return out
}
