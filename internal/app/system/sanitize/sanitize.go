// Package sanitize strips markup from user-supplied free text before it
// is stored. Circle names, descriptions, and habit labels are rendered
// back to other users, so they pass through bluemonday's strict policy.
package sanitize

import (
	"html"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// Text removes all HTML from s. Entities the sanitizer escapes are
// unescaped again so plain text like "R&B" round-trips unchanged.
func Text(s string) string {
	return html.UnescapeString(strict.Sanitize(s))
}

// TextSlice sanitizes every element in place and returns the slice.
func TextSlice(in []string) []string {
	for i, s := range in {
		in[i] = Text(s)
	}
	return in
}
