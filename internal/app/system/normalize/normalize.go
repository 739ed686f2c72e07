// internal/app/system/normalize/normalize.go
package normalize

import "strings"

// Name trims surrounding whitespace and collapses internal runs of
// whitespace to single spaces. Used for circle and user names before
// validation and case-insensitive folding.
func Name(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Param trims a query or form parameter.
func Param(s string) string {
	return strings.TrimSpace(s)
}

// StringSlice trims every element and drops the empties. Used for habit
// label lists.
func StringSlice(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if t := strings.TrimSpace(s); t != "" {
			out = append(out, t)
		}
	}
	return out
}
