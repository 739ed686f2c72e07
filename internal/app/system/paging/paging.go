// internal/app/system/paging/paging.go
package paging

import (
	"net/http"
	"strconv"
)

// DefaultLimit is the page size used when the client does not send one.
const DefaultLimit = 12

// MaxLimit caps client-requested page sizes.
const MaxLimit = 100

// Params is an offset page window parsed from the request query.
type Params struct {
	Page  int // 1-based
	Limit int
}

// Parse reads "page" and "limit" from the query string. Missing or
// invalid values fall back to page 1 and DefaultLimit; limit is capped
// at MaxLimit.
func Parse(r *http.Request) Params {
	p := Params{Page: 1, Limit: DefaultLimit}
	if n, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && n >= 1 {
		p.Page = n
	}
	if n, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && n >= 1 {
		p.Limit = n
		if p.Limit > MaxLimit {
			p.Limit = MaxLimit
		}
	}
	return p
}

// Skip returns the document offset for this window.
func (p Params) Skip() int64 {
	return int64(p.Page-1) * int64(p.Limit)
}

// TotalPages returns the page count for total documents, never below 0.
func TotalPages(total int64, limit int) int64 {
	if limit <= 0 {
		return 0
	}
	return (total + int64(limit) - 1) / int64(limit)
}
