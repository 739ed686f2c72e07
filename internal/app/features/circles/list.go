// internal/app/features/circles/list.go
package circles

import (
	"context"
	"net/http"

	circlestore "github.com/habitloop/circlehub/internal/app/store/circles"
	userstore "github.com/habitloop/circlehub/internal/app/store/users"
	"github.com/habitloop/circlehub/internal/app/system/authz"
	"github.com/habitloop/circlehub/internal/app/system/httpjson"
	"github.com/habitloop/circlehub/internal/app/system/normalize"
	"github.com/habitloop/circlehub/internal/app/system/paging"
	"github.com/habitloop/circlehub/internal/app/system/timeouts"
)

// List serves GET /circles: the paged public directory of active
// circles, filterable by free-text search, category, and privacy.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	_, callerID, ok := authz.UserCtx(r)
	if !ok {
		httpjson.Error(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	page := paging.Parse(r)
	q := r.URL.Query()
	filter := circlestore.ListFilter{
		Search:   normalize.Param(q.Get("search")),
		Category: normalize.Param(q.Get("category")),
		Privacy:  normalize.Param(q.Get("privacy")),
		Skip:     page.Skip(),
		Limit:    int64(page.Limit),
	}
	// The client sends "All Categories" for the unfiltered view.
	if filter.Category == "All Categories" {
		filter.Category = ""
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	found, total, err := circlestore.New(h.DB).List(ctx, filter)
	if err != nil {
		h.ErrLog.ServerError(w, r, "list circles", err)
		return
	}
	users, err := userstore.New(h.DB).GetByIDs(ctx, creatorIDs(found))
	if err != nil {
		h.ErrLog.ServerError(w, r, "resolve circle creators", err)
		return
	}

	out := make([]CircleSummary, 0, len(found))
	for _, c := range found {
		out = append(out, summaryView(c, users, callerID))
	}
	httpjson.Respond(w, http.StatusOK, listResponse{
		Circles:     out,
		TotalPages:  paging.TotalPages(total, page.Limit),
		CurrentPage: page.Page,
		Total:       total,
	})
}
