// internal/app/features/circles/my.go
package circles

import (
	"context"
	"net/http"

	circlestore "github.com/habitloop/circlehub/internal/app/store/circles"
	userstore "github.com/habitloop/circlehub/internal/app/store/users"
	"github.com/habitloop/circlehub/internal/app/system/authz"
	"github.com/habitloop/circlehub/internal/app/system/httpjson"
	"github.com/habitloop/circlehub/internal/app/system/timeouts"
)

// My serves GET /circles/my: every active circle the caller created or
// belongs to, newest first, unpaged.
func (h *Handler) My(w http.ResponseWriter, r *http.Request) {
	_, callerID, ok := authz.UserCtx(r)
	if !ok {
		httpjson.Error(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	found, err := circlestore.New(h.DB).ListForUser(ctx, callerID)
	if err != nil {
		h.ErrLog.ServerError(w, r, "list user circles", err)
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
	httpjson.Respond(w, http.StatusOK, out)
}
