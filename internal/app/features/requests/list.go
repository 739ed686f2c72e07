// internal/app/features/requests/list.go
package requests

import (
	"context"
	"errors"
	"net/http"

	"github.com/habitloop/circlehub/internal/app/policy/circlepolicy"
	circlestore "github.com/habitloop/circlehub/internal/app/store/circles"
	requeststore "github.com/habitloop/circlehub/internal/app/store/joinrequests"
	userstore "github.com/habitloop/circlehub/internal/app/store/users"
	"github.com/habitloop/circlehub/internal/app/system/authz"
	"github.com/habitloop/circlehub/internal/app/system/httpjson"
	"github.com/habitloop/circlehub/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ListPending serves GET /requests/{circleId}: the circle's pending
// join requests, oldest first, with each requester resolved to
// {_id, name, email}. Creator only. The circle lookup here checks
// existence regardless of the active flag, so moderation history stays
// reachable after a soft delete.
func (h *Handler) ListPending(w http.ResponseWriter, r *http.Request) {
	_, callerID, ok := authz.UserCtx(r)
	if !ok {
		httpjson.Error(w, http.StatusUnauthorized, "Authentication required")
		return
	}
	circleID, ok := idParam(w, r, "circleId", "Circle not found")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	circle, err := circlestore.New(h.DB).GetByID(ctx, circleID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.NotFound(w, "Circle not found")
			return
		}
		h.ErrLog.ServerError(w, r, "load circle", err)
		return
	}
	if !circlepolicy.IsCreator(circle, callerID) {
		httpjson.Forbidden(w, "Not authorized")
		return
	}

	reqs, err := requeststore.New(h.DB).ListPendingByCircle(ctx, circleID)
	if err != nil {
		h.ErrLog.ServerError(w, r, "list pending requests", err)
		return
	}

	ids := make([]primitive.ObjectID, 0, len(reqs))
	for _, req := range reqs {
		ids = append(ids, req.UserID)
	}
	users, err := userstore.New(h.DB).GetByIDs(ctx, ids)
	if err != nil {
		h.ErrLog.ServerError(w, r, "resolve requesters", err)
		return
	}
	httpjson.Respond(w, http.StatusOK, pendingViews(reqs, users))
}
