// internal/app/features/circles/view.go
package circles

import (
	"context"
	"errors"
	"net/http"

	"github.com/habitloop/circlehub/internal/app/policy/circlepolicy"
	circlestore "github.com/habitloop/circlehub/internal/app/store/circles"
	userstore "github.com/habitloop/circlehub/internal/app/store/users"
	"github.com/habitloop/circlehub/internal/app/system/authz"
	"github.com/habitloop/circlehub/internal/app/system/httpjson"
	"github.com/habitloop/circlehub/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// View serves GET /circles/{id}: the detail projection with the member
// list resolved. Private circles are visible only to the creator and
// members.
func (h *Handler) View(w http.ResponseWriter, r *http.Request) {
	_, callerID, ok := authz.UserCtx(r)
	if !ok {
		httpjson.Error(w, http.StatusUnauthorized, "Authentication required")
		return
	}
	id, ok := circleIDParam(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	circle, err := circlestore.New(h.DB).GetActive(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.NotFound(w, "Circle not found")
			return
		}
		h.ErrLog.ServerError(w, r, "load circle", err)
		return
	}
	if !circlepolicy.CanView(circle, callerID) {
		httpjson.Forbidden(w, "Access denied to private circle")
		return
	}

	ids := make([]primitive.ObjectID, 0, len(circle.Members)+1)
	ids = append(ids, circle.CreatorID)
	for _, m := range circle.Members {
		ids = append(ids, m.UserID)
	}
	users, err := userstore.New(h.DB).GetByIDs(ctx, ids)
	if err != nil {
		h.ErrLog.ServerError(w, r, "resolve circle members", err)
		return
	}
	httpjson.Respond(w, http.StatusOK, detailView(circle, users, callerID))
}
