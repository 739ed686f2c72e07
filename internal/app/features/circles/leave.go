// internal/app/features/circles/leave.go
package circles

import (
	"context"
	"errors"
	"net/http"

	"github.com/habitloop/circlehub/internal/app/policy/circlepolicy"
	circlestore "github.com/habitloop/circlehub/internal/app/store/circles"
	"github.com/habitloop/circlehub/internal/app/system/authz"
	"github.com/habitloop/circlehub/internal/app/system/httpjson"
	"github.com/habitloop/circlehub/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
)

// Leave serves DELETE /circles/{id}/leave. The creator can never leave;
// leaving a circle the caller is not in succeeds as a no-op.
func (h *Handler) Leave(w http.ResponseWriter, r *http.Request) {
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

	store := circlestore.New(h.DB)
	circle, err := store.GetActive(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.NotFound(w, "Circle not found")
			return
		}
		h.ErrLog.ServerError(w, r, "load circle", err)
		return
	}
	if circlepolicy.IsCreator(circle, callerID) {
		httpjson.Validation(w, "Circle creator cannot leave their own circle")
		return
	}

	if err := store.RemoveMember(ctx, id, callerID); err != nil {
		h.ErrLog.ServerError(w, r, "leave circle", err)
		return
	}
	httpjson.Respond(w, http.StatusOK, messageResponse{Message: "Successfully left the circle"})
}
