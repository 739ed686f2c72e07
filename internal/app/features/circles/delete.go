// internal/app/features/circles/delete.go
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

// Delete serves DELETE /circles/{id}: a soft delete that flips the
// active flag. Memberships and request history stay in place; every
// later lookup reports the circle as missing.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
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
	if !circlepolicy.IsCreator(circle, callerID) {
		httpjson.Forbidden(w, "Only circle creator can delete the circle")
		return
	}

	if err := store.SoftDelete(ctx, id); err != nil {
		h.ErrLog.ServerError(w, r, "delete circle", err)
		return
	}
	httpjson.Respond(w, http.StatusOK, messageResponse{Message: "Circle deleted successfully"})
}
