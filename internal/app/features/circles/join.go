// internal/app/features/circles/join.go
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
	"github.com/habitloop/circlehub/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
)

// Join serves POST /circles/{id}/join. Membership is checked before
// privacy, so an existing member of a private circle gets the
// already-a-member answer, not the privacy refusal. The append itself
// is an atomic add-if-absent, so two racing joins cannot both insert.
func (h *Handler) Join(w http.ResponseWriter, r *http.Request) {
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
	if circlepolicy.IsMember(circle, callerID) {
		httpjson.Validation(w, "You are already a member of this circle")
		return
	}
	if circle.Privacy == models.PrivacyPrivate {
		httpjson.Forbidden(w, "This is a private circle. You need an invitation to join.")
		return
	}

	added, err := store.AddMember(ctx, id, callerID)
	if err != nil {
		h.ErrLog.ServerError(w, r, "join circle", err)
		return
	}
	if !added {
		// Lost a race with another join from the same user.
		httpjson.Validation(w, "You are already a member of this circle")
		return
	}
	httpjson.Respond(w, http.StatusOK, messageResponse{Message: "Successfully joined the circle"})
}
