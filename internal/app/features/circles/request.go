// internal/app/features/circles/request.go
package circles

import (
	"context"
	"errors"
	"net/http"

	"github.com/habitloop/circlehub/internal/app/policy/circlepolicy"
	circlestore "github.com/habitloop/circlehub/internal/app/store/circles"
	requeststore "github.com/habitloop/circlehub/internal/app/store/joinrequests"
	"github.com/habitloop/circlehub/internal/app/system/authz"
	"github.com/habitloop/circlehub/internal/app/system/httpjson"
	"github.com/habitloop/circlehub/internal/app/system/timeouts"
	"github.com/habitloop/circlehub/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
)

// RequestJoin serves POST /circles/{id}/request: asks to join a private
// circle. Public circles are joined directly, so a request against one
// is rejected. The one-pending-per-user-and-circle invariant is
// enforced by a partial unique index, so two racing requests cannot
// both go through.
func (h *Handler) RequestJoin(w http.ResponseWriter, r *http.Request) {
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
	if circle.Privacy != models.PrivacyPrivate {
		httpjson.Validation(w, "This circle is not private")
		return
	}
	if circlepolicy.IsMember(circle, callerID) {
		httpjson.Validation(w, "You are already a member of this circle")
		return
	}

	req, err := requeststore.New(h.DB).Create(ctx, callerID, id)
	if err != nil {
		if errors.Is(err, requeststore.ErrDuplicatePending) {
			httpjson.Validation(w, "Request already sent")
			return
		}
		h.ErrLog.ServerError(w, r, "create join request", err)
		return
	}
	httpjson.Respond(w, http.StatusCreated, requestView{
		ID:        req.ID,
		UserID:    req.UserID,
		CircleID:  req.CircleID,
		Status:    req.Status,
		CreatedAt: req.CreatedAt,
	})
}
