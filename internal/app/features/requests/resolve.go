// internal/app/features/requests/resolve.go
package requests

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
	"github.com/habitloop/circlehub/internal/app/system/txn"
	"github.com/habitloop/circlehub/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type resolveInput struct {
	Action string `json:"action"`
}

// Resolve serves PUT /requests/{circleId}/{requestId}: moves a pending
// request to approved or declined. Terminal either way; a second
// resolution attempt is rejected. Approval also adds the requester to
// the circle's members, and both writes run under txn.Run so they
// commit together where the deployment supports transactions. The
// member-add is idempotent, so the sequential fallback cannot
// double-add.
func (h *Handler) Resolve(w http.ResponseWriter, r *http.Request) {
	_, callerID, ok := authz.UserCtx(r)
	if !ok {
		httpjson.Error(w, http.StatusUnauthorized, "Authentication required")
		return
	}
	circleID, ok := idParam(w, r, "circleId", "Circle not found")
	if !ok {
		return
	}
	requestID, ok := idParam(w, r, "requestId", "Request not found")
	if !ok {
		return
	}

	var in resolveInput
	if !httpjson.DecodeBody(w, r, &in) {
		return
	}
	if !models.ValidAction(in.Action) {
		httpjson.Validation(w, "Invalid action")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	circleStore := circlestore.New(h.DB)
	circle, err := circleStore.GetByID(ctx, circleID)
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

	requestStore := requeststore.New(h.DB)
	req, err := requestStore.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.NotFound(w, "Request not found")
			return
		}
		h.ErrLog.ServerError(w, r, "load request", err)
		return
	}
	if req.CircleID != circleID {
		httpjson.NotFound(w, "Request not found")
		return
	}

	var resolved models.JoinRequest
	err = txn.Run(ctx, h.DB, h.Log, func(ctx context.Context) error {
		var err error
		resolved, err = requestStore.Resolve(ctx, requestID, in.Action)
		if err != nil {
			return err
		}
		if resolved.Status == models.RequestApproved {
			if _, err := circleStore.AddMember(ctx, circleID, resolved.UserID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, requeststore.ErrAlreadyResolved):
			httpjson.Validation(w, "Request has already been resolved")
		case errors.Is(err, mongo.ErrNoDocuments):
			httpjson.NotFound(w, "Request not found")
		default:
			h.ErrLog.ServerError(w, r, "resolve request", err)
		}
		return
	}

	message := "Request declined"
	if resolved.Status == models.RequestApproved {
		message = "Request approved"
	}
	h.Log.Info("join request resolved",
		zap.String("circle_id", circleID.Hex()),
		zap.String("request_id", requestID.Hex()),
		zap.String("status", resolved.Status))
	httpjson.Respond(w, http.StatusOK, resolveResponse{
		Message: message,
		Request: resolvedView{
			ID:        resolved.ID,
			UserID:    resolved.UserID,
			CircleID:  resolved.CircleID,
			Status:    resolved.Status,
			UpdatedAt: resolved.UpdatedAt,
		},
	})
}
