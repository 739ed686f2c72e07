// internal/app/features/auth/me.go
package auth

import (
	"context"
	"errors"
	"net/http"

	userstore "github.com/habitloop/circlehub/internal/app/store/users"
	"github.com/habitloop/circlehub/internal/app/system/authz"
	"github.com/habitloop/circlehub/internal/app/system/httpjson"
	"github.com/habitloop/circlehub/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
)

// Me serves GET /auth/me: the caller's stored profile. Reads the
// database rather than echoing token claims, so a renamed user sees
// their current name before the token rolls over.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	_, callerID, ok := authz.UserCtx(r)
	if !ok {
		httpjson.Error(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	user, err := userstore.New(h.DB).GetByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.NotFound(w, "User not found")
			return
		}
		h.ErrLog.ServerError(w, r, "load user", err)
		return
	}
	httpjson.Respond(w, http.StatusOK, viewOf(user))
}
