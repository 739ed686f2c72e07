// internal/app/features/requests/routes.go
package requests

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/habitloop/circlehub/internal/app/system/httpjson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Routes mounts the request moderation endpoints. The caller mounts
// this under /requests behind the bearer-auth middleware.
func Routes(r chi.Router, h *Handler) {
	r.Get("/{circleId}", h.ListPending)
	r.Put("/{circleId}/{requestId}", h.Resolve)
}

// idParam parses one hex ObjectID route param, reporting not-found with
// the given message when it is malformed.
func idParam(w http.ResponseWriter, r *http.Request, name, missing string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, name))
	if err != nil {
		httpjson.NotFound(w, missing)
		return primitive.NilObjectID, false
	}
	return id, true
}
