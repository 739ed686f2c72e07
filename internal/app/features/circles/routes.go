// internal/app/features/circles/routes.go
package circles

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/habitloop/circlehub/internal/app/system/httpjson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Routes mounts the circle directory, membership, and join-request
// creation endpoints. The caller mounts this under /circles behind the
// bearer-auth middleware.
func Routes(r chi.Router, h *Handler) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/my", h.My)
	r.Get("/{id}", h.View)
	r.Put("/{id}", h.Edit)
	r.Delete("/{id}", h.Delete)
	r.Post("/{id}/join", h.Join)
	r.Delete("/{id}/leave", h.Leave)
	r.Post("/{id}/request", h.RequestJoin)
}

// circleIDParam parses the {id} route param. A malformed ID can never
// match a stored circle, so it reports not-found rather than a
// validation error.
func circleIDParam(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.NotFound(w, "Circle not found")
		return primitive.NilObjectID, false
	}
	return id, true
}
