// internal/app/features/health/handler.go
package health

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/habitloop/circlehub/internal/app/system/httpjson"
	"github.com/habitloop/circlehub/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// Handler answers liveness probes. A probe pings Mongo so a wedged
// database shows up as unhealthy rather than a green check.
type Handler struct {
	DB  *mongo.Database
	Log *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{DB: db, Log: logger}
}

// Routes mounts GET /health (unauthenticated).
func Routes(r chi.Router, h *Handler) {
	r.Get("/", h.Check)
}

type status struct {
	Status string `json:"status"`
}

// Check pings the database and reports ok / unavailable.
func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Ping())
	defer cancel()

	if err := h.DB.Client().Ping(ctx, readpref.Primary()); err != nil {
		h.Log.Warn("health ping failed", zap.Error(err))
		httpjson.Respond(w, http.StatusServiceUnavailable, status{Status: "unavailable"})
		return
	}
	httpjson.Respond(w, http.StatusOK, status{Status: "ok"})
}
