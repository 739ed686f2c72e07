// internal/app/features/circles/handler.go
package circles

import (
	"github.com/habitloop/circlehub/internal/app/system/httpjson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the shared dependency container for the circles feature.
// The per-operation handlers (list, create, view, join, leave, request,
// ...) all share the same database, logger, and default image URL.
type Handler struct {
	DB           *mongo.Database
	Log          *zap.Logger
	ErrLog       *httpjson.ErrorLogger
	DefaultImage string
}

// NewHandler constructs a circles Handler. Called from the bootstrap
// BuildHandler function once the database and logger are initialized.
func NewHandler(db *mongo.Database, errLog *httpjson.ErrorLogger, logger *zap.Logger, defaultImage string) *Handler {
	return &Handler{
		DB:           db,
		Log:          logger,
		ErrLog:       errLog,
		DefaultImage: defaultImage,
	}
}
