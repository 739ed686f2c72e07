// internal/app/features/auth/handler.go
package auth

import (
	sysauth "github.com/habitloop/circlehub/internal/app/system/auth"
	"github.com/habitloop/circlehub/internal/app/system/httpjson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the dependency container for register/login/me.
type Handler struct {
	DB     *mongo.Database
	Tokens *sysauth.Manager
	Log    *zap.Logger
	ErrLog *httpjson.ErrorLogger
}

func NewHandler(db *mongo.Database, tokens *sysauth.Manager, errLog *httpjson.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{DB: db, Tokens: tokens, Log: logger, ErrLog: errLog}
}
