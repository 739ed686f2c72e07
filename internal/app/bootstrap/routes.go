// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	authfeature "github.com/habitloop/circlehub/internal/app/features/auth"
	circlesfeature "github.com/habitloop/circlehub/internal/app/features/circles"
	healthfeature "github.com/habitloop/circlehub/internal/app/features/health"
	requestsfeature "github.com/habitloop/circlehub/internal/app/features/requests"
	sysauth "github.com/habitloop/circlehub/internal/app/system/auth"
	"github.com/habitloop/circlehub/internal/app/system/httpjson"
	"github.com/habitloop/circlehub/internal/app/system/reqlog"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this
// WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup,
// and the Startup hook have completed. CircleHub initializes the token
// manager, applies request logging, and mounts the API surface:
// /health and /auth/{register,login} in the open; /auth/me, /circles,
// and /requests behind bearer auth.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	tokens, err := sysauth.NewManager(appCfg.JWTSecret, appCfg.JWTExpiry, logger)
	if err != nil {
		logger.Error("token manager init failed", zap.Error(err))
		return nil, err
	}

	errLog := httpjson.NewErrorLogger(logger)
	db := deps.MongoDatabase

	r := chi.NewRouter()
	r.Use(reqlog.Middleware(logger))

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(db, logger)
	r.Route("/health", func(hr chi.Router) {
		healthfeature.Routes(hr, healthHandler)
	})

	authHandler := authfeature.NewHandler(db, tokens, errLog, logger)
	r.Route("/auth", func(ar chi.Router) {
		authfeature.PublicRoutes(ar, authHandler)
		ar.Group(func(pr chi.Router) {
			pr.Use(tokens.RequireBearer)
			authfeature.PrivateRoutes(pr, authHandler)
		})
	})

	circlesHandler := circlesfeature.NewHandler(db, errLog, logger, appCfg.DefaultCircleImage)
	r.Route("/circles", func(cr chi.Router) {
		cr.Use(tokens.RequireBearer)
		circlesfeature.Routes(cr, circlesHandler)
	})

	requestsHandler := requestsfeature.NewHandler(db, errLog, logger)
	r.Route("/requests", func(rr chi.Router) {
		rr.Use(tokens.RequireBearer)
		requestsfeature.Routes(rr, requestsHandler)
	})

	return r, nil
}
