// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"github.com/habitloop/circlehub/internal/app/system/indexes"
	"go.uber.org/zap"
)

// EnsureSchema creates the indexes the invariants depend on: the folded
// unique email, the per-creator unique active circle name, and the
// one-pending-request-per-user-and-circle guard.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	return indexes.EnsureAll(ctx, deps.MongoDatabase)
}
