// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/wastewise/internal/app/resources"
	"github.com/dalemusser/wastewise/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs after DB connections and schema setup, before the handler
// is built. It registers the shared layout templates, applies the loader
// timeout, and starts the cache sweeper.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	resources.LoadSharedTemplates()
	timeouts.Configure(timeouts.Config{Load: appCfg.LoadTimeout})

	if deps.Sweeper != nil {
		deps.Sweeper.Start()
	}
	return nil
}
