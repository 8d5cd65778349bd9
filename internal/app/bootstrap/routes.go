// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"
	"time"

	aboutfeature "github.com/dalemusser/wastewise/internal/app/features/about"
	dashboardfeature "github.com/dalemusser/wastewise/internal/app/features/dashboard"
	educationfeature "github.com/dalemusser/wastewise/internal/app/features/education"
	errorsfeature "github.com/dalemusser/wastewise/internal/app/features/errors"
	faqfeature "github.com/dalemusser/wastewise/internal/app/features/faq"
	healthfeature "github.com/dalemusser/wastewise/internal/app/features/health"
	homefeature "github.com/dalemusser/wastewise/internal/app/features/home"
	statisticsfeature "github.com/dalemusser/wastewise/internal/app/features/statistics"
	"github.com/dalemusser/wastewise/internal/app/store/wastedata"
	"github.com/dalemusser/wastewise/internal/app/system/boundary"
	"github.com/dalemusser/wastewise/internal/app/system/pagecache"
	"github.com/dalemusser/wastewise/internal/app/system/prefs"
	"github.com/dalemusser/wastewise/internal/app/system/reqlog"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler.
//
// WasteWise boots the template engine, picks the data source, and mounts
// one router per area. Each area sits behind its own route boundary so a
// fault renders that area's fallback; the application boundary wraps
// everything and catches faults in the fallbacks themselves.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	secure := coreCfg.Env == "prod"
	prefsMgr, err := prefs.NewManager(appCfg.SessionKey, appCfg.SessionName, secure, logger)
	if err != nil {
		logger.Error("preference cookie manager init failed", zap.Error(err))
		return nil, err
	}

	src := dataSource(appCfg, deps)
	cache := deps.PageCache
	if cache == nil {
		cache = pagecache.New(logger, time.Now)
	}

	errorsHandler := errorsfeature.NewHandler(logger)

	r := chi.NewRouter()
	r.Use(rootMiddleware(logger)...)
	r.NotFound(errorsHandler.NotFound)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(src, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// Site pages: built once.
	site := boundary.New("site", errorsHandler.RouteFallback, logger)

	homeHandler := homefeature.NewHandler(logger)
	r.Mount("/", homefeature.Routes(homeHandler, cache, site))

	aboutHandler := aboutfeature.NewHandler(logger)
	r.Mount("/about", aboutfeature.Routes(aboutHandler, cache, site))

	educationHandler, err := educationfeature.NewHandler(logger)
	if err != nil {
		return nil, err
	}
	r.Mount("/education", educationfeature.Routes(educationHandler, cache, site))

	faqHandler, err := faqfeature.NewHandler(logger)
	if err != nil {
		return nil, err
	}
	r.Mount("/faq", faqfeature.Routes(faqHandler, cache, site))

	// Dashboards: rendered on every request.
	subjects := dashboardfeature.Subjects{
		HouseholdID: appCfg.HouseholdID,
		CollectorID: appCfg.CollectorID,
		OfficerID:   appCfg.OfficerID,
		Ward:        appCfg.ResidentWard,
	}
	dashboardHandler := dashboardfeature.NewHandler(src, prefsMgr, subjects, logger)
	r.Mount("/dashboard", dashboardfeature.Routes(dashboardHandler, boundary.New("dashboard", errorsHandler.RouteFallback, logger)))

	// Statistics: regenerated on their own cadences.
	cadence := statisticsfeature.Cadence{
		Statistics:  appCfg.StatisticsRevalidate,
		Leaderboard: appCfg.LeaderboardRevalidate,
		Events:      appCfg.EventsRevalidate,
	}
	statisticsHandler := statisticsfeature.NewHandler(src, cadence, logger)
	r.Mount("/statistics", statisticsfeature.Routes(statisticsHandler, cache, boundary.New("statistics", errorsHandler.RouteFallback, logger)))

	return r, nil
}

// dataSource picks the page data source. ConnectDB only opens a database
// for the mongo source, so a nil database means static.
func dataSource(appCfg AppConfig, deps DBDeps) wastedata.Source {
	if appCfg.DataSource == wastedata.SourceMongo && deps.MongoDatabase != nil {
		return wastedata.NewMongo(deps.MongoDatabase, time.Now)
	}
	return wastedata.NewStatic(time.Now)
}

// rootMiddleware is the outer chain, outermost first. The access log sits
// outside the application boundary so it records the status of a fallback.
func rootMiddleware(logger *zap.Logger) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		reqlog.Middleware(logger),
		boundary.Application(logger),
	}
}
