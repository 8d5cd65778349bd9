// internal/app/features/statistics/routes.go
package statistics

import (
	"github.com/dalemusser/wastewise/internal/app/system/boundary"
	"github.com/dalemusser/wastewise/internal/app/system/pagecache"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the three statistics pages. Each is cached and regenerated
// on its own cadence; the boundary sits inside the cache so a fault is
// rendered but never stored.
func Routes(h *Handler, pc *pagecache.Cache, bnd *boundary.Boundary) chi.Router {
	r := chi.NewRouter()
	r.With(pc.Revalidate(h.Cadence.Statistics), bnd.Middleware).Get("/", h.ServeOverview)
	r.With(pc.Revalidate(h.Cadence.Leaderboard), bnd.Middleware).Get("/leaderboard", h.ServeLeaderboard)
	r.With(pc.Revalidate(h.Cadence.Events), bnd.Middleware).Get("/events", h.ServeEvents)
	return r
}
