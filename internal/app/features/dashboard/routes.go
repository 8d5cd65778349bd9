// internal/app/features/dashboard/routes.go
package dashboard

import (
	"github.com/dalemusser/wastewise/internal/app/system/boundary"
	"github.com/dalemusser/wastewise/internal/app/system/pagecache"
	"github.com/dalemusser/wastewise/internal/app/system/prefs"
	"github.com/go-chi/chi/v5"
)

// Routes wires the dashboard feature under whatever mount point
// the top-level router chooses (e.g., "/dashboard").
//
// Every dashboard is rendered per request. Opening one of the three role
// dashboards remembers the role so the hub can offer it again.
func Routes(h *Handler, bnd *boundary.Boundary) chi.Router {
	r := chi.NewRouter()
	r.Use(pagecache.Dynamic, bnd.Middleware)

	r.Get("/", h.ServeHub)
	r.With(h.Prefs.Remember(prefs.RoleHousehold)).Get("/household", h.ServeHousehold)
	r.With(h.Prefs.Remember(prefs.RoleCollector)).Get("/collector", h.ServeCollector)
	r.With(h.Prefs.Remember(prefs.RoleAuthority)).Get("/authority", h.ServeAuthority)
	r.Get("/reports", h.ServeReports)

	return r
}
