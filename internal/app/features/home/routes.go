// internal/app/features/home/routes.go
package home

import (
	"github.com/dalemusser/wastewise/internal/app/system/boundary"
	"github.com/dalemusser/wastewise/internal/app/system/pagecache"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the landing page. It is rendered once and cached for the
// life of the process.
func Routes(h *Handler, pc *pagecache.Cache, bnd *boundary.Boundary) chi.Router {
	r := chi.NewRouter()
	r.With(pc.Static(), bnd.Middleware).Get("/", h.ServeHome)
	return r
}
