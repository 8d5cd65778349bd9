// internal/app/features/about/routes.go
package about

import (
	"github.com/dalemusser/wastewise/internal/app/system/boundary"
	"github.com/dalemusser/wastewise/internal/app/system/pagecache"
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler, pc *pagecache.Cache, bnd *boundary.Boundary) chi.Router {
	r := chi.NewRouter()
	r.With(pc.Static(), bnd.Middleware).Get("/", h.ServeAbout)
	return r
}
