// internal/app/features/errors/errors.go
package errors

import (
	"net/http"

	"github.com/dalemusser/wastewise/internal/app/system/boundary"
	"github.com/dalemusser/wastewise/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// faultData is the view model for the in-scope fallback page.
type faultData struct {
	viewdata.BaseVM
	Message  string
	Digest   string
	RetryURL string
}

type notFoundData struct {
	viewdata.BaseVM
	Path string
}

// Handler renders the error pages. No DB needed.
type Handler struct {
	Log *zap.Logger
}

// NewHandler constructs an errors Handler.
func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

// RouteFallback is the boundary.FallbackRenderer shared by every route
// subtree. "Try again" reloads the URL that failed.
func (h *Handler) RouteFallback(w http.ResponseWriter, r *http.Request, f *boundary.Fault) {
	data := newFaultData(r, f)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	templates.Render(w, r, "error_route", data)
}

// NotFound renders the 404 page for paths no feature claims.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	data := notFoundData{
		BaseVM: viewdata.NewBaseVM(r, "Page not found", "", "/"),
		Path:   r.URL.Path,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	templates.Render(w, r, "error_not_found", data)
}

func newFaultData(r *http.Request, f *boundary.Fault) faultData {
	msg := f.Message
	if msg == "" {
		msg = boundary.DefaultMessage
	}
	return faultData{
		BaseVM:   viewdata.NewBaseVM(r, "Something went wrong", "", "/"),
		Message:  msg,
		Digest:   f.Digest,
		RetryURL: r.URL.RequestURI(),
	}
}
