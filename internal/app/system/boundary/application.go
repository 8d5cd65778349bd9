// internal/app/system/boundary/application.go
package boundary

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

var errInternalStatus = errors.New("handler responded 500")

// ApplicationFallbackHTML is the last-resort page. It is a constant so it
// can be served even when the template engine is what failed.
const ApplicationFallbackHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Something went wrong | WasteWise</title>
</head>
<body style="display:flex;align-items:center;justify-content:center;min-height:100vh;margin:0;background-color:#f3f4f6;font-family:system-ui,sans-serif">
<div style="text-align:center">
<h1 style="font-size:2.25rem;font-weight:bold;color:#111827;margin-bottom:0.5rem">500</h1>
<h2 style="font-size:1.875rem;font-weight:600;color:#374151;margin-bottom:1rem">Something went wrong!</h2>
<p style="color:#4b5563;margin-bottom:2rem">An unexpected error occurred. Please try again.</p>
</div>
</body>
</html>
`

// Application returns the outermost middleware. It recovers any panic that
// escaped the route boundaries, including one raised by a route fallback,
// and serves ApplicationFallbackHTML with status 500 when nothing has been
// written yet.
func Application(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if v == http.ErrAbortHandler {
					panic(v)
				}
				f := faultFromPanic(v)
				logger.Error("application fault",
					zap.String("digest", f.Digest),
					zap.String("path", r.URL.Path),
					zap.Error(f.Err),
					zap.Stack("stack"))

				if ww.Status() != 0 {
					// Headers already sent; the connection carries whatever was written.
					return
				}
				WriteApplicationFallback(ww)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

// WriteApplicationFallback writes the constant 500 page.
func WriteApplicationFallback(w http.ResponseWriter) {
	h := w.Header()
	h.Set("Content-Type", "text/html; charset=utf-8")
	h.Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write([]byte(ApplicationFallbackHTML))
}
