// internal/app/system/boundary/boundary.go
package boundary

import (
	"context"
	"net/http"
	"runtime/debug"

	"github.com/dalemusser/wastewise/internal/app/system/respbuf"
	"go.uber.org/zap"
)

// FallbackRenderer writes the in-scope fallback page for f.
type FallbackRenderer func(w http.ResponseWriter, r *http.Request, f *Fault)

// Boundary catches faults raised inside one route subtree and renders that
// subtree's fallback. Responses are buffered so a fault never leaves a
// half-written page behind.
type Boundary struct {
	Scope    string
	Fallback FallbackRenderer
	Log      *zap.Logger
}

// New returns a Boundary for scope.
func New(scope string, fallback FallbackRenderer, logger *zap.Logger) *Boundary {
	return &Boundary{Scope: scope, Fallback: fallback, Log: logger}
}

type slotKey struct{}

type slot struct {
	fault *Fault
}

// Fail records err as the fault for the current request. The handler should
// return immediately afterwards. Outside any route boundary the fault is
// escalated to the application boundary.
func Fail(w http.ResponseWriter, r *http.Request, err error) {
	f := NewFault(err)
	if s, ok := r.Context().Value(slotKey{}).(*slot); ok {
		if s.fault == nil {
			s.fault = f
		}
		return
	}
	panic(f)
}

// Middleware installs the boundary around next.
//
// A fault is any of: a call to Fail, a panic, or a buffered 500 status.
// Panics raised while rendering the fallback itself are not recovered here;
// they reach the application boundary.
func (b *Boundary) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s := &slot{}
		ctx := context.WithValue(r.Context(), slotKey{}, s)
		rec := respbuf.New(w.Header())

		panicked, stack := serveRecovering(next, rec, r.WithContext(ctx))

		f := s.fault
		if f == nil && panicked != nil {
			f = faultFromPanic(panicked)
		}
		if f == nil && rec.Status() == http.StatusInternalServerError {
			f = NewFault(errInternalStatus)
		}
		if f == nil {
			if err := rec.WriteTo(w); err != nil {
				b.Log.Debug("write response", zap.Error(err))
			}
			return
		}

		fields := []zap.Field{
			zap.String("digest", f.Digest),
			zap.String("scope", b.Scope),
			zap.String("path", r.URL.Path),
			zap.Error(f.Err),
		}
		if panicked != nil {
			fields = append(fields, zap.Any("panic", panicked), zap.ByteString("stack", stack))
		}
		b.Log.Error("route fault", fields...)

		fb := respbuf.New(nil)
		fb.Header().Set("Cache-Control", "no-store")
		b.Fallback(fb, r, f)
		if err := fb.WriteTo(w); err != nil {
			b.Log.Debug("write fallback", zap.Error(err))
		}
	})
}

// serveRecovering runs next and returns the recovered panic value and the
// stack at the point of the panic. http.ErrAbortHandler is re-raised so
// net/http can abort the connection.
func serveRecovering(next http.Handler, w http.ResponseWriter, r *http.Request) (panicked any, stack []byte) {
	defer func() {
		if v := recover(); v != nil {
			if v == http.ErrAbortHandler {
				panic(v)
			}
			panicked = v
			stack = debug.Stack()
		}
	}()
	next.ServeHTTP(w, r)
	return nil, nil
}
