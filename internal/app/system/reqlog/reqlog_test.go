package reqlog_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/wastewise/internal/app/system/boundary"
	"github.com/dalemusser/wastewise/internal/app/system/reqlog"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestMiddleware_AssignsRequestID(t *testing.T) {
	var seen string
	h := reqlog.Middleware(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = reqlog.RequestID(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	id := rec.Header().Get(reqlog.HeaderRequestID)
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("response id %q is not a uuid", id)
	}
	if seen != id {
		t.Errorf("context id %q does not match header %q", seen, id)
	}
}

func TestMiddleware_ReusesValidIncomingID(t *testing.T) {
	h := reqlog.Middleware(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	incoming := uuid.NewString()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(reqlog.HeaderRequestID, incoming)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get(reqlog.HeaderRequestID); got != incoming {
		t.Errorf("got %q, want %q", got, incoming)
	}
}

func TestMiddleware_ReplacesMalformedIncomingID(t *testing.T) {
	h := reqlog.Middleware(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(reqlog.HeaderRequestID, "<script>")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get(reqlog.HeaderRequestID); got == "<script>" {
		t.Error("malformed id should be replaced")
	}
}

func TestMiddleware_LogsStatus(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	h := reqlog.Middleware(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))

	entries := logs.FilterMessage("request").All()
	if len(entries) != 1 {
		t.Fatalf("logged %d entries, want 1", len(entries))
	}
	ctx := entries[0].ContextMap()
	if ctx["status"] != int64(http.StatusNotFound) {
		t.Errorf("status: got %v", ctx["status"])
	}
	if ctx["path"] != "/missing" {
		t.Errorf("path: got %v", ctx["path"])
	}
}

func TestMiddleware_LogsApplicationFallbackStatus(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)
	failing := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		boundary.Fail(w, r, errors.New("no route boundary"))
	})
	h := reqlog.Middleware(logger)(boundary.Application(logger)(failing))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/broken", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("client status: got %d, want 500", rec.Code)
	}
	entries := logs.FilterMessage("request").All()
	if len(entries) != 1 {
		t.Fatalf("logged %d entries, want 1", len(entries))
	}
	if entries[0].Level != zapcore.WarnLevel {
		t.Errorf("level: got %v, want warn", entries[0].Level)
	}
	if got := entries[0].ContextMap()["status"]; got != int64(http.StatusInternalServerError) {
		t.Errorf("status: got %v, want 500", got)
	}
}
