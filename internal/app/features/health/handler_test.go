package health_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/dalemusser/wastewise/internal/app/features/health"
	"github.com/dalemusser/wastewise/internal/app/store/wastedata"
	"github.com/dalemusser/wastewise/internal/testutil"
	"go.uber.org/zap"
)

type healthBody struct {
	Status   string `json:"status"`
	Source   string `json:"source"`
	Database string `json:"database"`
	Message  string `json:"message"`
	Error    string `json:"error"`
}

func serve(t *testing.T, src wastedata.Source) (*testutil.ResponseRecorder, healthBody) {
	t.Helper()
	handler := health.NewHandler(src, zap.NewNop())

	rec := testutil.NewRecorder()
	handler.Serve(rec, testutil.NewRequest("GET", "/health"))

	rec.AssertHeader(t, "Content-Type", "application/json")
	rec.AssertHeader(t, "Cache-Control", "no-store")
	var body healthBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	return rec, body
}

func TestServe_StaticSource(t *testing.T) {
	rec, body := serve(t, wastedata.NewStatic(time.Now))

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if body.Status != "ok" || body.Source != wastedata.SourceStatic || body.Database != health.DatabaseNotUsed {
		t.Errorf("unexpected body: %+v", body)
	}
}

func TestServe_MongoConnected(t *testing.T) {
	db := testutil.SetupTestDB(t)

	rec, body := serve(t, wastedata.NewMongo(db, time.Now))

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if body.Source != wastedata.SourceMongo {
		t.Errorf("source: got %q, want %q", body.Source, wastedata.SourceMongo)
	}
	if body.Database != health.DatabaseConnected {
		t.Errorf("database: got %q, want %q", body.Database, health.DatabaseConnected)
	}
}

// unreachable is a Mongo-named source whose ping always fails.
type unreachable struct {
	wastedata.Source
}

func (unreachable) Name() string { return wastedata.SourceMongo }

func (unreachable) Ping(context.Context) error { return errors.New("server selection timeout") }

func TestServe_MongoDisconnected(t *testing.T) {
	rec, body := serve(t, unreachable{})

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("expected status %d, got %d", http.StatusServiceUnavailable, rec.Code)
	}
	if body.Status != "error" || body.Database != health.DatabaseDisconnected {
		t.Errorf("unexpected body: %+v", body)
	}
	if body.Message != "Database unavailable" {
		t.Errorf("message: got %q", body.Message)
	}
	rec.AssertContains(t, "server selection timeout")
}
