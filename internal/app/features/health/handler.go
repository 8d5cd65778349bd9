// internal/app/features/health/handler.go
package health

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dalemusser/wastewise/internal/app/store/wastedata"
	"github.com/dalemusser/wastewise/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// Database states reported by /health.
const (
	DatabaseConnected    = "connected"
	DatabaseDisconnected = "disconnected"
	DatabaseNotUsed      = "not-used"
)

// Handler holds dependencies needed for health checks.
type Handler struct {
	Source wastedata.Source
	Log    *zap.Logger
}

// NewHandler constructs a health Handler for the active data source.
func NewHandler(src wastedata.Source, logger *zap.Logger) *Handler {
	return &Handler{Source: src, Log: logger}
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status   string `json:"status"`
	Source   string `json:"source"`
	Database string `json:"database"`
	Message  string `json:"message,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Serve handles GET /health.
//
// On success: 200 and
//
//	{ "status":"ok", "source":"mongo", "database":"connected" }
//
// The static source has no database and always reports ok. When the Mongo
// source cannot be pinged: 503 and
//
//	{ "status":"error", "source":"mongo", "database":"disconnected", "message":"Database unavailable", "error":"…" }
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Ping())
	defer cancel()

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")

	resp := healthResponse{
		Status:   "ok",
		Source:   h.Source.Name(),
		Database: DatabaseConnected,
	}
	if resp.Source == wastedata.SourceStatic {
		resp.Database = DatabaseNotUsed
	}

	if err := h.Source.Ping(ctx); err != nil {
		h.Log.Error("health-check: data source ping failed",
			zap.String("source", resp.Source), zap.Error(err))
		w.WriteHeader(http.StatusServiceUnavailable)
		resp.Status = "error"
		if resp.Database != DatabaseNotUsed {
			resp.Database = DatabaseDisconnected
			resp.Message = "Database unavailable"
		} else {
			resp.Message = "Data source unavailable"
		}
		resp.Error = err.Error()
		_ = json.NewEncoder(w).Encode(resp)
		return
	}

	_ = json.NewEncoder(w).Encode(resp)
}
