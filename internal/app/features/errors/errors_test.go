package errors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/wastewise/internal/app/system/boundary"
	"go.uber.org/zap"
)

// renderSafely runs fn and swallows the panic the template engine raises
// when it has not been booted.
func renderSafely(fn func()) {
	defer func() {
		_ = recover()
	}()
	fn()
}

func TestNewFaultData(t *testing.T) {
	req := httptest.NewRequest("GET", "/dashboard/household?tab=activity", nil)
	f := &boundary.Fault{Message: "Household HH-1 was not found.", Digest: "abc-123"}

	data := newFaultData(req, f)

	if data.RetryURL != "/dashboard/household?tab=activity" {
		t.Errorf("RetryURL = %q", data.RetryURL)
	}
	if data.Message != f.Message {
		t.Errorf("Message = %q, want %q", data.Message, f.Message)
	}
	if data.Digest != "abc-123" {
		t.Errorf("Digest = %q", data.Digest)
	}
}

func TestNewFaultData_EmptyMessageUsesDefault(t *testing.T) {
	req := httptest.NewRequest("GET", "/statistics", nil)

	data := newFaultData(req, &boundary.Fault{})

	if data.Message != boundary.DefaultMessage {
		t.Errorf("Message = %q, want %q", data.Message, boundary.DefaultMessage)
	}
}

func TestRouteFallback_Status(t *testing.T) {
	h := NewHandler(zap.NewNop())
	req := httptest.NewRequest("GET", "/statistics", nil)
	rec := httptest.NewRecorder()

	renderSafely(func() {
		h.RouteFallback(rec, req, boundary.NewFault(nil))
	})

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
}

func TestNotFound_Status(t *testing.T) {
	h := NewHandler(zap.NewNop())
	req := httptest.NewRequest("GET", "/no/such/page", nil)
	rec := httptest.NewRecorder()

	renderSafely(func() {
		h.NotFound(rec, req)
	})

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}
