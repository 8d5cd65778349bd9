// internal/app/features/faq/handler.go
package faq

import (
	"net/http"

	"github.com/dalemusser/wastewise/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

type Handler struct {
	Log     *zap.Logger
	entries []Entry
}

// NewHandler parses the embedded question list.
func NewHandler(logger *zap.Logger) (*Handler, error) {
	entries, err := parseEntries(faqYAML)
	if err != nil {
		return nil, err
	}
	return &Handler{Log: logger, entries: entries}, nil
}

type pageData struct {
	viewdata.BaseVM
	Entries []Entry
}

func (h *Handler) ServeFAQ(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		BaseVM: viewdata.NewBaseVM(r, "Frequently Asked Questions",
			"Common questions about waste segregation, the WasteWise platform, and how to participate.", "/"),
		Entries: h.entries,
	}

	templates.Render(w, r, "faq", data)
}
