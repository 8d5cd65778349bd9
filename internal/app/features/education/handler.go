// internal/app/features/education/handler.go
package education

import (
	"net/http"

	"github.com/dalemusser/wastewise/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// Handler serves the waste segregation guide.
type Handler struct {
	Log     *zap.Logger
	content content
}

// NewHandler parses the embedded copy. It fails only if content.yaml is
// malformed.
func NewHandler(logger *zap.Logger) (*Handler, error) {
	c, err := parseContent(contentYAML)
	if err != nil {
		return nil, err
	}
	return &Handler{Log: logger, content: c}, nil
}

type pageData struct {
	viewdata.BaseVM
	Guide content
}

func (h *Handler) ServeEducation(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		BaseVM: viewdata.NewBaseVM(r, "Learn About Waste Segregation",
			"Educational content about proper waste segregation - wet waste, dry waste, and hazardous waste categories.", "/"),
		Guide:  h.content,
	}

	templates.Render(w, r, "education", data)
}
