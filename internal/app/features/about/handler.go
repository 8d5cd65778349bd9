// internal/app/features/about/handler.go
package about

import (
	"net/http"

	"github.com/dalemusser/wastewise/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

type step struct {
	Number      int
	Title       string
	Description string
}

type stakeholder struct {
	Emoji       string
	Title       string
	Description string
}

type pageData struct {
	viewdata.BaseVM
	Steps        []step
	Stakeholders []stakeholder
}

var steps = []step{
	{1, "Register Your Household", "Sign up and link your address to start tracking your segregation efforts."},
	{2, "Segregate & Report", "Properly segregate waste and log your daily disposal activities."},
	{3, "Collector Validation", "Waste collectors verify segregation quality during pickup."},
	{4, "Track & Improve", "Monitor your scores, compare with neighbors, and improve over time."},
}

var stakeholders = []stakeholder{
	{"🏠", "Households", "Track segregation scores, report issues, and earn recognition for good practices."},
	{"🚛", "Waste Collectors", "Validate segregation quality, report violations, and optimize collection routes."},
	{"🏛️", "Municipal Authorities", "Access real-time dashboards, analytics, and ward-level performance data."},
}

type Handler struct {
	Log *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

func (h *Handler) ServeAbout(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		BaseVM: viewdata.NewBaseVM(r, "About",
			"Learn about the WasteWise initiative for community-driven municipal waste management.", "/"),
		Steps:        steps,
		Stakeholders: stakeholders,
	}

	templates.Render(w, r, "about", data)
}
