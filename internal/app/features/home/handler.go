// internal/app/features/home/handler.go
package home

import (
	"net/http"

	"github.com/dalemusser/wastewise/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// Handler serves the landing page. It has no data dependencies.
type Handler struct {
	Log *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

type featureCard struct {
	Icon        string
	Title       string
	Description string
	Href        string
}

type impactStat struct {
	Value string
	Label string
}

type pageData struct {
	viewdata.BaseVM
	Features []featureCard
	Impact   []impactStat
}

var features = []featureCard{
	{
		Icon:        "🏠",
		Title:       "Household Tracking",
		Description: "Monitor your segregation score and track your contribution to cleaner communities.",
		Href:        "/dashboard/household",
	},
	{
		Icon:        "📊",
		Title:       "Real-time Analytics",
		Description: "Access live reports, heatmaps, and performance metrics for your ward.",
		Href:        "/statistics",
	},
	{
		Icon:        "📝",
		Title:       "Issue Reporting",
		Description: "Report segregation issues and track resolution status in real-time.",
		Href:        "/dashboard/reports",
	},
}

var impact = []impactStat{
	{Value: "50,000+", Label: "Households Registered"},
	{Value: "85%", Label: "Average Segregation Rate"},
	{Value: "120+", Label: "Wards Covered"},
	{Value: "2,500+", Label: "Issues Resolved"},
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET / – landing                                                             |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeHome(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		BaseVM: viewdata.NewBaseVM(r, "",
			"Track, report, and improve municipal waste management through community-driven segregation.", "/"),
		Features: features,
		Impact:   impact,
	}

	templates.Render(w, r, "home", data)
}
