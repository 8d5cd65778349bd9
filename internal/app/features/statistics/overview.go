// internal/app/features/statistics/overview.go
package statistics

import (
	"net/http"

	"github.com/dalemusser/wastewise/internal/app/system/badges"
	"github.com/dalemusser/wastewise/internal/app/system/format"
	"github.com/dalemusser/wastewise/internal/app/system/timeouts"
	"github.com/dalemusser/wastewise/internal/app/system/viewdata"
	"github.com/dalemusser/wastewise/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
)

type overviewCard struct {
	Label     string
	Value     string
	Highlight bool
}

type monthBar struct {
	Month  string
	Rate   int
	Height int
}

type wardTrendRow struct {
	Ward       string
	Households string
	Score      int
	ScoreClass string
	BarClass   string
	BarWidth   int
	TrendLabel string
	TrendClass string
}

type overviewData struct {
	viewdata.BaseVM
	SubNav      []viewdata.NavItem
	Refresh     string
	LastUpdated string
	Cards       []overviewCard
	Months      []monthBar
	Wards       []wardTrendRow
}

func buildOverview(st models.WardStatistics) overviewData {
	o := st.Overall
	data := overviewData{
		LastUpdated: format.Timestamp(st.LastUpdated),
		Cards: []overviewCard{
			{Label: "Total Households", Value: format.Int(o.TotalHouseholds)},
			{Label: "Participating", Value: format.Int(o.ParticipatingHouseholds)},
			{Label: "Avg Segregation", Value: format.Percent(o.AverageSegregationRate), Highlight: true},
			{Label: "Wet Waste", Value: o.WetWasteCollected},
			{Label: "Dry Recycled", Value: o.DryWasteRecycled},
			{Label: "Issues Resolved", Value: format.Int(o.IssuesResolved)},
		},
		Months: make([]monthBar, 0, len(st.MonthlyTrend)),
		Wards:  make([]wardTrendRow, 0, len(st.Wards)),
	}
	for _, m := range st.MonthlyTrend {
		data.Months = append(data.Months, monthBar{Month: m.Month, Rate: m.Rate, Height: badges.Clamp(m.Rate)})
	}
	for _, w := range st.Wards {
		label, class := badges.Trend(w.Trend, w.Change)
		data.Wards = append(data.Wards, wardTrendRow{
			Ward:       w.Ward,
			Households: format.Int(w.Households),
			Score:      w.Score,
			ScoreClass: badges.ScoreText(w.Score),
			BarClass:   badges.ScoreBar(w.Score),
			BarWidth:   badges.Clamp(w.Score),
			TrendLabel: label,
			TrendClass: class,
		})
	}
	return data
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /statistics – ward overview                                             |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeOverview(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Load(), h.Log, "load ward statistics")
	defer cancel()

	st, err := h.Source.WardStatistics(ctx)
	if err != nil {
		h.fail(w, r, "ward statistics", err)
		return
	}

	data := buildOverview(st)
	data.BaseVM = viewdata.NewBaseVM(r, "Ward Statistics", "Ward-level waste segregation statistics and trends", "/")
	data.SubNav = subNav(r.URL.Path)
	data.Refresh = every(h.Cadence.Statistics)

	templates.Render(w, r, "statistics_overview", data)
}
