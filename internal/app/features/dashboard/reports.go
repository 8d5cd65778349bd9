// internal/app/features/dashboard/reports.go
package dashboard

import (
	"context"
	"net/http"

	"github.com/dalemusser/wastewise/internal/app/system/badges"
	"github.com/dalemusser/wastewise/internal/app/system/timeouts"
	"github.com/dalemusser/wastewise/internal/app/system/viewdata"
	"github.com/dalemusser/wastewise/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"golang.org/x/sync/errgroup"
)

type reportRow struct {
	ID          string
	Title       string
	Type        string
	CreatedAt   string
	ResolvedAt  string
	StatusLabel string
	StatusClass string
}

type communityRow struct {
	Title       string
	Ward        string
	ReportedBy  string
	Upvotes     int
	StatusLabel string
	StatusClass string
}

type reportsData struct {
	viewdata.BaseVM
	SubNav    []viewdata.NavItem
	Ward      string
	Reports   []reportRow
	Community []communityRow
}

func (h *Handler) loadReports(ctx context.Context) ([]models.Report, []models.CommunityIssue, error) {
	hid, ward := h.Subjects.HouseholdID, h.Subjects.Ward

	var (
		reports   []models.Report
		community []models.CommunityIssue
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		v, err := h.Source.UserReports(gctx, hid)
		reports = v
		return lookup("reports", hid, err)
	})
	g.Go(func() error {
		v, err := h.Source.CommunityIssues(gctx, ward)
		community = v
		return lookup("community issues", ward, err)
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return reports, community, nil
}

func buildReports(reports []models.Report, community []models.CommunityIssue) reportsData {
	data := reportsData{
		Reports:   make([]reportRow, 0, len(reports)),
		Community: make([]communityRow, 0, len(community)),
	}
	for _, rep := range reports {
		row := reportRow{
			ID:          rep.ID,
			Title:       rep.Title,
			Type:        rep.Type,
			CreatedAt:   rep.CreatedAt,
			StatusLabel: badges.StatusLabel(rep.Status),
			StatusClass: badges.Status(rep.Status),
		}
		if rep.ResolvedAt != nil {
			row.ResolvedAt = *rep.ResolvedAt
		}
		data.Reports = append(data.Reports, row)
	}
	for _, ci := range community {
		data.Community = append(data.Community, communityRow{
			Title:       ci.Title,
			Ward:        ci.Ward,
			ReportedBy:  ci.ReportedBy,
			Upvotes:     ci.Upvotes,
			StatusLabel: badges.StatusLabel(ci.Status),
			StatusClass: badges.Status(ci.Status),
		})
	}
	return data
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /dashboard/reports                                                      |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeReports(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Load(), h.Log, "load reports")
	defer cancel()

	reports, community, err := h.loadReports(ctx)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	data := buildReports(reports, community)
	data.BaseVM = viewdata.NewBaseVM(r, "Issues & Reports", "Track your reports and community issues", "/dashboard")
	data.SubNav = subNav(r.URL.Path)
	data.Ward = h.Subjects.Ward

	templates.Render(w, r, "dashboard_reports", data)
}
