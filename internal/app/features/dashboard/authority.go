// internal/app/features/dashboard/authority.go
package dashboard

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/dalemusser/wastewise/internal/app/system/badges"
	"github.com/dalemusser/wastewise/internal/app/system/format"
	"github.com/dalemusser/wastewise/internal/app/system/timeouts"
	"github.com/dalemusser/wastewise/internal/app/system/viewdata"
	"github.com/dalemusser/wastewise/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"golang.org/x/sync/errgroup"
)

type statCard struct {
	Label     string
	Value     string
	Highlight bool
	Warning   bool
}

type wardRow struct {
	Ward     string
	Score    int
	Status   string
	BarWidth int
	BarClass string
}

type issueRow struct {
	Type          string
	Ward          string
	Time          string
	Priority      string
	PriorityClass string
}

type authorityData struct {
	viewdata.BaseVM
	Jurisdiction string
	LastUpdated  string
	Stats        []statCard
	Wards        []wardRow
	Issues       []issueRow
}

// authoritySnapshot is everything the authority loaders return.
type authoritySnapshot struct {
	Officer models.AuthorityOfficer
	Stats   models.AuthorityStats
	Wards   []models.WardPerformance
	Issues  []models.Issue
}

func (h *Handler) loadAuthority(ctx context.Context) (authoritySnapshot, error) {
	id := h.Subjects.OfficerID

	var snap authoritySnapshot
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		v, err := h.Source.Officer(gctx, id)
		snap.Officer = v
		return lookup("officer", id, err)
	})
	g.Go(func() error {
		v, err := h.Source.LiveStats(gctx, id)
		snap.Stats = v
		return lookup("live stats", id, err)
	})
	g.Go(func() error {
		v, err := h.Source.WardPerformance(gctx)
		snap.Wards = v
		return lookup("ward performance", "", err)
	})
	g.Go(func() error {
		v, err := h.Source.RecentIssues(gctx)
		snap.Issues = v
		return lookup("recent issues", "", err)
	})
	if err := g.Wait(); err != nil {
		return authoritySnapshot{}, err
	}
	return snap, nil
}

func buildAuthority(snap authoritySnapshot, now time.Time) authorityData {
	st := snap.Stats
	data := authorityData{
		Jurisdiction: snap.Officer.Jurisdiction,
		LastUpdated:  format.ClockTime(now),
		Stats: []statCard{
			{Label: "Total Households", Value: format.Int(st.TotalHouseholds)},
			{Label: "Active Collectors", Value: strconv.Itoa(st.ActiveCollectors)},
			{Label: "Today's Collections", Value: format.Int(st.TodayCollections)},
			{Label: "Avg Segregation", Value: format.Percent(st.AverageSegregationRate), Highlight: true},
			{Label: "Open Issues", Value: strconv.Itoa(st.OpenIssues), Warning: true},
			{Label: "Resolved Today", Value: strconv.Itoa(st.ResolvedToday)},
		},
		Wards:  make([]wardRow, 0, len(snap.Wards)),
		Issues: make([]issueRow, 0, len(snap.Issues)),
	}

	for _, wp := range snap.Wards {
		status := wp.EffectiveStatus()
		data.Wards = append(data.Wards, wardRow{
			Ward:     wp.Ward,
			Score:    wp.Score,
			Status:   status,
			BarWidth: badges.Clamp(wp.Score),
			BarClass: badges.WardBar(status),
		})
	}
	for _, is := range snap.Issues {
		data.Issues = append(data.Issues, issueRow{
			Type:          is.Type,
			Ward:          is.Ward,
			Time:          is.ReportedAgo,
			Priority:      is.Priority,
			PriorityClass: badges.Priority(is.Priority),
		})
	}
	return data
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /dashboard/authority                                                    |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeAuthority(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Load(), h.Log, "load authority dashboard")
	defer cancel()

	snap, err := h.loadAuthority(ctx)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	data := buildAuthority(snap, h.Now())
	data.BaseVM = viewdata.NewBaseVM(r, "Authority Dashboard", "Municipal waste management overview", "/dashboard")

	templates.Render(w, r, "dashboard_authority", data)
}
