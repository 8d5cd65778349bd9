// internal/app/features/dashboard/household.go
package dashboard

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/dalemusser/wastewise/internal/app/system/badges"
	"github.com/dalemusser/wastewise/internal/app/system/format"
	"github.com/dalemusser/wastewise/internal/app/system/timeouts"
	"github.com/dalemusser/wastewise/internal/app/system/viewdata"
	"github.com/dalemusser/wastewise/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"golang.org/x/sync/errgroup"
)

type notificationVM struct {
	Message string
	Class   string
}

type scoreCard struct {
	Title     string
	Value     string
	Subtitle  string
	Highlight bool
}

type activityRow struct {
	Date      string
	WasteType string
	TypeClass string
	Validated bool
}

type householdData struct {
	viewdata.BaseVM
	SubNav        []viewdata.NavItem
	HouseholdID   string
	Address       string
	Notifications []notificationVM
	Cards         []scoreCard
	Activity      []activityRow
}

// loadHousehold fetches the household summary and its notifications
// concurrently.
func (h *Handler) loadHousehold(ctx context.Context) (models.Household, []models.Notification, error) {
	id := h.Subjects.HouseholdID

	var (
		hh     models.Household
		notifs []models.Notification
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		v, err := h.Source.Household(gctx, id)
		hh = v
		return lookup("household", id, err)
	})
	g.Go(func() error {
		v, err := h.Source.Notifications(gctx, id)
		notifs = v
		return lookup("notifications", id, err)
	})
	if err := g.Wait(); err != nil {
		return models.Household{}, nil, err
	}
	return hh, notifs, nil
}

func buildHousehold(hh models.Household, notifs []models.Notification) householdData {
	data := householdData{
		HouseholdID:   hh.ID,
		Address:       hh.Address,
		Notifications: make([]notificationVM, 0, len(notifs)),
		Activity:      make([]activityRow, 0, len(hh.RecentActivity)),
	}
	for _, n := range notifs {
		data.Notifications = append(data.Notifications, notificationVM{
			Message: n.Message,
			Class:   badges.Notification(n.Type),
		})
	}

	data.Cards = []scoreCard{
		{
			Title:     "Segregation Score",
			Value:     fmt.Sprintf("%d%%", hh.SegregationScore),
			Subtitle:  "Based on collector validations",
			Highlight: true,
		},
		{Title: "Total Logs", Value: strconv.Itoa(hh.TotalLogs), Subtitle: "Waste disposals recorded"},
		{Title: "Current Streak", Value: fmt.Sprintf("%d days", hh.CurrentStreak), Subtitle: "Consecutive proper segregation"},
		{Title: "Last Collection", Value: format.ShortDate(hh.LastCollection), Subtitle: "Most recent pickup"},
	}

	for _, a := range hh.RecentActivity {
		data.Activity = append(data.Activity, activityRow{
			Date:      a.Date,
			WasteType: a.WasteType,
			TypeClass: badges.WasteType(a.WasteType),
			Validated: a.Validated,
		})
	}
	return data
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /dashboard/household                                                    |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeHousehold(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Load(), h.Log, "load household dashboard")
	defer cancel()

	hh, notifs, err := h.loadHousehold(ctx)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	data := buildHousehold(hh, notifs)
	data.BaseVM = viewdata.NewBaseVM(r, "Household Dashboard", "Your household's waste segregation performance", "/dashboard")
	data.SubNav = subNav(r.URL.Path)

	templates.Render(w, r, "dashboard_household", data)
}
