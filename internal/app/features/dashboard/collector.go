// internal/app/features/dashboard/collector.go
package dashboard

import (
	"context"
	"net/http"
	"time"

	"github.com/dalemusser/wastewise/internal/app/system/badges"
	"github.com/dalemusser/wastewise/internal/app/system/format"
	"github.com/dalemusser/wastewise/internal/app/system/timeouts"
	"github.com/dalemusser/wastewise/internal/app/system/viewdata"
	"github.com/dalemusser/wastewise/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"golang.org/x/sync/errgroup"
)

type validationRow struct {
	Address       string
	HouseholdID   string
	ScheduledTime string
	WasteType     string
	TypeClass     string
}

type collectorData struct {
	viewdata.BaseVM
	Name          string
	Ward          string
	Today         string
	Completion    int
	ProgressWidth int
	Visited       int
	Assigned      int
	Segregated    int
	Issues        int
	Validations   []validationRow
}

func (h *Handler) loadCollector(ctx context.Context) (models.Collector, []models.PendingValidation, error) {
	id := h.Subjects.CollectorID

	var (
		col  models.Collector
		pend []models.PendingValidation
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		v, err := h.Source.Collector(gctx, id)
		col = v
		return lookup("collector", id, err)
	})
	g.Go(func() error {
		v, err := h.Source.PendingValidations(gctx, id)
		pend = v
		return lookup("pending validations", id, err)
	})
	if err := g.Wait(); err != nil {
		return models.Collector{}, nil, err
	}
	return col, pend, nil
}

func buildCollector(col models.Collector, pend []models.PendingValidation, now time.Time) collectorData {
	s := col.TodayStats
	rate := s.CompletionRate()

	data := collectorData{
		Name:          col.Name,
		Ward:          col.AssignedWard,
		Today:         format.LongDate(now),
		Completion:    rate,
		ProgressWidth: badges.Clamp(rate),
		Visited:       s.HouseholdsVisited,
		Assigned:      s.TotalAssigned,
		Segregated:    s.ProperlySegregated,
		Issues:        s.Issues,
		Validations:   make([]validationRow, 0, len(pend)),
	}
	for _, p := range pend {
		data.Validations = append(data.Validations, validationRow{
			Address:       p.Address,
			HouseholdID:   p.HouseholdID,
			ScheduledTime: p.ScheduledTime,
			WasteType:     p.WasteType,
			TypeClass:     badges.WasteType(p.WasteType),
		})
	}
	return data
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /dashboard/collector                                                    |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeCollector(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Load(), h.Log, "load collector dashboard")
	defer cancel()

	col, pend, err := h.loadCollector(ctx)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	data := buildCollector(col, pend, h.Now())
	data.BaseVM = viewdata.NewBaseVM(r, "Collector Dashboard", "Today's collection route and pending validations", "/dashboard")

	templates.Render(w, r, "dashboard_collector", data)
}
