// internal/app/features/statistics/handler.go
package statistics

import (
	"fmt"
	"net/http"
	"time"

	"github.com/dalemusser/wastewise/internal/app/store/wastedata"
	"github.com/dalemusser/wastewise/internal/app/system/boundary"
	"github.com/dalemusser/wastewise/internal/app/system/viewdata"
	"go.uber.org/zap"
)

// Cadence is how often each statistics page is regenerated.
type Cadence struct {
	Statistics  time.Duration
	Leaderboard time.Duration
	Events      time.Duration
}

// DefaultCadence matches the published refresh schedule.
var DefaultCadence = Cadence{
	Statistics:  5 * time.Minute,
	Leaderboard: 10 * time.Minute,
	Events:      time.Hour,
}

type Handler struct {
	Source  wastedata.Source
	Cadence Cadence
	Log     *zap.Logger
}

func NewHandler(src wastedata.Source, cadence Cadence, logger *zap.Logger) *Handler {
	return &Handler{Source: src, Cadence: cadence, Log: logger}
}

// fail hands a loader error to the route boundary; the fault is not cached.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, what string, err error) {
	boundary.Fail(w, r, fmt.Errorf("load %s: %w", what, err))
}

// subNav is the Overview / Leaderboard / Events strip.
func subNav(path string) []viewdata.NavItem {
	items := []viewdata.NavItem{
		{Label: "Overview", Href: "/statistics"},
		{Label: "Leaderboard", Href: "/statistics/leaderboard"},
		{Label: "Events", Href: "/statistics/events"},
	}
	for i := range items {
		items[i].Active = items[i].Href == path
	}
	return items
}

// every renders a refresh interval for page subtitles: "every 5 minutes",
// "every hour", "every 90 seconds".
func every(d time.Duration) string {
	switch {
	case d <= 0:
		return "on every request"
	case d%time.Hour == 0:
		return "every " + plural(int(d/time.Hour), "hour")
	case d%time.Minute == 0:
		return "every " + plural(int(d/time.Minute), "minute")
	default:
		return "every " + plural(int(d/time.Second), "second")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return unit
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
