// internal/app/features/statistics/events.go
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

type eventCard struct {
	Title       string
	Date        string
	Time        string
	Location    string
	Description string
	Type        string
	TypeClass   string
}

type pastEventCard struct {
	Title          string
	Date           string
	Type           string
	TypeClass      string
	Participants   string
	WasteCollected string
	Schools        int
}

type eventsData struct {
	viewdata.BaseVM
	SubNav   []viewdata.NavItem
	Refresh  string
	Upcoming []eventCard
	Past     []pastEventCard
}

func buildEvents(ev models.EventListing) eventsData {
	data := eventsData{
		Upcoming: make([]eventCard, 0, len(ev.Upcoming)),
		Past:     make([]pastEventCard, 0, len(ev.Past)),
	}
	for _, e := range ev.Upcoming {
		data.Upcoming = append(data.Upcoming, eventCard{
			Title:       e.Title,
			Date:        format.CalendarDate(e.Date),
			Time:        e.Time,
			Location:    e.Location,
			Description: e.Description,
			Type:        e.Type,
			TypeClass:   badges.EventType(e.Type),
		})
	}
	for _, e := range ev.Past {
		data.Past = append(data.Past, pastEventCard{
			Title:          e.Title,
			Date:           format.CalendarDate(e.Date),
			Type:           e.Type,
			TypeClass:      badges.EventType(e.Type),
			Participants:   format.Int(e.Participants),
			WasteCollected: e.WasteCollected,
			Schools:        e.Schools,
		})
	}
	return data
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /statistics/events                                                      |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeEvents(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Load(), h.Log, "load events")
	defer cancel()

	ev, err := h.Source.Events(ctx)
	if err != nil {
		h.fail(w, r, "events", err)
		return
	}

	data := buildEvents(ev)
	data.BaseVM = viewdata.NewBaseVM(r, "Events & Awareness Drives", "Community programs to promote better waste management", "/statistics")
	data.SubNav = subNav(r.URL.Path)
	data.Refresh = every(h.Cadence.Events)

	templates.Render(w, r, "statistics_events", data)
}
