// internal/app/features/statistics/leaderboard.go
package statistics

import (
	"cmp"
	"net/http"
	"slices"

	"github.com/dalemusser/wastewise/internal/app/system/badges"
	"github.com/dalemusser/wastewise/internal/app/system/format"
	"github.com/dalemusser/wastewise/internal/app/system/timeouts"
	"github.com/dalemusser/wastewise/internal/app/system/viewdata"
	"github.com/dalemusser/wastewise/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
)

type householdRow struct {
	Rank   int
	Badge  string
	Name   string
	Ward   string
	Score  int
	Streak int
	Podium bool
}

type wardLeaderRow struct {
	Rank        int
	RankClass   string
	Ward        string
	Households  string
	Score       int
	Improvement int
}

type collectorCard struct {
	Medal       string
	Name        string
	Validations string
	Accuracy    string
}

type leaderboardData struct {
	viewdata.BaseVM
	SubNav      []viewdata.NavItem
	Refresh     string
	LastUpdated string
	Households  []householdRow
	Wards       []wardLeaderRow
	Collectors  []collectorCard
}

// buildLeaderboard orders every ranking by rank ascending. Sources already
// return them that way; the sort keeps a misordered source from showing.
func buildLeaderboard(lb models.Leaderboard) leaderboardData {
	hs := slices.Clone(lb.Households)
	slices.SortStableFunc(hs, func(a, b models.HouseholdLeader) int { return cmp.Compare(a.Rank, b.Rank) })
	ws := slices.Clone(lb.Wards)
	slices.SortStableFunc(ws, func(a, b models.WardLeader) int { return cmp.Compare(a.Rank, b.Rank) })
	cs := slices.Clone(lb.Collectors)
	slices.SortStableFunc(cs, func(a, b models.CollectorLeader) int { return cmp.Compare(a.Rank, b.Rank) })

	data := leaderboardData{
		LastUpdated: format.Timestamp(lb.LastUpdated),
		Households:  make([]householdRow, 0, len(hs)),
		Wards:       make([]wardLeaderRow, 0, len(ws)),
		Collectors:  make([]collectorCard, 0, len(cs)),
	}
	for _, h := range hs {
		data.Households = append(data.Households, householdRow{
			Rank:   h.Rank,
			Badge:  h.Badge,
			Name:   h.Name,
			Ward:   h.Ward,
			Score:  h.Score,
			Streak: h.Streak,
			Podium: h.Rank <= 3,
		})
	}
	for _, w := range ws {
		data.Wards = append(data.Wards, wardLeaderRow{
			Rank:        w.Rank,
			RankClass:   badges.RankCircle(w.Rank),
			Ward:        w.Ward,
			Households:  format.Int(w.Households),
			Score:       w.Score,
			Improvement: w.Improvement,
		})
	}
	for _, c := range cs {
		data.Collectors = append(data.Collectors, collectorCard{
			Medal:       badges.Medal(c.Rank),
			Name:        c.Name,
			Validations: format.Int(c.Validations),
			Accuracy:    format.Percent(c.Accuracy),
		})
	}
	return data
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /statistics/leaderboard                                                 |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Load(), h.Log, "load leaderboard")
	defer cancel()

	lb, err := h.Source.Leaderboard(ctx)
	if err != nil {
		h.fail(w, r, "leaderboard", err)
		return
	}

	data := buildLeaderboard(lb)
	data.BaseVM = viewdata.NewBaseVM(r, "Community Leaderboard", "Top households, wards and collectors for waste segregation", "/statistics")
	data.SubNav = subNav(r.URL.Path)
	data.Refresh = every(h.Cadence.Leaderboard)

	templates.Render(w, r, "statistics_leaderboard", data)
}
