// internal/app/features/dashboard/hub.go
package dashboard

import (
	"net/http"

	"github.com/dalemusser/wastewise/internal/app/system/prefs"
	"github.com/dalemusser/wastewise/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
)

type roleCard struct {
	Role        string
	Emoji       string
	Title       string
	Description string
	Href        string
	HoverClass  string
	LastUsed    bool
}

type quickLink struct {
	Href  string
	Label string
	Emoji string
}

type hubData struct {
	viewdata.BaseVM
	Roles      []roleCard
	QuickLinks []quickLink
	Continue   *roleCard
}

var roleCards = []roleCard{
	{
		Role:        prefs.RoleHousehold,
		Emoji:       "🏠",
		Title:       "Household",
		Description: "Track your segregation score, log waste disposal, and view your household's performance.",
		Href:        "/dashboard/household",
		HoverClass:  "hover:border-green-500 hover:bg-green-50 dark:hover:bg-green-900/20",
	},
	{
		Role:        prefs.RoleCollector,
		Emoji:       "🚛",
		Title:       "Collector",
		Description: "Validate household segregation, manage your collection route, and report issues.",
		Href:        "/dashboard/collector",
		HoverClass:  "hover:border-blue-500 hover:bg-blue-50 dark:hover:bg-blue-900/20",
	},
	{
		Role:        prefs.RoleAuthority,
		Emoji:       "🏛️",
		Title:       "Authority",
		Description: "Access real-time analytics, ward performance, heatmaps, and issue management.",
		Href:        "/dashboard/authority",
		HoverClass:  "hover:border-purple-500 hover:bg-purple-50 dark:hover:bg-purple-900/20",
	},
}

var quickLinks = []quickLink{
	{Href: "/statistics", Label: "View Statistics", Emoji: "📊"},
	{Href: "/dashboard/reports", Label: "Report Issue", Emoji: "📝"},
	{Href: "/education", Label: "Learn About Segregation", Emoji: "📚"},
	{Href: "/statistics/leaderboard", Label: "Community Leaderboard", Emoji: "🏆"},
}

// buildRoleCards marks the card for lastRole. Continue points at it, or is
// nil on a first visit.
func buildRoleCards(lastRole string) ([]roleCard, *roleCard) {
	cards := make([]roleCard, len(roleCards))
	copy(cards, roleCards)
	var cont *roleCard
	for i := range cards {
		if cards[i].Role == lastRole {
			cards[i].LastUsed = true
			cont = &cards[i]
		}
	}
	return cards, cont
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /dashboard – role selection                                             |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeHub(w http.ResponseWriter, r *http.Request) {
	cards, cont := buildRoleCards(h.Prefs.LastRole(r))

	data := hubData{
		BaseVM:     viewdata.NewBaseVM(r, "Dashboard", "Access your waste segregation dashboard", "/"),
		Roles:      cards,
		QuickLinks: quickLinks,
		Continue:   cont,
	}

	templates.Render(w, r, "dashboard_hub", data)
}
