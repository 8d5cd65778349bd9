// Package badges maps domain enum values to the CSS classes and labels the
// templates use. Every mapping has a default so an unknown value still
// renders with a sensible style.
package badges

import (
	"fmt"
	"strings"

	"github.com/dalemusser/wastewise/internal/domain/models"
)

// Style is a pill or card colour scheme.
type Style struct {
	Class string // background + text classes
}

const (
	green  = "bg-green-100 text-green-800"
	blue   = "bg-blue-100 text-blue-800"
	red    = "bg-red-100 text-red-800"
	yellow = "bg-yellow-100 text-yellow-800"
	purple = "bg-purple-100 text-purple-800"
	orange = "bg-orange-100 text-orange-800"
	zinc   = "bg-zinc-100 text-zinc-800"
)

// WasteType returns the pill classes for a waste type. Anything other than
// wet or dry is treated as hazardous.
func WasteType(t string) string {
	switch t {
	case models.WasteWet:
		return green
	case models.WasteDry:
		return blue
	default:
		return red
	}
}

var statusClasses = map[string]string{
	models.StatusOpen:         blue,
	models.StatusInProgress:   yellow,
	models.StatusResolved:     green,
	models.StatusUnderReview:  purple,
	models.StatusAcknowledged: zinc,
}

// Status returns the pill classes for a report or community issue status.
// Unknown statuses use the open style.
func Status(s string) string {
	if c, ok := statusClasses[s]; ok {
		return c
	}
	return statusClasses[models.StatusOpen]
}

// StatusLabel turns "in-progress" into "in progress". Only the first dash
// is replaced.
func StatusLabel(s string) string {
	return strings.Replace(s, "-", " ", 1)
}

// Priority returns the pill classes for an issue priority.
func Priority(p string) string {
	switch p {
	case models.PriorityHigh:
		return red
	case models.PriorityMedium:
		return yellow
	default:
		return zinc
	}
}

// WardStatus returns the pill classes for a ward status label.
func WardStatus(s string) string {
	switch s {
	case models.WardExcellent:
		return green
	case models.WardGood:
		return blue
	case models.WardAverage:
		return yellow
	default:
		return red
	}
}

// WardBar returns the performance bar colour for a ward status label.
func WardBar(s string) string {
	switch s {
	case models.WardExcellent:
		return "bg-green-500"
	case models.WardGood:
		return "bg-blue-500"
	case models.WardAverage:
		return "bg-yellow-500"
	default:
		return "bg-red-500"
	}
}

// ScoreBar returns the progress bar colour for a 0-100 score.
func ScoreBar(score int) string {
	switch {
	case score >= 85:
		return "bg-green-500"
	case score >= 70:
		return "bg-yellow-500"
	default:
		return "bg-red-500"
	}
}

// ScoreText returns the text colour for a 0-100 score.
func ScoreText(score int) string {
	switch {
	case score >= 85:
		return "text-green-600"
	case score >= 70:
		return "text-yellow-600"
	default:
		return "text-red-600"
	}
}

var eventClasses = map[string]string{
	models.EventAwareness:  blue,
	models.EventCollection: green,
	models.EventWorkshop:   purple,
	models.EventCleanup:    orange,
}

// EventType returns the pill classes for an event type. Unknown types use
// the awareness style.
func EventType(t string) string {
	if c, ok := eventClasses[t]; ok {
		return c
	}
	return eventClasses[models.EventAwareness]
}

// Notification returns the banner classes for a notification type.
func Notification(t string) string {
	if t == models.NotificationSuccess {
		return "bg-green-50 border-green-200 text-green-800"
	}
	return "bg-blue-50 border-blue-200 text-blue-800"
}

// RankCircle returns the circle classes for a ward leaderboard rank.
func RankCircle(rank int) string {
	switch rank {
	case 1:
		return "bg-yellow-500 text-white"
	case 2:
		return "bg-zinc-300 text-zinc-700"
	case 3:
		return "bg-orange-400 text-white"
	default:
		return "bg-zinc-100 text-zinc-600 dark:bg-zinc-700 dark:text-zinc-300"
	}
}

// Medal returns the collector leaderboard medal for rank.
func Medal(rank int) string {
	switch rank {
	case 1:
		return "🥇"
	case 2:
		return "🥈"
	default:
		return "🥉"
	}
}

// Trend returns the label and text colour for a ward trend.
func Trend(trend string, change int) (label, class string) {
	switch trend {
	case models.TrendUp:
		return fmt.Sprintf("↑ +%d%%", change), "text-green-600"
	case models.TrendDown:
		return fmt.Sprintf("↓ %d%%", change), "text-red-600"
	default:
		return "→ No change", "text-zinc-500"
	}
}

// Clamp bounds a percentage to [0, 100] for progress bar widths.
func Clamp(pct int) int {
	switch {
	case pct < 0:
		return 0
	case pct > 100:
		return 100
	default:
		return pct
	}
}
