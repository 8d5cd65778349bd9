package badges_test

import (
	"testing"
	"time"

	"github.com/dalemusser/wastewise/internal/app/store/wastedata"
	"github.com/dalemusser/wastewise/internal/app/system/badges"
	"github.com/dalemusser/wastewise/internal/domain/models"
)

func TestWasteType(t *testing.T) {
	cases := map[string]string{
		models.WasteWet:       "bg-green-100 text-green-800",
		models.WasteDry:       "bg-blue-100 text-blue-800",
		models.WasteHazardous: "bg-red-100 text-red-800",
		"E-Waste":             "bg-red-100 text-red-800",
	}
	for in, want := range cases {
		if got := badges.WasteType(in); got != want {
			t.Errorf("WasteType(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestStatus_DefaultsToOpen(t *testing.T) {
	if badges.Status("archived") != badges.Status(models.StatusOpen) {
		t.Error("unmapped status should use the open style")
	}
	if badges.Status(models.StatusResolved) == badges.Status(models.StatusOpen) {
		t.Error("resolved should differ from open")
	}
}

func TestStatusLabel(t *testing.T) {
	cases := map[string]string{
		"in-progress":  "in progress",
		"under-review": "under review",
		"a-b-c":        "a b-c",
		"open":         "open",
	}
	for in, want := range cases {
		if got := badges.StatusLabel(in); got != want {
			t.Errorf("StatusLabel(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestEventType_DefaultsToAwareness(t *testing.T) {
	if badges.EventType("festival") != badges.EventType(models.EventAwareness) {
		t.Error("unmapped event type should use the awareness style")
	}
	if badges.EventType(models.EventCleanup) != "bg-orange-100 text-orange-800" {
		t.Errorf("cleanup: got %q", badges.EventType(models.EventCleanup))
	}
}

func TestScoreTiers(t *testing.T) {
	cases := []struct {
		score int
		bar   string
	}{
		{100, "bg-green-500"},
		{85, "bg-green-500"},
		{84, "bg-yellow-500"},
		{70, "bg-yellow-500"},
		{69, "bg-red-500"},
		{0, "bg-red-500"},
	}
	for _, tc := range cases {
		if got := badges.ScoreBar(tc.score); got != tc.bar {
			t.Errorf("ScoreBar(%d) = %q, want %q", tc.score, got, tc.bar)
		}
	}
}

func TestMedal(t *testing.T) {
	if badges.Medal(1) != "🥇" || badges.Medal(2) != "🥈" || badges.Medal(3) != "🥉" || badges.Medal(7) != "🥉" {
		t.Error("unexpected medal mapping")
	}
}

func TestTrend(t *testing.T) {
	cases := []struct {
		trend  string
		change int
		label  string
	}{
		{models.TrendUp, 3, "↑ +3%"},
		{models.TrendDown, -4, "↓ -4%"},
		{models.TrendStable, 0, "→ No change"},
		{"", 9, "→ No change"},
	}
	for _, tc := range cases {
		if got, _ := badges.Trend(tc.trend, tc.change); got != tc.label {
			t.Errorf("Trend(%q, %d) = %q, want %q", tc.trend, tc.change, got, tc.label)
		}
	}
}

func TestClamp(t *testing.T) {
	if badges.Clamp(-5) != 0 || badges.Clamp(150) != 100 || badges.Clamp(38) != 38 {
		t.Error("Clamp out of range")
	}
}

// Every enum value in the sample data maps to its own style rather than
// falling through to a default.
func TestSampleDataHasStyles(t *testing.T) {
	d := wastedata.SampleData(time.Now())

	for _, r := range d.Reports {
		if r.Status != models.StatusOpen && badges.Status(r.Status) == badges.Status(models.StatusOpen) {
			t.Errorf("report status %q has no style", r.Status)
		}
	}
	for _, c := range d.CommunityIssues {
		if badges.Status(c.Status) == badges.Status(models.StatusOpen) {
			t.Errorf("community status %q has no style", c.Status)
		}
	}
	for _, e := range d.Events {
		if e.Type != models.EventAwareness && badges.EventType(e.Type) == badges.EventType(models.EventAwareness) {
			t.Errorf("event type %q has no style", e.Type)
		}
	}
	for _, e := range d.PastEvents {
		if e.Type != models.EventAwareness && badges.EventType(e.Type) == badges.EventType(models.EventAwareness) {
			t.Errorf("past event type %q has no style", e.Type)
		}
	}
	for _, w := range d.WardPerformance {
		if w.Status != models.WardNeedsAttention && badges.WardStatus(w.Status) == badges.WardStatus(models.WardNeedsAttention) {
			t.Errorf("ward status %q has no style", w.Status)
		}
	}
	for _, i := range d.Issues {
		if i.Priority != models.PriorityLow && badges.Priority(i.Priority) == badges.Priority(models.PriorityLow) {
			t.Errorf("priority %q has no style", i.Priority)
		}
	}
}

func TestWardBar(t *testing.T) {
	cases := map[string]string{
		models.WardExcellent:      "bg-green-500",
		models.WardGood:           "bg-blue-500",
		models.WardAverage:        "bg-yellow-500",
		models.WardNeedsAttention: "bg-red-500",
		"":                        "bg-red-500",
	}
	for status, want := range cases {
		if got := badges.WardBar(status); got != want {
			t.Errorf("WardBar(%q) = %q, want %q", status, got, want)
		}
	}
}
