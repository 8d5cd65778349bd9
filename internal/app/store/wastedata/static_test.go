package wastedata_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dalemusser/wastewise/internal/app/store/wastedata"
	"github.com/dalemusser/wastewise/internal/domain/models"
)

var fixedNow = time.Date(2026, 1, 20, 8, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func TestStatic_Household(t *testing.T) {
	src := wastedata.NewStatic(clock)

	h, err := src.Household(context.Background(), wastedata.SampleHouseholdID)
	if err != nil {
		t.Fatalf("Household failed: %v", err)
	}
	if h.SegregationScore != 87 || h.TotalLogs != 156 || h.CurrentStreak != 12 {
		t.Errorf("unexpected counters: %+v", h)
	}
	if !h.LastCollection.Equal(fixedNow) {
		t.Errorf("LastCollection: got %v, want %v", h.LastCollection, fixedNow)
	}
	if len(h.RecentActivity) != 5 {
		t.Fatalf("RecentActivity: got %d entries, want 5", len(h.RecentActivity))
	}
	if h.RecentActivity[3].Validated {
		t.Errorf("2026-01-17 entry should be pending validation")
	}
}

func TestStatic_UnknownIDs(t *testing.T) {
	src := wastedata.NewStatic(clock)
	ctx := context.Background()

	if _, err := src.Household(ctx, "HH-0"); !errors.Is(err, wastedata.ErrNotFound) {
		t.Errorf("Household: got %v, want ErrNotFound", err)
	}
	if _, err := src.Collector(ctx, "COL-0"); !errors.Is(err, wastedata.ErrNotFound) {
		t.Errorf("Collector: got %v, want ErrNotFound", err)
	}
	if _, err := src.Officer(ctx, "AUTH-0"); !errors.Is(err, wastedata.ErrNotFound) {
		t.Errorf("Officer: got %v, want ErrNotFound", err)
	}
	if _, err := src.LiveStats(ctx, "AUTH-0"); !errors.Is(err, wastedata.ErrNotFound) {
		t.Errorf("LiveStats: got %v, want ErrNotFound", err)
	}

	// List lookups for an unknown subject are empty, not errors.
	notes, err := src.Notifications(ctx, "HH-0")
	if err != nil || len(notes) != 0 {
		t.Errorf("Notifications: got %v, %v; want empty", notes, err)
	}
	issues, err := src.CommunityIssues(ctx, "Ward 99")
	if err != nil || len(issues) != 0 {
		t.Errorf("CommunityIssues: got %v, %v; want empty", issues, err)
	}
}

func TestStatic_CollectorCompletionRate(t *testing.T) {
	src := wastedata.NewStatic(clock)

	c, err := src.Collector(context.Background(), wastedata.SampleCollectorID)
	if err != nil {
		t.Fatalf("Collector failed: %v", err)
	}
	if got := c.TodayStats.CompletionRate(); got != 38 {
		t.Errorf("CompletionRate: got %d, want 38", got)
	}

	vals, err := src.PendingValidations(context.Background(), c.ID)
	if err != nil {
		t.Fatalf("PendingValidations failed: %v", err)
	}
	if len(vals) != 4 {
		t.Fatalf("PendingValidations: got %d, want 4", len(vals))
	}
	for _, v := range vals {
		if v.Status != models.ValidationPending {
			t.Errorf("%s: status %q, want pending", v.ID, v.Status)
		}
	}
}

func TestStatic_LeaderboardSortedByRank(t *testing.T) {
	src := wastedata.NewStatic(clock)

	lb, err := src.Leaderboard(context.Background())
	if err != nil {
		t.Fatalf("Leaderboard failed: %v", err)
	}
	for i := 1; i < len(lb.Households); i++ {
		if lb.Households[i-1].Rank >= lb.Households[i].Rank {
			t.Errorf("households not sorted at %d", i)
		}
	}
	for i := 1; i < len(lb.Wards); i++ {
		if lb.Wards[i-1].Rank >= lb.Wards[i].Rank {
			t.Errorf("wards not sorted at %d", i)
		}
	}
	if lb.Households[0].Badge != "🥇" {
		t.Errorf("rank 1 badge: got %q", lb.Households[0].Badge)
	}
	if !lb.LastUpdated.Equal(fixedNow) {
		t.Errorf("LastUpdated: got %v", lb.LastUpdated)
	}
}

func TestStatic_ReturnsIndependentCopies(t *testing.T) {
	src := wastedata.NewStatic(clock)
	ctx := context.Background()

	a, _ := src.WardPerformance(ctx)
	a[0].Score = 0

	b, _ := src.WardPerformance(ctx)
	if b[0].Score != 92 {
		t.Errorf("mutation leaked between calls: got %d", b[0].Score)
	}
}

func TestStatic_WardStatusesAgreeWithScores(t *testing.T) {
	src := wastedata.NewStatic(clock)

	wards, err := src.WardPerformance(context.Background())
	if err != nil {
		t.Fatalf("WardPerformance failed: %v", err)
	}
	for _, w := range wards {
		if derived := models.WardStatusForScore(w.Score); derived != w.Status {
			t.Errorf("%s: supplied %q, derived %q", w.Ward, w.Status, derived)
		}
	}
}

func TestStatic_CanceledContext(t *testing.T) {
	src := wastedata.NewStatic(clock)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := src.Events(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Events: got %v, want context.Canceled", err)
	}
	if err := src.Ping(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Ping: got %v, want context.Canceled", err)
	}
}
