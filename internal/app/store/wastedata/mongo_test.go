package wastedata_test

import (
	"errors"
	"testing"

	"github.com/dalemusser/wastewise/internal/app/store/wastedata"
	"github.com/dalemusser/wastewise/internal/testutil"
	"github.com/google/go-cmp/cmp"
	"go.mongodb.org/mongo-driver/bson"
)

func TestMongo_MatchesStaticAfterSeed(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := wastedata.Seed(ctx, db, fixedNow, false); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}

	static := wastedata.NewStatic(clock)
	mongoSrc := wastedata.NewMongo(db, clock)

	wantH, _ := static.Household(ctx, wastedata.SampleHouseholdID)
	gotH, err := mongoSrc.Household(ctx, wastedata.SampleHouseholdID)
	if err != nil {
		t.Fatalf("Household failed: %v", err)
	}
	if diff := cmp.Diff(wantH, gotH); diff != "" {
		t.Errorf("Household mismatch (-want +got):\n%s", diff)
	}

	wantN, _ := static.Notifications(ctx, wastedata.SampleHouseholdID)
	gotN, err := mongoSrc.Notifications(ctx, wastedata.SampleHouseholdID)
	if err != nil {
		t.Fatalf("Notifications failed: %v", err)
	}
	if diff := cmp.Diff(wantN, gotN); diff != "" {
		t.Errorf("Notifications mismatch (-want +got):\n%s", diff)
	}

	wantV, _ := static.PendingValidations(ctx, wastedata.SampleCollectorID)
	gotV, err := mongoSrc.PendingValidations(ctx, wastedata.SampleCollectorID)
	if err != nil {
		t.Fatalf("PendingValidations failed: %v", err)
	}
	if diff := cmp.Diff(wantV, gotV); diff != "" {
		t.Errorf("PendingValidations mismatch (-want +got):\n%s", diff)
	}

	wantS, _ := static.LiveStats(ctx, wastedata.SampleOfficerID)
	gotS, err := mongoSrc.LiveStats(ctx, wastedata.SampleOfficerID)
	if err != nil {
		t.Fatalf("LiveStats failed: %v", err)
	}
	if diff := cmp.Diff(wantS, gotS); diff != "" {
		t.Errorf("LiveStats mismatch (-want +got):\n%s", diff)
	}

	wantW, _ := static.WardStatistics(ctx)
	gotW, err := mongoSrc.WardStatistics(ctx)
	if err != nil {
		t.Fatalf("WardStatistics failed: %v", err)
	}
	if diff := cmp.Diff(wantW, gotW); diff != "" {
		t.Errorf("WardStatistics mismatch (-want +got):\n%s", diff)
	}

	wantL, _ := static.Leaderboard(ctx)
	gotL, err := mongoSrc.Leaderboard(ctx)
	if err != nil {
		t.Fatalf("Leaderboard failed: %v", err)
	}
	if diff := cmp.Diff(wantL, gotL); diff != "" {
		t.Errorf("Leaderboard mismatch (-want +got):\n%s", diff)
	}

	wantR, _ := static.UserReports(ctx, wastedata.SampleHouseholdID)
	gotR, err := mongoSrc.UserReports(ctx, wastedata.SampleHouseholdID)
	if err != nil {
		t.Fatalf("UserReports failed: %v", err)
	}
	if diff := cmp.Diff(wantR, gotR); diff != "" {
		t.Errorf("UserReports mismatch (-want +got):\n%s", diff)
	}
}

func TestMongo_EventsOrdering(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := wastedata.Seed(ctx, db, fixedNow, false); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}

	listing, err := wastedata.NewMongo(db, clock).Events(ctx)
	if err != nil {
		t.Fatalf("Events failed: %v", err)
	}
	if len(listing.Upcoming) != 3 || listing.Upcoming[0].ID != "EVT-001" {
		t.Errorf("upcoming: got %+v", listing.Upcoming)
	}
	if len(listing.Past) != 2 || listing.Past[0].ID != "EVT-P01" {
		t.Errorf("past should be newest first: got %+v", listing.Past)
	}
}

func TestMongo_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	src := wastedata.NewMongo(db, clock)
	if _, err := src.Household(ctx, "HH-0"); !errors.Is(err, wastedata.ErrNotFound) {
		t.Errorf("Household: got %v, want ErrNotFound", err)
	}
	if _, err := src.WardStatistics(ctx); !errors.Is(err, wastedata.ErrNotFound) {
		t.Errorf("WardStatistics on empty db: got %v, want ErrNotFound", err)
	}
	if err := src.Ping(ctx); err != nil {
		t.Errorf("Ping: %v", err)
	}
}

func TestSeed_SkipsPopulatedCollections(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	fx := testutil.NewFixtures(t, db)

	first, err := wastedata.Seed(ctx, db, fixedNow, false)
	if err != nil {
		t.Fatalf("first Seed failed: %v", err)
	}
	if first.Inserted[wastedata.CollHouseholdLeaders] != 10 {
		t.Errorf("household leaders inserted: got %d, want 10", first.Inserted[wastedata.CollHouseholdLeaders])
	}

	second, err := wastedata.Seed(ctx, db, fixedNow, false)
	if err != nil {
		t.Fatalf("second Seed failed: %v", err)
	}
	if len(second.Inserted) != 0 {
		t.Errorf("second Seed inserted %v, want nothing", second.Inserted)
	}
	if len(second.Skipped) != len(wastedata.Collections) {
		t.Errorf("skipped %d collections, want %d", len(second.Skipped), len(wastedata.Collections))
	}
	if n := fx.Count(ctx, wastedata.CollWardTrends); n != 8 {
		t.Errorf("ward trends: got %d, want 8", n)
	}

	forced, err := wastedata.Seed(ctx, db, fixedNow, true)
	if err != nil {
		t.Fatalf("forced Seed failed: %v", err)
	}
	if forced.Inserted[wastedata.CollWardTrends] != 8 {
		t.Errorf("forced reseed of ward trends: got %d", forced.Inserted[wastedata.CollWardTrends])
	}
	if n := fx.Count(ctx, wastedata.CollWardTrends); n != 8 {
		t.Errorf("ward trends after forced reseed: got %d, want 8", n)
	}
}

func TestSeed_LeavesExistingDocuments(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	fx := testutil.NewFixtures(t, db)

	fx.Insert(ctx, wastedata.CollHouseholds, bson.M{"_id": "HH-00001", "address": "1 Existing Road", "ward": "Ward 2"})

	res, err := wastedata.Seed(ctx, db, fixedNow, false)
	if err != nil {
		t.Fatalf("Seed failed: %v", err)
	}
	if _, ok := res.Inserted[wastedata.CollHouseholds]; ok {
		t.Errorf("households should have been skipped")
	}
	if n := fx.Count(ctx, wastedata.CollHouseholds); n != 1 {
		t.Errorf("households: got %d, want 1", n)
	}

	src := wastedata.NewMongo(db, clock)
	if _, err := src.Household(ctx, wastedata.SampleHouseholdID); !errors.Is(err, wastedata.ErrNotFound) {
		t.Errorf("sample household should not exist, got %v", err)
	}
}
