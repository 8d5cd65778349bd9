// internal/app/store/wastedata/sample.go
package wastedata

import (
	"time"

	"github.com/dalemusser/wastewise/internal/domain/models"
)

// Identifiers of the sample subjects. They are also the configuration
// defaults for household_id, collector_id, officer_id and resident_ward.
const (
	SampleHouseholdID = "HH-12345"
	SampleCollectorID = "COL-789"
	SampleOfficerID   = "AUTH-001"
	SampleWard        = "Ward 15"
)

// Sample is the complete built-in data set. The static source serves it
// directly and Seed writes it into empty Mongo collections.
type Sample struct {
	Households         []models.Household
	Notifications      []models.Notification
	Collectors         []models.Collector
	PendingValidations []models.PendingValidation
	Officers           []models.AuthorityOfficer
	AuthorityStats     map[string]models.AuthorityStats // keyed by officer ID
	WardPerformance    []models.WardPerformance
	Issues             []models.Issue
	Reports            []models.Report
	CommunityIssues    []models.CommunityIssue
	Overall            models.OverallStats
	WardTrends         []models.WardTrend
	MonthlyTrend       []models.MonthlyRate
	HouseholdLeaders   []models.HouseholdLeader
	WardLeaders        []models.WardLeader
	CollectorLeaders   []models.CollectorLeader
	Events             []models.Event
	PastEvents         []models.PastEvent
}

// SampleData returns a fresh copy of the built-in data set. now stamps the
// household's last collection.
func SampleData(now time.Time) Sample {
	resolved := "2026-01-19"

	return Sample{
		Households: []models.Household{{
			ID:               SampleHouseholdID,
			Address:          "123 Green Street, Ward 15",
			Ward:             SampleWard,
			SegregationScore: 87,
			TotalLogs:        156,
			CurrentStreak:    12,
			LastCollection:   now,
			RecentActivity: []models.Activity{
				{Date: "2026-01-20", WasteType: models.WasteWet, Validated: true},
				{Date: "2026-01-19", WasteType: models.WasteDry, Validated: true},
				{Date: "2026-01-18", WasteType: models.WasteWet, Validated: true},
				{Date: "2026-01-17", WasteType: models.WasteDry, Validated: false},
				{Date: "2026-01-16", WasteType: models.WasteHazardous, Validated: true},
			},
		}},
		Notifications: []models.Notification{
			{ID: 1, HouseholdID: SampleHouseholdID, Message: "Collection scheduled for tomorrow 8 AM", Type: models.NotificationInfo},
			{ID: 2, HouseholdID: SampleHouseholdID, Message: "Great job! 12-day segregation streak!", Type: models.NotificationSuccess},
		},
		Collectors: []models.Collector{{
			ID:           SampleCollectorID,
			Name:         "Ravi Kumar",
			AssignedWard: SampleWard,
			TodayStats: models.TodayStats{
				HouseholdsVisited:  45,
				TotalAssigned:      120,
				ProperlySegregated: 38,
				Issues:             7,
			},
		}},
		PendingValidations: []models.PendingValidation{
			{ID: "V001", CollectorID: SampleCollectorID, HouseholdID: "HH-12345", Address: "123 Green Street", WasteType: models.WasteWet, ScheduledTime: "08:30 AM", Status: models.ValidationPending},
			{ID: "V002", CollectorID: SampleCollectorID, HouseholdID: "HH-12346", Address: "125 Green Street", WasteType: models.WasteDry, ScheduledTime: "08:45 AM", Status: models.ValidationPending},
			{ID: "V003", CollectorID: SampleCollectorID, HouseholdID: "HH-12347", Address: "127 Green Street", WasteType: models.WasteWet, ScheduledTime: "09:00 AM", Status: models.ValidationPending},
			{ID: "V004", CollectorID: SampleCollectorID, HouseholdID: "HH-12348", Address: "129 Green Street", WasteType: models.WasteHazardous, ScheduledTime: "09:15 AM", Status: models.ValidationPending},
		},
		Officers: []models.AuthorityOfficer{{
			ID:           SampleOfficerID,
			Name:         "Municipal Officer",
			Jurisdiction: "Zone A - Wards 1-25",
		}},
		AuthorityStats: map[string]models.AuthorityStats{
			SampleOfficerID: {
				TotalHouseholds:        52340,
				ActiveCollectors:       156,
				TodayCollections:       34521,
				AverageSegregationRate: 84.5,
				OpenIssues:             127,
				ResolvedToday:          45,
			},
		},
		WardPerformance: []models.WardPerformance{
			{Ward: "Ward 1", Score: 92, Households: 2100, Status: models.WardExcellent, Seq: 1},
			{Ward: "Ward 2", Score: 88, Households: 1850, Status: models.WardGood, Seq: 2},
			{Ward: "Ward 3", Score: 76, Households: 2300, Status: models.WardAverage, Seq: 3},
			{Ward: "Ward 4", Score: 65, Households: 1950, Status: models.WardNeedsAttention, Seq: 4},
			{Ward: "Ward 5", Score: 91, Households: 2050, Status: models.WardExcellent, Seq: 5},
			{Ward: "Ward 6", Score: 82, Households: 2200, Status: models.WardGood, Seq: 6},
		},
		Issues: []models.Issue{
			{ID: "ISS-001", Ward: "Ward 4", Type: "Mixed Waste", Priority: models.PriorityHigh, ReportedAgo: "10 min ago", Seq: 1},
			{ID: "ISS-002", Ward: "Ward 3", Type: "Missed Collection", Priority: models.PriorityMedium, ReportedAgo: "25 min ago", Seq: 2},
			{ID: "ISS-003", Ward: "Ward 4", Type: "Improper Disposal", Priority: models.PriorityHigh, ReportedAgo: "1 hour ago", Seq: 3},
			{ID: "ISS-004", Ward: "Ward 2", Type: "Container Overflow", Priority: models.PriorityLow, ReportedAgo: "2 hours ago", Seq: 4},
		},
		Reports: []models.Report{
			{ID: "RPT-001", HouseholdID: SampleHouseholdID, Title: "Missed collection on Monday", Type: "Missed Collection", Status: models.StatusResolved, CreatedAt: "2026-01-18", ResolvedAt: &resolved},
			{ID: "RPT-002", HouseholdID: SampleHouseholdID, Title: "Collector mixed wet and dry waste", Type: "Improper Handling", Status: models.StatusInProgress, CreatedAt: "2026-01-19"},
			{ID: "RPT-003", HouseholdID: SampleHouseholdID, Title: "Overflowing community bin", Type: "Infrastructure", Status: models.StatusOpen, CreatedAt: "2026-01-20"},
		},
		CommunityIssues: []models.CommunityIssue{
			{ID: "COM-001", Title: "Stray animals opening waste bags", Ward: SampleWard, ReportedBy: "Multiple households", Upvotes: 23, Status: models.StatusUnderReview},
			{ID: "COM-002", Title: "Need more dry waste collection days", Ward: SampleWard, ReportedBy: "Community Forum", Upvotes: 45, Status: models.StatusAcknowledged},
		},
		Overall: models.OverallStats{
			TotalHouseholds:         52340,
			ParticipatingHouseholds: 48750,
			AverageSegregationRate:  84.5,
			WetWasteCollected:       "1,250 tons",
			DryWasteRecycled:        "890 tons",
			IssuesResolved:          2450,
		},
		WardTrends: []models.WardTrend{
			{Ward: "Ward 1", Score: 92, Households: 2100, Trend: models.TrendUp, Change: 3, Seq: 1},
			{Ward: "Ward 2", Score: 88, Households: 1850, Trend: models.TrendUp, Change: 2, Seq: 2},
			{Ward: "Ward 3", Score: 76, Households: 2300, Trend: models.TrendDown, Change: -4, Seq: 3},
			{Ward: "Ward 4", Score: 65, Households: 1950, Trend: models.TrendDown, Change: -2, Seq: 4},
			{Ward: "Ward 5", Score: 91, Households: 2050, Trend: models.TrendUp, Change: 5, Seq: 5},
			{Ward: "Ward 6", Score: 82, Households: 2200, Trend: models.TrendStable, Change: 0, Seq: 6},
			{Ward: "Ward 7", Score: 79, Households: 1900, Trend: models.TrendUp, Change: 1, Seq: 7},
			{Ward: "Ward 8", Score: 87, Households: 2150, Trend: models.TrendUp, Change: 4, Seq: 8},
		},
		MonthlyTrend: []models.MonthlyRate{
			{Month: "Aug", Rate: 72, Seq: 1},
			{Month: "Sep", Rate: 75, Seq: 2},
			{Month: "Oct", Rate: 78, Seq: 3},
			{Month: "Nov", Rate: 81, Seq: 4},
			{Month: "Dec", Rate: 83, Seq: 5},
			{Month: "Jan", Rate: 85, Seq: 6},
		},
		HouseholdLeaders: []models.HouseholdLeader{
			{Rank: 1, Name: "Sharma Family", Ward: "Ward 5", Score: 98, Streak: 45, Badge: "🥇"},
			{Rank: 2, Name: "Patel Residence", Ward: "Ward 1", Score: 97, Streak: 38, Badge: "🥈"},
			{Rank: 3, Name: "Kumar Household", Ward: "Ward 8", Score: 96, Streak: 42, Badge: "🥉"},
			{Rank: 4, Name: "Singh Family", Ward: "Ward 2", Score: 95, Streak: 30, Badge: "⭐"},
			{Rank: 5, Name: "Reddy Home", Ward: "Ward 1", Score: 94, Streak: 28, Badge: "⭐"},
			{Rank: 6, Name: "Gupta Residence", Ward: "Ward 6", Score: 93, Streak: 25},
			{Rank: 7, Name: "Joshi Family", Ward: "Ward 5", Score: 92, Streak: 22},
			{Rank: 8, Name: "Mehta Household", Ward: "Ward 3", Score: 91, Streak: 20},
			{Rank: 9, Name: "Verma Home", Ward: "Ward 7", Score: 90, Streak: 18},
			{Rank: 10, Name: "Iyer Residence", Ward: "Ward 2", Score: 89, Streak: 15},
		},
		WardLeaders: []models.WardLeader{
			{Rank: 1, Ward: "Ward 1", Score: 92, Households: 2100, Improvement: 5},
			{Rank: 2, Ward: "Ward 5", Score: 91, Households: 2050, Improvement: 8},
			{Rank: 3, Ward: "Ward 2", Score: 88, Households: 1850, Improvement: 3},
			{Rank: 4, Ward: "Ward 8", Score: 87, Households: 2150, Improvement: 6},
			{Rank: 5, Ward: "Ward 6", Score: 82, Households: 2200, Improvement: 2},
		},
		CollectorLeaders: []models.CollectorLeader{
			{Rank: 1, Name: "Ravi Kumar", Validations: 1250, Accuracy: 99.2},
			{Rank: 2, Name: "Suresh B", Validations: 1180, Accuracy: 98.8},
			{Rank: 3, Name: "Mohan S", Validations: 1150, Accuracy: 98.5},
		},
		Events: []models.Event{
			{
				ID:          "EVT-001",
				Title:       "Ward 15 Segregation Drive",
				Date:        "2026-01-25",
				Time:        "9:00 AM - 12:00 PM",
				Location:    "Community Hall, Ward 15",
				Description: "Join us for a community awareness drive on proper waste segregation techniques.",
				Type:        models.EventAwareness,
			},
			{
				ID:          "EVT-002",
				Title:       "E-Waste Collection Day",
				Date:        "2026-02-01",
				Time:        "8:00 AM - 5:00 PM",
				Location:    "Municipal Ground, Central Zone",
				Description: "Special collection day for electronic waste. Bring your old devices for safe disposal.",
				Type:        models.EventCollection,
			},
			{
				ID:          "EVT-003",
				Title:       "Composting Workshop",
				Date:        "2026-02-08",
				Time:        "10:00 AM - 1:00 PM",
				Location:    "Green Garden, Ward 5",
				Description: "Learn how to compost wet waste at home and reduce your environmental footprint.",
				Type:        models.EventWorkshop,
			},
		},
		PastEvents: []models.PastEvent{
			{ID: "EVT-P01", Title: "New Year Cleanup Drive", Date: "2026-01-02", Participants: 450, WasteCollected: "2.5 tons", Type: models.EventCleanup},
			{ID: "EVT-P02", Title: "School Awareness Program", Date: "2025-12-15", Participants: 1200, Schools: 8, Type: models.EventAwareness},
		},
	}
}
