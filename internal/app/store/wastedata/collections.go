// internal/app/store/wastedata/collections.go
package wastedata

import "github.com/dalemusser/wastewise/internal/domain/models"

// Collection names used by the Mongo source and Seed.
const (
	CollHouseholds         = "households"
	CollNotifications      = "notifications"
	CollCollectors         = "collectors"
	CollValidations        = "pending_validations"
	CollOfficers           = "officers"
	CollAuthorityStats     = "authority_stats"
	CollWardPerformance    = "ward_performance"
	CollIssues             = "issues"
	CollReports            = "reports"
	CollCommunityIssues    = "community_issues"
	CollCityStats          = "city_stats"
	CollWardTrends         = "ward_trends"
	CollMonthlyTrend       = "monthly_trend"
	CollHouseholdLeaders   = "leaderboard_households"
	CollWardLeaders        = "leaderboard_wards"
	CollCollectorLeaders   = "leaderboard_collectors"
	CollEvents             = "events"
	CollPastEvents         = "past_events"
	overallStatsDocumentID = "overall"
)

// Collections lists every collection the source reads, in seeding order.
var Collections = []string{
	CollHouseholds,
	CollNotifications,
	CollCollectors,
	CollValidations,
	CollOfficers,
	CollAuthorityStats,
	CollWardPerformance,
	CollIssues,
	CollReports,
	CollCommunityIssues,
	CollCityStats,
	CollWardTrends,
	CollMonthlyTrend,
	CollHouseholdLeaders,
	CollWardLeaders,
	CollCollectorLeaders,
	CollEvents,
	CollPastEvents,
}

// authorityStatsDoc stores one officer's counters under the officer's ID.
type authorityStatsDoc struct {
	OfficerID             string `bson:"_id"`
	models.AuthorityStats `bson:",inline"`
}

// overallStatsDoc is the single city_stats document.
type overallStatsDoc struct {
	ID                  string `bson:"_id"`
	models.OverallStats `bson:",inline"`
}
