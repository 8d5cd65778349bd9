// internal/domain/models/authority.go
package models

// AuthorityOfficer identifies the municipal officer viewing the authority dashboard.
type AuthorityOfficer struct {
	ID           string `bson:"_id" json:"officer_id"`
	Name         string `bson:"name" json:"name"`
	Jurisdiction string `bson:"jurisdiction" json:"jurisdiction"`
}

// AuthorityStats are the live aggregate counters across the jurisdiction.
type AuthorityStats struct {
	TotalHouseholds        int     `bson:"total_households" json:"total_households"`
	ActiveCollectors       int     `bson:"active_collectors" json:"active_collectors"`
	TodayCollections       int     `bson:"today_collections" json:"today_collections"`
	AverageSegregationRate float64 `bson:"average_segregation_rate" json:"average_segregation_rate"`
	OpenIssues             int     `bson:"open_issues" json:"open_issues"`
	ResolvedToday          int     `bson:"resolved_today" json:"resolved_today"`
}

// Issue priorities.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Issue is an entry in the authority's live feed of reported problems.
type Issue struct {
	ID          string `bson:"_id" json:"id"`
	Ward        string `bson:"ward" json:"ward"`
	Type        string `bson:"type" json:"type"`
	Priority    string `bson:"priority" json:"priority"`
	ReportedAgo string `bson:"reported_ago" json:"time"`
	Seq         int    `bson:"seq" json:"-"` // feed order, newest first
}
