// internal/domain/models/statistics.go
package models

import "time"

// Ward trend directions.
const (
	TrendUp     = "up"
	TrendDown   = "down"
	TrendStable = "stable"
)

// WardStatistics is everything the statistics overview renders.
type WardStatistics struct {
	LastUpdated  time.Time     `json:"last_updated"`
	Overall      OverallStats  `json:"overall_stats"`
	Wards        []WardTrend   `json:"ward_data"`
	MonthlyTrend []MonthlyRate `json:"monthly_trend"`
}

// OverallStats are the city-wide headline numbers.
type OverallStats struct {
	TotalHouseholds         int     `bson:"total_households" json:"total_households"`
	ParticipatingHouseholds int     `bson:"participating_households" json:"participating_households"`
	AverageSegregationRate  float64 `bson:"average_segregation_rate" json:"average_segregation_rate"`
	WetWasteCollected       string  `bson:"wet_waste_collected" json:"wet_waste_collected"`
	DryWasteRecycled        string  `bson:"dry_waste_recycled" json:"dry_waste_recycled"`
	IssuesResolved          int     `bson:"issues_resolved" json:"issues_resolved"`
}

// WardTrend is one row of the ward-level performance table.
type WardTrend struct {
	Ward       string `bson:"_id" json:"ward"`
	Score      int    `bson:"score" json:"score"`
	Households int    `bson:"households" json:"households"`
	Trend      string `bson:"trend" json:"trend"`
	Change     int    `bson:"change" json:"change"`
	Seq        int    `bson:"seq" json:"-"`
}

// MonthlyRate is one bar of the six-month trend chart.
type MonthlyRate struct {
	Month string `bson:"month" json:"month"`
	Rate  int    `bson:"rate" json:"rate"`
	Seq   int    `bson:"seq" json:"-"`
}
