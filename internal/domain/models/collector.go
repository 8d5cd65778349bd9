// internal/domain/models/collector.go
package models

import "math"

// Collector is the profile shown on the collector dashboard.
type Collector struct {
	ID           string     `bson:"_id" json:"collector_id"`
	Name         string     `bson:"name" json:"name"`
	AssignedWard string     `bson:"assigned_ward" json:"assigned_ward"`
	TodayStats   TodayStats `bson:"today_stats" json:"today_stats"`
}

// TodayStats are the collector's counters for the current route.
type TodayStats struct {
	HouseholdsVisited  int `bson:"households_visited" json:"households_visited"`
	TotalAssigned      int `bson:"total_assigned" json:"total_assigned"`
	ProperlySegregated int `bson:"properly_segregated" json:"properly_segregated"`
	Issues             int `bson:"issues" json:"issues"`
}

// CompletionRate returns visited/assigned as a whole percentage, rounded
// half away from zero. A route with nothing assigned reports 0.
func (s TodayStats) CompletionRate() int {
	if s.TotalAssigned <= 0 {
		return 0
	}
	return int(math.Round(float64(s.HouseholdsVisited) / float64(s.TotalAssigned) * 100))
}

// ValidationPending is the only status the sample data carries.
const ValidationPending = "pending"

// PendingValidation is an upcoming stop on a collector's route.
type PendingValidation struct {
	ID            string `bson:"_id" json:"id"`
	CollectorID   string `bson:"collector_id" json:"collector_id"`
	HouseholdID   string `bson:"household_id" json:"household_id"`
	Address       string `bson:"address" json:"address"`
	WasteType     string `bson:"waste_type" json:"waste_type"`
	ScheduledTime string `bson:"scheduled_time" json:"scheduled_time"`
	Status        string `bson:"status" json:"status"`
}
