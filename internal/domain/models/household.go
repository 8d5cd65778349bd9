// internal/domain/models/household.go
package models

import "time"

// Waste type labels as they appear in activity logs and pickup schedules.
const (
	WasteWet       = "Wet Waste"
	WasteDry       = "Dry Waste"
	WasteHazardous = "Hazardous Waste"
)

// Household is the summary shown on the household dashboard.
//
// ID is a display key (e.g., "HH-12345"), not a database identity.
type Household struct {
	ID               string     `bson:"_id" json:"household_id"`
	Address          string     `bson:"address" json:"address"`
	Ward             string     `bson:"ward" json:"ward"`
	SegregationScore int        `bson:"segregation_score" json:"segregation_score"` // 0-100
	TotalLogs        int        `bson:"total_logs" json:"total_logs"`
	CurrentStreak    int        `bson:"current_streak" json:"current_streak"` // days
	LastCollection   time.Time  `bson:"last_collection" json:"last_collection"`
	RecentActivity   []Activity `bson:"recent_activity" json:"recent_activity"`
}

// Activity is one logged disposal, newest first.
type Activity struct {
	Date      string `bson:"date" json:"date"` // YYYY-MM-DD
	WasteType string `bson:"type" json:"type"`
	Validated bool   `bson:"validated" json:"validated"`
}

// Notification types.
const (
	NotificationInfo    = "info"
	NotificationSuccess = "success"
)

// Notification is a banner shown at the top of the household dashboard.
type Notification struct {
	ID          int    `bson:"_id" json:"id"`
	HouseholdID string `bson:"household_id" json:"household_id"`
	Message     string `bson:"message" json:"message"`
	Type        string `bson:"type" json:"type"`
}
