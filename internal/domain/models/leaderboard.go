// internal/domain/models/leaderboard.go
package models

import "time"

// Leaderboard groups the three rankings shown on the leaderboard page.
// Each slice is ordered by Rank ascending.
type Leaderboard struct {
	LastUpdated time.Time         `json:"last_updated"`
	Households  []HouseholdLeader `json:"household_leaders"`
	Wards       []WardLeader      `json:"ward_leaders"`
	Collectors  []CollectorLeader `json:"collector_leaders"`
}

// HouseholdLeader is a ranked household. Badge may be empty.
type HouseholdLeader struct {
	Rank   int    `bson:"rank" json:"rank"`
	Name   string `bson:"name" json:"name"`
	Ward   string `bson:"ward" json:"ward"`
	Score  int    `bson:"score" json:"score"`
	Streak int    `bson:"streak" json:"streak"`
	Badge  string `bson:"badge" json:"badge"`
}

// WardLeader is a ranked ward.
type WardLeader struct {
	Rank        int    `bson:"rank" json:"rank"`
	Ward        string `bson:"ward" json:"ward"`
	Score       int    `bson:"score" json:"score"`
	Households  int    `bson:"households" json:"households"`
	Improvement int    `bson:"improvement" json:"improvement"`
}

// CollectorLeader is a ranked collector.
type CollectorLeader struct {
	Rank        int     `bson:"rank" json:"rank"`
	Name        string  `bson:"name" json:"name"`
	Validations int     `bson:"validations" json:"validations"`
	Accuracy    float64 `bson:"accuracy" json:"accuracy"`
}
