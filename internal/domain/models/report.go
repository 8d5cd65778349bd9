// internal/domain/models/report.go
package models

// Report and community issue statuses.
const (
	StatusOpen         = "open"
	StatusInProgress   = "in-progress"
	StatusResolved     = "resolved"
	StatusUnderReview  = "under-review"
	StatusAcknowledged = "acknowledged"
)

// Report is an issue filed by the current household.
type Report struct {
	ID          string  `bson:"_id" json:"id"`
	HouseholdID string  `bson:"household_id" json:"household_id"`
	Title       string  `bson:"title" json:"title"`
	Type        string  `bson:"type" json:"type"`
	Status      string  `bson:"status" json:"status"`
	CreatedAt   string  `bson:"created_at" json:"created_at"` // YYYY-MM-DD
	ResolvedAt  *string `bson:"resolved_at,omitempty" json:"resolved_at"`
}

// CommunityIssue is an issue raised by several households in a ward.
type CommunityIssue struct {
	ID         string `bson:"_id" json:"id"`
	Title      string `bson:"title" json:"title"`
	Ward       string `bson:"ward" json:"ward"`
	ReportedBy string `bson:"reported_by" json:"reported_by"`
	Upvotes    int    `bson:"upvotes" json:"upvotes"`
	Status     string `bson:"status" json:"status"`
}
