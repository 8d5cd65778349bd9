// internal/domain/models/event.go
package models

// Event types.
const (
	EventAwareness  = "awareness"
	EventCollection = "collection"
	EventWorkshop   = "workshop"
	EventCleanup    = "cleanup"
)

// EventListing splits events into upcoming and past.
type EventListing struct {
	Upcoming []Event     `json:"upcoming"`
	Past     []PastEvent `json:"past"`
}

// Event is an upcoming community event.
type Event struct {
	ID          string `bson:"_id" json:"id"`
	Title       string `bson:"title" json:"title"`
	Date        string `bson:"date" json:"date"` // YYYY-MM-DD
	Time        string `bson:"time" json:"time"`
	Location    string `bson:"location" json:"location"`
	Description string `bson:"description" json:"description"`
	Type        string `bson:"type" json:"type"`
}

// PastEvent is a completed event with its outcome. WasteCollected and
// Schools are only present for some event kinds.
type PastEvent struct {
	ID             string `bson:"_id" json:"id"`
	Title          string `bson:"title" json:"title"`
	Date           string `bson:"date" json:"date"`
	Participants   int    `bson:"participants" json:"participants"`
	WasteCollected string `bson:"waste_collected,omitempty" json:"wasteCollected,omitempty"`
	Schools        int    `bson:"schools,omitempty" json:"schools,omitempty"`
	Type           string `bson:"type" json:"type"`
}
