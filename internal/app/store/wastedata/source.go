// internal/app/store/wastedata/source.go
package wastedata

import (
	"context"
	"errors"

	"github.com/dalemusser/wastewise/internal/domain/models"
)

// ErrNotFound is returned when a lookup names an ID the source does not hold.
var ErrNotFound = errors.New("wastedata: not found")

// Source names.
const (
	SourceStatic = "static"
	SourceMongo  = "mongo"
)

// Source supplies every page loader. Implementations are read-only and safe
// for concurrent use.
type Source interface {
	// Name reports which backing store is in use ("static" or "mongo").
	Name() string
	// Ping reports whether the backing store is reachable.
	Ping(ctx context.Context) error

	Household(ctx context.Context, id string) (models.Household, error)
	Notifications(ctx context.Context, householdID string) ([]models.Notification, error)

	Collector(ctx context.Context, id string) (models.Collector, error)
	PendingValidations(ctx context.Context, collectorID string) ([]models.PendingValidation, error)

	Officer(ctx context.Context, id string) (models.AuthorityOfficer, error)
	LiveStats(ctx context.Context, officerID string) (models.AuthorityStats, error)
	WardPerformance(ctx context.Context) ([]models.WardPerformance, error)
	RecentIssues(ctx context.Context) ([]models.Issue, error)

	UserReports(ctx context.Context, householdID string) ([]models.Report, error)
	CommunityIssues(ctx context.Context, ward string) ([]models.CommunityIssue, error)

	WardStatistics(ctx context.Context) (models.WardStatistics, error)
	Leaderboard(ctx context.Context) (models.Leaderboard, error)
	Events(ctx context.Context) (models.EventListing, error)
}
