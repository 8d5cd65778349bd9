// internal/app/store/wastedata/static.go
package wastedata

import (
	"context"
	"time"

	"github.com/dalemusser/wastewise/internal/domain/models"
)

// Static serves the built-in sample data. Every call rebuilds the data set
// so callers may modify what they receive.
type Static struct {
	now func() time.Time
}

// NewStatic returns a Static source. A nil clock uses time.Now.
func NewStatic(now func() time.Time) *Static {
	if now == nil {
		now = time.Now
	}
	return &Static{now: now}
}

func (s *Static) sample() Sample { return SampleData(s.now()) }

func (s *Static) Name() string { return SourceStatic }

func (s *Static) Ping(ctx context.Context) error { return ctx.Err() }

func (s *Static) Household(ctx context.Context, id string) (models.Household, error) {
	if err := ctx.Err(); err != nil {
		return models.Household{}, err
	}
	for _, h := range s.sample().Households {
		if h.ID == id {
			return h, nil
		}
	}
	return models.Household{}, ErrNotFound
}

func (s *Static) Notifications(ctx context.Context, householdID string) ([]models.Notification, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out []models.Notification
	for _, n := range s.sample().Notifications {
		if n.HouseholdID == householdID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (s *Static) Collector(ctx context.Context, id string) (models.Collector, error) {
	if err := ctx.Err(); err != nil {
		return models.Collector{}, err
	}
	for _, c := range s.sample().Collectors {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Collector{}, ErrNotFound
}

func (s *Static) PendingValidations(ctx context.Context, collectorID string) ([]models.PendingValidation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out []models.PendingValidation
	for _, v := range s.sample().PendingValidations {
		if v.CollectorID == collectorID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (s *Static) Officer(ctx context.Context, id string) (models.AuthorityOfficer, error) {
	if err := ctx.Err(); err != nil {
		return models.AuthorityOfficer{}, err
	}
	for _, o := range s.sample().Officers {
		if o.ID == id {
			return o, nil
		}
	}
	return models.AuthorityOfficer{}, ErrNotFound
}

func (s *Static) LiveStats(ctx context.Context, officerID string) (models.AuthorityStats, error) {
	if err := ctx.Err(); err != nil {
		return models.AuthorityStats{}, err
	}
	st, ok := s.sample().AuthorityStats[officerID]
	if !ok {
		return models.AuthorityStats{}, ErrNotFound
	}
	return st, nil
}

func (s *Static) WardPerformance(ctx context.Context) ([]models.WardPerformance, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.sample().WardPerformance, nil
}

func (s *Static) RecentIssues(ctx context.Context) ([]models.Issue, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.sample().Issues, nil
}

func (s *Static) UserReports(ctx context.Context, householdID string) ([]models.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out []models.Report
	for _, r := range s.sample().Reports {
		if r.HouseholdID == householdID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *Static) CommunityIssues(ctx context.Context, ward string) ([]models.CommunityIssue, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out []models.CommunityIssue
	for _, c := range s.sample().CommunityIssues {
		if c.Ward == ward {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *Static) WardStatistics(ctx context.Context) (models.WardStatistics, error) {
	if err := ctx.Err(); err != nil {
		return models.WardStatistics{}, err
	}
	d := s.sample()
	return models.WardStatistics{
		LastUpdated:  s.now(),
		Overall:      d.Overall,
		Wards:        d.WardTrends,
		MonthlyTrend: d.MonthlyTrend,
	}, nil
}

func (s *Static) Leaderboard(ctx context.Context) (models.Leaderboard, error) {
	if err := ctx.Err(); err != nil {
		return models.Leaderboard{}, err
	}
	d := s.sample()
	return models.Leaderboard{
		LastUpdated: s.now(),
		Households:  d.HouseholdLeaders,
		Wards:       d.WardLeaders,
		Collectors:  d.CollectorLeaders,
	}, nil
}

func (s *Static) Events(ctx context.Context) (models.EventListing, error) {
	if err := ctx.Err(); err != nil {
		return models.EventListing{}, err
	}
	d := s.sample()
	return models.EventListing{Upcoming: d.Events, Past: d.PastEvents}, nil
}
