// internal/app/store/wastedata/mongo.go
package wastedata

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dalemusser/wastewise/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Mongo reads the same view models from a MongoDB database laid out as
// Seed writes it. Ordered lists are sorted by their seq or rank field.
type Mongo struct {
	db  *mongo.Database
	now func() time.Time
}

// NewMongo returns a Mongo source over db. A nil clock uses time.Now.
func NewMongo(db *mongo.Database, now func() time.Time) *Mongo {
	if now == nil {
		now = time.Now
	}
	return &Mongo{db: db, now: now}
}

func (m *Mongo) Name() string { return SourceMongo }

func (m *Mongo) Ping(ctx context.Context) error {
	return m.db.Client().Ping(ctx, readpref.Primary())
}

func (m *Mongo) Household(ctx context.Context, id string) (models.Household, error) {
	var h models.Household
	if err := m.findOne(ctx, CollHouseholds, bson.M{"_id": id}, &h); err != nil {
		return models.Household{}, err
	}
	return h, nil
}

func (m *Mongo) Notifications(ctx context.Context, householdID string) ([]models.Notification, error) {
	var out []models.Notification
	err := m.findAll(ctx, CollNotifications, bson.M{"household_id": householdID}, bson.D{{Key: "_id", Value: 1}}, &out)
	return out, err
}

func (m *Mongo) Collector(ctx context.Context, id string) (models.Collector, error) {
	var c models.Collector
	if err := m.findOne(ctx, CollCollectors, bson.M{"_id": id}, &c); err != nil {
		return models.Collector{}, err
	}
	return c, nil
}

func (m *Mongo) PendingValidations(ctx context.Context, collectorID string) ([]models.PendingValidation, error) {
	var out []models.PendingValidation
	filter := bson.M{"collector_id": collectorID, "status": models.ValidationPending}
	err := m.findAll(ctx, CollValidations, filter, bson.D{{Key: "_id", Value: 1}}, &out)
	return out, err
}

func (m *Mongo) Officer(ctx context.Context, id string) (models.AuthorityOfficer, error) {
	var o models.AuthorityOfficer
	if err := m.findOne(ctx, CollOfficers, bson.M{"_id": id}, &o); err != nil {
		return models.AuthorityOfficer{}, err
	}
	return o, nil
}

func (m *Mongo) LiveStats(ctx context.Context, officerID string) (models.AuthorityStats, error) {
	var doc authorityStatsDoc
	if err := m.findOne(ctx, CollAuthorityStats, bson.M{"_id": officerID}, &doc); err != nil {
		return models.AuthorityStats{}, err
	}
	return doc.AuthorityStats, nil
}

func (m *Mongo) WardPerformance(ctx context.Context) ([]models.WardPerformance, error) {
	var out []models.WardPerformance
	err := m.findAll(ctx, CollWardPerformance, bson.M{}, bson.D{{Key: "seq", Value: 1}}, &out)
	return out, err
}

func (m *Mongo) RecentIssues(ctx context.Context) ([]models.Issue, error) {
	var out []models.Issue
	err := m.findAll(ctx, CollIssues, bson.M{}, bson.D{{Key: "seq", Value: 1}}, &out)
	return out, err
}

func (m *Mongo) UserReports(ctx context.Context, householdID string) ([]models.Report, error) {
	var out []models.Report
	err := m.findAll(ctx, CollReports, bson.M{"household_id": householdID}, bson.D{{Key: "_id", Value: 1}}, &out)
	return out, err
}

func (m *Mongo) CommunityIssues(ctx context.Context, ward string) ([]models.CommunityIssue, error) {
	var out []models.CommunityIssue
	err := m.findAll(ctx, CollCommunityIssues, bson.M{"ward": ward}, bson.D{{Key: "_id", Value: 1}}, &out)
	return out, err
}

func (m *Mongo) WardStatistics(ctx context.Context) (models.WardStatistics, error) {
	var overall overallStatsDoc
	if err := m.findOne(ctx, CollCityStats, bson.M{"_id": overallStatsDocumentID}, &overall); err != nil {
		return models.WardStatistics{}, err
	}
	stats := models.WardStatistics{LastUpdated: m.now(), Overall: overall.OverallStats}
	if err := m.findAll(ctx, CollWardTrends, bson.M{}, bson.D{{Key: "seq", Value: 1}}, &stats.Wards); err != nil {
		return models.WardStatistics{}, err
	}
	if err := m.findAll(ctx, CollMonthlyTrend, bson.M{}, bson.D{{Key: "seq", Value: 1}}, &stats.MonthlyTrend); err != nil {
		return models.WardStatistics{}, err
	}
	return stats, nil
}

func (m *Mongo) Leaderboard(ctx context.Context) (models.Leaderboard, error) {
	byRank := bson.D{{Key: "rank", Value: 1}}
	lb := models.Leaderboard{LastUpdated: m.now()}
	if err := m.findAll(ctx, CollHouseholdLeaders, bson.M{}, byRank, &lb.Households); err != nil {
		return models.Leaderboard{}, err
	}
	if err := m.findAll(ctx, CollWardLeaders, bson.M{}, byRank, &lb.Wards); err != nil {
		return models.Leaderboard{}, err
	}
	if err := m.findAll(ctx, CollCollectorLeaders, bson.M{}, byRank, &lb.Collectors); err != nil {
		return models.Leaderboard{}, err
	}
	return lb, nil
}

func (m *Mongo) Events(ctx context.Context) (models.EventListing, error) {
	var listing models.EventListing
	if err := m.findAll(ctx, CollEvents, bson.M{}, bson.D{{Key: "date", Value: 1}}, &listing.Upcoming); err != nil {
		return models.EventListing{}, err
	}
	if err := m.findAll(ctx, CollPastEvents, bson.M{}, bson.D{{Key: "date", Value: -1}}, &listing.Past); err != nil {
		return models.EventListing{}, err
	}
	return listing, nil
}

func (m *Mongo) findOne(ctx context.Context, coll string, filter bson.M, out any) error {
	err := m.db.Collection(coll).FindOne(ctx, filter).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("%s: %w", coll, err)
	}
	return nil
}

func (m *Mongo) findAll(ctx context.Context, coll string, filter bson.M, sort bson.D, out any) error {
	cur, err := m.db.Collection(coll).Find(ctx, filter, options.Find().SetSort(sort))
	if err != nil {
		return fmt.Errorf("%s: %w", coll, err)
	}
	defer cur.Close(ctx)
	if err := cur.All(ctx, out); err != nil {
		return fmt.Errorf("%s: %w", coll, err)
	}
	return nil
}
