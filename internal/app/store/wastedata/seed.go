// internal/app/store/wastedata/seed.go
package wastedata

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// SeedResult reports what Seed did per collection.
type SeedResult struct {
	Inserted map[string]int
	Skipped  []string // collections that already held documents
}

// Seed writes the sample data set into db. Collections that already hold
// documents are left alone unless force is set, in which case they are
// emptied first.
func Seed(ctx context.Context, db *mongo.Database, now time.Time, force bool) (SeedResult, error) {
	res := SeedResult{Inserted: map[string]int{}}

	for _, coll := range Collections {
		docs := sampleDocuments(SampleData(now), coll)
		c := db.Collection(coll)

		if force {
			if _, err := c.DeleteMany(ctx, bson.M{}); err != nil {
				return res, fmt.Errorf("clear %s: %w", coll, err)
			}
		} else {
			n, err := c.CountDocuments(ctx, bson.M{})
			if err != nil {
				return res, fmt.Errorf("count %s: %w", coll, err)
			}
			if n > 0 {
				res.Skipped = append(res.Skipped, coll)
				continue
			}
		}

		if len(docs) == 0 {
			continue
		}
		if _, err := c.InsertMany(ctx, docs); err != nil {
			return res, fmt.Errorf("seed %s: %w", coll, err)
		}
		res.Inserted[coll] = len(docs)
	}
	return res, nil
}

// sampleDocuments returns the documents that belong in coll.
func sampleDocuments(d Sample, coll string) []any {
	var docs []any
	switch coll {
	case CollHouseholds:
		for _, v := range d.Households {
			docs = append(docs, v)
		}
	case CollNotifications:
		for _, v := range d.Notifications {
			docs = append(docs, v)
		}
	case CollCollectors:
		for _, v := range d.Collectors {
			docs = append(docs, v)
		}
	case CollValidations:
		for _, v := range d.PendingValidations {
			docs = append(docs, v)
		}
	case CollOfficers:
		for _, v := range d.Officers {
			docs = append(docs, v)
		}
	case CollAuthorityStats:
		for id, v := range d.AuthorityStats {
			docs = append(docs, authorityStatsDoc{OfficerID: id, AuthorityStats: v})
		}
	case CollWardPerformance:
		for _, v := range d.WardPerformance {
			docs = append(docs, v)
		}
	case CollIssues:
		for _, v := range d.Issues {
			docs = append(docs, v)
		}
	case CollReports:
		for _, v := range d.Reports {
			docs = append(docs, v)
		}
	case CollCommunityIssues:
		for _, v := range d.CommunityIssues {
			docs = append(docs, v)
		}
	case CollCityStats:
		docs = append(docs, overallStatsDoc{ID: overallStatsDocumentID, OverallStats: d.Overall})
	case CollWardTrends:
		for _, v := range d.WardTrends {
			docs = append(docs, v)
		}
	case CollMonthlyTrend:
		for _, v := range d.MonthlyTrend {
			docs = append(docs, v)
		}
	case CollHouseholdLeaders:
		for _, v := range d.HouseholdLeaders {
			docs = append(docs, v)
		}
	case CollWardLeaders:
		for _, v := range d.WardLeaders {
			docs = append(docs, v)
		}
	case CollCollectorLeaders:
		for _, v := range d.CollectorLeaders {
			docs = append(docs, v)
		}
	case CollEvents:
		for _, v := range d.Events {
			docs = append(docs, v)
		}
	case CollPastEvents:
		for _, v := range d.PastEvents {
			docs = append(docs, v)
		}
	}
	return docs
}
