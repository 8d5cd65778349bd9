// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dalemusser/wastewise/internal/app/store/wastedata"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

/*
EnsureAll is called from EnsureSchema when the Mongo source is enabled.
Each ensure* function is idempotent. Errors are aggregated so every
problem is visible and startup can fail fast.
*/
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	for _, s := range specs() {
		if err := ensureIndexSet(ctx, db.Collection(s.collection), s.models); err != nil {
			problems = append(problems, s.collection+": "+err.Error())
		}
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

type collectionIndexes struct {
	collection string
	models     []mongo.IndexModel
}

func named(name string, keys bson.D) mongo.IndexModel {
	return mongo.IndexModel{Keys: keys, Options: options.Index().SetName(name)}
}

// specs lists the indexes the data source queries rely on. Lookups by _id
// need nothing extra.
func specs() []collectionIndexes {
	return []collectionIndexes{
		{wastedata.CollNotifications, []mongo.IndexModel{
			named("idx_notifications_household", bson.D{{Key: "household_id", Value: 1}, {Key: "_id", Value: 1}}),
		}},
		{wastedata.CollValidations, []mongo.IndexModel{
			named("idx_validations_collector_status", bson.D{{Key: "collector_id", Value: 1}, {Key: "status", Value: 1}, {Key: "_id", Value: 1}}),
		}},
		{wastedata.CollWardPerformance, []mongo.IndexModel{
			named("idx_ward_performance_seq", bson.D{{Key: "seq", Value: 1}}),
		}},
		{wastedata.CollIssues, []mongo.IndexModel{
			named("idx_issues_seq", bson.D{{Key: "seq", Value: 1}}),
		}},
		{wastedata.CollReports, []mongo.IndexModel{
			named("idx_reports_household", bson.D{{Key: "household_id", Value: 1}, {Key: "_id", Value: 1}}),
		}},
		{wastedata.CollCommunityIssues, []mongo.IndexModel{
			named("idx_community_issues_ward", bson.D{{Key: "ward", Value: 1}, {Key: "_id", Value: 1}}),
		}},
		{wastedata.CollWardTrends, []mongo.IndexModel{
			named("idx_ward_trends_seq", bson.D{{Key: "seq", Value: 1}}),
		}},
		{wastedata.CollMonthlyTrend, []mongo.IndexModel{
			named("idx_monthly_trend_seq", bson.D{{Key: "seq", Value: 1}}),
		}},
		{wastedata.CollHouseholdLeaders, []mongo.IndexModel{
			named("idx_leaderboard_households_rank", bson.D{{Key: "rank", Value: 1}}),
		}},
		{wastedata.CollWardLeaders, []mongo.IndexModel{
			named("idx_leaderboard_wards_rank", bson.D{{Key: "rank", Value: 1}}),
		}},
		{wastedata.CollCollectorLeaders, []mongo.IndexModel{
			named("idx_leaderboard_collectors_rank", bson.D{{Key: "rank", Value: 1}}),
		}},
		{wastedata.CollEvents, []mongo.IndexModel{
			named("idx_events_date", bson.D{{Key: "date", Value: 1}}),
		}},
		{wastedata.CollPastEvents, []mongo.IndexModel{
			named("idx_past_events_date", bson.D{{Key: "date", Value: -1}}),
		}},
	}
}

/* -------------------------------------------------------------------------- */
/* Core helper: reconcile a set of desired indexes for one collection         */
/* -------------------------------------------------------------------------- */

type existingIndex struct {
	Name string `bson:"name"`
	Key  bson.D `bson:"key"`
}

func keySig(keys bson.D) string {
	parts := make([]string, 0, len(keys))
	for _, kv := range keys {
		parts = append(parts, fmt.Sprintf("%s:%v", kv.Key, kv.Value))
	}
	return strings.Join(parts, ", ")
}

func listExisting(ctx context.Context, coll *mongo.Collection) (map[string]existingIndex, error) {
	cur, err := coll.Indexes().List(ctx)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	existing := map[string]existingIndex{} // sig -> index
	for cur.Next(ctx) {
		var idx existingIndex
		if err := cur.Decode(&idx); err != nil {
			zap.L().Warn("failed to decode existing index",
				zap.String("collection", coll.Name()),
				zap.Error(err))
			continue
		}
		existing[keySig(idx.Key)] = idx
	}
	return existing, cur.Err()
}

func ensureIndexSet(ctx context.Context, coll *mongo.Collection, models []mongo.IndexModel) error {
	var errs []string

	existing, err := listExisting(ctx, coll)
	if err != nil {
		// A collection that does not exist yet has no indexes to reconcile.
		existing = map[string]existingIndex{}
	}

	for _, m := range models {
		desiredName := ""
		if m.Options != nil && m.Options.Name != nil {
			desiredName = *m.Options.Name
		}
		desiredSig := keySig(m.Keys.(bson.D))
		start := time.Now()

		if ex, ok := existing[desiredSig]; ok {
			if desiredName == "" || ex.Name == desiredName {
				zap.L().Debug("reusing existing index",
					zap.String("collection", coll.Name()),
					zap.String("name", ex.Name),
					zap.String("keys", desiredSig))
				continue
			}
			// Same keys under another name: drop and recreate with the desired name.
			if _, err := coll.Indexes().DropOne(ctx, ex.Name); err != nil {
				errs = append(errs, fmt.Sprintf("%s(%s): rename drop failed: %v", coll.Name(), desiredName, err))
				continue
			}
		}

		if _, err := coll.Indexes().CreateOne(ctx, m); err != nil {
			errs = append(errs, fmt.Sprintf("%s(%s): %v", coll.Name(), desiredName, err))
			continue
		}
		zap.L().Info("index ensured",
			zap.String("collection", coll.Name()),
			zap.String("name", desiredName),
			zap.String("keys", desiredSig),
			zap.String("took", time.Since(start).String()))
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}
