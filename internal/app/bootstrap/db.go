// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/dalemusser/wastewise/internal/app/store/wastedata"
	"github.com/dalemusser/wastewise/internal/app/system/indexes"
	"github.com/dalemusser/wastewise/internal/app/system/pagecache"
	"github.com/dalemusser/wastewise/internal/app/system/timeouts"
	"github.com/dalemusser/wastewise/internal/app/system/workers"
	"github.com/dalemusser/waffle/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// ConnectDB builds the back-end dependencies. The page cache is always
// created; a MongoDB client is only opened for the mongo data source.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	cache := pagecache.New(logger, time.Now)
	deps := DBDeps{
		PageCache: cache,
		Sweeper:   workers.NewCacheSweeper(cache, logger, appCfg.CacheSweepInterval),
	}

	if appCfg.DataSource != wastedata.SourceMongo {
		logger.Info("using built-in sample data", zap.String("data_source", appCfg.DataSource))
		return deps, nil
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(appCfg.MongoURI))
	if err != nil {
		return DBDeps{}, fmt.Errorf("connect mongo: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeouts.Ping())
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return DBDeps{}, fmt.Errorf("ping mongo: %w", err)
	}

	logger.Info("connected to MongoDB", zap.String("database", appCfg.MongoDatabase))
	deps.MongoClient = client
	deps.MongoDatabase = client.Database(appCfg.MongoDatabase)
	return deps, nil
}

// EnsureSchema creates indexes and, when enabled, seeds empty collections
// with the sample data. It does nothing for the static source.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if deps.MongoDatabase == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, timeouts.Seed())
	defer cancel()

	if err := indexes.EnsureAll(ctx, deps.MongoDatabase); err != nil {
		logger.Error("ensure indexes failed", zap.Error(err))
		return fmt.Errorf("ensure indexes: %w", err)
	}

	if !appCfg.SeedSampleData {
		return nil
	}
	res, err := wastedata.Seed(ctx, deps.MongoDatabase, time.Now(), false)
	if err != nil {
		return fmt.Errorf("seed sample data: %w", err)
	}
	logger.Info("sample data seeded",
		zap.Any("inserted", res.Inserted),
		zap.Strings("skipped", res.Skipped))
	return nil
}
