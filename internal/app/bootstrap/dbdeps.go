// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"github.com/dalemusser/wastewise/internal/app/system/pagecache"
	"github.com/dalemusser/wastewise/internal/app/system/workers"
	"go.mongodb.org/mongo-driver/mongo"
)

// DBDeps holds the back-end dependencies shared across lifecycle hooks.
// The Mongo fields are nil when the static data source is configured.
type DBDeps struct {
	MongoClient   *mongo.Client
	MongoDatabase *mongo.Database

	// PageCache and Sweeper are created by ConnectDB for every data source.
	// Startup starts the sweeper and Shutdown stops it.
	PageCache *pagecache.Cache
	Sweeper   *workers.CacheSweeper
}
