package testutil

import (
	"context"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// Insert writes docs into coll, failing the test on error.
func (f *Fixtures) Insert(ctx context.Context, coll string, docs ...any) {
	f.t.Helper()
	if len(docs) == 0 {
		return
	}
	if _, err := f.db.Collection(coll).InsertMany(ctx, docs); err != nil {
		f.t.Fatalf("failed to insert into %s: %v", coll, err)
	}
}

// Count returns the number of documents in coll.
func (f *Fixtures) Count(ctx context.Context, coll string) int64 {
	f.t.Helper()
	n, err := f.db.Collection(coll).CountDocuments(ctx, bson.M{})
	if err != nil {
		f.t.Fatalf("failed to count %s: %v", coll, err)
	}
	return n
}
