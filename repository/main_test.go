package repository

import (
	"context"
	"testing"
	"time"

	"github.com/Lasya-02/Mama-Sync/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// newTestDatabase connects to the local test instance and ensures the
// indexes exist. Tests isolate themselves with unique user ids instead
// of wiping collections, so they can run in parallel against one
// database.
func newTestDatabase(t *testing.T) *mongo.Database {
	t.Helper()

	uri := utils.GetEnvAsString("MONGO_TEST_URI", "mongodb://localhost:27017")

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		t.Skipf("mongo not reachable at %s: %v", uri, err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		t.Skipf("mongo not reachable at %s: %v", uri, err)
	}
	t.Cleanup(func() {
		_ = client.Disconnect(context.Background())
	})

	db := client.Database(utils.GetEnvAsString("MONGO_TEST_DB", "mamasync_test"))
	if err := SetupIndexes(db); err != nil {
		t.Fatalf("failed to create indexes: %v", err)
	}
	return db
}
