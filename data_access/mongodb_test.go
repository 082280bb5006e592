package data_access

import (
	"context"
	"os"
	"testing"

	"go.uber.org/zap"
)

// newTestDB connects to the MongoDB named by MONGO_TEST_URI, starting from a
// dropped database with indexes in place. Tests are skipped when no test
// database is configured.
func newTestDB(t *testing.T) *MongoDB {
	t.Helper()

	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set, skipping MongoDB integration test")
	}

	db, err := NewMongoDB(uri, "movie_catalog_test")
	if err != nil {
		t.Fatalf("connect to test mongo: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close(context.Background())
	})

	ctx := context.Background()
	if err := db.db.Drop(ctx); err != nil {
		t.Fatalf("drop test database: %v", err)
	}
	if err := db.EnsureIndexes(ctx); err != nil {
		t.Fatalf("ensure indexes: %v", err)
	}
	return db
}

func testLogger() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
