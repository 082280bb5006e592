package services

import (
	"context"
	"os"
	"testing"

	"movie-catalog-backend/data_access"

	"go.uber.org/zap"
)

func testLogger() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

// newTestDB connects to the database named by MONGO_TEST_URI with empty
// collections and indexes in place, skipping when none is configured.
func newTestDB(t *testing.T) *data_access.MongoDB {
	t.Helper()

	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set, skipping MongoDB integration test")
	}

	db, err := data_access.NewMongoDB(uri, "movie_catalog_test")
	if err != nil {
		t.Fatalf("connect to test mongo: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close(context.Background())
	})

	ctx := context.Background()
	for _, name := range []string{
		data_access.CommentCollection,
		data_access.UserCollection,
		data_access.SessionCollection,
	} {
		if err := db.Collection(name).Drop(ctx); err != nil {
			t.Fatalf("drop %s: %v", name, err)
		}
	}
	if err := db.EnsureIndexes(ctx); err != nil {
		t.Fatalf("ensure indexes: %v", err)
	}
	return db
}

func newTestUserService(t *testing.T) *UserService {
	t.Helper()
	db := newTestDB(t)
	sessions := data_access.NewSessionRepository(db, testLogger())
	users := data_access.NewUserRepository(db, sessions, testLogger())
	return NewUserService(users, sessions)
}

func newTestCommentService(t *testing.T) *CommentService {
	t.Helper()
	db := newTestDB(t)
	return NewCommentService(data_access.NewCommentRepository(db, testLogger()))
}
