package data_access

import (
	"context"

	"movie-catalog-backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type SessionRepository struct {
	db         *MongoDB
	collection *mongo.Collection
	log        *zap.SugaredLogger
}

func NewSessionRepository(db *MongoDB, log *zap.SugaredLogger) *SessionRepository {
	return &SessionRepository{
		db:         db,
		collection: db.Collection(SessionCollection),
		log:        log,
	}
}

// CreateUserSession stores the token for userId, replacing any previous one.
// The upsert keyed on user_id keeps at most one session document per user;
// calling it again with a new token leaves a single document holding the
// latest token.
func (r *SessionRepository) CreateUserSession(ctx context.Context, userID, jwt string) error {
	filter := bson.M{"user_id": userID}
	update := bson.M{"$set": bson.M{"jwt": jwt}}
	opts := options.Update().SetUpsert(true)

	if _, err := r.collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return persistence("upsert session", err)
	}
	return nil
}

// GetUserSession returns the live session for userId, or ErrNotFound when the
// user is logged out.
func (r *SessionRepository) GetUserSession(ctx context.Context, userID string) (*models.Session, error) {
	var session models.Session
	err := r.collection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&session)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, persistence("find session", err)
	}
	return &session, nil
}

// DeleteUserSessions removes the session document for userId. The returned
// bool reports whether the storage layer acknowledged the delete, which is
// distinct from a document actually being removed: deleting the sessions of a
// logged-out user is acknowledged with zero documents touched.
func (r *SessionRepository) DeleteUserSessions(ctx context.Context, userID string) (bool, error) {
	res, err := r.collection.DeleteOne(ctx, bson.M{"user_id": userID})
	if err != nil {
		return false, persistence("delete session", err)
	}
	if res.DeletedCount < 1 {
		r.log.Warnw("no session found for user", "user_id", userID)
	}
	// The collection runs under the client's default write concern, which
	// is acknowledged; a nil error from DeleteOne means the server
	// acknowledged the delete.
	return true, nil
}
