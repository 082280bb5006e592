package data_access

import (
	"context"

	"movie-catalog-backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type UserRepository struct {
	db         *MongoDB
	collection *mongo.Collection
	sessions   *SessionRepository
	log        *zap.SugaredLogger
}

func NewUserRepository(db *MongoDB, sessions *SessionRepository, log *zap.SugaredLogger) *UserRepository {
	return &UserRepository{
		db:         db,
		collection: db.Collection(UserCollection),
		sessions:   sessions,
		log:        log,
	}
}

// AddUser inserts the user. A duplicate email violates the unique index and
// surfaces as a PersistenceError rather than being swallowed.
func (r *UserRepository) AddUser(ctx context.Context, user *models.User) error {
	if _, err := r.collection.InsertOne(ctx, user); err != nil {
		return persistence("insert user", err)
	}
	return nil
}

// GetUser returns the user matching the email, or ErrNotFound.
func (r *UserRepository) GetUser(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, persistence("find user", err)
	}
	return &user, nil
}

// UpdateUserPreferences replaces the stored preferences map wholesale; keys
// absent from the new map are dropped. A nil map is rejected before any write.
func (r *UserRepository) UpdateUserPreferences(ctx context.Context, email string, preferences map[string]interface{}) error {
	if preferences == nil {
		return &ValidationError{Field: "preferences", Reason: "cannot be nil"}
	}

	res, err := r.collection.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"preferences": preferences}})
	if err != nil {
		return persistence("update user preferences", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteUser removes the user and, first, any session the user holds. The
// session delete runs before the user delete so a crash between the steps can
// only leave a user without a session, never a session without a user. A user
// with no live session is a successful cascade step; only an unacknowledged or
// failed session delete blocks the user removal.
func (r *UserRepository) DeleteUser(ctx context.Context, email string) error {
	acknowledged, err := r.sessions.DeleteUserSessions(ctx, email)
	if err != nil {
		return err
	}
	if !acknowledged {
		return UnacknowledgedWrite("delete user sessions")
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"email": email})
	if err != nil {
		return persistence("delete user", err)
	}
	if res.DeletedCount < 1 {
		r.log.Warnw("user not found during delete, possible concurrent removal", "email", email)
		return ErrNotFound
	}
	return nil
}
