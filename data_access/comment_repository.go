package data_access

import (
	"context"
	"time"

	"movie-catalog-backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readconcern"
	"go.uber.org/zap"
)

// topCommenters caps the most-active-commenters report.
const topCommenters = 20

type CommentRepository struct {
	db         *MongoDB
	collection *mongo.Collection
	// majority reads only, so the report never counts comments that a
	// replica-set rollback could still take away.
	reportCollection *mongo.Collection
	log              *zap.SugaredLogger
}

func NewCommentRepository(db *MongoDB, log *zap.SugaredLogger) *CommentRepository {
	return &CommentRepository{
		db:         db,
		collection: db.Collection(CommentCollection),
		reportCollection: db.Collection(CommentCollection,
			options.Collection().SetReadConcern(readconcern.Majority())),
		log: log,
	}
}

// GetComment fetches a comment by its identifier. Returns ErrNotFound when no
// comment matches.
func (r *CommentRepository) GetComment(ctx context.Context, id primitive.ObjectID) (*models.Comment, error) {
	var comment models.Comment
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&comment)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, persistence("find comment", err)
	}
	return &comment, nil
}

// AddComment persists the comment as given. The identifier is assigned by the
// caller; a zero id is rejected before any write.
func (r *CommentRepository) AddComment(ctx context.Context, comment *models.Comment) (*models.Comment, error) {
	if comment.ID.IsZero() {
		return nil, &ValidationError{Field: "comment id", Reason: "cannot be unset"}
	}
	if _, err := r.collection.InsertOne(ctx, comment); err != nil {
		return nil, persistence("insert comment", err)
	}
	return comment, nil
}

// UpdateCommentText sets the text and refreshes the date of the comment owned
// by requesterEmail. The owner check is part of the write filter, so
// authorization is atomic with the mutation; there is no window for another
// request to alter the comment between check and write. Returns false when
// nothing matched, which covers wrong id, wrong owner, and already deleted
// alike.
func (r *CommentRepository) UpdateCommentText(ctx context.Context, id primitive.ObjectID, text, requesterEmail string) (bool, error) {
	filter := bson.M{"_id": id, "email": requesterEmail}
	update := bson.M{"$set": bson.M{"text": text, "date": time.Now().UTC()}}

	// Strength-2 collation makes the owner-email match case-insensitive.
	// No upsert: the owner is in the filter, an upsert on a denied request
	// would insert a forged comment.
	opts := options.Update().SetCollation(&options.Collation{Locale: "en", Strength: 2})

	res, err := r.collection.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return false, persistence("update comment", err)
	}
	if res.MatchedCount == 0 {
		r.log.Warnw("comment update denied",
			"comment_id", id.Hex(), "email", requesterEmail)
		return false, nil
	}
	return true, nil
}

// DeleteComment removes the comment matching both id and owner email in one
// atomic operation. A zero-match delete reports false rather than an error so
// the caller cannot distinguish wrong owner from missing comment.
func (r *CommentRepository) DeleteComment(ctx context.Context, id primitive.ObjectID, requesterEmail string) (bool, error) {
	filter := bson.M{"_id": id, "email": requesterEmail}

	res, err := r.collection.DeleteOne(ctx, filter)
	if err != nil {
		return false, persistence("delete comment", err)
	}
	if res.DeletedCount != 1 {
		r.log.Warnw("comment delete denied, requester does not own comment or it is already gone",
			"comment_id", id.Hex(), "email", requesterEmail)
		return false, nil
	}
	return true, nil
}

// MostActiveCommenters groups comments by author email and returns the top
// authors by comment count, at most twenty. Ties are broken by author email
// ascending so repeated calls over an unchanged dataset rank identically. The
// aggregation runs under majority read concern.
func (r *CommentRepository) MostActiveCommenters(ctx context.Context) ([]models.Critic, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   "$email",
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.D{
			{Key: "count", Value: -1},
			{Key: "_id", Value: 1},
		}}},
		{{Key: "$limit", Value: topCommenters}},
	}

	cursor, err := r.reportCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, persistence("aggregate most active commenters", err)
	}
	defer cursor.Close(ctx)

	var critics []models.Critic
	if err = cursor.All(ctx, &critics); err != nil {
		return nil, persistence("decode most active commenters", err)
	}
	return critics, nil
}
