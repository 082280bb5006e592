package services

import (
	"context"
	"time"

	"movie-catalog-backend/data_access"
	"movie-catalog-backend/models"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CommentService struct {
	commentRepo *data_access.CommentRepository
	validate    *validator.Validate
}

func NewCommentService(commentRepo *data_access.CommentRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		validate:    validator.New(),
	}
}

func (s *CommentService) GetComment(ctx context.Context, id primitive.ObjectID) (*models.Comment, error) {
	return s.commentRepo.GetComment(ctx, id)
}

// AddComment assigns the identifier and timestamp, then persists the comment.
// The repository requires the id to be set before the insert, so the id is
// minted here, at the edge.
func (s *CommentService) AddComment(ctx context.Context, req *models.AddCommentRequest) (*models.Comment, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, asValidationError(err)
	}

	comment := &models.Comment{
		ID:      primitive.NewObjectID(),
		Name:    req.Name,
		Email:   req.Email,
		MovieID: req.MovieID,
		Text:    req.Text,
		Date:    time.Now().UTC(),
	}
	return s.commentRepo.AddComment(ctx, comment)
}

// UpdateComment rewrites the comment text on behalf of the requester. The
// false return means the request was processed and declined, not that the
// system failed.
func (s *CommentService) UpdateComment(ctx context.Context, req *models.UpdateCommentRequest) (bool, error) {
	if err := s.validate.Struct(req); err != nil {
		return false, asValidationError(err)
	}
	return s.commentRepo.UpdateCommentText(ctx, req.CommentID, req.Text, req.Email)
}

func (s *CommentService) DeleteComment(ctx context.Context, id primitive.ObjectID, requesterEmail string) (bool, error) {
	return s.commentRepo.DeleteComment(ctx, id, requesterEmail)
}

// MostActiveCommenters returns the ranked top-20 commenter report.
func (s *CommentService) MostActiveCommenters(ctx context.Context) ([]models.Critic, error) {
	return s.commentRepo.MostActiveCommenters(ctx)
}
