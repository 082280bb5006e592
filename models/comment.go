package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Comment struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name    string             `bson:"name" json:"name"`
	Email   string             `bson:"email" json:"email"`
	MovieID primitive.ObjectID `bson:"movie_id" json:"movie_id"`
	Text    string             `bson:"text" json:"text"`
	Date    time.Time          `bson:"date" json:"date"`
}

type AddCommentRequest struct {
	MovieID primitive.ObjectID `json:"movie_id" validate:"required"`
	Email   string             `json:"email" validate:"required,email"`
	Name    string             `json:"name" validate:"required"`
	Text    string             `json:"text" validate:"required"`
}

type UpdateCommentRequest struct {
	CommentID primitive.ObjectID `json:"comment_id" validate:"required"`
	Email     string             `json:"email" validate:"required,email"`
	Text      string             `json:"text" validate:"required"`
}
