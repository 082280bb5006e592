package models

// Critic is the read-only projection produced by the most-active-commenters
// aggregation. It is never persisted.
type Critic struct {
	ID          string `bson:"_id" json:"id"`
	NumComments int    `bson:"count" json:"num_comments"`
}
