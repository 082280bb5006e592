package models

type Session struct {
	// At most one session document exists per user; user_id carries a
	// unique index.
	UserID string `bson:"user_id" json:"user_id"`
	JWT    string `bson:"jwt" json:"jwt"`
}
