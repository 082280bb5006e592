package models

type User struct {
	// The email doubles as the unique key of the users collection.
	Email        string                 `bson:"email" json:"email"`
	Name         string                 `bson:"name" json:"name"`
	PasswordHash string                 `bson:"password_hash" json:"-"`
	Preferences  map[string]interface{} `bson:"preferences" json:"preferences"`
}

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
