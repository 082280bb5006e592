package services

import (
	"context"
	"errors"

	"movie-catalog-backend/data_access"
	"movie-catalog-backend/models"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for both unknown emails and wrong
// passwords so the caller cannot probe which accounts exist.
var ErrInvalidCredentials = errors.New("invalid credentials")

type UserService struct {
	userRepo    *data_access.UserRepository
	sessionRepo *data_access.SessionRepository
	validate    *validator.Validate
}

func NewUserService(userRepo *data_access.UserRepository, sessionRepo *data_access.SessionRepository) *UserService {
	return &UserService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		validate:    validator.New(),
	}
}

// Register validates the request, hashes the password and stores the account.
func (s *UserService) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, asValidationError(err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: string(hashedPassword),
		Preferences:  map[string]interface{}{},
	}

	if err := s.userRepo.AddUser(ctx, user); err != nil {
		if data_access.IsDuplicateKey(err) {
			return nil, errors.New("user already exists")
		}
		return nil, err
	}
	return user, nil
}

// Authenticate checks the password against the stored hash and returns the
// matching user.
func (s *UserService) Authenticate(ctx context.Context, req *models.LoginRequest) (*models.User, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, asValidationError(err)
	}

	user, err := s.userRepo.GetUser(ctx, req.Email)
	if errors.Is(err, data_access.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// CreateSession records the caller-issued token as the user's single live
// session.
func (s *UserService) CreateSession(ctx context.Context, userID, jwt string) error {
	if userID == "" {
		return &data_access.ValidationError{Field: "user id", Reason: "cannot be empty"}
	}
	if jwt == "" {
		return &data_access.ValidationError{Field: "jwt", Reason: "cannot be empty"}
	}
	return s.sessionRepo.CreateUserSession(ctx, userID, jwt)
}

// CurrentSession returns the user's live session, or
// data_access.ErrNotFound when the user is logged out.
func (s *UserService) CurrentSession(ctx context.Context, userID string) (*models.Session, error) {
	return s.sessionRepo.GetUserSession(ctx, userID)
}

// Logout drops the user's session. Logging out an already logged-out user
// succeeds.
func (s *UserService) Logout(ctx context.Context, userID string) error {
	acknowledged, err := s.sessionRepo.DeleteUserSessions(ctx, userID)
	if err != nil {
		return err
	}
	if !acknowledged {
		return data_access.UnacknowledgedWrite("delete user sessions")
	}
	return nil
}

// UpdatePreferences replaces the user's preference map.
func (s *UserService) UpdatePreferences(ctx context.Context, email string, preferences map[string]interface{}) error {
	return s.userRepo.UpdateUserPreferences(ctx, email, preferences)
}

// DeleteAccount removes the user and any session the user holds.
func (s *UserService) DeleteAccount(ctx context.Context, email string) error {
	return s.userRepo.DeleteUser(ctx, email)
}

// asValidationError converts the first validator failure into the typed
// validation error the stores use.
func asValidationError(err error) error {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		return &data_access.ValidationError{Field: ve[0].Field(), Reason: "failed " + ve[0].Tag() + " check"}
	}
	return err
}
