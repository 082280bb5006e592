package data_access

import (
	"context"
	"errors"
	"testing"

	"movie-catalog-backend/models"
)

func newTestUser(email string) *models.User {
	return &models.User{
		Email:        email,
		Name:         "Ada",
		PasswordHash: "$2a$10$notarealhashbutgoodenough",
		Preferences:  map[string]interface{}{"layout": "grid"},
	}
}

func newUserRepos(t *testing.T) (*UserRepository, *SessionRepository) {
	t.Helper()
	db := newTestDB(t)
	sessions := NewSessionRepository(db, testLogger())
	return NewUserRepository(db, sessions, testLogger()), sessions
}

func TestAddAndGetUser(t *testing.T) {
	repo, _ := newUserRepos(t)
	ctx := context.Background()

	if err := repo.AddUser(ctx, newTestUser("ada@x.com")); err != nil {
		t.Fatalf("add user: %v", err)
	}

	user, err := repo.GetUser(ctx, "ada@x.com")
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if user.Name != "Ada" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestAddUserDuplicateEmail(t *testing.T) {
	repo, _ := newUserRepos(t)
	ctx := context.Background()

	if err := repo.AddUser(ctx, newTestUser("ada@x.com")); err != nil {
		t.Fatalf("add user: %v", err)
	}

	err := repo.AddUser(ctx, newTestUser("ada@x.com"))
	var pe *PersistenceError
	if !errors.As(err, &pe) {
		t.Fatalf("expected persistence error, got %v", err)
	}
	if !IsDuplicateKey(err) {
		t.Fatalf("expected duplicate-key error, got %v", err)
	}
}

func TestGetUserNotFound(t *testing.T) {
	repo, _ := newUserRepos(t)

	_, err := repo.GetUser(context.Background(), "nobody@x.com")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateUserPreferencesReplaces(t *testing.T) {
	repo, _ := newUserRepos(t)
	ctx := context.Background()

	if err := repo.AddUser(ctx, newTestUser("ada@x.com")); err != nil {
		t.Fatalf("add user: %v", err)
	}

	// Absent keys are dropped, not merged.
	err := repo.UpdateUserPreferences(ctx, "ada@x.com", map[string]interface{}{"theme": "dark"})
	if err != nil {
		t.Fatalf("update preferences: %v", err)
	}

	user, err := repo.GetUser(ctx, "ada@x.com")
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if user.Preferences["theme"] != "dark" {
		t.Fatalf("preference not stored: %+v", user.Preferences)
	}
	if _, ok := user.Preferences["layout"]; ok {
		t.Fatalf("old preference survived replacement: %+v", user.Preferences)
	}
}

func TestUpdateUserPreferencesNilRejected(t *testing.T) {
	repo, _ := newUserRepos(t)
	ctx := context.Background()

	if err := repo.AddUser(ctx, newTestUser("ada@x.com")); err != nil {
		t.Fatalf("add user: %v", err)
	}

	err := repo.UpdateUserPreferences(ctx, "ada@x.com", nil)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}

	user, err := repo.GetUser(ctx, "ada@x.com")
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if user.Preferences["layout"] != "grid" {
		t.Fatalf("rejected update touched preferences: %+v", user.Preferences)
	}
}

func TestUpdateUserPreferencesUnknownUser(t *testing.T) {
	repo, _ := newUserRepos(t)

	err := repo.UpdateUserPreferences(context.Background(), "nobody@x.com", map[string]interface{}{})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteUserCascadesSessions(t *testing.T) {
	repo, sessions := newUserRepos(t)
	ctx := context.Background()

	if err := repo.AddUser(ctx, newTestUser("ada@x.com")); err != nil {
		t.Fatalf("add user: %v", err)
	}
	if err := sessions.CreateUserSession(ctx, "ada@x.com", "token-1"); err != nil {
		t.Fatalf("create session: %v", err)
	}

	if err := repo.DeleteUser(ctx, "ada@x.com"); err != nil {
		t.Fatalf("delete user: %v", err)
	}

	if _, err := sessions.GetUserSession(ctx, "ada@x.com"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("session orphaned after user delete: %v", err)
	}
	if _, err := repo.GetUser(ctx, "ada@x.com"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("user survived delete: %v", err)
	}
}

func TestDeleteUserWithoutSession(t *testing.T) {
	repo, _ := newUserRepos(t)
	ctx := context.Background()

	if err := repo.AddUser(ctx, newTestUser("ada@x.com")); err != nil {
		t.Fatalf("add user: %v", err)
	}

	// A user that never logged in still gets deleted.
	if err := repo.DeleteUser(ctx, "ada@x.com"); err != nil {
		t.Fatalf("delete user without session: %v", err)
	}
}

func TestDeleteUserUnknown(t *testing.T) {
	repo, _ := newUserRepos(t)

	err := repo.DeleteUser(context.Background(), "nobody@x.com")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
