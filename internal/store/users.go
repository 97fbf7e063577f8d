package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/ativahospitalar/galinheiro/internal/model"
)

// User errors.
var (
	ErrUserNotFound  = errors.New("user not found")
	ErrUsernameTaken = errors.New("username already taken")
)

// Users returns the full user collection.
func Users(ctx context.Context, db *sql.DB) ([]model.User, error) {
	return loadCollection[model.User](ctx, db, keyUsers)
}

// SaveUsers overwrites the full user collection.
func SaveUsers(ctx context.Context, db *sql.DB, users []model.User) error {
	return saveCollection(ctx, db, keyUsers, users)
}

// FindUserByUsername returns the user with a matching username,
// compared case-insensitively, or nil when absent.
func FindUserByUsername(ctx context.Context, db *sql.DB, username string) (*model.User, error) {
	users, err := Users(ctx, db)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if strings.EqualFold(users[i].Username, username) {
			return &users[i], nil
		}
	}
	return nil, nil
}

// CreateUser appends a new user, rejecting usernames that already exist
// under case-insensitive comparison. Usernames are stored lowercased.
func CreateUser(ctx context.Context, db *sql.DB, name, username, passwordHash, role, status string) (*model.User, error) {
	users, err := Users(ctx, db)
	if err != nil {
		return nil, err
	}

	for _, u := range users {
		if strings.EqualFold(u.Username, username) {
			return nil, ErrUsernameTaken
		}
	}

	user := model.User{
		ID:           uuid.NewString(),
		Name:         name,
		Username:     strings.ToLower(username),
		PasswordHash: passwordHash,
		Role:         role,
		Status:       status,
	}

	users = append(users, user)
	if err := SaveUsers(ctx, db, users); err != nil {
		return nil, err
	}
	return &user, nil
}

// UserUpdate names exactly the mutable user fields. Nil fields are left
// untouched.
type UserUpdate struct {
	Name         *string
	Role         *string
	Status       *string
	PasswordHash *string
}

// UpdateUser merges an update command into the identified user.
func UpdateUser(ctx context.Context, db *sql.DB, id string, upd UserUpdate) (*model.User, error) {
	users, err := Users(ctx, db)
	if err != nil {
		return nil, err
	}

	for i := range users {
		if users[i].ID != id {
			continue
		}

		u := &users[i]
		if upd.Name != nil {
			u.Name = *upd.Name
		}
		if upd.Role != nil {
			u.Role = *upd.Role
		}
		if upd.Status != nil {
			u.Status = *upd.Status
		}
		if upd.PasswordHash != nil {
			u.PasswordHash = *upd.PasswordHash
		}

		if err := SaveUsers(ctx, db, users); err != nil {
			return nil, err
		}
		updated := *u
		return &updated, nil
	}

	return nil, ErrUserNotFound
}

// DeleteUser removes a user by ID.
func DeleteUser(ctx context.Context, db *sql.DB, id string) error {
	users, err := Users(ctx, db)
	if err != nil {
		return err
	}

	kept := users[:0]
	found := false
	for _, u := range users {
		if u.ID == id {
			found = true
			continue
		}
		kept = append(kept, u)
	}
	if !found {
		return ErrUserNotFound
	}

	return SaveUsers(ctx, db, kept)
}
