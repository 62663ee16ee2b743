package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"kinblog/internal/models"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Ensure implementation of Users interface at compile time.
var _ Users = (*UserRepository)(nil)

const (
	insertUserSQL = `INSERT INTO users (id, name, email, password_hash, profile_picture, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?)`
	selectUserByEmailSQL = `SELECT id, name, email, password_hash, profile_picture, created_at, updated_at
FROM users WHERE email = ?`
	selectUserByIDSQL = `SELECT id, name, email, password_hash, profile_picture, created_at, updated_at
FROM users WHERE id = ?`
	updateProfilePictureSQL = `UPDATE users SET profile_picture = ?, updated_at = ? WHERE id = ?`
)

// Create inserts a new user row.
func (r *UserRepository) Create(ctx context.Context, u *models.User) error {
	_, err := r.db.ExecContext(ctx, insertUserSQL,
		u.ID, u.Name, u.Email, u.PasswordHash, u.ProfilePicture, u.CreatedAt, u.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert user %q: %w", u.Email, err)
	}
	return nil
}

// GetByEmail fetches a user by email. Returns (nil, nil) if not found.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	u, err := r.scanUser(r.db.QueryRowContext(ctx, selectUserByEmailSQL, email))
	if err != nil {
		return nil, fmt.Errorf("select user by email %q: %w", email, err)
	}
	return u, nil
}

// GetByID fetches a user by id. Returns (nil, nil) if not found.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	u, err := r.scanUser(r.db.QueryRowContext(ctx, selectUserByIDSQL, id))
	if err != nil {
		return nil, fmt.Errorf("select user %q: %w", id, err)
	}
	return u, nil
}

// UpdateProfilePicture sets the avatar path and bumps updated_at.
func (r *UserRepository) UpdateProfilePicture(ctx context.Context, id, path string) error {
	_, err := r.db.ExecContext(ctx, updateProfilePictureSQL, path, time.Now(), id)
	if err != nil {
		return fmt.Errorf("update profile picture for user %q: %w", id, err)
	}
	return nil
}

func (r *UserRepository) scanUser(row *sql.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.ProfilePicture, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}
