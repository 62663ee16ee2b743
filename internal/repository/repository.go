package repository

import (
	"context"
	"database/sql"

	"kinblog/internal/models"
)

// Users persists account records. Lookups return (nil, nil) when no row
// matches, mirroring sql.ErrNoRows without leaking it upward.
type Users interface {
	Create(ctx context.Context, u *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	UpdateProfilePicture(ctx context.Context, id, path string) error
}

// PostWindow selects a page of the post listing. Search is an optional
// case-insensitive substring matched against title or content.
type PostWindow struct {
	Search string
	Limit  int
	Offset int
}

type Posts interface {
	Create(ctx context.Context, p *models.Post) error
	GetByID(ctx context.Context, id string) (*models.Post, error)
	List(ctx context.Context, w PostWindow) ([]models.Post, error)
	Count(ctx context.Context, search string) (int, error)
	Update(ctx context.Context, p *models.Post) error
	// Delete reports how many rows were removed so callers can
	// distinguish a repeat delete from a successful one.
	Delete(ctx context.Context, id string) (int64, error)
}

type Comments interface {
	Create(ctx context.Context, c *models.Comment) error
	GetByID(ctx context.Context, id string) (*models.Comment, error)
	ListByPost(ctx context.Context, postID string) ([]models.Comment, error)
	UpdateContent(ctx context.Context, id, content string) error
	Delete(ctx context.Context, id string) (int64, error)
}

type Repository struct {
	Users    Users
	Posts    Posts
	Comments Comments
}

func NewRepository(conn *sql.DB) *Repository {
	return &Repository{
		Users:    NewUserRepository(conn),
		Posts:    NewPostRepository(conn),
		Comments: NewCommentRepository(conn),
	}
}
