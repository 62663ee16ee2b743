package service

import (
	"context"
	"io"

	"kinblog/internal/config"
	"kinblog/internal/models"
	"kinblog/internal/repository"
)

type Authorization interface {
	Register(ctx context.Context, name, email, password string) (*models.User, string, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	ParseToken(accessToken string) (string, error)
}

// Posts exposes post CRUD with search, pagination and ownership checks.
type Posts interface {
	Create(ctx context.Context, authorID string, in PostInput) (*models.Post, error)
	List(ctx context.Context, q ListQuery) (*PostPage, error)
	GetByID(ctx context.Context, id string) (*models.Post, error)
	Update(ctx context.Context, id, requesterID string, patch PostPatch) (*models.Post, error)
	Delete(ctx context.Context, id, requesterID string) error
}

// Comments exposes comment CRUD scoped to a post, with ownership checks.
type Comments interface {
	Add(ctx context.Context, postID, authorID, content string) (*models.Comment, error)
	ListByPost(ctx context.Context, postID string) ([]models.Comment, error)
	Update(ctx context.Context, id, requesterID, content string) (*models.Comment, error)
	Delete(ctx context.Context, id, requesterID string) error
}

// Profile exposes avatar upload for the authenticated user.
type Profile interface {
	SaveAvatar(ctx context.Context, userID, originalName string, src io.Reader) (*models.User, error)
}

//
// Root Service aggregates all sub-services.
//

type Service struct {
	Authorization
	Posts
	Comments
	Profile
}

// NewService wires the repository layer and configuration into concrete
// services. Config is passed explicitly; nothing reads ambient state.
func NewService(repos *repository.Repository, cfg *config.Config) *Service {
	tokens := NewTokenManager(cfg.Auth)
	return &Service{
		Authorization: NewAuthService(repos.Users, tokens),
		Posts:         NewPostService(repos.Posts, repos.Users),
		Comments:      NewCommentService(repos.Comments, repos.Users),
		Profile:       NewProfileService(repos.Users, cfg.UploadDir),
	}
}
