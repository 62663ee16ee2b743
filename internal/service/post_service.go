package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"kinblog/internal/models"
	"kinblog/internal/repository"
)

const (
	minTitleLength  = 3
	defaultPageSize = 6
)

// PostInput carries the fields a client supplies when creating a post.
type PostInput struct {
	Title    string
	Content  string
	Category string
}

// PostPatch carries partial updates; nil fields are left unchanged.
type PostPatch struct {
	Title    *string
	Content  *string
	Category *string
}

// ListQuery selects a page of the post listing.
type ListQuery struct {
	Page   int
	Limit  int
	Search string
}

// Pagination describes the full result set a window was cut from.
type Pagination struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Pages int `json:"pages"`
}

// PostPage is one window of the listing plus its pagination envelope.
type PostPage struct {
	Posts      []models.Post `json:"posts"`
	Pagination Pagination    `json:"pagination"`
}

// PostService implements post CRUD with search, pagination and the
// ownership policy on mutations.
type PostService struct {
	posts repository.Posts
	users repository.Users
}

func NewPostService(posts repository.Posts, users repository.Users) *PostService {
	return &PostService{posts: posts, users: users}
}

func validatePost(title, content string) error {
	if utf8.RuneCountInString(strings.TrimSpace(title)) < minTitleLength {
		return Validationf("title must be at least %d characters", minTitleLength)
	}
	if strings.TrimSpace(content) == "" {
		return Validationf("content is required")
	}
	return nil
}

// Create validates and persists a new post owned by authorID, returning it
// with the author summary populated.
func (s *PostService) Create(ctx context.Context, authorID string, in PostInput) (*models.Post, error) {
	if err := validatePost(in.Title, in.Content); err != nil {
		return nil, err
	}

	author, err := s.users.GetByID(ctx, authorID)
	if err != nil {
		return nil, fmt.Errorf("lookup author: %w", err)
	}
	if author == nil {
		return nil, ErrNotFound
	}

	now := time.Now()
	p := &models.Post{
		ID:        uuid.NewString(),
		Title:     in.Title,
		Content:   in.Content,
		Category:  in.Category,
		Author:    author.Summary(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.posts.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return p, nil
}

// List returns the requested window of posts, newest-first, plus pagination
// metadata. Page defaults to 1 and limit to 6; pages = ceil(total/limit).
func (s *PostService) List(ctx context.Context, q ListQuery) (*PostPage, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = defaultPageSize
	}

	posts, err := s.posts.List(ctx, repository.PostWindow{
		Search: q.Search,
		Limit:  q.Limit,
		Offset: (q.Page - 1) * q.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	total, err := s.posts.Count(ctx, q.Search)
	if err != nil {
		return nil, fmt.Errorf("count posts: %w", err)
	}

	return &PostPage{
		Posts: posts,
		Pagination: Pagination{
			Total: total,
			Page:  q.Page,
			Pages: (total + q.Limit - 1) / q.Limit,
		},
	}, nil
}

// GetByID returns the post with its author summary or ErrNotFound.
func (s *PostService) GetByID(ctx context.Context, id string) (*models.Post, error) {
	p, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get post: %w", err)
	}
	if p == nil {
		return nil, ErrNotFound
	}
	return p, nil
}

// Update applies the patch to the post after the ownership check and
// re-validates the result.
func (s *PostService) Update(ctx context.Context, id, requesterID string, patch PostPatch) (*models.Post, error) {
	p, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get post: %w", err)
	}
	if p == nil {
		return nil, ErrNotFound
	}
	if err := assertOwner(p, requesterID); err != nil {
		return nil, err
	}

	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Content != nil {
		p.Content = *patch.Content
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if err := validatePost(p.Title, p.Content); err != nil {
		return nil, err
	}

	p.UpdatedAt = time.Now()
	if err := s.posts.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}
	return p, nil
}

// Delete removes the post after the ownership check. Deleting an already
// deleted id yields ErrNotFound, not success.
func (s *PostService) Delete(ctx context.Context, id, requesterID string) error {
	p, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get post: %w", err)
	}
	if p == nil {
		return ErrNotFound
	}
	if err := assertOwner(p, requesterID); err != nil {
		return err
	}

	affected, err := s.posts.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
