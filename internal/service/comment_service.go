package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"kinblog/internal/models"
	"kinblog/internal/repository"
)

// CommentService implements comment CRUD with the same ownership policy
// as posts.
type CommentService struct {
	comments repository.Comments
	users    repository.Users
}

func NewCommentService(comments repository.Comments, users repository.Users) *CommentService {
	return &CommentService{comments: comments, users: users}
}

// Add persists a comment referencing postID. The post itself is not
// checked to exist; orphaned comments are possible.
func (s *CommentService) Add(ctx context.Context, postID, authorID, content string) (*models.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, Validationf("content is required")
	}

	author, err := s.users.GetByID(ctx, authorID)
	if err != nil {
		return nil, fmt.Errorf("lookup author: %w", err)
	}
	if author == nil {
		return nil, ErrNotFound
	}

	c := &models.Comment{
		ID:        uuid.NewString(),
		Content:   content,
		PostID:    postID,
		Author:    models.Author{ID: author.ID, Name: author.Name},
		CreatedAt: time.Now(),
	}
	if err := s.comments.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	return c, nil
}

// ListByPost returns the post's comments newest-first.
func (s *CommentService) ListByPost(ctx context.Context, postID string) ([]models.Comment, error) {
	comments, err := s.comments.ListByPost(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}

// Update replaces the comment body after the ownership check.
func (s *CommentService) Update(ctx context.Context, id, requesterID, content string) (*models.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, Validationf("content is required")
	}

	c, err := s.comments.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get comment: %w", err)
	}
	if c == nil {
		return nil, ErrNotFound
	}
	if err := assertOwner(c, requesterID); err != nil {
		return nil, err
	}

	if err := s.comments.UpdateContent(ctx, id, content); err != nil {
		return nil, fmt.Errorf("update comment: %w", err)
	}
	c.Content = content
	return c, nil
}

// Delete removes the comment after the ownership check; a repeat delete
// yields ErrNotFound.
func (s *CommentService) Delete(ctx context.Context, id, requesterID string) error {
	c, err := s.comments.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get comment: %w", err)
	}
	if c == nil {
		return ErrNotFound
	}
	if err := assertOwner(c, requesterID); err != nil {
		return err
	}

	affected, err := s.comments.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
