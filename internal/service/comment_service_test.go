package service

import (
	"context"
	"errors"
	"testing"

	"kinblog/internal/models"
)

func TestCommentService_Add_AttachesReferences(t *testing.T) {
	author := &models.User{ID: "user-1", Name: "Alice", Email: "alice@example.com"}
	comments := &mockCommentsRepo{}
	svc := NewCommentService(comments, authorUsers(author))

	c, err := svc.Add(context.Background(), "post-9", "user-1", "nice post")
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if c.PostID != "post-9" {
		t.Fatalf("post reference: got %q, want %q", c.PostID, "post-9")
	}
	if c.Author.ID != "user-1" || c.Author.Name != "Alice" {
		t.Fatalf("author reference: %+v", c.Author)
	}
	if c.CreatedAt.IsZero() {
		t.Fatal("expected a server-assigned timestamp")
	}
	if len(comments.created) != 1 {
		t.Fatalf("expected 1 repo Create call, got %d", len(comments.created))
	}
}

func TestCommentService_Add_EmptyContentRejected(t *testing.T) {
	svc := NewCommentService(&mockCommentsRepo{}, &mockUsers{})
	_, err := svc.Add(context.Background(), "post-9", "user-1", "   ")
	if !IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func existingComment() *models.Comment {
	return &models.Comment{
		ID:      "comment-1",
		Content: "original",
		PostID:  "post-9",
		Author:  models.Author{ID: "user-a", Name: "Alice"},
	}
}

func commentsRepoWith(c *models.Comment) *mockCommentsRepo {
	return &mockCommentsRepo{
		GetByIDFn: func(id string) (*models.Comment, error) {
			if id == c.ID {
				clone := *c
				return &clone, nil
			}
			return nil, nil
		},
	}
}

func TestCommentService_Update_Ownership(t *testing.T) {
	t.Run("non-author is forbidden", func(t *testing.T) {
		svc := NewCommentService(commentsRepoWith(existingComment()), &mockUsers{})
		_, err := svc.Update(context.Background(), "comment-1", "user-b", "edited")
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("author edit succeeds", func(t *testing.T) {
		svc := NewCommentService(commentsRepoWith(existingComment()), &mockUsers{})
		c, err := svc.Update(context.Background(), "comment-1", "user-a", "edited")
		if err != nil {
			t.Fatalf("Update returned error: %v", err)
		}
		if c.Content != "edited" {
			t.Fatalf("content: got %q", c.Content)
		}
	})

	t.Run("missing comment is not found", func(t *testing.T) {
		svc := NewCommentService(commentsRepoWith(existingComment()), &mockUsers{})
		_, err := svc.Update(context.Background(), "missing", "user-a", "edited")
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestCommentService_Delete(t *testing.T) {
	t.Run("author delete succeeds then repeats as not found", func(t *testing.T) {
		comments := commentsRepoWith(existingComment())
		svc := NewCommentService(comments, &mockUsers{})

		if err := svc.Delete(context.Background(), "comment-1", "user-a"); err != nil {
			t.Fatalf("Delete returned error: %v", err)
		}

		// second delete: the row is gone
		comments.GetByIDFn = func(id string) (*models.Comment, error) { return nil, nil }
		err := svc.Delete(context.Background(), "comment-1", "user-a")
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound on repeat delete, got %v", err)
		}
	})

	t.Run("non-author is forbidden", func(t *testing.T) {
		svc := NewCommentService(commentsRepoWith(existingComment()), &mockUsers{})
		err := svc.Delete(context.Background(), "comment-1", "user-b")
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})
}
