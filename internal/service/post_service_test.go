package service

import (
	"context"
	"errors"
	"testing"

	"kinblog/internal/models"
	"kinblog/internal/repository"
)

func authorUsers(u *models.User) *mockUsers {
	return &mockUsers{
		GetByIDFn: func(id string) (*models.User, error) {
			if id == u.ID {
				return u, nil
			}
			return nil, nil
		},
	}
}

func TestPostService_Create_PopulatesAuthor(t *testing.T) {
	author := &models.User{ID: "user-1", Name: "Alice", Email: "alice@example.com", ProfilePicture: "/uploads/a.png"}
	posts := &mockPostsRepo{}
	svc := NewPostService(posts, authorUsers(author))

	p, err := svc.Create(context.Background(), "user-1", PostInput{
		Title:   "Hello World",
		Content: "Some content here",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if p.ID == "" {
		t.Fatal("expected a generated post id")
	}
	if p.Author.ID != "user-1" || p.Author.Name != "Alice" || p.Author.Email != "alice@example.com" {
		t.Fatalf("author summary not populated: %+v", p.Author)
	}
	if p.CreatedAt.IsZero() || p.UpdatedAt.IsZero() {
		t.Fatal("expected server-assigned timestamps")
	}
	if len(posts.created) != 1 {
		t.Fatalf("expected 1 repo Create call, got %d", len(posts.created))
	}
}

func TestPostService_Create_TitleBoundary(t *testing.T) {
	author := &models.User{ID: "user-1", Name: "Alice"}

	cases := []struct {
		name    string
		title   string
		wantErr bool
	}{
		{name: "two characters rejected", title: "ab", wantErr: true},
		{name: "three characters accepted", title: "abc", wantErr: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewPostService(&mockPostsRepo{}, authorUsers(author))
			_, err := svc.Create(context.Background(), "user-1", PostInput{Title: tc.title, Content: "body"})
			if tc.wantErr && !IsValidation(err) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}

	t.Run("empty content rejected", func(t *testing.T) {
		svc := NewPostService(&mockPostsRepo{}, authorUsers(author))
		_, err := svc.Create(context.Background(), "user-1", PostInput{Title: "abc", Content: "  "})
		if !IsValidation(err) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})
}

func TestPostService_List_PaginationWindow(t *testing.T) {
	// 13 posts at 6 per page: page 3 holds the single last post, pages = 3.
	posts := &mockPostsRepo{
		ListFn: func(w repository.PostWindow) ([]models.Post, error) {
			if w.Offset != 12 || w.Limit != 6 {
				t.Fatalf("window: got offset=%d limit=%d, want offset=12 limit=6", w.Offset, w.Limit)
			}
			return []models.Post{{ID: "post-13"}}, nil
		},
		CountFn: func(search string) (int, error) { return 13, nil },
	}
	svc := NewPostService(posts, &mockUsers{})

	page, err := svc.List(context.Background(), ListQuery{Page: 3, Limit: 6})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(page.Posts) != 1 {
		t.Fatalf("expected 1 post on page 3, got %d", len(page.Posts))
	}
	if page.Pagination.Total != 13 || page.Pagination.Page != 3 || page.Pagination.Pages != 3 {
		t.Fatalf("pagination: %+v", page.Pagination)
	}
}

func TestPostService_List_DefaultsAndSearchPassthrough(t *testing.T) {
	posts := &mockPostsRepo{
		CountFn: func(search string) (int, error) {
			if search != "typescript" {
				t.Fatalf("count search: got %q", search)
			}
			return 0, nil
		},
	}
	svc := NewPostService(posts, &mockUsers{})

	page, err := svc.List(context.Background(), ListQuery{Search: "typescript"})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if posts.lastWindow.Limit != 6 || posts.lastWindow.Offset != 0 {
		t.Fatalf("default window: %+v", posts.lastWindow)
	}
	if posts.lastWindow.Search != "typescript" {
		t.Fatalf("search not passed through: %q", posts.lastWindow.Search)
	}
	if page.Pagination.Page != 1 || page.Pagination.Pages != 0 {
		t.Fatalf("pagination: %+v", page.Pagination)
	}
}

func TestPostService_GetByID_NotFound(t *testing.T) {
	svc := NewPostService(&mockPostsRepo{}, &mockUsers{})
	_, err := svc.GetByID(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func existingPost() *models.Post {
	return &models.Post{
		ID:      "post-1",
		Title:   "Original title",
		Content: "Original content",
		Author:  models.Author{ID: "user-a", Name: "Alice"},
	}
}

func postsRepoWith(p *models.Post) *mockPostsRepo {
	return &mockPostsRepo{
		GetByIDFn: func(id string) (*models.Post, error) {
			if id == p.ID {
				clone := *p
				return &clone, nil
			}
			return nil, nil
		},
	}
}

func TestPostService_Update_Ownership(t *testing.T) {
	t.Run("non-author is forbidden", func(t *testing.T) {
		svc := NewPostService(postsRepoWith(existingPost()), &mockUsers{})
		title := "New title"
		_, err := svc.Update(context.Background(), "post-1", "user-b", PostPatch{Title: &title})
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("author patch applies only set fields", func(t *testing.T) {
		posts := postsRepoWith(existingPost())
		svc := NewPostService(posts, &mockUsers{})

		title := "New title"
		p, err := svc.Update(context.Background(), "post-1", "user-a", PostPatch{Title: &title})
		if err != nil {
			t.Fatalf("Update returned error: %v", err)
		}
		if p.Title != "New title" {
			t.Fatalf("title not updated: %q", p.Title)
		}
		if p.Content != "Original content" {
			t.Fatalf("content must stay untouched: %q", p.Content)
		}
		if len(posts.updated) != 1 {
			t.Fatalf("expected 1 repo Update call, got %d", len(posts.updated))
		}
	})

	t.Run("patch is re-validated", func(t *testing.T) {
		svc := NewPostService(postsRepoWith(existingPost()), &mockUsers{})
		short := "ab"
		_, err := svc.Update(context.Background(), "post-1", "user-a", PostPatch{Title: &short})
		if !IsValidation(err) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("missing post is not found", func(t *testing.T) {
		svc := NewPostService(postsRepoWith(existingPost()), &mockUsers{})
		title := "whatever"
		_, err := svc.Update(context.Background(), "missing", "user-a", PostPatch{Title: &title})
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestPostService_Delete(t *testing.T) {
	t.Run("author delete succeeds", func(t *testing.T) {
		posts := postsRepoWith(existingPost())
		svc := NewPostService(posts, &mockUsers{})
		if err := svc.Delete(context.Background(), "post-1", "user-a"); err != nil {
			t.Fatalf("Delete returned error: %v", err)
		}
		if len(posts.deletedIDs) != 1 || posts.deletedIDs[0] != "post-1" {
			t.Fatalf("deleted ids: %v", posts.deletedIDs)
		}
	})

	t.Run("non-author is forbidden", func(t *testing.T) {
		svc := NewPostService(postsRepoWith(existingPost()), &mockUsers{})
		err := svc.Delete(context.Background(), "post-1", "user-b")
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("second delete yields not found", func(t *testing.T) {
		svc := NewPostService(postsRepoWith(existingPost()), &mockUsers{})
		err := svc.Delete(context.Background(), "missing", "user-a")
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("race with concurrent delete yields not found", func(t *testing.T) {
		posts := postsRepoWith(existingPost())
		posts.DeleteFn = func(id string) (int64, error) { return 0, nil }
		svc := NewPostService(posts, &mockUsers{})
		err := svc.Delete(context.Background(), "post-1", "user-a")
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound when no rows removed, got %v", err)
		}
	})
}
