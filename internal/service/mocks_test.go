package service

import (
	"context"

	"kinblog/internal/models"
	"kinblog/internal/repository"
)

// Lightweight in-test mocks for the repository interfaces. Behavior is
// supplied per test via the Fn fields; calls are recorded for assertions.

type mockUsers struct {
	CreateFn               func(u *models.User) error
	GetByEmailFn           func(email string) (*models.User, error)
	GetByIDFn              func(id string) (*models.User, error)
	UpdateProfilePictureFn func(id, path string) error

	created      []*models.User
	emailLookups []string
	idLookups    []string
	pictureSets  map[string]string
}

var _ repository.Users = (*mockUsers)(nil)

func (m *mockUsers) Create(ctx context.Context, u *models.User) error {
	m.created = append(m.created, u)
	if m.CreateFn == nil {
		return nil
	}
	return m.CreateFn(u)
}

func (m *mockUsers) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	m.emailLookups = append(m.emailLookups, email)
	if m.GetByEmailFn == nil {
		return nil, nil
	}
	return m.GetByEmailFn(email)
}

func (m *mockUsers) GetByID(ctx context.Context, id string) (*models.User, error) {
	m.idLookups = append(m.idLookups, id)
	if m.GetByIDFn == nil {
		return nil, nil
	}
	return m.GetByIDFn(id)
}

func (m *mockUsers) UpdateProfilePicture(ctx context.Context, id, path string) error {
	if m.pictureSets == nil {
		m.pictureSets = make(map[string]string)
	}
	m.pictureSets[id] = path
	if m.UpdateProfilePictureFn == nil {
		return nil
	}
	return m.UpdateProfilePictureFn(id, path)
}

type mockPostsRepo struct {
	CreateFn  func(p *models.Post) error
	GetByIDFn func(id string) (*models.Post, error)
	ListFn    func(w repository.PostWindow) ([]models.Post, error)
	CountFn   func(search string) (int, error)
	UpdateFn  func(p *models.Post) error
	DeleteFn  func(id string) (int64, error)

	created    []*models.Post
	lastWindow repository.PostWindow
	updated    []*models.Post
	deletedIDs []string
}

var _ repository.Posts = (*mockPostsRepo)(nil)

func (m *mockPostsRepo) Create(ctx context.Context, p *models.Post) error {
	m.created = append(m.created, p)
	if m.CreateFn == nil {
		return nil
	}
	return m.CreateFn(p)
}

func (m *mockPostsRepo) GetByID(ctx context.Context, id string) (*models.Post, error) {
	if m.GetByIDFn == nil {
		return nil, nil
	}
	return m.GetByIDFn(id)
}

func (m *mockPostsRepo) List(ctx context.Context, w repository.PostWindow) ([]models.Post, error) {
	m.lastWindow = w
	if m.ListFn == nil {
		return nil, nil
	}
	return m.ListFn(w)
}

func (m *mockPostsRepo) Count(ctx context.Context, search string) (int, error) {
	if m.CountFn == nil {
		return 0, nil
	}
	return m.CountFn(search)
}

func (m *mockPostsRepo) Update(ctx context.Context, p *models.Post) error {
	m.updated = append(m.updated, p)
	if m.UpdateFn == nil {
		return nil
	}
	return m.UpdateFn(p)
}

func (m *mockPostsRepo) Delete(ctx context.Context, id string) (int64, error) {
	m.deletedIDs = append(m.deletedIDs, id)
	if m.DeleteFn == nil {
		return 1, nil
	}
	return m.DeleteFn(id)
}

type mockCommentsRepo struct {
	CreateFn        func(c *models.Comment) error
	GetByIDFn       func(id string) (*models.Comment, error)
	ListByPostFn    func(postID string) ([]models.Comment, error)
	UpdateContentFn func(id, content string) error
	DeleteFn        func(id string) (int64, error)

	created    []*models.Comment
	deletedIDs []string
}

var _ repository.Comments = (*mockCommentsRepo)(nil)

func (m *mockCommentsRepo) Create(ctx context.Context, c *models.Comment) error {
	m.created = append(m.created, c)
	if m.CreateFn == nil {
		return nil
	}
	return m.CreateFn(c)
}

func (m *mockCommentsRepo) GetByID(ctx context.Context, id string) (*models.Comment, error) {
	if m.GetByIDFn == nil {
		return nil, nil
	}
	return m.GetByIDFn(id)
}

func (m *mockCommentsRepo) ListByPost(ctx context.Context, postID string) ([]models.Comment, error) {
	if m.ListByPostFn == nil {
		return nil, nil
	}
	return m.ListByPostFn(postID)
}

func (m *mockCommentsRepo) UpdateContent(ctx context.Context, id, content string) error {
	if m.UpdateContentFn == nil {
		return nil
	}
	return m.UpdateContentFn(id, content)
}

func (m *mockCommentsRepo) Delete(ctx context.Context, id string) (int64, error) {
	m.deletedIDs = append(m.deletedIDs, id)
	if m.DeleteFn == nil {
		return 1, nil
	}
	return m.DeleteFn(id)
}

// testTokens returns a TokenManager with a fixed key for auth tests.
func testTokens() *TokenManager {
	return &TokenManager{signingKey: []byte("test-signing-key"), ttl: testTokenTTL}
}
