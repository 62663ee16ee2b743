package handlers

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"kinblog/internal/models"
	"kinblog/internal/service"
)

// ---- Service Mocks ----

type mockAuth struct {
	registerUser  *models.User
	registerToken string
	registerErr   error
	loginUser     *models.User
	loginToken    string
	loginErr      error
	parseID       string
	parseErr      error

	lastRegisterEmail string
	lastLoginEmail    string
	lastParseToken    string
}

func (m *mockAuth) Register(ctx context.Context, name, email, password string) (*models.User, string, error) {
	m.lastRegisterEmail = email
	return m.registerUser, m.registerToken, m.registerErr
}

func (m *mockAuth) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	m.lastLoginEmail = email
	return m.loginUser, m.loginToken, m.loginErr
}

func (m *mockAuth) ParseToken(token string) (string, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

type mockPosts struct {
	createPost *models.Post
	createErr  error
	listPage   *service.PostPage
	listErr    error
	getPost    *models.Post
	getErr     error
	updatePost *models.Post
	updateErr  error
	deleteErr  error

	lastCreateAuthor string
	lastCreateInput  service.PostInput
	lastListQuery    service.ListQuery
	lastGetID        string
	lastUpdateID     string
	lastRequester    string
	lastPatch        service.PostPatch
	lastDeleteID     string
}

func (m *mockPosts) Create(ctx context.Context, authorID string, in service.PostInput) (*models.Post, error) {
	m.lastCreateAuthor = authorID
	m.lastCreateInput = in
	return m.createPost, m.createErr
}

func (m *mockPosts) List(ctx context.Context, q service.ListQuery) (*service.PostPage, error) {
	m.lastListQuery = q
	return m.listPage, m.listErr
}

func (m *mockPosts) GetByID(ctx context.Context, id string) (*models.Post, error) {
	m.lastGetID = id
	return m.getPost, m.getErr
}

func (m *mockPosts) Update(ctx context.Context, id, requesterID string, patch service.PostPatch) (*models.Post, error) {
	m.lastUpdateID = id
	m.lastRequester = requesterID
	m.lastPatch = patch
	return m.updatePost, m.updateErr
}

func (m *mockPosts) Delete(ctx context.Context, id, requesterID string) error {
	m.lastDeleteID = id
	m.lastRequester = requesterID
	return m.deleteErr
}

type mockComments struct {
	addComment    *models.Comment
	addErr        error
	listComments  []models.Comment
	listErr       error
	updateComment *models.Comment
	updateErr     error
	deleteErr     error

	lastPostID    string
	lastAuthorID  string
	lastContent   string
	lastCommentID string
	lastRequester string
}

func (m *mockComments) Add(ctx context.Context, postID, authorID, content string) (*models.Comment, error) {
	m.lastPostID = postID
	m.lastAuthorID = authorID
	m.lastContent = content
	return m.addComment, m.addErr
}

func (m *mockComments) ListByPost(ctx context.Context, postID string) ([]models.Comment, error) {
	m.lastPostID = postID
	return m.listComments, m.listErr
}

func (m *mockComments) Update(ctx context.Context, id, requesterID, content string) (*models.Comment, error) {
	m.lastCommentID = id
	m.lastRequester = requesterID
	m.lastContent = content
	return m.updateComment, m.updateErr
}

func (m *mockComments) Delete(ctx context.Context, id, requesterID string) error {
	m.lastCommentID = id
	m.lastRequester = requesterID
	return m.deleteErr
}

type mockProfile struct {
	user *models.User
	err  error

	lastUserID   string
	lastFilename string
}

func (m *mockProfile) SaveAvatar(ctx context.Context, userID, originalName string, src io.Reader) (*models.User, error) {
	m.lastUserID = userID
	m.lastFilename = originalName
	_, _ = io.Copy(io.Discard, src)
	return m.user, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil, "testdata")
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
