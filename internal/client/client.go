// Package client is a typed consumer of the KinBlog HTTP API. It decodes
// the {success,data|message} envelope and keeps the local session current.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"kinblog/internal/models"
)

const requestTimeout = 15 * time.Second

// APIError is a non-2xx response, carrying the server's message.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// Pagination mirrors the listing envelope returned by GET /posts.
type Pagination struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Pages int `json:"pages"`
}

// PostList is one page of posts plus its pagination metadata.
type PostList struct {
	Posts      []models.Post `json:"posts"`
	Pagination Pagination    `json:"pagination"`
}

// PostPatch carries partial post updates; nil fields are omitted from the
// request body.
type PostPatch struct {
	Title    *string `json:"title,omitempty"`
	Content  *string `json:"content,omitempty"`
	Category *string `json:"category,omitempty"`
}

// sessionData is the auth response payload: user identity plus token.
type sessionData struct {
	UserInfo
	Token string `json:"token"`
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Client talks to one KinBlog server on behalf of one session.
type Client struct {
	baseURL string
	http    *http.Client
	session *SessionStore
}

func New(baseURL string, session *SessionStore) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: requestTimeout},
		session: session,
	}
}

// Session exposes the underlying session store.
func (c *Client) Session() *SessionStore { return c.session }

// doJSON sends a JSON request and decodes the envelope's data into out
// (skipped when out is nil). authed requests attach the session token.
func (c *Client) doJSON(ctx context.Context, method, path string, body, out any, authed bool) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(raw)
	}
	return c.do(ctx, method, path, reader, "application/json", out, authed)
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, out any, authed bool) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", contentType)
	}
	if authed {
		sess := c.session.Current()
		if !sess.Authenticated() {
			return &APIError{StatusCode: http.StatusUnauthorized, Message: "not logged in"}
		}
		req.Header.Set("Authorization", "Bearer "+sess.Token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decode response for %s %s: %w", method, path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 || !env.Success {
		msg := env.Message
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return &APIError{StatusCode: resp.StatusCode, Message: msg}
	}
	if out != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode data for %s %s: %w", method, path, err)
		}
	}
	return nil
}

// saveSession persists the token and user from an auth response together.
func (c *Client) saveSession(data sessionData) (*UserInfo, error) {
	user := data.UserInfo
	if err := c.session.Save(Session{Token: data.Token, User: &user}); err != nil {
		return nil, err
	}
	return &user, nil
}

// Register creates an account and signs the session in.
func (c *Client) Register(ctx context.Context, name, email, password string) (*UserInfo, error) {
	var data sessionData
	err := c.doJSON(ctx, http.MethodPost, "/auth/register",
		map[string]string{"name": name, "email": email, "password": password}, &data, false)
	if err != nil {
		return nil, err
	}
	return c.saveSession(data)
}

// Login signs the session in with existing credentials.
func (c *Client) Login(ctx context.Context, email, password string) (*UserInfo, error) {
	var data sessionData
	err := c.doJSON(ctx, http.MethodPost, "/auth/login",
		map[string]string{"email": email, "password": password}, &data, false)
	if err != nil {
		return nil, err
	}
	return c.saveSession(data)
}

// Logout is client-side only: the stored token and user are dropped.
func (c *Client) Logout() error {
	return c.session.Clear()
}

// ListPosts fetches one page of posts. Zero page/limit defer to server
// defaults; search filters title/content case-insensitively.
func (c *Client) ListPosts(ctx context.Context, page, limit int, search string) (*PostList, error) {
	q := make([]string, 0, 3)
	if page > 0 {
		q = append(q, "page="+strconv.Itoa(page))
	}
	if limit > 0 {
		q = append(q, "limit="+strconv.Itoa(limit))
	}
	if search != "" {
		q = append(q, "search="+url.QueryEscape(search))
	}
	path := "/posts"
	if len(q) > 0 {
		path += "?" + strings.Join(q, "&")
	}

	var list PostList
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &list, false); err != nil {
		return nil, err
	}
	return &list, nil
}

func (c *Client) GetPost(ctx context.Context, id string) (*models.Post, error) {
	var post models.Post
	if err := c.doJSON(ctx, http.MethodGet, "/posts/"+id, nil, &post, false); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *Client) CreatePost(ctx context.Context, title, content, category string) (*models.Post, error) {
	var post models.Post
	err := c.doJSON(ctx, http.MethodPost, "/posts",
		map[string]string{"title": title, "content": content, "category": category}, &post, true)
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *Client) UpdatePost(ctx context.Context, id string, patch PostPatch) (*models.Post, error) {
	var post models.Post
	if err := c.doJSON(ctx, http.MethodPut, "/posts/"+id, patch, &post, true); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *Client) DeletePost(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/posts/"+id, nil, nil, true)
}

func (c *Client) ListComments(ctx context.Context, postID string) ([]models.Comment, error) {
	var comments []models.Comment
	if err := c.doJSON(ctx, http.MethodGet, "/posts/"+postID+"/comments", nil, &comments, false); err != nil {
		return nil, err
	}
	return comments, nil
}

func (c *Client) AddComment(ctx context.Context, postID, content string) (*models.Comment, error) {
	var comment models.Comment
	err := c.doJSON(ctx, http.MethodPost, "/posts/"+postID+"/comments",
		map[string]string{"content": content}, &comment, true)
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (c *Client) UpdateComment(ctx context.Context, id, content string) (*models.Comment, error) {
	var comment models.Comment
	err := c.doJSON(ctx, http.MethodPut, "/comments/"+id,
		map[string]string{"content": content}, &comment, true)
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (c *Client) DeleteComment(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/comments/"+id, nil, nil, true)
}

// UploadAvatar sends the file as the multipart "image" field and refreshes
// the stored user with the server's response.
func (c *Client) UploadAvatar(ctx context.Context, filePath string) (*UserInfo, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open upload file: %w", err)
	}
	defer f.Close()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("image", filepath.Base(filePath))
	if err != nil {
		return nil, fmt.Errorf("build multipart body: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, fmt.Errorf("read upload file: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("finish multipart body: %w", err)
	}

	var updated UserInfo
	if err := c.do(ctx, http.MethodPost, "/users/profile/upload", &buf, mw.FormDataContentType(), &updated, true); err != nil {
		return nil, err
	}

	// keep the persisted user in sync with the server
	sess := c.session.Current()
	sess.User = &updated
	if err := c.session.Save(sess); err != nil {
		return nil, err
	}
	return &updated, nil
}
