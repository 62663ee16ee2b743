package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"kinblog/internal/models"
)

type PostRepository struct {
	db *sql.DB
}

func NewPostRepository(db *sql.DB) *PostRepository {
	return &PostRepository{db: db}
}

// Ensure implementation of Posts interface at compile time.
var _ Posts = (*PostRepository)(nil)

const (
	insertPostSQL = `INSERT INTO posts (id, title, content, category, author_id, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?)`

	selectPostByIDSQL = `SELECT p.id, p.title, p.content, p.category, p.created_at, p.updated_at,
       u.id, u.name, u.email, u.profile_picture
FROM posts p
JOIN users u ON u.id = p.author_id
WHERE p.id = ?`

	// Search matches title or content case-insensitively; listing is
	// always newest-first.
	listPostsSQL = `SELECT p.id, p.title, p.content, p.category, p.created_at, p.updated_at,
       u.id, u.name, u.email, u.profile_picture
FROM posts p
JOIN users u ON u.id = p.author_id
WHERE (? = '' OR lower(p.title) LIKE '%' || lower(?) || '%' OR lower(p.content) LIKE '%' || lower(?) || '%')
ORDER BY p.created_at DESC
LIMIT ? OFFSET ?`

	countPostsSQL = `SELECT COUNT(*) FROM posts p
WHERE (? = '' OR lower(p.title) LIKE '%' || lower(?) || '%' OR lower(p.content) LIKE '%' || lower(?) || '%')`

	updatePostSQL = `UPDATE posts SET title = ?, content = ?, category = ?, updated_at = ? WHERE id = ?`

	deletePostSQL = `DELETE FROM posts WHERE id = ?`
)

// Create inserts a new post row.
func (r *PostRepository) Create(ctx context.Context, p *models.Post) error {
	_, err := r.db.ExecContext(ctx, insertPostSQL,
		p.ID, p.Title, p.Content, p.Category, p.Author.ID, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert post %q: %w", p.ID, err)
	}
	return nil
}

// GetByID fetches a post with its author summary. Returns (nil, nil) if not found.
func (r *PostRepository) GetByID(ctx context.Context, id string) (*models.Post, error) {
	var p models.Post
	err := r.db.QueryRowContext(ctx, selectPostByIDSQL, id).Scan(
		&p.ID, &p.Title, &p.Content, &p.Category, &p.CreatedAt, &p.UpdatedAt,
		&p.Author.ID, &p.Author.Name, &p.Author.Email, &p.Author.ProfilePicture)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select post %q: %w", id, err)
	}
	return &p, nil
}

// List returns the window of posts matching w, newest-first, authors populated.
func (r *PostRepository) List(ctx context.Context, w PostWindow) ([]models.Post, error) {
	rows, err := r.db.QueryContext(ctx, listPostsSQL,
		w.Search, w.Search, w.Search, w.Limit, w.Offset)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	posts := make([]models.Post, 0)
	for rows.Next() {
		var p models.Post
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Content, &p.Category, &p.CreatedAt, &p.UpdatedAt,
			&p.Author.ID, &p.Author.Name, &p.Author.Email, &p.Author.ProfilePicture); err != nil {
			return nil, fmt.Errorf("scan post row: %w", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate post rows: %w", err)
	}
	return posts, nil
}

// Count returns how many posts match the search term (all posts if empty).
func (r *PostRepository) Count(ctx context.Context, search string) (int, error) {
	var total int
	err := r.db.QueryRowContext(ctx, countPostsSQL, search, search, search).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count posts: %w", err)
	}
	return total, nil
}

// Update persists the mutable fields of p.
func (r *PostRepository) Update(ctx context.Context, p *models.Post) error {
	_, err := r.db.ExecContext(ctx, updatePostSQL,
		p.Title, p.Content, p.Category, p.UpdatedAt, p.ID)
	if err != nil {
		return fmt.Errorf("update post %q: %w", p.ID, err)
	}
	return nil
}

// Delete removes the post row and reports the number of rows affected.
func (r *PostRepository) Delete(ctx context.Context, id string) (int64, error) {
	res, err := r.db.ExecContext(ctx, deletePostSQL, id)
	if err != nil {
		return 0, fmt.Errorf("delete post %q: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected for post %q: %w", id, err)
	}
	return affected, nil
}
