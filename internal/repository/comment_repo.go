package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"kinblog/internal/models"
)

type CommentRepository struct {
	db *sql.DB
}

func NewCommentRepository(db *sql.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

// Ensure implementation of Comments interface at compile time.
var _ Comments = (*CommentRepository)(nil)

const (
	insertCommentSQL = `INSERT INTO comments (id, content, post_id, author_id, created_at)
VALUES (?, ?, ?, ?, ?)`

	selectCommentByIDSQL = `SELECT c.id, c.content, c.post_id, c.created_at,
       u.id, u.name
FROM comments c
JOIN users u ON u.id = c.author_id
WHERE c.id = ?`

	listCommentsByPostSQL = `SELECT c.id, c.content, c.post_id, c.created_at,
       u.id, u.name
FROM comments c
JOIN users u ON u.id = c.author_id
WHERE c.post_id = ?
ORDER BY c.created_at DESC`

	updateCommentSQL = `UPDATE comments SET content = ? WHERE id = ?`

	deleteCommentSQL = `DELETE FROM comments WHERE id = ?`
)

// Create inserts a new comment row. The referenced post is not checked
// to exist.
func (r *CommentRepository) Create(ctx context.Context, c *models.Comment) error {
	_, err := r.db.ExecContext(ctx, insertCommentSQL,
		c.ID, c.Content, c.PostID, c.Author.ID, c.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert comment %q: %w", c.ID, err)
	}
	return nil
}

// GetByID fetches a comment with its author name. Returns (nil, nil) if not found.
func (r *CommentRepository) GetByID(ctx context.Context, id string) (*models.Comment, error) {
	var c models.Comment
	err := r.db.QueryRowContext(ctx, selectCommentByIDSQL, id).Scan(
		&c.ID, &c.Content, &c.PostID, &c.CreatedAt,
		&c.Author.ID, &c.Author.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select comment %q: %w", id, err)
	}
	return &c, nil
}

// ListByPost returns the post's comments newest-first with author names attached.
func (r *CommentRepository) ListByPost(ctx context.Context, postID string) ([]models.Comment, error) {
	rows, err := r.db.QueryContext(ctx, listCommentsByPostSQL, postID)
	if err != nil {
		return nil, fmt.Errorf("list comments for post %q: %w", postID, err)
	}
	defer rows.Close()

	comments := make([]models.Comment, 0)
	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(
			&c.ID, &c.Content, &c.PostID, &c.CreatedAt,
			&c.Author.ID, &c.Author.Name); err != nil {
			return nil, fmt.Errorf("scan comment row: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate comment rows: %w", err)
	}
	return comments, nil
}

// UpdateContent replaces the comment body.
func (r *CommentRepository) UpdateContent(ctx context.Context, id, content string) error {
	_, err := r.db.ExecContext(ctx, updateCommentSQL, content, id)
	if err != nil {
		return fmt.Errorf("update comment %q: %w", id, err)
	}
	return nil
}

// Delete removes the comment row and reports the number of rows affected.
func (r *CommentRepository) Delete(ctx context.Context, id string) (int64, error) {
	res, err := r.db.ExecContext(ctx, deleteCommentSQL, id)
	if err != nil {
		return 0, fmt.Errorf("delete comment %q: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected for comment %q: %w", id, err)
	}
	return affected, nil
}
