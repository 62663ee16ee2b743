package models

import "time"

// Post is a published article. Author is populated from the users table
// on reads.
type Post struct {
	ID        string    `json:"_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Category  string    `json:"category,omitempty"`
	Author    Author    `json:"author"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AuthorID reports the identity the post belongs to.
func (p *Post) AuthorID() string { return p.Author.ID }
