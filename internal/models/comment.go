package models

import "time"

// Comment references its post by id only; the post itself is never
// embedded in responses.
type Comment struct {
	ID        string    `json:"_id"`
	Content   string    `json:"content"`
	PostID    string    `json:"post"`
	Author    Author    `json:"author"`
	CreatedAt time.Time `json:"createdAt"`
}

// AuthorID reports the identity the comment belongs to.
func (c *Comment) AuthorID() string { return c.Author.ID }
