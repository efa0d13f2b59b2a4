package domain

import "time"

// Post is a content item. AuthorID is fixed at creation; ownership
// never transfers. A deleted author leaves AuthorID dangling, which
// listings render as "Unknown" rather than treating as corruption.
type Post struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"content"`
	AuthorID  string    `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
