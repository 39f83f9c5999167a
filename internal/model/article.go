package model

import "time"

// Article is a blog post served by the content backend. Only published
// articles ever reach the client; the status filter lives in the query.
type Article struct {
	ID          string    `json:"id"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Excerpt     string    `json:"excerpt,omitempty"`
	BodyHTML    string    `json:"body_html,omitempty"`
	PublishedAt time.Time `json:"published_at"`
}
