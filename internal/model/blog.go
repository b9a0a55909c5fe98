package model

import "time"

// Author is the public summary of a blog post's author.
type Author struct {
	Username string `json:"username,omitempty"`
	FullName string `json:"full_name,omitempty"`
}

// BlogPost is a published article.
type BlogPost struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Content   string    `json:"content,omitempty"`
	Excerpt   *string   `json:"excerpt"`
	AuthorID  *string   `json:"author_id,omitempty"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Author    *Author   `json:"profiles,omitempty"`
}
