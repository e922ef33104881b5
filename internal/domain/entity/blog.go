// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Blog is a published community post. Only posts with status "published"
// are served by the public API.
type Blog struct {
	ID           uuid.UUID  `json:"id"`
	Title        string     `json:"title"`
	Slug         string     `json:"slug"`
	Content      string     `json:"content"`
	Excerpt      string     `json:"excerpt,omitempty"`
	BlogImageURL string     `json:"blog_image_url,omitempty"`
	AuthorID     *uuid.UUID `json:"author_id,omitempty"`
	Status       string     `json:"status"`
	PublishedAt  *time.Time `json:"published_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// BlogStatusPublished marks posts visible to the public API.
const BlogStatusPublished = "published"
