package models

import (
	"time"
)

// ContentType distinguishes articles from blog posts; both share one table
type ContentType string

const (
	ContentArticle ContentType = "article"
	ContentBlog    ContentType = "blog"
)

// Article represents a published article or blog post
type Article struct {
	ID            string      `json:"id" db:"id"`
	Title         string      `json:"title" db:"title"`
	Slug          string      `json:"slug" db:"slug"`
	Excerpt       *string     `json:"excerpt,omitempty" db:"excerpt"`
	Content       string      `json:"content" db:"content"`
	FeaturedImage *string     `json:"featuredImage,omitempty" db:"featured_image"`
	Type          ContentType `json:"type" db:"type"`
	AuthorID      string      `json:"authorId" db:"author_id"`
	IsPublished   bool        `json:"isPublished" db:"is_published"`
	PublishedAt   *time.Time  `json:"publishedAt,omitempty" db:"published_at"`
	CreatedAt     time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time   `json:"updatedAt" db:"updated_at"`
}
