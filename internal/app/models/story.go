package models

import (
	"time"
)

// Story represents a user-submitted impact story
type Story struct {
	ID          string    `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Content     string    `json:"content" db:"content"`
	ImageURL    *string   `json:"imageUrl,omitempty" db:"image_url"`
	AuthorID    *string   `json:"authorId,omitempty" db:"author_id"`
	IsPublished bool      `json:"isPublished" db:"is_published"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`

	AuthorName *string `json:"authorName,omitempty"` // joined, no db column
}
