package dto

// CreateArticleRequest is the multipart form payload for article/blog creation.
// An optional "featuredImage" file part is relayed to the image host.
type CreateArticleRequest struct {
	Title         string  `form:"title" binding:"required" validate:"required,min=2,max=255"`
	Slug          *string `form:"slug" validate:"omitempty,max=255"` // derived from title when omitted
	Excerpt       *string `form:"excerpt"`
	Content       string  `form:"content" binding:"required" validate:"required"`
	FeaturedImage *string `form:"featuredImage"`
	Type          *string `form:"type" validate:"omitempty,oneof=article blog"`
}

// UpdateArticleRequest is the payload for article updates
type UpdateArticleRequest struct {
	Title         string  `json:"title" validate:"omitempty,min=2,max=255"`
	Slug          *string `json:"slug,omitempty" validate:"omitempty,max=255"`
	Excerpt       *string `json:"excerpt,omitempty"`
	Content       string  `json:"content" validate:"omitempty"`
	FeaturedImage *string `json:"featuredImage,omitempty"`
	Type          *string `json:"type,omitempty" validate:"omitempty,oneof=article blog"`
}

// CreateStoryRequest is the multipart form payload for story creation.
// An optional "image" file part is relayed to the image host.
type CreateStoryRequest struct {
	Title       string `form:"title" binding:"required" validate:"required,min=2,max=255"`
	Content     string `form:"content" binding:"required" validate:"required"`
	IsPublished bool   `form:"isPublished"`
}

// UpdateStoryRequest is the multipart form payload for story updates
type UpdateStoryRequest struct {
	Title       string  `form:"title" validate:"omitempty,min=2,max=255"`
	Content     string  `form:"content" validate:"omitempty"`
	ImageURL    *string `form:"imageUrl"`
	IsPublished bool    `form:"isPublished"`
}
