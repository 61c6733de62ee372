package dto

// CreateResourceRequest is the multipart form payload for resource creation.
// The required "file" part is validated and relayed to the image host.
type CreateResourceRequest struct {
	Title       string  `form:"title" binding:"required" validate:"required,min=2,max=255"`
	Description *string `form:"description"`
	Category    *string `form:"category" validate:"omitempty,max=100"`
	IsPublic    *bool   `form:"isPublic"` // defaults to true
}

// UpdateResourceRequest is the payload for resource metadata updates
type UpdateResourceRequest struct {
	Title       string  `json:"title" validate:"omitempty,min=2,max=255"`
	Description *string `json:"description,omitempty"`
	Category    *string `json:"category,omitempty" validate:"omitempty,max=100"`
	IsPublic    *bool   `json:"isPublic,omitempty"`
}

// UploadResponse is the result of relaying a file to the image host
type UploadResponse struct {
	URL      string `json:"url" example:"https://res.cloudinary.com/demo/image/upload/v1/clong/abc123.jpg"`
	PublicID string `json:"publicId" example:"clong/abc123"`
}
