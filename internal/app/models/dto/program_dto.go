package dto

// CreateProgramRequest is the multipart form payload for program creation.
// An optional "image" file part is relayed to the image host.
type CreateProgramRequest struct {
	Title        string  `form:"title" binding:"required" validate:"required,min=2,max=255"`
	Description  string  `form:"description" binding:"required" validate:"required"`
	TargetAmount *string `form:"targetAmount" validate:"omitempty"`
	StartDate    *string `form:"startDate" validate:"omitempty"` // RFC 3339
	EndDate      *string `form:"endDate" validate:"omitempty"`
}

// UpdateProgramRequest is the payload for program updates
type UpdateProgramRequest struct {
	Title        string  `json:"title" validate:"omitempty,min=2,max=255"`
	Description  string  `json:"description" validate:"omitempty"`
	ImageURL     *string `json:"imageUrl,omitempty"`
	TargetAmount *string `json:"targetAmount,omitempty"`
	StartDate    *string `json:"startDate,omitempty"`
	EndDate      *string `json:"endDate,omitempty"`
}
