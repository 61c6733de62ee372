package models

import (
	"time"
)

// Resource represents a downloadable file shared by a user
type Resource struct {
	ID          string    `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description *string   `json:"description,omitempty" db:"description"`
	FileURL     string    `json:"fileUrl" db:"file_url"`
	FileType    string    `json:"fileType" db:"file_type"`
	Category    *string   `json:"category,omitempty" db:"category"`
	IsPublic    bool      `json:"isPublic" db:"is_public"`
	UploadedBy  *string   `json:"uploadedBy,omitempty" db:"uploaded_by"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}
