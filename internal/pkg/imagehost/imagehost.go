package imagehost

import (
	"context"
	"mime/multipart"
)

// UploadResult describes a file accepted by the image host
type UploadResult struct {
	URL      string // Publicly reachable URL of the stored file
	PublicID string // Host-side identifier, needed for deletion
}

// Uploader is the image storage collaborator. Files are relayed whole and only
// the returned URL/public id is persisted.
type Uploader interface {
	// Upload relays a multipart file into the given folder
	Upload(ctx context.Context, fileHeader *multipart.FileHeader, folder string) (*UploadResult, error)

	// Delete removes a previously uploaded file
	Delete(ctx context.Context, publicID string) error
}
