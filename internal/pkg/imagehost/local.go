package imagehost

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/wilsonXeem/clong-backend/internal/pkg/logger"
)

// LocalStorage stores uploads on the local filesystem. Used in development
// when no image host credentials are configured.
type LocalStorage struct {
	basePath string // root directory for stored files
	baseURL  string // base URL under which stored files are served
}

// NewLocalStorage creates a LocalStorage instance, ensuring the base path exists
func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}

	return &LocalStorage{
		basePath: basePath,
		baseURL:  strings.TrimRight(baseURL, "/"),
	}, nil
}

// Upload saves a multipart file under basePath/folder with a unique name
func (ls *LocalStorage) Upload(_ context.Context, fileHeader *multipart.FileHeader, folder string) (*UploadResult, error) {
	if fileHeader == nil {
		return nil, fmt.Errorf("no file provided")
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	dir := ls.basePath
	if folder != "" {
		dir = filepath.Join(ls.basePath, folder)
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return nil, fmt.Errorf("failed to create subdirectory: %w", err)
		}
	}

	// unique filename to prevent collisions
	ext := filepath.Ext(fileHeader.Filename)
	name := uuid.New().String() + ext
	dstPath := filepath.Join(dir, name)

	dst, err := os.Create(dstPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		_ = os.Remove(dstPath)
		return nil, fmt.Errorf("failed to save file content: %w", err)
	}

	publicID := name
	if folder != "" {
		publicID = folder + "/" + name
	}

	logger.Info().Str("filename", fileHeader.Filename).Str("saved_as", publicID).Msg("File saved to local storage")
	return &UploadResult{
		URL:      ls.baseURL + "/" + publicID,
		PublicID: publicID,
	}, nil
}

// Delete removes a stored file. Missing files are treated as already deleted.
func (ls *LocalStorage) Delete(_ context.Context, publicID string) error {
	if publicID == "" {
		return nil
	}

	cleaned := filepath.Clean(publicID)
	if strings.HasPrefix(cleaned, "..") || filepath.IsAbs(cleaned) {
		return fmt.Errorf("invalid file identifier: %s", publicID)
	}

	physicalPath := filepath.Join(ls.basePath, cleaned)
	if _, err := os.Stat(physicalPath); os.IsNotExist(err) {
		logger.Warn().Str("path", physicalPath).Msg("File to delete does not exist")
		return nil
	}

	if err := os.Remove(physicalPath); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	return nil
}
