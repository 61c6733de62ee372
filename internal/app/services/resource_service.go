package services

import (
	"context"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/wilsonXeem/clong-backend/internal/app/auth"
	"github.com/wilsonXeem/clong-backend/internal/app/models"
	"github.com/wilsonXeem/clong-backend/internal/app/models/dto"
	"github.com/wilsonXeem/clong-backend/internal/pkg/apperrors"
	"github.com/wilsonXeem/clong-backend/internal/pkg/imagehost"
)

// ResourceStore is the subset of resource persistence the service needs
type ResourceStore interface {
	Create(ctx context.Context, resource *models.Resource) error
	GetPublic(ctx context.Context, category *string) ([]models.Resource, error)
	GetByUploader(ctx context.Context, userID string) ([]models.Resource, error)
	GetByID(ctx context.Context, id string) (*models.Resource, error)
	Update(ctx context.Context, resource *models.Resource) error
	Delete(ctx context.Context, id string) error
}

// ResourceService defines the interface for shared resource operations
type ResourceService interface {
	CreateResource(ctx context.Context, uploaderID string, req *dto.CreateResourceRequest, file *multipart.FileHeader) (*models.Resource, error)
	GetPublicResources(ctx context.Context, category *string) ([]models.Resource, error)
	GetMyResources(ctx context.Context, uploaderID string) ([]models.Resource, error)
	GetResourceByID(ctx context.Context, id string, actorID *string, role models.Role) (*models.Resource, error)
	UpdateResource(ctx context.Context, id, actorID string, role models.Role, req *dto.UpdateResourceRequest) (*models.Resource, error)
	DeleteResource(ctx context.Context, id, actorID string, role models.Role) error
}

// resourceServiceImpl implements ResourceService
type resourceServiceImpl struct {
	resourceRepo ResourceStore
	uploader     imagehost.Uploader
	authzService *auth.AuthorizationService
	logger       zerolog.Logger
}

// NewResourceService creates a new ResourceService
func NewResourceService(resourceRepo ResourceStore, uploader imagehost.Uploader, authzService *auth.AuthorizationService, logger zerolog.Logger) ResourceService {
	return &resourceServiceImpl{
		resourceRepo: resourceRepo,
		uploader:     uploader,
		authzService: authzService,
		logger:       logger,
	}
}

// maxResourceSize caps uploaded resource files at 10MB
const maxResourceSize = 10 << 20

var allowedResourceTypes = map[string]bool{
	"pdf": true, "doc": true, "docx": true, "xls": true, "xlsx": true,
	"ppt": true, "pptx": true, "txt": true, "csv": true,
	"jpg": true, "jpeg": true, "png": true, "gif": true, "webp": true,
	"mp3": true, "mp4": true,
}

func fileTypeOf(file *multipart.FileHeader) string {
	ext := strings.TrimPrefix(filepath.Ext(file.Filename), ".")
	if ext == "" {
		return "bin"
	}
	return strings.ToLower(ext)
}

func validateResourceFile(file *multipart.FileHeader) error {
	if file.Size > maxResourceSize {
		return apperrors.NewBadRequestError("File exceeds the 10MB limit")
	}
	if !allowedResourceTypes[fileTypeOf(file)] {
		return apperrors.NewBadRequestError("File type not allowed")
	}
	return nil
}

// CreateResource uploads the file to the image host and records it
func (s *resourceServiceImpl) CreateResource(ctx context.Context, uploaderID string, req *dto.CreateResourceRequest, file *multipart.FileHeader) (*models.Resource, error) {
	if file == nil {
		return nil, apperrors.ErrResourceFileMiss
	}
	if err := validateResourceFile(file); err != nil {
		return nil, err
	}

	result, err := s.uploader.Upload(ctx, file, "resources")
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to upload resource file")
		return nil, err
	}

	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}

	resource := &models.Resource{
		Title:       req.Title,
		Description: req.Description,
		FileURL:     result.URL,
		FileType:    fileTypeOf(file),
		Category:    req.Category,
		IsPublic:    isPublic,
		UploadedBy:  &uploaderID,
	}

	if err := s.resourceRepo.Create(ctx, resource); err != nil {
		return nil, err
	}

	s.logger.Info().Str("resourceID", resource.ID).Str("uploadedBy", uploaderID).Msg("Resource created")
	return resource, nil
}

// GetPublicResources retrieves public resources, optionally by category
func (s *resourceServiceImpl) GetPublicResources(ctx context.Context, category *string) ([]models.Resource, error) {
	return s.resourceRepo.GetPublic(ctx, category)
}

// GetMyResources retrieves the caller's own uploads, private included
func (s *resourceServiceImpl) GetMyResources(ctx context.Context, uploaderID string) ([]models.Resource, error) {
	return s.resourceRepo.GetByUploader(ctx, uploaderID)
}

// GetResourceByID retrieves a single resource. Private resources are
// only visible to their uploader or an admin.
func (s *resourceServiceImpl) GetResourceByID(ctx context.Context, id string, actorID *string, role models.Role) (*models.Resource, error) {
	resource, err := s.resourceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !resource.IsPublic {
		actor := ""
		if actorID != nil {
			actor = *actorID
		}
		if !s.authzService.CanModify(actor, role, resource.UploadedBy) {
			return nil, apperrors.ErrResourceNotFound
		}
	}

	return resource, nil
}

// UpdateResource modifies resource metadata. Only the uploader or an
// admin may do so. The stored file itself is immutable.
func (s *resourceServiceImpl) UpdateResource(ctx context.Context, id, actorID string, role models.Role, req *dto.UpdateResourceRequest) (*models.Resource, error) {
	resource, err := s.resourceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authzService.ValidateCanModify(actorID, role, resource.UploadedBy); err != nil {
		return nil, err
	}

	if req.Title != "" {
		resource.Title = req.Title
	}
	if req.Description != nil {
		resource.Description = req.Description
	}
	if req.Category != nil {
		resource.Category = req.Category
	}
	if req.IsPublic != nil {
		resource.IsPublic = *req.IsPublic
	}

	if err := s.resourceRepo.Update(ctx, resource); err != nil {
		return nil, err
	}

	return resource, nil
}

// DeleteResource removes a resource. Only the uploader or an admin may
// do so.
func (s *resourceServiceImpl) DeleteResource(ctx context.Context, id, actorID string, role models.Role) error {
	resource, err := s.resourceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.authzService.ValidateCanModify(actorID, role, resource.UploadedBy); err != nil {
		return err
	}

	if err := s.resourceRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("resourceID", id).Str("deletedBy", actorID).Msg("Resource deleted")
	return nil
}
