package services

import (
	"context"
	"mime/multipart"

	"github.com/rs/zerolog"
	"github.com/wilsonXeem/clong-backend/internal/app/auth"
	"github.com/wilsonXeem/clong-backend/internal/app/models"
	"github.com/wilsonXeem/clong-backend/internal/app/models/dto"
	"github.com/wilsonXeem/clong-backend/internal/pkg/apperrors"
	"github.com/wilsonXeem/clong-backend/internal/pkg/imagehost"
)

// StoryStore is the subset of story persistence the service needs
type StoryStore interface {
	Create(ctx context.Context, story *models.Story) error
	GetPublished(ctx context.Context) ([]models.Story, error)
	GetByAuthor(ctx context.Context, authorID string) ([]models.Story, error)
	GetByID(ctx context.Context, id string) (*models.Story, error)
	Update(ctx context.Context, story *models.Story) error
	Delete(ctx context.Context, id string) error
}

// StoryService defines the interface for impact story operations
type StoryService interface {
	CreateStory(ctx context.Context, authorID string, req *dto.CreateStoryRequest, image *multipart.FileHeader) (*models.Story, error)
	GetPublishedStories(ctx context.Context) ([]models.Story, error)
	GetMyStories(ctx context.Context, authorID string) ([]models.Story, error)
	GetStoryByID(ctx context.Context, id string, actorID *string, role models.Role) (*models.Story, error)
	UpdateStory(ctx context.Context, id, actorID string, role models.Role, req *dto.UpdateStoryRequest, image *multipart.FileHeader) (*models.Story, error)
	DeleteStory(ctx context.Context, id, actorID string, role models.Role) error
}

// storyServiceImpl implements StoryService
type storyServiceImpl struct {
	storyRepo    StoryStore
	uploader     imagehost.Uploader
	authzService *auth.AuthorizationService
	logger       zerolog.Logger
}

// NewStoryService creates a new StoryService
func NewStoryService(storyRepo StoryStore, uploader imagehost.Uploader, authzService *auth.AuthorizationService, logger zerolog.Logger) StoryService {
	return &storyServiceImpl{
		storyRepo:    storyRepo,
		uploader:     uploader,
		authzService: authzService,
		logger:       logger,
	}
}

// CreateStory submits an impact story for the signed-in author
func (s *storyServiceImpl) CreateStory(ctx context.Context, authorID string, req *dto.CreateStoryRequest, image *multipart.FileHeader) (*models.Story, error) {
	story := &models.Story{
		Title:       req.Title,
		Content:     req.Content,
		AuthorID:    &authorID,
		IsPublished: req.IsPublished,
	}

	if image != nil {
		result, err := s.uploader.Upload(ctx, image, "stories")
		if err != nil {
			s.logger.Error().Err(err).Msg("Failed to upload story image")
			return nil, err
		}
		story.ImageURL = &result.URL
	}

	if err := s.storyRepo.Create(ctx, story); err != nil {
		return nil, err
	}

	s.logger.Info().Str("storyID", story.ID).Str("authorID", authorID).Msg("Story created")
	return story, nil
}

// GetPublishedStories retrieves all published stories
func (s *storyServiceImpl) GetPublishedStories(ctx context.Context) ([]models.Story, error) {
	return s.storyRepo.GetPublished(ctx)
}

// GetMyStories retrieves the caller's own stories, drafts included
func (s *storyServiceImpl) GetMyStories(ctx context.Context, authorID string) ([]models.Story, error) {
	return s.storyRepo.GetByAuthor(ctx, authorID)
}

// GetStoryByID retrieves a single story. Drafts are only visible to
// their author or an admin.
func (s *storyServiceImpl) GetStoryByID(ctx context.Context, id string, actorID *string, role models.Role) (*models.Story, error) {
	story, err := s.storyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !story.IsPublished {
		actor := ""
		if actorID != nil {
			actor = *actorID
		}
		if !s.authzService.CanModify(actor, role, story.AuthorID) {
			return nil, apperrors.ErrStoryNotFound
		}
	}

	return story, nil
}

// UpdateStory modifies a story. Only the author or an admin may do so.
func (s *storyServiceImpl) UpdateStory(ctx context.Context, id, actorID string, role models.Role, req *dto.UpdateStoryRequest, image *multipart.FileHeader) (*models.Story, error) {
	story, err := s.storyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authzService.ValidateCanModify(actorID, role, story.AuthorID); err != nil {
		return nil, err
	}

	if req.Title != "" {
		story.Title = req.Title
	}
	if req.Content != "" {
		story.Content = req.Content
	}
	if req.ImageURL != nil {
		story.ImageURL = req.ImageURL
	}
	story.IsPublished = req.IsPublished

	if image != nil {
		result, err := s.uploader.Upload(ctx, image, "stories")
		if err != nil {
			s.logger.Error().Err(err).Msg("Failed to upload story image")
			return nil, err
		}
		story.ImageURL = &result.URL
	}

	if err := s.storyRepo.Update(ctx, story); err != nil {
		return nil, err
	}

	return story, nil
}

// DeleteStory removes a story. Only the author or an admin may do so.
func (s *storyServiceImpl) DeleteStory(ctx context.Context, id, actorID string, role models.Role) error {
	story, err := s.storyRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.authzService.ValidateCanModify(actorID, role, story.AuthorID); err != nil {
		return err
	}

	if err := s.storyRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("storyID", id).Str("deletedBy", actorID).Msg("Story deleted")
	return nil
}
