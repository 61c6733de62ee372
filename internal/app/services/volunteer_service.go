package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"github.com/wilsonXeem/clong-backend/internal/app/models"
	"github.com/wilsonXeem/clong-backend/internal/app/models/dto"
	"github.com/wilsonXeem/clong-backend/internal/pkg/apperrors"
)

// VolunteerStore is the subset of volunteer persistence the service needs
type VolunteerStore interface {
	Create(ctx context.Context, volunteer *models.Volunteer) error
	GetAll(ctx context.Context, status *models.VolunteerStatus) ([]models.Volunteer, error)
	GetByID(ctx context.Context, id string) (*models.Volunteer, error)
	GetByEmail(ctx context.Context, email string) (*models.Volunteer, error)
	GetByUserID(ctx context.Context, userID string) (*models.Volunteer, error)
	UpdateStatus(ctx context.Context, id string, status models.VolunteerStatus) error
}

// VolunteerService defines the interface for volunteer application operations
type VolunteerService interface {
	Apply(ctx context.Context, userID *string, req *dto.ApplyVolunteerRequest) (*models.Volunteer, error)
	GetVolunteers(ctx context.Context, status *models.VolunteerStatus) ([]models.Volunteer, error)
	GetVolunteerByID(ctx context.Context, id string) (*models.Volunteer, error)
	GetMyApplication(ctx context.Context, userID string) (*models.Volunteer, error)
	UpdateStatus(ctx context.Context, id string, status models.VolunteerStatus) (*models.Volunteer, error)
}

// volunteerServiceImpl implements VolunteerService
type volunteerServiceImpl struct {
	volunteerRepo VolunteerStore
	logger        zerolog.Logger
}

// NewVolunteerService creates a new VolunteerService
func NewVolunteerService(volunteerRepo VolunteerStore, logger zerolog.Logger) VolunteerService {
	return &volunteerServiceImpl{
		volunteerRepo: volunteerRepo,
		logger:        logger,
	}
}

// Apply submits a volunteer application. One application per email.
func (s *volunteerServiceImpl) Apply(ctx context.Context, userID *string, req *dto.ApplyVolunteerRequest) (*models.Volunteer, error) {
	existing, err := s.volunteerRepo.GetByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, apperrors.ErrVolunteerNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.ErrVolunteerAlreadyExists
	}

	volunteer := &models.Volunteer{
		UserID:       userID,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		Skills:       req.Skills,
		Availability: req.Availability,
		Interests:    req.Interests,
		Experience:   req.Experience,
		Motivation:   req.Motivation,
	}

	if err := s.volunteerRepo.Create(ctx, volunteer); err != nil {
		return nil, err
	}

	s.logger.Info().Str("volunteerID", volunteer.ID).Str("email", volunteer.Email).Msg("Volunteer application submitted")
	return volunteer, nil
}

// GetVolunteers retrieves applications, optionally filtered by status
func (s *volunteerServiceImpl) GetVolunteers(ctx context.Context, status *models.VolunteerStatus) ([]models.Volunteer, error) {
	if status != nil && !models.ValidVolunteerStatus(*status) {
		return nil, apperrors.NewBadRequestError("Invalid volunteer status")
	}
	return s.volunteerRepo.GetAll(ctx, status)
}

// GetVolunteerByID retrieves one application
func (s *volunteerServiceImpl) GetVolunteerByID(ctx context.Context, id string) (*models.Volunteer, error) {
	return s.volunteerRepo.GetByID(ctx, id)
}

// GetMyApplication retrieves the application linked to the signed-in user
func (s *volunteerServiceImpl) GetMyApplication(ctx context.Context, userID string) (*models.Volunteer, error) {
	return s.volunteerRepo.GetByUserID(ctx, userID)
}

// UpdateStatus moves an application through its lifecycle
func (s *volunteerServiceImpl) UpdateStatus(ctx context.Context, id string, status models.VolunteerStatus) (*models.Volunteer, error) {
	if !models.ValidVolunteerStatus(status) {
		return nil, apperrors.NewBadRequestError("Invalid volunteer status")
	}

	if err := s.volunteerRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	s.logger.Info().Str("volunteerID", id).Str("status", string(status)).Msg("Volunteer status updated")
	return s.volunteerRepo.GetByID(ctx, id)
}
