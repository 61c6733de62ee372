package services

import (
	"context"
	"mime/multipart"

	"github.com/rs/zerolog"
	"github.com/wilsonXeem/clong-backend/internal/app/models"
	"github.com/wilsonXeem/clong-backend/internal/app/models/dto"
	"github.com/wilsonXeem/clong-backend/internal/pkg/apperrors"
	"github.com/wilsonXeem/clong-backend/internal/pkg/helpers"
	"github.com/wilsonXeem/clong-backend/internal/pkg/imagehost"
	"github.com/wilsonXeem/clong-backend/internal/pkg/validation"
)

// ProgramStore is the subset of program persistence the service needs
type ProgramStore interface {
	Create(ctx context.Context, program *models.Program) error
	GetAll(ctx context.Context, activeOnly bool) ([]models.Program, error)
	GetByID(ctx context.Context, id string) (*models.Program, error)
	Update(ctx context.Context, program *models.Program) error
	Deactivate(ctx context.Context, id string) error
}

// ProgramService defines the interface for fundraising program operations
type ProgramService interface {
	CreateProgram(ctx context.Context, req *dto.CreateProgramRequest, image *multipart.FileHeader) (*models.Program, error)
	GetPrograms(ctx context.Context, includeInactive bool) ([]models.Program, error)
	GetProgramByID(ctx context.Context, id string) (*models.Program, error)
	UpdateProgram(ctx context.Context, id string, req *dto.UpdateProgramRequest) (*models.Program, error)
	DeleteProgram(ctx context.Context, id string) error
}

// programServiceImpl implements ProgramService
type programServiceImpl struct {
	programRepo ProgramStore
	uploader    imagehost.Uploader
	logger      zerolog.Logger
}

// NewProgramService creates a new ProgramService
func NewProgramService(programRepo ProgramStore, uploader imagehost.Uploader, logger zerolog.Logger) ProgramService {
	return &programServiceImpl{
		programRepo: programRepo,
		uploader:    uploader,
		logger:      logger,
	}
}

// CreateProgram creates a fundraising program, relaying the optional
// image to the image host first
func (s *programServiceImpl) CreateProgram(ctx context.Context, req *dto.CreateProgramRequest, image *multipart.FileHeader) (*models.Program, error) {
	if req.TargetAmount != nil && !validation.ValidAmount(*req.TargetAmount) {
		return nil, apperrors.NewBadRequestError("Invalid target amount")
	}

	startDate, err := helpers.ParseTimePtr(req.StartDate)
	if err != nil {
		return nil, apperrors.NewBadRequestError("Invalid start date")
	}
	endDate, err := helpers.ParseTimePtr(req.EndDate)
	if err != nil {
		return nil, apperrors.NewBadRequestError("Invalid end date")
	}
	if startDate != nil && endDate != nil && endDate.Before(*startDate) {
		return nil, apperrors.NewBadRequestError("End date must be after start date")
	}

	program := &models.Program{
		Title:        req.Title,
		Description:  req.Description,
		TargetAmount: req.TargetAmount,
		StartDate:    startDate,
		EndDate:      endDate,
	}

	if image != nil {
		result, err := s.uploader.Upload(ctx, image, "programs")
		if err != nil {
			s.logger.Error().Err(err).Msg("Failed to upload program image")
			return nil, err
		}
		program.ImageURL = &result.URL
	}

	if err := s.programRepo.Create(ctx, program); err != nil {
		return nil, err
	}

	s.logger.Info().Str("programID", program.ID).Str("title", program.Title).Msg("Program created")
	return program, nil
}

// GetPrograms retrieves programs. Inactive ones are only included for
// admin callers.
func (s *programServiceImpl) GetPrograms(ctx context.Context, includeInactive bool) ([]models.Program, error) {
	return s.programRepo.GetAll(ctx, !includeInactive)
}

// GetProgramByID retrieves one program
func (s *programServiceImpl) GetProgramByID(ctx context.Context, id string) (*models.Program, error) {
	return s.programRepo.GetByID(ctx, id)
}

// UpdateProgram modifies a program. Omitted fields keep their stored
// values; the derived donation total is never writable here.
func (s *programServiceImpl) UpdateProgram(ctx context.Context, id string, req *dto.UpdateProgramRequest) (*models.Program, error) {
	program, err := s.programRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != "" {
		program.Title = req.Title
	}
	if req.Description != "" {
		program.Description = req.Description
	}
	if req.ImageURL != nil {
		program.ImageURL = req.ImageURL
	}
	if req.TargetAmount != nil {
		if !validation.ValidAmount(*req.TargetAmount) {
			return nil, apperrors.NewBadRequestError("Invalid target amount")
		}
		program.TargetAmount = req.TargetAmount
	}
	if req.StartDate != nil {
		startDate, err := helpers.ParseTimePtr(req.StartDate)
		if err != nil {
			return nil, apperrors.NewBadRequestError("Invalid start date")
		}
		program.StartDate = startDate
	}
	if req.EndDate != nil {
		endDate, err := helpers.ParseTimePtr(req.EndDate)
		if err != nil {
			return nil, apperrors.NewBadRequestError("Invalid end date")
		}
		program.EndDate = endDate
	}
	if program.StartDate != nil && program.EndDate != nil && program.EndDate.Before(*program.StartDate) {
		return nil, apperrors.NewBadRequestError("End date must be after start date")
	}

	if err := s.programRepo.Update(ctx, program); err != nil {
		return nil, err
	}

	return program, nil
}

// DeleteProgram soft deletes a program so its donation history survives
func (s *programServiceImpl) DeleteProgram(ctx context.Context, id string) error {
	if err := s.programRepo.Deactivate(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("programID", id).Msg("Program deactivated")
	return nil
}
