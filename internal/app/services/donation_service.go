package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/wilsonXeem/clong-backend/internal/app/models"
	"github.com/wilsonXeem/clong-backend/internal/app/models/dto"
	"github.com/wilsonXeem/clong-backend/internal/pkg/apperrors"
	"github.com/wilsonXeem/clong-backend/internal/pkg/validation"
)

// DonationStore is the subset of donation persistence the service needs
type DonationStore interface {
	Create(ctx context.Context, donation *models.Donation) error
	GetAll(ctx context.Context, programID *string, page, pageSize int) ([]models.Donation, int64, error)
	GetByUserID(ctx context.Context, userID string) ([]models.Donation, error)
	GetByID(ctx context.Context, id string) (*models.Donation, error)
	UpdateStatus(ctx context.Context, id string, status models.PaymentStatus, reference *string) error
	Complete(ctx context.Context, id string, reference *string) (bool, error)
}

// DonationService defines the interface for donation operations
type DonationService interface {
	CreateDonation(ctx context.Context, userID *string, req *dto.CreateDonationRequest) (*models.Donation, error)
	GetDonations(ctx context.Context, programID *string, page, pageSize int) ([]dto.DonationListItem, int64, error)
	GetUserDonations(ctx context.Context, userID string) ([]models.Donation, error)
	GetDonationByID(ctx context.Context, id string, actorID *string, role models.Role) (*models.Donation, error)
	UpdatePaymentStatus(ctx context.Context, id string, req *dto.UpdateDonationStatusRequest) (*models.Donation, error)
}

// donationServiceImpl implements DonationService
type donationServiceImpl struct {
	donationRepo DonationStore
	programRepo  ProgramStore
	logger       zerolog.Logger
}

// NewDonationService creates a new DonationService
func NewDonationService(donationRepo DonationStore, programRepo ProgramStore, logger zerolog.Logger) DonationService {
	return &donationServiceImpl{
		donationRepo: donationRepo,
		programRepo:  programRepo,
		logger:       logger,
	}
}

// CreateDonation starts a donation in pending state. When a program is
// named it must exist and be active.
func (s *donationServiceImpl) CreateDonation(ctx context.Context, userID *string, req *dto.CreateDonationRequest) (*models.Donation, error) {
	if !validation.ValidAmount(req.Amount) {
		return nil, apperrors.NewBadRequestError("Invalid donation amount")
	}

	if req.ProgramID != nil {
		program, err := s.programRepo.GetByID(ctx, *req.ProgramID)
		if err != nil {
			return nil, err
		}
		if !program.IsActive {
			return nil, apperrors.ErrProgramNotFound
		}
	}

	donation := &models.Donation{
		UserID:      userID,
		ProgramID:   req.ProgramID,
		Amount:      req.Amount,
		DonorName:   req.DonorName,
		DonorEmail:  req.DonorEmail,
		IsAnonymous: req.IsAnonymous,
	}

	if err := s.donationRepo.Create(ctx, donation); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("donationID", donation.ID).
		Str("amount", donation.Amount).
		Msg("Donation created")

	return donation, nil
}

// GetDonations retrieves donations with pagination. Donor identity is
// withheld for anonymous donations.
func (s *donationServiceImpl) GetDonations(ctx context.Context, programID *string, page, pageSize int) ([]dto.DonationListItem, int64, error) {
	donations, total, err := s.donationRepo.GetAll(ctx, programID, page, pageSize)
	if err != nil {
		return nil, 0, err
	}

	items := make([]dto.DonationListItem, 0, len(donations))
	for _, d := range donations {
		item := dto.DonationListItem{
			ID:            d.ID,
			Amount:        d.Amount,
			IsAnonymous:   d.IsAnonymous,
			PaymentStatus: d.PaymentStatus,
			CreatedAt:     d.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
			ProgramTitle:  d.ProgramTitle,
		}
		if !d.IsAnonymous {
			item.DonorName = d.DonorName
		}
		items = append(items, item)
	}

	return items, total, nil
}

// GetUserDonations retrieves the caller's own donation history
func (s *donationServiceImpl) GetUserDonations(ctx context.Context, userID string) ([]models.Donation, error) {
	return s.donationRepo.GetByUserID(ctx, userID)
}

// GetDonationByID retrieves one donation. Donor identity is withheld
// for anonymous donations unless the caller is the donor or an admin.
func (s *donationServiceImpl) GetDonationByID(ctx context.Context, id string, actorID *string, role models.Role) (*models.Donation, error) {
	donation, err := s.donationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if donation.IsAnonymous && role != models.RoleAdmin {
		isDonor := actorID != nil && donation.UserID != nil && *actorID == *donation.UserID
		if !isDonor {
			donation.DonorName = nil
			donation.DonorEmail = nil
			donation.UserID = nil
		}
	}

	return donation, nil
}

// UpdatePaymentStatus transitions a donation's payment status. Moving
// to completed also credits the linked program, exactly once no matter
// how many times the transition is retried.
func (s *donationServiceImpl) UpdatePaymentStatus(ctx context.Context, id string, req *dto.UpdateDonationStatusRequest) (*models.Donation, error) {
	if !models.ValidPaymentStatus(req.PaymentStatus) {
		return nil, apperrors.ErrInvalidPaymentStatus
	}

	if req.PaymentStatus == models.PaymentCompleted {
		applied, err := s.donationRepo.Complete(ctx, id, req.PaymentReference)
		if err != nil {
			return nil, err
		}
		if applied {
			s.logger.Info().Str("donationID", id).Msg("Donation completed")
		} else {
			s.logger.Info().Str("donationID", id).Msg("Donation already completed, no changes applied")
		}
	} else {
		if err := s.donationRepo.UpdateStatus(ctx, id, req.PaymentStatus, req.PaymentReference); err != nil {
			return nil, err
		}
		s.logger.Info().
			Str("donationID", id).
			Str("status", string(req.PaymentStatus)).
			Msg("Donation status updated")
	}

	return s.donationRepo.GetByID(ctx, id)
}
