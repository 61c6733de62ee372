package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"github.com/wilsonXeem/clong-backend/internal/app/models"
	"github.com/wilsonXeem/clong-backend/internal/app/models/dto"
	"github.com/wilsonXeem/clong-backend/internal/pkg/apperrors"
)

// ContactStore is the subset of contact persistence the service needs
type ContactStore interface {
	Create(ctx context.Context, contact *models.Contact) error
	GetAll(ctx context.Context, page, pageSize int) ([]models.Contact, int64, error)
	MarkRead(ctx context.Context, id string) error
}

// NewsletterStore is the subset of subscription persistence the service needs
type NewsletterStore interface {
	GetByEmail(ctx context.Context, email string) (*models.NewsletterSubscriber, error)
	Subscribe(ctx context.Context, email string) (*models.NewsletterSubscriber, error)
	Reactivate(ctx context.Context, email string) (*models.NewsletterSubscriber, error)
	Unsubscribe(ctx context.Context, email string) error
	GetActive(ctx context.Context) ([]models.NewsletterSubscriber, error)
}

// OutreachService defines the interface for contact form and newsletter
// operations
type OutreachService interface {
	SubmitContact(ctx context.Context, req *dto.CreateContactRequest) (*models.Contact, error)
	GetContacts(ctx context.Context, page, pageSize int) ([]models.Contact, int64, error)
	MarkContactRead(ctx context.Context, id string) error
	Subscribe(ctx context.Context, email string) (*models.NewsletterSubscriber, error)
	Unsubscribe(ctx context.Context, email string) error
	GetSubscribers(ctx context.Context) ([]models.NewsletterSubscriber, error)
}

// outreachServiceImpl implements OutreachService
type outreachServiceImpl struct {
	contactRepo    ContactStore
	newsletterRepo NewsletterStore
	logger         zerolog.Logger
}

// NewOutreachService creates a new OutreachService
func NewOutreachService(contactRepo ContactStore, newsletterRepo NewsletterStore, logger zerolog.Logger) OutreachService {
	return &outreachServiceImpl{
		contactRepo:    contactRepo,
		newsletterRepo: newsletterRepo,
		logger:         logger,
	}
}

// SubmitContact records a contact form message
func (s *outreachServiceImpl) SubmitContact(ctx context.Context, req *dto.CreateContactRequest) (*models.Contact, error) {
	contact := &models.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}

	if err := s.contactRepo.Create(ctx, contact); err != nil {
		return nil, err
	}

	s.logger.Info().Str("contactID", contact.ID).Msg("Contact message received")
	return contact, nil
}

// GetContacts retrieves contact messages with pagination
func (s *outreachServiceImpl) GetContacts(ctx context.Context, page, pageSize int) ([]models.Contact, int64, error) {
	return s.contactRepo.GetAll(ctx, page, pageSize)
}

// MarkContactRead flags a contact message as read
func (s *outreachServiceImpl) MarkContactRead(ctx context.Context, id string) error {
	return s.contactRepo.MarkRead(ctx, id)
}

// Subscribe adds an email to the newsletter. A lapsed subscription is
// reactivated; an active one is rejected as already subscribed.
func (s *outreachServiceImpl) Subscribe(ctx context.Context, email string) (*models.NewsletterSubscriber, error) {
	existing, err := s.newsletterRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrSubscriberMissing) {
			return s.newsletterRepo.Subscribe(ctx, email)
		}
		return nil, err
	}

	if existing.IsActive {
		return nil, apperrors.ErrAlreadySubscribed
	}

	sub, err := s.newsletterRepo.Reactivate(ctx, email)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("email", email).Msg("Newsletter subscription reactivated")
	return sub, nil
}

// Unsubscribe removes an email from the newsletter
func (s *outreachServiceImpl) Unsubscribe(ctx context.Context, email string) error {
	if err := s.newsletterRepo.Unsubscribe(ctx, email); err != nil {
		return err
	}

	s.logger.Info().Str("email", email).Msg("Newsletter unsubscribed")
	return nil
}

// GetSubscribers retrieves all active subscribers
func (s *outreachServiceImpl) GetSubscribers(ctx context.Context) ([]models.NewsletterSubscriber, error) {
	return s.newsletterRepo.GetActive(ctx)
}
