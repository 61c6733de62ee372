package services

import (
	"context"
	"mime/multipart"
	"time"

	"github.com/rs/zerolog"
	"github.com/wilsonXeem/clong-backend/internal/app/models"
	"github.com/wilsonXeem/clong-backend/internal/app/models/dto"
	"github.com/wilsonXeem/clong-backend/internal/pkg/apperrors"
	"github.com/wilsonXeem/clong-backend/internal/pkg/imagehost"
)

// EventStore is the subset of event persistence the service needs
type EventStore interface {
	Create(ctx context.Context, event *models.Event) error
	GetAll(ctx context.Context, activeOnly bool) ([]models.Event, error)
	GetByID(ctx context.Context, id string) (*models.Event, error)
	Update(ctx context.Context, event *models.Event) error
	Deactivate(ctx context.Context, id string) error
	RegisterAttendee(ctx context.Context, registration *models.EventRegistration) error
	GetRegistrations(ctx context.Context, eventID string) ([]models.EventRegistration, error)
}

// EventService defines the interface for event operations
type EventService interface {
	CreateEvent(ctx context.Context, req *dto.CreateEventRequest, image *multipart.FileHeader) (*models.Event, error)
	GetEvents(ctx context.Context, includeInactive bool) ([]models.Event, error)
	GetEventByID(ctx context.Context, id string) (*models.Event, error)
	UpdateEvent(ctx context.Context, id string, req *dto.UpdateEventRequest) (*models.Event, error)
	DeleteEvent(ctx context.Context, id string) error
	RegisterForEvent(ctx context.Context, eventID string, userID *string, req *dto.RegisterForEventRequest) (*models.EventRegistration, error)
	GetEventRegistrations(ctx context.Context, eventID string) ([]models.EventRegistration, error)
}

// eventServiceImpl implements EventService
type eventServiceImpl struct {
	eventRepo EventStore
	uploader  imagehost.Uploader
	logger    zerolog.Logger
}

// NewEventService creates a new EventService
func NewEventService(eventRepo EventStore, uploader imagehost.Uploader, logger zerolog.Logger) EventService {
	return &eventServiceImpl{
		eventRepo: eventRepo,
		uploader:  uploader,
		logger:    logger,
	}
}

// CreateEvent creates an event, relaying the optional image to the
// image host first
func (s *eventServiceImpl) CreateEvent(ctx context.Context, req *dto.CreateEventRequest, image *multipart.FileHeader) (*models.Event, error) {
	eventDate, err := time.Parse(time.RFC3339, req.EventDate)
	if err != nil {
		return nil, apperrors.NewBadRequestError("Invalid event date")
	}
	if req.MaxAttendees != nil && *req.MaxAttendees < 1 {
		return nil, apperrors.NewBadRequestError("Max attendees must be at least 1")
	}

	event := &models.Event{
		Title:        req.Title,
		Description:  req.Description,
		Location:     req.Location,
		EventDate:    eventDate,
		MaxAttendees: req.MaxAttendees,
	}

	if image != nil {
		result, err := s.uploader.Upload(ctx, image, "events")
		if err != nil {
			s.logger.Error().Err(err).Msg("Failed to upload event image")
			return nil, err
		}
		event.ImageURL = &result.URL
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}

	s.logger.Info().Str("eventID", event.ID).Str("title", event.Title).Msg("Event created")
	return event, nil
}

// GetEvents retrieves events. Inactive ones are only included for
// admin callers.
func (s *eventServiceImpl) GetEvents(ctx context.Context, includeInactive bool) ([]models.Event, error) {
	return s.eventRepo.GetAll(ctx, !includeInactive)
}

// GetEventByID retrieves one event
func (s *eventServiceImpl) GetEventByID(ctx context.Context, id string) (*models.Event, error) {
	return s.eventRepo.GetByID(ctx, id)
}

// UpdateEvent modifies an event. Omitted fields keep their stored
// values. The cap cannot be lowered below the seats already taken.
func (s *eventServiceImpl) UpdateEvent(ctx context.Context, id string, req *dto.UpdateEventRequest) (*models.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != "" {
		event.Title = req.Title
	}
	if req.Description != "" {
		event.Description = req.Description
	}
	if req.ImageURL != nil {
		event.ImageURL = req.ImageURL
	}
	if req.Location != nil {
		event.Location = req.Location
	}
	if req.EventDate != nil {
		eventDate, err := time.Parse(time.RFC3339, *req.EventDate)
		if err != nil {
			return nil, apperrors.NewBadRequestError("Invalid event date")
		}
		event.EventDate = eventDate
	}
	if req.MaxAttendees != nil {
		if *req.MaxAttendees < event.CurrentAttendees {
			return nil, apperrors.NewBadRequestError("Max attendees cannot be below current registrations")
		}
		event.MaxAttendees = req.MaxAttendees
	}

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, err
	}

	return event, nil
}

// DeleteEvent soft deletes an event so its registrations survive
func (s *eventServiceImpl) DeleteEvent(ctx context.Context, id string) error {
	if err := s.eventRepo.Deactivate(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("eventID", id).Msg("Event deactivated")
	return nil
}

// RegisterForEvent claims a seat for the attendee. The repository
// claims the seat atomically, so an over-capacity registration is
// rejected even under concurrent requests.
func (s *eventServiceImpl) RegisterForEvent(ctx context.Context, eventID string, userID *string, req *dto.RegisterForEventRequest) (*models.EventRegistration, error) {
	registration := &models.EventRegistration{
		EventID:       eventID,
		UserID:        userID,
		AttendeeName:  req.AttendeeName,
		AttendeeEmail: req.AttendeeEmail,
		AttendeePhone: req.AttendeePhone,
	}

	if err := s.eventRepo.RegisterAttendee(ctx, registration); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("eventID", eventID).
		Str("registrationID", registration.ID).
		Msg("Attendee registered")

	return registration, nil
}

// GetEventRegistrations retrieves all registrations for an event
func (s *eventServiceImpl) GetEventRegistrations(ctx context.Context, eventID string) ([]models.EventRegistration, error) {
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		return nil, err
	}
	return s.eventRepo.GetRegistrations(ctx, eventID)
}
