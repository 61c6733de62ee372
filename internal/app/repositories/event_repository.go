package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/wilsonXeem/clong-backend/internal/app/models"
	"github.com/wilsonXeem/clong-backend/internal/db"
	"github.com/wilsonXeem/clong-backend/internal/pkg/apperrors"
	"github.com/wilsonXeem/clong-backend/internal/pkg/dberrors"
)

var eventColumns = []string{
	"id", "title", "description", "image_url", "location", "event_date",
	"max_attendees", "current_attendees", "is_active", "created_at", "updated_at",
}

// EventRepository handles database operations for events and registrations
type EventRepository struct {
	db *pgxpool.Pool
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{db: db}
}

func scanEvent(row pgx.Row) (*models.Event, error) {
	var e models.Event
	err := row.Scan(
		&e.ID,
		&e.Title,
		&e.Description,
		&e.ImageURL,
		&e.Location,
		&e.EventDate,
		&e.MaxAttendees,
		&e.CurrentAttendees,
		&e.IsActive,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Create inserts a new event
func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	query := squirrel.Insert("events").
		Columns("title", "description", "image_url", "location", "event_date", "max_attendees").
		Values(event.Title, event.Description, event.ImageURL, event.Location, event.EventDate, event.MaxAttendees).
		Suffix("RETURNING id, current_attendees, is_active, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).
		Scan(&event.ID, &event.CurrentAttendees, &event.IsActive, &event.CreatedAt, &event.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	return nil
}

// GetAll retrieves events ordered by event date, upcoming first. When
// activeOnly is set, inactive events are excluded.
func (r *EventRepository) GetAll(ctx context.Context, activeOnly bool) ([]models.Event, error) {
	query := squirrel.Select(eventColumns...).
		From("events").
		OrderBy("event_date ASC").
		PlaceholderFormat(squirrel.Dollar)

	if activeOnly {
		query = query.Where("is_active = TRUE")
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		var e models.Event
		err := rows.Scan(
			&e.ID,
			&e.Title,
			&e.Description,
			&e.ImageURL,
			&e.Location,
			&e.EventDate,
			&e.MaxAttendees,
			&e.CurrentAttendees,
			&e.IsActive,
			&e.CreatedAt,
			&e.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return events, nil
}

// GetByID retrieves an event by ID
func (r *EventRepository) GetByID(ctx context.Context, id string) (*models.Event, error) {
	query := squirrel.Select(eventColumns...).
		From("events").
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	event, err := scanEvent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return event, nil
}

// Update modifies an existing event's editable fields
func (r *EventRepository) Update(ctx context.Context, event *models.Event) error {
	query := squirrel.Update("events").
		Set("title", event.Title).
		Set("description", event.Description).
		Set("image_url", event.ImageURL).
		Set("location", event.Location).
		Set("event_date", event.EventDate).
		Set("max_attendees", event.MaxAttendees).
		Set("is_active", event.IsActive).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where("id = ?", event.ID).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}

	return nil
}

// Deactivate soft deletes an event by marking it inactive
func (r *EventRepository) Deactivate(ctx context.Context, id string) error {
	query := squirrel.Update("events").
		Set("is_active", false).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}

	return nil
}

// RegisterAttendee claims a seat and records the registration in one
// transaction. The seat is claimed with a conditional increment, so two
// concurrent registrations can never both take the last seat.
func (r *EventRepository) RegisterAttendee(ctx context.Context, registration *models.EventRegistration) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		claimSQL := `UPDATE events
			SET current_attendees = current_attendees + 1, updated_at = NOW()
			WHERE id = $1
			  AND is_active = TRUE
			  AND (max_attendees IS NULL OR current_attendees < max_attendees)`

		result, err := tx.Exec(ctx, claimSQL, registration.EventID)
		if err != nil {
			return fmt.Errorf("error executing query: %w", err)
		}
		if result.RowsAffected() == 0 {
			var count int64
			err := tx.QueryRow(ctx,
				"SELECT COUNT(1) FROM events WHERE id = $1 AND is_active = TRUE",
				registration.EventID).Scan(&count)
			if err != nil {
				return fmt.Errorf("error executing query: %w", err)
			}
			if count == 0 {
				return apperrors.ErrEventNotFound
			}
			return apperrors.ErrEventFull
		}

		insert := squirrel.Insert("event_registrations").
			Columns("event_id", "user_id", "attendee_name", "attendee_email", "attendee_phone").
			Values(registration.EventID, registration.UserID, registration.AttendeeName,
				registration.AttendeeEmail, registration.AttendeePhone).
			Suffix("RETURNING id, registration_date").
			PlaceholderFormat(squirrel.Dollar)

		sql, args, err := insert.ToSql()
		if err != nil {
			return fmt.Errorf("error building SQL: %w", err)
		}

		err = tx.QueryRow(ctx, sql, args...).Scan(&registration.ID, &registration.RegistrationDate)
		if err != nil {
			if dberrors.IsUniqueViolation(err) {
				return apperrors.NewConflictError("Already registered for this event")
			}
			return fmt.Errorf("error executing query: %w", err)
		}

		return nil
	})
}

// GetRegistrations retrieves all registrations for an event, oldest first
func (r *EventRepository) GetRegistrations(ctx context.Context, eventID string) ([]models.EventRegistration, error) {
	query := squirrel.Select("id", "event_id", "user_id", "attendee_name", "attendee_email", "attendee_phone", "registration_date").
		From("event_registrations").
		Where("event_id = ?", eventID).
		OrderBy("registration_date ASC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var registrations []models.EventRegistration
	for rows.Next() {
		var reg models.EventRegistration
		err := rows.Scan(
			&reg.ID,
			&reg.EventID,
			&reg.UserID,
			&reg.AttendeeName,
			&reg.AttendeeEmail,
			&reg.AttendeePhone,
			&reg.RegistrationDate,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		registrations = append(registrations, reg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return registrations, nil
}
