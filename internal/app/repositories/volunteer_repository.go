package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/wilsonXeem/clong-backend/internal/app/models"
	"github.com/wilsonXeem/clong-backend/internal/pkg/apperrors"
	"github.com/wilsonXeem/clong-backend/internal/pkg/dberrors"
)

var volunteerColumns = []string{
	"id", "user_id", "first_name", "last_name", "email", "phone", "skills",
	"availability", "interests", "experience", "motivation", "status", "created_at", "updated_at",
}

// VolunteerRepository handles database operations for volunteer applications
type VolunteerRepository struct {
	db *pgxpool.Pool
}

// NewVolunteerRepository creates a new VolunteerRepository
func NewVolunteerRepository(db *pgxpool.Pool) *VolunteerRepository {
	return &VolunteerRepository{db: db}
}

func scanVolunteer(row pgx.Row) (*models.Volunteer, error) {
	var v models.Volunteer
	err := row.Scan(
		&v.ID,
		&v.UserID,
		&v.FirstName,
		&v.LastName,
		&v.Email,
		&v.Phone,
		&v.Skills,
		&v.Availability,
		&v.Interests,
		&v.Experience,
		&v.Motivation,
		&v.Status,
		&v.CreatedAt,
		&v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// Create inserts a new volunteer application in pending state
func (r *VolunteerRepository) Create(ctx context.Context, volunteer *models.Volunteer) error {
	query := squirrel.Insert("volunteers").
		Columns("user_id", "first_name", "last_name", "email", "phone", "skills",
			"availability", "interests", "experience", "motivation").
		Values(volunteer.UserID, volunteer.FirstName, volunteer.LastName, volunteer.Email,
			volunteer.Phone, volunteer.Skills, volunteer.Availability, volunteer.Interests,
			volunteer.Experience, volunteer.Motivation).
		Suffix("RETURNING id, status, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).
		Scan(&volunteer.ID, &volunteer.Status, &volunteer.CreatedAt, &volunteer.UpdatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrVolunteerAlreadyExists
		}
		return fmt.Errorf("error executing query: %w", err)
	}

	return nil
}

// GetAll retrieves volunteer applications, optionally filtered by status,
// newest first
func (r *VolunteerRepository) GetAll(ctx context.Context, status *models.VolunteerStatus) ([]models.Volunteer, error) {
	query := squirrel.Select(volunteerColumns...).
		From("volunteers").
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if status != nil {
		query = query.Where("status = ?", *status)
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

	var volunteers []models.Volunteer
	for rows.Next() {
		var v models.Volunteer
		err := rows.Scan(
			&v.ID,
			&v.UserID,
			&v.FirstName,
			&v.LastName,
			&v.Email,
			&v.Phone,
			&v.Skills,
			&v.Availability,
			&v.Interests,
			&v.Experience,
			&v.Motivation,
			&v.Status,
			&v.CreatedAt,
			&v.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		volunteers = append(volunteers, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return volunteers, nil
}

// GetByID retrieves a volunteer application by ID
func (r *VolunteerRepository) GetByID(ctx context.Context, id string) (*models.Volunteer, error) {
	query := squirrel.Select(volunteerColumns...).
		From("volunteers").
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	volunteer, err := scanVolunteer(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrVolunteerNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return volunteer, nil
}

// GetByEmail retrieves a volunteer application by applicant email
func (r *VolunteerRepository) GetByEmail(ctx context.Context, email string) (*models.Volunteer, error) {
	query := squirrel.Select(volunteerColumns...).
		From("volunteers").
		Where("email = ?", email).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	volunteer, err := scanVolunteer(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrVolunteerNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return volunteer, nil
}

// GetByUserID retrieves the application linked to a registered user
func (r *VolunteerRepository) GetByUserID(ctx context.Context, userID string) (*models.Volunteer, error) {
	query := squirrel.Select(volunteerColumns...).
		From("volunteers").
		Where("user_id = ?", userID).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	volunteer, err := scanVolunteer(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrVolunteerNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return volunteer, nil
}

// UpdateStatus moves a volunteer application through its lifecycle
func (r *VolunteerRepository) UpdateStatus(ctx context.Context, id string, status models.VolunteerStatus) error {
	query := squirrel.Update("volunteers").
		Set("status", status).
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
		return apperrors.ErrVolunteerNotFound
	}

	return nil
}
