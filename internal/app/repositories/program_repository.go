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
)

var programColumns = []string{
	"id", "title", "description", "image_url", "target_amount",
	"current_amount", "start_date", "end_date", "is_active", "created_at", "updated_at",
}

// ProgramRepository handles database operations for fundraising programs
type ProgramRepository struct {
	db *pgxpool.Pool
}

// NewProgramRepository creates a new ProgramRepository
func NewProgramRepository(db *pgxpool.Pool) *ProgramRepository {
	return &ProgramRepository{db: db}
}

func scanProgram(row pgx.Row) (*models.Program, error) {
	var p models.Program
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Description,
		&p.ImageURL,
		&p.TargetAmount,
		&p.CurrentAmount,
		&p.StartDate,
		&p.EndDate,
		&p.IsActive,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserts a new program
func (r *ProgramRepository) Create(ctx context.Context, program *models.Program) error {
	query := squirrel.Insert("programs").
		Columns("title", "description", "image_url", "target_amount", "start_date", "end_date").
		Values(program.Title, program.Description, program.ImageURL, program.TargetAmount, program.StartDate, program.EndDate).
		Suffix("RETURNING id, current_amount, is_active, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).
		Scan(&program.ID, &program.CurrentAmount, &program.IsActive, &program.CreatedAt, &program.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	return nil
}

// GetAll retrieves programs, newest first. When activeOnly is set,
// inactive programs are excluded.
func (r *ProgramRepository) GetAll(ctx context.Context, activeOnly bool) ([]models.Program, error) {
	query := squirrel.Select(programColumns...).
		From("programs").
		OrderBy("created_at DESC").
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

	var programs []models.Program
	for rows.Next() {
		var p models.Program
		err := rows.Scan(
			&p.ID,
			&p.Title,
			&p.Description,
			&p.ImageURL,
			&p.TargetAmount,
			&p.CurrentAmount,
			&p.StartDate,
			&p.EndDate,
			&p.IsActive,
			&p.CreatedAt,
			&p.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		programs = append(programs, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return programs, nil
}

// GetByID retrieves a program by ID
func (r *ProgramRepository) GetByID(ctx context.Context, id string) (*models.Program, error) {
	query := squirrel.Select(programColumns...).
		From("programs").
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	program, err := scanProgram(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProgramNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return program, nil
}

// Update modifies an existing program's editable fields
func (r *ProgramRepository) Update(ctx context.Context, program *models.Program) error {
	query := squirrel.Update("programs").
		Set("title", program.Title).
		Set("description", program.Description).
		Set("image_url", program.ImageURL).
		Set("target_amount", program.TargetAmount).
		Set("start_date", program.StartDate).
		Set("end_date", program.EndDate).
		Set("is_active", program.IsActive).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where("id = ?", program.ID).
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
		return apperrors.ErrProgramNotFound
	}

	return nil
}

// Deactivate soft deletes a program by marking it inactive
func (r *ProgramRepository) Deactivate(ctx context.Context, id string) error {
	query := squirrel.Update("programs").
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
		return apperrors.ErrProgramNotFound
	}

	return nil
}
