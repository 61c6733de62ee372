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

var resourceColumns = []string{
	"id", "title", "description", "file_url", "file_type",
	"category", "is_public", "uploaded_by", "created_at",
}

// ResourceRepository handles database operations for shared resources
type ResourceRepository struct {
	db *pgxpool.Pool
}

// NewResourceRepository creates a new ResourceRepository
func NewResourceRepository(db *pgxpool.Pool) *ResourceRepository {
	return &ResourceRepository{db: db}
}

// Create inserts a new resource
func (r *ResourceRepository) Create(ctx context.Context, resource *models.Resource) error {
	query := squirrel.Insert("resources").
		Columns("title", "description", "file_url", "file_type", "category", "is_public", "uploaded_by").
		Values(resource.Title, resource.Description, resource.FileURL, resource.FileType,
			resource.Category, resource.IsPublic, resource.UploadedBy).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&resource.ID, &resource.CreatedAt)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	return nil
}

func (r *ResourceRepository) queryResources(ctx context.Context, query squirrel.SelectBuilder) ([]models.Resource, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var resources []models.Resource
	for rows.Next() {
		var res models.Resource
		err := rows.Scan(
			&res.ID,
			&res.Title,
			&res.Description,
			&res.FileURL,
			&res.FileType,
			&res.Category,
			&res.IsPublic,
			&res.UploadedBy,
			&res.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		resources = append(resources, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return resources, nil
}

// GetPublic retrieves public resources, optionally filtered by category,
// newest first
func (r *ResourceRepository) GetPublic(ctx context.Context, category *string) ([]models.Resource, error) {
	query := squirrel.Select(resourceColumns...).
		From("resources").
		Where("is_public = TRUE").
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if category != nil && *category != "" {
		query = query.Where("category = ?", *category)
	}

	return r.queryResources(ctx, query)
}

// GetByUploader retrieves all resources uploaded by one user, newest first
func (r *ResourceRepository) GetByUploader(ctx context.Context, userID string) ([]models.Resource, error) {
	query := squirrel.Select(resourceColumns...).
		From("resources").
		Where("uploaded_by = ?", userID).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	return r.queryResources(ctx, query)
}

// GetByID retrieves a resource by ID
func (r *ResourceRepository) GetByID(ctx context.Context, id string) (*models.Resource, error) {
	query := squirrel.Select(resourceColumns...).
		From("resources").
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	var res models.Resource
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&res.ID,
		&res.Title,
		&res.Description,
		&res.FileURL,
		&res.FileType,
		&res.Category,
		&res.IsPublic,
		&res.UploadedBy,
		&res.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return &res, nil
}

// Update modifies an existing resource's editable fields
func (r *ResourceRepository) Update(ctx context.Context, resource *models.Resource) error {
	query := squirrel.Update("resources").
		Set("title", resource.Title).
		Set("description", resource.Description).
		Set("category", resource.Category).
		Set("is_public", resource.IsPublic).
		Where("id = ?", resource.ID).
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
		return apperrors.ErrResourceNotFound
	}

	return nil
}

// Delete removes a resource
func (r *ResourceRepository) Delete(ctx context.Context, id string) error {
	query := squirrel.Delete("resources").
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
		return apperrors.ErrResourceNotFound
	}

	return nil
}
