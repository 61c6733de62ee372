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

var storyColumns = []string{
	"s.id", "s.title", "s.content", "s.image_url", "s.author_id",
	"s.is_published", "s.created_at", "s.updated_at",
}

// StoryRepository handles database operations for impact stories
type StoryRepository struct {
	db *pgxpool.Pool
}

// NewStoryRepository creates a new StoryRepository
func NewStoryRepository(db *pgxpool.Pool) *StoryRepository {
	return &StoryRepository{db: db}
}

// Create inserts a new story
func (r *StoryRepository) Create(ctx context.Context, story *models.Story) error {
	query := squirrel.Insert("stories").
		Columns("title", "content", "image_url", "author_id", "is_published").
		Values(story.Title, story.Content, story.ImageURL, story.AuthorID, story.IsPublished).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&story.ID, &story.CreatedAt, &story.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	return nil
}

func (r *StoryRepository) queryStories(ctx context.Context, query squirrel.SelectBuilder) ([]models.Story, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var stories []models.Story
	for rows.Next() {
		var s models.Story
		err := rows.Scan(
			&s.ID,
			&s.Title,
			&s.Content,
			&s.ImageURL,
			&s.AuthorID,
			&s.IsPublished,
			&s.CreatedAt,
			&s.UpdatedAt,
			&s.AuthorName,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		stories = append(stories, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return stories, nil
}

// GetPublished retrieves published stories with author names, newest first
func (r *StoryRepository) GetPublished(ctx context.Context) ([]models.Story, error) {
	query := squirrel.Select(storyColumns...).
		Column("u.first_name || ' ' || u.last_name").
		From("stories s").
		LeftJoin("users u ON u.id = s.author_id").
		Where("s.is_published = TRUE").
		OrderBy("s.created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	return r.queryStories(ctx, query)
}

// GetByAuthor retrieves all stories submitted by one author, newest first
func (r *StoryRepository) GetByAuthor(ctx context.Context, authorID string) ([]models.Story, error) {
	query := squirrel.Select(storyColumns...).
		Column("u.first_name || ' ' || u.last_name").
		From("stories s").
		LeftJoin("users u ON u.id = s.author_id").
		Where("s.author_id = ?", authorID).
		OrderBy("s.created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	return r.queryStories(ctx, query)
}

// GetByID retrieves a story by ID
func (r *StoryRepository) GetByID(ctx context.Context, id string) (*models.Story, error) {
	query := squirrel.Select(storyColumns...).
		Column("u.first_name || ' ' || u.last_name").
		From("stories s").
		LeftJoin("users u ON u.id = s.author_id").
		Where("s.id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	var s models.Story
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&s.ID,
		&s.Title,
		&s.Content,
		&s.ImageURL,
		&s.AuthorID,
		&s.IsPublished,
		&s.CreatedAt,
		&s.UpdatedAt,
		&s.AuthorName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStoryNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return &s, nil
}

// Update modifies an existing story's editable fields
func (r *StoryRepository) Update(ctx context.Context, story *models.Story) error {
	query := squirrel.Update("stories").
		Set("title", story.Title).
		Set("content", story.Content).
		Set("image_url", story.ImageURL).
		Set("is_published", story.IsPublished).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where("id = ?", story.ID).
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
		return apperrors.ErrStoryNotFound
	}

	return nil
}

// Delete removes a story
func (r *StoryRepository) Delete(ctx context.Context, id string) error {
	query := squirrel.Delete("stories").
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
		return apperrors.ErrStoryNotFound
	}

	return nil
}
