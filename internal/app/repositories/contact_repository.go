package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/wilsonXeem/clong-backend/internal/app/models"
	"github.com/wilsonXeem/clong-backend/internal/pkg/apperrors"
)

// ContactRepository handles database operations for contact messages
type ContactRepository struct {
	db *pgxpool.Pool
}

// NewContactRepository creates a new ContactRepository
func NewContactRepository(db *pgxpool.Pool) *ContactRepository {
	return &ContactRepository{db: db}
}

// Create inserts a new contact message
func (r *ContactRepository) Create(ctx context.Context, contact *models.Contact) error {
	query := squirrel.Insert("contacts").
		Columns("name", "email", "subject", "message").
		Values(contact.Name, contact.Email, contact.Subject, contact.Message).
		Suffix("RETURNING id, is_read, created_at").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&contact.ID, &contact.IsRead, &contact.CreatedAt)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	return nil
}

// GetAll retrieves contact messages with pagination, newest first
func (r *ContactRepository) GetAll(ctx context.Context, page, pageSize int) ([]models.Contact, int64, error) {
	offset := (page - 1) * pageSize

	query := squirrel.Select("id", "name", "email", "subject", "message", "is_read", "created_at").
		Column("COUNT(*) OVER()").
		From("contacts").
		OrderBy("created_at DESC").
		Limit(uint64(pageSize)).
		Offset(uint64(offset)).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var contacts []models.Contact
	var total int64

	for rows.Next() {
		var c models.Contact
		err := rows.Scan(
			&c.ID,
			&c.Name,
			&c.Email,
			&c.Subject,
			&c.Message,
			&c.IsRead,
			&c.CreatedAt,
			&total,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning row: %w", err)
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating rows: %w", err)
	}

	return contacts, total, nil
}

// MarkRead flags a contact message as read
func (r *ContactRepository) MarkRead(ctx context.Context, id string) error {
	query := squirrel.Update("contacts").
		Set("is_read", true).
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
		return apperrors.ErrContactNotFound
	}

	return nil
}
