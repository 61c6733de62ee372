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

// NewsletterRepository handles database operations for newsletter subscriptions
type NewsletterRepository struct {
	db *pgxpool.Pool
}

// NewNewsletterRepository creates a new NewsletterRepository
func NewNewsletterRepository(db *pgxpool.Pool) *NewsletterRepository {
	return &NewsletterRepository{db: db}
}

// GetByEmail retrieves a subscription by email
func (r *NewsletterRepository) GetByEmail(ctx context.Context, email string) (*models.NewsletterSubscriber, error) {
	query := squirrel.Select("id", "email", "is_active", "subscribed_at", "unsubscribed_at").
		From("newsletter_subscribers").
		Where("email = ?", email).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	var sub models.NewsletterSubscriber
	err = r.db.QueryRow(ctx, sql, args...).
		Scan(&sub.ID, &sub.Email, &sub.IsActive, &sub.SubscribedAt, &sub.UnsubscribedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSubscriberMissing
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return &sub, nil
}

// Subscribe creates a subscription for the email
func (r *NewsletterRepository) Subscribe(ctx context.Context, email string) (*models.NewsletterSubscriber, error) {
	query := squirrel.Insert("newsletter_subscribers").
		Columns("email").
		Values(email).
		Suffix("RETURNING id, email, is_active, subscribed_at, unsubscribed_at").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	var sub models.NewsletterSubscriber
	err = r.db.QueryRow(ctx, sql, args...).
		Scan(&sub.ID, &sub.Email, &sub.IsActive, &sub.SubscribedAt, &sub.UnsubscribedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrAlreadySubscribed
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return &sub, nil
}

// Reactivate turns a lapsed subscription back on
func (r *NewsletterRepository) Reactivate(ctx context.Context, email string) (*models.NewsletterSubscriber, error) {
	query := squirrel.Update("newsletter_subscribers").
		Set("is_active", true).
		Set("subscribed_at", squirrel.Expr("NOW()")).
		Set("unsubscribed_at", nil).
		Where("email = ?", email).
		Suffix("RETURNING id, email, is_active, subscribed_at, unsubscribed_at").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	var sub models.NewsletterSubscriber
	err = r.db.QueryRow(ctx, sql, args...).
		Scan(&sub.ID, &sub.Email, &sub.IsActive, &sub.SubscribedAt, &sub.UnsubscribedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSubscriberMissing
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return &sub, nil
}

// Unsubscribe turns a subscription off and records when it lapsed
func (r *NewsletterRepository) Unsubscribe(ctx context.Context, email string) error {
	query := squirrel.Update("newsletter_subscribers").
		Set("is_active", false).
		Set("unsubscribed_at", squirrel.Expr("NOW()")).
		Where("email = ?", email).
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
		return apperrors.ErrSubscriberMissing
	}

	return nil
}

// GetActive retrieves all active subscribers, oldest first
func (r *NewsletterRepository) GetActive(ctx context.Context) ([]models.NewsletterSubscriber, error) {
	query := squirrel.Select("id", "email", "is_active", "subscribed_at", "unsubscribed_at").
		From("newsletter_subscribers").
		Where("is_active = TRUE").
		OrderBy("subscribed_at ASC").
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

	var subscribers []models.NewsletterSubscriber
	for rows.Next() {
		var sub models.NewsletterSubscriber
		err := rows.Scan(&sub.ID, &sub.Email, &sub.IsActive, &sub.SubscribedAt, &sub.UnsubscribedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		subscribers = append(subscribers, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return subscribers, nil
}
