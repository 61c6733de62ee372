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

var donationColumns = []string{
	"d.id", "d.user_id", "d.program_id", "d.amount", "d.donor_name", "d.donor_email",
	"d.is_anonymous", "d.payment_status", "d.payment_reference", "d.created_at",
}

// DonationRepository handles database operations for donations
type DonationRepository struct {
	db *pgxpool.Pool
}

// NewDonationRepository creates a new DonationRepository
func NewDonationRepository(db *pgxpool.Pool) *DonationRepository {
	return &DonationRepository{db: db}
}

// Create inserts a new donation in pending state
func (r *DonationRepository) Create(ctx context.Context, donation *models.Donation) error {
	query := squirrel.Insert("donations").
		Columns("user_id", "program_id", "amount", "donor_name", "donor_email", "is_anonymous", "payment_reference").
		Values(donation.UserID, donation.ProgramID, donation.Amount, donation.DonorName,
			donation.DonorEmail, donation.IsAnonymous, donation.PaymentReference).
		Suffix("RETURNING id, payment_status, created_at").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&donation.ID, &donation.PaymentStatus, &donation.CreatedAt)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrProgramNotFound
		}
		return fmt.Errorf("error executing query: %w", err)
	}

	return nil
}

// GetAll retrieves donations with pagination, newest first, joined with
// their program title when one is linked
func (r *DonationRepository) GetAll(ctx context.Context, programID *string, page, pageSize int) ([]models.Donation, int64, error) {
	offset := (page - 1) * pageSize

	query := squirrel.Select(donationColumns...).
		Column("p.title").
		Column("COUNT(*) OVER()").
		From("donations d").
		LeftJoin("programs p ON p.id = d.program_id").
		OrderBy("d.created_at DESC").
		Limit(uint64(pageSize)).
		Offset(uint64(offset)).
		PlaceholderFormat(squirrel.Dollar)

	if programID != nil {
		query = query.Where("d.program_id = ?", *programID)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var donations []models.Donation
	var total int64

	for rows.Next() {
		var d models.Donation
		err := rows.Scan(
			&d.ID,
			&d.UserID,
			&d.ProgramID,
			&d.Amount,
			&d.DonorName,
			&d.DonorEmail,
			&d.IsAnonymous,
			&d.PaymentStatus,
			&d.PaymentReference,
			&d.CreatedAt,
			&d.ProgramTitle,
			&total,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning row: %w", err)
		}
		donations = append(donations, d)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating rows: %w", err)
	}

	return donations, total, nil
}

// GetByUserID retrieves every donation made by a user, newest first
func (r *DonationRepository) GetByUserID(ctx context.Context, userID string) ([]models.Donation, error) {
	query := squirrel.Select(donationColumns...).
		Column("p.title").
		From("donations d").
		LeftJoin("programs p ON p.id = d.program_id").
		Where("d.user_id = ?", userID).
		OrderBy("d.created_at DESC").
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

	var donations []models.Donation
	for rows.Next() {
		var d models.Donation
		err := rows.Scan(
			&d.ID,
			&d.UserID,
			&d.ProgramID,
			&d.Amount,
			&d.DonorName,
			&d.DonorEmail,
			&d.IsAnonymous,
			&d.PaymentStatus,
			&d.PaymentReference,
			&d.CreatedAt,
			&d.ProgramTitle,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		donations = append(donations, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return donations, nil
}

// GetByID retrieves a donation by ID
func (r *DonationRepository) GetByID(ctx context.Context, id string) (*models.Donation, error) {
	query := squirrel.Select(donationColumns...).
		Column("p.title").
		From("donations d").
		LeftJoin("programs p ON p.id = d.program_id").
		Where("d.id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	var d models.Donation
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&d.ID,
		&d.UserID,
		&d.ProgramID,
		&d.Amount,
		&d.DonorName,
		&d.DonorEmail,
		&d.IsAnonymous,
		&d.PaymentStatus,
		&d.PaymentReference,
		&d.CreatedAt,
		&d.ProgramTitle,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDonationNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return &d, nil
}

// UpdateStatus moves a donation to a non-completed payment status.
// Donations that already completed stay closed to further transitions.
func (r *DonationRepository) UpdateStatus(ctx context.Context, id string, status models.PaymentStatus, reference *string) error {
	update := squirrel.Update("donations").
		Set("payment_status", status).
		Where("id = ?", id).
		Where("payment_status <> ?", models.PaymentCompleted).
		PlaceholderFormat(squirrel.Dollar)
	if reference != nil {
		update = update.Set("payment_reference", reference)
	}

	sql, args, err := update.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}
	if result.RowsAffected() == 0 {
		exists, err := r.exists(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return apperrors.ErrDonationNotFound
		}
		return apperrors.ErrDonationAlreadyClosed
	}

	return nil
}

// Complete marks a donation as completed and credits its program total,
// both inside one transaction. The status guard makes repeated completion
// attempts a no-op, so a program is never credited twice for one donation.
func (r *DonationRepository) Complete(ctx context.Context, id string, reference *string) (bool, error) {
	applied := false

	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		update := squirrel.Update("donations").
			Set("payment_status", models.PaymentCompleted).
			Where("id = ?", id).
			Where("payment_status <> ?", models.PaymentCompleted).
			Suffix("RETURNING amount, program_id").
			PlaceholderFormat(squirrel.Dollar)
		if reference != nil {
			update = update.Set("payment_reference", reference)
		}

		sql, args, err := update.ToSql()
		if err != nil {
			return fmt.Errorf("error building SQL: %w", err)
		}

		var amount string
		var programID *string
		err = tx.QueryRow(ctx, sql, args...).Scan(&amount, &programID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				exists, err := r.exists(ctx, id)
				if err != nil {
					return err
				}
				if !exists {
					return apperrors.ErrDonationNotFound
				}
				// Already completed, nothing to apply.
				return nil
			}
			return fmt.Errorf("error executing query: %w", err)
		}

		if programID != nil {
			creditSQL := `UPDATE programs
				SET current_amount = current_amount + $1::numeric, updated_at = NOW()
				WHERE id = $2`
			if _, err := tx.Exec(ctx, creditSQL, amount, *programID); err != nil {
				return fmt.Errorf("error crediting program total: %w", err)
			}
		}

		applied = true
		return nil
	})
	if err != nil {
		return false, err
	}

	return applied, nil
}

func (r *DonationRepository) exists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.QueryRow(ctx, "SELECT COUNT(1) FROM donations WHERE id = $1", id).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("error executing query: %w", err)
	}
	return count > 0, nil
}
