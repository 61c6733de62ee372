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

var articleColumns = []string{
	"id", "title", "slug", "excerpt", "content", "featured_image",
	"type", "author_id", "is_published", "published_at", "created_at", "updated_at",
}

// ArticleRepository handles database operations for articles and blog posts
type ArticleRepository struct {
	db *pgxpool.Pool
}

// NewArticleRepository creates a new ArticleRepository
func NewArticleRepository(db *pgxpool.Pool) *ArticleRepository {
	return &ArticleRepository{db: db}
}

func scanArticle(row pgx.Row) (*models.Article, error) {
	var a models.Article
	err := row.Scan(
		&a.ID,
		&a.Title,
		&a.Slug,
		&a.Excerpt,
		&a.Content,
		&a.FeaturedImage,
		&a.Type,
		&a.AuthorID,
		&a.IsPublished,
		&a.PublishedAt,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Create inserts a new article or blog post
func (r *ArticleRepository) Create(ctx context.Context, article *models.Article) error {
	query := squirrel.Insert("articles").
		Columns("title", "slug", "excerpt", "content", "featured_image", "type", "author_id", "is_published", "published_at").
		Values(article.Title, article.Slug, article.Excerpt, article.Content, article.FeaturedImage,
			article.Type, article.AuthorID, article.IsPublished, article.PublishedAt).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&article.ID, &article.CreatedAt, &article.UpdatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrSlugAlreadyUsed
		}
		return fmt.Errorf("error executing query: %w", err)
	}

	return nil
}

// GetAll retrieves articles of one content type with pagination, newest
// first. When publishedOnly is set, drafts are excluded.
func (r *ArticleRepository) GetAll(ctx context.Context, contentType models.ContentType, publishedOnly bool, page, pageSize int) ([]models.Article, int64, error) {
	offset := (page - 1) * pageSize

	query := squirrel.Select(articleColumns...).
		Column("COUNT(*) OVER()").
		From("articles").
		Where("type = ?", contentType).
		OrderBy("created_at DESC").
		Limit(uint64(pageSize)).
		Offset(uint64(offset)).
		PlaceholderFormat(squirrel.Dollar)

	if publishedOnly {
		query = query.Where("is_published = TRUE")
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

	var articles []models.Article
	var total int64

	for rows.Next() {
		var a models.Article
		err := rows.Scan(
			&a.ID,
			&a.Title,
			&a.Slug,
			&a.Excerpt,
			&a.Content,
			&a.FeaturedImage,
			&a.Type,
			&a.AuthorID,
			&a.IsPublished,
			&a.PublishedAt,
			&a.CreatedAt,
			&a.UpdatedAt,
			&total,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning row: %w", err)
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating rows: %w", err)
	}

	return articles, total, nil
}

// GetByID retrieves an article by ID regardless of publication state
func (r *ArticleRepository) GetByID(ctx context.Context, id string) (*models.Article, error) {
	query := squirrel.Select(articleColumns...).
		From("articles").
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	article, err := scanArticle(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrArticleNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return article, nil
}

// GetBySlug retrieves a published article of one content type by slug
func (r *ArticleRepository) GetBySlug(ctx context.Context, contentType models.ContentType, slug string) (*models.Article, error) {
	query := squirrel.Select(articleColumns...).
		From("articles").
		Where("slug = ?", slug).
		Where("type = ?", contentType).
		Where("is_published = TRUE").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	article, err := scanArticle(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrArticleNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return article, nil
}

// Update modifies an existing article's editable fields
func (r *ArticleRepository) Update(ctx context.Context, article *models.Article) error {
	query := squirrel.Update("articles").
		Set("title", article.Title).
		Set("slug", article.Slug).
		Set("excerpt", article.Excerpt).
		Set("content", article.Content).
		Set("featured_image", article.FeaturedImage).
		Set("is_published", article.IsPublished).
		Set("published_at", article.PublishedAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where("id = ?", article.ID).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrSlugAlreadyUsed
		}
		return fmt.Errorf("error executing query: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrArticleNotFound
	}

	return nil
}

// Delete removes an article
func (r *ArticleRepository) Delete(ctx context.Context, id string) error {
	query := squirrel.Delete("articles").
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
		return apperrors.ErrArticleNotFound
	}

	return nil
}
