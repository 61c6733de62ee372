package services

import (
	"context"
	"mime/multipart"
	"time"

	"github.com/rs/zerolog"
	"github.com/wilsonXeem/clong-backend/internal/app/models"
	"github.com/wilsonXeem/clong-backend/internal/app/models/dto"
	"github.com/wilsonXeem/clong-backend/internal/pkg/imagehost"
	"github.com/wilsonXeem/clong-backend/internal/pkg/validation"
)

// ArticleStore is the subset of article persistence the service needs
type ArticleStore interface {
	Create(ctx context.Context, article *models.Article) error
	GetAll(ctx context.Context, contentType models.ContentType, publishedOnly bool, page, pageSize int) ([]models.Article, int64, error)
	GetByID(ctx context.Context, id string) (*models.Article, error)
	GetBySlug(ctx context.Context, contentType models.ContentType, slug string) (*models.Article, error)
	Update(ctx context.Context, article *models.Article) error
	Delete(ctx context.Context, id string) error
}

// ArticleService defines the interface for article and blog operations
type ArticleService interface {
	CreateArticle(ctx context.Context, authorID string, contentType models.ContentType, req *dto.CreateArticleRequest, image *multipart.FileHeader) (*models.Article, error)
	GetArticles(ctx context.Context, contentType models.ContentType, includeDrafts bool, page, pageSize int) ([]models.Article, int64, error)
	GetArticleBySlug(ctx context.Context, contentType models.ContentType, slug string) (*models.Article, error)
	UpdateArticle(ctx context.Context, id string, req *dto.UpdateArticleRequest) (*models.Article, error)
	SetPublished(ctx context.Context, id string, published bool) (*models.Article, error)
	DeleteArticle(ctx context.Context, id string) error
}

// articleServiceImpl implements ArticleService
type articleServiceImpl struct {
	articleRepo ArticleStore
	uploader    imagehost.Uploader
	logger      zerolog.Logger
}

// NewArticleService creates a new ArticleService
func NewArticleService(articleRepo ArticleStore, uploader imagehost.Uploader, logger zerolog.Logger) ArticleService {
	return &articleServiceImpl{
		articleRepo: articleRepo,
		uploader:    uploader,
		logger:      logger,
	}
}

// CreateArticle creates a published article or blog post. The slug is
// derived from the title when the request omits one.
func (s *articleServiceImpl) CreateArticle(ctx context.Context, authorID string, contentType models.ContentType, req *dto.CreateArticleRequest, image *multipart.FileHeader) (*models.Article, error) {
	slug := validation.Slugify(req.Title)
	if req.Slug != nil && *req.Slug != "" {
		slug = validation.Slugify(*req.Slug)
	}

	now := time.Now()
	article := &models.Article{
		Title:       req.Title,
		Slug:        slug,
		Excerpt:     req.Excerpt,
		Content:     req.Content,
		Type:        contentType,
		AuthorID:    authorID,
		IsPublished: true,
		PublishedAt: &now,
	}
	if req.Type != nil {
		article.Type = models.ContentType(*req.Type)
	}

	if image != nil {
		result, err := s.uploader.Upload(ctx, image, "articles")
		if err != nil {
			s.logger.Error().Err(err).Msg("Failed to upload featured image")
			return nil, err
		}
		article.FeaturedImage = &result.URL
	} else if req.FeaturedImage != nil {
		article.FeaturedImage = req.FeaturedImage
	}

	if err := s.articleRepo.Create(ctx, article); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("articleID", article.ID).
		Str("slug", article.Slug).
		Str("type", string(article.Type)).
		Msg("Article created")

	return article, nil
}

// GetArticles retrieves articles of one content type with pagination
func (s *articleServiceImpl) GetArticles(ctx context.Context, contentType models.ContentType, includeDrafts bool, page, pageSize int) ([]models.Article, int64, error) {
	return s.articleRepo.GetAll(ctx, contentType, !includeDrafts, page, pageSize)
}

// GetArticleBySlug retrieves a published article by slug
func (s *articleServiceImpl) GetArticleBySlug(ctx context.Context, contentType models.ContentType, slug string) (*models.Article, error) {
	return s.articleRepo.GetBySlug(ctx, contentType, slug)
}

// UpdateArticle modifies an article. Changing the title does not change
// the slug unless a new slug is sent, so published URLs stay stable.
func (s *articleServiceImpl) UpdateArticle(ctx context.Context, id string, req *dto.UpdateArticleRequest) (*models.Article, error) {
	article, err := s.articleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != "" {
		article.Title = req.Title
	}
	if req.Slug != nil && *req.Slug != "" {
		article.Slug = validation.Slugify(*req.Slug)
	}
	if req.Excerpt != nil {
		article.Excerpt = req.Excerpt
	}
	if req.Content != "" {
		article.Content = req.Content
	}
	if req.FeaturedImage != nil {
		article.FeaturedImage = req.FeaturedImage
	}

	if err := s.articleRepo.Update(ctx, article); err != nil {
		return nil, err
	}

	return article, nil
}

// SetPublished publishes or unpublishes an article. Publishing stamps
// the publication time once; republishing keeps the original stamp.
func (s *articleServiceImpl) SetPublished(ctx context.Context, id string, published bool) (*models.Article, error) {
	article, err := s.articleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	article.IsPublished = published
	if published && article.PublishedAt == nil {
		now := time.Now()
		article.PublishedAt = &now
	}

	if err := s.articleRepo.Update(ctx, article); err != nil {
		return nil, err
	}

	s.logger.Info().Str("articleID", id).Bool("published", published).Msg("Article publication changed")
	return article, nil
}

// DeleteArticle removes an article
func (s *articleServiceImpl) DeleteArticle(ctx context.Context, id string) error {
	if err := s.articleRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("articleID", id).Msg("Article deleted")
	return nil
}
