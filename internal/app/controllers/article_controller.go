package controllers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/wilsonXeem/clong-backend/internal/app/models"
	"github.com/wilsonXeem/clong-backend/internal/app/models/dto"
	"github.com/wilsonXeem/clong-backend/internal/app/services"
	"github.com/wilsonXeem/clong-backend/internal/middleware"
	"github.com/wilsonXeem/clong-backend/internal/pkg/helpers"
)

// ArticleController handles both the /articles and /blogs route trees.
// The two share one table and one handler set; the content type is
// derived from the route path.
type ArticleController struct {
	articleService services.ArticleService
}

// NewArticleController creates a new ArticleController
func NewArticleController(articleService services.ArticleService) *ArticleController {
	return &ArticleController{articleService: articleService}
}

func contentTypeFromPath(ctx *gin.Context) models.ContentType {
	if strings.HasPrefix(ctx.FullPath(), "/api/blogs") {
		return models.ContentBlog
	}
	return models.ContentArticle
}

// GetArticles lists published articles or blog posts
// @Summary List articles
// @Description Public. The /blogs tree serves the same handler for blog posts.
// @Tags articles
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} dto.PagedResponse{data=[]models.Article}
// @Router /articles [get]
func (c *ArticleController) GetArticles(ctx *gin.Context) {
	page, pageSize := helpers.ParsePageParams(ctx)
	includeDrafts := middleware.CurrentRole(ctx) == models.RoleAdmin

	articles, total, err := c.articleService.GetArticles(ctx, contentTypeFromPath(ctx), includeDrafts, page, pageSize)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if articles == nil {
		articles = []models.Article{}
	}

	ctx.JSON(http.StatusOK, dto.NewPagedResponse(articles, helpers.NewPaginationInfo(total, page, pageSize)))
}

// GetArticleBySlug retrieves one published article by slug
// @Summary Get article by slug
// @Tags articles
// @Produce json
// @Param slug path string true "Article slug"
// @Success 200 {object} dto.Response{data=models.Article}
// @Failure 404 {object} dto.ErrorResponse "Article not found"
// @Router /articles/{slug} [get]
func (c *ArticleController) GetArticleBySlug(ctx *gin.Context) {
	article, err := c.articleService.GetArticleBySlug(ctx, contentTypeFromPath(ctx), ctx.Param("slug"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewResponse(article, ""))
}

// CreateArticle creates an article or blog post
// @Summary Create an article
// @Description Admin only. Multipart form with an optional featured image.
// @Tags articles
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Title"
// @Param content formData string true "Body content"
// @Param slug formData string false "Custom slug (derived from title when omitted)"
// @Param excerpt formData string false "Short excerpt"
// @Param featuredImage formData file false "Featured image"
// @Success 201 {object} dto.Response{data=models.Article}
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Failure 409 {object} dto.ErrorResponse "Slug already in use"
// @Router /articles [post]
func (c *ArticleController) CreateArticle(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.CreateArticleRequest
	if err := ctx.ShouldBind(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	image, _ := ctx.FormFile("featuredImage")

	article, err := c.articleService.CreateArticle(ctx, userID, contentTypeFromPath(ctx), &req, image)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewResponse(article, "Article created successfully"))
}

// UpdateArticle modifies an article. The path segment carries the
// article ID; gin requires one wildcard name per position, so these
// admin routes share the :slug label with the public slug lookup.
// @Summary Update an article
// @Description Admin only. The slug only changes when a new one is sent,
// so published URLs stay stable.
// @Tags articles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Article ID"
// @Param request body dto.UpdateArticleRequest true "Article fields"
// @Success 200 {object} dto.Response{data=models.Article}
// @Failure 404 {object} dto.ErrorResponse "Article not found"
// @Router /articles/{slug} [put]
func (c *ArticleController) UpdateArticle(ctx *gin.Context) {
	var req dto.UpdateArticleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	article, err := c.articleService.UpdateArticle(ctx, ctx.Param("slug"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewResponse(article, "Article updated successfully"))
}

// SetPublished publishes or unpublishes an article. An absent body
// means publish, so a bare PATCH works the way the endpoint is mostly
// used; sending {"isPublished": false} unpublishes.
// @Summary Toggle article publication
// @Description Admin only. Publishes when no body is sent.
// @Tags articles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Article ID"
// @Success 200 {object} dto.Response{data=models.Article}
// @Failure 404 {object} dto.ErrorResponse "Article not found"
// @Router /articles/{slug}/publish [patch]
func (c *ArticleController) SetPublished(ctx *gin.Context) {
	var req struct {
		IsPublished *bool `json:"isPublished"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	publish := true
	if req.IsPublished != nil {
		publish = *req.IsPublished
	}

	article, err := c.articleService.SetPublished(ctx, ctx.Param("slug"), publish)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewResponse(article, "Article publication updated successfully"))
}

// DeleteArticle removes an article
// @Summary Delete an article
// @Description Admin only
// @Tags articles
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Article ID"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.ErrorResponse "Article not found"
// @Router /articles/{slug} [delete]
func (c *ArticleController) DeleteArticle(ctx *gin.Context) {
	if err := c.articleService.DeleteArticle(ctx, ctx.Param("slug")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewResponse(nil, "Article deleted successfully"))
}
