package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wilsonXeem/clong-backend/internal/app/models"
	"github.com/wilsonXeem/clong-backend/internal/app/models/dto"
	"github.com/wilsonXeem/clong-backend/internal/app/services"
	"github.com/wilsonXeem/clong-backend/internal/middleware"
)

// StoryController handles impact story endpoints
type StoryController struct {
	storyService services.StoryService
}

// NewStoryController creates a new StoryController
func NewStoryController(storyService services.StoryService) *StoryController {
	return &StoryController{storyService: storyService}
}

// GetStories lists published stories
// @Summary List published stories
// @Tags stories
// @Produce json
// @Success 200 {object} dto.Response{data=[]models.Story}
// @Router /stories [get]
func (c *StoryController) GetStories(ctx *gin.Context) {
	stories, err := c.storyService.GetPublishedStories(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if stories == nil {
		stories = []models.Story{}
	}

	ctx.JSON(http.StatusOK, dto.NewResponse(stories, ""))
}

// GetMyStories lists the caller's stories
// @Summary List own stories
// @Description Includes unpublished drafts
// @Tags stories
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.Response{data=[]models.Story}
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /stories/user [get]
func (c *StoryController) GetMyStories(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	stories, err := c.storyService.GetMyStories(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if stories == nil {
		stories = []models.Story{}
	}

	ctx.JSON(http.StatusOK, dto.NewResponse(stories, ""))
}

// GetStoryByID retrieves one story
// @Summary Get story by ID
// @Description Unpublished stories are only visible to their author or an admin
// @Tags stories
// @Produce json
// @Param id path string true "Story ID"
// @Success 200 {object} dto.Response{data=models.Story}
// @Failure 404 {object} dto.ErrorResponse "Story not found"
// @Router /stories/{id} [get]
func (c *StoryController) GetStoryByID(ctx *gin.Context) {
	story, err := c.storyService.GetStoryByID(ctx, ctx.Param("id"), middleware.CurrentUserIDPtr(ctx), middleware.CurrentRole(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewResponse(story, ""))
}

// CreateStory submits a story
// @Summary Submit a story
// @Description Multipart form with an optional image file
// @Tags stories
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Story title"
// @Param content formData string true "Story content"
// @Param isPublished formData bool false "Publish immediately"
// @Param image formData file false "Story image"
// @Success 201 {object} dto.Response{data=models.Story}
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /stories [post]
func (c *StoryController) CreateStory(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.CreateStoryRequest
	if err := ctx.ShouldBind(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	image, _ := ctx.FormFile("image")

	story, err := c.storyService.CreateStory(ctx, userID, &req, image)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewResponse(story, "Story created successfully"))
}

// UpdateStory modifies a story
// @Summary Update a story
// @Description Only the author or an admin may modify a story
// @Tags stories
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param id path string true "Story ID"
// @Success 200 {object} dto.Response{data=models.Story}
// @Failure 403 {object} dto.ErrorResponse "Not the author"
// @Failure 404 {object} dto.ErrorResponse "Story not found"
// @Router /stories/{id} [put]
func (c *StoryController) UpdateStory(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.UpdateStoryRequest
	if err := ctx.ShouldBind(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	image, _ := ctx.FormFile("image")

	story, err := c.storyService.UpdateStory(ctx, ctx.Param("id"), userID, middleware.CurrentRole(ctx), &req, image)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewResponse(story, "Story updated successfully"))
}

// DeleteStory removes a story
// @Summary Delete a story
// @Description Only the author or an admin may delete a story
// @Tags stories
// @Produce json
// @Security BearerAuth
// @Param id path string true "Story ID"
// @Success 200 {object} dto.Response
// @Failure 403 {object} dto.ErrorResponse "Not the author"
// @Failure 404 {object} dto.ErrorResponse "Story not found"
// @Router /stories/{id} [delete]
func (c *StoryController) DeleteStory(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.storyService.DeleteStory(ctx, ctx.Param("id"), userID, middleware.CurrentRole(ctx)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewResponse(nil, "Story deleted successfully"))
}
