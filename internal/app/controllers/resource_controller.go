package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wilsonXeem/clong-backend/internal/app/models"
	"github.com/wilsonXeem/clong-backend/internal/app/models/dto"
	"github.com/wilsonXeem/clong-backend/internal/app/services"
	"github.com/wilsonXeem/clong-backend/internal/middleware"
)

// ResourceController handles shared resource endpoints
type ResourceController struct {
	resourceService services.ResourceService
}

// NewResourceController creates a new ResourceController
func NewResourceController(resourceService services.ResourceService) *ResourceController {
	return &ResourceController{resourceService: resourceService}
}

// GetResources lists public resources
// @Summary List public resources
// @Tags resources
// @Produce json
// @Param category query string false "Filter by category"
// @Success 200 {object} dto.Response{data=[]models.Resource}
// @Router /resources [get]
func (c *ResourceController) GetResources(ctx *gin.Context) {
	var category *string
	if v := ctx.Query("category"); v != "" {
		category = &v
	}

	resources, err := c.resourceService.GetPublicResources(ctx, category)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if resources == nil {
		resources = []models.Resource{}
	}

	ctx.JSON(http.StatusOK, dto.NewResponse(resources, ""))
}

// GetMyResources lists the caller's uploads
// @Summary List own resources
// @Description Includes private uploads
// @Tags resources
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.Response{data=[]models.Resource}
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /resources/user [get]
func (c *ResourceController) GetMyResources(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	resources, err := c.resourceService.GetMyResources(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if resources == nil {
		resources = []models.Resource{}
	}

	ctx.JSON(http.StatusOK, dto.NewResponse(resources, ""))
}

// GetResourceByID retrieves one resource
// @Summary Get resource by ID
// @Description Private resources are only visible to their uploader or an admin
// @Tags resources
// @Produce json
// @Param id path string true "Resource ID"
// @Success 200 {object} dto.Response{data=models.Resource}
// @Failure 404 {object} dto.ErrorResponse "Resource not found"
// @Router /resources/{id} [get]
func (c *ResourceController) GetResourceByID(ctx *gin.Context) {
	resource, err := c.resourceService.GetResourceByID(ctx, ctx.Param("id"), middleware.CurrentUserIDPtr(ctx), middleware.CurrentRole(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewResponse(resource, ""))
}

// CreateResource uploads and records a resource
// @Summary Upload a resource
// @Description Multipart form. The file part is required.
// @Tags resources
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Resource title"
// @Param description formData string false "Description"
// @Param category formData string false "Category"
// @Param isPublic formData bool false "Publicly listed (default true)"
// @Param file formData file true "Resource file"
// @Success 201 {object} dto.Response{data=models.Resource}
// @Failure 400 {object} dto.ErrorResponse "File missing"
// @Router /resources [post]
func (c *ResourceController) CreateResource(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.CreateResourceRequest
	if err := ctx.ShouldBind(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	file, _ := ctx.FormFile("file")

	resource, err := c.resourceService.CreateResource(ctx, userID, &req, file)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewResponse(resource, "Resource created successfully"))
}

// UpdateResource modifies resource metadata
// @Summary Update a resource
// @Description Only the uploader or an admin may modify a resource
// @Tags resources
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Resource ID"
// @Param request body dto.UpdateResourceRequest true "Resource fields"
// @Success 200 {object} dto.Response{data=models.Resource}
// @Failure 403 {object} dto.ErrorResponse "Not the uploader"
// @Failure 404 {object} dto.ErrorResponse "Resource not found"
// @Router /resources/{id} [put]
func (c *ResourceController) UpdateResource(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.UpdateResourceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	resource, err := c.resourceService.UpdateResource(ctx, ctx.Param("id"), userID, middleware.CurrentRole(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewResponse(resource, "Resource updated successfully"))
}

// DeleteResource removes a resource
// @Summary Delete a resource
// @Description Only the uploader or an admin may delete a resource
// @Tags resources
// @Produce json
// @Security BearerAuth
// @Param id path string true "Resource ID"
// @Success 200 {object} dto.Response
// @Failure 403 {object} dto.ErrorResponse "Not the uploader"
// @Failure 404 {object} dto.ErrorResponse "Resource not found"
// @Router /resources/{id} [delete]
func (c *ResourceController) DeleteResource(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.resourceService.DeleteResource(ctx, ctx.Param("id"), userID, middleware.CurrentRole(ctx)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewResponse(nil, "Resource deleted successfully"))
}
