package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wilsonXeem/clong-backend/internal/app/models/dto"
	"github.com/wilsonXeem/clong-backend/internal/middleware"
	"github.com/wilsonXeem/clong-backend/internal/pkg/imagehost"
)

// UploadController relays standalone file uploads to the image host
type UploadController struct {
	uploader imagehost.Uploader
}

// NewUploadController creates a new UploadController
func NewUploadController(uploader imagehost.Uploader) *UploadController {
	return &UploadController{uploader: uploader}
}

// Upload relays a file to the image host and returns its URL
// @Summary Upload a file
// @Description Relays the file to the configured image host and returns
// the hosted URL for use in other requests.
// @Tags upload
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param file formData file true "File to upload"
// @Param folder formData string false "Target folder" default(uploads)
// @Success 201 {object} dto.Response{data=dto.UploadResponse}
// @Failure 400 {object} dto.ErrorResponse "File missing"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /upload [post]
func (c *UploadController) Upload(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "File is required")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	folder := ctx.DefaultPostForm("folder", "uploads")

	result, err := c.uploader.Upload(ctx, file, folder)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewResponse(dto.UploadResponse{
		URL:      result.URL,
		PublicID: result.PublicID,
	}, "File uploaded successfully"))
}
