package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wilsonXeem/clong-backend/internal/app/models"
	"github.com/wilsonXeem/clong-backend/internal/app/models/dto"
	"github.com/wilsonXeem/clong-backend/internal/app/services"
	"github.com/wilsonXeem/clong-backend/internal/middleware"
)

// VolunteerController handles volunteer application endpoints
type VolunteerController struct {
	volunteerService services.VolunteerService
}

// NewVolunteerController creates a new VolunteerController
func NewVolunteerController(volunteerService services.VolunteerService) *VolunteerController {
	return &VolunteerController{volunteerService: volunteerService}
}

// Apply submits a volunteer application
// @Summary Apply to volunteer
// @Description Public. One application per email. A signed-in caller is
// linked to the application automatically.
// @Tags volunteers
// @Accept json
// @Produce json
// @Param request body dto.ApplyVolunteerRequest true "Application details"
// @Success 201 {object} dto.Response{data=models.Volunteer}
// @Failure 400 {object} dto.ErrorResponse "Application already exists"
// @Router /volunteers/apply [post]
func (c *VolunteerController) Apply(ctx *gin.Context) {
	var req dto.ApplyVolunteerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}
	if err := middleware.ValidateStruct(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	volunteer, err := c.volunteerService.Apply(ctx, middleware.CurrentUserIDPtr(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewResponse(volunteer, "Application submitted successfully"))
}

// GetVolunteers lists applications
// @Summary List volunteer applications
// @Description Admin only
// @Tags volunteers
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status" Enums(pending, approved, rejected, active)
// @Success 200 {object} dto.Response{data=[]models.Volunteer}
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Router /volunteers [get]
func (c *VolunteerController) GetVolunteers(ctx *gin.Context) {
	var status *models.VolunteerStatus
	if v := ctx.Query("status"); v != "" {
		s := models.VolunteerStatus(v)
		status = &s
	}

	volunteers, err := c.volunteerService.GetVolunteers(ctx, status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if volunteers == nil {
		volunteers = []models.Volunteer{}
	}

	ctx.JSON(http.StatusOK, dto.NewResponse(volunteers, ""))
}

// GetMyApplication retrieves the caller's own application
// @Summary Get own volunteer application
// @Description Requires authentication
// @Tags volunteers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.Response{data=models.Volunteer}
// @Failure 404 {object} dto.ErrorResponse "No application found"
// @Router /volunteers/my-application [get]
func (c *VolunteerController) GetMyApplication(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	volunteer, err := c.volunteerService.GetMyApplication(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewResponse(volunteer, ""))
}

// GetVolunteerByID retrieves one application
// @Summary Get volunteer application
// @Description Admin only
// @Tags volunteers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Volunteer ID"
// @Success 200 {object} dto.Response{data=models.Volunteer}
// @Failure 404 {object} dto.ErrorResponse "Volunteer not found"
// @Router /volunteers/{id} [get]
func (c *VolunteerController) GetVolunteerByID(ctx *gin.Context) {
	volunteer, err := c.volunteerService.GetVolunteerByID(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewResponse(volunteer, ""))
}

// UpdateStatus transitions an application's status
// @Summary Update application status
// @Description Admin only
// @Tags volunteers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Volunteer ID"
// @Param request body dto.UpdateVolunteerStatusRequest true "New status"
// @Success 200 {object} dto.Response{data=models.Volunteer}
// @Failure 400 {object} dto.ErrorResponse "Invalid status"
// @Failure 404 {object} dto.ErrorResponse "Volunteer not found"
// @Router /volunteers/{id}/status [put]
func (c *VolunteerController) UpdateStatus(ctx *gin.Context) {
	var req dto.UpdateVolunteerStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	volunteer, err := c.volunteerService.UpdateStatus(ctx, ctx.Param("id"), req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewResponse(volunteer, "Volunteer status updated successfully"))
}
