package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wilsonXeem/clong-backend/internal/app/models"
	"github.com/wilsonXeem/clong-backend/internal/app/models/dto"
	"github.com/wilsonXeem/clong-backend/internal/app/services"
	"github.com/wilsonXeem/clong-backend/internal/middleware"
)

// ProgramController handles fundraising program endpoints
type ProgramController struct {
	programService services.ProgramService
}

// NewProgramController creates a new ProgramController
func NewProgramController(programService services.ProgramService) *ProgramController {
	return &ProgramController{programService: programService}
}

// GetPrograms lists programs
// @Summary List programs
// @Description Public. Admins additionally see inactive programs.
// @Tags programs
// @Produce json
// @Success 200 {object} dto.Response{data=[]models.Program}
// @Router /programs [get]
func (c *ProgramController) GetPrograms(ctx *gin.Context) {
	includeInactive := middleware.CurrentRole(ctx) == models.RoleAdmin

	programs, err := c.programService.GetPrograms(ctx, includeInactive)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if programs == nil {
		programs = []models.Program{}
	}

	ctx.JSON(http.StatusOK, dto.NewResponse(programs, ""))
}

// GetProgramByID retrieves one program
// @Summary Get program by ID
// @Tags programs
// @Produce json
// @Param id path string true "Program ID"
// @Success 200 {object} dto.Response{data=models.Program}
// @Failure 404 {object} dto.ErrorResponse "Program not found"
// @Router /programs/{id} [get]
func (c *ProgramController) GetProgramByID(ctx *gin.Context) {
	program, err := c.programService.GetProgramByID(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewResponse(program, ""))
}

// CreateProgram creates a program
// @Summary Create a program
// @Description Admin only. Multipart form with an optional image file.
// @Tags programs
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Program title"
// @Param description formData string true "Program description"
// @Param targetAmount formData string false "Fundraising target"
// @Param startDate formData string false "Start date (RFC 3339)"
// @Param endDate formData string false "End date (RFC 3339)"
// @Param image formData file false "Program image"
// @Success 201 {object} dto.Response{data=models.Program}
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Router /programs [post]
func (c *ProgramController) CreateProgram(ctx *gin.Context) {
	var req dto.CreateProgramRequest
	if err := ctx.ShouldBind(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	image, _ := ctx.FormFile("image")

	program, err := c.programService.CreateProgram(ctx, &req, image)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewResponse(program, "Program created successfully"))
}

// UpdateProgram modifies a program
// @Summary Update a program
// @Description Admin only
// @Tags programs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Program ID"
// @Param request body dto.UpdateProgramRequest true "Program fields"
// @Success 200 {object} dto.Response{data=models.Program}
// @Failure 404 {object} dto.ErrorResponse "Program not found"
// @Router /programs/{id} [put]
func (c *ProgramController) UpdateProgram(ctx *gin.Context) {
	var req dto.UpdateProgramRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	program, err := c.programService.UpdateProgram(ctx, ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewResponse(program, "Program updated successfully"))
}

// DeleteProgram deactivates a program
// @Summary Delete a program
// @Description Admin only. The program is deactivated, not removed, so
// donation history stays intact.
// @Tags programs
// @Produce json
// @Security BearerAuth
// @Param id path string true "Program ID"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.ErrorResponse "Program not found"
// @Router /programs/{id} [delete]
func (c *ProgramController) DeleteProgram(ctx *gin.Context) {
	if err := c.programService.DeleteProgram(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewResponse(nil, "Program deleted successfully"))
}
