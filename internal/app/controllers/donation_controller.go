package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wilsonXeem/clong-backend/internal/app/models"
	"github.com/wilsonXeem/clong-backend/internal/app/models/dto"
	"github.com/wilsonXeem/clong-backend/internal/app/services"
	"github.com/wilsonXeem/clong-backend/internal/middleware"
	"github.com/wilsonXeem/clong-backend/internal/pkg/helpers"
)

// DonationController handles donation endpoints
type DonationController struct {
	donationService services.DonationService
}

// NewDonationController creates a new DonationController
func NewDonationController(donationService services.DonationService) *DonationController {
	return &DonationController{donationService: donationService}
}

// CreateDonation starts a donation
// @Summary Create a donation
// @Description Public. A signed-in caller is linked to the donation
// automatically; anonymous donors may leave name and email empty.
// @Tags donations
// @Accept json
// @Produce json
// @Param request body dto.CreateDonationRequest true "Donation details"
// @Success 201 {object} dto.Response{data=models.Donation}
// @Failure 400 {object} dto.ErrorResponse "Invalid amount"
// @Failure 404 {object} dto.ErrorResponse "Program not found"
// @Router /donations [post]
func (c *DonationController) CreateDonation(ctx *gin.Context) {
	var req dto.CreateDonationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	donation, err := c.donationService.CreateDonation(ctx, middleware.CurrentUserIDPtr(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewResponse(donation, "Donation created successfully"))
}

// GetDonations lists donations
// @Summary List donations
// @Description Public. Donor identity is withheld for anonymous donations.
// @Tags donations
// @Produce json
// @Param programId query string false "Filter by program"
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} dto.PagedResponse{data=[]dto.DonationListItem}
// @Router /donations [get]
func (c *DonationController) GetDonations(ctx *gin.Context) {
	page, pageSize := helpers.ParsePageParams(ctx)

	var programID *string
	if v := ctx.Query("programId"); v != "" {
		programID = &v
	}

	donations, total, err := c.donationService.GetDonations(ctx, programID, page, pageSize)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if donations == nil {
		donations = []dto.DonationListItem{}
	}

	ctx.JSON(http.StatusOK, dto.NewPagedResponse(donations, helpers.NewPaginationInfo(total, page, pageSize)))
}

// GetMyDonations lists the caller's donations
// @Summary List own donations
// @Tags donations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.Response{data=[]models.Donation}
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /donations/my [get]
func (c *DonationController) GetMyDonations(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	donations, err := c.donationService.GetUserDonations(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if donations == nil {
		donations = []models.Donation{}
	}

	ctx.JSON(http.StatusOK, dto.NewResponse(donations, ""))
}

// GetDonationByID retrieves one donation
// @Summary Get donation by ID
// @Description Donor identity is withheld for anonymous donations unless
// the caller is the donor or an admin
// @Tags donations
// @Produce json
// @Param id path string true "Donation ID"
// @Success 200 {object} dto.Response{data=models.Donation}
// @Failure 404 {object} dto.ErrorResponse "Donation not found"
// @Router /donations/{id} [get]
func (c *DonationController) GetDonationByID(ctx *gin.Context) {
	donation, err := c.donationService.GetDonationByID(ctx, ctx.Param("id"), middleware.CurrentUserIDPtr(ctx), middleware.CurrentRole(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewResponse(donation, ""))
}

// UpdatePaymentStatus transitions a donation's payment status
// @Summary Update payment status
// @Description Admin only. Completing a donation credits its program
// total exactly once, even when the transition is retried.
// @Tags donations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Donation ID"
// @Param request body dto.UpdateDonationStatusRequest true "New status"
// @Success 200 {object} dto.Response{data=models.Donation}
// @Failure 400 {object} dto.ErrorResponse "Invalid payment status"
// @Failure 404 {object} dto.ErrorResponse "Donation not found"
// @Router /donations/{id}/status [patch]
func (c *DonationController) UpdatePaymentStatus(ctx *gin.Context) {
	var req dto.UpdateDonationStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	donation, err := c.donationService.UpdatePaymentStatus(ctx, ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewResponse(donation, "Donation status updated successfully"))
}
