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

// OutreachController handles contact form and newsletter endpoints
type OutreachController struct {
	outreachService services.OutreachService
}

// NewOutreachController creates a new OutreachController
func NewOutreachController(outreachService services.OutreachService) *OutreachController {
	return &OutreachController{outreachService: outreachService}
}

// SubmitContact records a contact form message
// @Summary Submit contact form
// @Tags contacts
// @Accept json
// @Produce json
// @Param request body dto.CreateContactRequest true "Message details"
// @Success 201 {object} dto.Response{data=models.Contact}
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Router /contacts [post]
func (c *OutreachController) SubmitContact(ctx *gin.Context) {
	var req dto.CreateContactRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}
	if err := middleware.ValidateStruct(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	contact, err := c.outreachService.SubmitContact(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewResponse(contact, "Message sent successfully"))
}

// GetContacts lists contact messages
// @Summary List contact messages
// @Description Admin only
// @Tags contacts
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} dto.PagedResponse{data=[]models.Contact}
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Router /contacts [get]
func (c *OutreachController) GetContacts(ctx *gin.Context) {
	page, pageSize := helpers.ParsePageParams(ctx)

	contacts, total, err := c.outreachService.GetContacts(ctx, page, pageSize)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if contacts == nil {
		contacts = []models.Contact{}
	}

	ctx.JSON(http.StatusOK, dto.NewPagedResponse(contacts, helpers.NewPaginationInfo(total, page, pageSize)))
}

// MarkContactRead flags a message as read
// @Summary Mark contact message read
// @Description Admin only
// @Tags contacts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Contact ID"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.ErrorResponse "Contact not found"
// @Router /contacts/{id}/read [patch]
func (c *OutreachController) MarkContactRead(ctx *gin.Context) {
	if err := c.outreachService.MarkContactRead(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewResponse(nil, "Contact marked as read"))
}

// Subscribe adds an email to the newsletter
// @Summary Subscribe to newsletter
// @Tags newsletter
// @Accept json
// @Produce json
// @Param request body dto.NewsletterRequest true "Subscriber email"
// @Success 201 {object} dto.Response{data=models.NewsletterSubscriber}
// @Failure 400 {object} dto.ErrorResponse "Email already subscribed"
// @Router /newsletter/subscribe [post]
func (c *OutreachController) Subscribe(ctx *gin.Context) {
	var req dto.NewsletterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}
	if err := middleware.ValidateStruct(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	sub, err := c.outreachService.Subscribe(ctx, req.Email)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewResponse(sub, "Subscribed successfully"))
}

// Unsubscribe removes an email from the newsletter
// @Summary Unsubscribe from newsletter
// @Tags newsletter
// @Accept json
// @Produce json
// @Param request body dto.NewsletterRequest true "Subscriber email"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.ErrorResponse "Email not found"
// @Router /newsletter/unsubscribe [post]
func (c *OutreachController) Unsubscribe(ctx *gin.Context) {
	var req dto.NewsletterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.outreachService.Unsubscribe(ctx, req.Email); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewResponse(nil, "Unsubscribed successfully"))
}

// GetSubscribers lists active subscribers
// @Summary List newsletter subscribers
// @Description Admin only
// @Tags newsletter
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.Response{data=[]models.NewsletterSubscriber}
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Router /newsletter/subscribers [get]
func (c *OutreachController) GetSubscribers(ctx *gin.Context) {
	subs, err := c.outreachService.GetSubscribers(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if subs == nil {
		subs = []models.NewsletterSubscriber{}
	}

	ctx.JSON(http.StatusOK, dto.NewResponse(subs, ""))
}
