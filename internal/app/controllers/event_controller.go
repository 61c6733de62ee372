package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wilsonXeem/clong-backend/internal/app/models"
	"github.com/wilsonXeem/clong-backend/internal/app/models/dto"
	"github.com/wilsonXeem/clong-backend/internal/app/services"
	"github.com/wilsonXeem/clong-backend/internal/middleware"
)

// EventController handles event and registration endpoints
type EventController struct {
	eventService services.EventService
}

// NewEventController creates a new EventController
func NewEventController(eventService services.EventService) *EventController {
	return &EventController{eventService: eventService}
}

// GetEvents lists events
// @Summary List events
// @Description Public. Admins additionally see inactive events.
// @Tags events
// @Produce json
// @Success 200 {object} dto.Response{data=[]models.Event}
// @Router /events [get]
func (c *EventController) GetEvents(ctx *gin.Context) {
	includeInactive := middleware.CurrentRole(ctx) == models.RoleAdmin

	events, err := c.eventService.GetEvents(ctx, includeInactive)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if events == nil {
		events = []models.Event{}
	}

	ctx.JSON(http.StatusOK, dto.NewResponse(events, ""))
}

// GetEventByID retrieves one event
// @Summary Get event by ID
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} dto.Response{data=models.Event}
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Router /events/{id} [get]
func (c *EventController) GetEventByID(ctx *gin.Context) {
	event, err := c.eventService.GetEventByID(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewResponse(event, ""))
}

// CreateEvent creates an event
// @Summary Create an event
// @Description Admin only. Multipart form with an optional image file.
// @Tags events
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Event title"
// @Param description formData string true "Event description"
// @Param location formData string false "Event location"
// @Param eventDate formData string true "Event date (RFC 3339)"
// @Param maxAttendees formData int false "Attendance cap"
// @Param image formData file false "Event image"
// @Success 201 {object} dto.Response{data=models.Event}
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Router /events [post]
func (c *EventController) CreateEvent(ctx *gin.Context) {
	var req dto.CreateEventRequest
	if err := ctx.ShouldBind(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	image, _ := ctx.FormFile("image")

	event, err := c.eventService.CreateEvent(ctx, &req, image)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewResponse(event, "Event created successfully"))
}

// UpdateEvent modifies an event
// @Summary Update an event
// @Description Admin only
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Param request body dto.UpdateEventRequest true "Event fields"
// @Success 200 {object} dto.Response{data=models.Event}
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Router /events/{id} [put]
func (c *EventController) UpdateEvent(ctx *gin.Context) {
	var req dto.UpdateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	event, err := c.eventService.UpdateEvent(ctx, ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewResponse(event, "Event updated successfully"))
}

// DeleteEvent deactivates an event
// @Summary Delete an event
// @Description Admin only. The event is deactivated, not removed, so
// registrations stay intact.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Router /events/{id} [delete]
func (c *EventController) DeleteEvent(ctx *gin.Context) {
	if err := c.eventService.DeleteEvent(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewResponse(nil, "Event deleted successfully"))
}

// RegisterForEvent claims a seat at an event
// @Summary Register for an event
// @Description Public. Registration fails with 400 when the event has
// reached its attendance cap.
// @Tags events
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param request body dto.RegisterForEventRequest true "Attendee details"
// @Success 201 {object} dto.Response{data=models.EventRegistration}
// @Failure 400 {object} dto.ErrorResponse "Event is full"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Router /events/{id}/register [post]
func (c *EventController) RegisterForEvent(ctx *gin.Context) {
	var req dto.RegisterForEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}
	if err := middleware.ValidateStruct(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	registration, err := c.eventService.RegisterForEvent(ctx, ctx.Param("id"), middleware.CurrentUserIDPtr(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewResponse(registration, "Registered for event successfully"))
}

// GetEventRegistrations lists an event's registrations
// @Summary List event registrations
// @Description Admin only
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} dto.Response{data=[]models.EventRegistration}
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Router /events/{id}/registrations [get]
func (c *EventController) GetEventRegistrations(ctx *gin.Context) {
	registrations, err := c.eventService.GetEventRegistrations(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if registrations == nil {
		registrations = []models.EventRegistration{}
	}

	ctx.JSON(http.StatusOK, dto.NewResponse(registrations, ""))
}
