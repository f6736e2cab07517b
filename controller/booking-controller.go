package controller

import (
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"clubdesk/enrollment"
	"clubdesk/repository"
	"clubdesk/service"
	"clubdesk/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type BookingController struct {
	bookingService *service.BookingService
	eventService   *service.EventService
}

func NewBookingController(db *gorm.DB) *BookingController {
	return &BookingController{
		bookingService: service.NewBookingService(db),
		eventService:   service.NewEventService(db),
	}
}

func setupBookingController(db *gorm.DB) []RouteInfo {
	e := NewBookingController(db)
	basePath := "/events/:event_id/bookings"
	routes := []RouteInfo{
		{Method: "GET", Path: "", HandlerFunc: e.getBookingsHandler(), Authenticated: true, RequiredPermissions: []repository.Permission{repository.PermissionAdmin, repository.PermissionFrontDesk}},
		{Method: "POST", Path: "", HandlerFunc: e.createBookingHandler(), Authenticated: true, RequiredPermissions: []repository.Permission{repository.PermissionAdmin, repository.PermissionFrontDesk}},
		{Method: "POST", Path: "/quote", HandlerFunc: e.quoteBookingHandler(), Authenticated: true, RequiredPermissions: []repository.Permission{repository.PermissionAdmin, repository.PermissionFrontDesk}},
		{Method: "PUT", Path: "/:booking_id", HandlerFunc: e.updateBookingHandler(), Authenticated: true, RequiredPermissions: []repository.Permission{repository.PermissionAdmin, repository.PermissionFrontDesk}},
		{Method: "PATCH", Path: "/:booking_id/status", HandlerFunc: e.updateBookingStatusHandler(), Authenticated: true, RequiredPermissions: []repository.Permission{repository.PermissionAdmin, repository.PermissionFrontDesk}},
		{Method: "DELETE", Path: "/:booking_id", HandlerFunc: e.deleteBookingHandler(), Authenticated: true, RequiredPermissions: []repository.Permission{repository.PermissionAdmin}},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

func (e *BookingController) getEvent(c *gin.Context) *repository.Event {
	eventId, err := strconv.Atoi(c.Param("event_id"))
	if err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return nil
	}
	event, err := e.eventService.GetEventById(eventId, "Categories")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(404, gin.H{"error": "Event not found"})
		} else {
			c.JSON(500, gin.H{"error": err.Error()})
		}
		return nil
	}
	return event
}

// @Description Fetches all bookings for an event
// @Tags booking
// @Produce json
// @Param event_id path int true "Event Id"
// @Success 200 {array} BookingResponse
// @Router /events/{event_id}/bookings [get]
func (e *BookingController) getBookingsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		event := e.getEvent(c)
		if event == nil {
			return
		}
		bookings, err := e.bookingService.GetBookingsForEvent(event.Id)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, utils.Map(bookings, toBookingResponse))
	}
}

// @Description Dry-run of a booking draft: classifies participants, evaluates every category and prices the selected one
// @Tags booking
// @Accept json
// @Produce json
// @Param event_id path int true "Event Id"
// @Param booking body BookingCreate true "Booking draft"
// @Success 200 {object} QuoteResponse
// @Router /events/{event_id}/bookings/quote [post]
func (e *BookingController) quoteBookingHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		event := e.getEvent(c)
		if event == nil {
			return
		}
		var bookingCreate BookingQuote
		if err := c.BindJSON(&bookingCreate); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		quote, err := e.bookingService.QuoteBooking(event, bookingCreate.toRequest())
		if err != nil {
			bookingError(c, err)
			return
		}
		c.JSON(200, toQuoteResponse(quote))
	}
}

// @Description Creates a booking
// @Tags booking
// @Accept json
// @Produce json
// @Param event_id path int true "Event Id"
// @Param booking body BookingCreate true "Booking to create"
// @Success 201 {object} BookingResponse
// @Router /events/{event_id}/bookings [post]
func (e *BookingController) createBookingHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		event := e.getEvent(c)
		if event == nil {
			return
		}
		var bookingCreate BookingCreate
		if err := c.BindJSON(&bookingCreate); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		booking, err := e.bookingService.CreateBooking(event, bookingCreate.toRequest())
		if err != nil {
			bookingError(c, err)
			return
		}
		c.JSON(201, toBookingResponse(booking))
	}
}

// @Description Replaces a booking's participants and category, recomputing the amount
// @Tags booking
// @Accept json
// @Produce json
// @Param event_id path int true "Event Id"
// @Param booking_id path int true "Booking Id"
// @Param booking body BookingCreate true "Booking to update"
// @Success 200 {object} BookingResponse
// @Router /events/{event_id}/bookings/{booking_id} [put]
func (e *BookingController) updateBookingHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		event := e.getEvent(c)
		if event == nil {
			return
		}
		bookingId, err := strconv.Atoi(c.Param("booking_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		var bookingUpdate BookingCreate
		if err := c.BindJSON(&bookingUpdate); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		booking, err := e.bookingService.UpdateBooking(event, bookingId, bookingUpdate.toRequest())
		if err != nil {
			bookingError(c, err)
			return
		}
		c.JSON(200, toBookingResponse(booking))
	}
}

// @Description Updates a booking's status
// @Tags booking
// @Accept json
// @Param event_id path int true "Event Id"
// @Param booking_id path int true "Booking Id"
// @Param status body BookingStatusUpdate true "New status"
// @Success 204
// @Router /events/{event_id}/bookings/{booking_id}/status [patch]
func (e *BookingController) updateBookingStatusHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		bookingId, err := strconv.Atoi(c.Param("booking_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		var statusUpdate BookingStatusUpdate
		if err := c.BindJSON(&statusUpdate); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		err = e.bookingService.SetStatus(bookingId, repository.BookingStatus(statusUpdate.Status))
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(404, gin.H{"error": "Booking not found"})
			} else {
				c.JSON(500, gin.H{"error": err.Error()})
			}
			return
		}
		c.JSON(204, nil)
	}
}

// @Description Deletes a booking
// @Tags booking
// @Param event_id path int true "Event Id"
// @Param booking_id path int true "Booking Id"
// @Success 204
// @Router /events/{event_id}/bookings/{booking_id} [delete]
func (e *BookingController) deleteBookingHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		bookingId, err := strconv.Atoi(c.Param("booking_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		err = e.bookingService.DeleteBooking(bookingId)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(404, gin.H{"error": "Booking not found"})
			} else {
				c.JSON(500, gin.H{"error": err.Error()})
			}
			return
		}
		c.JSON(204, nil)
	}
}

func bookingError(c *gin.Context, err error) {
	var ineligible *service.IneligibleError
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(404, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrMemberMissingDateOfBirth) || errors.Is(err, enrollment.ErrMissingDateOfBirth):
		c.JSON(422, gin.H{"error": err.Error()})
	case errors.Is(err, enrollment.ErrAlreadyVerified):
		c.JSON(409, gin.H{"error": err.Error()})
	case errors.Is(err, enrollment.ErrRosterFull) || errors.As(err, &ineligible):
		c.JSON(400, gin.H{"error": err.Error()})
	default:
		c.JSON(500, gin.H{"error": err.Error()})
	}
}

type NonMemberCreate struct {
	Name        string    `json:"name" binding:"required"`
	DateOfBirth time.Time `json:"date_of_birth"`
	Gender      string    `json:"gender"`
	Mobile      string    `json:"mobile" binding:"omitempty,numeric"`
	Email       string    `json:"email" binding:"omitempty,email"`
}

type BookingCreate struct {
	CategoryId      int               `json:"category_id" binding:"required"`
	BookingFormData json.RawMessage   `json:"booking_form_data"`
	MemberNumbers   []string          `json:"member_data"`
	NonMembers      []NonMemberCreate `json:"non_member_data" binding:"dive"`
}

// BookingQuote is a draft in any state of assembly, so nothing is required.
type BookingQuote struct {
	CategoryId    int               `json:"category_id"`
	MemberNumbers []string          `json:"member_data"`
	NonMembers    []NonMemberCreate `json:"non_member_data" binding:"dive"`
}

type BookingStatusUpdate struct {
	Status string `json:"status" binding:"required,oneof=PENDING CONFIRMED CANCELLED"`
}

type BookingResponse struct {
	Id              int             `json:"id"`
	EventId         int             `json:"event_id"`
	CategoryId      int             `json:"category_id"`
	BookingFormData json.RawMessage `json:"booking_form_data,omitempty"`
	MemberData      json.RawMessage `json:"member_data"`
	NonMemberData   json.RawMessage `json:"non_member_data"`
	AmountPaid      int             `json:"amount_paid"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type CategoryQuoteResponse struct {
	CategoryId int    `json:"category_id"`
	Name       string `json:"name"`
	Eligible   bool   `json:"eligible"`
	Reason     string `json:"reason,omitempty"`
}

type QuoteResponse struct {
	State      string                  `json:"state"`
	Categories []CategoryQuoteResponse `json:"categories"`
	Total      int                     `json:"total"`
}

func toParticipant(p NonMemberCreate) enrollment.Participant {
	return enrollment.Participant{
		Name:        p.Name,
		DateOfBirth: p.DateOfBirth,
		Gender:      p.Gender,
		Mobile:      p.Mobile,
		Email:       p.Email,
	}
}

func (b *BookingCreate) toRequest() *service.BookingRequest {
	return &service.BookingRequest{
		CategoryId:    b.CategoryId,
		FormData:      string(b.BookingFormData),
		MemberNumbers: b.MemberNumbers,
		NonMembers:    utils.Map(b.NonMembers, toParticipant),
	}
}

func (b *BookingQuote) toRequest() *service.BookingRequest {
	return &service.BookingRequest{
		CategoryId:    b.CategoryId,
		MemberNumbers: b.MemberNumbers,
		NonMembers:    utils.Map(b.NonMembers, toParticipant),
	}
}

func toBookingResponse(booking *repository.Booking) *BookingResponse {
	return &BookingResponse{
		Id:              booking.Id,
		EventId:         booking.EventId,
		CategoryId:      booking.CategoryId,
		BookingFormData: json.RawMessage(booking.BookingFormData),
		MemberData:      json.RawMessage(booking.MemberData),
		NonMemberData:   json.RawMessage(booking.NonMemberData),
		AmountPaid:      booking.AmountPaid,
		Status:          string(booking.Status),
		CreatedAt:       booking.CreatedAt,
		UpdatedAt:       booking.UpdatedAt,
	}
}

func toQuoteResponse(quote *service.Quote) *QuoteResponse {
	response := &QuoteResponse{
		State:      string(quote.State),
		Categories: make([]CategoryQuoteResponse, 0, len(quote.Categories)),
		Total:      quote.Total,
	}
	for _, categoryQuote := range quote.Categories {
		response.Categories = append(response.Categories, CategoryQuoteResponse{
			CategoryId: categoryQuote.Category.Id,
			Name:       categoryQuote.Category.Name,
			Eligible:   categoryQuote.Evaluation.Eligible,
			Reason:     categoryQuote.Evaluation.Reason,
		})
	}
	return response
}
