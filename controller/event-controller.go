package controller

import (
	"errors"
	"strconv"
	"time"

	"clubdesk/repository"
	"clubdesk/service"
	"clubdesk/utils"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type EventController struct {
	eventService *service.EventService
}

func NewEventController(db *gorm.DB) *EventController {
	return &EventController{
		eventService: service.NewEventService(db),
	}
}

func setupEventController(db *gorm.DB) []RouteInfo {
	e := NewEventController(db)
	basePath := "/events"
	routes := []RouteInfo{
		{Method: "GET", Path: "", HandlerFunc: e.getEventsHandler(), Cached: true},
		{Method: "POST", Path: "", HandlerFunc: e.createEventHandler(), Authenticated: true, RequiredPermissions: []repository.Permission{repository.PermissionAdmin}},
		{Method: "GET", Path: "/:event_id", HandlerFunc: e.getEventHandler()},
		{Method: "PATCH", Path: "/:event_id", HandlerFunc: e.updateEventHandler(), Authenticated: true, RequiredPermissions: []repository.Permission{repository.PermissionAdmin}},
		{Method: "DELETE", Path: "/:event_id", HandlerFunc: e.deleteEventHandler(), Authenticated: true, RequiredPermissions: []repository.Permission{repository.PermissionAdmin}},
		{Method: "POST", Path: "/:event_id/categories", HandlerFunc: e.createCategoryHandler(), Authenticated: true, RequiredPermissions: []repository.Permission{repository.PermissionAdmin}},
		{Method: "PATCH", Path: "/:event_id/categories/:category_id", HandlerFunc: e.updateCategoryHandler(), Authenticated: true, RequiredPermissions: []repository.Permission{repository.PermissionAdmin}},
		{Method: "DELETE", Path: "/:event_id/categories/:category_id", HandlerFunc: e.deleteCategoryHandler(), Authenticated: true, RequiredPermissions: []repository.Permission{repository.PermissionAdmin}},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

// @Description Fetches all events with their categories
// @Tags event
// @Produce json
// @Success 200 {array} EventResponse
// @Router /events [get]
func (e *EventController) getEventsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		events, err := e.eventService.GetAllEvents()
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, utils.Map(events, toEventResponse))
	}
}

// @Description Gets an event by id
// @Tags event
// @Produce json
// @Param event_id path int true "Event Id"
// @Success 200 {object} EventResponse
// @Router /events/{event_id} [get]
func (e *EventController) getEventHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, err := strconv.Atoi(c.Param("event_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		event, err := e.eventService.GetEventById(eventId, "Categories", "Hall")
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(404, gin.H{"error": "Event not found"})
			} else {
				c.JSON(500, gin.H{"error": err.Error()})
			}
			return
		}
		c.JSON(200, toEventResponse(event))
	}
}

// @Description Creates an event
// @Tags event
// @Accept json
// @Produce json
// @Param event body EventCreate true "Event to create"
// @Success 201 {object} EventResponse
// @Router /events [post]
func (e *EventController) createEventHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var eventCreate EventCreate
		if err := c.BindJSON(&eventCreate); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		event, err := e.eventService.CreateEvent(eventCreate.toModel())
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(201, toEventResponse(event))
	}
}

// @Description Partially updates an event; omitted fields keep their stored values
// @Tags event
// @Accept json
// @Produce json
// @Param event_id path int true "Event Id"
// @Param event body EventUpdate true "Event fields to update"
// @Success 200 {object} EventResponse
// @Router /events/{event_id} [patch]
func (e *EventController) updateEventHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, err := strconv.Atoi(c.Param("event_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		var eventUpdate EventUpdate
		if err := c.BindJSON(&eventUpdate); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		event, err := e.eventService.UpdateEvent(eventId, eventUpdate.toUpdate())
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(404, gin.H{"error": "Event not found"})
			} else {
				c.JSON(500, gin.H{"error": err.Error()})
			}
			return
		}
		c.JSON(200, toEventResponse(event))
	}
}

// @Description Deletes an event
// @Tags event
// @Param event_id path int true "Event Id"
// @Success 204
// @Router /events/{event_id} [delete]
func (e *EventController) deleteEventHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, err := strconv.Atoi(c.Param("event_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		err = e.eventService.DeleteEvent(eventId)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(404, gin.H{"error": "Event not found"})
			} else {
				c.JSON(500, gin.H{"error": err.Error()})
			}
			return
		}
		c.JSON(204, nil)
	}
}

// @Description Adds a category to an event
// @Tags event
// @Accept json
// @Produce json
// @Param event_id path int true "Event Id"
// @Param category body CategoryCreate true "Category to create"
// @Success 201 {object} CategoryResponse
// @Router /events/{event_id}/categories [post]
func (e *EventController) createCategoryHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, err := strconv.Atoi(c.Param("event_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		var categoryCreate CategoryCreate
		if err := c.BindJSON(&categoryCreate); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		category, err := e.eventService.AddCategory(eventId, categoryCreate.toModel())
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(404, gin.H{"error": "Event not found"})
			} else {
				c.JSON(400, gin.H{"error": err.Error()})
			}
			return
		}
		c.JSON(201, toCategoryResponse(category))
	}
}

// @Description Partially updates an event category; omitted fields keep their stored values
// @Tags event
// @Accept json
// @Produce json
// @Param event_id path int true "Event Id"
// @Param category_id path int true "Category Id"
// @Param category body CategoryPatch true "Category fields to update"
// @Success 200 {object} CategoryResponse
// @Router /events/{event_id}/categories/{category_id} [patch]
func (e *EventController) updateCategoryHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, err := strconv.Atoi(c.Param("event_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		categoryId, err := strconv.Atoi(c.Param("category_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		var categoryUpdate CategoryPatch
		if err := c.BindJSON(&categoryUpdate); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		category, err := e.eventService.UpdateCategory(eventId, categoryId, categoryUpdate.toUpdate())
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(404, gin.H{"error": "Category not found"})
			} else {
				c.JSON(400, gin.H{"error": err.Error()})
			}
			return
		}
		c.JSON(200, toCategoryResponse(category))
	}
}

// @Description Deletes an event category
// @Tags event
// @Param event_id path int true "Event Id"
// @Param category_id path int true "Category Id"
// @Success 204
// @Router /events/{event_id}/categories/{category_id} [delete]
func (e *EventController) deleteCategoryHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, err := strconv.Atoi(c.Param("event_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		categoryId, err := strconv.Atoi(c.Param("category_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		err = e.eventService.DeleteCategory(eventId, categoryId)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(404, gin.H{"error": "Category not found"})
			} else {
				c.JSON(400, gin.H{"error": err.Error()})
			}
			return
		}
		c.JSON(204, nil)
	}
}

type EventCreate struct {
	Name                    string    `json:"name" binding:"required"`
	EventType               string    `json:"event_type" binding:"required,oneof=SINGLE DOUBLE TEAM"`
	StartTime               time.Time `json:"start_time"`
	EndTime                 time.Time `json:"end_time"`
	HallId                  *int      `json:"hall_id"`
	Published               bool      `json:"published"`
	MinPlayersLimit         int       `json:"min_players_limit"`
	MaxPlayersLimit         int       `json:"players_limit"`
	MemberTeamEventPrice    string    `json:"member_team_event_price"`
	NonMemberTeamEventPrice string    `json:"non_member_team_event_price"`
}

type EventUpdate struct {
	Name                    string    `json:"name"`
	EventType               string    `json:"event_type" binding:"omitempty,oneof=SINGLE DOUBLE TEAM"`
	StartTime               time.Time `json:"start_time"`
	EndTime                 time.Time `json:"end_time"`
	HallId                  *int      `json:"hall_id"`
	Published               *bool     `json:"published"`
	MinPlayersLimit         int       `json:"min_players_limit"`
	MaxPlayersLimit         int       `json:"players_limit"`
	MemberTeamEventPrice    string    `json:"member_team_event_price"`
	NonMemberTeamEventPrice string    `json:"non_member_team_event_price"`
}

type CategoryCreate struct {
	Name           string   `json:"name" binding:"required"`
	StartAge       int      `json:"start_age" binding:"min=0"`
	EndAge         int      `json:"end_age" binding:"min=0"`
	Genders        []string `json:"gender"`
	Distance       string   `json:"distance"`
	MembersFees    string   `json:"members_fees"`
	NonMembersFees string   `json:"non_members_fees"`
}

type CategoryPatch struct {
	Name           string   `json:"name"`
	StartAge       *int     `json:"start_age" binding:"omitempty,min=0"`
	EndAge         *int     `json:"end_age" binding:"omitempty,min=0"`
	Genders        []string `json:"gender"`
	Distance       string   `json:"distance"`
	MembersFees    string   `json:"members_fees"`
	NonMembersFees string   `json:"non_members_fees"`
}

type CategoryResponse struct {
	Id             int      `json:"id"`
	Name           string   `json:"name"`
	StartAge       int      `json:"start_age"`
	EndAge         int      `json:"end_age"`
	Genders        []string `json:"gender"`
	Distance       string   `json:"distance,omitempty"`
	MembersFees    string   `json:"members_fees,omitempty"`
	NonMembersFees string   `json:"non_members_fees,omitempty"`
}

type EventResponse struct {
	Id                      int                 `json:"id"`
	Name                    string              `json:"name"`
	EventType               string              `json:"event_type"`
	StartTime               time.Time           `json:"start_time"`
	EndTime                 time.Time           `json:"end_time"`
	HallId                  *int                `json:"hall_id,omitempty"`
	Published               bool                `json:"published"`
	MinPlayersLimit         int                 `json:"min_players_limit,omitempty"`
	MaxPlayersLimit         int                 `json:"players_limit,omitempty"`
	MemberTeamEventPrice    string              `json:"member_team_event_price,omitempty"`
	NonMemberTeamEventPrice string              `json:"non_member_team_event_price,omitempty"`
	Categories              []*CategoryResponse `json:"categories"`
}

func (e *EventCreate) toModel() *repository.Event {
	return &repository.Event{
		Name:                    e.Name,
		EventType:               repository.EventType(e.EventType),
		StartTime:               e.StartTime,
		EndTime:                 e.EndTime,
		HallId:                  e.HallId,
		Published:               e.Published,
		MinPlayersLimit:         e.MinPlayersLimit,
		MaxPlayersLimit:         e.MaxPlayersLimit,
		MemberTeamEventPrice:    e.MemberTeamEventPrice,
		NonMemberTeamEventPrice: e.NonMemberTeamEventPrice,
	}
}

func (e *EventUpdate) toUpdate() *service.EventUpdate {
	return &service.EventUpdate{
		Name:                    e.Name,
		EventType:               repository.EventType(e.EventType),
		StartTime:               e.StartTime,
		EndTime:                 e.EndTime,
		HallId:                  e.HallId,
		Published:               e.Published,
		MinPlayersLimit:         e.MinPlayersLimit,
		MaxPlayersLimit:         e.MaxPlayersLimit,
		MemberTeamEventPrice:    e.MemberTeamEventPrice,
		NonMemberTeamEventPrice: e.NonMemberTeamEventPrice,
	}
}

func (c *CategoryPatch) toUpdate() *service.CategoryUpdate {
	return &service.CategoryUpdate{
		Name:           c.Name,
		StartAge:       c.StartAge,
		EndAge:         c.EndAge,
		Genders:        c.Genders,
		Distance:       c.Distance,
		MembersFees:    c.MembersFees,
		NonMembersFees: c.NonMembersFees,
	}
}

func (c *CategoryCreate) toModel() *repository.Category {
	return &repository.Category{
		Name:           c.Name,
		StartAge:       c.StartAge,
		EndAge:         c.EndAge,
		Genders:        pq.StringArray(c.Genders),
		Distance:       c.Distance,
		MembersFees:    c.MembersFees,
		NonMembersFees: c.NonMembersFees,
	}
}

func toCategoryResponse(category *repository.Category) *CategoryResponse {
	return &CategoryResponse{
		Id:             category.Id,
		Name:           category.Name,
		StartAge:       category.StartAge,
		EndAge:         category.EndAge,
		Genders:        category.Genders,
		Distance:       category.Distance,
		MembersFees:    category.MembersFees,
		NonMembersFees: category.NonMembersFees,
	}
}

func toEventResponse(event *repository.Event) *EventResponse {
	return &EventResponse{
		Id:                      event.Id,
		Name:                    event.Name,
		EventType:               string(event.EventType),
		StartTime:               event.StartTime,
		EndTime:                 event.EndTime,
		HallId:                  event.HallId,
		Published:               event.Published,
		MinPlayersLimit:         event.MinPlayersLimit,
		MaxPlayersLimit:         event.MaxPlayersLimit,
		MemberTeamEventPrice:    event.MemberTeamEventPrice,
		NonMemberTeamEventPrice: event.NonMemberTeamEventPrice,
		Categories:              utils.Map(event.Categories, toCategoryResponse),
	}
}
