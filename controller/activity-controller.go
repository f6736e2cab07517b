package controller

import (
	"errors"
	"strconv"

	"clubdesk/repository"
	"clubdesk/service"
	"clubdesk/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ActivityController struct {
	activityService *service.ActivityService
}

func NewActivityController(db *gorm.DB) *ActivityController {
	return &ActivityController{activityService: service.NewActivityService(db)}
}

func setupActivityController(db *gorm.DB) []RouteInfo {
	e := NewActivityController(db)
	basePath := "/activities"
	routes := []RouteInfo{
		{Method: "GET", Path: "", HandlerFunc: e.getActivitiesHandler(), Cached: true},
		{Method: "GET", Path: "/:activity_id", HandlerFunc: e.getActivityHandler(), Cached: true},
		{Method: "POST", Path: "", HandlerFunc: e.createActivityHandler(), Authenticated: true, RequiredPermissions: []repository.Permission{repository.PermissionAdmin}},
		{Method: "PUT", Path: "/:activity_id", HandlerFunc: e.updateActivityHandler(), Authenticated: true, RequiredPermissions: []repository.Permission{repository.PermissionAdmin}},
		{Method: "DELETE", Path: "/:activity_id", HandlerFunc: e.deleteActivityHandler(), Authenticated: true, RequiredPermissions: []repository.Permission{repository.PermissionAdmin}},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

// @Description Fetches all activities with their batches
// @Tags activity
// @Produce json
// @Success 200 {array} ActivityResponse
// @Router /activities [get]
func (e *ActivityController) getActivitiesHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		activities, err := e.activityService.GetAllActivities()
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, utils.Map(activities, toActivityResponse))
	}
}

// @Description Fetches an activity by id
// @Tags activity
// @Produce json
// @Param activity_id path int true "Activity Id"
// @Success 200 {object} ActivityResponse
// @Router /activities/{activity_id} [get]
func (e *ActivityController) getActivityHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		activityId, err := strconv.Atoi(c.Param("activity_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		activity, err := e.activityService.GetActivityById(activityId)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(404, gin.H{"error": "Activity not found"})
			} else {
				c.JSON(500, gin.H{"error": err.Error()})
			}
			return
		}
		c.JSON(200, toActivityResponse(activity))
	}
}

// @Description Creates an activity
// @Tags activity
// @Accept json
// @Produce json
// @Param activity body ActivityCreate true "Activity to create"
// @Success 201 {object} ActivityResponse
// @Router /activities [post]
func (e *ActivityController) createActivityHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var activityCreate ActivityCreate
		if err := c.BindJSON(&activityCreate); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		activity, err := e.activityService.SaveActivity(activityCreate.toModel())
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(201, toActivityResponse(activity))
	}
}

// @Description Updates an activity
// @Tags activity
// @Accept json
// @Produce json
// @Param activity_id path int true "Activity Id"
// @Param activity body ActivityCreate true "Activity to update"
// @Success 200 {object} ActivityResponse
// @Router /activities/{activity_id} [put]
func (e *ActivityController) updateActivityHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		activityId, err := strconv.Atoi(c.Param("activity_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		if _, err := e.activityService.GetActivityById(activityId); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(404, gin.H{"error": "Activity not found"})
			} else {
				c.JSON(500, gin.H{"error": err.Error()})
			}
			return
		}
		var activityUpdate ActivityCreate
		if err := c.BindJSON(&activityUpdate); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		activity := activityUpdate.toModel()
		activity.Id = activityId
		activity, err = e.activityService.SaveActivity(activity)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, toActivityResponse(activity))
	}
}

// @Description Deletes an activity
// @Tags activity
// @Param activity_id path int true "Activity Id"
// @Success 204
// @Router /activities/{activity_id} [delete]
func (e *ActivityController) deleteActivityHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		activityId, err := strconv.Atoi(c.Param("activity_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		if err := e.activityService.DeleteActivity(activityId); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(404, gin.H{"error": "Activity not found"})
			} else {
				c.JSON(500, gin.H{"error": err.Error()})
			}
			return
		}
		c.JSON(204, nil)
	}
}

type ActivityCreate struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Active      bool   `json:"active"`
}

type ActivityResponse struct {
	Id          int              `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Active      bool             `json:"active"`
	Batches     []*BatchResponse `json:"batches,omitempty"`
}

func (a *ActivityCreate) toModel() *repository.Activity {
	return &repository.Activity{
		Name:        a.Name,
		Description: a.Description,
		Active:      a.Active,
	}
}

func toActivityResponse(activity *repository.Activity) *ActivityResponse {
	return &ActivityResponse{
		Id:          activity.Id,
		Name:        activity.Name,
		Description: activity.Description,
		Active:      activity.Active,
		Batches:     utils.Map(activity.Batches, toBatchResponse),
	}
}
