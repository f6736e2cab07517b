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

type HallController struct {
	hallService *service.HallService
}

func NewHallController(db *gorm.DB) *HallController {
	return &HallController{hallService: service.NewHallService(db)}
}

func setupHallController(db *gorm.DB) []RouteInfo {
	e := NewHallController(db)
	basePath := "/halls"
	routes := []RouteInfo{
		{Method: "GET", Path: "", HandlerFunc: e.getHallsHandler(), Cached: true},
		{Method: "GET", Path: "/:hall_id", HandlerFunc: e.getHallHandler(), Cached: true},
		{Method: "POST", Path: "", HandlerFunc: e.createHallHandler(), Authenticated: true, RequiredPermissions: []repository.Permission{repository.PermissionAdmin}},
		{Method: "PUT", Path: "/:hall_id", HandlerFunc: e.updateHallHandler(), Authenticated: true, RequiredPermissions: []repository.Permission{repository.PermissionAdmin}},
		{Method: "DELETE", Path: "/:hall_id", HandlerFunc: e.deleteHallHandler(), Authenticated: true, RequiredPermissions: []repository.Permission{repository.PermissionAdmin}},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

// @Description Fetches all halls
// @Tags hall
// @Produce json
// @Success 200 {array} HallResponse
// @Router /halls [get]
func (e *HallController) getHallsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		halls, err := e.hallService.GetAllHalls()
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, utils.Map(halls, toHallResponse))
	}
}

// @Description Fetches a hall by id
// @Tags hall
// @Produce json
// @Param hall_id path int true "Hall Id"
// @Success 200 {object} HallResponse
// @Router /halls/{hall_id} [get]
func (e *HallController) getHallHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		hallId, err := strconv.Atoi(c.Param("hall_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		hall, err := e.hallService.GetHallById(hallId)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(404, gin.H{"error": "Hall not found"})
			} else {
				c.JSON(500, gin.H{"error": err.Error()})
			}
			return
		}
		c.JSON(200, toHallResponse(hall))
	}
}

// @Description Creates a hall
// @Tags hall
// @Accept json
// @Produce json
// @Param hall body HallCreate true "Hall to create"
// @Success 201 {object} HallResponse
// @Router /halls [post]
func (e *HallController) createHallHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var hallCreate HallCreate
		if err := c.BindJSON(&hallCreate); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		hall, err := e.hallService.SaveHall(hallCreate.toModel())
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(201, toHallResponse(hall))
	}
}

// @Description Updates a hall
// @Tags hall
// @Accept json
// @Produce json
// @Param hall_id path int true "Hall Id"
// @Param hall body HallCreate true "Hall to update"
// @Success 200 {object} HallResponse
// @Router /halls/{hall_id} [put]
func (e *HallController) updateHallHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		hallId, err := strconv.Atoi(c.Param("hall_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		if _, err := e.hallService.GetHallById(hallId); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(404, gin.H{"error": "Hall not found"})
			} else {
				c.JSON(500, gin.H{"error": err.Error()})
			}
			return
		}
		var hallUpdate HallCreate
		if err := c.BindJSON(&hallUpdate); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		hall := hallUpdate.toModel()
		hall.Id = hallId
		hall, err = e.hallService.SaveHall(hall)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, toHallResponse(hall))
	}
}

// @Description Deletes a hall
// @Tags hall
// @Param hall_id path int true "Hall Id"
// @Success 204
// @Router /halls/{hall_id} [delete]
func (e *HallController) deleteHallHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		hallId, err := strconv.Atoi(c.Param("hall_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		if err := e.hallService.DeleteHall(hallId); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(404, gin.H{"error": "Hall not found"})
			} else {
				c.JSON(500, gin.H{"error": err.Error()})
			}
			return
		}
		c.JSON(204, nil)
	}
}

type HallCreate struct {
	Name       string `json:"name" binding:"required"`
	Location   string `json:"location"`
	Capacity   int    `json:"capacity" binding:"required"`
	HourlyRate string `json:"hourly_rate" binding:"omitempty,numeric"`
}

type HallResponse struct {
	Id         int    `json:"id"`
	Name       string `json:"name"`
	Location   string `json:"location"`
	Capacity   int    `json:"capacity"`
	HourlyRate string `json:"hourly_rate"`
}

func (h *HallCreate) toModel() *repository.Hall {
	return &repository.Hall{
		Name:       h.Name,
		Location:   h.Location,
		Capacity:   h.Capacity,
		HourlyRate: h.HourlyRate,
	}
}

func toHallResponse(hall *repository.Hall) *HallResponse {
	return &HallResponse{
		Id:         hall.Id,
		Name:       hall.Name,
		Location:   hall.Location,
		Capacity:   hall.Capacity,
		HourlyRate: hall.HourlyRate,
	}
}
