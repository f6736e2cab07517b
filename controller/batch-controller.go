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

type BatchController struct {
	batchService *service.BatchService
}

func NewBatchController(db *gorm.DB) *BatchController {
	return &BatchController{batchService: service.NewBatchService(db)}
}

func setupBatchController(db *gorm.DB) []RouteInfo {
	e := NewBatchController(db)
	basePath := "/activities/:activity_id/batches"
	routes := []RouteInfo{
		{Method: "GET", Path: "", HandlerFunc: e.getBatchesHandler(), Cached: true},
		{Method: "POST", Path: "", HandlerFunc: e.createBatchHandler(), Authenticated: true, RequiredPermissions: []repository.Permission{repository.PermissionAdmin}},
		{Method: "PUT", Path: "/:batch_id", HandlerFunc: e.updateBatchHandler(), Authenticated: true, RequiredPermissions: []repository.Permission{repository.PermissionAdmin}},
		{Method: "DELETE", Path: "/:batch_id", HandlerFunc: e.deleteBatchHandler(), Authenticated: true, RequiredPermissions: []repository.Permission{repository.PermissionAdmin}},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

// @Description Fetches all batches of an activity
// @Tags batch
// @Produce json
// @Param activity_id path int true "Activity Id"
// @Success 200 {array} BatchResponse
// @Router /activities/{activity_id}/batches [get]
func (e *BatchController) getBatchesHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		activityId, err := strconv.Atoi(c.Param("activity_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		batches, err := e.batchService.GetBatchesForActivity(activityId)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, utils.Map(batches, toBatchResponse))
	}
}

// @Description Creates a batch under an activity
// @Tags batch
// @Accept json
// @Produce json
// @Param activity_id path int true "Activity Id"
// @Param batch body BatchCreate true "Batch to create"
// @Success 201 {object} BatchResponse
// @Router /activities/{activity_id}/batches [post]
func (e *BatchController) createBatchHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		activityId, err := strconv.Atoi(c.Param("activity_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		var batchCreate BatchCreate
		if err := c.BindJSON(&batchCreate); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		batch, err := e.batchService.CreateBatch(activityId, batchCreate.toModel())
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(404, gin.H{"error": "Activity not found"})
			} else {
				c.JSON(500, gin.H{"error": err.Error()})
			}
			return
		}
		c.JSON(201, toBatchResponse(batch))
	}
}

// @Description Updates a batch
// @Tags batch
// @Accept json
// @Produce json
// @Param activity_id path int true "Activity Id"
// @Param batch_id path int true "Batch Id"
// @Param batch body BatchCreate true "Batch to update"
// @Success 200 {object} BatchResponse
// @Router /activities/{activity_id}/batches/{batch_id} [put]
func (e *BatchController) updateBatchHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		batchId, err := strconv.Atoi(c.Param("batch_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		var batchUpdate BatchCreate
		if err := c.BindJSON(&batchUpdate); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		batch, err := e.batchService.UpdateBatch(batchId, batchUpdate.toModel())
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(404, gin.H{"error": "Batch not found"})
			} else {
				c.JSON(500, gin.H{"error": err.Error()})
			}
			return
		}
		c.JSON(200, toBatchResponse(batch))
	}
}

// @Description Deletes a batch
// @Tags batch
// @Param activity_id path int true "Activity Id"
// @Param batch_id path int true "Batch Id"
// @Success 204
// @Router /activities/{activity_id}/batches/{batch_id} [delete]
func (e *BatchController) deleteBatchHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		batchId, err := strconv.Atoi(c.Param("batch_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		if err := e.batchService.DeleteBatch(batchId); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(404, gin.H{"error": "Batch not found"})
			} else {
				c.JSON(500, gin.H{"error": err.Error()})
			}
			return
		}
		c.JSON(204, nil)
	}
}

type BatchCreate struct {
	Name     string `json:"name" binding:"required"`
	CoachId  *int   `json:"coach_id"`
	Timing   string `json:"timing"`
	Capacity int    `json:"capacity"`
	Fees     string `json:"fees" binding:"omitempty,numeric"`
}

type BatchResponse struct {
	Id         int    `json:"id"`
	ActivityId int    `json:"activity_id"`
	Name       string `json:"name"`
	CoachId    *int   `json:"coach_id,omitempty"`
	CoachName  string `json:"coach_name,omitempty"`
	Timing     string `json:"timing"`
	Capacity   int    `json:"capacity"`
	Fees       string `json:"fees"`
}

func (b *BatchCreate) toModel() *repository.Batch {
	return &repository.Batch{
		Name:     b.Name,
		CoachId:  b.CoachId,
		Timing:   b.Timing,
		Capacity: b.Capacity,
		Fees:     b.Fees,
	}
}

func toBatchResponse(batch *repository.Batch) *BatchResponse {
	response := &BatchResponse{
		Id:         batch.Id,
		ActivityId: batch.ActivityId,
		Name:       batch.Name,
		CoachId:    batch.CoachId,
		Timing:     batch.Timing,
		Capacity:   batch.Capacity,
		Fees:       batch.Fees,
	}
	if batch.Coach != nil {
		response.CoachName = batch.Coach.Name
	}
	return response
}
