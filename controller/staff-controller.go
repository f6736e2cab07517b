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

type StaffController struct {
	staffService *service.StaffService
}

func NewStaffController(db *gorm.DB) *StaffController {
	return &StaffController{staffService: service.NewStaffService(db)}
}

func setupStaffController(db *gorm.DB) []RouteInfo {
	e := NewStaffController(db)
	basePath := "/staff"
	routes := []RouteInfo{
		{Method: "GET", Path: "", HandlerFunc: e.getStaffHandler(), Authenticated: true, RequiredPermissions: []repository.Permission{repository.PermissionAdmin}},
		{Method: "POST", Path: "", HandlerFunc: e.createStaffHandler(), Authenticated: true, RequiredPermissions: []repository.Permission{repository.PermissionAdmin}},
		{Method: "PUT", Path: "/:staff_id", HandlerFunc: e.updateStaffHandler(), Authenticated: true, RequiredPermissions: []repository.Permission{repository.PermissionAdmin}},
		{Method: "DELETE", Path: "/:staff_id", HandlerFunc: e.deleteStaffHandler(), Authenticated: true, RequiredPermissions: []repository.Permission{repository.PermissionAdmin}},
		{Method: "POST", Path: "/:staff_id/token", HandlerFunc: e.issueTokenHandler(), Authenticated: true, RequiredPermissions: []repository.Permission{repository.PermissionAdmin}},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

// @Description Fetches all staff accounts
// @Tags staff
// @Produce json
// @Success 200 {array} StaffResponse
// @Router /staff [get]
func (e *StaffController) getStaffHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		staff, err := e.staffService.GetAllStaff()
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, utils.Map(staff, toStaffResponse))
	}
}

// @Description Creates a staff account
// @Tags staff
// @Accept json
// @Produce json
// @Param staff body StaffCreate true "Staff account to create"
// @Success 201 {object} StaffResponse
// @Router /staff [post]
func (e *StaffController) createStaffHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var staffCreate StaffCreate
		if err := c.BindJSON(&staffCreate); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		staff, err := e.staffService.SaveStaff(staffCreate.toModel())
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(201, toStaffResponse(staff))
	}
}

// @Description Updates a staff account
// @Tags staff
// @Accept json
// @Produce json
// @Param staff_id path int true "Staff Id"
// @Param staff body StaffCreate true "Staff account to update"
// @Success 200 {object} StaffResponse
// @Router /staff/{staff_id} [put]
func (e *StaffController) updateStaffHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		staffId, err := strconv.Atoi(c.Param("staff_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		if _, err := e.staffService.GetStaffById(staffId); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(404, gin.H{"error": "Staff not found"})
			} else {
				c.JSON(500, gin.H{"error": err.Error()})
			}
			return
		}
		var staffUpdate StaffCreate
		if err := c.BindJSON(&staffUpdate); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		staff := staffUpdate.toModel()
		staff.Id = staffId
		staff, err = e.staffService.SaveStaff(staff)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, toStaffResponse(staff))
	}
}

// @Description Deletes a staff account
// @Tags staff
// @Param staff_id path int true "Staff Id"
// @Success 204
// @Router /staff/{staff_id} [delete]
func (e *StaffController) deleteStaffHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		staffId, err := strconv.Atoi(c.Param("staff_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		if err := e.staffService.DeleteStaff(staffId); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(404, gin.H{"error": "Staff not found"})
			} else {
				c.JSON(500, gin.H{"error": err.Error()})
			}
			return
		}
		c.JSON(204, nil)
	}
}

// @Description Issues a dashboard token carrying the staff account's permissions, set as the auth cookie
// @Tags staff
// @Produce json
// @Param staff_id path int true "Staff Id"
// @Success 200 {object} TokenResponse
// @Router /staff/{staff_id}/token [post]
func (e *StaffController) issueTokenHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		staffId, err := strconv.Atoi(c.Param("staff_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		token, err := e.staffService.IssueToken(staffId)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(404, gin.H{"error": "Staff not found"})
			} else {
				c.JSON(500, gin.H{"error": err.Error()})
			}
			return
		}
		c.SetCookie("auth", token, int((21 * 24 * time.Hour).Seconds()), "/", "", true, true)
		c.JSON(200, TokenResponse{Token: token})
	}
}

type StaffCreate struct {
	Name        string   `json:"name" binding:"required"`
	Email       string   `json:"email" binding:"required,email"`
	Mobile      string   `json:"mobile" binding:"omitempty,numeric"`
	Designation string   `json:"designation"`
	Active      bool     `json:"active"`
	Permissions []string `json:"permissions" binding:"dive,oneof=admin front_desk coach"`
}

type StaffResponse struct {
	Id          int      `json:"id"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Mobile      string   `json:"mobile"`
	Designation string   `json:"designation"`
	Active      bool     `json:"active"`
	Permissions []string `json:"permissions"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

func (s *StaffCreate) toModel() *repository.Staff {
	return &repository.Staff{
		Name:        s.Name,
		Email:       s.Email,
		Mobile:      s.Mobile,
		Designation: s.Designation,
		Active:      s.Active,
		Permissions: pq.StringArray(s.Permissions),
	}
}

func toStaffResponse(staff *repository.Staff) *StaffResponse {
	return &StaffResponse{
		Id:          staff.Id,
		Name:        staff.Name,
		Email:       staff.Email,
		Mobile:      staff.Mobile,
		Designation: staff.Designation,
		Active:      staff.Active,
		Permissions: staff.Permissions,
	}
}
