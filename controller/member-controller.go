package controller

import (
	"errors"
	"strconv"
	"time"

	"clubdesk/repository"
	"clubdesk/service"
	"clubdesk/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MemberController struct {
	memberService *service.MemberService
}

func NewMemberController(db *gorm.DB) *MemberController {
	return &MemberController{memberService: service.NewMemberService(db)}
}

func setupMemberController(db *gorm.DB) []RouteInfo {
	e := NewMemberController(db)
	basePath := "/members"
	routes := []RouteInfo{
		{Method: "GET", Path: "", HandlerFunc: e.getMembersHandler(), Authenticated: true, RequiredPermissions: []repository.Permission{repository.PermissionAdmin, repository.PermissionFrontDesk}},
		{Method: "GET", Path: "/:member_id", HandlerFunc: e.getMemberHandler(), Authenticated: true, RequiredPermissions: []repository.Permission{repository.PermissionAdmin, repository.PermissionFrontDesk}},
		{Method: "GET", Path: "/lookup/:member_number", HandlerFunc: e.lookupMemberHandler(), Authenticated: true, RequiredPermissions: []repository.Permission{repository.PermissionAdmin, repository.PermissionFrontDesk}},
		{Method: "POST", Path: "", HandlerFunc: e.createMemberHandler(), Authenticated: true, RequiredPermissions: []repository.Permission{repository.PermissionAdmin}},
		{Method: "PUT", Path: "/:member_id", HandlerFunc: e.updateMemberHandler(), Authenticated: true, RequiredPermissions: []repository.Permission{repository.PermissionAdmin}},
		{Method: "DELETE", Path: "/:member_id", HandlerFunc: e.deleteMemberHandler(), Authenticated: true, RequiredPermissions: []repository.Permission{repository.PermissionAdmin}},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

// @Description Fetches primary members with their family members
// @Tags member
// @Produce json
// @Param limit query int false "Page size (default 50)"
// @Param offset query int false "Page offset"
// @Success 200 {array} MemberResponse
// @Router /members [get]
func (e *MemberController) getMembersHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		members, err := e.memberService.GetAllMembers(limit, offset)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, utils.Map(members, toMemberResponse))
	}
}

// @Description Fetches a member by id
// @Tags member
// @Produce json
// @Param member_id path int true "Member Id"
// @Success 200 {object} MemberResponse
// @Router /members/{member_id} [get]
func (e *MemberController) getMemberHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		memberId, err := strconv.Atoi(c.Param("member_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		member, err := e.memberService.GetMemberById(memberId)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(404, gin.H{"error": "Member not found"})
			} else {
				c.JSON(500, gin.H{"error": err.Error()})
			}
			return
		}
		c.JSON(200, toMemberResponse(member))
	}
}

// @Description Resolves a member number to a verified booking participant
// @Tags member
// @Produce json
// @Param member_number path string true "Member number"
// @Success 200 {object} ParticipantResponse
// @Router /members/lookup/{member_number} [get]
func (e *MemberController) lookupMemberHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		participant, err := e.memberService.LookupParticipant(c.Param("member_number"))
		if err != nil {
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				c.JSON(404, gin.H{"error": "Member not found"})
			case errors.Is(err, service.ErrMemberMissingDateOfBirth):
				c.JSON(422, gin.H{"error": err.Error()})
			default:
				c.JSON(500, gin.H{"error": err.Error()})
			}
			return
		}
		c.JSON(200, ParticipantResponse{
			MemberNumber: participant.MemberNumber,
			Name:         participant.Name,
			DateOfBirth:  participant.DateOfBirth,
			Gender:       participant.Gender,
			Mobile:       participant.Mobile,
			Email:        participant.Email,
			ChssNumber:   participant.ChssNumber,
		})
	}
}

// @Description Creates a member
// @Tags member
// @Accept json
// @Produce json
// @Param member body MemberCreate true "Member to create"
// @Success 201 {object} MemberResponse
// @Router /members [post]
func (e *MemberController) createMemberHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var memberCreate MemberCreate
		if err := c.BindJSON(&memberCreate); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		member, err := e.memberService.SaveMember(memberCreate.toModel())
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(201, toMemberResponse(member))
	}
}

// @Description Updates a member
// @Tags member
// @Accept json
// @Produce json
// @Param member_id path int true "Member Id"
// @Param member body MemberCreate true "Member to update"
// @Success 200 {object} MemberResponse
// @Router /members/{member_id} [put]
func (e *MemberController) updateMemberHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		memberId, err := strconv.Atoi(c.Param("member_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		if _, err := e.memberService.GetMemberById(memberId); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(404, gin.H{"error": "Member not found"})
			} else {
				c.JSON(500, gin.H{"error": err.Error()})
			}
			return
		}
		var memberUpdate MemberCreate
		if err := c.BindJSON(&memberUpdate); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		member := memberUpdate.toModel()
		member.Id = memberId
		member, err = e.memberService.SaveMember(member)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, toMemberResponse(member))
	}
}

// @Description Deletes a member
// @Tags member
// @Param member_id path int true "Member Id"
// @Success 204
// @Router /members/{member_id} [delete]
func (e *MemberController) deleteMemberHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		memberId, err := strconv.Atoi(c.Param("member_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		if err := e.memberService.DeleteMember(memberId); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(404, gin.H{"error": "Member not found"})
			} else {
				c.JSON(500, gin.H{"error": err.Error()})
			}
			return
		}
		c.JSON(204, nil)
	}
}

type MemberCreate struct {
	MemberNumber string    `json:"member_number" binding:"required"`
	Name         string    `json:"name" binding:"required"`
	DateOfBirth  time.Time `json:"date_of_birth"`
	Gender       string    `json:"gender"`
	Mobile       string    `json:"mobile" binding:"omitempty,numeric"`
	Email        string    `json:"email" binding:"omitempty,email"`
	ChssNumber   string    `json:"chss_number"`
	Active       bool      `json:"active"`
	ParentId     *int      `json:"parent_id"`
}

type MemberResponse struct {
	Id            int               `json:"id"`
	MemberNumber  string            `json:"member_number"`
	Name          string            `json:"name"`
	DateOfBirth   time.Time         `json:"date_of_birth"`
	Gender        string            `json:"gender"`
	Mobile        string            `json:"mobile"`
	Email         string            `json:"email"`
	ChssNumber    string            `json:"chss_number"`
	Active        bool              `json:"active"`
	ParentId      *int              `json:"parent_id,omitempty"`
	FamilyMembers []*MemberResponse `json:"family_members,omitempty"`
}

type ParticipantResponse struct {
	MemberNumber string    `json:"member_number"`
	Name         string    `json:"name"`
	DateOfBirth  time.Time `json:"date_of_birth"`
	Gender       string    `json:"gender"`
	Mobile       string    `json:"mobile"`
	Email        string    `json:"email"`
	ChssNumber   string    `json:"chss_number"`
}

func (m *MemberCreate) toModel() *repository.Member {
	return &repository.Member{
		MemberNumber: m.MemberNumber,
		Name:         m.Name,
		DateOfBirth:  m.DateOfBirth,
		Gender:       m.Gender,
		Mobile:       m.Mobile,
		Email:        m.Email,
		ChssNumber:   m.ChssNumber,
		Active:       m.Active,
		ParentId:     m.ParentId,
	}
}

func toMemberResponse(member *repository.Member) *MemberResponse {
	return &MemberResponse{
		Id:            member.Id,
		MemberNumber:  member.MemberNumber,
		Name:          member.Name,
		DateOfBirth:   member.DateOfBirth,
		Gender:        member.Gender,
		Mobile:        member.Mobile,
		Email:         member.Email,
		ChssNumber:    member.ChssNumber,
		Active:        member.Active,
		ParentId:      member.ParentId,
		FamilyMembers: utils.Map(member.FamilyMembers, toMemberResponse),
	}
}
