package handlers

import (
	"net/http"

	"resource-manager-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TeamMemberHandler handles HTTP requests for team member operations
type TeamMemberHandler struct {
	memberService service.TeamMemberServiceInterface
}

// NewTeamMemberHandler creates a new team member handler
func NewTeamMemberHandler(memberService service.TeamMemberServiceInterface) *TeamMemberHandler {
	return &TeamMemberHandler{
		memberService: memberService,
	}
}

// ListTeamMembers handles GET /api/team-members
// @Summary List team members
// @Description Get every team member with the names of their projects
// @Tags team-members
// @Produce json
// @Success 200 {array} service.MemberRecord "Team members"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/team-members [get]
func (h *TeamMemberHandler) ListTeamMembers(c *gin.Context) {
	members, err := h.memberService.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, members)
}

// GetTeamMember handles GET /api/team-members/:id
// @Summary Get a team member
// @Tags team-members
// @Produce json
// @Param id path int true "Team member ID"
// @Success 200 {object} service.MemberRecord "Team member"
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 404 {object} ErrorResponse "Team member not found"
// @Router /api/team-members/{id} [get]
func (h *TeamMemberHandler) GetTeamMember(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	member, err := h.memberService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, member)
}

// CreateTeamMember handles POST /api/team-members
// @Summary Create a team member
// @Tags team-members
// @Accept json
// @Produce json
// @Param member body service.CreateTeamMemberRequest true "Team member data"
// @Success 201 {object} service.MemberRecord "Created team member"
// @Failure 400 {object} ErrorResponse "Name and role are required"
// @Failure 409 {object} ErrorResponse "Team member with this name already exists"
// @Router /api/team-members [post]
func (h *TeamMemberHandler) CreateTeamMember(c *gin.Context) {
	var req service.CreateTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	member, err := h.memberService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, member)
}

// UpdateTeamMember handles PUT /api/team-members/:id
// @Summary Update a team member
// @Description Only the fields present in the body change. Renames follow every task and project reference.
// @Tags team-members
// @Accept json
// @Produce json
// @Param id path int true "Team member ID"
// @Param member body service.UpdateTeamMemberRequest true "Fields to change"
// @Success 200 {object} service.MemberRecord "Updated team member"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Team member not found"
// @Failure 409 {object} ErrorResponse "Name already taken"
// @Router /api/team-members/{id} [put]
func (h *TeamMemberHandler) UpdateTeamMember(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req service.UpdateTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	member, err := h.memberService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, member)
}

// DeleteTeamMember handles DELETE /api/team-members/:id
// @Summary Delete a team member
// @Description Removes the member from every project and unassigns their tasks
// @Tags team-members
// @Produce json
// @Param id path int true "Team member ID"
// @Success 200 {object} MessageResponse "Team member deleted"
// @Failure 404 {object} ErrorResponse "Team member not found"
// @Router /api/team-members/{id} [delete]
func (h *TeamMemberHandler) DeleteTeamMember(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.memberService.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Team member deleted successfully"})
}
