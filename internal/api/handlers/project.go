package handlers

import (
	"net/http"

	"resource-manager-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ProjectHandler handles HTTP requests for projects and their team, images and links
type ProjectHandler struct {
	projectService service.ProjectServiceInterface
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projectService service.ProjectServiceInterface) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

// ListProjects handles GET /api/projects
// @Summary List projects
// @Description Starred projects first, then newest first
// @Tags projects
// @Produce json
// @Success 200 {array} service.ProjectRecord "Projects"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.projectService.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

// GetProject handles GET /api/projects/:id
// @Summary Get a project
// @Tags projects
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} service.ProjectRecord "Project"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Router /api/projects/{id} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	project, err := h.projectService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// CreateProject handles POST /api/projects
// @Summary Create a project
// @Description Creates the project with its team, images, links and tasks
// @Tags projects
// @Accept json
// @Produce json
// @Param project body service.ProjectRecord true "Project data"
// @Success 201 {object} service.ProjectRecord "Created project"
// @Failure 400 {object} ErrorResponse "Project name is required"
// @Failure 409 {object} ErrorResponse "Project with this name already exists"
// @Router /api/projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req service.ProjectRecord
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	project, err := h.projectService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, project)
}

// UpdateProject handles PUT /api/projects/:id
// @Summary Update a project
// @Description Only the fields present in the body change. A team or tasks list replaces the current one.
// @Tags projects
// @Accept json
// @Produce json
// @Param id path int true "Project ID"
// @Param project body service.UpdateProjectRequest true "Fields to change"
// @Success 200 {object} service.ProjectRecord "Updated project"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Failure 409 {object} ErrorResponse "Name already taken"
// @Router /api/projects/{id} [put]
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req service.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	project, err := h.projectService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// DeleteProject handles DELETE /api/projects/:id
// @Summary Delete a project
// @Description Deletes the project with its tasks, images, links and memberships
// @Tags projects
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} MessageResponse "Project deleted"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Router /api/projects/{id} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.projectService.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Project deleted successfully"})
}

// AddTeamMember handles POST /api/projects/:id/team
// @Summary Add a member to a project
// @Tags projects
// @Accept json
// @Produce json
// @Param id path int true "Project ID"
// @Param member body service.AddTeamMemberRequest true "Member name"
// @Success 201 {object} MessageResponse "Team member added to project"
// @Failure 400 {object} ErrorResponse "member_name is required"
// @Failure 404 {object} ErrorResponse "Project or team member not found"
// @Router /api/projects/{id}/team [post]
func (h *ProjectHandler) AddTeamMember(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req service.AddTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.projectService.AddTeamMember(id, &req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, MessageResponse{Message: "Team member added to project"})
}

// RemoveTeamMember handles DELETE /api/projects/:id/team/:memberName
// @Summary Remove a member from a project
// @Tags projects
// @Produce json
// @Param id path int true "Project ID"
// @Param memberName path string true "Team member name"
// @Success 200 {object} MessageResponse "Team member removed from project"
// @Failure 404 {object} ErrorResponse "Project or team member not found"
// @Router /api/projects/{id}/team/{memberName} [delete]
func (h *ProjectHandler) RemoveTeamMember(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.projectService.RemoveTeamMember(id, c.Param("memberName")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Team member removed from project"})
}

// AddImage handles POST /api/projects/:id/images
// @Summary Attach an image to a project
// @Tags projects
// @Accept json
// @Produce json
// @Param id path int true "Project ID"
// @Param image body service.AddImageRequest true "Image data"
// @Success 201 {object} service.ImageRecord "Created image"
// @Failure 400 {object} ErrorResponse "image_data is required"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Router /api/projects/{id}/images [post]
func (h *ProjectHandler) AddImage(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req service.AddImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	image, err := h.projectService.AddImage(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, image)
}

// DeleteImage handles DELETE /api/projects/:id/images/:imageId
// @Summary Delete a project image
// @Tags projects
// @Produce json
// @Param id path int true "Project ID"
// @Param imageId path int true "Image ID"
// @Success 200 {object} MessageResponse "Image deleted"
// @Failure 404 {object} ErrorResponse "Image not found"
// @Router /api/projects/{id}/images/{imageId} [delete]
func (h *ProjectHandler) DeleteImage(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	imageID, ok := parseID(c, "imageId")
	if !ok {
		return
	}

	if err := h.projectService.DeleteImage(id, imageID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Image deleted successfully"})
}

// AddLink handles POST /api/projects/:id/links
// @Summary Attach a link to a project
// @Tags projects
// @Accept json
// @Produce json
// @Param id path int true "Project ID"
// @Param link body service.AddLinkRequest true "Link data"
// @Success 201 {object} service.LinkRecord "Created link"
// @Failure 400 {object} ErrorResponse "url is required"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Router /api/projects/{id}/links [post]
func (h *ProjectHandler) AddLink(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req service.AddLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	link, err := h.projectService.AddLink(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, link)
}

// DeleteLink handles DELETE /api/projects/:id/links/:linkId
// @Summary Delete a project link
// @Tags projects
// @Produce json
// @Param id path int true "Project ID"
// @Param linkId path int true "Link ID"
// @Success 200 {object} MessageResponse "Link deleted"
// @Failure 404 {object} ErrorResponse "Link not found"
// @Router /api/projects/{id}/links/{linkId} [delete]
func (h *ProjectHandler) DeleteLink(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	linkID, ok := parseID(c, "linkId")
	if !ok {
		return
	}

	if err := h.projectService.DeleteLink(id, linkID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Link deleted successfully"})
}
