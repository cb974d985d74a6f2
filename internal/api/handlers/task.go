package handlers

import (
	"net/http"

	"resource-manager-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TaskHandler handles HTTP requests for tasks and subtasks
type TaskHandler struct {
	taskService service.TaskServiceInterface
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(taskService service.TaskServiceInterface) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// CreateTask handles POST /api/projects/:id/tasks
// @Summary Add a task to a project
// @Description The task goes last in the project's task list
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path int true "Project ID"
// @Param task body service.TaskRecord true "Task data"
// @Success 201 {object} service.TaskRecord "Created task"
// @Failure 400 {object} ErrorResponse "Task text is required"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Router /api/projects/{id}/tasks [post]
func (h *TaskHandler) CreateTask(c *gin.Context) {
	projectID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req service.TaskRecord
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	task, err := h.taskService.CreateTask(projectID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

// UpdateTask handles PUT /api/tasks/:id
// @Summary Update a task
// @Description Only the fields present in the body change. A null date or assignee clears it.
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path int true "Task ID"
// @Param task body service.UpdateTaskRequest true "Fields to change"
// @Success 200 {object} service.TaskRecord "Updated task"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Task not found"
// @Router /api/tasks/{id} [put]
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req service.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	task, err := h.taskService.UpdateTask(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// DeleteTask handles DELETE /api/tasks/:id
// @Summary Delete a task with its subtasks
// @Tags tasks
// @Produce json
// @Param id path int true "Task ID"
// @Success 200 {object} MessageResponse "Task deleted"
// @Failure 404 {object} ErrorResponse "Task not found"
// @Router /api/tasks/{id} [delete]
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Task deleted successfully"})
}

// CreateSubtask handles POST /api/tasks/:id/subtasks
// @Summary Add a subtask to a task
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path int true "Task ID"
// @Param subtask body service.SubtaskRecord true "Subtask data"
// @Success 201 {object} service.SubtaskRecord "Created subtask"
// @Failure 400 {object} ErrorResponse "Subtask text is required"
// @Failure 404 {object} ErrorResponse "Task not found"
// @Router /api/tasks/{id}/subtasks [post]
func (h *TaskHandler) CreateSubtask(c *gin.Context) {
	taskID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req service.SubtaskRecord
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	subtask, err := h.taskService.CreateSubtask(taskID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, subtask)
}

// UpdateSubtask handles PUT /api/subtasks/:id
// @Summary Update a subtask
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path int true "Subtask ID"
// @Param subtask body service.UpdateSubtaskRequest true "Fields to change"
// @Success 200 {object} service.SubtaskRecord "Updated subtask"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Subtask not found"
// @Router /api/subtasks/{id} [put]
func (h *TaskHandler) UpdateSubtask(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req service.UpdateSubtaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	subtask, err := h.taskService.UpdateSubtask(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, subtask)
}

// DeleteSubtask handles DELETE /api/subtasks/:id
// @Summary Delete a subtask
// @Tags tasks
// @Produce json
// @Param id path int true "Subtask ID"
// @Success 200 {object} MessageResponse "Subtask deleted"
// @Failure 404 {object} ErrorResponse "Subtask not found"
// @Router /api/subtasks/{id} [delete]
func (h *TaskHandler) DeleteSubtask(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.taskService.DeleteSubtask(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Subtask deleted successfully"})
}
