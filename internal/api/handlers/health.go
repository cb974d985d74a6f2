package handlers

import (
	"net/http"
	"time"

	"resource-manager-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// Pinger reports whether the backing store is reachable
type Pinger interface {
	Ping() error
}

// HealthHandler handles health check endpoints
type HealthHandler struct {
	store   Pinger
	backend string
}

// NewHealthHandler creates a new health handler. backend names the
// configured storage backend in responses.
func NewHealthHandler(store Pinger, backend string) *HealthHandler {
	return &HealthHandler{
		store:   store,
		backend: backend,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Services  map[string]string `json:"services"`
}

// AboutResponse describes the running service
type AboutResponse struct {
	App         string `json:"app" example:"Resource Manager Backend"`
	Version     string `json:"version" example:"2.5.0"`
	Description string `json:"description"`
	Storage     string `json:"storage" example:"database"`
}

// Health returns the health status of the application
// @Summary Health check
// @Description Get the overall health status of the application including storage connectivity
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse "Application is healthy"
// @Failure 503 {object} HealthResponse "Application is unhealthy"
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   service.SnapshotVersion,
		Services:  make(map[string]string),
	}

	if err := h.store.Ping(); err != nil {
		response.Status = "unhealthy"
		response.Services[h.backend] = "error: " + err.Error()
	} else {
		response.Services[h.backend] = "healthy"
	}

	statusCode := http.StatusOK
	if response.Status == "unhealthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, response)
}

// Ready returns the readiness status of the application
// @Summary Readiness check
// @Description Check if the storage backend can serve requests
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Application is ready"
// @Failure 503 {object} map[string]interface{} "Application is not ready"
// @Router /health/ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	ready := true
	services := make(map[string]string)

	if err := h.store.Ping(); err != nil {
		ready = false
		services[h.backend] = "not ready: " + err.Error()
	} else {
		services[h.backend] = "ready"
	}

	statusCode := http.StatusOK
	if !ready {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, gin.H{
		"ready":     ready,
		"timestamp": time.Now(),
		"services":  services,
	})
}

// Live returns the liveness status of the application
// @Summary Liveness check
// @Description Check if the application is alive and responding
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Application is alive"
// @Router /health/live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"alive":     true,
		"timestamp": time.Now(),
	})
}

// About describes the service
// @Summary Service information
// @Tags health
// @Produce json
// @Success 200 {object} AboutResponse "Service information"
// @Router /about [get]
func (h *HealthHandler) About(c *gin.Context) {
	c.JSON(http.StatusOK, AboutResponse{
		App:         "Resource Manager Backend",
		Version:     service.SnapshotVersion,
		Description: "Team members, projects and tasks with snapshot backup and restore",
		Storage:     h.backend,
	})
}
