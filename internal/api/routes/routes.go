package routes

import (
	"net/http"

	"resource-manager-backend/internal/api/handlers"
	"resource-manager-backend/internal/api/middleware"
	"resource-manager-backend/internal/config"
	"resource-manager-backend/internal/repository"
	"resource-manager-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRoutes configures all the routes for the application. backupService
// is shared with the snapshot scheduler so both serialize on the same lock.
func SetupRoutes(store repository.Store, backupService *service.BackupService, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Metrics())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := service.NewValidator()

	// Initialize services
	memberService := service.NewTeamMemberService(store, validator)
	projectService := service.NewProjectService(store, validator)
	taskService := service.NewTaskService(store, validator)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(store, cfg.StorageBackend)
	backupHandler := handlers.NewBackupHandler(backupService)
	memberHandler := handlers.NewTeamMemberHandler(memberService)
	projectHandler := handlers.NewProjectHandler(projectService)
	taskHandler := handlers.NewTaskHandler(taskService)

	// Health, info and metrics
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)
	router.GET("/about", healthHandler.About)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	{
		api.GET("/backup", backupHandler.Export)
		api.POST("/backup", backupHandler.Replace)
		api.PUT("/backup", backupHandler.Merge)
		api.GET("/data", backupHandler.GetData)
		api.POST("/import", backupHandler.Import)

		members := api.Group("/team-members")
		{
			members.GET("", memberHandler.ListTeamMembers)
			members.POST("", memberHandler.CreateTeamMember)
			members.GET("/:id", memberHandler.GetTeamMember)
			members.PUT("/:id", memberHandler.UpdateTeamMember)
			members.DELETE("/:id", memberHandler.DeleteTeamMember)
		}

		projects := api.Group("/projects")
		{
			projects.GET("", projectHandler.ListProjects)
			projects.POST("", projectHandler.CreateProject)
			projects.GET("/:id", projectHandler.GetProject)
			projects.PUT("/:id", projectHandler.UpdateProject)
			projects.DELETE("/:id", projectHandler.DeleteProject)
			projects.POST("/:id/team", projectHandler.AddTeamMember)
			projects.DELETE("/:id/team/:memberName", projectHandler.RemoveTeamMember)
			projects.POST("/:id/images", projectHandler.AddImage)
			projects.DELETE("/:id/images/:imageId", projectHandler.DeleteImage)
			projects.POST("/:id/links", projectHandler.AddLink)
			projects.DELETE("/:id/links/:linkId", projectHandler.DeleteLink)
			projects.POST("/:id/tasks", taskHandler.CreateTask)
		}

		tasks := api.Group("/tasks")
		{
			tasks.PUT("/:id", taskHandler.UpdateTask)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
			tasks.POST("/:id/subtasks", taskHandler.CreateSubtask)
		}

		subtasks := api.Group("/subtasks")
		{
			subtasks.PUT("/:id", taskHandler.UpdateSubtask)
			subtasks.DELETE("/:id", taskHandler.DeleteSubtask)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, handlers.ErrorResponse{Error: "Resource not found"})
	})

	return router
}
