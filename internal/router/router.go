package router

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	// swaggerFiles "github.com/swaggo/files"
	// ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"scrumflow-api/internal/authz"
	"scrumflow-api/internal/handler"
	"scrumflow-api/internal/metrics"
	"scrumflow-api/internal/middleware"
	"scrumflow-api/internal/repository"
	"scrumflow-api/internal/service"
)

// Config holds router configuration
type Config struct {
	DB        *gorm.DB
	Redis     *redis.Client
	Logger    *zap.Logger
	Metrics   *metrics.Metrics
	JWTSecret string
	BasePath  string
}

// Setup sets up the router with all routes
func Setup(cfg Config) *gin.Engine {
	r := gin.New()

	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logger(cfg.Logger))
	r.Use(middleware.CORS())
	if cfg.Metrics != nil {
		r.Use(middleware.Metrics(cfg.Metrics))
	}

	// Prometheus metrics endpoint
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check routes
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy", "service": "scrum-service"})
	})
	r.GET("/ready", func(c *gin.Context) {
		if cfg.DB == nil {
			c.JSON(503, gin.H{"status": "not ready", "service": "scrum-service"})
			return
		}
		sqlDB, err := cfg.DB.DB()
		if err != nil {
			c.JSON(503, gin.H{"status": "not ready", "service": "scrum-service"})
			return
		}
		if err := sqlDB.Ping(); err != nil {
			c.JSON(503, gin.H{"status": "not ready", "service": "scrum-service"})
			return
		}
		c.JSON(200, gin.H{"status": "ready", "service": "scrum-service"})
	})

	// Swagger documentation (disabled for faster builds)
	// r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Initialize repositories
	projectRepo := repository.NewProjectRepository(cfg.DB)
	roleRepo := repository.NewRoleRepository(cfg.DB)
	sprintRepo := repository.NewSprintRepository(cfg.DB)
	backlogRepo := repository.NewBacklogRepository(cfg.DB)
	storyRepo := repository.NewUserStoryRepository(cfg.DB)
	taskRepo := repository.NewTaskRepository(cfg.DB)

	// Initialize services
	resolver := authz.NewResolver(roleRepo, cfg.Redis, cfg.Logger)
	projectService := service.NewProjectService(projectRepo, cfg.Metrics, cfg.Logger)
	memberService := service.NewMemberService(projectRepo, cfg.Logger)
	sprintService := service.NewSprintService(sprintRepo, projectRepo, cfg.Metrics, cfg.Logger)
	storyService := service.NewUserStoryService(storyRepo, backlogRepo, sprintRepo, projectRepo, cfg.Metrics, cfg.Logger)
	taskService := service.NewTaskService(taskRepo, storyRepo, backlogRepo, sprintRepo, projectRepo, cfg.Metrics, cfg.Logger)

	// Initialize handlers
	projectHandler := handler.NewProjectHandler(projectService)
	memberHandler := handler.NewMemberHandler(memberService)
	sprintHandler := handler.NewSprintHandler(sprintService)
	storyHandler := handler.NewUserStoryHandler(storyService)
	taskHandler := handler.NewTaskHandler(taskService)

	// API routes group
	api := r.Group(cfg.BasePath)
	api.Use(middleware.Auth(cfg.JWTSecret, resolver))

	// ============================================================
	// Project routes
	// ============================================================
	projects := api.Group("/projects")
	{
		projects.GET("", projectHandler.ListProjects)
		projects.POST("", projectHandler.CreateProject)
		projects.GET("/:projectId", projectHandler.GetProject)
		projects.PUT("/:projectId", projectHandler.UpdateProject)
		projects.DELETE("/:projectId", projectHandler.DeleteProject)

		projects.GET("/:projectId/members", memberHandler.ListMembers)
		projects.POST("/:projectId/members", memberHandler.AddMember)
		projects.DELETE("/:projectId/members/:memberId", memberHandler.RemoveMember)

		projects.GET("/:projectId/sprints", sprintHandler.ListSprints)
		projects.POST("/:projectId/sprints", sprintHandler.CreateSprint)

		projects.GET("/:projectId/backlog", storyHandler.GetProductBacklog)
		projects.POST("/:projectId/backlog/user-stories", storyHandler.CreateStoryInProductBacklog)
	}

	// ============================================================
	// Sprint routes
	// ============================================================
	sprints := api.Group("/sprints")
	{
		sprints.GET("/:sprintId", sprintHandler.GetSprint)
		sprints.PUT("/:sprintId", sprintHandler.UpdateSprint)
		sprints.POST("/:sprintId/close", sprintHandler.CloseSprint)

		sprints.GET("/:sprintId/backlog", storyHandler.GetSprintBacklog)
		sprints.POST("/:sprintId/backlog/user-stories", storyHandler.CreateStoryInSprintBacklog)
	}

	// ============================================================
	// User story routes
	// ============================================================
	stories := api.Group("/user-stories")
	{
		stories.GET("/:storyId", storyHandler.GetStory)
		stories.PUT("/:storyId", storyHandler.UpdateStory)
		stories.DELETE("/:storyId", storyHandler.DeleteStory)
		stories.POST("/:storyId/move", storyHandler.MoveStory)

		stories.GET("/:storyId/tasks", taskHandler.GetTaskBoard)
		stories.POST("/:storyId/tasks", taskHandler.CreateTask)
	}

	// ============================================================
	// Task and comment routes
	// ============================================================
	tasks := api.Group("/tasks")
	{
		tasks.GET("/:taskId", taskHandler.GetTask)
		tasks.PUT("/:taskId", taskHandler.UpdateTask)
		tasks.DELETE("/:taskId", taskHandler.DeleteTask)
		tasks.POST("/:taskId/status", taskHandler.UpdateTaskStatus)
		tasks.POST("/:taskId/comments", taskHandler.AddComment)
	}

	comments := api.Group("/comments")
	{
		// POST rather than DELETE keeps parity with the board client
		comments.POST("/:commentId/delete", taskHandler.DeleteComment)
	}

	return r
}
