package main

import (
	"log"

	"github.com/Baaaki/sportclub/internal/audit"
	"github.com/Baaaki/sportclub/internal/config"
	"github.com/Baaaki/sportclub/internal/database"
	"github.com/Baaaki/sportclub/internal/handler"
	"github.com/Baaaki/sportclub/internal/middleware"
	"github.com/Baaaki/sportclub/internal/models"
	"github.com/Baaaki/sportclub/internal/repository"
	"github.com/Baaaki/sportclub/internal/service"
	"github.com/Baaaki/sportclub/pkg/logger"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg := config.Load()

	if err := logger.Init(!cfg.IsProduction()); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	if cfg.AdminPassword != "" {
		if err := database.EnsureAdmin(db, cfg.AdminEmail, cfg.AdminPassword); err != nil {
			log.Fatalf("Failed to seed administrator: %v", err)
		}
	}

	auditLog, err := audit.Open(cfg.AuditPath)
	if err != nil {
		log.Fatalf("Failed to open audit log: %v", err)
	}
	defer auditLog.Close()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	playerRepo := repository.NewPlayerRepository(db)
	perfRepo := repository.NewPerformanceRepository(db)
	trainingRepo := repository.NewTrainingRepository(db)
	messageRepo := repository.NewMessageRepository(db)

	// Services
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiry)
	approvalService := service.NewApprovalService(db, userRepo, teamRepo, playerRepo, perfRepo, trainingRepo, messageRepo, auditLog)
	rosterService := service.NewRosterService(userRepo, teamRepo, playerRepo, perfRepo)
	statsService := service.NewStatsService(teamRepo, playerRepo, perfRepo)
	trainingService := service.NewTrainingService(teamRepo, playerRepo, trainingRepo)
	chatService := service.NewChatService(userRepo, teamRepo, playerRepo, messageRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	adminHandler := handler.NewAdminHandler(approvalService)
	rosterHandler := handler.NewRosterHandler(rosterService, trainingService)
	statsHandler := handler.NewStatsHandler(statsService)
	trainingHandler := handler.NewTrainingHandler(trainingService)
	chatHandler := handler.NewChatHandler(chatService)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	router.Use(middleware.RequestID())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.HSTSMiddleware(cfg.IsProduction()))
	router.Use(cors.Default())

	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("Invalid REDIS_URL: %v", err)
		}
		limiter := middleware.NewRateLimiter(redis.NewClient(opts), middleware.RateLimiterConfig{
			MaxRequests: cfg.RateLimitMaxRequests,
			Window:      cfg.RateLimitWindow,
			BlockTime:   cfg.RateLimitBlockTime,
		})
		router.Use(limiter.Middleware())
	}

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Public routes
	router.POST("/api/auth/register", authHandler.Register)
	router.POST("/api/auth/login", authHandler.Login)

	// Authenticated routes
	api := router.Group("/api")
	api.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		// Admin
		admin := api.Group("/admin")
		admin.Use(middleware.RequireRoles(models.RoleAdmin))
		{
			admin.GET("/dashboard", adminHandler.Dashboard)
			admin.POST("/users/:id/approve", adminHandler.Approve)
			admin.POST("/users/:id/reject", adminHandler.Reject)
			admin.DELETE("/users/:id", adminHandler.DeleteUser)
		}

		// Coach
		coach := api.Group("")
		coach.Use(middleware.RequireRoles(models.RoleCoach))
		{
			coach.GET("/coach/dashboard", rosterHandler.CoachDashboard)
			coach.POST("/teams", rosterHandler.CreateTeam)
			coach.GET("/teams", rosterHandler.MyTeams)
			coach.GET("/players/available", rosterHandler.AvailablePlayers)
			coach.POST("/players", rosterHandler.CreatePlayer)
			coach.POST("/players/:id/assign", rosterHandler.AssignPlayer)
			coach.POST("/players/:id/unassign", rosterHandler.UnassignPlayer)
			coach.POST("/players/:id/stats", statsHandler.RecordPerformance)
			coach.POST("/trainings", trainingHandler.Schedule)
			coach.GET("/trainings", trainingHandler.CoachTrainings)
		}

		// Coach or admin
		api.GET("/teams/:id/players", middleware.RequireRoles(models.RoleAdmin, models.RoleCoach), rosterHandler.TeamPlayers)

		// Player
		me := api.Group("/me")
		me.Use(middleware.RequireRoles(models.RolePlayer))
		{
			me.GET("/dashboard", rosterHandler.PlayerHome)
			me.GET("/trainings", trainingHandler.PlayerTrainings)
		}

		// Any authenticated role
		api.GET("/players/:id", rosterHandler.PlayerDetail)
		api.GET("/players/:id/totals", statsHandler.PlayerTotals)
		api.GET("/players/:id/performance", statsHandler.PlayerSeries)
		api.GET("/teams/:id/performance", statsHandler.TeamSeries)
		api.GET("/chat/partners", chatHandler.Partners)
		api.GET("/chat/:id/messages", chatHandler.Conversation)
		api.POST("/chat/:id/messages", chatHandler.Send)
	}

	log.Printf("Server starting on %s", cfg.ServerPort)
	if err := router.Run(cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
