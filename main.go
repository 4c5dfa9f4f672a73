package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"goalquest/config"
	"goalquest/handler"
	"goalquest/middleware"
	"goalquest/repository"
	"goalquest/services"
	"goalquest/usecase"
	"goalquest/utils"
)

const maxRequestBodySize = 1 << 20 // 1 MiB

func init() {
	if err := godotenv.Load(); err != nil && os.Getenv("GO_ENV") != "test" {
		log.Fatalf("Error loading .env file: %v", err)
	}

	requiredEnvVars := []string{
		"MONGO_URI",
		"MONGO_DB",
		"USERS_COLLECTION",
		"SESSIONS_COLLECTION",
		"GOALS_COLLECTION",
		"TASKS_COLLECTION",
		"BLUEPRINTS_COLLECTION",
		"JWT_SECRET_KEY",
		"JWT_EXPIRATION_TIME",
		"REFRESH_TOKEN_EXPIRATION_TIME",
		"PORT",
	}
	for _, envVar := range requiredEnvVars {
		if os.Getenv(envVar) == "" && os.Getenv("GO_ENV") != "test" {
			log.Fatalf("Required environment variable %s is not set", envVar)
		}
	}

	utils.InitValidator()
	utils.InitJWT()

	dbConfig := config.LoadDatabaseConfig()
	utils.InitMongoClient(dbConfig.URI, dbConfig.MaxPoolSize, dbConfig.MinPoolSize, dbConfig.MaxConnIdleTime, dbConfig.RetryWrites)

	redisConfig := config.LoadRedisConfig()

	blacklist, err := services.NewTokenBlacklist(redisConfig.URL)
	if err != nil {
		log.Fatalf("Failed to connect token blacklist to Redis: %v", err)
	}
	services.TokenBlacklist = blacklist

	statsCache, err := services.NewStatsCache(redisConfig.URL, redisConfig.StatsTTL)
	if err != nil {
		log.Printf("Stats cache unavailable, statistics will be computed per request: %v", err)
	} else {
		services.GlobalStatsCache = statsCache
	}
}

func setupRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.RequestTracingMiddleware())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestSizeLimiter(maxRequestBodySize))

	userRepo := repository.GetUserRepo(utils.MongoClient)
	sessionRepo := repository.GetSessionRepo(utils.MongoClient)
	goalsRepo := repository.GetGoalsRepo(utils.MongoClient)
	tasksRepo := repository.GetTasksRepo(utils.MongoClient)
	blueprintsRepo := repository.GetBlueprintsRepo(utils.MongoClient)

	usersService := usecase.NewUsersService(userRepo, goalsRepo, tasksRepo, sessionRepo, blueprintsRepo)
	goalsService := usecase.NewGoalsService(goalsRepo, tasksRepo)
	tasksService := usecase.NewTasksService(tasksRepo, goalsRepo)
	blueprintsService := usecase.NewBlueprintsService(blueprintsRepo, goalsRepo)
	statsService := usecase.NewStatsService(userRepo, goalsRepo, tasksRepo, sessionRepo)

	goalsHandler := handler.NewGoalsHandler(goalsService, tasksService)
	tasksHandler := handler.NewTasksHandler(tasksService)
	blueprintsHandler := handler.NewBlueprintsHandler(blueprintsService)
	statsHandler := handler.NewStatsHandler(statsService)

	router.Use(middleware.SessionMiddleware(sessionRepo))

	router.GET("/health", handler.HealthHandler)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	public := router.Group("/api")
	{
		auth := public.Group("/auth")
		{
			auth.POST("/register", func(c *gin.Context) {
				handler.RegistrationHandler(c, usersService)
			})
			auth.POST("/login", func(c *gin.Context) {
				handler.LoginHandler(c, userRepo, sessionRepo)
			})
			auth.POST("/refresh", handler.RefreshTokenHandler)
		}
	}

	protected := router.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		user := protected.Group("/user")
		{
			user.GET("/profile", func(c *gin.Context) {
				handler.GetUserProfileHandler(c, userRepo)
			})
			user.POST("/change-email", func(c *gin.Context) {
				handler.ChangeEmailHandler(c, userRepo)
			})
			user.POST("/change-password", func(c *gin.Context) {
				handler.ChangePasswordHandler(c, usersService)
			})
			user.POST("/logout", func(c *gin.Context) {
				handler.LogoutHandler(c, sessionRepo)
			})
			user.DELETE("/delete", func(c *gin.Context) {
				handler.DeleteUserHandler(c, usersService)
			})
			user.GET("/stats", statsHandler.GetUserStats)

			twofa := user.Group("/2fa")
			{
				twofa.POST("/generate", func(c *gin.Context) {
					handler.Generate2FASecretHandler(c, userRepo)
				})
				twofa.POST("/enable", func(c *gin.Context) {
					handler.Enable2FAHandler(c, userRepo)
				})
				twofa.POST("/verify", func(c *gin.Context) {
					handler.Verify2FAHandler(c, userRepo)
				})
				twofa.POST("/disable", func(c *gin.Context) {
					handler.Disable2FAHandler(c, userRepo)
				})
				twofa.POST("/recovery", func(c *gin.Context) {
					handler.UseRecoveryCodeHandler(c, userRepo)
				})
			}
		}

		sessions := protected.Group("/sessions")
		{
			sessions.GET("/active", func(c *gin.Context) {
				handler.GetActiveSessions(c, sessionRepo)
			})
			sessions.DELETE("/:id", func(c *gin.Context) {
				handler.EndSessionHandler(c, sessionRepo)
			})
			sessions.POST("/logout-all", func(c *gin.Context) {
				handler.LogoutAllSessions(c, sessionRepo)
			})
		}

		goals := protected.Group("/goals")
		{
			goals.GET("/", goalsHandler.ListGoals)
			goals.GET("/archived", goalsHandler.ListArchivedGoals)
			goals.POST("/", goalsHandler.CreateGoal)
			goals.POST("/workload-preview", goalsHandler.PreviewWorkload)
			goals.GET("/:id", goalsHandler.GetGoal)
			goals.PUT("/:id", goalsHandler.UpdateGoal)
			goals.DELETE("/:id", goalsHandler.DeleteGoal)
			goals.POST("/:id/complete", goalsHandler.CompleteGoal)
			goals.POST("/:id/archive", goalsHandler.ArchiveGoal)
			goals.POST("/:id/unarchive", goalsHandler.UnarchiveGoal)
		}

		tasks := protected.Group("/tasks")
		{
			tasks.GET("/", tasksHandler.ListTasks)
			tasks.GET("/today", tasksHandler.TodayPlan)
			tasks.POST("/", tasksHandler.CreateTask)
			tasks.PUT("/:id", tasksHandler.UpdateTask)
			tasks.DELETE("/:id", tasksHandler.DeleteTask)
			tasks.POST("/:id/complete", tasksHandler.CompleteTask)
			tasks.POST("/:id/uncomplete", tasksHandler.UncompleteTask)
		}

		blueprints := protected.Group("/blueprints")
		{
			blueprints.GET("/", middleware.CacheControlMiddleware("300"), blueprintsHandler.ListBlueprints)
			blueprints.POST("/", blueprintsHandler.CreateBlueprint)
			blueprints.DELETE("/:id", blueprintsHandler.DeleteBlueprint)
			blueprints.POST("/:id/preview", blueprintsHandler.PreviewBlueprint)
			blueprints.POST("/:id/apply", blueprintsHandler.ApplyBlueprint)
		}
	}

	return router
}

func main() {
	router := setupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	serverAddr := fmt.Sprintf(":%s", port)
	log.Printf("Server starting on %s", serverAddr)
	if err := router.Run(serverAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
