package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"main/config"
	"main/handler"
	"main/middleware"
	"main/repository"
	"main/services"
	"main/store"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func init() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil && os.Getenv("GO_ENV") != "test" {
		log.Printf("No .env file loaded: %v", err)
	}
	utils.InitValidator()
}

// newStore picks the persistence backend from configuration.
func newStore(cfg config.StorageConfig) (store.Store, error) {
	switch cfg.Backend {
	case config.BackendFile:
		return store.NewFileStore(cfg.DataDir)
	case config.BackendMongo:
		return store.NewMongoStore(cfg.MongoURI, cfg.DatabaseName, cfg.CollectionName)
	case config.BackendRedis:
		return store.NewRedisStore(cfg.RedisURL)
	case config.BackendMemory:
		return store.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

func setupRouter(todosHandler *handler.TodosHandler, sessionsHandler *handler.SessionsHandler,
	timerHandler *handler.TimerHandler, statsHandler *handler.StatsHandler,
	adviceHandler *handler.AdviceHandler) *gin.Engine {

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestTracingMiddleware())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.RequestSizeLimiter(1 << 20))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		todos := api.Group("/todos")
		{
			todos.GET("/", todosHandler.ListTodos)
			todos.POST("/", todosHandler.CreateTodo)
			todos.POST("/:id/toggle", todosHandler.ToggleTodo)
			todos.DELETE("/:id", todosHandler.DeleteTodo)
			todos.GET("/progress", todosHandler.GetProgress)
		}

		sessions := api.Group("/sessions")
		{
			sessions.GET("/recent", sessionsHandler.GetRecentSessions)
		}

		timer := api.Group("/timer")
		{
			timer.GET("/", timerHandler.GetTimer)
			timer.POST("/start", timerHandler.StartTimer)
			timer.POST("/pause", timerHandler.PauseTimer)
			timer.POST("/resume", timerHandler.ResumeTimer)
			timer.POST("/reset", timerHandler.ResetTimer)
			timer.POST("/subject", timerHandler.SetSubject)
			timer.POST("/save", timerHandler.SaveTimer)
		}

		api.GET("/stats", middleware.CacheControlMiddleware("5"), statsHandler.GetStats)
		api.POST("/advice", adviceHandler.GetAdvice)
	}

	return router
}

func main() {
	ctx := context.Background()

	cfg := config.LoadStorageConfig()
	kv, err := newStore(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize %s storage: %v", cfg.Backend, err)
	}
	log.Printf("Using %s storage backend", cfg.Backend)

	clock := utils.RealClock{}

	todosRepo, err := repository.NewTodosRepo(ctx, kv)
	if err != nil {
		log.Fatalf("Failed to load task list: %v", err)
	}
	sessionsRepo, err := repository.NewSessionsRepo(ctx, kv)
	if err != nil {
		log.Fatalf("Failed to load session log: %v", err)
	}

	todosService := usecase.NewTodosService(todosRepo, clock)
	sessionsService := usecase.NewSessionsService(sessionsRepo)
	timerService := usecase.NewTimerService(ctx, kv, sessionsService, clock)
	statsService := usecase.NewStatsService(sessionsService, clock)
	adviceService := usecase.NewAdviceService(services.NewGeminiClient(), todosService, sessionsService, clock)

	// Keep the running timer's persist timestamp fresh so a killed process
	// fast-forwards correctly on the next start.
	go timerService.RunPersistLoop(ctx, time.Second)

	stop := make(chan struct{})
	defer close(stop)
	utils.StartSystemMetrics(15*time.Second, stop)

	router := setupRouter(
		handler.NewTodosHandler(todosService),
		handler.NewSessionsHandler(sessionsService),
		handler.NewTimerHandler(timerService),
		handler.NewStatsHandler(statsService),
		handler.NewAdviceHandler(adviceService),
	)

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
