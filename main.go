package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Lasya-02/Mama-Sync/cache"
	"github.com/Lasya-02/Mama-Sync/config"
	"github.com/Lasya-02/Mama-Sync/handler"
	"github.com/Lasya-02/Mama-Sync/middleware"
	"github.com/Lasya-02/Mama-Sync/repository"
	"github.com/Lasya-02/Mama-Sync/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func init() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil && os.Getenv("GO_ENV") != "test" {
		log.Printf("No .env file loaded: %v", err)
	}

	requiredEnvVars := []string{
		"MONGO_URI",
		"MONGO_DB",
		"JWT_SECRET_KEY",
	}
	for _, envVar := range requiredEnvVars {
		if os.Getenv(envVar) == "" && os.Getenv("GO_ENV") != "test" {
			log.Fatalf("Required environment variable %s is not set", envVar)
		}
	}

	utils.InitLogger()
	utils.InitValidator()
	utils.InitJWT()
	utils.InitMongoClient()
}

func setupRouter(cfg config.ServerConfig) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	// Repositories share the single process-wide client.
	authHandler := handler.NewAuthHandler(repository.GetUserRepo(utils.MongoClient))
	taskHandler := handler.NewTaskHandler(repository.GetDailyTaskRepo(utils.MongoClient))
	reminderHandler := handler.NewReminderHandler(repository.GetReminderRepo(utils.MongoClient))
	waterHandler := handler.NewWaterIntakeHandler(repository.GetWaterIntakeRepo(utils.MongoClient))
	moodHandler := handler.NewMoodHandler(repository.GetMoodRepo(utils.MongoClient))
	forumHandler := handler.NewForumHandler(repository.GetForumRepo(utils.MongoClient))
	guideHandler := handler.NewGuideHandler(repository.GetGuideRepo(utils.MongoClient), cfg.GuideCacheTTL)

	// Public routes
	router.POST("/login", authHandler.Login)
	router.POST("/register", authHandler.Register)
	router.GET("/health", handler.HealthHandler)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Everything else requires a bearer token
	protected := router.Group("/")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.PUT("/updateprofile", authHandler.UpdateProfile)
		protected.GET("/users", authHandler.GetUsers)
		protected.GET("/user/:id", authHandler.GetUserByID)

		protected.GET("/tasks", taskHandler.GetTasks)
		protected.POST("/tasks", taskHandler.CreateTask)
		protected.POST("/tasks/mark-all-complete", taskHandler.MarkAllComplete)
		protected.PATCH("/tasks/:id", taskHandler.PatchTask)
		protected.DELETE("/tasks/:id", taskHandler.DeleteTask)

		protected.GET("/getreminder", reminderHandler.GetReminders)
		protected.POST("/createreminder", reminderHandler.CreateReminder)
		protected.PUT("/updatereminder/:id", reminderHandler.UpdateReminder)
		protected.DELETE("/deletereminder/:id", reminderHandler.DeleteReminder)

		protected.GET("/waterintake", waterHandler.GetWaterIntake)
		protected.POST("/waterintake", waterHandler.CreateWaterIntake)
		protected.PATCH("/waterintake/add", waterHandler.AddWaterIntake)
		protected.PUT("/waterintake/goal", waterHandler.UpdateWaterGoal)
		protected.PUT("/waterintake/reset", waterHandler.ResetWaterIntake)
		protected.DELETE("/waterintake", waterHandler.DeleteWaterIntake)

		protected.POST("/mood", moodHandler.CreateMood)
		protected.GET("/mood", moodHandler.GetMood)
		protected.PUT("/mood", moodHandler.UpdateMood)
		protected.DELETE("/mood", moodHandler.DeleteMood)

		protected.POST("/forum", forumHandler.CreatePost)
		protected.GET("/forum", forumHandler.GetPosts)
		protected.GET("/forum/:id", forumHandler.GetPost)
		protected.POST("/forum/:id/replies", forumHandler.AddReply)
		protected.GET("/forum/:id/replies", forumHandler.GetReplies)

		protected.GET("/guide", guideHandler.ListGuides)
		protected.GET("/guide/:id", guideHandler.GetGuide)
	}

	return router
}

func main() {
	cfg := config.LoadServerConfig()

	if err := repository.SetupIndexes(utils.MongoClient.Database(os.Getenv("MONGO_DB"))); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	// The guide cache is optional; keep serving from Mongo without it.
	if err := cache.InitRedis(utils.Logger); err != nil {
		utils.Logger.Warn("redis_unavailable", zap.Error(err))
	}

	router := setupRouter(cfg)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		utils.Logger.Info("server_starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
	sig := <-signalChan

	utils.Logger.Info("shutdown_started", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		utils.Logger.Error("shutdown_error", zap.Error(err))
	}

	cache.Close()
	utils.CloseMongoClient()
	utils.Logger.Info("shutdown_complete")
	_ = utils.Logger.Sync()
}
