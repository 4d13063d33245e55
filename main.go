package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Aishwarya-deoraj/Sustainability-tracker/cache"
	"github.com/Aishwarya-deoraj/Sustainability-tracker/db"
	"github.com/Aishwarya-deoraj/Sustainability-tracker/handlers"
	"github.com/Aishwarya-deoraj/Sustainability-tracker/middleware"
	"github.com/Aishwarya-deoraj/Sustainability-tracker/models"
	"github.com/Aishwarya-deoraj/Sustainability-tracker/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	godotenv.Load()

	utils.InitLogger()
	defer utils.Logger.Sync()
	utils.InitMetrics()

	utils.Logger.Info("starting_application")

	db.Connect()
	if err := db.DB.AutoMigrate(
		&models.Category{},
		&models.EmissionFactor{},
		&models.User{},
		&models.Activity{},
	); err != nil {
		utils.Logger.Fatal("migration_failed", zap.Error(err))
	}

	db.SeedCatalog()

	// Redis is best effort: summaries and rate limiting degrade
	// gracefully without it.
	if err := cache.InitRedis(utils.Logger); err != nil {
		utils.Logger.Warn("running_without_cache", zap.Error(err))
	}
	defer cache.Close()

	handlers.Init(db.DB, utils.Logger)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(middleware.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.SecurityHeaders())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if csrfKey := os.Getenv("CSRF_AUTH_KEY"); csrfKey != "" {
		r.Use(middleware.CSRFProtection([]byte(csrfKey)))
	}

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now(),
			"database":  "connected",
		})
	})

	// Public endpoints
	r.POST("/auth/signup", handlers.SignUp)
	r.POST("/auth/signin", middleware.SignInRateLimit(), handlers.SignIn)
	r.POST("/api/users", handlers.CreateLegacyUser)
	r.GET("/categories", handlers.GetCategories)
	r.GET("/emission-factors", handlers.GetEmissionFactors)

	// Authenticated endpoints
	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware())
	{
		api.GET("/profile", handlers.Profile)

		api.POST("/activities", handlers.CreateActivity)
		api.GET("/activities", handlers.GetActivities)
		api.PUT("/activities/:id", handlers.UpdateActivity)
		api.DELETE("/activities/:id", handlers.DeleteActivity)

		dashboard := api.Group("/dashboard/summary")
		{
			dashboard.GET("/items", handlers.SummaryByItem)
			dashboard.GET("/sectors", handlers.SummaryBySector)
			dashboard.GET("/categories", handlers.SummaryByCategory)
			dashboard.GET("/impactors", handlers.GetBiggestImpactors)
			dashboard.GET("/daily", handlers.SummaryDaily)
			dashboard.GET("/weekly", handlers.SummaryWeekly)
			dashboard.GET("/monthly", handlers.SummaryMonthly)
		}
	}

	// Prometheus metrics
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	startServer(r)
}

func startServer(router *gin.Engine) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	utils.Logger.Info("starting_http_server", zap.String("port", port))

	fmt.Println("\n🚀 ================================")
	fmt.Println("   Sustainability Tracker Started")
	fmt.Println("   ================================")
	fmt.Printf("   🌐 Server:  http://localhost:%s\n", port)
	fmt.Printf("   📊 Metrics: http://localhost:%s/metrics\n", port)
	fmt.Printf("   ❤️  Health: http://localhost:%s/health\n", port)
	fmt.Println("   ================================")

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			utils.Logger.Fatal("http_server_failed", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	utils.Logger.Info("shutting_down_server")
	fmt.Println("\n🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		utils.Logger.Fatal("server_forced_shutdown", zap.Error(err))
	}

	utils.Logger.Info("server_stopped")
	fmt.Println("✅ Server stopped gracefully")
}
