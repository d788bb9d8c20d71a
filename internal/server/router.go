// Package server assembles the HTTP router shared by the API binary and the
// integration tests.
package server

import (
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "wisenkap/internal/docs" // Import swagger docs
	apperrors "wisenkap/internal/errors"
	"wisenkap/internal/handlers"
	"wisenkap/internal/middleware"
	"wisenkap/internal/services"
)

// Services are the domain services the routes delegate to.
type Services struct {
	Users         services.UserServicer
	Audit         services.AuditServicer
	Budgets       services.BudgetServicer
	Postings      services.PostingServicer
	Notifications services.NotificationServicer
	Export        services.ExportServicer
}

// Options carries the transport settings of the router.
type Options struct {
	Tokens      *middleware.TokenManager
	AdminAPIKey string
	CORSOrigins []string
}

// NewRouter wires middleware, handlers and routes.
func NewRouter(svc Services, opts Options) *gin.Engine {
	authHandler := handlers.NewAuthHandler(svc.Users, svc.Audit, opts.Tokens)
	budgetHandler := handlers.NewBudgetHandler(svc.Budgets, svc.Audit)
	postingHandler := handlers.NewPostingHandler(svc.Postings, svc.Audit)
	notificationHandler := handlers.NewNotificationHandler(svc.Notifications, svc.Audit)
	exportHandler := handlers.NewExportHandler(svc.Export)
	adminHandler := handlers.NewAdminHandler(svc.Users)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(cors.New(corsConfig(opts.CORSOrigins)))

	router.NoRoute(func(c *gin.Context) {
		_ = c.Error(apperrors.ErrNotFound)
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/signup", authHandler.Signup)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(opts.Tokens))

	protected.POST("/auth/logout", authHandler.Logout)
	protected.GET("/auth/user", authHandler.GetProfile)
	protected.PUT("/auth/user", authHandler.UpdateProfile)

	budgets := protected.Group("/budgets")
	budgets.POST("", budgetHandler.CreateBudget)
	budgets.GET("", budgetHandler.GetBudgets)
	budgets.GET("/:id", budgetHandler.GetBudget)
	budgets.DELETE("/:id", budgetHandler.DeleteBudget)
	budgets.POST("/:id/transactions", postingHandler.PostTransactions)
	budgets.POST("/:id/savings", postingHandler.PostSaving)
	budgets.POST("/:id/expenses", postingHandler.PostExpenses)

	protected.GET("/transactions", postingHandler.GetTransactions)
	protected.GET("/savings", postingHandler.GetSavings)

	notifications := protected.Group("/notifications")
	notifications.POST("", notificationHandler.CreateNotification)
	notifications.GET("", notificationHandler.GetNotifications)
	notifications.DELETE("/:id", notificationHandler.DeleteNotification)

	protected.GET("/export", exportHandler.ExportTransactions)

	admin := v1.Group("/admin")
	admin.Use(middleware.AdminAPIKeyMiddleware(opts.AdminAPIKey))
	admin.GET("/users", adminHandler.ListUsers)

	return router
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", "X-API-Key", "X-Request-ID"},
		ExposeHeaders: []string{"Content-Disposition", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}
