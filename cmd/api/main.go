package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"

	"wisenkap/internal/config"
	"wisenkap/internal/database"
	"wisenkap/internal/events"
	"wisenkap/internal/logger"
	"wisenkap/internal/middleware"
	"wisenkap/internal/notify"
	"wisenkap/internal/server"
	"wisenkap/internal/services"
	"wisenkap/internal/validator"
)

// @title           Wisenkap API
// @version         1.0
// @description     Wisenkap is a personal budgeting service: budgets funded by revenues, with transactions, savings and expenses posted against them.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

func main() {
	logger.Init(os.Getenv("ENV"), os.Getenv("LOG_LEVEL"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if appConfig.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	validator.Register()

	dbConfig, err := database.NewConfig(appConfig)
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			log.Warnf("database close error: %v", err)
		}
	}()

	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	var publisher events.Publisher = events.NopPublisher{}
	if appConfig.AMQPURL != "" {
		amqpPublisher, err := events.NewAMQPPublisher(appConfig.AMQPURL, appConfig.AMQPExchange)
		if err != nil {
			return fmt.Errorf("failed to connect to message broker: %w", err)
		}
		defer func() {
			if err := amqpPublisher.Close(); err != nil {
				log.Warnf("message broker close error: %v", err)
			}
		}()
		publisher = amqpPublisher
		log.Infow("Publishing ledger events", "exchange", appConfig.AMQPExchange)
	}

	var sender notify.Sender = notify.LogSender{}
	if appConfig.FCMProjectID != "" {
		fcmSender, err := notify.NewFCMSender(context.Background(), appConfig.FCMProjectID, appConfig.FCMCredentialsFile)
		if err != nil {
			return fmt.Errorf("failed to create push sender: %w", err)
		}
		sender = fcmSender
	}

	db := dbManager.DB()
	userService := services.NewUserService(db)
	notificationService := services.NewNotificationService(db, sender, appConfig.BatchConcurrency)

	router := server.NewRouter(server.Services{
		Users:         userService,
		Audit:         services.NewAuditService(db),
		Budgets:       services.NewBudgetService(db, publisher),
		Postings:      services.NewPostingService(db, publisher, notificationService),
		Notifications: notificationService,
		Export:        services.NewExportService(db, userService),
	}, server.Options{
		Tokens:      middleware.NewTokenManager(appConfig.JWTSecret, appConfig.JWTExpirationDur, appConfig.RefreshExpiration),
		AdminAPIKey: appConfig.AdminAPIKey,
		CORSOrigins: appConfig.CORSOrigins,
	})

	log.Infof("Starting Wisenkap backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
