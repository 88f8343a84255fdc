package main

import (
	"fmt"
	"log"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/staffloop/identity/internal/pkg/config"
	"github.com/staffloop/identity/internal/pkg/database"
	"github.com/staffloop/identity/internal/pkg/hash"
	"github.com/staffloop/identity/internal/pkg/health"
	"github.com/staffloop/identity/internal/pkg/logger"
	"github.com/staffloop/identity/internal/pkg/middleware"
	nsqpkg "github.com/staffloop/identity/internal/pkg/nsq"
	"github.com/staffloop/identity/services/auth/gateway"
	authHandler "github.com/staffloop/identity/services/auth/handler"
	authHTTP "github.com/staffloop/identity/services/auth/handler/http"
	authRepo "github.com/staffloop/identity/services/auth/repository"
	authUsecase "github.com/staffloop/identity/services/auth/usecase"
	orgHandler "github.com/staffloop/identity/services/org/handler"
	orgHTTP "github.com/staffloop/identity/services/org/handler/http"
	orgRepo "github.com/staffloop/identity/services/org/repository"
	orgUsecase "github.com/staffloop/identity/services/org/usecase"
)

func main() {
	appName := "identity-service"
	configPath := config.GetEnv("CONFIG_PATH", "config/identity.env")
	configs := config.InitConfig(configPath)

	appLogger, err := logger.Init(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer appLogger.Close()

	appLogger.WithFields(logrus.Fields{
		"app":         appName,
		"version":     configs.App.Version,
		"environment": configs.App.Environment,
	}).Info("Starting application")

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to connect to PostgreSQL")
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to connect to Redis")
	}
	defer redisClient.Close()

	// Initialize NSQ producer for outbound notifications
	producer, err := nsqpkg.NewProducer(configs.NSQ.Address)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to connect to NSQ")
	}
	defer producer.Stop()

	// Initialize repositories
	authRepository := authRepo.NewAuthRepo(configs, postgresClient.GetDB(), redisClient)
	orgRepository := orgRepo.NewOrgRepo(configs, postgresClient.GetDB())

	// Initialize gateways and capabilities
	notifier := gateway.NewNotifierGW(producer)
	hasher := hash.NewBcryptHasher(0)

	// Initialize usecases
	orgUC := orgUsecase.NewOrgUC(orgRepository, orgRepository)
	authUC := authUsecase.NewAuthUC(authRepository, authRepository, notifier, hasher, configs)

	// Initialize handlers
	authH := authHandler.NewHandler(authHTTP.NewAuthHandler(authUC), orgUC, configs)
	orgH := orgHandler.NewHandler(orgHTTP.NewRoleHandler(orgUC), orgUC, configs)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.EchoMiddleware(appLogger))

	health.RegisterHealthEndpoints(e, appName)
	authH.RegisterRoutes(e)
	orgH.RegisterRoutes(e)

	appLogger.WithFields(logrus.Fields{
		"app":  appName,
		"port": configs.Server.Port,
	}).Info("Starting server")

	if err := e.Start(fmt.Sprintf("%s:%d", configs.Server.Host, configs.Server.Port)); err != nil {
		appLogger.WithError(err).Fatal("Failed to start server")
	}
}
