package main

import (
	"context"
	"fmt"
	"medicare-portal/internal/app/config"
	"medicare-portal/internal/app/delivery/http/controllers"
	"medicare-portal/internal/app/delivery/http/middlewares"
	"medicare-portal/internal/app/delivery/http/routers"
	"medicare-portal/internal/app/drivers/database"
	"medicare-portal/internal/app/drivers/logger"
	"medicare-portal/internal/app/drivers/messaging"
	"medicare-portal/internal/app/drivers/storage"
	"medicare-portal/internal/app/services/core/auth"
	"medicare-portal/internal/app/services/core/doctorsearch"
	"medicare-portal/internal/app/services/shared/graphql"
	"medicare-portal/internal/app/services/shared/jwtmanager"
	"medicare-portal/internal/app/services/shared/locker"
	"medicare-portal/internal/app/services/shared/redis"
	"medicare-portal/internal/app/services/shared/signals"
	minioStorage "medicare-portal/internal/app/services/shared/storage"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Version sets the default build version
var Version = "develop"

// Tag sets the default latest commit tag
var Tag = "0.0.1-rc"

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)
	log.Info("Starting medicare portal",
		zap.String("build_version", Version),
		zap.String("build_tag", Tag),
	)

	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig, internalConfig.Minio.BucketName)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		Logger:         log,
		RabbitMQ:       rabbitMQ,
		Minio:          minioClient,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	err := bootstrapingTheApp(bootstrap)
	if err != nil {
		log.Fatal("Failed to bootstrap the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", internalConfig.App.Port),
		Handler: chiRouter,
	}

	go func() {
		log.Info("Server listening", zap.String("address", server.Addr))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Failed to release drivers", zap.Error(err))
	}

	log.Info("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	internalConfig := bootstrap.InternalConfig
	log := bootstrap.Logger

	// Redis
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepository, log)

	// Session signals
	signalPublisher, err := signals.NewSignalPublisher(bootstrap.RabbitMQ, internalConfig.RabbitMQ.SessionSignalExchange, log)
	if err != nil {
		return err
	}

	// Avatar storage
	avatarStorage := minioStorage.NewMinioStorage(bootstrap.Minio, internalConfig.Minio.PublicBaseUrl, log)

	// Upstream API
	graphqlClient := graphql.NewClient(
		internalConfig.GraphQL.Endpoint,
		time.Duration(internalConfig.GraphQL.TimeoutInSeconds)*time.Second,
		log,
	)
	authAPI := graphql.NewAuthAPI(graphqlClient)
	memberAPI := graphql.NewMemberAPI(graphqlClient)
	doctorAPI := graphql.NewDoctorAPI(graphqlClient)

	jwtManager := jwtmanager.NewJWTManager(log)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(log, jwtManager, internalConfig)

	// Session
	sessionUsecase := auth.NewSessionUsecase(
		authAPI,
		memberAPI,
		jwtManager,
		redisRepository,
		lockerService,
		signalPublisher,
		avatarStorage,
		internalConfig,
		log,
	)
	authController := controllers.NewAuthController(log, sessionUsecase, internalConfig)
	memberController := controllers.NewMemberController(log, sessionUsecase, internalConfig)

	// Doctor search
	doctorSearchUsecase := doctorsearch.NewDoctorSearchUsecase(doctorAPI, internalConfig, log)
	doctorController := controllers.NewDoctorController(log, doctorSearchUsecase, internalConfig)

	routers.SetupRoutes(
		bootstrap.Router,
		internalConfig,
		middlewares,
		authController,
		memberController,
		doctorController,
	)
	return nil
}
