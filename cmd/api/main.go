package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"project-plan-api/internal/client"
	"project-plan-api/internal/config"
	"project-plan-api/internal/database"
	"project-plan-api/internal/handler"
	"project-plan-api/internal/job"
	"project-plan-api/internal/metrics"
	"project-plan-api/internal/repository"
	"project-plan-api/internal/router"
	"project-plan-api/internal/service"
)

func initLogger(level string) *zap.Logger {
	zapLevel, err := zapcore.ParseLevel(level)
	if err != nil {
		zapLevel = zapcore.InfoLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	return logger
}

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		panic(err)
	}

	logger := initLogger(cfg.Logger.Level)
	defer logger.Sync()

	logger.Info("Starting project plan API",
		zap.String("port", cfg.Server.Port),
		zap.String("mode", cfg.Server.Mode))

	m := metrics.NewWithLogger(logger)

	dbConfig := database.Config{
		DSN:             cfg.Database.GetDSN(),
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	db, err := database.New(dbConfig)
	if err != nil {
		logger.Fatal("Failed to open database", zap.Error(err))
	}
	database.SetDB(db)

	// The handle connects lazily, so the service comes up and serves
	// /health even while the database is still unreachable.
	if err := database.Ping(db, 5*time.Second); err != nil {
		logger.Warn("Database not reachable at startup, migrating once it answers", zap.Error(err))
		database.MigrateWhenReady(db, 5*time.Second, logger)
	} else if err := database.AutoMigrate(db); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}
	database.RegisterMetricsCallbacks(db, m)
	defer close(database.StartDBStatsCollector(db, m))

	redisClient, err := database.NewRedis(cfg.Redis, logger)
	if err != nil {
		logger.Warn("Redis unavailable, workload caching disabled", zap.Error(err))
		redisClient = nil
	}

	gormDB := db
	projectRepo := repository.NewProjectRepository(gormDB)
	taskRepo := repository.NewTaskRepository(gormDB)
	sprintRepo := repository.NewSprintRepository(gormDB)
	resourceRepo := repository.NewResourceRepository(gormDB)
	assignmentRepo := repository.NewAssignmentRepository(gormDB)
	baselineRepo := repository.NewBaselineRepository(gormDB)
	changeRepo := repository.NewChangeRepository(gormDB)
	governanceRepo := repository.NewGovernanceRepository(gormDB)
	settingsRepo := repository.NewSettingsRepository(gormDB)

	completionClient := client.NewCompletionClient(cfg.AI, logger, m)
	sprintCapacity := cfg.Planning.SprintCapacityHoursPerWeek
	workloadCache := service.NewWorkloadCache(redisClient, logger)

	projectService := service.NewProjectService(projectRepo, m, logger)
	taskService := service.NewTaskService(taskRepo, projectRepo, workloadCache, m, logger)
	sprintService := service.NewSprintService(sprintRepo, projectRepo, logger)
	resourceService := service.NewResourceService(resourceRepo, assignmentRepo, taskRepo, sprintRepo, projectRepo, workloadCache, logger)
	baselineService := service.NewBaselineService(baselineRepo, taskRepo, sprintRepo, projectRepo, sprintCapacity, logger)
	changeService := service.NewChangeService(changeRepo, taskRepo, sprintRepo, baselineRepo, projectRepo, completionClient, sprintCapacity, workloadCache, m, logger)
	governanceService := service.NewGovernanceService(governanceRepo, projectRepo, logger)
	settingsService := service.NewSettingsService(settingsRepo, logger)
	aiService := service.NewAIService(projectRepo, taskRepo, sprintRepo, baselineRepo, settingsRepo, resourceService, completionClient, sprintCapacity, logger)

	handlers := &router.Handlers{
		Health:     handler.NewHealthHandler(redisClient),
		Project:    handler.NewProjectHandler(projectService),
		Task:       handler.NewTaskHandler(taskService),
		Sprint:     handler.NewSprintHandler(sprintService),
		Resource:   handler.NewResourceHandler(resourceService),
		Baseline:   handler.NewBaselineHandler(baselineService),
		Change:     handler.NewChangeHandler(changeService),
		Governance: handler.NewGovernanceHandler(governanceService),
		Settings:   handler.NewSettingsHandler(settingsService),
		AI:         handler.NewAIHandler(aiService),
	}

	engine := router.Setup(cfg, handlers, m, logger)

	statsJob := job.NewStatsJob(projectRepo, taskRepo, m, logger)
	if err := statsJob.Start(); err != nil {
		logger.Fatal("Failed to start stats job", zap.Error(err))
	}

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info("HTTP server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down")

	statsJob.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown failed", zap.Error(err))
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			logger.Error("Redis close failed", zap.Error(err))
		}
	}
	if err := database.Close(db); err != nil {
		logger.Error("Database close failed", zap.Error(err))
	}

	logger.Info("Shutdown complete")
}
