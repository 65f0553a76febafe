package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"scrumflow-api/internal/config"
	"scrumflow-api/internal/database"
	"scrumflow-api/internal/metrics"
	"scrumflow-api/internal/router"
)

// @title Scrum Service API
// @version 1.0
// @description Project and sprint management API with product and sprint backlogs
// @host localhost:8000
// @BasePath /api/scrum
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := initLogger(cfg.Logger.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	dbConfig := database.Config{
		DSN:             cfg.Database.GetDSN(),
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	db, err := database.New(dbConfig)
	if err != nil {
		logger.Warn("Database not available at startup, retrying in background", zap.Error(err))
		database.NewAsync(dbConfig, 5*time.Second)
		db = database.GetDB()
	} else {
		database.SetDB(db)
	}

	if db != nil {
		if err := database.SafeAutoMigrate(db, logger); err != nil {
			logger.Error("Failed to run migrations", zap.Error(err))
		}
	}

	m := metrics.NewWithLogger(logger)

	if db != nil {
		database.RegisterMetricsCallbacks(db, m)
		database.StartDBStatsCollector(db, m)

		collector := metrics.NewBusinessMetricsCollector(db, m, logger)
		collector.Start()
		defer collector.Stop()
	}

	redisClient, err := database.NewRedis(cfg.Redis, logger)
	if err != nil {
		logger.Warn("Redis not available, role cache disabled", zap.Error(err))
		redisClient = nil
	}

	r := router.Setup(router.Config{
		DB:        db,
		Redis:     redisClient,
		Logger:    logger,
		Metrics:   m,
		JWTSecret: cfg.JWT.Secret,
		BasePath:  cfg.Server.BasePath,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info("Starting server",
			zap.String("port", cfg.Server.Port),
			zap.String("base_path", cfg.Server.BasePath),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	if db != nil {
		if err := database.Close(db); err != nil {
			logger.Error("Failed to close database", zap.Error(err))
		}
	}

	logger.Info("Server exited")
}

func initLogger(level string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	zapConfig := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      false,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	return zapConfig.Build()
}
