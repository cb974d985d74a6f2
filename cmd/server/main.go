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

	"resource-manager-backend/internal/api/routes"
	"resource-manager-backend/internal/config"
	"resource-manager-backend/internal/database"
	"resource-manager-backend/internal/logger"
	"resource-manager-backend/internal/repository"
	"resource-manager-backend/internal/repository/filestore"
	"resource-manager-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	gormlogger "gorm.io/gorm/logger"

	_ "resource-manager-backend/docs" // This is needed for swag
)

//	@title			Resource Manager Backend API
//	@version		2.5.0
//	@description	Team members, projects and tasks of the IT resource manager, with snapshot export, replace and merge.

//	@contact.name	API Support
//	@contact.url	http://www.example.com/support
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7008
//	@BasePath	/

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	logger.Setup(logger.Options{
		Level:      cfg.LogLevel,
		File:       cfg.LogFile,
		MaxSizeMB:  cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
		MaxAgeDays: cfg.LogMaxAgeDays,
		Compress:   cfg.LogCompression,
	})

	store, closeStore, err := openStore(cfg)
	if err != nil {
		logrus.Fatal("Failed to initialize storage: ", err)
	}
	defer closeStore()

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	backupService := service.NewBackupService(store, service.NewValidator())

	var scheduler *service.SnapshotScheduler
	if cfg.BackupSchedule != "" {
		scheduler = service.NewSnapshotScheduler(backupService, cfg.BackupDir, cfg.BackupRetention)
		if err := scheduler.Start(cfg.BackupSchedule); err != nil {
			logrus.Fatal("Failed to start backup scheduler: ", err)
		}
	}

	// Initialize router
	router := routes.SetupRoutes(store, backupService, cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logrus.WithFields(logrus.Fields{
			"port":    cfg.Port,
			"storage": cfg.StorageBackend,
		}).Info("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatal("Failed to start server: ", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down server")

	if scheduler != nil {
		scheduler.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.WithError(err).Error("Server forced to shut down")
	}
}

// openStore builds the configured persistence backend and returns a func
// releasing it
func openStore(cfg *config.Config) (repository.Store, func(), error) {
	if cfg.StorageBackend == config.StorageFile {
		store, err := filestore.Open(cfg.DataFile)
		if err != nil {
			return nil, nil, err
		}
		return store, func() {}, nil
	}

	level := gormlogger.Warn
	if cfg.IsDevelopment() {
		level = gormlogger.Info
	}
	db, err := database.Initialize(cfg.DatabaseDriver, cfg.DSN(), &database.Options{
		LogLevel:     level,
		MaxOpenConns: cfg.MaxOpenConns,
		MaxIdleConns: cfg.MaxIdleConns,
		ReplicaDSNs:  cfg.ReplicaURLs,
	})
	if err != nil {
		return nil, nil, err
	}
	return repository.NewGormStore(db), func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}, nil
}
