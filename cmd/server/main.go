package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/demohealth/privacy-governance-api/internal/config"
	"github.com/demohealth/privacy-governance-api/internal/dao"
	"github.com/demohealth/privacy-governance-api/internal/database"
	"github.com/demohealth/privacy-governance-api/internal/metrics"
	"github.com/demohealth/privacy-governance-api/internal/notify"
	"github.com/demohealth/privacy-governance-api/internal/router"
	"github.com/demohealth/privacy-governance-api/internal/service"
)

// Version information (set by build script)
var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	// Set Gin to release mode by default (can be overridden by GIN_MODE env var)
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetLevel(logrus.InfoLevel)

	logger.WithFields(logrus.Fields{
		"version":    version,
		"build_date": buildDate,
	}).Info("Starting Privacy Governance API Server...")

	// Load configuration
	configPath := os.Getenv("CONFIG_PATH")

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}

	// Set log level from config
	if level, err := logrus.ParseLevel(cfg.Logging.Level); err == nil {
		logger.SetLevel(level)
	}

	logger.WithFields(logrus.Fields{
		"config_path": configPath,
		"log_level":   logger.GetLevel().String(),
	}).Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.Initialize(&cfg.Database, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize database")
	}
	defer db.Close()

	// Verify database connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.HealthCheck(ctx); err != nil {
		logger.WithError(err).Fatal("Database health check failed")
	}

	logger.Info("Database connection established successfully")

	// Initialize DAOs
	userDAO := dao.NewUserDAO(db)
	patientDAO := dao.NewPatientDAO(db)
	consentDAO := dao.NewConsentDAO(db)
	accessLogDAO := dao.NewAccessLogDAO(db)
	alertDAO := dao.NewAlertDAO(db)

	logger.Info("DAOs initialized successfully")

	// Initialize services
	appMetrics := metrics.New()
	notifier := notify.NewEmailSimulator(logger, cfg.Alerts.ComplianceEmail)

	directoryService := service.NewDirectoryService(userDAO, patientDAO, logger)
	consentService := service.NewConsentService(consentDAO, userDAO, patientDAO, logger)
	accessService := service.NewAccessService(
		consentDAO,
		accessLogDAO,
		alertDAO,
		userDAO,
		patientDAO,
		notifier,
		appMetrics,
		logger,
	)
	alertService := service.NewAlertService(alertDAO, logger)
	incidentService := service.NewIncidentService(alertDAO, accessLogDAO, userDAO, patientDAO, logger)
	metricsService := service.NewMetricsService(accessLogDAO, alertDAO)
	exportService := service.NewExportService(patientDAO, userDAO, accessLogDAO)
	reportService := service.NewReportService(metricsService, alertDAO)

	logger.Info("Services initialized successfully")

	// Setup router
	ginRouter := router.SetupRouter(cfg, db, &router.Services{
		Directory: directoryService,
		Consent:   consentService,
		Access:    accessService,
		Alert:     alertService,
		Incident:  incidentService,
		Metrics:   metricsService,
		Export:    exportService,
		Report:    reportService,
	})

	// Configure HTTP server
	serverAddr := cfg.Server.GetServerAddress()
	server := &http.Server{
		Addr:           serverAddr,
		Handler:        ginRouter,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: 1 << 20, // 1 MB
	}

	// Start server in a goroutine
	go func() {
		logger.WithFields(logrus.Fields{
			"hostname": cfg.Server.Hostname,
			"port":     cfg.Server.Port,
			"addr":     serverAddr,
		}).Info("Starting HTTP server...")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Fatal("Failed to start server")
		}
	}()

	logger.WithField("address", serverAddr).Info("✓ Server is running")
	logger.Info("Press Ctrl+C to stop the server")

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Fatal("Server forced to shutdown")
	}

	logger.Info("Server exited")
}
