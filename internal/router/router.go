package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/demohealth/privacy-governance-api/internal/config"
	"github.com/demohealth/privacy-governance-api/internal/database"
	"github.com/demohealth/privacy-governance-api/internal/handlers"
	"github.com/demohealth/privacy-governance-api/internal/middleware"
	"github.com/demohealth/privacy-governance-api/internal/service"
)

// Services bundles everything the HTTP layer depends on
type Services struct {
	Directory *service.DirectoryService
	Consent   *service.ConsentService
	Access    *service.AccessService
	Alert     *service.AlertService
	Incident  *service.IncidentService
	Metrics   *service.MetricsService
	Export    *service.ExportService
	Report    *service.ReportService
}

// SetupRouter configures all API routes
func SetupRouter(cfg *config.Config, db *database.DB, services *Services) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.CorrelationIDMiddleware())

	if cfg.CORS.Enabled {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORS.AllowedOrigins,
			AllowMethods:     cfg.CORS.AllowedMethods,
			AllowHeaders:     cfg.CORS.AllowedHeaders,
			AllowCredentials: cfg.CORS.AllowCredentials,
			MaxAge:           time.Duration(cfg.CORS.MaxAge) * time.Second,
		}))
	}

	// Health check
	router.GET("/health", func(c *gin.Context) {
		if err := db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// Prometheus scrape endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Create handlers
	userHandler := handlers.NewUserHandler(services.Directory)
	patientHandler := handlers.NewPatientHandler(services.Directory)
	consentHandler := handlers.NewConsentHandler(services.Consent)
	accessHandler := handlers.NewAccessHandler(services.Access)
	alertHandler := handlers.NewAlertHandler(services.Alert)
	incidentHandler := handlers.NewIncidentHandler(services.Incident)
	metricsHandler := handlers.NewMetricsHandler(services.Metrics)
	exportHandler := handlers.NewExportHandler(services.Export)
	reportHandler := handlers.NewReportHandler(services.Report)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.POST("/users", userHandler.CreateUser)
		v1.GET("/users", userHandler.ListUsers)

		v1.POST("/patients", patientHandler.CreatePatient)
		v1.GET("/patients", patientHandler.ListPatients)

		v1.POST("/consents", consentHandler.CreateConsent)
		v1.GET("/consents", consentHandler.ListConsents)
		v1.GET("/consent-matrix", consentHandler.ConsentMatrix)

		v1.POST("/access", accessHandler.EvaluateAccess)
		v1.GET("/logs", metricsHandler.ListLogs)

		alerts := v1.Group("/alerts")
		{
			alerts.GET("", alertHandler.ListAlerts)
			alerts.POST("", alertHandler.CreateAlert)
			alerts.PATCH("/:alertId/resolve", alertHandler.ResolveAlert)
		}

		v1.GET("/incidents/summaries", incidentHandler.Summaries)
		v1.GET("/metrics/overview", metricsHandler.Overview)

		v1.GET("/export/anonymized/patients", exportHandler.ExportPatients)
		v1.GET("/export/anonymized/logs", exportHandler.ExportAccessLogs)

		v1.GET("/reports/audit", reportHandler.AuditReport)
	}

	return router
}
