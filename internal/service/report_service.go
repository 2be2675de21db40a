package service

import (
	"context"
	"fmt"

	"github.com/demohealth/privacy-governance-api/internal/models"
	"github.com/demohealth/privacy-governance-api/pkg/utils"
)

// ReportService assembles the audit summary report consumed by the
// compliance dashboard.
type ReportService struct {
	metrics *MetricsService
	alerts  AlertStore
}

// NewReportService creates a new report service instance
func NewReportService(metrics *MetricsService, alerts AlertStore) *ReportService {
	return &ReportService{
		metrics: metrics,
		alerts:  alerts,
	}
}

// AuditReport builds the 24-hour audit summary: the metrics overview plus the
// ten most recent alerts.
func (s *ReportService) AuditReport(ctx context.Context) (*models.AuditReport, error) {
	overview, err := s.metrics.Overview(ctx, DefaultSinceMinutes)
	if err != nil {
		return nil, err
	}

	alerts, err := s.alerts.List(ctx, 10, false)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent alerts: %w", err)
	}
	if alerts == nil {
		alerts = []models.Alert{}
	}

	return &models.AuditReport{
		GeneratedOn:  utils.FormatMinuteUTC(utils.NowUTC()),
		TimeWindow:   "Last 24 Hours",
		Metrics:      overview,
		RecentAlerts: alerts,
	}, nil
}
