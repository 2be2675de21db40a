package service

import (
	"context"
	"fmt"
	"math"

	"github.com/demohealth/privacy-governance-api/internal/models"
	"github.com/demohealth/privacy-governance-api/pkg/utils"
)

// DefaultSinceMinutes is the default reporting window (24 hours)
const DefaultSinceMinutes = 1440

// MetricsService aggregates access and alert activity for dashboards and
// reports.
type MetricsService struct {
	accessLogs AccessLogStore
	alerts     AlertStore
}

// NewMetricsService creates a new metrics service instance
func NewMetricsService(accessLogs AccessLogStore, alerts AlertStore) *MetricsService {
	return &MetricsService{
		accessLogs: accessLogs,
		alerts:     alerts,
	}
}

// Logs retrieves audit trail entries matching the filter, most recent first
func (s *MetricsService) Logs(ctx context.Context, filter *models.AccessLogFilter) ([]models.AccessLog, error) {
	logs, err := s.accessLogs.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list access logs: %w", err)
	}
	if logs == nil {
		logs = []models.AccessLog{}
	}
	return logs, nil
}

// Overview aggregates activity over the trailing window. Compliance is the
// authorized share of all accesses, rounded to two decimals; an empty window
// reports 100.0.
func (s *MetricsService) Overview(ctx context.Context, sinceMinutes int) (*models.MetricsOverview, error) {
	if sinceMinutes <= 0 {
		sinceMinutes = DefaultSinceMinutes
	}
	since := utils.SinceWindow(sinceMinutes)

	total, err := s.accessLogs.CountSince(ctx, since, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to count accesses: %w", err)
	}

	authorizedFlag := true
	authorized, err := s.accessLogs.CountSince(ctx, since, &authorizedFlag)
	if err != nil {
		return nil, fmt.Errorf("failed to count authorized accesses: %w", err)
	}

	breachFlag := false
	breaches, err := s.accessLogs.CountSince(ctx, since, &breachFlag)
	if err != nil {
		return nil, fmt.Errorf("failed to count breaches: %w", err)
	}

	openAlerts, err := s.alerts.CountOpen(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count open alerts: %w", err)
	}

	compliance := 100.0
	if total > 0 {
		compliance = math.Round(float64(authorized)/float64(total)*100*100) / 100
	}

	series, err := s.accessLogs.SeriesSince(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("failed to build access series: %w", err)
	}
	if series == nil {
		series = []models.MetricsBucket{}
	}

	return &models.MetricsOverview{
		SinceMinutes:       sinceMinutes,
		TotalAccesses:      total,
		AuthorizedAccesses: authorized,
		Breaches:           breaches,
		OpenAlerts:         openAlerts,
		CompliancePct:      compliance,
		Series:             series,
	}, nil
}
