package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/demohealth/privacy-governance-api/internal/models"
	"github.com/demohealth/privacy-governance-api/pkg/utils"
)

// AlertService handles business logic for breach alerts
type AlertService struct {
	alerts AlertStore
	logger *logrus.Logger
}

// NewAlertService creates a new alert service instance
func NewAlertService(alerts AlertStore, logger *logrus.Logger) *AlertService {
	return &AlertService{
		alerts: alerts,
		logger: logger,
	}
}

// ListAlerts retrieves the most recent alerts, optionally unresolved only
func (s *AlertService) ListAlerts(ctx context.Context, limit int, unresolvedOnly bool) ([]models.Alert, error) {
	alerts, err := s.alerts.List(ctx, limit, unresolvedOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}
	if alerts == nil {
		alerts = []models.Alert{}
	}
	return alerts, nil
}

// CreateAlert creates an alert manually. Manual alerts carry no structured
// reason; incident narratives fall back to deriving one from the message.
func (s *AlertService) CreateAlert(ctx context.Context, request *models.AlertCreateRequest) (*models.Alert, error) {
	if err := utils.ValidateID("user_id", request.UserID); err != nil {
		return nil, err
	}
	if err := utils.ValidateID("patient_id", request.PatientID); err != nil {
		return nil, err
	}
	if err := utils.ValidateRequired("message", request.Message); err != nil {
		return nil, err
	}

	alert := &models.Alert{
		UserID:    request.UserID,
		PatientID: request.PatientID,
		Message:   request.Message,
		CreatedAt: utils.NowUTC(),
		Resolved:  false,
	}

	if err := s.alerts.Create(ctx, alert); err != nil {
		return nil, err
	}

	s.logger.WithField("alert_id", alert.ID).Info("Alert created manually")

	return alert, nil
}

// ResolveAlert marks an alert resolved. The operation is idempotent:
// resolving an already-resolved alert succeeds and leaves it resolved.
// Unknown alert ids surface dao.ErrAlertNotFound.
func (s *AlertService) ResolveAlert(ctx context.Context, alertID int64) error {
	if _, err := s.alerts.GetByID(ctx, alertID); err != nil {
		return err
	}

	if err := s.alerts.MarkResolved(ctx, alertID); err != nil {
		return err
	}

	s.logger.WithField("alert_id", alertID).Info("Alert resolved")

	return nil
}
