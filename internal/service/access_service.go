package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/demohealth/privacy-governance-api/internal/metrics"
	"github.com/demohealth/privacy-governance-api/internal/models"
	"github.com/demohealth/privacy-governance-api/pkg/utils"
)

// AccessService evaluates access requests against consent grants, records
// every attempt in the audit trail, and raises breach alerts on denial.
type AccessService struct {
	consents   ConsentStore
	accessLogs AccessLogStore
	alerts     AlertStore
	users      UserStore
	patients   PatientStore
	notifier   BreachNotifier
	metrics    *metrics.Metrics
	logger     *logrus.Logger
}

// NewAccessService creates a new access service instance
func NewAccessService(
	consents ConsentStore,
	accessLogs AccessLogStore,
	alerts AlertStore,
	users UserStore,
	patients PatientStore,
	notifier BreachNotifier,
	m *metrics.Metrics,
	logger *logrus.Logger,
) *AccessService {
	return &AccessService{
		consents:   consents,
		accessLogs: accessLogs,
		alerts:     alerts,
		users:      users,
		patients:   patients,
		notifier:   notifier,
		metrics:    m,
		logger:     logger,
	}
}

// EvaluateAccess decides whether the request is authorized. Exactly one audit
// log entry is appended before returning, and a denial additionally produces
// exactly one alert plus a notification, processed synchronously before the
// caller sees the result. A denial is a valid business outcome, not an error;
// the error return carries only persistence failures.
func (s *AccessService) EvaluateAccess(ctx context.Context, request *models.AccessRequest) (*models.AccessResult, error) {
	if err := utils.ValidateID("user_id", request.UserID); err != nil {
		return nil, err
	}
	if err := utils.ValidateID("patient_id", request.PatientID); err != nil {
		return nil, err
	}
	if err := utils.ValidateRequired("action", request.Action); err != nil {
		return nil, err
	}

	consent, err := s.consents.FindByUserAndPatient(ctx, request.UserID, request.PatientID)
	if err != nil {
		return nil, err
	}

	authorized := false
	reason := ""

	if consent != nil {
		switch {
		case request.Action == models.ActionView && consent.CanView:
			authorized = true
		case request.Action == models.ActionEdit && consent.CanEdit:
			authorized = true
		default:
			// Covers revoked flags as well as export and unknown actions,
			// which no grant models.
			reason = models.ReasonMissingPermission
		}
	} else {
		reason = models.ReasonNoConsent
	}

	// Log first, then alert. A crash in between leaves a denial logged
	// without an alert; the inverse cannot happen.
	now := utils.NowUTC()
	entry := &models.AccessLog{
		UserID:       request.UserID,
		PatientID:    request.PatientID,
		Action:       request.Action,
		Timestamp:    now,
		IsAuthorized: authorized,
	}
	if err := s.accessLogs.Append(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to record access attempt: %w", err)
	}

	if s.metrics != nil {
		s.metrics.ObserveEvaluation(authorized)
	}

	if !authorized {
		if err := s.raiseBreachAlert(ctx, request, reason, entry.Timestamp); err != nil {
			return nil, err
		}
	}

	s.logger.WithFields(logrus.Fields{
		"user_id":    request.UserID,
		"patient_id": request.PatientID,
		"action":     request.Action,
		"authorized": authorized,
	}).Info("Access evaluated")

	return &models.AccessResult{
		Authorized: authorized,
		Reason:     reason,
	}, nil
}

// raiseBreachAlert persists the alert for a denied attempt and notifies the
// compliance recipient. The alert carries the same timestamp as the audit
// entry for the attempt.
func (s *AccessService) raiseBreachAlert(ctx context.Context, request *models.AccessRequest, reason string, at time.Time) error {
	alert := &models.Alert{
		UserID:    request.UserID,
		PatientID: request.PatientID,
		Message:   fmt.Sprintf("Unauthorized access by user %d: %s", request.UserID, reason),
		Reason:    reason,
		CreatedAt: at,
		Resolved:  false,
	}

	if err := s.alerts.Create(ctx, alert); err != nil {
		return fmt.Errorf("failed to create breach alert: %w", err)
	}

	if s.metrics != nil {
		s.metrics.IncrementBreachAlerts()
	}

	s.logger.WithFields(logrus.Fields{
		"alert_id":   alert.ID,
		"user_id":    request.UserID,
		"patient_id": request.PatientID,
	}).Warnf("[ALERT] %s", alert.Message)

	userName := fmt.Sprintf("User #%d", request.UserID)
	user, err := s.users.GetByID(ctx, request.UserID)
	if err != nil {
		return err
	}
	if user != nil {
		userName = user.Name
	}

	patientName := fmt.Sprintf("Patient #%d", request.PatientID)
	patient, err := s.patients.GetByID(ctx, request.PatientID)
	if err != nil {
		return err
	}
	if patient != nil {
		patientName = patient.Name
	}

	s.notifier.NotifyBreach(userName, patientName, reason)

	return nil
}
