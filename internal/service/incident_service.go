package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/demohealth/privacy-governance-api/internal/models"
	"github.com/demohealth/privacy-governance-api/pkg/anonymize"
	"github.com/demohealth/privacy-governance-api/pkg/utils"
)

// correlationWindow is the fixed half-width of the time window used to pair
// an alert with its originating denied access attempt.
const correlationWindow = 5 * time.Minute

// IncidentService correlates alerts with the audit trail and renders
// human-readable incident narratives. Correlation is a best-effort time
// heuristic, not a foreign-key join: several denials clustered within ten
// minutes can be mis-paired.
type IncidentService struct {
	alerts     AlertStore
	accessLogs AccessLogStore
	users      UserStore
	patients   PatientStore
	logger     *logrus.Logger
}

// NewIncidentService creates a new incident service instance
func NewIncidentService(
	alerts AlertStore,
	accessLogs AccessLogStore,
	users UserStore,
	patients PatientStore,
	logger *logrus.Logger,
) *IncidentService {
	return &IncidentService{
		alerts:     alerts,
		accessLogs: accessLogs,
		users:      users,
		patients:   patients,
		logger:     logger,
	}
}

// Summaries renders a narrative for each of the most recent alerts. Each
// alert is paired with the latest unauthorized log entry within five minutes
// of its creation; alerts without a matching entry fall back to a generic
// sentence built from the alert itself.
func (s *IncidentService) Summaries(ctx context.Context, limit int) ([]models.IncidentSummary, error) {
	if limit <= 0 {
		limit = 10
	}

	alerts, err := s.alerts.List(ctx, limit, false)
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}

	summaries := make([]models.IncidentSummary, 0, len(alerts))
	for _, alert := range alerts {
		summary, err := s.summarize(ctx, &alert)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, models.IncidentSummary{
			CreatedAt: alert.CreatedAt,
			Summary:   summary,
			Resolved:  alert.Resolved,
		})
	}

	return summaries, nil
}

func (s *IncidentService) summarize(ctx context.Context, alert *models.Alert) (string, error) {
	from := alert.CreatedAt.Add(-correlationWindow)
	to := alert.CreatedAt.Add(correlationWindow)

	entry, err := s.accessLogs.FindLatestUnauthorizedBetween(ctx, from, to)
	if err != nil {
		return "", err
	}

	if entry == nil {
		return fmt.Sprintf("Alert at %s: %s", utils.FormatMinuteUTC(alert.CreatedAt), alert.Message), nil
	}

	userName := fmt.Sprintf("User #%d", entry.UserID)
	userRole := "user"
	user, err := s.users.GetByID(ctx, entry.UserID)
	if err != nil {
		return "", err
	}
	if user != nil {
		userName = user.Name
		userRole = user.Role
	}

	patientName := fmt.Sprintf("Patient #%d", entry.PatientID)
	patient, err := s.patients.GetByID(ctx, entry.PatientID)
	if err != nil {
		return "", err
	}
	if patient != nil {
		patientName = patient.Name
	}

	reason := alert.Reason
	if reason == "" {
		// Manual alerts carry no structured reason; derive a display string
		// from the message the way the legacy dashboard did.
		reason = strings.Replace(alert.Message, "Unauthorized access by", "Reason for", 1)
	}

	return anonymize.SummarizeIncident(userName, userRole, patientName, entry.Action, reason, entry.Timestamp), nil
}
