package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/demohealth/privacy-governance-api/internal/models"
	"github.com/demohealth/privacy-governance-api/pkg/utils"
)

// ConsentService handles business logic for consent grants
type ConsentService struct {
	consents ConsentStore
	users    UserStore
	patients PatientStore
	logger   *logrus.Logger
}

// NewConsentService creates a new consent service instance
func NewConsentService(consents ConsentStore, users UserStore, patients PatientStore, logger *logrus.Logger) *ConsentService {
	return &ConsentService{
		consents: consents,
		users:    users,
		patients: patients,
		logger:   logger,
	}
}

// CreateConsent creates a new consent grant. Grants are append-only; a newer
// grant for the same pair supersedes older ones at lookup time.
func (s *ConsentService) CreateConsent(ctx context.Context, request *models.ConsentCreateRequest) (*models.Consent, error) {
	if err := utils.ValidateID("user_id", request.UserID); err != nil {
		return nil, err
	}
	if err := utils.ValidateID("patient_id", request.PatientID); err != nil {
		return nil, err
	}

	consent := &models.Consent{
		UserID:    request.UserID,
		PatientID: request.PatientID,
		CanView:   request.CanView,
		CanEdit:   request.CanEdit,
		CreatedAt: utils.NowUTC(),
	}

	if err := s.consents.Create(ctx, consent); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"consent_id": consent.ID,
		"user_id":    consent.UserID,
		"patient_id": consent.PatientID,
		"can_view":   consent.CanView,
		"can_edit":   consent.CanEdit,
	}).Info("Consent grant created")

	return consent, nil
}

// ListConsents retrieves all consent grants
func (s *ConsentService) ListConsents(ctx context.Context) ([]models.Consent, error) {
	consents, err := s.consents.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list consents: %w", err)
	}
	if consents == nil {
		consents = []models.Consent{}
	}
	return consents, nil
}

// ConsentMatrix builds the user-by-patient permission grid. Cells without a
// grant report no permissions; duplicate grants resolve to the most recent.
func (s *ConsentService) ConsentMatrix(ctx context.Context) ([]models.ConsentMatrixEntry, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	patients, err := s.patients.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}

	consents, err := s.consents.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list consents: %w", err)
	}

	// List is ordered newest first, so the first grant seen per pair is the
	// effective one.
	type pair struct{ userID, patientID int64 }
	effective := make(map[pair]*models.Consent, len(consents))
	for i := range consents {
		c := &consents[i]
		key := pair{c.UserID, c.PatientID}
		if _, seen := effective[key]; !seen {
			effective[key] = c
		}
	}

	matrix := make([]models.ConsentMatrixEntry, 0, len(users)*len(patients))
	for _, u := range users {
		for _, p := range patients {
			entry := models.ConsentMatrixEntry{
				UserID:      u.ID,
				UserName:    u.Name,
				Role:        u.Role,
				PatientID:   p.ID,
				PatientName: p.Name,
			}
			if c, ok := effective[pair{u.ID, p.ID}]; ok {
				entry.CanView = c.CanView
				entry.CanEdit = c.CanEdit
			}
			matrix = append(matrix, entry)
		}
	}

	return matrix, nil
}
