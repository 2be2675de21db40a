package dao

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/demohealth/privacy-governance-api/internal/database"
	"github.com/demohealth/privacy-governance-api/internal/models"
)

// ConsentDAO handles database operations for consent grants
type ConsentDAO struct {
	db *database.DB
}

// NewConsentDAO creates a new ConsentDAO instance
func NewConsentDAO(db *database.DB) *ConsentDAO {
	return &ConsentDAO{db: db}
}

// Create inserts a new consent grant. The generated ID is written back into
// the model. Grants are never updated or deleted; permission changes are
// expressed by inserting a newer row for the same pair.
func (dao *ConsentDAO) Create(ctx context.Context, consent *models.Consent) error {
	query := `
		INSERT INTO PG_CONSENT (USER_ID, PATIENT_ID, CAN_VIEW, CAN_EDIT, CREATED_AT)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := dao.db.ExecContext(
		ctx,
		query,
		consent.UserID,
		consent.PatientID,
		consent.CanView,
		consent.CanEdit,
		consent.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create consent: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted consent id: %w", err)
	}
	consent.ID = id

	return nil
}

// FindByUserAndPatient retrieves the effective consent grant for a
// (user, patient) pair. The schema does not enforce uniqueness, so the most
// recently created grant wins. Returns (nil, nil) when no grant exists.
func (dao *ConsentDAO) FindByUserAndPatient(ctx context.Context, userID, patientID int64) (*models.Consent, error) {
	query := `
		SELECT ID, USER_ID, PATIENT_ID, CAN_VIEW, CAN_EDIT, CREATED_AT
		FROM PG_CONSENT
		WHERE USER_ID = ? AND PATIENT_ID = ?
		ORDER BY CREATED_AT DESC, ID DESC
		LIMIT 1
	`

	var consent models.Consent
	err := dao.db.GetContext(ctx, &consent, query, userID, patientID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find consent: %w", err)
	}

	return &consent, nil
}

// List retrieves all consent grants
func (dao *ConsentDAO) List(ctx context.Context) ([]models.Consent, error) {
	query := `
		SELECT ID, USER_ID, PATIENT_ID, CAN_VIEW, CAN_EDIT, CREATED_AT
		FROM PG_CONSENT
		ORDER BY CREATED_AT DESC, ID DESC
	`

	var consents []models.Consent
	err := dao.db.SelectContext(ctx, &consents, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list consents: %w", err)
	}

	return consents, nil
}
