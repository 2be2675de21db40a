package dao

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/demohealth/privacy-governance-api/internal/database"
	"github.com/demohealth/privacy-governance-api/internal/models"
)

// PatientDAO handles database operations for patients
type PatientDAO struct {
	db *database.DB
}

// NewPatientDAO creates a new PatientDAO instance
func NewPatientDAO(db *database.DB) *PatientDAO {
	return &PatientDAO{db: db}
}

// Create inserts a new patient. The generated ID is written back into the model.
func (dao *PatientDAO) Create(ctx context.Context, patient *models.Patient) error {
	query := `INSERT INTO PG_PATIENT (NAME, DOB, RECORD_ID) VALUES (?, ?, ?)`

	result, err := dao.db.ExecContext(ctx, query, patient.Name, patient.DOB, patient.RecordID)
	if err != nil {
		return fmt.Errorf("failed to create patient: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted patient id: %w", err)
	}
	patient.ID = id

	return nil
}

// GetByID retrieves a patient by ID. Returns (nil, nil) when the patient does
// not exist; callers substitute display placeholders for missing patients.
func (dao *PatientDAO) GetByID(ctx context.Context, id int64) (*models.Patient, error) {
	query := `SELECT ID, NAME, DOB, RECORD_ID FROM PG_PATIENT WHERE ID = ?`

	var patient models.Patient
	err := dao.db.GetContext(ctx, &patient, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}

	return &patient, nil
}

// List retrieves all patients
func (dao *PatientDAO) List(ctx context.Context) ([]models.Patient, error) {
	query := `SELECT ID, NAME, DOB, RECORD_ID FROM PG_PATIENT ORDER BY ID`

	var patients []models.Patient
	err := dao.db.SelectContext(ctx, &patients, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}

	return patients, nil
}
