package dao

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/demohealth/privacy-governance-api/internal/database"
	"github.com/demohealth/privacy-governance-api/internal/models"
)

// AlertDAO handles database operations for breach alerts. Alerts are never
// deleted; the only permitted mutation is marking one resolved.
type AlertDAO struct {
	db *database.DB
}

// NewAlertDAO creates a new AlertDAO instance
func NewAlertDAO(db *database.DB) *AlertDAO {
	return &AlertDAO{db: db}
}

// Create inserts a new alert. The generated ID is written back into the model.
func (dao *AlertDAO) Create(ctx context.Context, alert *models.Alert) error {
	query := `
		INSERT INTO PG_ALERT (USER_ID, PATIENT_ID, MESSAGE, REASON, CREATED_AT, RESOLVED)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := dao.db.ExecContext(
		ctx,
		query,
		alert.UserID,
		alert.PatientID,
		alert.Message,
		alert.Reason,
		alert.CreatedAt,
		alert.Resolved,
	)
	if err != nil {
		return fmt.Errorf("failed to create alert: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted alert id: %w", err)
	}
	alert.ID = id

	return nil
}

// GetByID retrieves an alert by ID
func (dao *AlertDAO) GetByID(ctx context.Context, id int64) (*models.Alert, error) {
	query := `
		SELECT ID, USER_ID, PATIENT_ID, MESSAGE, REASON, CREATED_AT, RESOLVED
		FROM PG_ALERT
		WHERE ID = ?
	`

	var alert models.Alert
	err := dao.db.GetContext(ctx, &alert, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrAlertNotFound
		}
		return nil, fmt.Errorf("failed to get alert: %w", err)
	}

	return &alert, nil
}

// MarkResolved sets RESOLVED on an alert. Marking an already-resolved alert
// is a no-op; MySQL reports zero affected rows for unchanged values, so
// existence is checked separately by the caller.
func (dao *AlertDAO) MarkResolved(ctx context.Context, id int64) error {
	query := `UPDATE PG_ALERT SET RESOLVED = TRUE WHERE ID = ?`

	_, err := dao.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to resolve alert: %w", err)
	}

	return nil
}

// List retrieves the most recent alerts, optionally restricted to unresolved
func (dao *AlertDAO) List(ctx context.Context, limit int, unresolvedOnly bool) ([]models.Alert, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT ID, USER_ID, PATIENT_ID, MESSAGE, REASON, CREATED_AT, RESOLVED
		FROM PG_ALERT
	`
	var args []interface{}

	if unresolvedOnly {
		query += ` WHERE RESOLVED = FALSE`
	}

	query += ` ORDER BY CREATED_AT DESC, ID DESC LIMIT ?`
	args = append(args, limit)

	var alerts []models.Alert
	err := dao.db.SelectContext(ctx, &alerts, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}

	return alerts, nil
}

// CountOpen counts unresolved alerts
func (dao *AlertDAO) CountOpen(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM PG_ALERT WHERE RESOLVED = FALSE`

	var count int
	err := dao.db.GetContext(ctx, &count, query)
	if err != nil {
		return 0, fmt.Errorf("failed to count open alerts: %w", err)
	}

	return count, nil
}
