package dao

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/demohealth/privacy-governance-api/internal/database"
	"github.com/demohealth/privacy-governance-api/internal/models"
)

// AccessLogDAO handles database operations for the append-only audit trail.
// Entries are never updated or deleted.
type AccessLogDAO struct {
	db *database.DB
}

// NewAccessLogDAO creates a new AccessLogDAO instance
func NewAccessLogDAO(db *database.DB) *AccessLogDAO {
	return &AccessLogDAO{db: db}
}

// Append inserts a new access log entry. The generated ID is written back
// into the model.
func (dao *AccessLogDAO) Append(ctx context.Context, entry *models.AccessLog) error {
	query := `
		INSERT INTO PG_ACCESS_LOG (USER_ID, PATIENT_ID, ACTION, TIMESTAMP, IS_AUTHORIZED)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := dao.db.ExecContext(
		ctx,
		query,
		entry.UserID,
		entry.PatientID,
		entry.Action,
		entry.Timestamp,
		entry.IsAuthorized,
	)
	if err != nil {
		return fmt.Errorf("failed to append access log: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted access log id: %w", err)
	}
	entry.ID = id

	return nil
}

// List retrieves access log entries matching the filter, most recent first
func (dao *AccessLogDAO) List(ctx context.Context, filter *models.AccessLogFilter) ([]models.AccessLog, error) {
	conditions := []string{"TIMESTAMP >= ?"}
	args := []interface{}{filter.Since}

	if filter.UserID != nil {
		conditions = append(conditions, "USER_ID = ?")
		args = append(args, *filter.UserID)
	}

	if filter.PatientID != nil {
		conditions = append(conditions, "PATIENT_ID = ?")
		args = append(args, *filter.PatientID)
	}

	if filter.Action != "" {
		conditions = append(conditions, "ACTION = ?")
		args = append(args, filter.Action)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	args = append(args, limit)

	query := fmt.Sprintf(`
		SELECT ID, USER_ID, PATIENT_ID, ACTION, TIMESTAMP, IS_AUTHORIZED
		FROM PG_ACCESS_LOG
		WHERE %s
		ORDER BY TIMESTAMP DESC, ID DESC
		LIMIT ?
	`, strings.Join(conditions, " AND "))

	var logs []models.AccessLog
	err := dao.db.SelectContext(ctx, &logs, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list access logs: %w", err)
	}

	return logs, nil
}

// ListSince retrieves every access log entry at or after the cutoff, most
// recent first. Used by anonymized exports.
func (dao *AccessLogDAO) ListSince(ctx context.Context, since time.Time) ([]models.AccessLog, error) {
	query := `
		SELECT ID, USER_ID, PATIENT_ID, ACTION, TIMESTAMP, IS_AUTHORIZED
		FROM PG_ACCESS_LOG
		WHERE TIMESTAMP >= ?
		ORDER BY TIMESTAMP DESC, ID DESC
	`

	var logs []models.AccessLog
	err := dao.db.SelectContext(ctx, &logs, query, since)
	if err != nil {
		return nil, fmt.Errorf("failed to list access logs: %w", err)
	}

	return logs, nil
}

// FindLatestUnauthorizedBetween retrieves the most recent unauthorized entry
// whose timestamp falls inside [from, to], ties broken by latest timestamp
// then highest id. Returns (nil, nil) when no entry matches.
func (dao *AccessLogDAO) FindLatestUnauthorizedBetween(ctx context.Context, from, to time.Time) (*models.AccessLog, error) {
	query := `
		SELECT ID, USER_ID, PATIENT_ID, ACTION, TIMESTAMP, IS_AUTHORIZED
		FROM PG_ACCESS_LOG
		WHERE TIMESTAMP >= ? AND TIMESTAMP <= ? AND IS_AUTHORIZED = FALSE
		ORDER BY TIMESTAMP DESC, ID DESC
		LIMIT 1
	`

	var entry models.AccessLog
	err := dao.db.GetContext(ctx, &entry, query, from, to)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find unauthorized access log: %w", err)
	}

	return &entry, nil
}

// CountSince counts entries at or after the cutoff. When authorized is
// non-nil the count is restricted to that outcome.
func (dao *AccessLogDAO) CountSince(ctx context.Context, since time.Time, authorized *bool) (int, error) {
	query := `SELECT COUNT(*) FROM PG_ACCESS_LOG WHERE TIMESTAMP >= ?`
	args := []interface{}{since}

	if authorized != nil {
		query += ` AND IS_AUTHORIZED = ?`
		args = append(args, *authorized)
	}

	var count int
	err := dao.db.GetContext(ctx, &count, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to count access logs: %w", err)
	}

	return count, nil
}

// SeriesSince aggregates entries at or after the cutoff into hour-truncated
// buckets of authorized and breach counts.
func (dao *AccessLogDAO) SeriesSince(ctx context.Context, since time.Time) ([]models.MetricsBucket, error) {
	query := `
		SELECT DATE_FORMAT(TIMESTAMP, '%Y-%m-%d %H:00:00') AS BUCKET,
		       CAST(SUM(CASE WHEN IS_AUTHORIZED THEN 1 ELSE 0 END) AS SIGNED) AS AUTHORIZED,
		       CAST(SUM(CASE WHEN IS_AUTHORIZED THEN 0 ELSE 1 END) AS SIGNED) AS BREACHES
		FROM PG_ACCESS_LOG
		WHERE TIMESTAMP >= ?
		GROUP BY BUCKET
		ORDER BY BUCKET
	`

	var series []models.MetricsBucket
	err := dao.db.SelectContext(ctx, &series, query, since)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate access log series: %w", err)
	}

	return series, nil
}
