package dao

import (
	"context"
	"io"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/demohealth/privacy-governance-api/internal/database"
	"github.com/demohealth/privacy-governance-api/internal/models"
)

func newMockDB(t *testing.T) (*database.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return database.New(sqlx.NewDb(mockDB, "sqlmock"), logger), mock
}

// TestAlertDAOCreate tests alert insertion and ID write-back
func TestAlertDAOCreate(t *testing.T) {
	db, mock := newMockDB(t)
	dao := NewAlertDAO(db)

	now := time.Now().UTC()
	alert := &models.Alert{
		UserID:    2,
		PatientID: 1,
		Message:   "Unauthorized access by user 2: User lacks required permission.",
		Reason:    models.ReasonMissingPermission,
		CreatedAt: now,
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO PG_ALERT")).
		WithArgs(alert.UserID, alert.PatientID, alert.Message, alert.Reason, alert.CreatedAt, alert.Resolved).
		WillReturnResult(sqlmock.NewResult(7, 1))

	err := dao.Create(context.Background(), alert)

	assert.NoError(t, err)
	assert.Equal(t, int64(7), alert.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestAlertDAOGetByID tests alert retrieval
func TestAlertDAOGetByID(t *testing.T) {
	db, mock := newMockDB(t)
	dao := NewAlertDAO(db)

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"ID", "USER_ID", "PATIENT_ID", "MESSAGE", "REASON", "CREATED_AT", "RESOLVED"}).
		AddRow(7, 2, 1, "msg", "", now, false)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT ID, USER_ID, PATIENT_ID, MESSAGE, REASON, CREATED_AT, RESOLVED")).
		WithArgs(int64(7)).
		WillReturnRows(rows)

	alert, err := dao.GetByID(context.Background(), 7)

	assert.NoError(t, err)
	assert.Equal(t, int64(7), alert.ID)
	assert.Equal(t, int64(2), alert.UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestAlertDAOGetByIDNotFound tests the unknown-id error mapping
func TestAlertDAOGetByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	dao := NewAlertDAO(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT ID, USER_ID, PATIENT_ID, MESSAGE, REASON, CREATED_AT, RESOLVED")).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"ID"}))

	alert, err := dao.GetByID(context.Background(), 99)

	assert.Nil(t, alert)
	assert.ErrorIs(t, err, ErrAlertNotFound)
}

// TestAlertDAOMarkResolved tests the resolve mutation
func TestAlertDAOMarkResolved(t *testing.T) {
	db, mock := newMockDB(t)
	dao := NewAlertDAO(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE PG_ALERT SET RESOLVED = TRUE WHERE ID = ?")).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := dao.MarkResolved(context.Background(), 7)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestAlertDAOListUnresolvedOnly tests the unresolved filter and default limit
func TestAlertDAOListUnresolvedOnly(t *testing.T) {
	db, mock := newMockDB(t)
	dao := NewAlertDAO(db)

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"ID", "USER_ID", "PATIENT_ID", "MESSAGE", "REASON", "CREATED_AT", "RESOLVED"}).
		AddRow(8, 3, 2, "newer", "", now, false).
		AddRow(7, 2, 1, "older", "", now.Add(-time.Hour), false)

	mock.ExpectQuery("WHERE RESOLVED = FALSE").
		WithArgs(50).
		WillReturnRows(rows)

	alerts, err := dao.List(context.Background(), 0, true)

	assert.NoError(t, err)
	assert.Len(t, alerts, 2)
	assert.Equal(t, int64(8), alerts[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestAlertDAOCountOpen tests counting unresolved alerts
func TestAlertDAOCountOpen(t *testing.T) {
	db, mock := newMockDB(t)
	dao := NewAlertDAO(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM PG_ALERT WHERE RESOLVED = FALSE")).
		WillReturnRows(sqlmock.NewRows([]string{"COUNT(*)"}).AddRow(3))

	count, err := dao.CountOpen(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 3, count)
}
