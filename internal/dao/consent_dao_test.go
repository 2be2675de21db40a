package dao

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

// TestConsentDAOFindByUserAndPatient tests the effective-grant lookup
func TestConsentDAOFindByUserAndPatient(t *testing.T) {
	db, mock := newMockDB(t)
	dao := NewConsentDAO(db)

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"ID", "USER_ID", "PATIENT_ID", "CAN_VIEW", "CAN_EDIT", "CREATED_AT"}).
		AddRow(5, 1, 2, true, false, now)

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY CREATED_AT DESC, ID DESC")).
		WithArgs(int64(1), int64(2)).
		WillReturnRows(rows)

	consent, err := dao.FindByUserAndPatient(context.Background(), 1, 2)

	assert.NoError(t, err)
	assert.NotNil(t, consent)
	assert.True(t, consent.CanView)
	assert.False(t, consent.CanEdit)
}

// TestConsentDAOFindByUserAndPatientMissing tests that no grant yields (nil, nil)
func TestConsentDAOFindByUserAndPatientMissing(t *testing.T) {
	db, mock := newMockDB(t)
	dao := NewConsentDAO(db)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE USER_ID = ? AND PATIENT_ID = ?")).
		WithArgs(int64(9), int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"ID"}))

	consent, err := dao.FindByUserAndPatient(context.Background(), 9, 9)

	assert.NoError(t, err)
	assert.Nil(t, consent)
}
