package service

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/demohealth/privacy-governance-api/internal/models"
	"github.com/demohealth/privacy-governance-api/internal/service/mocks"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

type accessServiceFixture struct {
	consents   *mocks.MockConsentStore
	accessLogs *mocks.MockAccessLogStore
	alerts     *mocks.MockAlertStore
	users      *mocks.MockUserStore
	patients   *mocks.MockPatientStore
	notifier   *mocks.MockBreachNotifier
	service    *AccessService
}

func newAccessServiceFixture() *accessServiceFixture {
	f := &accessServiceFixture{
		consents:   new(mocks.MockConsentStore),
		accessLogs: new(mocks.MockAccessLogStore),
		alerts:     new(mocks.MockAlertStore),
		users:      new(mocks.MockUserStore),
		patients:   new(mocks.MockPatientStore),
		notifier:   new(mocks.MockBreachNotifier),
	}
	f.service = NewAccessService(
		f.consents, f.accessLogs, f.alerts, f.users, f.patients, f.notifier, nil, newTestLogger(),
	)
	return f
}

// TestEvaluateAccessAuthorizedView tests that a view grant authorizes a view request
func TestEvaluateAccessAuthorizedView(t *testing.T) {
	f := newAccessServiceFixture()

	f.consents.On("FindByUserAndPatient", mock.Anything, int64(1), int64(2)).
		Return(&models.Consent{UserID: 1, PatientID: 2, CanView: true, CanEdit: false}, nil)
	f.accessLogs.On("Append", mock.Anything, mock.MatchedBy(func(entry *models.AccessLog) bool {
		return entry.UserID == 1 && entry.PatientID == 2 && entry.Action == models.ActionView && entry.IsAuthorized
	})).Return(nil)

	result, err := f.service.EvaluateAccess(context.Background(), &models.AccessRequest{
		UserID:    1,
		PatientID: 2,
		Action:    models.ActionView,
	})

	assert.NoError(t, err)
	assert.True(t, result.Authorized)
	assert.Empty(t, result.Reason)
	f.accessLogs.AssertNumberOfCalls(t, "Append", 1)
	f.alerts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	f.notifier.AssertNotCalled(t, "NotifyBreach", mock.Anything, mock.Anything, mock.Anything)
}

// TestEvaluateAccessNoConsent tests denial when no grant exists for the pair
func TestEvaluateAccessNoConsent(t *testing.T) {
	f := newAccessServiceFixture()

	f.consents.On("FindByUserAndPatient", mock.Anything, int64(3), int64(2)).Return(nil, nil)
	f.accessLogs.On("Append", mock.Anything, mock.MatchedBy(func(entry *models.AccessLog) bool {
		return !entry.IsAuthorized
	})).Return(nil)
	f.alerts.On("Create", mock.Anything, mock.MatchedBy(func(alert *models.Alert) bool {
		return alert.UserID == 3 && alert.PatientID == 2 &&
			alert.Message == "Unauthorized access by user 3: No consent exists for this user and patient." &&
			alert.Reason == models.ReasonNoConsent && !alert.Resolved
	})).Return(nil)
	f.users.On("GetByID", mock.Anything, int64(3)).
		Return(&models.User{ID: 3, Name: "Admin Omar", Role: "admin"}, nil)
	f.patients.On("GetByID", mock.Anything, int64(2)).
		Return(&models.Patient{ID: 2, Name: "John Doe"}, nil)
	f.notifier.On("NotifyBreach", "Admin Omar", "John Doe", models.ReasonNoConsent).Return()

	result, err := f.service.EvaluateAccess(context.Background(), &models.AccessRequest{
		UserID:    3,
		PatientID: 2,
		Action:    models.ActionView,
	})

	assert.NoError(t, err)
	assert.False(t, result.Authorized)
	assert.Equal(t, models.ReasonNoConsent, result.Reason)
	f.accessLogs.AssertNumberOfCalls(t, "Append", 1)
	f.alerts.AssertNumberOfCalls(t, "Create", 1)
	f.notifier.AssertExpectations(t)
}

// TestEvaluateAccessMissingPermission tests denial when the grant lacks the requested action
func TestEvaluateAccessMissingPermission(t *testing.T) {
	f := newAccessServiceFixture()

	f.consents.On("FindByUserAndPatient", mock.Anything, int64(2), int64(1)).
		Return(&models.Consent{UserID: 2, PatientID: 1, CanView: true, CanEdit: false}, nil)
	f.accessLogs.On("Append", mock.Anything, mock.Anything).Return(nil)
	f.alerts.On("Create", mock.Anything, mock.MatchedBy(func(alert *models.Alert) bool {
		return alert.Reason == models.ReasonMissingPermission
	})).Return(nil)
	f.users.On("GetByID", mock.Anything, int64(2)).Return(nil, nil)
	f.patients.On("GetByID", mock.Anything, int64(1)).Return(nil, nil)
	f.notifier.On("NotifyBreach", "User #2", "Patient #1", models.ReasonMissingPermission).Return()

	result, err := f.service.EvaluateAccess(context.Background(), &models.AccessRequest{
		UserID:    2,
		PatientID: 1,
		Action:    models.ActionEdit,
	})

	assert.NoError(t, err)
	assert.False(t, result.Authorized)
	assert.Equal(t, models.ReasonMissingPermission, result.Reason)
	f.notifier.AssertExpectations(t)
}

// TestEvaluateAccessExportAlwaysDenied tests that export is denied even under a full grant
func TestEvaluateAccessExportAlwaysDenied(t *testing.T) {
	f := newAccessServiceFixture()

	f.consents.On("FindByUserAndPatient", mock.Anything, int64(1), int64(1)).
		Return(&models.Consent{UserID: 1, PatientID: 1, CanView: true, CanEdit: true}, nil)
	f.accessLogs.On("Append", mock.Anything, mock.Anything).Return(nil)
	f.alerts.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.users.On("GetByID", mock.Anything, int64(1)).Return(nil, nil)
	f.patients.On("GetByID", mock.Anything, int64(1)).Return(nil, nil)
	f.notifier.On("NotifyBreach", mock.Anything, mock.Anything, models.ReasonMissingPermission).Return()

	result, err := f.service.EvaluateAccess(context.Background(), &models.AccessRequest{
		UserID:    1,
		PatientID: 1,
		Action:    models.ActionExport,
	})

	assert.NoError(t, err)
	assert.False(t, result.Authorized)
	assert.Equal(t, models.ReasonMissingPermission, result.Reason)
}

// TestEvaluateAccessLogFailure tests that a log write failure aborts before any alert
func TestEvaluateAccessLogFailure(t *testing.T) {
	f := newAccessServiceFixture()

	f.consents.On("FindByUserAndPatient", mock.Anything, int64(3), int64(2)).Return(nil, nil)
	f.accessLogs.On("Append", mock.Anything, mock.Anything).Return(errors.New("connection lost"))

	result, err := f.service.EvaluateAccess(context.Background(), &models.AccessRequest{
		UserID:    3,
		PatientID: 2,
		Action:    models.ActionView,
	})

	assert.Error(t, err)
	assert.Nil(t, result)
	f.alerts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	f.notifier.AssertNotCalled(t, "NotifyBreach", mock.Anything, mock.Anything, mock.Anything)
}

// TestEvaluateAccessInvalidRequest tests validation of the request payload
func TestEvaluateAccessInvalidRequest(t *testing.T) {
	f := newAccessServiceFixture()

	result, err := f.service.EvaluateAccess(context.Background(), &models.AccessRequest{
		UserID:    0,
		PatientID: 2,
		Action:    models.ActionView,
	})

	assert.Error(t, err)
	assert.Nil(t, result)
	f.accessLogs.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}
