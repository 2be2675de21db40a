package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/demohealth/privacy-governance-api/internal/models"
)

// MockConsentStore is a mock implementation of service.ConsentStore
type MockConsentStore struct {
	mock.Mock
}

func (m *MockConsentStore) Create(ctx context.Context, consent *models.Consent) error {
	args := m.Called(ctx, consent)
	return args.Error(0)
}

func (m *MockConsentStore) FindByUserAndPatient(ctx context.Context, userID, patientID int64) (*models.Consent, error) {
	args := m.Called(ctx, userID, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Consent), args.Error(1)
}

func (m *MockConsentStore) List(ctx context.Context) ([]models.Consent, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Consent), args.Error(1)
}
