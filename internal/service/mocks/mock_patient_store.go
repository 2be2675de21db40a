package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/demohealth/privacy-governance-api/internal/models"
)

// MockPatientStore is a mock implementation of service.PatientStore
type MockPatientStore struct {
	mock.Mock
}

func (m *MockPatientStore) Create(ctx context.Context, patient *models.Patient) error {
	args := m.Called(ctx, patient)
	return args.Error(0)
}

func (m *MockPatientStore) GetByID(ctx context.Context, id int64) (*models.Patient, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Patient), args.Error(1)
}

func (m *MockPatientStore) List(ctx context.Context) ([]models.Patient, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Patient), args.Error(1)
}
