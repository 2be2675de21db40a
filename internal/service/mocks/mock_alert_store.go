package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/demohealth/privacy-governance-api/internal/models"
)

// MockAlertStore is a mock implementation of service.AlertStore
type MockAlertStore struct {
	mock.Mock
}

func (m *MockAlertStore) Create(ctx context.Context, alert *models.Alert) error {
	args := m.Called(ctx, alert)
	return args.Error(0)
}

func (m *MockAlertStore) GetByID(ctx context.Context, id int64) (*models.Alert, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Alert), args.Error(1)
}

func (m *MockAlertStore) MarkResolved(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAlertStore) List(ctx context.Context, limit int, unresolvedOnly bool) ([]models.Alert, error) {
	args := m.Called(ctx, limit, unresolvedOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Alert), args.Error(1)
}

func (m *MockAlertStore) CountOpen(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}
