package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/demohealth/privacy-governance-api/internal/models"
)

// MockAccessLogStore is a mock implementation of service.AccessLogStore
type MockAccessLogStore struct {
	mock.Mock
}

func (m *MockAccessLogStore) Append(ctx context.Context, entry *models.AccessLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockAccessLogStore) List(ctx context.Context, filter *models.AccessLogFilter) ([]models.AccessLog, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.AccessLog), args.Error(1)
}

func (m *MockAccessLogStore) ListSince(ctx context.Context, since time.Time) ([]models.AccessLog, error) {
	args := m.Called(ctx, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.AccessLog), args.Error(1)
}

func (m *MockAccessLogStore) FindLatestUnauthorizedBetween(ctx context.Context, from, to time.Time) (*models.AccessLog, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AccessLog), args.Error(1)
}

func (m *MockAccessLogStore) CountSince(ctx context.Context, since time.Time, authorized *bool) (int, error) {
	args := m.Called(ctx, since, authorized)
	return args.Int(0), args.Error(1)
}

func (m *MockAccessLogStore) SeriesSince(ctx context.Context, since time.Time) ([]models.MetricsBucket, error) {
	args := m.Called(ctx, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MetricsBucket), args.Error(1)
}
