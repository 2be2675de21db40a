package mocks

import (
	"github.com/stretchr/testify/mock"
)

// MockBreachNotifier is a mock implementation of service.BreachNotifier
type MockBreachNotifier struct {
	mock.Mock
}

func (m *MockBreachNotifier) NotifyBreach(userName, patientName, reason string) {
	m.Called(userName, patientName, reason)
}
