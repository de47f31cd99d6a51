package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/pageza/recipe-api/backend/internal/service"
)

// MockAuthService is a mock implementation of service.IAuthService
type MockAuthService struct {
	mock.Mock
}

// Login mocks the Login method
func (m *MockAuthService) Login(username, password string) (string, error) {
	args := m.Called(username, password)
	return args.String(0), args.Error(1)
}

// Verify mocks the Verify method
func (m *MockAuthService) Verify(token string) service.Verification {
	args := m.Called(token)
	return args.Get(0).(service.Verification)
}
