package mocks

import (
	"github.com/undead-bacteria/ecommerce-api-men/domain"
)

// MockTokenService implements domain.TokenService for testing
type MockTokenService struct {
	IssueFunc  func(purpose domain.TokenPurpose, claims domain.Claims) (string, error)
	VerifyFunc func(purpose domain.TokenPurpose, token string) (domain.Claims, error)
}

// NewMockTokenService creates a new MockTokenService
func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

func (m *MockTokenService) Issue(purpose domain.TokenPurpose, claims domain.Claims) (string, error) {
	if m.IssueFunc != nil {
		return m.IssueFunc(purpose, claims)
	}
	return "mock_" + string(purpose) + "_token", nil
}

func (m *MockTokenService) Verify(purpose domain.TokenPurpose, token string) (domain.Claims, error) {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(purpose, token)
	}
	return domain.Claims{}, nil
}
