package mocks

import (
	"context"

	"github.com/undead-bacteria/ecommerce-api-men/domain"
)

// MockAuthService implements domain.AuthService for testing
type MockAuthService struct {
	RegisterFunc        func(ctx context.Context, input domain.RegisterInput) (string, error)
	ActivateFunc        func(ctx context.Context, verifyToken string) (*domain.User, error)
	LoginFunc           func(ctx context.Context, email, password string) (*domain.AuthResult, error)
	RefreshFunc         func(ctx context.Context, refreshToken string) (string, error)
	ForgotPasswordFunc  func(ctx context.Context, email string) (string, error)
	ResetPasswordFunc   func(ctx context.Context, resetToken, newPassword string) error
	ResolveIdentityFunc func(ctx context.Context, accessToken string) (*domain.User, error)
}

// NewMockAuthService creates a new MockAuthService
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

func (m *MockAuthService) Register(ctx context.Context, input domain.RegisterInput) (string, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, input)
	}
	return "mock_verify_token", nil
}

func (m *MockAuthService) Activate(ctx context.Context, verifyToken string) (*domain.User, error) {
	if m.ActivateFunc != nil {
		return m.ActivateFunc(ctx, verifyToken)
	}
	return &domain.User{Role: domain.RoleUser, Active: true}, nil
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return &domain.AuthResult{
		User:         &domain.User{Email: email, Role: domain.RoleUser, Active: true},
		AccessToken:  "mock_access_token",
		RefreshToken: "mock_refresh_token",
	}, nil
}

func (m *MockAuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	if m.RefreshFunc != nil {
		return m.RefreshFunc(ctx, refreshToken)
	}
	return "mock_access_token", nil
}

func (m *MockAuthService) ForgotPassword(ctx context.Context, email string) (string, error) {
	if m.ForgotPasswordFunc != nil {
		return m.ForgotPasswordFunc(ctx, email)
	}
	return "mock_reset_token", nil
}

func (m *MockAuthService) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	if m.ResetPasswordFunc != nil {
		return m.ResetPasswordFunc(ctx, resetToken, newPassword)
	}
	return nil
}

func (m *MockAuthService) ResolveIdentity(ctx context.Context, accessToken string) (*domain.User, error) {
	if m.ResolveIdentityFunc != nil {
		return m.ResolveIdentityFunc(ctx, accessToken)
	}
	return nil, domain.Unauthenticated("Please login.")
}
