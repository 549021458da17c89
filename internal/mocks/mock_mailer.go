package mocks

import "context"

// MockMailer implements domain.Mailer for testing
type MockMailer struct {
	SendFunc func(ctx context.Context, to, subject, token string) error

	// Sent records every delivery when SendFunc is nil
	Sent []MockMail
}

// MockMail is one recorded delivery
type MockMail struct {
	To      string
	Subject string
	Token   string
}

// NewMockMailer creates a new MockMailer
func NewMockMailer() *MockMailer {
	return &MockMailer{}
}

func (m *MockMailer) Send(ctx context.Context, to, subject, token string) error {
	if m.SendFunc != nil {
		return m.SendFunc(ctx, to, subject, token)
	}
	m.Sent = append(m.Sent, MockMail{To: to, Subject: subject, Token: token})
	return nil
}
