package mocks

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/undead-bacteria/ecommerce-api-men/domain"
)

// MockUserRepository implements domain.UserRepository for testing
type MockUserRepository struct {
	CreateFunc        func(ctx context.Context, user *domain.User) error
	FindByEmailFunc   func(ctx context.Context, email string) (*domain.User, error)
	FindByIDFunc      func(ctx context.Context, id bson.ObjectID) (*domain.User, error)
	ExistsByEmailFunc func(ctx context.Context, email string) (bool, error)
	ListFunc          func(ctx context.Context, filter domain.Filter, opts domain.ListOptions) ([]domain.User, error)
	CountFunc         func(ctx context.Context, filter domain.Filter) (int64, error)
	UpdateByIDFunc    func(ctx context.Context, id bson.ObjectID, set domain.Filter) (*domain.User, error)
	DeleteByIDFunc    func(ctx context.Context, id bson.ObjectID) (*domain.User, error)
}

// NewMockUserRepository creates a new MockUserRepository
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *MockUserRepository) FindByID(ctx context.Context, id bson.ObjectID) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.ExistsByEmailFunc != nil {
		return m.ExistsByEmailFunc(ctx, email)
	}
	return false, nil
}

func (m *MockUserRepository) List(ctx context.Context, filter domain.Filter, opts domain.ListOptions) ([]domain.User, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter, opts)
	}
	return nil, nil
}

func (m *MockUserRepository) Count(ctx context.Context, filter domain.Filter) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx, filter)
	}
	return 0, nil
}

func (m *MockUserRepository) UpdateByID(ctx context.Context, id bson.ObjectID, set domain.Filter) (*domain.User, error) {
	if m.UpdateByIDFunc != nil {
		return m.UpdateByIDFunc(ctx, id, set)
	}
	return nil, nil
}

func (m *MockUserRepository) DeleteByID(ctx context.Context, id bson.ObjectID) (*domain.User, error) {
	if m.DeleteByIDFunc != nil {
		return m.DeleteByIDFunc(ctx, id)
	}
	return nil, nil
}
