package mocks

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/undead-bacteria/ecommerce-api-men/domain"
)

// MockProductRepository implements domain.ProductRepository for testing
type MockProductRepository struct {
	CreateFunc         func(ctx context.Context, product *domain.Product) error
	FindBySlugFunc     func(ctx context.Context, slug string) (*domain.Product, error)
	ExistsByIDFunc     func(ctx context.Context, id bson.ObjectID) (bool, error)
	ListFunc           func(ctx context.Context, filter domain.Filter, opts domain.ListOptions) ([]domain.Product, error)
	CountFunc          func(ctx context.Context, filter domain.Filter) (int64, error)
	UpdateByIDFunc     func(ctx context.Context, id bson.ObjectID, set domain.Filter) (*domain.Product, error)
	DeleteByIDFunc     func(ctx context.Context, id bson.ObjectID) (*domain.Product, error)
	DeleteManyByIDFunc func(ctx context.Context, ids []bson.ObjectID) (int64, error)
}

// NewMockProductRepository creates a new MockProductRepository
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{}
}

func (m *MockProductRepository) Create(ctx context.Context, product *domain.Product) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, product)
	}
	return nil
}

func (m *MockProductRepository) FindBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	if m.FindBySlugFunc != nil {
		return m.FindBySlugFunc(ctx, slug)
	}
	return nil, nil
}

func (m *MockProductRepository) ExistsByID(ctx context.Context, id bson.ObjectID) (bool, error) {
	if m.ExistsByIDFunc != nil {
		return m.ExistsByIDFunc(ctx, id)
	}
	return false, nil
}

func (m *MockProductRepository) List(ctx context.Context, filter domain.Filter, opts domain.ListOptions) ([]domain.Product, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter, opts)
	}
	return nil, nil
}

func (m *MockProductRepository) Count(ctx context.Context, filter domain.Filter) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx, filter)
	}
	return 0, nil
}

func (m *MockProductRepository) UpdateByID(ctx context.Context, id bson.ObjectID, set domain.Filter) (*domain.Product, error) {
	if m.UpdateByIDFunc != nil {
		return m.UpdateByIDFunc(ctx, id, set)
	}
	return nil, nil
}

func (m *MockProductRepository) DeleteByID(ctx context.Context, id bson.ObjectID) (*domain.Product, error) {
	if m.DeleteByIDFunc != nil {
		return m.DeleteByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockProductRepository) DeleteManyByID(ctx context.Context, ids []bson.ObjectID) (int64, error) {
	if m.DeleteManyByIDFunc != nil {
		return m.DeleteManyByIDFunc(ctx, ids)
	}
	return int64(len(ids)), nil
}
