package mocks

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/undead-bacteria/ecommerce-api-men/domain"
)

// MockCatalogRepository implements the category, brand, and tag repository
// interfaces for testing; instantiate it with the entity type under test.
type MockCatalogRepository[T any] struct {
	CreateFunc         func(ctx context.Context, doc *T) error
	FindBySlugFunc     func(ctx context.Context, slug string) (*T, error)
	ExistsByIDFunc     func(ctx context.Context, id bson.ObjectID) (bool, error)
	ExistsByNameFunc   func(ctx context.Context, name string) (bool, error)
	ListFunc           func(ctx context.Context, filter domain.Filter, opts domain.ListOptions) ([]T, error)
	CountFunc          func(ctx context.Context, filter domain.Filter) (int64, error)
	UpdateByIDFunc     func(ctx context.Context, id bson.ObjectID, set domain.Filter) (*T, error)
	DeleteByIDFunc     func(ctx context.Context, id bson.ObjectID) (*T, error)
	DeleteManyByIDFunc func(ctx context.Context, ids []bson.ObjectID) (int64, error)
}

// NewMockCatalogRepository creates a new MockCatalogRepository
func NewMockCatalogRepository[T any]() *MockCatalogRepository[T] {
	return &MockCatalogRepository[T]{}
}

func (m *MockCatalogRepository[T]) Create(ctx context.Context, doc *T) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, doc)
	}
	return nil
}

func (m *MockCatalogRepository[T]) FindBySlug(ctx context.Context, slug string) (*T, error) {
	if m.FindBySlugFunc != nil {
		return m.FindBySlugFunc(ctx, slug)
	}
	return nil, nil
}

func (m *MockCatalogRepository[T]) ExistsByID(ctx context.Context, id bson.ObjectID) (bool, error) {
	if m.ExistsByIDFunc != nil {
		return m.ExistsByIDFunc(ctx, id)
	}
	return false, nil
}

func (m *MockCatalogRepository[T]) ExistsByName(ctx context.Context, name string) (bool, error) {
	if m.ExistsByNameFunc != nil {
		return m.ExistsByNameFunc(ctx, name)
	}
	return false, nil
}

func (m *MockCatalogRepository[T]) List(ctx context.Context, filter domain.Filter, opts domain.ListOptions) ([]T, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter, opts)
	}
	return nil, nil
}

func (m *MockCatalogRepository[T]) Count(ctx context.Context, filter domain.Filter) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx, filter)
	}
	return 0, nil
}

func (m *MockCatalogRepository[T]) UpdateByID(ctx context.Context, id bson.ObjectID, set domain.Filter) (*T, error) {
	if m.UpdateByIDFunc != nil {
		return m.UpdateByIDFunc(ctx, id, set)
	}
	return nil, nil
}

func (m *MockCatalogRepository[T]) DeleteByID(ctx context.Context, id bson.ObjectID) (*T, error) {
	if m.DeleteByIDFunc != nil {
		return m.DeleteByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockCatalogRepository[T]) DeleteManyByID(ctx context.Context, ids []bson.ObjectID) (int64, error) {
	if m.DeleteManyByIDFunc != nil {
		return m.DeleteManyByIDFunc(ctx, ids)
	}
	return int64(len(ids)), nil
}
