package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/undead-bacteria/ecommerce-api-men/domain"
)

// ProductRepositoryImpl implements domain.ProductRepository backed by Mongo
type ProductRepositoryImpl struct {
	rec *records[domain.Product]
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *mongo.Database) domain.ProductRepository {
	return &ProductRepositoryImpl{rec: newRecords[domain.Product](db, "products")}
}

// Create implements domain.ProductRepository
func (r *ProductRepositoryImpl) Create(ctx context.Context, product *domain.Product) error {
	return r.rec.insert(ctx, product)
}

// FindBySlug implements domain.ProductRepository
func (r *ProductRepositoryImpl) FindBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	return r.rec.findOne(ctx, domain.Filter{"slug": slug})
}

// ExistsByID implements domain.ProductRepository
func (r *ProductRepositoryImpl) ExistsByID(ctx context.Context, id bson.ObjectID) (bool, error) {
	return r.rec.existsByID(ctx, id)
}

// List implements domain.ProductRepository
func (r *ProductRepositoryImpl) List(ctx context.Context, filter domain.Filter, opts domain.ListOptions) ([]domain.Product, error) {
	return r.rec.find(ctx, filter, opts)
}

// Count implements domain.ProductRepository
func (r *ProductRepositoryImpl) Count(ctx context.Context, filter domain.Filter) (int64, error) {
	return r.rec.count(ctx, filter)
}

// UpdateByID implements domain.ProductRepository
func (r *ProductRepositoryImpl) UpdateByID(ctx context.Context, id bson.ObjectID, set domain.Filter) (*domain.Product, error) {
	return r.rec.updateByID(ctx, id, set)
}

// DeleteByID implements domain.ProductRepository
func (r *ProductRepositoryImpl) DeleteByID(ctx context.Context, id bson.ObjectID) (*domain.Product, error) {
	return r.rec.deleteByID(ctx, id)
}

// DeleteManyByID implements domain.ProductRepository
func (r *ProductRepositoryImpl) DeleteManyByID(ctx context.Context, ids []bson.ObjectID) (int64, error) {
	return r.rec.deleteManyByID(ctx, ids)
}
