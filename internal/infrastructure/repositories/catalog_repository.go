package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/undead-bacteria/ecommerce-api-men/domain"
)

// catalogRepo is the shared Mongo implementation behind the category,
// brand, and tag repositories, which differ only in collection.
type catalogRepo[T any] struct {
	rec *records[T]
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *mongo.Database) domain.CategoryRepository {
	return &catalogRepo[domain.Category]{rec: newRecords[domain.Category](db, "categories")}
}

// NewBrandRepository creates a new brand repository
func NewBrandRepository(db *mongo.Database) domain.BrandRepository {
	return &catalogRepo[domain.Brand]{rec: newRecords[domain.Brand](db, "brands")}
}

// NewTagRepository creates a new tag repository
func NewTagRepository(db *mongo.Database) domain.TagRepository {
	return &catalogRepo[domain.Tag]{rec: newRecords[domain.Tag](db, "tags")}
}

func (r *catalogRepo[T]) Create(ctx context.Context, doc *T) error {
	return r.rec.insert(ctx, doc)
}

func (r *catalogRepo[T]) FindBySlug(ctx context.Context, slug string) (*T, error) {
	return r.rec.findOne(ctx, domain.Filter{"slug": slug})
}

func (r *catalogRepo[T]) ExistsByID(ctx context.Context, id bson.ObjectID) (bool, error) {
	return r.rec.existsByID(ctx, id)
}

func (r *catalogRepo[T]) ExistsByName(ctx context.Context, name string) (bool, error) {
	return r.rec.exists(ctx, domain.Filter{"name": name})
}

func (r *catalogRepo[T]) List(ctx context.Context, filter domain.Filter, opts domain.ListOptions) ([]T, error) {
	return r.rec.find(ctx, filter, opts)
}

func (r *catalogRepo[T]) Count(ctx context.Context, filter domain.Filter) (int64, error) {
	return r.rec.count(ctx, filter)
}

func (r *catalogRepo[T]) UpdateByID(ctx context.Context, id bson.ObjectID, set domain.Filter) (*T, error) {
	return r.rec.updateByID(ctx, id, set)
}

func (r *catalogRepo[T]) DeleteByID(ctx context.Context, id bson.ObjectID) (*T, error) {
	return r.rec.deleteByID(ctx, id)
}

func (r *catalogRepo[T]) DeleteManyByID(ctx context.Context, ids []bson.ObjectID) (int64, error) {
	return r.rec.deleteManyByID(ctx, ids)
}
