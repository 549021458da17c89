package repositories

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/undead-bacteria/ecommerce-api-men/domain"
)

// UserRepositoryImpl implements domain.UserRepository backed by Mongo.
// Email uniqueness is enforced by the store-level unique index.
type UserRepositoryImpl struct {
	rec *records[domain.User]
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *mongo.Database) domain.UserRepository {
	return &UserRepositoryImpl{rec: newRecords[domain.User](db, "users")}
}

// Create implements domain.UserRepository
func (r *UserRepositoryImpl) Create(ctx context.Context, user *domain.User) error {
	user.Email = strings.ToLower(user.Email)
	return r.rec.insert(ctx, user)
}

// FindByEmail implements domain.UserRepository. Lookup is case-insensitive
// because emails are stored lowercased.
func (r *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.rec.findOne(ctx, domain.Filter{"email": strings.ToLower(email)})
}

// FindByID implements domain.UserRepository
func (r *UserRepositoryImpl) FindByID(ctx context.Context, id bson.ObjectID) (*domain.User, error) {
	return r.rec.findOne(ctx, domain.Filter{"_id": id})
}

// ExistsByEmail implements domain.UserRepository
func (r *UserRepositoryImpl) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.rec.exists(ctx, domain.Filter{"email": strings.ToLower(email)})
}

// List implements domain.UserRepository
func (r *UserRepositoryImpl) List(ctx context.Context, filter domain.Filter, opts domain.ListOptions) ([]domain.User, error) {
	return r.rec.find(ctx, filter, opts)
}

// Count implements domain.UserRepository
func (r *UserRepositoryImpl) Count(ctx context.Context, filter domain.Filter) (int64, error) {
	return r.rec.count(ctx, filter)
}

// UpdateByID implements domain.UserRepository
func (r *UserRepositoryImpl) UpdateByID(ctx context.Context, id bson.ObjectID, set domain.Filter) (*domain.User, error) {
	return r.rec.updateByID(ctx, id, set)
}

// DeleteByID implements domain.UserRepository
func (r *UserRepositoryImpl) DeleteByID(ctx context.Context, id bson.ObjectID) (*domain.User, error) {
	return r.rec.deleteByID(ctx, id)
}
