package services

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/undead-bacteria/ecommerce-api-men/domain"
)

// userSearchFields is the allowlist for the user list free-text search
var userSearchFields = []string{"name", "email", "phone"}

// protected fields a profile update may never touch
var userProtectedFields = []string{"role", "isBanned", "_id", "email", "createdAt", "updatedAt"}

// UserServiceImpl implements domain.UserService
type UserServiceImpl struct {
	userRepo    domain.UserRepository
	passwordSvc domain.PasswordService
}

// NewUserService creates a new user service
func NewUserService(userRepo domain.UserRepository, passwordSvc domain.PasswordService) domain.UserService {
	return &UserServiceImpl{
		userRepo:    userRepo,
		passwordSvc: passwordSvc,
	}
}

// List implements domain.UserService
func (s *UserServiceImpl) List(ctx context.Context, query url.Values) ([]domain.User, *domain.Pagination, error) {
	q := BuildListQuery(query, userSearchFields)

	users, err := s.userRepo.List(ctx, q.Filter, q.Options())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list users: %w", err)
	}
	if len(users) == 0 {
		return nil, nil, domain.NotFound("Couldn't find any user data.")
	}

	pagination, err := Paginate(ctx, s.userRepo, q.Filter, q.Page, q.Limit)
	if err != nil {
		return nil, nil, err
	}

	return users, pagination, nil
}

// FindByID implements domain.UserService
func (s *UserServiceImpl) FindByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, oid)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if user == nil {
		return nil, domain.NotFound("Couldn't find any user data.")
	}
	return user, nil
}

// Create implements domain.UserService. Admin-initiated creation skips the
// email verification round trip.
func (s *UserServiceImpl) Create(ctx context.Context, input domain.RegisterInput, role string) (*domain.User, error) {
	exists, err := s.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing account: %w", err)
	}
	if exists {
		return nil, domain.Conflict("Already have an account with this email")
	}

	hash, err := s.passwordSvc.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	if role == "" {
		role = domain.RoleUser
	}

	now := time.Now()
	user := &domain.User{
		ID:           bson.NewObjectID(),
		Name:         input.Name,
		Email:        strings.ToLower(input.Email),
		Phone:        input.Phone,
		PasswordHash: hash,
		Gender:       input.Gender,
		Address:      input.Address,
		Role:         role,
		Active:       true,
		WishList:     []bson.ObjectID{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateByID implements domain.UserService. Setting the password field
// always recomputes the hash; protected fields are stripped.
func (s *UserServiceImpl) UpdateByID(ctx context.Context, id string, set domain.Filter) (*domain.User, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	patch := stripProtected(set, userProtectedFields...)
	if password, ok := patch["password"].(string); ok {
		hash, err := s.passwordSvc.Hash(password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		patch["password"] = hash
	}

	user, err := s.userRepo.UpdateByID(ctx, oid, patch)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NotFound("Couldn't find any user data.")
	}
	return user, nil
}

// DeleteByID implements domain.UserService. Admin identities are never
// deleted; the operation is rejected, not ignored.
func (s *UserServiceImpl) DeleteByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, oid)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if user == nil {
		return nil, domain.NotFound("Couldn't find any user data.")
	}
	if user.Role == domain.RoleAdmin {
		return nil, domain.Forbidden("Admin account can't be deleted.")
	}

	deleted, err := s.userRepo.DeleteByID(ctx, oid)
	if err != nil {
		return nil, fmt.Errorf("failed to delete user: %w", err)
	}
	if deleted == nil {
		return nil, domain.NotFound("Couldn't find any user data.")
	}
	return deleted, nil
}

// Ban implements domain.UserService
func (s *UserServiceImpl) Ban(ctx context.Context, id string) (*domain.User, error) {
	return s.setBanned(ctx, id, true)
}

// Unban implements domain.UserService
func (s *UserServiceImpl) Unban(ctx context.Context, id string) (*domain.User, error) {
	return s.setBanned(ctx, id, false)
}

func (s *UserServiceImpl) setBanned(ctx context.Context, id string, banned bool) (*domain.User, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.UpdateByID(ctx, oid, domain.Filter{"isBanned": banned})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NotFound("Couldn't find any user data.")
	}
	return user, nil
}

// UpdatePassword implements domain.UserService
func (s *UserServiceImpl) UpdatePassword(ctx context.Context, id, oldPassword, newPassword string) (*domain.User, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, oid)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if user == nil {
		return nil, domain.NotFound("Couldn't find any user data.")
	}

	if !s.passwordSvc.Verify(user.PasswordHash, oldPassword) {
		return nil, domain.BadRequest("Old password is wrong.")
	}

	hash, err := s.passwordSvc.Hash(newPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	updated, err := s.userRepo.UpdateByID(ctx, oid, domain.Filter{"password": hash})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.NotFound("Couldn't find any user data.")
	}
	return updated, nil
}
