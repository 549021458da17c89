package domain

import (
	"context"
	"net/url"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// TokenPurpose selects the signing secret and lifetime for a token. The
// four purposes are never interchangeable.
type TokenPurpose string

const (
	PurposeRegister TokenPurpose = "register"
	PurposeAccess   TokenPurpose = "access"
	PurposeRefresh  TokenPurpose = "refresh"
	PurposeReset    TokenPurpose = "reset"
)

// Claims is the payload carried inside a signed token
type Claims map[string]any

// TokenService issues and verifies signed, time-bound tokens
type TokenService interface {
	Issue(purpose TokenPurpose, claims Claims) (string, error)
	Verify(purpose TokenPurpose, token string) (Claims, error)
}

// PasswordService defines password hashing operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// Mailer delivers a templated token message. Delivery failure is logged by
// callers, not fatal to the triggering request.
type Mailer interface {
	Send(ctx context.Context, to, subject, token string) error
}

// UserRepository defines identity data access operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id bson.ObjectID) (*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	List(ctx context.Context, filter Filter, opts ListOptions) ([]User, error)
	Count(ctx context.Context, filter Filter) (int64, error)
	UpdateByID(ctx context.Context, id bson.ObjectID, set Filter) (*User, error)
	DeleteByID(ctx context.Context, id bson.ObjectID) (*User, error)
}

// ProductRepository defines catalog entry data access operations
type ProductRepository interface {
	Create(ctx context.Context, product *Product) error
	FindBySlug(ctx context.Context, slug string) (*Product, error)
	ExistsByID(ctx context.Context, id bson.ObjectID) (bool, error)
	List(ctx context.Context, filter Filter, opts ListOptions) ([]Product, error)
	Count(ctx context.Context, filter Filter) (int64, error)
	UpdateByID(ctx context.Context, id bson.ObjectID, set Filter) (*Product, error)
	DeleteByID(ctx context.Context, id bson.ObjectID) (*Product, error)
	DeleteManyByID(ctx context.Context, ids []bson.ObjectID) (int64, error)
}

// CategoryRepository defines category data access operations
type CategoryRepository interface {
	Create(ctx context.Context, category *Category) error
	FindBySlug(ctx context.Context, slug string) (*Category, error)
	ExistsByID(ctx context.Context, id bson.ObjectID) (bool, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	List(ctx context.Context, filter Filter, opts ListOptions) ([]Category, error)
	Count(ctx context.Context, filter Filter) (int64, error)
	UpdateByID(ctx context.Context, id bson.ObjectID, set Filter) (*Category, error)
	DeleteByID(ctx context.Context, id bson.ObjectID) (*Category, error)
	DeleteManyByID(ctx context.Context, ids []bson.ObjectID) (int64, error)
}

// BrandRepository defines brand data access operations
type BrandRepository interface {
	Create(ctx context.Context, brand *Brand) error
	FindBySlug(ctx context.Context, slug string) (*Brand, error)
	ExistsByID(ctx context.Context, id bson.ObjectID) (bool, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	List(ctx context.Context, filter Filter, opts ListOptions) ([]Brand, error)
	Count(ctx context.Context, filter Filter) (int64, error)
	UpdateByID(ctx context.Context, id bson.ObjectID, set Filter) (*Brand, error)
	DeleteByID(ctx context.Context, id bson.ObjectID) (*Brand, error)
	DeleteManyByID(ctx context.Context, ids []bson.ObjectID) (int64, error)
}

// TagRepository defines tag data access operations
type TagRepository interface {
	Create(ctx context.Context, tag *Tag) error
	FindBySlug(ctx context.Context, slug string) (*Tag, error)
	ExistsByID(ctx context.Context, id bson.ObjectID) (bool, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	List(ctx context.Context, filter Filter, opts ListOptions) ([]Tag, error)
	Count(ctx context.Context, filter Filter) (int64, error)
	UpdateByID(ctx context.Context, id bson.ObjectID, set Filter) (*Tag, error)
	DeleteByID(ctx context.Context, id bson.ObjectID) (*Tag, error)
	DeleteManyByID(ctx context.Context, ids []bson.ObjectID) (int64, error)
}

// RegisterInput is the raw registration request before hashing
type RegisterInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
	Gender   string
	Address  string
}

// AuthService defines the session lifecycle state machine
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (verifyToken string, err error)
	Activate(ctx context.Context, verifyToken string) (*User, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Refresh(ctx context.Context, refreshToken string) (accessToken string, err error)
	ForgotPassword(ctx context.Context, email string) (resetToken string, err error)
	ResetPassword(ctx context.Context, resetToken, newPassword string) error
	ResolveIdentity(ctx context.Context, accessToken string) (*User, error)
}

// AuthResult represents a successful login
type AuthResult struct {
	User         *User
	AccessToken  string
	RefreshToken string
}

// UserService defines identity management operations
type UserService interface {
	List(ctx context.Context, query url.Values) ([]User, *Pagination, error)
	FindByID(ctx context.Context, id string) (*User, error)
	Create(ctx context.Context, input RegisterInput, role string) (*User, error)
	UpdateByID(ctx context.Context, id string, set Filter) (*User, error)
	DeleteByID(ctx context.Context, id string) (*User, error)
	Ban(ctx context.Context, id string) (*User, error)
	Unban(ctx context.Context, id string) (*User, error)
	UpdatePassword(ctx context.Context, id, oldPassword, newPassword string) (*User, error)
}

// ProductInput is the payload for creating or updating a product
type ProductInput struct {
	Name        string
	Title       string
	Brand       string
	Category    string
	Tags        []string
	Description ProductText
	Price       ProductPrice
	Quantity    int64
	Shipping    Shipping
	Images      []string
}

// ProductService defines catalog entry operations
type ProductService interface {
	List(ctx context.Context, query url.Values) ([]Product, *Pagination, error)
	FindBySlug(ctx context.Context, slug string) (*Product, error)
	Create(ctx context.Context, input ProductInput, creator bson.ObjectID) (*Product, error)
	UpdateByID(ctx context.Context, id string, set Filter) (*Product, error)
	DeleteByID(ctx context.Context, id string) (*Product, error)
	BulkDelete(ctx context.Context, ids []string) (int64, error)
	AddToWishList(ctx context.Context, user *User, productID string) error
	RemoveFromWishList(ctx context.Context, user *User, productID string) error
}

// CatalogInput is the payload for creating a category, brand, or tag
type CatalogInput struct {
	Name        string
	Description string
	Image       string
}

// CategoryService defines category operations
type CategoryService interface {
	List(ctx context.Context, query url.Values) ([]Category, *Pagination, error)
	FindBySlug(ctx context.Context, slug string) (*Category, error)
	Create(ctx context.Context, input CatalogInput) (*Category, error)
	UpdateByID(ctx context.Context, id string, set Filter) (*Category, error)
	DeleteByID(ctx context.Context, id string) (*Category, error)
	BulkDelete(ctx context.Context, ids []string) (int64, error)
}

// BrandService defines brand operations
type BrandService interface {
	List(ctx context.Context, query url.Values) ([]Brand, *Pagination, error)
	FindBySlug(ctx context.Context, slug string) (*Brand, error)
	Create(ctx context.Context, input CatalogInput) (*Brand, error)
	UpdateByID(ctx context.Context, id string, set Filter) (*Brand, error)
	DeleteByID(ctx context.Context, id string) (*Brand, error)
	BulkDelete(ctx context.Context, ids []string) (int64, error)
}

// TagService defines tag operations
type TagService interface {
	List(ctx context.Context, query url.Values) ([]Tag, *Pagination, error)
	FindBySlug(ctx context.Context, slug string) (*Tag, error)
	Create(ctx context.Context, input CatalogInput) (*Tag, error)
	UpdateByID(ctx context.Context, id string, set Filter) (*Tag, error)
	DeleteByID(ctx context.Context, id string) (*Tag, error)
	BulkDelete(ctx context.Context, ids []string) (int64, error)
}
