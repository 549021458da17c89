package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Roles a user identity can hold.
const (
	RoleUser   = "user"
	RoleAdmin  = "admin"
	RoleSeller = "seller"
)

// User represents an account identity in the system
type User struct {
	ID           bson.ObjectID   `bson:"_id,omitempty" json:"_id"`
	Name         string          `bson:"name" json:"name"`
	Email        string          `bson:"email" json:"email"`
	Phone        string          `bson:"phone,omitempty" json:"phone,omitempty"`
	PasswordHash string          `bson:"password" json:"-"`
	Gender       string          `bson:"gender" json:"gender"`
	Address      string          `bson:"address,omitempty" json:"address,omitempty"`
	Role         string          `bson:"role" json:"role"`
	IsBanned     bool            `bson:"isBanned" json:"isBanned"`
	Active       bool            `bson:"active" json:"active"`
	Photo        string          `bson:"photo,omitempty" json:"photo,omitempty"`
	WishList     []bson.ObjectID `bson:"wishList" json:"wishList"`
	CreatedAt    time.Time       `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time       `bson:"updatedAt" json:"updatedAt"`
}

// Registration carries the payload embedded in a register token.
// The password is already hashed by the time it reaches the token.
type Registration struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone,omitempty"`
	PasswordHash string `json:"password"`
	Gender       string `json:"gender"`
	Address      string `json:"address,omitempty"`
}

// Product represents a catalog entry
type Product struct {
	ID          bson.ObjectID   `bson:"_id,omitempty" json:"_id"`
	Name        string          `bson:"name" json:"name"`
	Title       string          `bson:"title" json:"title"`
	Slug        string          `bson:"slug" json:"slug"`
	Brand       bson.ObjectID   `bson:"brand" json:"brand"`
	Category    bson.ObjectID   `bson:"category" json:"category"`
	Tags        []bson.ObjectID `bson:"tags" json:"tags"`
	Description ProductText     `bson:"description" json:"description"`
	Price       ProductPrice    `bson:"price" json:"price"`
	Quantity    int64           `bson:"quantity" json:"quantity"`
	Sold        int64           `bson:"sold" json:"sold"`
	Shipping    Shipping        `bson:"shipping" json:"shipping"`
	Rating      float64         `bson:"rating" json:"rating"`
	Images      []string        `bson:"images" json:"images"`
	Status      string          `bson:"status" json:"status"`
	Creator     bson.ObjectID   `bson:"creator" json:"creator"`
	CreatedAt   time.Time       `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time       `bson:"updatedAt" json:"updatedAt"`
}

// ProductText holds the short and long product descriptions
type ProductText struct {
	Short string `bson:"short" json:"short"`
	Long  string `bson:"long" json:"long"`
}

// ProductPrice holds regular and sale prices
type ProductPrice struct {
	Regular float64 `bson:"regular" json:"regular"`
	Sale    float64 `bson:"sale,omitempty" json:"sale,omitempty"`
}

// Shipping holds shipping type and fee
type Shipping struct {
	Type string  `bson:"type" json:"type"`
	Fee  float64 `bson:"fee" json:"fee"`
}

// Category represents a product category
type Category struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name        string        `bson:"name" json:"name"`
	Slug        string        `bson:"slug" json:"slug"`
	Description string        `bson:"description,omitempty" json:"description,omitempty"`
	Image       string        `bson:"image,omitempty" json:"image,omitempty"`
	CreatedAt   time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time     `bson:"updatedAt" json:"updatedAt"`
}

// Brand represents a product brand
type Brand struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name        string        `bson:"name" json:"name"`
	Slug        string        `bson:"slug" json:"slug"`
	Description string        `bson:"description,omitempty" json:"description,omitempty"`
	Image       string        `bson:"image,omitempty" json:"image,omitempty"`
	CreatedAt   time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time     `bson:"updatedAt" json:"updatedAt"`
}

// Tag represents a product tag
type Tag struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name      string        `bson:"name" json:"name"`
	Slug      string        `bson:"slug" json:"slug"`
	CreatedAt time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time     `bson:"updatedAt" json:"updatedAt"`
}

// Filter is a store filter document. Keys are field names or store
// operators produced by the list-query builder.
type Filter map[string]any

// SortField is one key of a sort specification, in order of precedence.
type SortField struct {
	Key  string
	Desc bool
}

// ListOptions bounds and shapes a list query against the record store.
type ListOptions struct {
	Skip       int64
	Limit      int64
	Sort       []SortField
	Projection []string
}

// Pagination is the metadata block returned with every list response.
type Pagination struct {
	Page         int64 `json:"page"`
	Limit        int64 `json:"limit"`
	TotalRecords int64 `json:"totalRecords"`
	TotalPages   int64 `json:"totalPages"`
}
