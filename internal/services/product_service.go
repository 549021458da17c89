package services

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/sync/errgroup"

	"github.com/undead-bacteria/ecommerce-api-men/domain"
)

// productSearchFields is the allowlist for the product list free-text search
var productSearchFields = []string{"name", "title", "slug", "description.short", "description.long"}

var productProtectedFields = []string{"_id", "creator", "slug", "createdAt", "updatedAt"}

// ProductServiceImpl implements domain.ProductService
type ProductServiceImpl struct {
	productRepo  domain.ProductRepository
	categoryRepo domain.CategoryRepository
	brandRepo    domain.BrandRepository
	tagRepo      domain.TagRepository
	userRepo     domain.UserRepository
}

// NewProductService creates a new product service
func NewProductService(
	productRepo domain.ProductRepository,
	categoryRepo domain.CategoryRepository,
	brandRepo domain.BrandRepository,
	tagRepo domain.TagRepository,
	userRepo domain.UserRepository,
) domain.ProductService {
	return &ProductServiceImpl{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		brandRepo:    brandRepo,
		tagRepo:      tagRepo,
		userRepo:     userRepo,
	}
}

// List implements domain.ProductService
func (s *ProductServiceImpl) List(ctx context.Context, query url.Values) ([]domain.Product, *domain.Pagination, error) {
	q := BuildListQuery(query, productSearchFields)

	products, err := s.productRepo.List(ctx, q.Filter, q.Options())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list products: %w", err)
	}
	if len(products) == 0 {
		return nil, nil, domain.NotFound("Couldn't find any product data.")
	}

	pagination, err := Paginate(ctx, s.productRepo, q.Filter, q.Page, q.Limit)
	if err != nil {
		return nil, nil, err
	}

	return products, pagination, nil
}

// FindBySlug implements domain.ProductService
func (s *ProductServiceImpl) FindBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	product, err := s.productRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to find product: %w", err)
	}
	if product == nil {
		return nil, domain.NotFound("Couldn't find any product data.")
	}
	return product, nil
}

// Create implements domain.ProductService. Every foreign reference is
// existence-checked concurrently before the insert; the first missing
// reference fails the whole operation and nothing is written.
func (s *ProductServiceImpl) Create(ctx context.Context, input domain.ProductInput, creator bson.ObjectID) (*domain.Product, error) {
	brandID, err := parseObjectID(input.Brand)
	if err != nil {
		return nil, domain.BadRequest("Brand id is not valid.")
	}
	categoryID, err := parseObjectID(input.Category)
	if err != nil {
		return nil, domain.BadRequest("Category id is not valid.")
	}
	tagIDs := make([]bson.ObjectID, 0, len(input.Tags))
	for _, tag := range input.Tags {
		tagID, err := parseObjectID(tag)
		if err != nil {
			return nil, domain.BadRequest("Tag id is not valid.")
		}
		tagIDs = append(tagIDs, tagID)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		ok, err := s.brandRepo.ExistsByID(gctx, brandID)
		if err != nil {
			return fmt.Errorf("failed to check brand: %w", err)
		}
		if !ok {
			return domain.NotFound("Brand data not found")
		}
		return nil
	})
	g.Go(func() error {
		ok, err := s.categoryRepo.ExistsByID(gctx, categoryID)
		if err != nil {
			return fmt.Errorf("failed to check category: %w", err)
		}
		if !ok {
			return domain.NotFound("Category data not found")
		}
		return nil
	})
	for _, tagID := range tagIDs {
		g.Go(func() error {
			ok, err := s.tagRepo.ExistsByID(gctx, tagID)
			if err != nil {
				return fmt.Errorf("failed to check tag: %w", err)
			}
			if !ok {
				return domain.NotFound("Tag data not found")
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	now := time.Now()
	product := &domain.Product{
		ID:          bson.NewObjectID(),
		Name:        input.Name,
		Title:       input.Title,
		Slug:        slugify(input.Name),
		Brand:       brandID,
		Category:    categoryID,
		Tags:        tagIDs,
		Description: input.Description,
		Price:       input.Price,
		Quantity:    input.Quantity,
		Shipping:    input.Shipping,
		Images:      input.Images,
		Status:      "active",
		Creator:     creator,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if product.Shipping.Type == "" {
		product.Shipping.Type = "free"
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// UpdateByID implements domain.ProductService. Renaming recomputes the slug.
func (s *ProductServiceImpl) UpdateByID(ctx context.Context, id string, set domain.Filter) (*domain.Product, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	patch := stripProtected(set, productProtectedFields...)
	if name, ok := patch["name"].(string); ok {
		patch["slug"] = slugify(name)
	}

	product, err := s.productRepo.UpdateByID(ctx, oid, patch)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.NotFound("Couldn't find any product data.")
	}
	return product, nil
}

// DeleteByID implements domain.ProductService
func (s *ProductServiceImpl) DeleteByID(ctx context.Context, id string) (*domain.Product, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	product, err := s.productRepo.DeleteByID(ctx, oid)
	if err != nil {
		return nil, fmt.Errorf("failed to delete product: %w", err)
	}
	if product == nil {
		return nil, domain.NotFound("Couldn't find any product data.")
	}
	return product, nil
}

// BulkDelete implements domain.ProductService. Every target must exist
// before any deletion is issued; the operation is all-or-nothing.
func (s *ProductServiceImpl) BulkDelete(ctx context.Context, ids []string) (int64, error) {
	oids, err := parseObjectIDs(ids)
	if err != nil {
		return 0, err
	}

	g, gctx := errgroup.WithContext(ctx)
	for i, oid := range oids {
		g.Go(func() error {
			ok, err := s.productRepo.ExistsByID(gctx, oid)
			if err != nil {
				return fmt.Errorf("failed to check product: %w", err)
			}
			if !ok {
				return domain.NotFound("Couldn't find product data with id = %s", ids[i])
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	return s.productRepo.DeleteManyByID(ctx, oids)
}

// AddToWishList implements domain.ProductService
func (s *ProductServiceImpl) AddToWishList(ctx context.Context, user *domain.User, productID string) error {
	oid, err := parseObjectID(productID)
	if err != nil {
		return err
	}

	ok, err := s.productRepo.ExistsByID(ctx, oid)
	if err != nil {
		return fmt.Errorf("failed to check product: %w", err)
	}
	if !ok {
		return domain.NotFound("Couldn't find any product data.")
	}

	for _, id := range user.WishList {
		if id == oid {
			return domain.BadRequest("Product is already in your wishlist.")
		}
	}

	wishList := append(append([]bson.ObjectID{}, user.WishList...), oid)
	if _, err := s.userRepo.UpdateByID(ctx, user.ID, domain.Filter{"wishList": wishList}); err != nil {
		return fmt.Errorf("failed to update wishlist: %w", err)
	}
	return nil
}

// RemoveFromWishList implements domain.ProductService
func (s *ProductServiceImpl) RemoveFromWishList(ctx context.Context, user *domain.User, productID string) error {
	oid, err := parseObjectID(productID)
	if err != nil {
		return err
	}

	ok, err := s.productRepo.ExistsByID(ctx, oid)
	if err != nil {
		return fmt.Errorf("failed to check product: %w", err)
	}
	if !ok {
		return domain.NotFound("Couldn't find any product data.")
	}

	wishList := make([]bson.ObjectID, 0, len(user.WishList))
	found := false
	for _, id := range user.WishList {
		if id == oid {
			found = true
			continue
		}
		wishList = append(wishList, id)
	}
	if !found {
		return domain.BadRequest("Product is not in your wishlist.")
	}

	if _, err := s.userRepo.UpdateByID(ctx, user.ID, domain.Filter{"wishList": wishList}); err != nil {
		return fmt.Errorf("failed to update wishlist: %w", err)
	}
	return nil
}
