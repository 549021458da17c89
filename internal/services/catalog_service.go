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

// catalogSearchFields is the allowlist shared by the category, brand, and
// tag list endpoints.
var catalogSearchFields = []string{"name", "slug", "description"}

var catalogProtectedFields = []string{"_id", "slug", "createdAt", "updatedAt"}

// catalogRepository is the store shape shared by the category, brand, and
// tag repositories.
type catalogRepository[T any] interface {
	Create(ctx context.Context, doc *T) error
	FindBySlug(ctx context.Context, slug string) (*T, error)
	ExistsByID(ctx context.Context, id bson.ObjectID) (bool, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	List(ctx context.Context, filter domain.Filter, opts domain.ListOptions) ([]T, error)
	Count(ctx context.Context, filter domain.Filter) (int64, error)
	UpdateByID(ctx context.Context, id bson.ObjectID, set domain.Filter) (*T, error)
	DeleteByID(ctx context.Context, id bson.ObjectID) (*T, error)
	DeleteManyByID(ctx context.Context, ids []bson.ObjectID) (int64, error)
}

// catalogService is the shared implementation behind the category, brand,
// and tag services; they differ only in entity construction and labels.
type catalogService[T any] struct {
	repo  catalogRepository[T]
	label string
	build func(input domain.CatalogInput, id bson.ObjectID, now time.Time) *T
}

// NewCategoryService creates a new category service
func NewCategoryService(repo domain.CategoryRepository) domain.CategoryService {
	return &catalogService[domain.Category]{
		repo:  repo,
		label: "category",
		build: func(input domain.CatalogInput, id bson.ObjectID, now time.Time) *domain.Category {
			return &domain.Category{
				ID:          id,
				Name:        input.Name,
				Slug:        slugify(input.Name),
				Description: input.Description,
				Image:       input.Image,
				CreatedAt:   now,
				UpdatedAt:   now,
			}
		},
	}
}

// NewBrandService creates a new brand service
func NewBrandService(repo domain.BrandRepository) domain.BrandService {
	return &catalogService[domain.Brand]{
		repo:  repo,
		label: "brand",
		build: func(input domain.CatalogInput, id bson.ObjectID, now time.Time) *domain.Brand {
			return &domain.Brand{
				ID:          id,
				Name:        input.Name,
				Slug:        slugify(input.Name),
				Description: input.Description,
				Image:       input.Image,
				CreatedAt:   now,
				UpdatedAt:   now,
			}
		},
	}
}

// NewTagService creates a new tag service
func NewTagService(repo domain.TagRepository) domain.TagService {
	return &catalogService[domain.Tag]{
		repo:  repo,
		label: "tag",
		build: func(input domain.CatalogInput, id bson.ObjectID, now time.Time) *domain.Tag {
			return &domain.Tag{
				ID:        id,
				Name:      input.Name,
				Slug:      slugify(input.Name),
				CreatedAt: now,
				UpdatedAt: now,
			}
		},
	}
}

func (s *catalogService[T]) List(ctx context.Context, query url.Values) ([]T, *domain.Pagination, error) {
	q := BuildListQuery(query, catalogSearchFields)

	docs, err := s.repo.List(ctx, q.Filter, q.Options())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list %s data: %w", s.label, err)
	}
	if len(docs) == 0 {
		return nil, nil, domain.NotFound("Couldn't find any %s data.", s.label)
	}

	pagination, err := Paginate(ctx, s.repo, q.Filter, q.Page, q.Limit)
	if err != nil {
		return nil, nil, err
	}

	return docs, pagination, nil
}

func (s *catalogService[T]) FindBySlug(ctx context.Context, slug string) (*T, error) {
	doc, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to find %s: %w", s.label, err)
	}
	if doc == nil {
		return nil, domain.NotFound("Couldn't find any %s data.", s.label)
	}
	return doc, nil
}

func (s *catalogService[T]) Create(ctx context.Context, input domain.CatalogInput) (*T, error) {
	exists, err := s.repo.ExistsByName(ctx, input.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check %s name: %w", s.label, err)
	}
	if exists {
		return nil, domain.Conflict("%s name already exists.", s.label)
	}

	doc := s.build(input, bson.NewObjectID(), time.Now())
	if err := s.repo.Create(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *catalogService[T]) UpdateByID(ctx context.Context, id string, set domain.Filter) (*T, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	patch := stripProtected(set, catalogProtectedFields...)
	if name, ok := patch["name"].(string); ok {
		patch["slug"] = slugify(name)
	}

	doc, err := s.repo.UpdateByID(ctx, oid, patch)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, domain.NotFound("Couldn't find any %s data.", s.label)
	}
	return doc, nil
}

func (s *catalogService[T]) DeleteByID(ctx context.Context, id string) (*T, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	doc, err := s.repo.DeleteByID(ctx, oid)
	if err != nil {
		return nil, fmt.Errorf("failed to delete %s: %w", s.label, err)
	}
	if doc == nil {
		return nil, domain.NotFound("Couldn't find any %s data.", s.label)
	}
	return doc, nil
}

// BulkDelete verifies every target id concurrently before deleting
// anything; one missing id fails the whole batch.
func (s *catalogService[T]) BulkDelete(ctx context.Context, ids []string) (int64, error) {
	oids, err := parseObjectIDs(ids)
	if err != nil {
		return 0, err
	}

	g, gctx := errgroup.WithContext(ctx)
	for i, oid := range oids {
		g.Go(func() error {
			ok, err := s.repo.ExistsByID(gctx, oid)
			if err != nil {
				return fmt.Errorf("failed to check %s: %w", s.label, err)
			}
			if !ok {
				return domain.NotFound("Couldn't find %s data with id = %s", s.label, ids[i])
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	return s.repo.DeleteManyByID(ctx, oids)
}
