package services

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/undead-bacteria/ecommerce-api-men/domain"
	"github.com/undead-bacteria/ecommerce-api-men/internal/mocks"
)

func TestCategoryService_Create(t *testing.T) {
	t.Run("slug is derived from the name", func(t *testing.T) {
		repo := mocks.NewMockCatalogRepository[domain.Category]()
		var created *domain.Category
		repo.CreateFunc = func(ctx context.Context, doc *domain.Category) error {
			created = doc
			return nil
		}
		svc := NewCategoryService(repo)

		category, err := svc.Create(context.Background(), domain.CatalogInput{Name: "Winter Wear"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created == nil {
			t.Fatal("category not persisted")
		}
		if category.Slug != "winter-wear" {
			t.Errorf("slug=%q", category.Slug)
		}
	})

	t.Run("duplicate name conflicts", func(t *testing.T) {
		repo := mocks.NewMockCatalogRepository[domain.Category]()
		repo.ExistsByNameFunc = func(ctx context.Context, name string) (bool, error) {
			return true, nil
		}
		svc := NewCategoryService(repo)

		_, err := svc.Create(context.Background(), domain.CatalogInput{Name: "Winter Wear"})
		if domain.StatusOf(err) != http.StatusConflict {
			t.Errorf("expected 409, got %v", err)
		}
	})
}

func TestBrandService_List(t *testing.T) {
	t.Run("empty result is not found", func(t *testing.T) {
		svc := NewBrandService(mocks.NewMockCatalogRepository[domain.Brand]())

		_, _, err := svc.List(context.Background(), url.Values{})
		if domain.StatusOf(err) != http.StatusNotFound {
			t.Errorf("expected 404, got %v", err)
		}
		if err.Error() != "Couldn't find any brand data." {
			t.Errorf("message=%q", err.Error())
		}
	})

	t.Run("pagination runs against the list filter", func(t *testing.T) {
		repo := mocks.NewMockCatalogRepository[domain.Brand]()
		repo.ListFunc = func(ctx context.Context, filter domain.Filter, opts domain.ListOptions) ([]domain.Brand, error) {
			return []domain.Brand{{Name: "Acme"}}, nil
		}
		var counted domain.Filter
		repo.CountFunc = func(ctx context.Context, filter domain.Filter) (int64, error) {
			counted = filter
			return 1, nil
		}
		svc := NewBrandService(repo)

		query, _ := url.ParseQuery("name=Acme")
		_, pagination, err := svc.List(context.Background(), query)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if counted["name"] != "Acme" {
			t.Errorf("count filter mismatch: %v", counted)
		}
		if pagination.TotalPages != 1 {
			t.Errorf("totalPages=%d", pagination.TotalPages)
		}
	})
}

func TestTagService_UpdateByID(t *testing.T) {
	id := bson.NewObjectID()

	repo := mocks.NewMockCatalogRepository[domain.Tag]()
	var patch domain.Filter
	repo.UpdateByIDFunc = func(ctx context.Context, oid bson.ObjectID, set domain.Filter) (*domain.Tag, error) {
		patch = set
		return &domain.Tag{ID: oid}, nil
	}
	svc := NewTagService(repo)

	_, err := svc.UpdateByID(context.Background(), id.Hex(), domain.Filter{
		"name": "Summer Sale",
		"_id":  "injected",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if patch["slug"] != "summer-sale" {
		t.Errorf("slug not recomputed: %v", patch)
	}
	if _, ok := patch["_id"]; ok {
		t.Error("protected field survived the patch")
	}
}

func TestCategoryService_BulkDelete(t *testing.T) {
	first := bson.NewObjectID()
	missing := bson.NewObjectID()

	repo := mocks.NewMockCatalogRepository[domain.Category]()
	repo.ExistsByIDFunc = func(ctx context.Context, id bson.ObjectID) (bool, error) {
		return id == first, nil
	}
	repo.DeleteManyByIDFunc = func(ctx context.Context, ids []bson.ObjectID) (int64, error) {
		t.Error("deletion must not run when an id is missing")
		return 0, nil
	}
	svc := NewCategoryService(repo)

	_, err := svc.BulkDelete(context.Background(), []string{first.Hex(), missing.Hex()})
	if domain.StatusOf(err) != http.StatusNotFound {
		t.Errorf("expected 404, got %v", err)
	}
}
