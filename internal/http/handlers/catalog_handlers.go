package handlers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/undead-bacteria/ecommerce-api-men/domain"
	"github.com/undead-bacteria/ecommerce-api-men/internal/http/respond"
)

// catalogService is the operation set shared by the category, brand, and
// tag services.
type catalogService[T any] interface {
	List(ctx context.Context, query url.Values) ([]T, *domain.Pagination, error)
	FindBySlug(ctx context.Context, slug string) (*T, error)
	Create(ctx context.Context, input domain.CatalogInput) (*T, error)
	UpdateByID(ctx context.Context, id string, set domain.Filter) (*T, error)
	DeleteByID(ctx context.Context, id string) (*T, error)
	BulkDelete(ctx context.Context, ids []string) (int64, error)
}

// CatalogHandlers serves one of the category, brand, or tag resources; the
// three differ only in entity type and message label.
type CatalogHandlers[T any] struct {
	svc   catalogService[T]
	label string
}

// NewCategoryHandlers creates handlers for the category resource
func NewCategoryHandlers(svc domain.CategoryService) *CatalogHandlers[domain.Category] {
	return &CatalogHandlers[domain.Category]{svc: svc, label: "Category"}
}

// NewBrandHandlers creates handlers for the brand resource
func NewBrandHandlers(svc domain.BrandService) *CatalogHandlers[domain.Brand] {
	return &CatalogHandlers[domain.Brand]{svc: svc, label: "Brand"}
}

// NewTagHandlers creates handlers for the tag resource
func NewTagHandlers(svc domain.TagService) *CatalogHandlers[domain.Tag] {
	return &CatalogHandlers[domain.Tag]{svc: svc, label: "Tag"}
}

// CatalogRequest represents the create payload for a catalog resource
type CatalogRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// List returns records matching the request query, paginated
func (h *CatalogHandlers[T]) List(c *gin.Context) {
	docs, pagination, err := h.svc.List(c.Request.Context(), c.Request.URL.Query())
	if err != nil {
		respond.Error(c, err)
		return
	}

	respond.Success(c, http.StatusOK, fmt.Sprintf("%s data fetched successfully.", h.label), gin.H{
		"pagination": pagination,
		"data":       docs,
	})
}

// FindBySlug returns a single record by its slug
func (h *CatalogHandlers[T]) FindBySlug(c *gin.Context) {
	doc, err := h.svc.FindBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respond.Error(c, err)
		return
	}

	respond.Success(c, http.StatusOK, fmt.Sprintf("%s data fetched successfully.", h.label), gin.H{
		"data": doc,
	})
}

// Create adds a new record with a unique name
func (h *CatalogHandlers[T]) Create(c *gin.Context) {
	var req CatalogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, domain.BadRequest("%s", err.Error()))
		return
	}

	doc, err := h.svc.Create(c.Request.Context(), domain.CatalogInput{
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
	})
	if err != nil {
		respond.Error(c, err)
		return
	}

	respond.Success(c, http.StatusCreated, fmt.Sprintf("%s data created successfully.", h.label), gin.H{
		"data": doc,
	})
}

// UpdateByID patches a record; a name change recomputes the slug
func (h *CatalogHandlers[T]) UpdateByID(c *gin.Context) {
	var set domain.Filter
	if err := c.ShouldBindJSON(&set); err != nil {
		respond.Error(c, domain.BadRequest("%s", err.Error()))
		return
	}

	doc, err := h.svc.UpdateByID(c.Request.Context(), c.Param("id"), set)
	if err != nil {
		respond.Error(c, err)
		return
	}

	respond.Success(c, http.StatusOK, fmt.Sprintf("%s data updated successfully.", h.label), gin.H{
		"data": doc,
	})
}

// DeleteByID removes a single record
func (h *CatalogHandlers[T]) DeleteByID(c *gin.Context) {
	doc, err := h.svc.DeleteByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respond.Error(c, err)
		return
	}

	respond.Success(c, http.StatusOK, fmt.Sprintf("%s data deleted successfully.", h.label), gin.H{
		"data": doc,
	})
}

// BulkDelete removes a batch of records, all of them or none
func (h *CatalogHandlers[T]) BulkDelete(c *gin.Context) {
	var req struct {
		IDs []string `json:"ids"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, domain.BadRequest("%s", err.Error()))
		return
	}
	if len(req.IDs) == 0 {
		respond.Error(c, domain.BadRequest("Please provide ids."))
		return
	}

	deleted, err := h.svc.BulkDelete(c.Request.Context(), req.IDs)
	if err != nil {
		respond.Error(c, err)
		return
	}

	respond.Success(c, http.StatusOK, fmt.Sprintf("Successfully deleted %s data.", strings.ToLower(h.label)), gin.H{
		"data": gin.H{"deletedCount": deleted},
	})
}
