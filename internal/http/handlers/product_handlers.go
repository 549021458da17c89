package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/undead-bacteria/ecommerce-api-men/domain"
	"github.com/undead-bacteria/ecommerce-api-men/internal/http/middleware"
	"github.com/undead-bacteria/ecommerce-api-men/internal/http/respond"
)

// ProductHandlers handles product endpoints
type ProductHandlers struct {
	productSvc domain.ProductService
}

// NewProductHandlers creates new product handlers
func NewProductHandlers(productSvc domain.ProductService) *ProductHandlers {
	return &ProductHandlers{productSvc: productSvc}
}

// ProductRequest represents the product create payload
type ProductRequest struct {
	Name        string              `json:"name" binding:"required"`
	Title       string              `json:"title"`
	Brand       string              `json:"brand" binding:"required"`
	Category    string              `json:"category" binding:"required"`
	Tags        []string            `json:"tags"`
	Description domain.ProductText  `json:"description"`
	Price       domain.ProductPrice `json:"price"`
	Quantity    int64               `json:"quantity"`
	Shipping    domain.Shipping     `json:"shipping"`
	Images      []string            `json:"images"`
}

// List returns products matching the request query, paginated
func (h *ProductHandlers) List(c *gin.Context) {
	products, pagination, err := h.productSvc.List(c.Request.Context(), c.Request.URL.Query())
	if err != nil {
		respond.Error(c, err)
		return
	}

	respond.Success(c, http.StatusOK, "Product data fetched successfully.", gin.H{
		"pagination": pagination,
		"data":       products,
	})
}

// FindBySlug returns a single product by its slug
func (h *ProductHandlers) FindBySlug(c *gin.Context) {
	product, err := h.productSvc.FindBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respond.Error(c, err)
		return
	}

	respond.Success(c, http.StatusOK, "Product data fetched successfully.", gin.H{
		"data": product,
	})
}

// Create adds a product owned by the logged-in seller or admin
func (h *ProductHandlers) Create(c *gin.Context) {
	me := middleware.CurrentUser(c)
	if me == nil {
		respond.Error(c, domain.Unauthenticated("Please login."))
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, domain.BadRequest("%s", err.Error()))
		return
	}

	product, err := h.productSvc.Create(c.Request.Context(), domain.ProductInput{
		Name:        req.Name,
		Title:       req.Title,
		Brand:       req.Brand,
		Category:    req.Category,
		Tags:        req.Tags,
		Description: req.Description,
		Price:       req.Price,
		Quantity:    req.Quantity,
		Shipping:    req.Shipping,
		Images:      req.Images,
	}, me.ID)
	if err != nil {
		respond.Error(c, err)
		return
	}

	respond.Success(c, http.StatusCreated, "Product data created successfully.", gin.H{
		"data": product,
	})
}

// UpdateByID patches a product; the service drops protected fields
func (h *ProductHandlers) UpdateByID(c *gin.Context) {
	var set domain.Filter
	if err := c.ShouldBindJSON(&set); err != nil {
		respond.Error(c, domain.BadRequest("%s", err.Error()))
		return
	}

	product, err := h.productSvc.UpdateByID(c.Request.Context(), c.Param("id"), set)
	if err != nil {
		respond.Error(c, err)
		return
	}

	respond.Success(c, http.StatusOK, "Product data updated successfully.", gin.H{
		"data": product,
	})
}

// DeleteByID removes a single product
func (h *ProductHandlers) DeleteByID(c *gin.Context) {
	product, err := h.productSvc.DeleteByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respond.Error(c, err)
		return
	}

	respond.Success(c, http.StatusOK, "Product data deleted successfully.", gin.H{
		"data": product,
	})
}

// BulkDelete removes a batch of products, all of them or none
func (h *ProductHandlers) BulkDelete(c *gin.Context) {
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

	deleted, err := h.productSvc.BulkDelete(c.Request.Context(), req.IDs)
	if err != nil {
		respond.Error(c, err)
		return
	}

	respond.Success(c, http.StatusOK, "Successfully deleted product data.", gin.H{
		"data": gin.H{"deletedCount": deleted},
	})
}

// AddToWishList puts a product on the logged-in user's wishlist
func (h *ProductHandlers) AddToWishList(c *gin.Context) {
	me := middleware.CurrentUser(c)
	if me == nil {
		respond.Error(c, domain.Unauthenticated("Please login."))
		return
	}

	if err := h.productSvc.AddToWishList(c.Request.Context(), me, c.Param("id")); err != nil {
		respond.Error(c, err)
		return
	}

	respond.Success(c, http.StatusOK, "Product added to wishlist successfully.", gin.H{
		"data": me,
	})
}

// RemoveFromWishList takes a product off the logged-in user's wishlist
func (h *ProductHandlers) RemoveFromWishList(c *gin.Context) {
	me := middleware.CurrentUser(c)
	if me == nil {
		respond.Error(c, domain.Unauthenticated("Please login."))
		return
	}

	if err := h.productSvc.RemoveFromWishList(c.Request.Context(), me, c.Param("id")); err != nil {
		respond.Error(c, err)
		return
	}

	respond.Success(c, http.StatusOK, "Product removed from wishlist successfully.", gin.H{
		"data": me,
	})
}
