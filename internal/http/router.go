package httpx

import (
	"github.com/gin-gonic/gin"

	"github.com/undead-bacteria/ecommerce-api-men/domain"
	"github.com/undead-bacteria/ecommerce-api-men/internal/http/handlers"
	"github.com/undead-bacteria/ecommerce-api-men/internal/http/middleware"
)

// RouterDeps carries everything BuildRouter wires into the route table
type RouterDeps struct {
	Auth       *handlers.AuthHandlers
	Users      *handlers.UserHandlers
	Products   *handlers.ProductHandlers
	Categories *handlers.CatalogHandlers[domain.Category]
	Brands     *handlers.CatalogHandlers[domain.Brand]
	Tags       *handlers.CatalogHandlers[domain.Tag]
	AuthMW     *middleware.AuthMW
	Limiter    *middleware.RateLimiter
}

// BuildRouter assembles the versioned route table. List and single-get
// endpoints on the catalog resources are public; everything else sits
// behind the session cookie.
func BuildRouter(d RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	v1 := r.Group("/api/v1")
	v1.Use(d.Limiter.Limit(0))

	auth := v1.Group("/auth")
	auth.POST("/register", d.Limiter.Limit(5), d.AuthMW.WithGuest(), d.Auth.Register)
	auth.POST("/activate", d.Auth.Activate)
	auth.POST("/login", d.Limiter.Limit(5), d.AuthMW.WithGuest(), d.Auth.Login)
	auth.GET("/refresh-token", d.Auth.Refresh)
	auth.POST("/logout", d.AuthMW.WithAuth(), d.Auth.Logout)
	auth.GET("/me", d.AuthMW.WithAuth(), d.Auth.Me)

	users := v1.Group("/users", d.AuthMW.WithAuth())
	users.GET("", middleware.RequireRole(domain.RoleAdmin), d.Users.List)
	users.POST("", middleware.RequireRole(domain.RoleAdmin), d.Users.Create)
	users.PATCH("/ban-user/:id", middleware.RequireRole(domain.RoleAdmin), d.Users.Ban)
	users.PATCH("/unban-user/:id", middleware.RequireRole(domain.RoleAdmin), d.Users.Unban)
	users.PATCH("/update-password/:id", middleware.RequireOwnerOrRole("id", domain.RoleAdmin), d.Users.UpdatePassword)
	users.GET("/forgot-password/:email", d.Users.ForgotPassword)
	users.PATCH("/reset-password", d.Users.ResetPassword)
	users.GET("/:id", middleware.RequireOwnerOrRole("id", domain.RoleAdmin), d.Users.FindByID)
	users.PATCH("/:id", middleware.RequireOwnerOrRole("id", domain.RoleAdmin), d.Users.UpdateByID)
	users.DELETE("/:id", middleware.RequireOwnerOrRole("id", domain.RoleAdmin), d.Users.DeleteByID)

	products := v1.Group("/products")
	products.GET("", d.Products.List)
	products.GET("/:slug", d.Products.FindBySlug)
	products.POST("", d.AuthMW.WithAuth(), middleware.RequireRole(domain.RoleAdmin, domain.RoleSeller), d.Products.Create)
	products.PATCH("/:id", d.AuthMW.WithAuth(), middleware.RequireRole(domain.RoleAdmin, domain.RoleSeller), d.Products.UpdateByID)
	products.DELETE("/:id", d.AuthMW.WithAuth(), middleware.RequireRole(domain.RoleAdmin, domain.RoleSeller), d.Products.DeleteByID)
	products.DELETE("/bulk-delete", d.AuthMW.WithAuth(), middleware.RequireRole(domain.RoleAdmin), d.Products.BulkDelete)
	products.PATCH("/add-to-wishlist/:id", d.AuthMW.WithAuth(), middleware.RequireRole(domain.RoleUser), d.Products.AddToWishList)
	products.PATCH("/remove-from-wishlist/:id", d.AuthMW.WithAuth(), middleware.RequireRole(domain.RoleUser), d.Products.RemoveFromWishList)

	categories := v1.Group("/categories")
	categories.GET("", d.Categories.List)
	categories.GET("/:slug", d.Categories.FindBySlug)
	categories.POST("", d.AuthMW.WithAuth(), d.Categories.Create)
	categories.PATCH("/:id", d.AuthMW.WithAuth(), middleware.RequireRole(domain.RoleAdmin), d.Categories.UpdateByID)
	categories.DELETE("/:id", d.AuthMW.WithAuth(), middleware.RequireRole(domain.RoleAdmin), d.Categories.DeleteByID)
	categories.DELETE("/bulk-delete", d.AuthMW.WithAuth(), middleware.RequireRole(domain.RoleAdmin), d.Categories.BulkDelete)

	brands := v1.Group("/brands")
	brands.GET("", d.Brands.List)
	brands.GET("/:slug", d.AuthMW.WithAuth(), middleware.RequireRole(domain.RoleAdmin, domain.RoleSeller), d.Brands.FindBySlug)
	brands.POST("", d.AuthMW.WithAuth(), middleware.RequireRole(domain.RoleAdmin, domain.RoleSeller), d.Brands.Create)
	brands.PATCH("/:id", d.AuthMW.WithAuth(), middleware.RequireRole(domain.RoleAdmin, domain.RoleSeller), d.Brands.UpdateByID)
	brands.DELETE("/:id", d.AuthMW.WithAuth(), middleware.RequireRole(domain.RoleAdmin, domain.RoleSeller), d.Brands.DeleteByID)
	brands.DELETE("/bulk-delete", d.AuthMW.WithAuth(), middleware.RequireRole(domain.RoleAdmin), d.Brands.BulkDelete)

	tags := v1.Group("/tags")
	tags.GET("", d.Tags.List)
	tags.GET("/:slug", d.AuthMW.WithAuth(), middleware.RequireRole(domain.RoleAdmin, domain.RoleSeller), d.Tags.FindBySlug)
	tags.POST("", d.AuthMW.WithAuth(), middleware.RequireRole(domain.RoleAdmin, domain.RoleSeller), d.Tags.Create)
	tags.PATCH("/:id", d.AuthMW.WithAuth(), middleware.RequireRole(domain.RoleAdmin, domain.RoleSeller), d.Tags.UpdateByID)
	tags.DELETE("/:id", d.AuthMW.WithAuth(), middleware.RequireRole(domain.RoleAdmin, domain.RoleSeller), d.Tags.DeleteByID)
	tags.DELETE("/bulk-delete", d.AuthMW.WithAuth(), middleware.RequireRole(domain.RoleAdmin), d.Tags.BulkDelete)

	return r
}
