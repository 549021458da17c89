package app

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/undead-bacteria/ecommerce-api-men/internal/config"
	httpx "github.com/undead-bacteria/ecommerce-api-men/internal/http"
	"github.com/undead-bacteria/ecommerce-api-men/internal/http/cookies"
	"github.com/undead-bacteria/ecommerce-api-men/internal/http/handlers"
	"github.com/undead-bacteria/ecommerce-api-men/internal/http/middleware"
	"github.com/undead-bacteria/ecommerce-api-men/internal/infrastructure/auth"
	"github.com/undead-bacteria/ecommerce-api-men/internal/infrastructure/database"
	"github.com/undead-bacteria/ecommerce-api-men/internal/infrastructure/notifications"
	"github.com/undead-bacteria/ecommerce-api-men/internal/infrastructure/repositories"
	"github.com/undead-bacteria/ecommerce-api-men/internal/services"
)

// Run wires the full application and serves until the listener fails
func Run(cfg *config.Config) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	mongoClient, err := database.NewMongo(cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		return err
	}
	if err := mongoClient.Ping(ctx); err != nil {
		return err
	}
	if err := database.EnsureIndexes(ctx, mongoClient.DB); err != nil {
		return err
	}

	rdb := database.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err := rdb.Ping(ctx); err != nil {
		return err
	}

	// Infrastructure services
	passwordSvc := auth.NewPasswordService()
	tokenSvc := auth.NewJWTService(auth.JWTConfig{
		RegisterSecret: cfg.RegisterSecret,
		AccessSecret:   cfg.AccessSecret,
		RefreshSecret:  cfg.RefreshSecret,
		ResetSecret:    cfg.ResetSecret,
		RegisterTTL:    cfg.RegisterTTL,
		AccessTTL:      cfg.AccessTTL,
		RefreshTTL:     cfg.RefreshTTL,
		ResetTTL:       cfg.ResetTTL,
		Issuer:         cfg.TokenIssuer,
	})
	mailer := notifications.NewSMTPMailer(notifications.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPFrom,
	})

	// Repositories
	userRepo := repositories.NewUserRepository(mongoClient.DB)
	productRepo := repositories.NewProductRepository(mongoClient.DB)
	categoryRepo := repositories.NewCategoryRepository(mongoClient.DB)
	brandRepo := repositories.NewBrandRepository(mongoClient.DB)
	tagRepo := repositories.NewTagRepository(mongoClient.DB)

	// Services
	authSvc := services.NewAuthService(userRepo, passwordSvc, tokenSvc, mailer)
	userSvc := services.NewUserService(userRepo, passwordSvc)
	productSvc := services.NewProductService(productRepo, categoryRepo, brandRepo, tagRepo, userRepo)
	categorySvc := services.NewCategoryService(categoryRepo)
	brandSvc := services.NewBrandService(brandRepo)
	tagSvc := services.NewTagService(tagRepo)

	// HTTP surface
	cookieMgr := cookies.NewManager(
		!cfg.IsDevelopment(),
		int(cfg.AccessCookieMaxAge.Seconds()),
		int(cfg.RefreshCookieMaxAge.Seconds()),
	)
	authMW := middleware.NewAuthMW(authSvc, cookieMgr)
	limiter := middleware.NewRateLimiter(rdb.Client, cfg.RateLimitWindow, int64(cfg.RateLimitMax))

	r := httpx.BuildRouter(httpx.RouterDeps{
		Auth:       handlers.NewAuthHandlers(authSvc, cookieMgr),
		Users:      handlers.NewUserHandlers(userSvc, authSvc),
		Products:   handlers.NewProductHandlers(productSvc),
		Categories: handlers.NewCategoryHandlers(categorySvc),
		Brands:     handlers.NewBrandHandlers(brandSvc),
		Tags:       handlers.NewTagHandlers(tagSvc),
		AuthMW:     authMW,
		Limiter:    limiter,
	})

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, r)
}
