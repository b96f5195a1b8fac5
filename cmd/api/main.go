package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"localfix/internal/config"
	"localfix/internal/database"
	"localfix/internal/middleware"
	"localfix/internal/modules/admin"
	"localfix/internal/modules/auth"
	"localfix/internal/modules/booking"
	"localfix/internal/modules/catalog"
	"localfix/internal/modules/provider"
	"localfix/internal/modules/review"
	"localfix/internal/pkg/session"
	"localfix/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal(err)
	}

	r := newRouter(cfg, db)

	log.Printf("listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

func newRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	providerRepo := repository.NewProviderRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	sessionRepo := repository.NewSessionRepository(db)

	sessions := session.NewManager(sessionRepo, cfg.SessionPepper, cfg.SessionTTL)

	authService := auth.NewService(userRepo, cfg.AdminPassword)
	authHandler := auth.NewHandler(authService, sessions, cfg.CookieSecure)

	catalogService := catalog.NewService(categoryRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	reviewService := review.NewService(reviewRepo, bookingRepo)
	reviewHandler := review.NewHandler(reviewService)

	providerService := provider.NewService(providerRepo, userRepo, categoryRepo, reviewRepo)
	providerHandler := provider.NewHandler(providerService)

	bookingService := booking.NewService(bookingRepo, providerRepo, userRepo)
	bookingHandler := booking.NewHandler(bookingService)

	adminService := admin.NewService(userRepo, providerService, bookingService, reviewService)
	adminHandler := admin.NewHandler(adminService)

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.CORS())

	api := r.Group("/api")
	{
		// public
		authHandler.RegisterPublicRoutes(api)
		catalogHandler.RegisterRoutes(api)
		providerHandler.RegisterPublicRoutes(api)

		// session required
		protected := api.Group("/")
		protected.Use(middleware.RequireAuth(sessions, userRepo))
		{
			authHandler.RegisterProtectedRoutes(protected)
			providerHandler.RegisterProtectedRoutes(protected)
			bookingHandler.RegisterRoutes(protected)
			reviewHandler.RegisterRoutes(protected)
		}

		// admin only
		adminGroup := api.Group("/admin")
		adminGroup.Use(middleware.RequireAuth(sessions, userRepo), middleware.AdminOnly())
		{
			adminHandler.RegisterRoutes(adminGroup)
		}
	}

	return r
}
