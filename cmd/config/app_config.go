package config

import (
	"os"
	"time"

	"Trattoria-Backend/internal/api/handlers"
	"Trattoria-Backend/internal/api/routes"
	"Trattoria-Backend/internal/middleware"
	"Trattoria-Backend/internal/utils"
	"Trattoria-Backend/internal/utils/storage"
	"Trattoria-Backend/pkg/auth"
	"Trattoria-Backend/pkg/gallery"
	"Trattoria-Backend/pkg/jwt"
	"Trattoria-Backend/pkg/menu"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/gorm"
)

const frontendDir = "./frontend"

// NewApp wires the whole application. Exactly one of db or pool is set,
// matching the configured STORAGE_BACKEND.
func NewApp(db *gorm.DB, pool *pgxpool.Pool) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
		BodyLimit:         10 * 1024 * 1024,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// blob store
	var blob storage.Storage
	if utils.GetConfig("BLOB_BACKEND") == "s3" {
		blob = storage.NewAwsS3()
	} else {
		uploadDir := utils.GetConfig("UPLOAD_DIR")
		if uploadDir == "" {
			uploadDir = frontendDir + "/assets/uploads"
		}
		blob = storage.NewLocalStorage(uploadDir, "/assets/uploads")
	}

	// Repository
	var (
		menuRepository    menu.MenuRepository
		galleryRepository gallery.GalleryRepository
	)
	if utils.GetConfig("STORAGE_BACKEND") == "supabase" {
		menuRepository = menu.NewMenuSupabaseRepository(pool)
		galleryRepository = gallery.NewGallerySupabaseRepository(pool)
	} else {
		menuRepository = menu.NewMenuRepository(db)
		galleryRepository = gallery.NewGalleryRepository(db)
	}

	// Service
	jwtService := jwt.NewJWTService()
	authService := auth.NewAuthService(jwtService)
	menuService := menu.NewMenuService(menuRepository)
	galleryService := gallery.NewGalleryService(galleryRepository, blob)

	// Handler
	authHandler := handlers.NewAuthHandler(authService, validator)
	menuHandler := handlers.NewMenuHandler(menuService, validator)
	galleryHandler := handlers.NewGalleryHandler(galleryService, validator)

	// routes
	routesConfig := routes.Config{
		App:            app,
		AuthHandler:    authHandler,
		MenuHandler:    menuHandler,
		GalleryHandler: galleryHandler,
		Middleware:     middlewares,
		JWTService:     jwtService,
		FrontendDir:    frontendDir,
	}
	routesConfig.Setup()
	return app, nil
}
