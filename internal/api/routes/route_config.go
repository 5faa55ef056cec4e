package routes

import (
	"Trattoria-Backend/domain"
	"Trattoria-Backend/internal/api/handlers"
	"Trattoria-Backend/internal/api/presenters"
	"Trattoria-Backend/internal/middleware"
	"Trattoria-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App            *fiber.App
	AuthHandler    handlers.AuthHandler
	MenuHandler    handlers.MenuHandler
	GalleryHandler handlers.GalleryHandler
	Middleware     middleware.Middleware
	JWTService     jwt.JWTService

	// FrontendDir is served as the public site; empty disables static serving
	// (used by tests).
	FrontendDir string
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Auth()
	c.Menu()
	c.Gallery()
	c.Static()
}

func (c *Config) Auth() {
	auth := c.App.Group("/api/auth")
	{
		auth.Post("/login", c.AuthHandler.Login)
		auth.Get("/verify", c.AuthHandler.Verify)
	}
}

func (c *Config) Menu() {
	admin := c.Middleware.AuthMiddleware(c.JWTService)

	menu := c.App.Group("/api/menu")
	{
		menu.Get("/categories", c.MenuHandler.GetCategories)
		menu.Post("/categories", admin, c.MenuHandler.CreateCategory)
		menu.Delete("/categories/:id", admin, c.MenuHandler.DeleteCategory)

		menu.Get("/items", c.MenuHandler.GetMenuItems)
		menu.Get("/items/category/:categoryId", c.MenuHandler.GetMenuItemsByCategory)
		menu.Post("/items", admin, c.MenuHandler.CreateMenuItem)
		menu.Put("/items/:id", admin, c.MenuHandler.UpdateMenuItem)
		menu.Delete("/items/:id", admin, c.MenuHandler.DeleteMenuItem)

		menu.Get("/settings", c.MenuHandler.GetSettings)
		menu.Put("/settings", admin, c.MenuHandler.UpdateSettings)
	}
}

func (c *Config) Gallery() {
	admin := c.Middleware.AuthMiddleware(c.JWTService)

	gallery := c.App.Group("/api/gallery")
	{
		gallery.Get("", c.GalleryHandler.GetImages)
		gallery.Post("", admin, c.GalleryHandler.UploadImage)
		gallery.Delete("/:id", admin, c.GalleryHandler.DeleteImage)
	}
}

// Static mounts the frontend and the uploads tree, with an SPA fallback for
// everything outside /api. Unknown /api paths return a JSON 404.
func (c *Config) Static() {
	c.App.Use("/api", func(ctx *fiber.Ctx) error {
		return presenters.ErrorResponse(ctx, fiber.StatusNotFound, domain.MessageRouteNotFound, nil)
	})

	if c.FrontendDir == "" {
		return
	}

	c.App.Static("/", c.FrontendDir)
	c.App.Static("/assets", c.FrontendDir+"/assets")
	c.App.Get("*", func(ctx *fiber.Ctx) error {
		return ctx.SendFile(c.FrontendDir + "/index.html")
	})
}
