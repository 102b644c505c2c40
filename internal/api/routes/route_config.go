package routes

import (
	"github.com/freshalert/freshalert-backend/internal/api/handlers"
	"github.com/freshalert/freshalert-backend/internal/middleware"
	"github.com/freshalert/freshalert-backend/pkg/jwt"
	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                 *fiber.App
	UserHandler         handlers.UserHandler
	ProductHandler      handlers.ProductHandler
	InventoryHandler    handlers.InventoryHandler
	NotificationHandler handlers.NotificationHandler
	CategoryHandler     handlers.CategoryHandler
	Middleware          middleware.Middleware
	JWTService          jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Auth()
	c.Products()
	c.Inventory()
	c.Notifications()
	c.Categories()
	c.GuestRoute()
}

func (c *Config) Auth() {
	auth := c.App.Group("/api/v1/auth")
	{
		auth.Post("/register", c.UserHandler.Register)
		auth.Post("/login", c.UserHandler.Login)
		auth.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
	}
}

func (c *Config) Products() {
	products := c.App.Group("/api/v1/products", c.Middleware.AuthMiddleware(c.JWTService))

	products.Get("", c.ProductHandler.GetProducts)
	products.Get("/:id", c.ProductHandler.GetProductDetails)
	products.Put("/:id", c.ProductHandler.UpdateProduct)
	products.Post("/image", c.ProductHandler.UploadProductImage)
	products.Delete("/:id/image", c.ProductHandler.DeleteProductImage)
}

func (c *Config) Inventory() {
	items := c.App.Group("/api/v1/inventory", c.Middleware.AuthMiddleware(c.JWTService))

	items.Get("/dashboard", c.InventoryHandler.GetDashboardStats)
	items.Get("/expiring", c.InventoryHandler.GetExpiringItems)
	items.Get("/expired", c.InventoryHandler.GetExpiredItems)
	items.Get("/by-location", c.InventoryHandler.GetItemsByLocation)
	items.Get("/by-category", c.InventoryHandler.GetItemsByCategory)

	// Scan ingestion and basic CRUD
	items.Post("/scan", c.InventoryHandler.ScanItem)
	items.Get("", c.InventoryHandler.GetItems)
	items.Get("/:id", c.InventoryHandler.GetItemDetails)
	items.Put("/:id", c.InventoryHandler.UpdateItem)
	items.Delete("/:id", c.InventoryHandler.ConsumeItem)
}

func (c *Config) Notifications() {
	notifications := c.App.Group("/api/v1/notifications", c.Middleware.AuthMiddleware(c.JWTService))

	notifications.Get("", c.NotificationHandler.GetNotifications)
	notifications.Post("/read-all", c.NotificationHandler.MarkAllAsRead)
	notifications.Post("/:id/read", c.NotificationHandler.MarkAsRead)
}

func (c *Config) Categories() {
	categories := c.App.Group("/api/v1/categories", c.Middleware.AuthMiddleware(c.JWTService))

	categories.Post("", c.CategoryHandler.CreateCategory)
	categories.Get("", c.CategoryHandler.GetCategories)
	categories.Put("/:id", c.CategoryHandler.UpdateCategory)
	categories.Delete("/:id", c.CategoryHandler.DeleteCategory)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
