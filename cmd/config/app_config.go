package config

import (
	"os"
	"time"

	"github.com/freshalert/freshalert-backend/internal/api/handlers"
	"github.com/freshalert/freshalert-backend/internal/api/routes"
	"github.com/freshalert/freshalert-backend/internal/middleware"
	"github.com/freshalert/freshalert-backend/internal/utils"
	"github.com/freshalert/freshalert-backend/internal/utils/mailing"
	"github.com/freshalert/freshalert-backend/internal/utils/storage"
	"github.com/freshalert/freshalert-backend/pkg/category"
	"github.com/freshalert/freshalert-backend/pkg/inventory"
	"github.com/freshalert/freshalert-backend/pkg/jwt"
	"github.com/freshalert/freshalert-backend/pkg/notification"
	"github.com/freshalert/freshalert-backend/pkg/product"
	"github.com/freshalert/freshalert-backend/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, notification.NotificationService, error) {
	utils.InitValidator()
	utils.InitLogger()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
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

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	productRepository := product.NewProductRepository(db)
	inventoryRepository := inventory.NewInventoryRepository(db)
	notificationRepository := notification.NewNotificationRepository(db)
	categoryRepository := category.NewCategoryRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	productService := product.NewProductService(productRepository, s3)
	inventoryService := inventory.NewInventoryService(inventoryRepository, productRepository, nil)
	notificationService := notification.NewNotificationService(
		notificationRepository,
		inventoryRepository,
		mailing.SendMail,
		nil,
	)
	categoryService := category.NewCategoryService(categoryRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	productHandler := handlers.NewProductHandler(productService, validator)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService, validator)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	categoryHandler := handlers.NewCategoryHandler(categoryService, validator)

	// routes
	routesConfig := routes.Config{
		App:                 app,
		UserHandler:         userHandler,
		ProductHandler:      productHandler,
		InventoryHandler:    inventoryHandler,
		NotificationHandler: notificationHandler,
		CategoryHandler:     categoryHandler,
		Middleware:          middlewares,
		JWTService:          jwtService,
	}
	routesConfig.Setup()
	return app, notificationService, nil
}
