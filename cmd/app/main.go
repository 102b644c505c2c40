package main

import (
	"context"
	"time"

	"github.com/freshalert/freshalert-backend/cmd/config"
	migration "github.com/freshalert/freshalert-backend/cmd/database/migrate"
	"github.com/freshalert/freshalert-backend/internal/utils"
	"github.com/freshalert/freshalert-backend/pkg/notification"
	"github.com/gofiber/fiber/v2/log"
)

const sweepInterval = 6 * time.Hour

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	app, notificationService, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("failed to setup app: %v", err)
	}

	go runExpirySweeper(notificationService)

	port := utils.GetConfig("APP_PORT")
	if port == "" {
		port = "8080"
	}

	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

func runExpirySweeper(notificationService notification.NotificationService) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		created, err := notificationService.SweepExpiringItems(context.Background())
		if err != nil {
			utils.ErrorLogger.Printf("Error sweeping expiring items: %v", err)
		} else if created > 0 {
			utils.InfoLogger.Printf("Created %d expiry notifications", created)
		}
		<-ticker.C
	}
}
