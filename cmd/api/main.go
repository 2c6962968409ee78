package main

import (
	"leave-management-backend/config"
	"leave-management-backend/internal/mailer"
	"leave-management-backend/internal/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Warn("No .env file found, using system environment variables")
	}

	cfg := config.Load()
	config.ConnectDB(cfg)

	mail := mailer.New(cfg)

	app := fiber.New()

	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(logger.New())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Leave Management API"})
	})

	routes.SetupAuthRoutes(app, config.DB, cfg)
	routes.SetupLeaveRoutes(app, config.DB, mail)
	routes.SetupUserRoutes(app, config.DB)
	routes.SetupAnalyticsRoutes(app, config.DB)

	logrus.Infof("Server listening on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		logrus.WithError(err).Fatal("Server stopped")
	}
}
