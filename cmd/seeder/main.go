package main

import (
	"leave-management-backend/config"
	"leave-management-backend/internal/database"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Warn("No .env file found, using system environment variables")
	}

	cfg := config.Load()
	config.ConnectDB(cfg)

	logrus.Info("Seeding database...")
	if err := database.SeedAll(config.DB); err != nil {
		logrus.WithError(err).Fatal("Seeding failed")
	}
	logrus.Info("Seeding complete")
}
