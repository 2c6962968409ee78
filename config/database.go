package config

import (
	"leave-management-backend/internal/model"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB(cfg *Config) {
	db, err := gorm.Open(mysql.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		logrus.WithError(err).Fatal("Failed to connect to database")
	}

	logrus.Info("Database connection established")

	// Auto Migration: create/alter tables from the model structs
	if err := db.AutoMigrate(&model.User{}, &model.LeaveRequest{}); err != nil {
		logrus.WithError(err).Fatal("Failed to run migrations")
	}

	DB = db
}
