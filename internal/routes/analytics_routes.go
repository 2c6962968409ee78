package routes

import (
	"leave-management-backend/internal/handler"
	"leave-management-backend/internal/middleware"
	"leave-management-backend/internal/model"
	"leave-management-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAnalyticsRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewAnalyticsRepository(db)
	hdl := handler.NewAnalyticsHandler(repo)

	api := app.Group("/api/analytics", middleware.Auth)

	api.Get("/admin", middleware.Role(model.RoleAdmin), hdl.GetAdminAnalytics)
}
