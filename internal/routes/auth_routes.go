package routes

import (
	"leave-management-backend/config"
	"leave-management-backend/internal/handler"
	"leave-management-backend/internal/middleware"
	"leave-management-backend/internal/repository"
	"leave-management-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAuthRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	userRepo := repository.NewUserRepository(db)
	auth := usecase.NewAuthUsecase(userRepo, cfg)
	hdl := handler.NewAuthHandler(auth)

	api := app.Group("/api/auth")

	api.Post("/register", hdl.Register)
	api.Post("/login", hdl.Login)
	api.Get("/me", middleware.Auth, hdl.Me)
}
