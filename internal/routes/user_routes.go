package routes

import (
	"leave-management-backend/internal/handler"
	"leave-management-backend/internal/middleware"
	"leave-management-backend/internal/model"
	"leave-management-backend/internal/repository"
	"leave-management-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupUserRoutes(app *fiber.App, db *gorm.DB) {
	userRepo := repository.NewUserRepository(db)
	users := usecase.NewUserUsecase(userRepo)
	hdl := handler.NewUserHandler(users)

	api := app.Group("/api/users", middleware.Auth)

	api.Get("/", middleware.Role(model.RoleAdmin, model.RoleManager), hdl.GetAllUsers)
	api.Patch("/:id", middleware.Role(model.RoleAdmin), hdl.UpdateUser)
	api.Delete("/:id", middleware.Role(model.RoleAdmin), hdl.DeleteUser)
}
