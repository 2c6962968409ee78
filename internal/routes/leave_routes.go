package routes

import (
	"leave-management-backend/internal/handler"
	"leave-management-backend/internal/mailer"
	"leave-management-backend/internal/middleware"
	"leave-management-backend/internal/model"
	"leave-management-backend/internal/repository"
	"leave-management-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupLeaveRoutes(app *fiber.App, db *gorm.DB, mail *mailer.Mailer) {
	leaveRepo := repository.NewLeaveRepository(db)
	userRepo := repository.NewUserRepository(db)

	leaves := usecase.NewLeaveUsecase(leaveRepo, userRepo)
	hdl := handler.NewLeaveHandler(leaves, mail)

	api := app.Group("/api/leaves", middleware.Auth)

	// Any authenticated user
	api.Post("/", hdl.CreateLeave)
	api.Get("/my-leaves", hdl.GetMyLeaves)
	api.Get("/stats", hdl.GetLeaveStats)

	// Reviewer endpoints
	api.Get("/all", middleware.Role(model.RoleAdmin), hdl.GetAllLeaves)
	api.Get("/team", middleware.Role(model.RoleManager, model.RoleAdmin), hdl.GetTeamLeaves)
	api.Patch("/:id/status", middleware.Role(model.RoleManager, model.RoleAdmin), hdl.UpdateLeaveStatus)
}
