package handler

import (
	"leave-management-backend/internal/model"
	"leave-management-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	auth *usecase.AuthUsecase
}

func NewAuthHandler(auth *usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

func profileWithToken(user *model.User, token string) fiber.Map {
	return fiber.Map{
		"id":            user.ID,
		"name":          user.Name,
		"email":         user.Email,
		"role":          user.Role,
		"department":    user.Department,
		"leave_balance": user.LeaveBalance,
		"token":         token,
	}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input usecase.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	user, token, err := h.auth.Register(input)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(profileWithToken(user, token))
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	user, token, err := h.auth.Login(req.Email, req.Password)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(profileWithToken(user, token))
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, err := h.auth.Me(identity(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(user)
}
