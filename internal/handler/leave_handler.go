package handler

import (
	"leave-management-backend/internal/mailer"
	"leave-management-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type LeaveHandler struct {
	leaves *usecase.LeaveUsecase
	mail   *mailer.Mailer
}

func NewLeaveHandler(leaves *usecase.LeaveUsecase, mail *mailer.Mailer) *LeaveHandler {
	return &LeaveHandler{leaves: leaves, mail: mail}
}

type CreateLeaveRequest struct {
	LeaveType string `json:"leave_type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`
}

func (h *LeaveHandler) CreateLeave(c *fiber.Ctx) error {
	var req CreateLeaveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	leave, err := h.leaves.Create(identity(c), req.LeaveType, req.StartDate, req.EndDate, req.Reason)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(leave)
}

func (h *LeaveHandler) GetMyLeaves(c *fiber.Ctx) error {
	list, err := h.leaves.MyLeaves(identity(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(list)
}

func (h *LeaveHandler) GetAllLeaves(c *fiber.Ctx) error {
	list, err := h.leaves.AllLeaves()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(list)
}

func (h *LeaveHandler) GetTeamLeaves(c *fiber.Ctx) error {
	list, err := h.leaves.TeamLeaves(identity(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(list)
}

func (h *LeaveHandler) GetLeaveStats(c *fiber.Ctx) error {
	stats, err := h.leaves.Stats(identity(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(stats)
}

type ReviewRequest struct {
	Status        string `json:"status"` // "approved" or "rejected"
	ReviewComment string `json:"review_comment"`
}

func (h *LeaveHandler) UpdateLeaveStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid leave request id"})
	}

	var req ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	leave, err := h.leaves.Review(identity(c), uint(id), req.Status, req.ReviewComment)
	if err != nil {
		return fail(c, err)
	}

	// Notify the owner in the background so the response stays fast.
	go h.mail.SendLeaveDecision(leave)

	return c.JSON(leave)
}
