package handler

import (
	"time"

	"leave-management-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type AnalyticsHandler struct {
	repo repository.AnalyticsRepository
}

func NewAnalyticsHandler(repo repository.AnalyticsRepository) *AnalyticsHandler {
	return &AnalyticsHandler{repo: repo}
}

func (h *AnalyticsHandler) GetAdminAnalytics(c *fiber.Ctx) error {
	stats, err := h.repo.GetAdminAnalytics(time.Now())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(stats)
}
