package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/inventory-service/internal/api/dto"
	"github.com/spec-kit/inventory-service/internal/auth"
	"github.com/spec-kit/inventory-service/internal/service"
	apperrors "github.com/spec-kit/inventory-service/pkg/util"
)

// ActivityHandler serves the computed activity and analytics views.
type ActivityHandler struct {
	service *service.ActivityService
}

// NewActivityHandler constructs the handler.
func NewActivityHandler(activityService *service.ActivityService) *ActivityHandler {
	return &ActivityHandler{service: activityService}
}

// Recent handles GET /api/inventory/activity.
func (h *ActivityHandler) Recent(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	entries, err := h.service.RecentActivity(c.Context(), identity.UserID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    dto.ActivityToResponse(entries),
	})
}

// All handles GET /api/inventory/activity/all.
func (h *ActivityHandler) All(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	entries, err := h.service.AllActivity(c.Context(), identity.UserID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    dto.ActivityToResponse(entries),
	})
}

// Stats handles GET /api/inventory/stats.
func (h *ActivityHandler) Stats(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	stats, err := h.service.Stats(c.Context(), identity.UserID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": dto.StatsResponse{
			TotalItems:    stats.TotalItems,
			LowStockItems: stats.LowStockItems,
		},
	})
}

// Analytics handles GET /api/inventory/analytics.
func (h *ActivityHandler) Analytics(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	analytics, err := h.service.Analytics(c.Context(), identity.UserID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    dto.AnalyticsToResponse(analytics),
	})
}
