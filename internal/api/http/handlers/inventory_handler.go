package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/inventory-service/internal/api/dto"
	"github.com/spec-kit/inventory-service/internal/auth"
	"github.com/spec-kit/inventory-service/internal/service"
	apperrors "github.com/spec-kit/inventory-service/pkg/util"
)

// InventoryHandler manages per-user inventory record endpoints.
type InventoryHandler struct {
	service *service.InventoryService
}

// NewInventoryHandler constructs the handler.
func NewInventoryHandler(inventoryService *service.InventoryService) *InventoryHandler {
	return &InventoryHandler{service: inventoryService}
}

// Create handles POST /api/inventory.
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.CreateItemRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}

	item, err := h.service.Create(c.Context(), identity.UserID, service.ItemCreateInput{
		Name:     req.Name,
		Quantity: req.Quantity,
		Category: req.Category,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    dto.ItemToResponse(item),
	})
}

// List handles GET /api/inventory.
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	items, err := h.service.List(c.Context(), identity.UserID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    dto.ItemsToResponse(items),
	})
}

// Update handles PUT /api/inventory/:id.
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.UpdateItemRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}

	item, err := h.service.Update(c.Context(), identity.UserID, c.Params("id"), service.ItemUpdateInput{
		Name:     req.Name,
		Quantity: req.Quantity,
		Category: req.Category,
	})
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    dto.ItemToResponse(item),
	})
}

// Delete handles DELETE /api/inventory/:id.
func (h *InventoryHandler) Delete(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	if err := h.service.Delete(c.Context(), identity.UserID, c.Params("id")); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Item deleted successfully",
	})
}
