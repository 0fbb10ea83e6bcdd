package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/application/inventory"
	"github.com/jhoicas/Gestion-api/pkg/validation"
)

// InventoryHandler endpoints de inventario.
type InventoryHandler struct {
	invUC *inventory.InventoryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(invUC *inventory.InventoryUseCase) *InventoryHandler {
	return &InventoryHandler{invUC: invUC}
}

// Create maneja POST /api/inventory
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateInventoryItemRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "INVALID_BODY", "body inválido")
	}
	if err := validation.Struct(req); err != nil {
		return badRequest(c, "VALIDATION", err.Error())
	}
	item, err := h.invUC.Create(c.Context(), req)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// Get maneja GET /api/inventory/:id
func (h *InventoryHandler) Get(c *fiber.Ctx) error {
	item, err := h.invUC.Get(c.Context(), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(item)
}

// Update maneja PUT /api/inventory/:id
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateInventoryItemRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "INVALID_BODY", "body inválido")
	}
	item, err := h.invUC.Update(c.Context(), c.Params("id"), req)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(item)
}

// Delete maneja DELETE /api/inventory/:id
func (h *InventoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.invUC.Delete(c.Context(), c.Params("id")); err != nil {
		return errorResponse(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// List maneja GET /api/inventory?search=&low_only=&limit=&offset=
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	var req dto.ListInventoryRequest
	if err := c.QueryParser(&req); err != nil {
		return badRequest(c, "INVALID_QUERY", "query inválida")
	}
	items, err := h.invUC.List(c.Context(), req)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(items)
}

// LowStock maneja GET /api/inventory/low-stock
// Atajo del listado con el filtro de umbral mínimo ya aplicado.
func (h *InventoryHandler) LowStock(c *fiber.Ctx) error {
	var req dto.ListInventoryRequest
	if err := c.QueryParser(&req); err != nil {
		return badRequest(c, "INVALID_QUERY", "query inválida")
	}
	req.LowOnly = true
	items, err := h.invUC.List(c.Context(), req)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(items)
}

// AdjustStock maneja POST /api/inventory/:id/adjust
// Ajuste manual de existencias: delta positivo acredita, negativo descuenta.
func (h *InventoryHandler) AdjustStock(c *fiber.Ctx) error {
	var req dto.AdjustStockRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "INVALID_BODY", "body inválido")
	}
	if err := validation.Struct(req); err != nil {
		return badRequest(c, "VALIDATION", err.Error())
	}
	item, err := h.invUC.AdjustStock(c.Context(), c.Params("id"), req)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(item)
}
