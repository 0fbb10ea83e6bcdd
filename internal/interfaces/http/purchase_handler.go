package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/application/purchase"
	"github.com/jhoicas/Gestion-api/pkg/validation"
)

// PurchaseHandler endpoints de órdenes de compra a proveedor.
type PurchaseHandler struct {
	purchaseUC *purchase.PurchaseUseCase
	receiveUC  *purchase.ReceiveOrderUseCase
}

// NewPurchaseHandler construye el handler.
func NewPurchaseHandler(purchaseUC *purchase.PurchaseUseCase, receiveUC *purchase.ReceiveOrderUseCase) *PurchaseHandler {
	return &PurchaseHandler{purchaseUC: purchaseUC, receiveUC: receiveUC}
}

// Create maneja POST /api/purchase-orders
func (h *PurchaseHandler) Create(c *fiber.Ctx) error {
	var req dto.CreatePurchaseOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "INVALID_BODY", "body inválido")
	}
	if err := validation.Struct(req); err != nil {
		return badRequest(c, "VALIDATION", err.Error())
	}
	resp, err := h.purchaseUC.Create(c.Context(), GetUserID(c), req)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Get maneja GET /api/purchase-orders/:id
func (h *PurchaseHandler) Get(c *fiber.Ctx) error {
	resp, err := h.purchaseUC.Get(c.Context(), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(resp)
}

// List maneja GET /api/purchase-orders?status=&vendor=&from=&to=
func (h *PurchaseHandler) List(c *fiber.Ctx) error {
	var req dto.ListPurchaseOrdersRequest
	if err := c.QueryParser(&req); err != nil {
		return badRequest(c, "INVALID_QUERY", "query inválida")
	}
	if err := validation.Struct(req); err != nil {
		return badRequest(c, "VALIDATION", err.Error())
	}
	resp, err := h.purchaseUC.List(c.Context(), req)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(resp)
}

// UpdateStatus maneja PATCH /api/purchase-orders/:id/status
// Transiciones manuales (despachar, cancelar). Recibir pasa por Receive.
func (h *PurchaseHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.UpdatePurchaseOrderStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "INVALID_BODY", "body inválido")
	}
	if err := validation.Struct(req); err != nil {
		return badRequest(c, "VALIDATION", err.Error())
	}
	if err := h.purchaseUC.UpdateStatus(c.Context(), c.Params("id"), req); err != nil {
		return errorResponse(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Receive maneja POST /api/purchase-orders/:id/receive
// Marca RECEIVED y acredita el inventario de cada línea en una transacción.
func (h *PurchaseHandler) Receive(c *fiber.Ctx) error {
	resp, err := h.receiveUC.Receive(c.Context(), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(resp)
}
