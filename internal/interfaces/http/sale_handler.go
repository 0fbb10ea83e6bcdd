package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/application/sales"
	"github.com/jhoicas/Gestion-api/pkg/validation"
)

// SaleHandler endpoints de ventas al detal.
type SaleHandler struct {
	createUC *sales.CreateSaleUseCase
	salesUC  *sales.SalesUseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(createUC *sales.CreateSaleUseCase, salesUC *sales.SalesUseCase) *SaleHandler {
	return &SaleHandler{createUC: createUC, salesUC: salesUC}
}

// Create maneja POST /api/retail-sales
// Venta atómica: numera, registra y descuenta inventario en una transacción.
// Si algún producto no alcanza, responde 400 INSUFFICIENT_STOCK y no descuenta nada.
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateRetailSaleRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "INVALID_BODY", "body inválido")
	}
	if err := validation.Struct(req); err != nil {
		return badRequest(c, "VALIDATION", err.Error())
	}
	resp, err := h.createUC.CreateSale(c.Context(), GetUserID(c), req)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Get maneja GET /api/retail-sales/:id
func (h *SaleHandler) Get(c *fiber.Ctx) error {
	resp, err := h.salesUC.Get(c.Context(), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(resp)
}

// List maneja GET /api/retail-sales?payment_method=&from=&to=
func (h *SaleHandler) List(c *fiber.Ctx) error {
	var req dto.ListRetailSalesRequest
	if err := c.QueryParser(&req); err != nil {
		return badRequest(c, "INVALID_QUERY", "query inválida")
	}
	if err := validation.Struct(req); err != nil {
		return badRequest(c, "VALIDATION", err.Error())
	}
	resp, err := h.salesUC.List(c.Context(), req)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(resp)
}
