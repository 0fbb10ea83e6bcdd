package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/application/investor"
	"github.com/jhoicas/Gestion-api/pkg/validation"
)

// InvestorHandler endpoints de inversores.
type InvestorHandler struct {
	investorUC *investor.InvestorUseCase
}

// NewInvestorHandler construye el handler.
func NewInvestorHandler(investorUC *investor.InvestorUseCase) *InvestorHandler {
	return &InvestorHandler{investorUC: investorUC}
}

// Create maneja POST /api/investors
func (h *InvestorHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateInvestorRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "INVALID_BODY", "body inválido")
	}
	if err := validation.Struct(req); err != nil {
		return badRequest(c, "VALIDATION", err.Error())
	}
	resp, err := h.investorUC.Create(c.Context(), req)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Get maneja GET /api/investors/:id
func (h *InvestorHandler) Get(c *fiber.Ctx) error {
	resp, err := h.investorUC.Get(c.Context(), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(resp)
}

// Update maneja PUT /api/investors/:id
func (h *InvestorHandler) Update(c *fiber.Ctx) error {
	var req dto.CreateInvestorRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "INVALID_BODY", "body inválido")
	}
	resp, err := h.investorUC.Update(c.Context(), c.Params("id"), req)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(resp)
}

// List maneja GET /api/investors
func (h *InvestorHandler) List(c *fiber.Ctx) error {
	var req dto.PageRequest
	if err := c.QueryParser(&req); err != nil {
		return badRequest(c, "INVALID_QUERY", "query inválida")
	}
	resp, err := h.investorUC.List(c.Context(), req)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(resp)
}

// ListInvestments maneja GET /api/investors/:id/investments
// Historial de participaciones del inversor en órdenes de compra.
func (h *InvestorHandler) ListInvestments(c *fiber.Ctx) error {
	resp, err := h.investorUC.ListInvestments(c.Context(), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(resp)
}
