package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/application/expense"
	"github.com/jhoicas/Gestion-api/pkg/validation"
)

// ExpenseHandler endpoints de gastos.
type ExpenseHandler struct {
	expenseUC *expense.ExpenseUseCase
}

// NewExpenseHandler construye el handler.
func NewExpenseHandler(expenseUC *expense.ExpenseUseCase) *ExpenseHandler {
	return &ExpenseHandler{expenseUC: expenseUC}
}

// Create maneja POST /api/expenses
func (h *ExpenseHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "INVALID_BODY", "body inválido")
	}
	if err := validation.Struct(req); err != nil {
		return badRequest(c, "VALIDATION", err.Error())
	}
	resp, err := h.expenseUC.Create(c.Context(), GetUserID(c), req)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Get maneja GET /api/expenses/:id
func (h *ExpenseHandler) Get(c *fiber.Ctx) error {
	resp, err := h.expenseUC.Get(c.Context(), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(resp)
}

// Update maneja PUT /api/expenses/:id
// Solo un gasto PENDING es editable; aprobado o rechazado responde 409 LOCKED.
func (h *ExpenseHandler) Update(c *fiber.Ctx) error {
	var req dto.CreateExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "INVALID_BODY", "body inválido")
	}
	if err := validation.Struct(req); err != nil {
		return badRequest(c, "VALIDATION", err.Error())
	}
	resp, err := h.expenseUC.Update(c.Context(), c.Params("id"), req)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(resp)
}

// List maneja GET /api/expenses?status=&category=
func (h *ExpenseHandler) List(c *fiber.Ctx) error {
	var req dto.ListExpensesRequest
	if err := c.QueryParser(&req); err != nil {
		return badRequest(c, "INVALID_QUERY", "query inválida")
	}
	if err := validation.Struct(req); err != nil {
		return badRequest(c, "VALIDATION", err.Error())
	}
	resp, err := h.expenseUC.List(c.Context(), req)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(resp)
}

// SetStatus maneja PATCH /api/expenses/:id/status (aprobar o rechazar).
func (h *ExpenseHandler) SetStatus(c *fiber.Ctx) error {
	var req dto.UpdateExpenseStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "INVALID_BODY", "body inválido")
	}
	if err := validation.Struct(req); err != nil {
		return badRequest(c, "VALIDATION", err.Error())
	}
	if err := h.expenseUC.SetStatus(c.Context(), c.Params("id"), req); err != nil {
		return errorResponse(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
