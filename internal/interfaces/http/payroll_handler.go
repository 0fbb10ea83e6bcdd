package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/application/payroll"
	"github.com/jhoicas/Gestion-api/pkg/validation"
)

// PayrollHandler endpoints de empleados y pagos de nómina.
type PayrollHandler struct {
	payrollUC *payroll.PayrollUseCase
}

// NewPayrollHandler construye el handler.
func NewPayrollHandler(payrollUC *payroll.PayrollUseCase) *PayrollHandler {
	return &PayrollHandler{payrollUC: payrollUC}
}

// CreateEmployee maneja POST /api/employees
func (h *PayrollHandler) CreateEmployee(c *fiber.Ctx) error {
	var req dto.CreateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "INVALID_BODY", "body inválido")
	}
	if err := validation.Struct(req); err != nil {
		return badRequest(c, "VALIDATION", err.Error())
	}
	resp, err := h.payrollUC.CreateEmployee(c.Context(), req)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetEmployee maneja GET /api/employees/:id
func (h *PayrollHandler) GetEmployee(c *fiber.Ctx) error {
	resp, err := h.payrollUC.GetEmployee(c.Context(), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(resp)
}

// UpdateEmployee maneja PUT /api/employees/:id
func (h *PayrollHandler) UpdateEmployee(c *fiber.Ctx) error {
	var req dto.UpdateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "INVALID_BODY", "body inválido")
	}
	resp, err := h.payrollUC.UpdateEmployee(c.Context(), c.Params("id"), req)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(resp)
}

// DeleteEmployee maneja DELETE /api/employees/:id
func (h *PayrollHandler) DeleteEmployee(c *fiber.Ctx) error {
	if err := h.payrollUC.DeleteEmployee(c.Context(), c.Params("id")); err != nil {
		return errorResponse(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListEmployees maneja GET /api/employees
func (h *PayrollHandler) ListEmployees(c *fiber.Ctx) error {
	var req dto.PageRequest
	if err := c.QueryParser(&req); err != nil {
		return badRequest(c, "INVALID_QUERY", "query inválida")
	}
	resp, err := h.payrollUC.ListEmployees(c.Context(), req)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(resp)
}

// PaySalary maneja POST /api/payroll/payments
// Un pago por empleado y período; repetido responde 409 DUPLICATE.
func (h *PayrollHandler) PaySalary(c *fiber.Ctx) error {
	var req dto.PaySalaryRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "INVALID_BODY", "body inválido")
	}
	if err := validation.Struct(req); err != nil {
		return badRequest(c, "VALIDATION", err.Error())
	}
	resp, err := h.payrollUC.PaySalary(c.Context(), GetUserID(c), req)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListPaymentsByEmployee maneja GET /api/employees/:id/payments
func (h *PayrollHandler) ListPaymentsByEmployee(c *fiber.Ctx) error {
	resp, err := h.payrollUC.ListPaymentsByEmployee(c.Context(), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(resp)
}

// ListPaymentsByPeriod maneja GET /api/payroll/payments?period=YYYY-MM
func (h *PayrollHandler) ListPaymentsByPeriod(c *fiber.Ctx) error {
	period := c.Query("period")
	if period == "" {
		return badRequest(c, "VALIDATION", "period requerido (YYYY-MM)")
	}
	resp, err := h.payrollUC.ListPaymentsByPeriod(c.Context(), period)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(resp)
}
