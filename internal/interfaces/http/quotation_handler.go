package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/application/quotation"
	"github.com/jhoicas/Gestion-api/pkg/validation"
)

// QuotationHandler endpoints de cotizaciones.
type QuotationHandler struct {
	quotUC   *quotation.QuotationUseCase
	acceptUC *quotation.AcceptQuotationUseCase
	pdfUC    *quotation.PDFUseCase
}

// NewQuotationHandler construye el handler.
func NewQuotationHandler(
	quotUC *quotation.QuotationUseCase,
	acceptUC *quotation.AcceptQuotationUseCase,
	pdfUC *quotation.PDFUseCase,
) *QuotationHandler {
	return &QuotationHandler{quotUC: quotUC, acceptUC: acceptUC, pdfUC: pdfUC}
}

// Create maneja POST /api/quotations
func (h *QuotationHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateQuotationRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "INVALID_BODY", "body inválido")
	}
	if err := validation.Struct(req); err != nil {
		return badRequest(c, "VALIDATION", err.Error())
	}
	resp, err := h.quotUC.Create(c.Context(), GetUserID(c), req)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Get maneja GET /api/quotations/:id
func (h *QuotationHandler) Get(c *fiber.Ctx) error {
	resp, err := h.quotUC.Get(c.Context(), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(resp)
}

// List maneja GET /api/quotations?status=&customer=&from=&to=
func (h *QuotationHandler) List(c *fiber.Ctx) error {
	var req dto.ListQuotationsRequest
	if err := c.QueryParser(&req); err != nil {
		return badRequest(c, "INVALID_QUERY", "query inválida")
	}
	if err := validation.Struct(req); err != nil {
		return badRequest(c, "VALIDATION", err.Error())
	}
	resp, err := h.quotUC.List(c.Context(), req)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(resp)
}

// UpdateStatus maneja PATCH /api/quotations/:id/status
// Solo rechazo y expiración manual: la aceptación pasa por Accept.
func (h *QuotationHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.UpdateQuotationStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "INVALID_BODY", "body inválido")
	}
	if err := validation.Struct(req); err != nil {
		return badRequest(c, "VALIDATION", err.Error())
	}
	if err := h.quotUC.UpdateStatus(c.Context(), c.Params("id"), req); err != nil {
		return errorResponse(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Accept maneja POST /api/quotations/:id/accept
// Marca ACCEPTED y genera la orden de compra del comprador en una transacción.
func (h *QuotationHandler) Accept(c *fiber.Ctx) error {
	var req dto.AcceptQuotationRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "INVALID_BODY", "body inválido")
	}
	resp, err := h.acceptUC.Accept(c.Context(), c.Params("id"), req)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(resp)
}

// PDF maneja GET /api/quotations/:id/pdf
func (h *QuotationHandler) PDF(c *fiber.Ctx) error {
	pdfBytes, number, err := h.pdfUC.GeneratePDF(c.Context(), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s.pdf"`, number))
	return c.Send(pdfBytes)
}
