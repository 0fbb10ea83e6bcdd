package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/application/notify"
	"github.com/jhoicas/Gestion-api/pkg/validation"
)

// NotificationHandler endpoints de registro de dispositivos para push.
type NotificationHandler struct {
	notifyUC *notify.NotifyUseCase
}

// NewNotificationHandler construye el handler.
func NewNotificationHandler(notifyUC *notify.NotifyUseCase) *NotificationHandler {
	return &NotificationHandler{notifyUC: notifyUC}
}

// RegisterDevice maneja POST /api/devices
// Registra (o reasigna) el token FCM del dispositivo al usuario autenticado.
func (h *NotificationHandler) RegisterDevice(c *fiber.Ctx) error {
	var req dto.RegisterDeviceRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "INVALID_BODY", "body inválido")
	}
	if err := validation.Struct(req); err != nil {
		return badRequest(c, "VALIDATION", err.Error())
	}
	if err := h.notifyUC.RegisterDevice(c.Context(), GetUserID(c), req); err != nil {
		return errorResponse(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UnregisterDevice maneja DELETE /api/devices/:token
func (h *NotificationHandler) UnregisterDevice(c *fiber.Ctx) error {
	if err := h.notifyUC.UnregisterDevice(c.Context(), c.Params("token")); err != nil {
		return errorResponse(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
