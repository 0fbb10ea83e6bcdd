package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Gestion-api/internal/application/auth"
	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/pkg/validation"
)

// AuthHandler endpoints de autenticación.
type AuthHandler struct {
	authUC *auth.AuthUseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(authUC *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{authUC: authUC}
}

// Register maneja POST /api/auth/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "INVALID_BODY", "body inválido")
	}
	if err := validation.Struct(req); err != nil {
		return badRequest(c, "VALIDATION", err.Error())
	}
	user, err := h.authUC.RegisterUser(req)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// Login maneja POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "INVALID_BODY", "body inválido")
	}
	if err := validation.Struct(req); err != nil {
		return badRequest(c, "VALIDATION", err.Error())
	}
	pair, err := h.authUC.Login(c.Context(), req)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(pair)
}

// Refresh maneja POST /api/auth/refresh: rota el refresh token y emite un par nuevo.
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "INVALID_BODY", "body inválido")
	}
	if err := validation.Struct(req); err != nil {
		return badRequest(c, "VALIDATION", err.Error())
	}
	pair, err := h.authUC.Refresh(c.Context(), req.RefreshToken)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(pair)
}

// Logout maneja POST /api/auth/logout: invalida el refresh token.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "INVALID_BODY", "body inválido")
	}
	if err := h.authUC.Logout(c.Context(), req.RefreshToken); err != nil {
		return errorResponse(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
