package http

import (
	"encoding/json"
	"fmt"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Gestion-api/internal/domain"
)

// TestErrorResponse_MapeoDeDominioAHTTP fija el contrato de status y código
// por error de dominio. En particular, stock insuficiente es 400 (petición
// invendible), no 409.
func TestErrorResponse_MapeoDeDominioAHTTP(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"no encontrado", domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
		{"entrada inválida", domain.ErrInvalidInput, fiber.StatusBadRequest, "VALIDATION"},
		{"stock insuficiente", domain.ErrInsufficientStock, fiber.StatusBadRequest, "INSUFFICIENT_STOCK"},
		{"stock insuficiente envuelto", fmt.Errorf("producto A-002: %w", domain.ErrInsufficientStock), fiber.StatusBadRequest, "INSUFFICIENT_STOCK"},
		{"email duplicado", domain.ErrEmailAlreadyExists, fiber.StatusConflict, "EMAIL_EXISTS"},
		{"duplicado", domain.ErrDuplicate, fiber.StatusConflict, "DUPLICATE"},
		{"ya aceptada", domain.ErrAlreadyAccepted, fiber.StatusConflict, "ALREADY_ACCEPTED"},
		{"ya rechazada", domain.ErrAlreadyRejected, fiber.StatusConflict, "ALREADY_REJECTED"},
		{"bloqueado", domain.ErrLocked, fiber.StatusConflict, "LOCKED"},
		{"transición ilegal", domain.ErrInvalidTransition, fiber.StatusConflict, "INVALID_TRANSITION"},
		{"conflicto", domain.ErrConflict, fiber.StatusConflict, "CONFLICT"},
		{"no autorizado", domain.ErrUnauthorized, fiber.StatusUnauthorized, "UNAUTHORIZED"},
		{"prohibido", domain.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/t", func(c *fiber.Ctx) error {
				return errorResponse(c, tc.err)
			})

			resp, err := app.Test(httptest.NewRequest(nethttp.MethodGet, "/t", nil))
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tc.wantStatus, resp.StatusCode)

			var body struct {
				Code string `json:"code"`
			}
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tc.wantCode, body.Code)
		})
	}
}
