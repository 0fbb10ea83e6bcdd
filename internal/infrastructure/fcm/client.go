// Package fcm implementa el envío de notificaciones push vía la API HTTP de
// Firebase Cloud Messaging. Usa net/http de la librería estándar; no requiere
// el SDK oficial.
package fcm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jhoicas/Gestion-api/internal/application/notify"
)

const fcmSendURL = "https://fcm.googleapis.com/fcm/send"

// Verificar en tiempo de compilación que Client implementa PushSender.
var _ notify.PushSender = (*Client)(nil)

// Client adaptador que implementa PushSender contra FCM.
type Client struct {
	serverKey  string
	httpClient *http.Client
}

// NewClient construye el adaptador. Si serverKey está vacío los envíos se
// omiten en silencio (modo dev sin credenciales).
func NewClient(serverKey string) *Client {
	return &Client{
		serverKey: serverKey,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// ── Estructuras del protocolo FCM ─────────────────────────────────────────────

type fcmRequest struct {
	RegistrationIDs []string          `json:"registration_ids"`
	Notification    fcmNotification   `json:"notification"`
	Data            map[string]string `json:"data,omitempty"`
}

type fcmNotification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type fcmResponse struct {
	Success int `json:"success"`
	Failure int `json:"failure"`
	Results []struct {
		MessageID string `json:"message_id"`
		Error     string `json:"error"`
	} `json:"results"`
}

// ── Implementación del puerto ─────────────────────────────────────────────────

// Send envía la notificación al lote de tokens y devuelve los que FCM reporta
// como dados de baja (NotRegistered / InvalidRegistration).
func (c *Client) Send(ctx context.Context, tokens []string, title, body string, data map[string]string) ([]string, error) {
	if c.serverKey == "" || len(tokens) == 0 {
		return nil, nil
	}

	payload := fcmRequest{
		RegistrationIDs: tokens,
		Notification:    fcmNotification{Title: title, Body: body},
		Data:            data,
	}
	reqBody, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("fcm: serializar request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fcmSendURL, bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("fcm: crear request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "key="+c.serverKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fcm: enviar: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("fcm: leer respuesta: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fcm: status %d: %s", resp.StatusCode, string(respBody))
	}

	var parsed fcmResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("fcm: parsear respuesta: %w", err)
	}

	var invalid []string
	for i, result := range parsed.Results {
		if i >= len(tokens) {
			break
		}
		switch result.Error {
		case "NotRegistered", "InvalidRegistration":
			invalid = append(invalid, tokens[i])
		}
	}
	return invalid, nil
}
