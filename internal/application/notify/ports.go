package notify

import "context"

// PushSender envía una notificación push al lote de tokens indicado.
// Devuelve los tokens que el proveedor reporta como inválidos (dispositivo
// dado de baja) para que el caller los depure.
type PushSender interface {
	Send(ctx context.Context, tokens []string, title, body string, data map[string]string) (invalid []string, err error)
}
