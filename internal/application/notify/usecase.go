package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
	"github.com/jhoicas/Gestion-api/pkg/logger"
)

// sendTimeout límite para el envío de un lote de notificaciones.
const sendTimeout = 10 * time.Second

// NotifyUseCase registra dispositivos y despacha notificaciones push a los
// roles de administración. Los envíos son fire-and-forget: se registran en el
// log pero nunca propagan error a la operación de negocio que los disparó.
type NotifyUseCase struct {
	deviceRepo repository.DeviceTokenRepository
	sender     PushSender
	log        *logger.Logger
}

// NewNotifyUseCase construye el caso de uso.
func NewNotifyUseCase(deviceRepo repository.DeviceTokenRepository, sender PushSender, log *logger.Logger) *NotifyUseCase {
	return &NotifyUseCase{deviceRepo: deviceRepo, sender: sender, log: log}
}

// RegisterDevice registra (o re-asigna) el token FCM de un dispositivo.
func (uc *NotifyUseCase) RegisterDevice(ctx context.Context, userID string, in dto.RegisterDeviceRequest) error {
	t := &entity.DeviceToken{
		ID:        uuid.New().String(),
		UserID:    userID,
		Token:     in.Token,
		Platform:  in.Platform,
		CreatedAt: time.Now(),
	}
	return uc.deviceRepo.Save(t)
}

// UnregisterDevice elimina el token de un dispositivo (logout o baja).
func (uc *NotifyUseCase) UnregisterDevice(ctx context.Context, token string) error {
	return uc.deviceRepo.DeleteByToken(token)
}

// QuotationAccepted notifica a administración que una cotización fue aceptada.
func (uc *NotifyUseCase) QuotationAccepted(quotationNumber, bpoNumber, customerName string) {
	uc.broadcast(
		"Cotización aceptada",
		fmt.Sprintf("La cotización %s de %s fue aceptada (orden %s)", quotationNumber, customerName, bpoNumber),
		map[string]string{"type": "quotation_accepted", "quotation": quotationNumber, "order": bpoNumber},
	)
}

// SaleCreated notifica a administración una venta registrada.
func (uc *NotifyUseCase) SaleCreated(saleNumber, total string) {
	uc.broadcast(
		"Venta registrada",
		fmt.Sprintf("Venta %s por $%s", saleNumber, total),
		map[string]string{"type": "sale_created", "sale": saleNumber},
	)
}

// LowStock alerta que un producto quedó en o bajo su umbral mínimo.
func (uc *NotifyUseCase) LowStock(productCode, productName, quantity string) {
	uc.broadcast(
		"Stock bajo",
		fmt.Sprintf("%s (%s) quedó con %s unidades", productName, productCode, quantity),
		map[string]string{"type": "low_stock", "product_code": productCode},
	)
}

// OrderReceived notifica que una orden de compra llegó y el inventario fue acreditado.
func (uc *NotifyUseCase) OrderReceived(orderNumber, vendorName string) {
	uc.broadcast(
		"Orden recibida",
		fmt.Sprintf("La orden %s de %s fue recibida; inventario actualizado", orderNumber, vendorName),
		map[string]string{"type": "order_received", "order": orderNumber},
	)
}

// broadcast envía a los dispositivos de admins y gerentes y depura los tokens
// que el proveedor reporta inválidos.
func (uc *NotifyUseCase) broadcast(title, body string, data map[string]string) {
	ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	defer cancel()

	var tokens []string
	for _, role := range []string{entity.RoleAdmin, entity.RoleGerente} {
		devices, err := uc.deviceRepo.ListByRole(role)
		if err != nil {
			uc.log.Error().Str("role", role).Err(err).Msg("listar dispositivos para notificación")
			return
		}
		for _, d := range devices {
			tokens = append(tokens, d.Token)
		}
	}
	if len(tokens) == 0 {
		return
	}

	invalid, err := uc.sender.Send(ctx, tokens, title, body, data)
	if err != nil {
		uc.log.Error().Str("title", title).Err(err).Msg("enviar notificación push")
		return
	}
	for _, token := range invalid {
		if err := uc.deviceRepo.DeleteByToken(token); err != nil {
			uc.log.Warn().Err(err).Msg("depurar token inválido")
		}
	}
}
