package repository

import "github.com/jhoicas/Gestion-api/internal/domain/entity"

// DeviceTokenRepository registra tokens FCM de dispositivos por usuario.
type DeviceTokenRepository interface {
	Save(t *entity.DeviceToken) error
	DeleteByToken(token string) error
	ListByRole(role string) ([]*entity.DeviceToken, error)
}
