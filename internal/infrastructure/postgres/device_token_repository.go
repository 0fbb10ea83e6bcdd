package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

var _ repository.DeviceTokenRepository = (*DeviceTokenRepo)(nil)

// DeviceTokenRepo implementación del puerto DeviceTokenRepository sobre PostgreSQL.
type DeviceTokenRepo struct {
	pool *pgxpool.Pool
}

// NewDeviceTokenRepository construye el adaptador de tokens de dispositivo.
func NewDeviceTokenRepository(pool *pgxpool.Pool) *DeviceTokenRepo {
	return &DeviceTokenRepo{pool: pool}
}

// Save registra (o re-asigna) un token de dispositivo. El token es único: si
// otro usuario inicia sesión en el mismo dispositivo, el registro se actualiza.
func (r *DeviceTokenRepo) Save(t *entity.DeviceToken) error {
	query := `
		INSERT INTO device_tokens (id, user_id, token, platform, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (token)
		DO UPDATE SET user_id = EXCLUDED.user_id, platform = EXCLUDED.platform`
	_, err := r.pool.Exec(context.Background(), query,
		t.ID, t.UserID, t.Token, t.Platform, t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("save device token: %w", err)
	}
	return nil
}

// DeleteByToken elimina un token (dispositivo dado de baja o token inválido según FCM).
func (r *DeviceTokenRepo) DeleteByToken(token string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM device_tokens WHERE token = $1`, token)
	if err != nil {
		return fmt.Errorf("delete device token: %w", err)
	}
	return nil
}

// ListByRole lista los tokens de los usuarios con el rol dado (destinatarios de una notificación).
func (r *DeviceTokenRepo) ListByRole(role string) ([]*entity.DeviceToken, error) {
	query := `
		SELECT dt.id, dt.user_id, dt.token, dt.platform, dt.created_at
		FROM device_tokens dt
		JOIN users u ON u.id = dt.user_id
		WHERE u.role = $1 AND u.status = 'active'`
	rows, err := r.pool.Query(context.Background(), query, role)
	if err != nil {
		return nil, fmt.Errorf("list device tokens by role: %w", err)
	}
	defer rows.Close()
	var list []*entity.DeviceToken
	for rows.Next() {
		var t entity.DeviceToken
		if err := rows.Scan(&t.ID, &t.UserID, &t.Token, &t.Platform, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan device token: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
