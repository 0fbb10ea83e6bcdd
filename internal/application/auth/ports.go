package auth

import (
	"context"
	"time"
)

// TokenStore guarda refresh tokens opacos con expiración. Consume debe ser
// atómico (leer y borrar en una sola operación): un refresh token usado dos
// veces solo funciona la primera.
type TokenStore interface {
	Save(ctx context.Context, token, userID string, ttl time.Duration) error
	Consume(ctx context.Context, token string) (userID string, err error)
	Delete(ctx context.Context, token string) error
}
