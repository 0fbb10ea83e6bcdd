// Package redisstore implementa el almacén de refresh tokens sobre Redis.
// Cada token es una clave con TTL; la rotación usa GETDEL para que consumir
// y revocar sean una sola operación atómica.
package redisstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/Gestion-api/internal/application/auth"
)

const keyPrefix = "refresh:"

var _ auth.TokenStore = (*TokenStore)(nil)

// TokenStore almacén de refresh tokens sobre Redis.
type TokenStore struct {
	client *redis.Client
}

// NewTokenStore construye el almacén con un cliente Redis ya conectado.
func NewTokenStore(client *redis.Client) *TokenStore {
	return &TokenStore{client: client}
}

// Save guarda el token con su usuario y expiración.
func (s *TokenStore) Save(ctx context.Context, token, userID string, ttl time.Duration) error {
	if err := s.client.Set(ctx, keyPrefix+token, userID, ttl).Err(); err != nil {
		return fmt.Errorf("guardar refresh token: %w", err)
	}
	return nil
}

// Consume lee y borra el token en una sola operación (GETDEL). Un token
// inexistente o ya consumido devuelve userID vacío sin error: el caller
// decide el error de autorización.
func (s *TokenStore) Consume(ctx context.Context, token string) (string, error) {
	userID, err := s.client.GetDel(ctx, keyPrefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("consumir refresh token: %w", err)
	}
	return userID, nil
}

// Delete revoca el token (logout). Borrar un token inexistente no es error.
func (s *TokenStore) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, keyPrefix+token).Err(); err != nil {
		return fmt.Errorf("revocar refresh token: %w", err)
	}
	return nil
}
