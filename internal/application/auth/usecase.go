package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
	"github.com/jhoicas/Gestion-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret      string
	ExpMinutes  int
	RefreshDays int
	Issuer      string
}

// AuthUseCase casos de uso de autenticación: registro, login, refresh y logout.
// El access token es un JWT corto; el refresh token es un opaco en el
// TokenStore que rota en cada uso.
type AuthUseCase struct {
	userRepo repository.UserRepository
	tokens   TokenStore
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, tokens TokenStore, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, tokens: tokens, jwtCfg: jwtCfg}
}

// RegisterUser crea un usuario: hashea password con bcrypt y persiste.
// Devuelve ErrEmailAlreadyExists si el email ya existe.
func (uc *AuthUseCase) RegisterUser(in dto.RegisterRequest) (*dto.UserResponse, error) {
	existing, _ := uc.userRepo.FindByEmail(in.Email)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	name := in.Name
	if name == "" {
		name = in.Email
	}
	role := in.Role
	if role == "" {
		role = entity.RoleVendedor
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         role,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica email/password y emite el par access/refresh.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.TokenPairResponse, error) {
	user, err := uc.userRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != "active" {
		return nil, domain.ErrForbidden
	}
	return uc.issuePair(ctx, user)
}

// Refresh consume (y por lo tanto invalida) el refresh token recibido y emite
// un par nuevo. Un token ya consumido o vencido devuelve ErrUnauthorized.
func (uc *AuthUseCase) Refresh(ctx context.Context, refreshToken string) (*dto.TokenPairResponse, error) {
	userID, err := uc.tokens.Consume(ctx, refreshToken)
	if err != nil {
		return nil, err
	}
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Status != "active" {
		return nil, domain.ErrUnauthorized
	}
	return uc.issuePair(ctx, user)
}

// Logout invalida el refresh token. El access token expira solo.
func (uc *AuthUseCase) Logout(ctx context.Context, refreshToken string) error {
	return uc.tokens.Delete(ctx, refreshToken)
}

func (uc *AuthUseCase) issuePair(ctx context.Context, user *entity.User) (*dto.TokenPairResponse, error) {
	access, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	refresh := uuid.New().String()
	ttl := time.Duration(uc.jwtCfg.RefreshDays) * 24 * time.Hour
	if err := uc.tokens.Save(ctx, refresh, user.ID, ttl); err != nil {
		return nil, err
	}
	return &dto.TokenPairResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         *toUserResponse(user),
	}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
