package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Estoque-api/internal/application/dto"
	"github.com/jhoicas/Estoque-api/internal/domain"
	"github.com/jhoicas/Estoque-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-api/internal/domain/repository"
	"github.com/jhoicas/Estoque-api/pkg/jwt"
	"github.com/jhoicas/Estoque-api/pkg/logger"
)

// SessionConfig configuración para la firma y duración de las sesiones.
type SessionConfig struct {
	Secret     string
	TTLMinutes int
	Issuer     string
}

// AdminSeed datos del administrador inicial.
type AdminSeed struct {
	Username string
	Password string
	Name     string
}

// LoginResult resultado de un login correcto.
type LoginResult struct {
	Token    string
	Session  *entity.Session
	Response dto.LoginResponse
}

// AuthUseCase casos de uso de autenticación: login, sesión, cambio de contraseña y logout.
type AuthUseCase struct {
	userRepo repository.UserRepository
	sessions repository.SessionStore
	cfg      SessionConfig
	log      *logger.Logger
	now      func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, sessions repository.SessionStore, cfg SessionConfig, log *logger.Logger) *AuthUseCase {
	if cfg.TTLMinutes <= 0 {
		cfg.TTLMinutes = 480
	}
	return &AuthUseCase{
		userRepo: userRepo,
		sessions: sessions,
		cfg:      cfg,
		log:      log.Named("auth"),
		now:      time.Now,
	}
}

// TTL duración de una sesión.
func (uc *AuthUseCase) TTL() time.Duration {
	return time.Duration(uc.cfg.TTLMinutes) * time.Minute
}

// Login verifica username/password, abre una sesión y firma su token.
// Usuario inexistente y contraseña incorrecta devuelven el mismo ErrUnauthorized.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*LoginResult, error) {
	user, err := uc.userRepo.GetByUsername(ctx, strings.TrimSpace(in.Username))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		uc.log.Warn().Str("username", user.Username).Msg("login rechazado")
		return nil, domain.ErrUnauthorized
	}

	now := uc.now()
	session := &entity.Session{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		User:      *user,
		CreatedAt: now,
		ExpiresAt: now.Add(uc.TTL()),
	}
	if err := uc.sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.cfg.Secret, session.ID, user.ID, user.Role, uc.cfg.Issuer, uc.cfg.TTLMinutes)
	if err != nil {
		return nil, err
	}

	uc.log.Info().Str("user_id", user.ID).Str("username", user.Username).Msg("login")
	return &LoginResult{
		Token:   token,
		Session: session,
		Response: dto.LoginResponse{
			User:         *dto.FromUser(user),
			IsFirstLogin: user.IsFirstLogin,
		},
	}, nil
}

// Authenticate valida el token y devuelve la sesión viva asociada.
// Cualquier fallo (firma, expiración, sesión revocada) es ErrUnauthorized.
func (uc *AuthUseCase) Authenticate(ctx context.Context, token string) (*entity.Session, error) {
	if token == "" {
		return nil, domain.ErrUnauthorized
	}
	sessionID, _, _, err := jwt.Parse(uc.cfg.Secret, token)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	session, err := uc.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil || session.Expired(uc.now()) {
		return nil, domain.ErrUnauthorized
	}
	return session, nil
}

// ChangePassword cambia la contraseña del usuario de la sesión, limpia IsFirstLogin
// y refresca la copia del usuario guardada en la sesión.
func (uc *AuthUseCase) ChangePassword(ctx context.Context, session *entity.Session, in dto.ChangePasswordRequest) (*dto.UserResponse, error) {
	if in.NewPassword != in.ConfirmPassword {
		return nil, domain.ErrPasswordMismatch
	}
	user, err := uc.userRepo.GetByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = string(hash)
	user.IsFirstLogin = false
	user.UpdatedAt = uc.now()
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	session.User = *user
	if err := uc.sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	uc.log.Info().Str("user_id", user.ID).Msg("contraseña modificada")
	return dto.FromUser(user), nil
}

// Logout elimina la sesión. Una sesión ya inexistente no es error.
func (uc *AuthUseCase) Logout(ctx context.Context, sessionID string) error {
	if err := uc.sessions.Delete(ctx, sessionID); err != nil && !errors.Is(err, domain.ErrSessionNotFound) {
		return err
	}
	return nil
}

// EnsureAdmin crea el administrador inicial cuando no existe ningún usuario.
// Devuelve true si lo creó. Sin contraseña configurada no hace nada.
func (uc *AuthUseCase) EnsureAdmin(ctx context.Context, seed AdminSeed) (bool, error) {
	if seed.Username == "" || seed.Password == "" {
		return false, nil
	}
	count, err := uc.userRepo.Count(ctx)
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(seed.Password), bcrypt.DefaultCost)
	if err != nil {
		return false, err
	}
	name := seed.Name
	if name == "" {
		name = seed.Username
	}
	now := uc.now()
	admin := &entity.User{
		ID:           uuid.New().String(),
		Name:         name,
		Nickname:     seed.Username,
		Username:     seed.Username,
		PasswordHash: string(hash),
		Role:         entity.RoleAdministrador,
		IsFirstLogin: true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, admin); err != nil {
		return false, err
	}
	uc.log.Info().Str("username", admin.Username).Msg("administrador inicial creado")
	return true, nil
}
