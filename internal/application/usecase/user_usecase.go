package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Estoque-api/internal/application/dto"
	"github.com/jhoicas/Estoque-api/internal/domain"
	"github.com/jhoicas/Estoque-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-api/internal/domain/repository"
	"github.com/jhoicas/Estoque-api/pkg/logger"
)

// UserUseCase aplica reglas de negocio para usuarios.
type UserUseCase struct {
	repo     repository.UserRepository
	sessions repository.SessionStore
	log      *logger.Logger
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia y el almacén de sesiones.
func NewUserUseCase(repo repository.UserRepository, sessions repository.SessionStore, log *logger.Logger) *UserUseCase {
	return &UserUseCase{repo: repo, sessions: sessions, log: log.Named("users")}
}

// HashPassword genera el hash bcrypt de una contraseña.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Create crea un usuario con IsFirstLogin=true. ErrDuplicate si el username ya existe.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	username := strings.TrimSpace(in.Username)
	existing, err := uc.repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         strings.TrimSpace(in.Name),
		Nickname:     strings.TrimSpace(in.Nickname),
		Username:     username,
		PasswordHash: hash,
		Role:         in.Role,
		IsFirstLogin: true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	uc.log.Info().Str("user_id", user.ID).Str("username", user.Username).Str("role", user.Role).Msg("usuario creado")
	return dto.FromUser(user), nil
}

// GetByID obtiene un usuario por ID.
func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return dto.FromUser(user), nil
}

// List lista todos los usuarios.
func (uc *UserUseCase) List(ctx context.Context) ([]dto.UserResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, *dto.FromUser(u))
	}
	return out, nil
}

// Update actualización parcial. Una nueva contraseña obliga a cambiarla en el próximo acceso.
// Un cambio de rol o de contraseña revoca las sesiones abiertas del usuario.
func (uc *UserUseCase) Update(ctx context.Context, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	if in.Username != nil {
		username := strings.TrimSpace(*in.Username)
		if username != user.Username {
			other, err := uc.repo.GetByUsername(ctx, username)
			if err != nil {
				return nil, err
			}
			if other != nil && other.ID != user.ID {
				return nil, domain.ErrDuplicate
			}
			user.Username = username
		}
	}
	if in.Name != nil {
		user.Name = strings.TrimSpace(*in.Name)
	}
	if in.Nickname != nil {
		user.Nickname = strings.TrimSpace(*in.Nickname)
	}
	if in.Password != nil {
		hash, err := HashPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
		user.IsFirstLogin = true
	}
	passwordReset := in.Password != nil
	roleChanged := in.Role != nil && *in.Role != user.Role
	if in.Role != nil {
		user.Role = *in.Role
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	if roleChanged || passwordReset {
		if err := uc.sessions.DeleteByUser(ctx, user.ID); err != nil {
			return nil, err
		}
		uc.log.Info().
			Str("user_id", user.ID).
			Bool("role_changed", roleChanged).
			Bool("password_reset", passwordReset).
			Msg("sesiones revocadas")
	}
	return dto.FromUser(user), nil
}

// Delete elimina un usuario y revoca sus sesiones. Un usuario no puede eliminarse a sí mismo.
func (uc *UserUseCase) Delete(ctx context.Context, actorID, id string) error {
	if actorID == id {
		return domain.ErrCannotDeleteSelf
	}
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	if err := uc.sessions.DeleteByUser(ctx, id); err != nil {
		return err
	}
	uc.log.Info().Str("user_id", id).Str("actor_id", actorID).Msg("usuario eliminado")
	return nil
}
