package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/jhoicas/Estoque-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-api/internal/domain/repository"
	"github.com/jhoicas/Estoque-api/pkg/config"
)

var _ repository.SessionStore = (*RedisStore)(nil)

// NewRedisClient abre el cliente Redis y verifica la conexión con PING.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     10,
		MinIdleConns: 2,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return rdb, nil
}

// record forma serializada de la sesión. No guarda el hash de la contraseña.
type record struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	User      userRec   `json:"user"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type userRec struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Nickname     string    `json:"nickname"`
	Username     string    `json:"username"`
	Role         string    `json:"role"`
	IsFirstLogin bool      `json:"isFirstLogin"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func toRecord(s *entity.Session) record {
	return record{
		ID:     s.ID,
		UserID: s.UserID,
		User: userRec{
			ID:           s.User.ID,
			Name:         s.User.Name,
			Nickname:     s.User.Nickname,
			Username:     s.User.Username,
			Role:         s.User.Role,
			IsFirstLogin: s.User.IsFirstLogin,
			CreatedAt:    s.User.CreatedAt,
			UpdatedAt:    s.User.UpdatedAt,
		},
		CreatedAt: s.CreatedAt,
		ExpiresAt: s.ExpiresAt,
	}
}

func (r record) toEntity() *entity.Session {
	return &entity.Session{
		ID:     r.ID,
		UserID: r.UserID,
		User: entity.User{
			ID:           r.User.ID,
			Name:         r.User.Name,
			Nickname:     r.User.Nickname,
			Username:     r.User.Username,
			Role:         r.User.Role,
			IsFirstLogin: r.User.IsFirstLogin,
			CreatedAt:    r.User.CreatedAt,
			UpdatedAt:    r.User.UpdatedAt,
		},
		CreatedAt: r.CreatedAt,
		ExpiresAt: r.ExpiresAt,
	}
}

// RedisStore sesiones en Redis con TTL nativo. Mantiene un SET por usuario
// con sus IDs de sesión para poder revocarlas en bloque.
type RedisStore struct {
	rdb    *redis.Client
	prefix string
	now    func() time.Time
}

// NewRedisStore construye el store. prefix separa las claves de otras aplicaciones.
func NewRedisStore(rdb *redis.Client, prefix string) *RedisStore {
	if prefix == "" {
		prefix = "estoque:"
	}
	return &RedisStore{rdb: rdb, prefix: prefix, now: time.Now}
}

func (s *RedisStore) sessionKey(id string) string { return s.prefix + "session:" + id }
func (s *RedisStore) userKey(userID string) string { return s.prefix + "user_sessions:" + userID }

// extendTTL alarga el TTL del índice del usuario sin acortarlo nunca: el índice debe
// vivir tanto como la sesión más duradera que contiene.
var extendTTL = redis.NewScript(`
local current = redis.call('PTTL', KEYS[1])
local ttl = tonumber(ARGV[1])
if current < ttl then
	redis.call('PEXPIRE', KEYS[1], ttl)
end
return current
`)

// Save guarda la sesión con TTL hasta ExpiresAt. Una sesión ya vencida no se guarda.
func (s *RedisStore) Save(ctx context.Context, session *entity.Session) error {
	ttl := session.ExpiresAt.Sub(s.now())
	if ttl <= 0 {
		return nil
	}
	data, err := json.Marshal(toRecord(session))
	if err != nil {
		return fmt.Errorf("session: serializar: %w", err)
	}
	_, err = s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, s.sessionKey(session.ID), data, ttl)
		pipe.SAdd(ctx, s.userKey(session.UserID), session.ID)
		extendTTL.Eval(ctx, pipe, []string{s.userKey(session.UserID)}, ttl.Milliseconds())
		return nil
	})
	if err != nil {
		return fmt.Errorf("session: guardar: %w", err)
	}
	return nil
}

// Get devuelve la sesión o nil, nil si no existe o venció.
func (s *RedisStore) Get(ctx context.Context, id string) (*entity.Session, error) {
	data, err := s.rdb.Get(ctx, s.sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("session: leer: %w", err)
	}
	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("session: deserializar: %w", err)
	}
	session := rec.toEntity()
	if session.Expired(s.now()) {
		return nil, nil
	}
	return session, nil
}

// Delete elimina la sesión y su entrada en el índice del usuario.
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	session, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	_, err = s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, s.sessionKey(id))
		if session != nil {
			pipe.SRem(ctx, s.userKey(session.UserID), id)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("session: eliminar: %w", err)
	}
	return nil
}

// DeleteByUser elimina todas las sesiones del usuario.
func (s *RedisStore) DeleteByUser(ctx context.Context, userID string) error {
	ids, err := s.rdb.SMembers(ctx, s.userKey(userID)).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("session: listar sesiones del usuario: %w", err)
	}
	keys := make([]string, 0, len(ids)+1)
	for _, id := range ids {
		keys = append(keys, s.sessionKey(id))
	}
	keys = append(keys, s.userKey(userID))
	if err := s.rdb.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("session: revocar sesiones: %w", err)
	}
	return nil
}
