package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Estoque-api/internal/infrastructure/session"
)

func newRedisStore(t *testing.T) (*session.RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return session.NewRedisStore(rdb, ""), mr
}

func TestRedisStore_SaveGetDelete(t *testing.T) {
	ctx := context.Background()
	store, mr := newRedisStore(t)

	s := newSession("s1", "u1", time.Hour)
	s.User.PasswordHash = "$2a$10$hash"
	s.User.IsFirstLogin = true
	require.NoError(t, store.Save(ctx, s))

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "u1", got.UserID)
	assert.Equal(t, "u-u1", got.User.Username)
	assert.True(t, got.User.IsFirstLogin)
	assert.Empty(t, got.User.PasswordHash)
	assert.InDelta(t, time.Hour.Seconds(), mr.TTL("estoque:session:s1").Seconds(), 5)

	require.NoError(t, store.Delete(ctx, "s1"))
	got, err = store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.False(t, mr.Exists("estoque:session:s1"))

	require.NoError(t, store.Delete(ctx, "no-existe"))
}

func TestRedisStore_SesionVencidaNoSeGuarda(t *testing.T) {
	ctx := context.Background()
	store, mr := newRedisStore(t)

	require.NoError(t, store.Save(ctx, newSession("old", "u1", -time.Minute)))
	assert.False(t, mr.Exists("estoque:session:old"))
}

func TestRedisStore_DeleteByUser(t *testing.T) {
	ctx := context.Background()
	store, _ := newRedisStore(t)

	require.NoError(t, store.Save(ctx, newSession("a", "u1", time.Hour)))
	require.NoError(t, store.Save(ctx, newSession("b", "u1", time.Hour)))
	require.NoError(t, store.Save(ctx, newSession("c", "u2", time.Hour)))

	require.NoError(t, store.DeleteByUser(ctx, "u1"))

	for _, id := range []string{"a", "b"} {
		got, err := store.Get(ctx, id)
		require.NoError(t, err)
		assert.Nil(t, got, id)
	}
	got, err := store.Get(ctx, "c")
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestRedisStore_ReguardarSesionCortaNoAcortaIndice(t *testing.T) {
	ctx := context.Background()
	store, mr := newRedisStore(t)
	index := "estoque:user_sessions:u1"

	require.NoError(t, store.Save(ctx, newSession("a", "u1", 480*time.Minute)))
	require.NoError(t, store.Save(ctx, newSession("b", "u1", 480*time.Minute)))

	// "a" se vuelve a guardar cerca de su vencimiento (p. ej. tras cambiar la contraseña).
	require.NoError(t, store.Save(ctx, newSession("a", "u1", 10*time.Minute)))
	assert.Greater(t, mr.TTL(index), 470*time.Minute)

	mr.FastForward(11 * time.Minute)
	assert.False(t, mr.Exists("estoque:session:a"))
	require.True(t, mr.Exists(index))

	require.NoError(t, store.DeleteByUser(ctx, "u1"))
	got, err := store.Get(ctx, "b")
	require.NoError(t, err)
	assert.Nil(t, got)
}
