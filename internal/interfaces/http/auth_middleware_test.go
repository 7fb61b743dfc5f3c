package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Estoque-api/internal/domain"
	"github.com/jhoicas/Estoque-api/internal/domain/entity"
	apphttp "github.com/jhoicas/Estoque-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const testCookie = "estoque_session"

// stubAuthenticator resuelve tokens fijos a sesiones conocidas.
type stubAuthenticator map[string]*entity.Session

func (s stubAuthenticator) Authenticate(_ context.Context, token string) (*entity.Session, error) {
	if sess, ok := s[token]; ok {
		return sess, nil
	}
	return nil, domain.ErrUnauthorized
}

func sessionFor(role string) *entity.Session {
	return &entity.Session{
		ID:     "sess-" + role,
		UserID: "user-" + role,
		User:   entity.User{ID: "user-" + role, Username: role, Role: role},
	}
}

var stubTokens = stubAuthenticator{
	"tok-admin":    sessionFor(entity.RoleAdministrador),
	"tok-operador": sessionFor(entity.RoleOperador),
}

// buildTestApp app mínima con AuthMiddleware + RequireRole y un handler dummy.
func buildTestApp(allowedRoles ...string) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(stubTokens, testCookie),
		apphttp.RequireRole(allowedRoles...),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"ok": true, "role": apphttp.GetRole(c), "user_id": apphttp.GetUserID(c)})
		},
	)
	return app
}

func doProtected(t *testing.T, app *fiber.App, setup func(*http.Request)) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if setup != nil {
		setup(req)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func withBearer(tok string) func(*http.Request) {
	return func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+tok) }
}

func withCookie(tok string) func(*http.Request) {
	return func(r *http.Request) { r.AddCookie(&http.Cookie{Name: testCookie, Value: tok}) }
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireRole
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireRole_AdminAccedeRutaAdmin(t *testing.T) {
	app := buildTestApp(entity.RoleAdministrador)
	resp := doProtected(t, app, withCookie("tok-admin"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, entity.RoleAdministrador, body["role"])
	assert.Equal(t, "user-administrador", body["user_id"])
}

func TestRequireRole_OperadorAccedeRutaMultiRol(t *testing.T) {
	app := buildTestApp(entity.RoleAdministrador, entity.RoleOperador)
	resp := doProtected(t, app, withCookie("tok-operador"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireRole_OperadorBloqueadoEnRutaAdmin(t *testing.T) {
	app := buildTestApp(entity.RoleAdministrador)
	resp := doProtected(t, app, withCookie("tok-operador"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_SinToken_Retorna401(t *testing.T) {
	app := buildTestApp(entity.RoleAdministrador)
	resp := doProtected(t, app, nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "UNAUTHORIZED")
}

func TestAuthMiddleware_TokenDesconocido_Retorna401(t *testing.T) {
	app := buildTestApp(entity.RoleAdministrador)
	resp := doProtected(t, app, withCookie("token.invalido.aqui"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_BearerComoAlternativa(t *testing.T) {
	app := buildTestApp(entity.RoleAdministrador)
	resp := doProtected(t, app, withBearer("tok-admin"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAuthMiddleware_CookieTienePrioridadSobreBearer(t *testing.T) {
	app := buildTestApp(entity.RoleAdministrador)
	resp := doProtected(t, app, func(r *http.Request) {
		withCookie("tok-operador")(r)
		withBearer("tok-admin")(r)
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode, "la cookie de operador debe ganar al Bearer de admin")
}

func TestRequireRole_SinAuthMiddleware_Retorna401(t *testing.T) {
	app := fiber.New()
	app.Get("/protected", apphttp.RequireRole(entity.RoleAdministrador), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	resp := doProtected(t, app, nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
