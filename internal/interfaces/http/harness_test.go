package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	appanalytics "github.com/jhoicas/Estoque-api/internal/application/analytics"
	"github.com/jhoicas/Estoque-api/internal/application/auth"
	"github.com/jhoicas/Estoque-api/internal/application/dto"
	"github.com/jhoicas/Estoque-api/internal/application/inventory"
	"github.com/jhoicas/Estoque-api/internal/application/report"
	"github.com/jhoicas/Estoque-api/internal/application/usecase"
	"github.com/jhoicas/Estoque-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/Estoque-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Estoque-api/internal/infrastructure/session"
	apphttp "github.com/jhoicas/Estoque-api/internal/interfaces/http"
	"github.com/jhoicas/Estoque-api/pkg/logger"
)

const (
	adminUser = "admin"
	adminPass = "admin123"
)

type testServer struct {
	app    *fiber.App
	userUC *usecase.UserUseCase
}

// newTestServer arma la API completa sobre el store en memoria con un administrador inicial.
func newTestServer(t *testing.T, loginLimiter fiber.Handler) *testServer {
	t.Helper()
	log := logger.Nop()
	store := memory.NewStore()
	sessions := session.NewMemoryStore()

	authUC := auth.NewAuthUseCase(store.Users(), sessions, auth.SessionConfig{
		Secret: "test-secret", TTLMinutes: 60, Issuer: "estoque-test",
	}, log)
	created, err := authUC.EnsureAdmin(context.Background(), auth.AdminSeed{Username: adminUser, Password: adminPass, Name: "Admin"})
	require.NoError(t, err)
	require.True(t, created)

	userUC := usecase.NewUserUseCase(store.Users(), sessions, log)
	app := apphttp.NewApp(apphttp.AppOptions{Name: "estoque-test", Log: log})
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:       authUC,
		UserUC:       userUC,
		ProductUC:    usecase.NewProductUseCase(store.Products(), log),
		PicoUC:       inventory.NewPicoUseCase(store, store.Products(), store.Picos(), log),
		PaletizadoUC: inventory.NewPaletizadoUseCase(store, store.Products(), store.Stock(), log),
		DashboardUC:  appanalytics.NewDashboardUseCase(store.Dashboard(), store.Activity()),
		ActivityUC:   appanalytics.NewActivityUseCase(store.Activity()),
		ReportUC:     report.NewStockReportUseCase(store.Picos(), store.Stock(), infrapdf.NewMarotoStockReportGenerator("Estoque")),
		Cookie:       apphttp.CookieConfig{Name: testCookie},
		LoginLimiter: loginLimiter,
		Log:          log,
	})
	return &testServer{app: app, userUC: userUC}
}

// do ejecuta la petición con la cookie de sesión (si token != "") y devuelve status y cuerpo.
func (s *testServer) do(t *testing.T, method, path, token string, body any) (*http.Response, []byte) {
	t.Helper()
	var rdr io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		rdr = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, rdr)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.AddCookie(&http.Cookie{Name: testCookie, Value: token})
	}
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

// login devuelve el token de la cookie de sesión.
func (s *testServer) login(t *testing.T, username, password string) (string, dto.LoginResponse) {
	t.Helper()
	resp, raw := s.do(t, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Username: username, Password: password})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	var out dto.LoginResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	for _, c := range resp.Cookies() {
		if c.Name == testCookie {
			return c.Value, out
		}
	}
	t.Fatal("login sin cookie de sesión")
	return "", out
}

func (s *testServer) adminToken(t *testing.T) string {
	t.Helper()
	tok, _ := s.login(t, adminUser, adminPass)
	return tok
}

// createOperador crea un operador y devuelve su token.
func (s *testServer) createOperador(t *testing.T, adminTok, username string) string {
	t.Helper()
	resp, raw := s.do(t, http.MethodPost, "/api/users", adminTok, dto.CreateUserRequest{
		Name: "Operador " + username, Nickname: username, Username: username, Password: "secret1", Role: "operador",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	tok, _ := s.login(t, username, "secret1")
	return tok
}

func (s *testServer) createProduct(t *testing.T, adminTok, code, category string, unitsPerBase int) dto.ProductResponse {
	t.Helper()
	resp, raw := s.do(t, http.MethodPost, "/api/products", adminTok, dto.CreateProductRequest{
		Code: code, Description: "Produto " + code, QuantityBases: 4, UnitsPerBase: unitsPerBase, Category: category,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	var out dto.ProductResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func decode[T any](t *testing.T, raw []byte) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	return out
}
