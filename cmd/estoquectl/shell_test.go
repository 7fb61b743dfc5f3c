package main

import (
	"bufio"
	"bytes"
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appanalytics "github.com/jhoicas/Estoque-api/internal/application/analytics"
	"github.com/jhoicas/Estoque-api/internal/application/auth"
	"github.com/jhoicas/Estoque-api/internal/application/dto"
	"github.com/jhoicas/Estoque-api/internal/application/inventory"
	"github.com/jhoicas/Estoque-api/internal/application/usecase"
	"github.com/jhoicas/Estoque-api/internal/infrastructure/memory"
	"github.com/jhoicas/Estoque-api/internal/infrastructure/session"
	apphttp "github.com/jhoicas/Estoque-api/internal/interfaces/http"
	"github.com/jhoicas/Estoque-api/pkg/client"
	"github.com/jhoicas/Estoque-api/pkg/logger"
)

// newAPI levanta la API real sobre el store en memoria con admin/admin123 en primer acceso.
func newAPI(t *testing.T) string {
	t.Helper()
	log := logger.Nop()
	store := memory.NewStore()
	sessions := session.NewMemoryStore()
	authUC := auth.NewAuthUseCase(store.Users(), sessions, auth.SessionConfig{Secret: "s", TTLMinutes: 10}, log)
	_, err := authUC.EnsureAdmin(context.Background(), auth.AdminSeed{Username: "admin", Password: "admin123"})
	require.NoError(t, err)

	app := apphttp.NewApp(apphttp.AppOptions{Name: "test", Log: log})
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:       authUC,
		UserUC:       usecase.NewUserUseCase(store.Users(), sessions, log),
		ProductUC:    usecase.NewProductUseCase(store.Products(), log),
		PicoUC:       inventory.NewPicoUseCase(store, store.Products(), store.Picos(), log),
		PaletizadoUC: inventory.NewPaletizadoUseCase(store, store.Products(), store.Stock(), log),
		DashboardUC:  appanalytics.NewDashboardUseCase(store.Dashboard(), store.Activity()),
		ActivityUC:   appanalytics.NewActivityUseCase(store.Activity()),
		Cookie:       apphttp.CookieConfig{Name: "estoque_session"},
		Log:          log,
	})
	srv := httptest.NewServer(adaptor.FiberApp(app))
	t.Cleanup(srv.Close)
	return srv.URL
}

func runShell(t *testing.T, url, input string) string {
	t.Helper()
	c, err := client.New(url)
	require.NoError(t, err)
	var out bytes.Buffer
	sh := &shell{c: c, in: bufio.NewScanner(strings.NewReader(input)), out: &out}
	require.NoError(t, sh.run(context.Background()))
	assert.Equal(t, stateDone, sh.state)
	return out.String()
}

func TestShell_PrimerAccesoObligaCambioDeContraseña(t *testing.T) {
	url := newAPI(t)
	script := strings.Join([]string{
		"admin", "admin123", // login
		"nueva123", "otra1234", // confirmación distinta: se repite
		"nueva123", "nueva123",
		"producto-alta P-001 2 6 alta_rotacao Café torrado",
		"pico-alta P-001 2 1 07",
		"stock-alta P-001 3",
		"dashboard",
		"productos cafe",
		"salir",
	}, "\n") + "\n"

	out := runShell(t, url, script)
	assert.Contains(t, out, "primer acceso")
	assert.Contains(t, out, "producto creado: P-001")
	assert.Contains(t, out, "(13 unidades)")
	assert.Contains(t, out, "stock de P-001: 3 pallets")
	assert.Contains(t, out, "picos: 1  paletizados: 1  alta rotação: 1  baixa rotação: 0")
	assert.Contains(t, out, "Café torrado")
}

func TestShell_LoginFallidoVuelveAPedirCredenciales(t *testing.T) {
	url := newAPI(t)
	script := "admin\nerrada\nadmin\nadmin123\nnueva123\nnueva123\nsalir\n"
	out := runShell(t, url, script)
	assert.Contains(t, out, "login fallido")
	assert.Contains(t, out, "bienvenido")
}

func TestShell_OperadorNoVeComandosDeAdmin(t *testing.T) {
	url := newAPI(t)
	admin, err := client.New(url)
	require.NoError(t, err)
	ctx := context.Background()
	_, err = admin.Login(ctx, "admin", "admin123")
	require.NoError(t, err)
	_, err = admin.CreateUser(ctx, dtoOperador())
	require.NoError(t, err)

	out := runShell(t, url, "ana\nsecret1\nnueva123\nnueva123\nusuarios\nsalir\n")
	assert.NotContains(t, out, "PRIMER ACCESO", "la lista de usuarios es solo para administradores")
	assert.Contains(t, out, "dashboard")
	assert.NotContains(t, out, "producto-alta")
}

func dtoOperador() dto.CreateUserRequest {
	return dto.CreateUserRequest{Name: "Ana", Nickname: "ana", Username: "ana", Password: "secret1", Role: "operador"}
}
